// -----------------------------------------------------------------------------
// lispy is licensed under the MIT license. Please see the LICENSE file for
// your rights and obligations under this license.
// -----------------------------------------------------------------------------

package lispybuiltins

import "github.com/lispyrun/lispy/lispyeval"

// entry pairs a built-in's registered name and arity range with its
// implementation, the same Name/MinArity/MaxArity/Fn shape the teacher's
// builtin table uses for registration (sxbuiltins), adapted here to
// errors-as-values instead of errors-as-Go-errors.
type entry struct {
	name     string
	min, max int
	fn       lispyeval.BuiltinFn
}

// table is the fixed built-in function set (§4.5), plus `cons` and `len`:
// the only two supplemented list operations, each needed by a definition in
// lispybuiltins/prelude.lispy (`unpack` and `last` respectively). Neither
// has any grounding in original_source/ — see DESIGN.md.
var table = []entry{
	// List operations.
	{"list", 0, -1, builtinList},
	{"head", 1, 1, builtinHead},
	{"tail", 1, 1, builtinTail},
	{"eval", 1, 1, builtinEval},
	{"join", 0, -1, builtinJoin},
	{"cons", 2, 2, builtinCons},
	{"len", 1, 1, builtinLen},

	// Arithmetic.
	{"+", 1, -1, builtinAdd},
	{"-", 1, -1, builtinSub},
	{"*", 1, -1, builtinMul},
	{"/", 1, -1, builtinDiv},
	{"%", 1, -1, builtinMod},

	// Ordering and equality.
	{"<", 2, 2, builtinLT},
	{">", 2, 2, builtinGT},
	{"<=", 2, 2, builtinLE},
	{">=", 2, 2, builtinGE},
	{"==", 2, 2, builtinEq},
	{"!=", 2, 2, builtinNe},

	// Control flow and binding.
	{"if", 3, 3, builtinIf},
	{"def", 1, -1, builtinDef},
	{"=", 1, -1, builtinPut},
	{"\\", 2, 2, builtinLambda},

	// I/O and meta.
	{"load", 1, 1, builtinLoad},
	{"print", 0, -1, builtinPrint},
	{"error", 1, 1, builtinError},
}

// BindAll registers every built-in in env, globally (§4.5's opening note:
// built-ins are ordinary global bindings, indistinguishable at the call
// site from a user-defined Lambda).
func BindAll(env *lispyeval.Environment) {
	for _, e := range table {
		env.PutGlobal(e.name, lispyeval.NewBuiltin(e.name, e.min, e.max, e.fn))
	}
}
