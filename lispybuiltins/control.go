// -----------------------------------------------------------------------------
// lispy is licensed under the MIT license. Please see the LICENSE file for
// your rights and obligations under this license.
// -----------------------------------------------------------------------------

package lispybuiltins

import (
	"github.com/lispyrun/lispy"
	"github.com/lispyrun/lispy/lispyeval"
)

// builtinIf evaluates the "then" branch if its Number condition is
// non-zero, otherwise the "else" branch; both branches are supplied as
// Q-Expressions and converted to S-Expressions before evaluation (§4.5 `if`).
func builtinIf(env *lispyeval.Environment, args *lispy.SExpr) lispy.Value {
	cond, err := argNumber("if", args, 0)
	if err != nil {
		return err
	}
	thenQ, err := argQExpr("if", args, 1)
	if err != nil {
		return err
	}
	elseQ, err := argQExpr("if", args, 2)
	if err != nil {
		return err
	}
	if cond != 0 {
		return lispyeval.EvalQuoted(env, thenQ)
	}
	return lispyeval.EvalQuoted(env, elseQ)
}

// bindVars implements the shared machinery behind `def` and `=` (§4.5): the
// first argument is a Q-Expression of Symbols, and there must be exactly
// one further value argument per symbol.
func bindVars(name string, args *lispy.SExpr) (names []string, values []lispy.Value, err *lispy.ErrorVal) {
	syms, err := argQExpr(name, args, 0)
	if err != nil {
		return nil, nil, err
	}
	for i, c := range syms.Cells {
		sym, ok := lispy.GetSymbol(c)
		if !ok {
			return nil, nil, lispy.ErrType(name, i, lispy.TypeName(c), "Symbol")
		}
		names = append(names, string(sym))
	}
	if len(syms.Cells) != len(args.Cells)-1 {
		return nil, nil, lispy.NewError(
			"Function '%s' passed too many arguments for symbols. Got %d, expected %d",
			name, len(args.Cells)-1, len(syms.Cells))
	}
	return names, args.Cells[1:], nil
}

// builtinDef binds each name globally (§4.5 `def`).
func builtinDef(env *lispyeval.Environment, args *lispy.SExpr) lispy.Value {
	names, values, err := bindVars("def", args)
	if err != nil {
		return err
	}
	for i, n := range names {
		env.PutGlobal(n, values[i])
	}
	return lispy.NewSExpr()
}

// builtinPut binds each name in the local environment only (§4.5 `=`).
func builtinPut(env *lispyeval.Environment, args *lispy.SExpr) lispy.Value {
	names, values, err := bindVars("=", args)
	if err != nil {
		return err
	}
	for i, n := range names {
		env.PutLocal(n, values[i])
	}
	return lispy.NewSExpr()
}

// builtinLambda constructs a Lambda from formals and body Q-Expressions
// (§4.4, §4.5 `\`). See lispyeval.NewLambda for how its closure
// environment is parented.
func builtinLambda(env *lispyeval.Environment, args *lispy.SExpr) lispy.Value {
	formals, err := argQExpr("\\", args, 0)
	if err != nil {
		return err
	}
	body, err := argQExpr("\\", args, 1)
	if err != nil {
		return err
	}
	lam, lerr := lispyeval.NewLambda(env, formals, body)
	if lerr != nil {
		return lerr
	}
	return lam
}
