// -----------------------------------------------------------------------------
// lispy is licensed under the MIT license. Please see the LICENSE file for
// your rights and obligations under this license.
// -----------------------------------------------------------------------------

package lispyeval

import "github.com/lispyrun/lispy"

// Eval reduces v in env (§3.3, §4.3):
//
//   - a Symbol resolves against env;
//   - an S-Expression is reduced by EvalSExpr;
//   - every other tag (Number, Str, Error, Q-Expression, Function) is
//     self-evaluating and is returned unchanged.
func Eval(env *Environment, v lispy.Value) lispy.Value {
	if logger := env.trace(); logger != nil {
		logger.WithField("form", v.String()).Trace("eval")
	}
	switch val := v.(type) {
	case lispy.Symbol:
		return env.Get(string(val))
	case *lispy.SExpr:
		return EvalSExpr(env, val)
	default:
		return v
	}
}

// EvalSExpr reduces an S-Expression (§4.3):
//
//  1. An empty S-Expression self-evaluates.
//  2. Every child is evaluated left to right, in full — side effects of a
//     later child (e.g. a `def`) happen even if an earlier child evaluated
//     to an Error.
//  3. Only once every child has been evaluated is the result scanned,
//     left to right, for the first Error; if one is found it is returned
//     (§7) and nothing past step 2 runs.
//  4. A single-child result collapses to that child.
//  5. Otherwise the first evaluated child must be a Function; it is Called
//     with the remaining evaluated children as arguments.
func EvalSExpr(env *Environment, s *lispy.SExpr) lispy.Value {
	if len(s.Cells) == 0 {
		return s
	}
	evaluated := make([]lispy.Value, len(s.Cells))
	for i, c := range s.Cells {
		evaluated[i] = Eval(env, c)
	}
	for _, r := range evaluated {
		if lispy.IsError(r) {
			return r
		}
	}
	if len(evaluated) == 1 {
		return evaluated[0]
	}
	head := evaluated[0]
	if !IsFunction(head) {
		return lispy.ErrType("S-Expression", 0, lispy.TypeName(head), "Function")
	}
	return Call(env, head, &lispy.SExpr{Cells: evaluated[1:]})
}

// EvalQuoted reinterprets a Q-Expression as an S-Expression and evaluates
// it in env — the operation both the `eval` builtin and a fully-applied
// Lambda's body perform (§4.4, §4.5).
func EvalQuoted(env *Environment, q *lispy.QExpr) lispy.Value {
	return Eval(env, lispy.QExprToSExpr(q))
}
