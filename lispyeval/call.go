// -----------------------------------------------------------------------------
// lispy is licensed under the MIT license. Please see the LICENSE file for
// your rights and obligations under this license.
// -----------------------------------------------------------------------------

package lispyeval

import "github.com/lispyrun/lispy"

// Call applies fn to args, already evaluated, in the calling environment
// env (§4.3, §4.4). fn must satisfy IsFunction; callers (EvalSExpr) enforce
// that before reaching here.
func Call(env *Environment, fn lispy.Value, args *lispy.SExpr) lispy.Value {
	switch f := fn.(type) {
	case *Builtin:
		if err := f.CheckArity(args); err != nil {
			return err
		}
		return f.Fn(env, args)
	case *Lambda:
		return callLambda(env, f, args)
	default:
		return lispy.ErrType("call", 0, lispy.TypeName(fn), "Function")
	}
}

// callLambda implements the currying / variadic-capture protocol of §4.4:
//
//  1. Work on a fresh copy of the lambda so that a partial application
//     never mutates the original, reusable closure.
//  2. Bind one supplied argument per leading formal. A formal equal to '&'
//     instead captures every remaining argument, as a single Q-Expression,
//     under the one formal that must follow it, and binding terminates.
//  3. Passing more arguments than remaining formals (after the special
//     handling above) is an arity error.
//  4. If the only formals left over are a still-unbound '&' pair, it is
//     satisfied with an empty Q-Expression (zero variadic arguments).
//  5. If formals still remain unconsumed, the partially-bound copy is
//     returned as a new Lambda (partial application).
//  6. Otherwise the lambda is fully applied: its closure environment's
//     parent becomes the caller's environment, and the body is evaluated
//     via EvalQuoted in that closure environment.
func callLambda(callerEnv *Environment, l *Lambda, args *lispy.SExpr) lispy.Value {
	lam, _ := l.Copy().(*Lambda)
	remaining := append([]lispy.Value(nil), args.Cells...)

	for len(remaining) > 0 {
		if len(lam.Formals.Cells) == 0 {
			return lispy.NewError("Function was passed too many arguments (got %d, expected %d)",
				len(args.Cells), len(l.Formals.Cells))
		}
		sym, _ := lam.Formals.Cells[0].(lispy.Symbol)
		lam.Formals.Cells = lam.Formals.Cells[1:]

		if sym == lispy.Ampersand {
			if len(lam.Formals.Cells) != 1 {
				return lispy.ErrAmpersand()
			}
			rest, _ := lam.Formals.Cells[0].(lispy.Symbol)
			lam.Formals.Cells = nil
			lam.Env.PutLocal(string(rest), &lispy.QExpr{Cells: remaining})
			remaining = nil
			break
		}

		lam.Env.PutLocal(string(sym), remaining[0])
		remaining = remaining[1:]
	}

	if len(lam.Formals.Cells) > 0 {
		if sym, ok := lam.Formals.Cells[0].(lispy.Symbol); ok && sym == lispy.Ampersand {
			if len(lam.Formals.Cells) != 2 {
				return lispy.ErrAmpersand()
			}
			rest, _ := lam.Formals.Cells[1].(lispy.Symbol)
			lam.Formals.Cells = nil
			lam.Env.PutLocal(string(rest), lispy.NewQExpr())
		}
	}

	if len(lam.Formals.Cells) > 0 {
		return lam
	}

	lam.Env.SetParent(callerEnv)
	return EvalQuoted(lam.Env, lam.Body)
}
