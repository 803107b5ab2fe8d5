// -----------------------------------------------------------------------------
// lispy is licensed under the MIT license. Please see the LICENSE file for
// your rights and obligations under this license.
// -----------------------------------------------------------------------------

package lispybuiltins

import (
	"github.com/lispyrun/lispy"
	"github.com/lispyrun/lispy/lispyeval"
)

// builtinList takes zero or more arguments and repackages them as a
// Q-Expression (§4.5 `list`): identity on the children, just a change of
// tag from S- to Q-Expression.
func builtinList(_ *lispyeval.Environment, args *lispy.SExpr) lispy.Value {
	return lispy.SExprToQExpr(args)
}

// builtinHead returns a Q-Expression containing only the first child of its
// single Q-Expression argument (§4.5 `head`).
func builtinHead(_ *lispyeval.Environment, args *lispy.SExpr) lispy.Value {
	q, err := argQExpr("head", args, 0)
	if err != nil {
		return err
	}
	if err := assertNotEmpty("head", 0, q); err != nil {
		return err
	}
	return lispy.NewQExpr(lispy.Copy(q.Cells[0]))
}

// builtinTail returns a Q-Expression with the first child of its single
// Q-Expression argument removed (§4.5 `tail`).
func builtinTail(_ *lispyeval.Environment, args *lispy.SExpr) lispy.Value {
	q, err := argQExpr("tail", args, 0)
	if err != nil {
		return err
	}
	if err := assertNotEmpty("tail", 0, q); err != nil {
		return err
	}
	rest := lispy.Copy(q).(*lispy.QExpr)
	lispy.Pop(rest, 0)
	return rest
}

// builtinEval reinterprets its single Q-Expression argument as an
// S-Expression and evaluates it (§4.5 `eval`).
func builtinEval(env *lispyeval.Environment, args *lispy.SExpr) lispy.Value {
	q, err := argQExpr("eval", args, 0)
	if err != nil {
		return err
	}
	return lispyeval.EvalQuoted(env, q)
}

// builtinJoin concatenates any number of Q-Expression arguments in order
// (§4.5 `join`).
func builtinJoin(_ *lispyeval.Environment, args *lispy.SExpr) lispy.Value {
	result := lispy.NewQExpr()
	for i := range args.Cells {
		q, err := argQExpr("join", args, i)
		if err != nil {
			return err
		}
		lispy.Join(result, lispy.Copy(q).(*lispy.QExpr))
	}
	return result
}

// builtinCons prepends a value onto a Q-Expression. Not part of spec.md
// §4.5's own list, and not present in any original_source/ snapshot either
// — added only because lispybuiltins/prelude.lispy's `unpack` needs it, the
// way the prelude's own "variable arguments" chapter of the book this
// interpreter descends from introduces `cons` for exactly that purpose.
func builtinCons(_ *lispyeval.Environment, args *lispy.SExpr) lispy.Value {
	q, err := argQExpr("cons", args, 1)
	if err != nil {
		return err
	}
	result := lispy.NewQExpr(lispy.Copy(args.Cells[0]))
	return lispy.Join(result, lispy.Copy(q).(*lispy.QExpr))
}

// builtinLen counts the children of a Q-Expression. Like `cons` above, this
// is not in spec.md §4.5 or in original_source/; it is supplemented because
// lispybuiltins/prelude.lispy's `last` needs it.
func builtinLen(_ *lispyeval.Environment, args *lispy.SExpr) lispy.Value {
	q, err := argQExpr("len", args, 0)
	if err != nil {
		return err
	}
	return lispy.Number(len(q.Cells))
}
