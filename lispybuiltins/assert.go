// -----------------------------------------------------------------------------
// lispy is licensed under the MIT license. Please see the LICENSE file for
// your rights and obligations under this license.
// -----------------------------------------------------------------------------

// Package lispybuiltins registers the fixed built-in function table (§4.5)
// into a lispyeval.Environment. Each built-in is a small, self-contained
// lispyeval.BuiltinFn; argument-shape checks are centralized in this file
// so every built-in reports errors with identical wording (§7), the same
// role the LASSERT macros play in the C original.
package lispybuiltins

import (
	"github.com/lispyrun/lispy"
)

// assertType reports a type Error unless ok, the caller's check that
// args.Cells[i] has the wanted type, named by wantName for the message.
func assertType(name string, args *lispy.SExpr, i int, ok bool, wantName string) *lispy.ErrorVal {
	if ok {
		return nil
	}
	return lispy.ErrType(name, i, lispy.TypeName(args.Cells[i]), wantName)
}

// assertNotEmpty reports an emptiness Error if q has no children.
func assertNotEmpty(name string, i int, q *lispy.QExpr) *lispy.ErrorVal {
	if len(q.Cells) == 0 {
		return lispy.ErrEmpty(name, i)
	}
	return nil
}

// argNumber asserts that args.Cells[i] is a Number and returns it.
func argNumber(name string, args *lispy.SExpr, i int) (lispy.Number, *lispy.ErrorVal) {
	n, ok := lispy.GetNumber(args.Cells[i])
	if err := assertType(name, args, i, ok, "Number"); err != nil {
		return 0, err
	}
	return n, nil
}

// argQExpr asserts that args.Cells[i] is a Q-Expression and returns it.
func argQExpr(name string, args *lispy.SExpr, i int) (*lispy.QExpr, *lispy.ErrorVal) {
	q, ok := lispy.GetQExpr(args.Cells[i])
	if err := assertType(name, args, i, ok, "Q-Expression"); err != nil {
		return nil, err
	}
	return q, nil
}

// argStr asserts that args.Cells[i] is a String and returns it.
func argStr(name string, args *lispy.SExpr, i int) (*lispy.Str, *lispy.ErrorVal) {
	s, ok := lispy.GetStr(args.Cells[i])
	if err := assertType(name, args, i, ok, "String"); err != nil {
		return nil, err
	}
	return s, nil
}
