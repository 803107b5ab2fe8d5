// -----------------------------------------------------------------------------
// lispy is licensed under the MIT license. Please see the LICENSE file for
// your rights and obligations under this license.
// -----------------------------------------------------------------------------

// Package lispy provides the value model for the lispy interpreter: the
// tagged variants an expression can reduce to, plus the handful of
// structural operations (append, pop, take, join, equal, copy, print) every
// other package builds on.
package lispy

import (
	"fmt"
	"io"
)

// Value is the value every lispy expression reduces to. It is implemented
// by exactly the tags listed in the specification: Number, *ErrorVal,
// Symbol, *Str, *SExpr, *QExpr, and the two function shapes defined by
// package lispyeval (Builtin and Lambda).
type Value interface {
	fmt.Stringer

	// IsAtom returns true if the value is not further decomposable.
	IsAtom() bool

	// Equal reports whether two values are structurally equal (§4.1).
	Equal(Value) bool
}

// Printable lets a Value render itself directly to a writer instead of
// going through String(), avoiding an intermediate allocation.
type Printable interface {
	Print(w io.Writer) (int, error)
}

// Print writes the external syntax (§6.3) of v to w.
func Print(w io.Writer, v Value) (int, error) {
	if v == nil {
		return io.WriteString(w, "()")
	}
	if p, ok := v.(Printable); ok {
		return p.Print(w)
	}
	return io.WriteString(w, v.String())
}

// IsNil reports whether v is the canonical "nil" value: a missing value or
// an empty S-Expression, the latter being how this interpreter represents
// the result of evaluating nothing (§4.3 rule 3).
func IsNil(v Value) bool {
	if v == nil {
		return true
	}
	se, ok := v.(*SExpr)
	return ok && len(se.Cells) == 0
}

// IsTrue reports whether v should be treated as a "true" condition, as used
// by the `if` builtin: any Number other than zero.
func IsTrue(v Value) bool {
	n, ok := v.(Number)
	return ok && n != 0
}

// Equal is the free-function form of Value.Equal, tolerant of nil.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}
