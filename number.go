// -----------------------------------------------------------------------------
// lispy is licensed under the MIT license. Please see the LICENSE file for
// your rights and obligations under this license.
// -----------------------------------------------------------------------------

package lispy

import "strconv"

// Number is a signed 64-bit integer value (§3.1). Arithmetic wraps on
// overflow per Go's defined two's-complement semantics; no numeric tower.
type Number int64

// IsAtom always returns true: a Number is not decomposable.
func (Number) IsAtom() bool { return true }

// Equal compares two Numbers by value.
func (n Number) Equal(other Value) bool {
	o, ok := other.(Number)
	return ok && n == o
}

// String renders the decimal form, minus-sign prefixed when negative (§6.3).
func (n Number) String() string { return strconv.FormatInt(int64(n), 10) }

// GetNumber returns v as a Number, if possible.
func GetNumber(v Value) (Number, bool) {
	n, ok := v.(Number)
	return n, ok
}
