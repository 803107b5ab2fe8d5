// -----------------------------------------------------------------------------
// lispy is licensed under the MIT license. Please see the LICENSE file for
// your rights and obligations under this license.
// -----------------------------------------------------------------------------

package lispyeval

import (
	"io"
	"strings"

	"github.com/lispyrun/lispy"
)

// BuiltinFn is the Go implementation of a built-in function: it receives
// the calling environment and the S-Expression of already-evaluated
// arguments, and returns a Value — never a Go error, per §7 (errors are
// ordinary values, not exceptions).
type BuiltinFn func(env *Environment, args *lispy.SExpr) lispy.Value

// Builtin is the Function tag backing native built-ins (§3.1, §4.3). It is
// atomic: a Builtin has no children to recurse into.
type Builtin struct {
	Name     string
	MinArity int // -1 means no lower bound beyond 0
	MaxArity int // -1 means unbounded (variadic)
	Fn       BuiltinFn
}

// NewBuiltin constructs a Builtin with an inclusive [min, max] arity range;
// max of -1 means unbounded.
func NewBuiltin(name string, min, max int, fn BuiltinFn) *Builtin {
	return &Builtin{Name: name, MinArity: min, MaxArity: max, Fn: fn}
}

// IsAtom always returns true.
func (*Builtin) IsAtom() bool { return true }

// Equal compares two Builtins by name: built-ins are singletons identified
// by their registered name, not by their Go function pointer.
func (b *Builtin) Equal(other lispy.Value) bool {
	o, ok := other.(*Builtin)
	return ok && o != nil && b.Name == o.Name
}

// String renders the opaque built-in marker (§6.3).
func (b *Builtin) String() string { return "<builtin>" }

// Print writes the external syntax to w.
func (b *Builtin) Print(w io.Writer) (int, error) { return io.WriteString(w, b.String()) }

// Copy returns b itself: built-ins are immutable and safely shared (§3.4).
func (b *Builtin) Copy() lispy.Value { return b }

// CheckArity reports an arity Error if len(args.Cells) falls outside
// [MinArity, MaxArity] (MaxArity -1 meaning unbounded), nil otherwise.
func (b *Builtin) CheckArity(args *lispy.SExpr) *lispy.ErrorVal {
	n := len(args.Cells)
	if n >= b.MinArity && (b.MaxArity < 0 || n <= b.MaxArity) {
		return nil
	}
	switch {
	case b.MinArity == b.MaxArity:
		return lispy.ErrArity(b.Name, n, b.MinArity)
	case b.MaxArity < 0:
		return lispy.NewError("Function '%s' was passed incorrect number of arguments. Got %d, expected at least %d",
			b.Name, n, b.MinArity)
	default:
		return lispy.NewError("Function '%s' was passed incorrect number of arguments. Got %d, expected between %d and %d",
			b.Name, n, b.MinArity, b.MaxArity)
	}
}

// Lambda is the Function tag backing user-defined closures built with `\`
// (§3.1, §3.2, §4.4). Formals and Body are Q-Expressions; Env is the
// environment the lambda closes over, extended with argument bindings as
// they are supplied.
type Lambda struct {
	Formals *lispy.QExpr
	Body    *lispy.QExpr
	Env     *Environment
}

// NewLambda validates formals against the invariant in §3.2 — every cell is
// a Symbol, and '&' appears at most once, immediately followed by exactly
// one Symbol — and constructs a Lambda whose closure environment starts out
// with env as its parent; Call rebinds that parent to the caller's
// environment when the lambda is fully applied (§4.4).
func NewLambda(env *Environment, formals, body *lispy.QExpr) (*Lambda, *lispy.ErrorVal) {
	ampersands := 0
	for i, c := range formals.Cells {
		sym, ok := lispy.GetSymbol(c)
		if !ok {
			return nil, lispy.ErrType("\\", i, lispy.TypeName(c), "Symbol")
		}
		if sym == lispy.Ampersand {
			ampersands++
			if ampersands > 1 {
				return nil, lispy.ErrAmpersand()
			}
			if i != len(formals.Cells)-2 {
				return nil, lispy.ErrAmpersand()
			}
		}
	}
	return &Lambda{
		Formals: lispy.Copy(formals).(*lispy.QExpr),
		Body:    lispy.Copy(body).(*lispy.QExpr),
		Env:     NewEnvironment(env),
	}, nil
}

// IsAtom always returns true.
func (*Lambda) IsAtom() bool { return true }

// Equal compares two Lambdas structurally by formals and body; the closure
// environment is deliberately excluded (§4.1): two lambdas with the same
// formals and body compare equal even when their captured bindings differ.
func (l *Lambda) Equal(other lispy.Value) bool {
	o, ok := other.(*Lambda)
	if !ok || o == nil {
		return false
	}
	return l.Formals.Equal(o.Formals) && l.Body.Equal(o.Body)
}

// String renders "(\ {formals} {body})" (§6.3).
func (l *Lambda) String() string {
	var sb strings.Builder
	sb.WriteString(`(\ `)
	sb.WriteString(l.Formals.String())
	sb.WriteString(" ")
	sb.WriteString(l.Body.String())
	sb.WriteString(")")
	return sb.String()
}

// Print writes the external syntax to w.
func (l *Lambda) Print(w io.Writer) (int, error) { return io.WriteString(w, l.String()) }

// Copy returns a deep copy of l, including a deep copy of the closure
// environment (§3.4, §4.4): partial application must not let the applied
// argument leak back into the original, unapplied lambda.
func (l *Lambda) Copy() lispy.Value {
	return &Lambda{
		Formals: lispy.Copy(l.Formals).(*lispy.QExpr),
		Body:    lispy.Copy(l.Body).(*lispy.QExpr),
		Env:     l.Env.Copy(),
	}
}

// GetBuiltin returns v as a *Builtin, if possible.
func GetBuiltin(v lispy.Value) (*Builtin, bool) {
	b, ok := v.(*Builtin)
	return b, ok
}

// GetLambda returns v as a *Lambda, if possible.
func GetLambda(v lispy.Value) (*Lambda, bool) {
	l, ok := v.(*Lambda)
	return l, ok
}

// IsFunction reports whether v is callable (Builtin or Lambda) (§4.3).
func IsFunction(v lispy.Value) bool {
	switch v.(type) {
	case *Builtin, *Lambda:
		return true
	default:
		return false
	}
}
