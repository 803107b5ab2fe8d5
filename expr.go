// -----------------------------------------------------------------------------
// lispy is licensed under the MIT license. Please see the LICENSE file for
// your rights and obligations under this license.
// -----------------------------------------------------------------------------

package lispy

import (
	"io"
	"strings"
)

// SExpr is the S-Expression tag (§3.1): an ordered, "live"/evaluable
// sequence of Values. S-Expression and Q-Expression children are owned
// exclusively by their parent (§3.1 invariant) — in Go terms, no other
// Value holds a reference to the same backing slice after construction.
type SExpr struct {
	Cells []Value
}

// NewSExpr builds an (initially empty) S-Expression from the given children.
func NewSExpr(cells ...Value) *SExpr { return &SExpr{Cells: cells} }

// IsAtom always returns false: an S-Expression is a sequence.
func (*SExpr) IsAtom() bool { return false }

// Equal compares two S-Expressions by length then child-wise (§4.1).
func (s *SExpr) Equal(other Value) bool {
	o, ok := other.(*SExpr)
	return ok && o != nil && equalCells(s.Cells, o.Cells)
}

// String renders "(child child ...)" (§6.3).
func (s *SExpr) String() string { return renderExpr("(", s.Cells, ")") }

// Print writes the external syntax to w.
func (s *SExpr) Print(w io.Writer) (int, error) { return printExpr(w, "(", s.Cells, ")") }

// QExpr is the Q-Expression tag (§3.1): an ordered, "quoted"/inert sequence
// of Values, used as the list literal, and as formals/body for a Lambda.
type QExpr struct {
	Cells []Value
}

// NewQExpr builds an (initially empty) Q-Expression from the given children.
func NewQExpr(cells ...Value) *QExpr { return &QExpr{Cells: cells} }

// IsAtom always returns false: a Q-Expression is a sequence.
func (*QExpr) IsAtom() bool { return false }

// Equal compares two Q-Expressions by length then child-wise (§4.1).
func (q *QExpr) Equal(other Value) bool {
	o, ok := other.(*QExpr)
	return ok && o != nil && equalCells(q.Cells, o.Cells)
}

// String renders "{child child ...}" (§6.3).
func (q *QExpr) String() string { return renderExpr("{", q.Cells, "}") }

// Print writes the external syntax to w.
func (q *QExpr) Print(w io.Writer) (int, error) { return printExpr(w, "{", q.Cells, "}") }

// QExprToSExpr reinterprets a Q-Expression's children as an S-Expression,
// deep-copying them (§4.5 `eval`): the result can be evaluated without
// aliasing the quoted original.
func QExprToSExpr(q *QExpr) *SExpr { return &SExpr{Cells: copyCells(q.Cells)} }

// SExprToQExpr reinterprets an S-Expression's children as a Q-Expression,
// deep-copying them (§4.5 `list`).
func SExprToQExpr(s *SExpr) *QExpr { return &QExpr{Cells: copyCells(s.Cells)} }

// GetSExpr returns v as an *SExpr, if possible.
func GetSExpr(v Value) (*SExpr, bool) {
	s, ok := v.(*SExpr)
	return s, ok
}

// GetQExpr returns v as a *QExpr, if possible.
func GetQExpr(v Value) (*QExpr, bool) {
	q, ok := v.(*QExpr)
	return q, ok
}

// cellHolder is implemented by the two expression variants. It is
// unexported: only *SExpr and *QExpr may ever back an "expression" as used
// by Append/Pop/Take/Join.
type cellHolder interface {
	Value
	cells() []Value
	setCells([]Value)
}

func (s *SExpr) cells() []Value        { return s.Cells }
func (s *SExpr) setCells(cells []Value) { s.Cells = cells }
func (q *QExpr) cells() []Value        { return q.Cells }
func (q *QExpr) setCells(cells []Value) { q.Cells = cells }

func equalCells(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func renderExpr(open string, cells []Value, close string) string {
	var sb strings.Builder
	_, _ = printExpr(&sb, open, cells, close)
	return sb.String()
}

func printExpr(w io.Writer, open string, cells []Value, close string) (int, error) {
	total, err := io.WriteString(w, open)
	if err != nil {
		return total, err
	}
	for i, c := range cells {
		if i > 0 {
			n, err2 := io.WriteString(w, " ")
			total += n
			if err2 != nil {
				return total, err2
			}
		}
		n, err2 := Print(w, c)
		total += n
		if err2 != nil {
			return total, err2
		}
	}
	n, err := io.WriteString(w, close)
	return total + n, err
}
