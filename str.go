// -----------------------------------------------------------------------------
// lispy is licensed under the MIT license. Please see the LICENSE file for
// your rights and obligations under this license.
// -----------------------------------------------------------------------------

package lispy

import (
	"io"
	"strings"
)

// Str is the String tag (§3.1): a UTF-8 byte sequence whose printable form
// is double-quoted with standard escapes re-applied (§6.3).
type Str struct {
	Val string
}

// NewStr wraps a Go string as a Str value.
func NewStr(s string) *Str { return &Str{Val: s} }

// IsAtom always returns true: a Str is not decomposable.
func (*Str) IsAtom() bool { return true }

// Equal compares two Strs by content.
func (s *Str) Equal(other Value) bool {
	o, ok := other.(*Str)
	return ok && o != nil && s.Val == o.Val
}

// String renders the double-quoted, escaped form.
func (s *Str) String() string {
	var sb strings.Builder
	_, _ = s.Print(&sb)
	return sb.String()
}

var strEscapes = map[byte]byte{
	'"':  '"',
	'\\': '\\',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
}

// Print writes the quoted, escaped representation to w.
func (s *Str) Print(w io.Writer) (int, error) {
	n, err := io.WriteString(w, `"`)
	if err != nil {
		return n, err
	}
	total := n
	for i := 0; i < len(s.Val); i++ {
		c := s.Val[i]
		if esc, needsEscape := strEscapes[c]; needsEscape {
			n, err = io.WriteString(w, "\\"+string(esc))
		} else {
			n, err = w.Write(s.Val[i : i+1 : i+1])
		}
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = io.WriteString(w, `"`)
	return total + n, err
}

// GetStr returns v as a *Str, if possible.
func GetStr(v Value) (*Str, bool) {
	s, ok := v.(*Str)
	return s, ok
}

// Unescape reverses the C-style string escapes \" \\ \n \r \t \a \b \f \v
// (§4.6). Numeric escapes (octal, \x hex) are not decoded: they, like any
// other unknown escape, pass through verbatim, backslash included.
func Unescape(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'a':
			sb.WriteByte('\a')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'v':
			sb.WriteByte('\v')
		case '"':
			sb.WriteByte('"')
		case '\\':
			sb.WriteByte('\\')
		default:
			sb.WriteByte('\\')
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}
