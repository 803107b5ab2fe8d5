// -----------------------------------------------------------------------------
// lispy is licensed under the MIT license. Please see the LICENSE file for
// your rights and obligations under this license.
// -----------------------------------------------------------------------------

// Package lispyreader converts a lispyparse.Node parse tree into a
// package lispy Value tree (§4.6), and provides the file- and
// string-reading entry points the driver and the `load` built-in use
// (§6.2). It is the one place that needs to know about both lispyparse and
// lispy, keeping each of those packages ignorant of the other — the same
// separation the teacher draws between its reader and its value package.
package lispyreader

import (
	"os"
	"strconv"

	"github.com/lispyrun/lispy"
	"github.com/lispyrun/lispy/lispyparse"
)

// Convert translates a Node into a Value, following §4.6:
//
//   - "number": parsed as a signed 64-bit integer; out of range yields
//     lispy.ErrNumberTooLarge() instead of failing the whole read.
//   - "string": contents (including surrounding quotes) unescaped and
//     unquoted into a *lispy.Str.
//   - "symbol": wrapped as a lispy.Symbol.
//   - "comment": produces no Value; callers must skip it among siblings.
//   - "sexpr" / "qexpr": recursively converted, skipping comment children.
//   - the ">" root: converted the same way as "sexpr" (ReadProgram instead
//     converts each top-level child separately).
func Convert(n lispyparse.Node) lispy.Value {
	switch n.Tag {
	case lispyparse.TagNumber:
		v, err := strconv.ParseInt(n.Contents, 10, 64)
		if err != nil {
			return lispy.ErrNumberTooLarge()
		}
		return lispy.Number(v)
	case lispyparse.TagSymbol:
		return lispy.Symbol(n.Contents)
	case lispyparse.TagString:
		unquoted := n.Contents
		if len(unquoted) >= 2 {
			unquoted = unquoted[1 : len(unquoted)-1]
		}
		return lispy.NewStr(lispy.Unescape(unquoted))
	case lispyparse.TagSExpr, lispyparse.TagRoot:
		return &lispy.SExpr{Cells: convertChildren(n.Children)}
	case lispyparse.TagQExpr:
		return &lispy.QExpr{Cells: convertChildren(n.Children)}
	default:
		// TagComment and anything unrecognized carries no value.
		return nil
	}
}

func convertChildren(children []lispyparse.Node) []lispy.Value {
	var out []lispy.Value
	for _, c := range children {
		if c.Tag == lispyparse.TagComment {
			continue
		}
		if v := Convert(c); v != nil {
			out = append(out, v)
		}
	}
	return out
}

// ReadProgram parses src and converts every top-level form into Values, in
// order, skipping comments (§6.2). It is the shared core behind ReadFile
// and the REPL's per-line read.
func ReadProgram(src string) ([]lispy.Value, error) {
	root, err := lispyparse.Parse(src)
	if err != nil {
		return nil, err
	}
	var forms []lispy.Value
	for _, c := range root.Children {
		if c.Tag == lispyparse.TagComment {
			continue
		}
		forms = append(forms, Convert(c))
	}
	return forms, nil
}

// ReadFile reads and parses the file at path (§6.2 `parse_file`).
func ReadFile(path string) ([]lispy.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ReadProgram(string(data))
}
