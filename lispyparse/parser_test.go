// -----------------------------------------------------------------------------
// lispy is licensed under the MIT license. Please see the LICENSE file for
// your rights and obligations under this license.
// -----------------------------------------------------------------------------

package lispyparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lispyrun/lispy/lispyparse"
)

func TestParseSimpleSExpr(t *testing.T) {
	root, err := lispyparse.Parse("(+ 1 2)")
	require.NoError(t, err)
	require.Len(t, root.Children, 1)

	sexpr := root.Children[0]
	require.Equal(t, lispyparse.TagSExpr, sexpr.Tag)
	require.Len(t, sexpr.Children, 3)
	require.Equal(t, lispyparse.TagSymbol, sexpr.Children[0].Tag)
	require.Equal(t, "+", sexpr.Children[0].Contents)
	require.Equal(t, lispyparse.TagNumber, sexpr.Children[1].Tag)
	require.Equal(t, "1", sexpr.Children[1].Contents)
}

func TestParseQExprAndNegativeNumber(t *testing.T) {
	root, err := lispyparse.Parse("{-5 x}")
	require.NoError(t, err)
	require.Len(t, root.Children, 1)

	qexpr := root.Children[0]
	require.Equal(t, lispyparse.TagQExpr, qexpr.Tag)
	require.Equal(t, lispyparse.TagNumber, qexpr.Children[0].Tag)
	require.Equal(t, "-5", qexpr.Children[0].Contents)
}

func TestParseStringWithEscape(t *testing.T) {
	root, err := lispyparse.Parse(`"a\"b"`)
	require.NoError(t, err)
	require.Equal(t, lispyparse.TagString, root.Children[0].Tag)
	require.Equal(t, `"a\"b"`, root.Children[0].Contents)
}

func TestParseComment(t *testing.T) {
	root, err := lispyparse.Parse("; a comment\n(+ 1 1)")
	require.NoError(t, err)
	require.Len(t, root.Children, 2)
	require.Equal(t, lispyparse.TagComment, root.Children[0].Tag)
	require.Equal(t, " a comment", root.Children[0].Contents)
}

func TestParseUnterminatedSExprIsError(t *testing.T) {
	_, err := lispyparse.Parse("(+ 1 2")
	require.Error(t, err)
}
