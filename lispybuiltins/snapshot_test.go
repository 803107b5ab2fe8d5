// -----------------------------------------------------------------------------
// lispy is licensed under the MIT license. Please see the LICENSE file for
// your rights and obligations under this license.
// -----------------------------------------------------------------------------

package lispybuiltins_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/lispyrun/lispy"
)

// TestExternalSyntaxSnapshots locks down the printed form (§6.3) of
// representative values from every tag, the same role go-snaps plays for
// interpreter output fixtures elsewhere in the pack.
func TestExternalSyntaxSnapshots(t *testing.T) {
	env := newTestEnv(t)

	values := []string{
		"(+ 1 2 3)",
		"{1 2 3}",
		`"line one\nline two"`,
		"(\\ {x y} {+ x y})",
		"(/ 1 0)",
	}
	for _, src := range values {
		result := evalString(t, env, src)
		snaps.MatchSnapshot(t, src, result.String())
	}
}
