// -----------------------------------------------------------------------------
// lispy is licensed under the MIT license. Please see the LICENSE file for
// your rights and obligations under this license.
// -----------------------------------------------------------------------------

package lispybuiltins

import (
	_ "embed"
	"fmt"

	"github.com/lispyrun/lispy"
	"github.com/lispyrun/lispy/lispyeval"
	"github.com/lispyrun/lispy/lispyreader"
)

//go:embed prelude.lispy
var prelude string

// LoadPrelude evaluates the embedded standard prelude into env, the way
// the teacher's own LoadPrelude evaluates an embedded prelude.sxn. Call it
// once, on the root environment, after BindAll.
func LoadPrelude(env *lispyeval.Environment) error {
	forms, err := lispyreader.ReadProgram(prelude)
	if err != nil {
		return err
	}
	for _, form := range forms {
		if e, ok := lispy.GetError(lispyeval.Eval(env, form)); ok {
			return fmt.Errorf("prelude: %s", e.Message)
		}
	}
	return nil
}
