// -----------------------------------------------------------------------------
// lispy is licensed under the MIT license. Please see the LICENSE file for
// your rights and obligations under this license.
// -----------------------------------------------------------------------------

package lispybuiltins

import (
	"fmt"
	"os"

	"github.com/lispyrun/lispy"
	"github.com/lispyrun/lispy/lispyeval"
	"github.com/lispyrun/lispy/lispyreader"
)

// builtinPrint writes each argument's external syntax to stdout,
// space-separated and newline-terminated, and returns an empty S-Expression
// (§4.5 `print`).
func builtinPrint(_ *lispyeval.Environment, args *lispy.SExpr) lispy.Value {
	for i, v := range args.Cells {
		if i > 0 {
			fmt.Print(" ")
		}
		_, _ = lispy.Print(os.Stdout, v)
	}
	fmt.Println()
	return lispy.NewSExpr()
}

// builtinError builds an Error value from its single String argument
// (§4.5 `error`): the user-facing escape hatch for raising a custom error.
func builtinError(_ *lispyeval.Environment, args *lispy.SExpr) lispy.Value {
	s, err := argStr("error", args, 0)
	if err != nil {
		return err
	}
	return lispy.NewError("%s", s.Val)
}

// builtinLoad reads, parses and evaluates every top-level form in the file
// named by its single String argument, in the calling environment (§4.5
// `load`, §6.2). A parse failure is returned as an Error wrapping the
// reader's message; an Error produced by evaluating one top-level form is
// printed and does not stop the remaining forms from loading. Load returns
// an empty S-Expression once every form it could parse has been evaluated.
func builtinLoad(env *lispyeval.Environment, args *lispy.SExpr) lispy.Value {
	path, err := argStr("load", args, 0)
	if err != nil {
		return err
	}
	forms, rerr := lispyreader.ReadFile(path.Val)
	if rerr != nil {
		return lispy.NewError("Could not load library %s: %s", path.Val, rerr.Error())
	}
	for _, form := range forms {
		result := lispyeval.Eval(env, form)
		if e, ok := lispy.GetError(result); ok {
			reportLoadError(env, path.Val, e)
		}
	}
	return lispy.NewSExpr()
}

// reportLoadError surfaces a non-fatal error encountered while evaluating
// one top-level form of a loaded file (§4.5 `load`: "prints any Error
// encountered (without stopping)"). It always writes to stdout, matching
// the REPL's own `print`-style reporting, and additionally logs at Warn
// level when the environment has a trace sink installed.
func reportLoadError(env *lispyeval.Environment, path string, e *lispy.ErrorVal) {
	fmt.Println(e.String())
	if logger := env.Logger(); logger != nil {
		logger.WithField("file", path).Warn(e.String())
	}
}
