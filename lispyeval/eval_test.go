// -----------------------------------------------------------------------------
// lispy is licensed under the MIT license. Please see the LICENSE file for
// your rights and obligations under this license.
// -----------------------------------------------------------------------------

package lispyeval_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lispyrun/lispy"
	"github.com/lispyrun/lispy/lispybuiltins"
	"github.com/lispyrun/lispy/lispyeval"
	"github.com/lispyrun/lispy/lispyreader"
)

func evalSource(t *testing.T, env *lispyeval.Environment, src string) lispy.Value {
	t.Helper()
	forms, err := lispyreader.ReadProgram(src)
	require.NoError(t, err)
	require.Len(t, forms, 1)
	return lispyeval.Eval(env, forms[0])
}

// TestEvalSExprEvaluatesEveryChildBeforeReportingError locks down §4.3's
// two-pass rule: every child is evaluated, in order, before the first Error
// among them is returned. A short-circuiting implementation would stop at
// `(error "boom")` and leave `y` unbound.
func TestEvalSExprEvaluatesEveryChildBeforeReportingError(t *testing.T) {
	env := lispyeval.NewRootEnvironment()
	lispybuiltins.BindAll(env)

	result := evalSource(t, env, `(list (def {x} 1) (error "boom") (def {y} 2))`)
	require.True(t, lispy.IsError(result))

	require.Equal(t, lispy.Number(1), env.Get("x"))
	require.Equal(t, lispy.Number(2), env.Get("y"))
}

func TestEvalSelfEvaluatingForms(t *testing.T) {
	env := lispyeval.NewRootEnvironment()
	require.Equal(t, lispy.Number(5), lispyeval.Eval(env, lispy.Number(5)))
	q := lispy.NewQExpr(lispy.Number(1))
	require.Equal(t, q, lispyeval.Eval(env, q))
}

func TestEvalSExprEmptySelfEvaluates(t *testing.T) {
	env := lispyeval.NewRootEnvironment()
	empty := lispy.NewSExpr()
	require.Equal(t, empty, lispyeval.EvalSExpr(env, empty))
}

func TestEvalSExprSingleChildCollapses(t *testing.T) {
	env := lispyeval.NewRootEnvironment()
	s := lispy.NewSExpr(lispy.Number(7))
	require.Equal(t, lispy.Number(7), lispyeval.EvalSExpr(env, s))
}
