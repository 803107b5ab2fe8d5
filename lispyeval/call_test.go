// -----------------------------------------------------------------------------
// lispy is licensed under the MIT license. Please see the LICENSE file for
// your rights and obligations under this license.
// -----------------------------------------------------------------------------

package lispyeval_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lispyrun/lispy"
	"github.com/lispyrun/lispy/lispyeval"
)

func addBuiltin(_ *lispyeval.Environment, args *lispy.SExpr) lispy.Value {
	a, _ := lispy.GetNumber(args.Cells[0])
	b, _ := lispy.GetNumber(args.Cells[1])
	return a + b
}

func TestCallBuiltin(t *testing.T) {
	env := lispyeval.NewRootEnvironment()
	b := lispyeval.NewBuiltin("+", 2, 2, addBuiltin)

	result := lispyeval.Call(env, b, lispy.NewSExpr(lispy.Number(2), lispy.Number(3)))
	require.Equal(t, lispy.Number(5), result)
}

func TestCallBuiltinArityError(t *testing.T) {
	env := lispyeval.NewRootEnvironment()
	b := lispyeval.NewBuiltin("+", 2, 2, addBuiltin)

	result := lispyeval.Call(env, b, lispy.NewSExpr(lispy.Number(2)))
	require.True(t, lispy.IsError(result))
}

func TestCallLambdaFullApplication(t *testing.T) {
	env := lispyeval.NewRootEnvironment()
	formals := lispy.NewQExpr(lispy.Symbol("x"), lispy.Symbol("y"))
	body := lispy.NewQExpr(lispy.Symbol("x"))
	lam, lerr := lispyeval.NewLambda(env, formals, body)
	require.Nil(t, lerr)

	result := lispyeval.Call(env, lam, lispy.NewSExpr(lispy.Number(1), lispy.Number(2)))
	require.Equal(t, lispy.Number(1), result)
}

func TestCallLambdaPartialApplication(t *testing.T) {
	env := lispyeval.NewRootEnvironment()
	formals := lispy.NewQExpr(lispy.Symbol("x"), lispy.Symbol("y"))
	body := lispy.NewQExpr(lispy.Symbol("x"))
	lam, lerr := lispyeval.NewLambda(env, formals, body)
	require.Nil(t, lerr)

	partial := lispyeval.Call(env, lam, lispy.NewSExpr(lispy.Number(1)))
	partialLam, ok := lispyeval.GetLambda(partial)
	require.True(t, ok)

	result := lispyeval.Call(env, partialLam, lispy.NewSExpr(lispy.Number(2)))
	require.Equal(t, lispy.Number(1), result)
}

func TestCallLambdaVariadicCapture(t *testing.T) {
	env := lispyeval.NewRootEnvironment()
	formals := lispy.NewQExpr(lispy.Symbol("x"), lispy.Ampersand, lispy.Symbol("xs"))
	body := lispy.NewQExpr(lispy.Symbol("xs"))
	lam, lerr := lispyeval.NewLambda(env, formals, body)
	require.Nil(t, lerr)

	result := lispyeval.Call(env, lam, lispy.NewSExpr(lispy.Number(1), lispy.Number(2), lispy.Number(3)))
	q, ok := lispy.GetQExpr(result)
	require.True(t, ok)
	require.Equal(t, lispy.NewQExpr(lispy.Number(2), lispy.Number(3)), q)
}

func TestNewLambdaRejectsMalformedAmpersand(t *testing.T) {
	env := lispyeval.NewRootEnvironment()
	formals := lispy.NewQExpr(lispy.Ampersand, lispy.Symbol("xs"), lispy.Symbol("extra"))
	_, lerr := lispyeval.NewLambda(env, formals, lispy.NewQExpr())
	require.NotNil(t, lerr)
}
