// -----------------------------------------------------------------------------
// lispy is licensed under the MIT license. Please see the LICENSE file for
// your rights and obligations under this license.
// -----------------------------------------------------------------------------

package lispyeval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lispyrun/lispy"
	"github.com/lispyrun/lispy/lispyeval"
)

func TestEnvironmentPutLocalAndGet(t *testing.T) {
	env := lispyeval.NewRootEnvironment()
	env.PutLocal("x", lispy.Number(5))

	got := env.Get("x")
	assert.Equal(t, lispy.Number(5), got)
}

func TestEnvironmentChainLookup(t *testing.T) {
	root := lispyeval.NewRootEnvironment()
	root.PutLocal("x", lispy.Number(1))
	child := lispyeval.NewEnvironment(root)
	child.PutLocal("y", lispy.Number(2))

	assert.Equal(t, lispy.Number(1), child.Get("x"))
	assert.Equal(t, lispy.Number(2), child.Get("y"))
	assert.True(t, lispy.IsError(root.Get("y")))
}

func TestEnvironmentUnboundSymbol(t *testing.T) {
	env := lispyeval.NewRootEnvironment()
	result := env.Get("missing")
	e, ok := lispy.GetError(result)
	assertErrorContains(t, ok, e, "Unbound symbol")
}

func TestEnvironmentPutGlobalFromChild(t *testing.T) {
	root := lispyeval.NewRootEnvironment()
	child := lispyeval.NewEnvironment(root)
	child.PutGlobal("g", lispy.Number(7))

	assert.Equal(t, lispy.Number(7), root.Get("g"))
}

func TestEnvironmentCopyIsIndependent(t *testing.T) {
	env := lispyeval.NewRootEnvironment()
	env.PutLocal("x", lispy.NewQExpr(lispy.Number(1)))

	cp := env.Copy()
	cp.PutLocal("x", lispy.NewQExpr(lispy.Number(2)))

	assert.Equal(t, lispy.NewQExpr(lispy.Number(1)), env.Get("x"))
	assert.Equal(t, lispy.NewQExpr(lispy.Number(2)), cp.Get("x"))
}

func assertErrorContains(t *testing.T, ok bool, e *lispy.ErrorVal, substr string) {
	t.Helper()
	assert.True(t, ok)
	assert.Contains(t, e.Message, substr)
}
