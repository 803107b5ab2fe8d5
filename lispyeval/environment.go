// -----------------------------------------------------------------------------
// lispy is licensed under the MIT license. Please see the LICENSE file for
// your rights and obligations under this license.
// -----------------------------------------------------------------------------

// Package lispyeval implements the environment chain, the evaluator, and the
// function call protocol (§§3.3, 3.4, 4.2, 4.3, 4.4 of the specification).
// Function values (Builtin, Lambda) live here rather than in package lispy
// because a Lambda owns an *Environment, and an Environment stores
// lispy.Value — keeping that cycle out of the leaf-value package is the same
// split the teacher (t73f.de/r/sx / sxeval) uses.
package lispyeval

import (
	"github.com/sirupsen/logrus"

	"github.com/lispyrun/lispy"
)

// Environment is a mapping from symbol name to value, with an optional
// parent link forming a lookup chain (§3.3). Names and values are kept as
// aligned slices, not a map, to preserve insertion order the way the
// original C environment (two aligned arrays, linearly searched) does, so
// Names reports bindings in the order they were made.
type Environment struct {
	names  []string
	values []lispy.Value
	parent *Environment
	logger *logrus.Logger
}

// NewEnvironment creates an empty environment with the given (possibly nil)
// parent (§4.2 `new`).
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{parent: parent}
}

// NewRootEnvironment creates an empty environment with no parent: the root
// environment that `def` and builtin registration target.
func NewRootEnvironment() *Environment {
	return &Environment{}
}

// Parent returns the environment's parent, or nil at the root.
func (e *Environment) Parent() *Environment { return e.parent }

// SetParent rebinds e's parent. Used exactly once per call, transiently,
// to splice a lambda's closure environment onto the caller's environment
// for the duration of the call (§3.4, §4.4). The link is non-owning: e does
// not keep parent alive, the caller's environment does.
func (e *Environment) SetParent(parent *Environment) { e.parent = parent }

// Root walks to the ancestor environment with no parent.
func (e *Environment) Root() *Environment {
	env := e
	for env.parent != nil {
		env = env.parent
	}
	return env
}

// SetTrace installs the logger used for evaluator-level diagnostics. Only
// the driver (cmd/lispy) calls this; the evaluator itself never decides
// whether to log, only what to log when a sink is present (§2 Ambient Stack
// "Logging").
func (e *Environment) SetTrace(logger *logrus.Logger) { e.Root().logger = logger }

func (e *Environment) trace() *logrus.Logger { return e.Root().logger }

// Logger returns the trace sink installed by SetTrace, or nil if none was
// installed. Exposed so builtins that must report a non-fatal failure
// (notably `load`, §4.5) can log without aborting their own control flow.
func (e *Environment) Logger() *logrus.Logger { return e.trace() }

// Get resolves name, walking parent links to the root, and returns a deep
// copy of the bound value (§4.2 `get`). A miss yields an Unbound symbol
// Error value rather than a Go error — lookup failure is ordinary control
// flow in this evaluator (§7).
func (e *Environment) Get(name string) lispy.Value {
	for env := e; env != nil; env = env.parent {
		for i, n := range env.names {
			if n == name {
				return lispy.Copy(env.values[i])
			}
		}
	}
	if logger := e.trace(); logger != nil {
		logger.WithField("symbol", name).Debug("unbound symbol")
	}
	return lispy.ErrUnboundSymbol(name)
}

// PutLocal replaces or inserts name in e, atomically: any old value is
// simply overwritten (Go's GC reclaims it), the new value is stored as a
// copy so e owns it independently of the caller's copy (§4.2 `put_local`).
func (e *Environment) PutLocal(name string, value lispy.Value) {
	for i, n := range e.names {
		if n == name {
			e.values[i] = lispy.Copy(value)
			return
		}
	}
	e.names = append(e.names, name)
	e.values = append(e.values, lispy.Copy(value))
}

// PutGlobal walks to the root environment, then put_locals there (§4.2).
func (e *Environment) PutGlobal(name string, value lispy.Value) {
	e.Root().PutLocal(name, value)
}

// Copy returns a deep clone of e, preserving the parent pointer (§4.2
// `copy`). Used when a Lambda's closure environment must be copied for
// partial application (§4.4).
func (e *Environment) Copy() *Environment {
	cp := &Environment{
		names:  append([]string(nil), e.names...),
		values: make([]lispy.Value, len(e.values)),
		parent: e.parent,
		logger: e.logger,
	}
	for i, v := range e.values {
		cp.values[i] = lispy.Copy(v)
	}
	return cp
}

// Names returns the symbol names bound directly in e (not its ancestors),
// in insertion order.
func (e *Environment) Names() []string {
	return append([]string(nil), e.names...)
}
