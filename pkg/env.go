package arith

import (
	"sort"
)

// VariableEnv maps variable names to values. It is treated as an immutable
// snapshot: every method that changes bindings returns a new env.
type VariableEnv map[string]int64

func (e VariableEnv) Get(name string) (int64, bool) {
	v, ok := e[name]
	return v, ok
}

func (e VariableEnv) Copy() VariableEnv {
	e2 := make(VariableEnv, len(e))
	for k, v := range e {
		e2[k] = v
	}

	return e2
}

// Inherit returns a copy of e with every binding of e2 added on top.
func (e VariableEnv) Inherit(e2 VariableEnv) VariableEnv {
	e3 := e.Copy()
	for k, v := range e2 {
		e3[k] = v
	}

	return e3
}

// Overlay binds names to values positionally on top of e. Extra names or
// values are dropped.
func (e VariableEnv) Overlay(names []string, values []int64) VariableEnv {
	n := len(names)
	if len(values) < n {
		n = len(values)
	}

	bindings := make(VariableEnv, n)
	for i := 0; i < n; i++ {
		bindings[names[i]] = values[i]
	}

	return e.Inherit(bindings)
}

// FunctionDefEnv maps function names to their definitions. A name mapped to
// nil counts as undefined.
type FunctionDefEnv map[string]*FunctionDef

func NewFunctionDefEnv(defs ...*FunctionDef) FunctionDefEnv {
	return FunctionDefEnv{}.With(defs...)
}

func (e FunctionDefEnv) Get(name string) (*FunctionDef, bool) {
	def, ok := e[name]
	if !ok || def == nil {
		return nil, false
	}

	return def, true
}

// With returns a new env holding the definitions of e plus defs. A def
// replaces one of the same name.
func (e FunctionDefEnv) With(defs ...*FunctionDef) FunctionDefEnv {
	e2 := make(FunctionDefEnv, len(e)+len(defs))
	for k, v := range e {
		e2[k] = v
	}

	for _, def := range defs {
		if def != nil {
			e2[def.Name] = def
		}
	}

	return e2
}

// Names returns the defined names in sorted order.
func (e FunctionDefEnv) Names() []string {
	names := make([]string, 0, len(e))
	for name, def := range e {
		if def != nil {
			names = append(names, name)
		}
	}

	sort.Strings(names)
	return names
}
