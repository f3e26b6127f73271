package arith

import (
	"fmt"
)

type UndefinedVariableError struct {
	Name string
}

func (e UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable: %s", e.Name)
}

type UndefinedFunctionError struct {
	Name string
}

func (e UndefinedFunctionError) Error() string {
	return fmt.Sprintf("undefined function: %s", e.Name)
}

// UnboundIdentifierError is returned by Substitute when a variable is not in
// the binding list.
type UnboundIdentifierError struct {
	Name string
}

func (e UnboundIdentifierError) Error() string {
	return fmt.Sprintf("unbound identifier: %s", e.Name)
}

// UnsupportedNodeError means an operation was handed a node it has no case
// for, e.g. a Sub reaching the interpreter. It is a contract violation by the
// caller.
type UnsupportedNodeError struct {
	Op   string
	Node Expr
}

func (e UnsupportedNodeError) Error() string {
	if e.Node == nil {
		return fmt.Sprintf("%s: unsupported node: nil", e.Op)
	}

	return fmt.Sprintf("%s: unsupported node %T: %s", e.Op, e.Node, e.Node)
}

type ArityMismatchError struct {
	Name string
	Want int
	Got  int
}

func (e ArityMismatchError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("arity mismatch: %d names, %d values", e.Want, e.Got)
	}

	return fmt.Sprintf("arity mismatch: '%s' takes %d arguments, got %d", e.Name, e.Want, e.Got)
}

// DuplicateParamError is returned for a definition that lists the same
// parameter twice.
type DuplicateParamError struct {
	Function string
	Name     string
}

func (e DuplicateParamError) Error() string {
	return fmt.Sprintf("duplicate parameter '%s' in definition of '%s'", e.Name, e.Function)
}

type CallDepthError struct {
	Name  string
	Depth int
}

func (e CallDepthError) Error() string {
	return fmt.Sprintf("call depth exceeded: '%s' at depth %d", e.Name, e.Depth)
}

// ReservedNameError is returned by the compiler for functions whose name
// clashes with a symbol of the generated module.
type ReservedNameError struct {
	Name string
}

func (e ReservedNameError) Error() string {
	return fmt.Sprintf("reserved name: %s", e.Name)
}
