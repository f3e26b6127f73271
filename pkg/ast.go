package arith

import (
	"fmt"
	"strings"
)

// Expr is a node of the expression tree. The set of nodes is closed: only the
// types in this file implement it.
type Expr interface {
	fmt.Stringer
	expr()
}

type Num struct {
	Value int64
}

type Plus struct {
	Left  Expr
	Right Expr
}

type Mult struct {
	Left  Expr
	Right Expr
}

// Sub only exists before desugaring. The interpreter rejects it.
type Sub struct {
	Left  Expr
	Right Expr
}

// IfThenElse evaluates Then when Cond is nonzero and Else otherwise.
type IfThenElse struct {
	Cond Expr
	Then Expr
	Else Expr
}

type Variable struct {
	Name string
}

// FunctionDef is data. It only takes effect once registered in a
// FunctionDefEnv and looked up by a FunctionApp.
type FunctionDef struct {
	Name   string
	Params []string
	Body   Expr
}

type FunctionApp struct {
	Name string
	Args []Expr
}

func (*Num) expr()         {}
func (*Plus) expr()        {}
func (*Mult) expr()        {}
func (*Sub) expr()         {}
func (*IfThenElse) expr()  {}
func (*Variable) expr()    {}
func (*FunctionDef) expr() {}
func (*FunctionApp) expr() {}

func (e *Num) String() string {
	return fmt.Sprintf("%d", e.Value)
}

func (e *Plus) String() string {
	return fmt.Sprintf("(%s + %s)", e.Left, e.Right)
}

func (e *Mult) String() string {
	return fmt.Sprintf("(%s * %s)", e.Left, e.Right)
}

func (e *Sub) String() string {
	return fmt.Sprintf("(%s - %s)", e.Left, e.Right)
}

func (e *IfThenElse) String() string {
	return fmt.Sprintf("if %s then %s else %s", e.Cond, e.Then, e.Else)
}

func (e *Variable) String() string {
	return e.Name
}

func (e *FunctionDef) String() string {
	return fmt.Sprintf("def %s(%s) = %s", e.Name, strings.Join(e.Params, ", "), e.Body)
}

func (e *FunctionApp) String() string {
	var str strings.Builder
	str.WriteString(e.Name)
	str.WriteString("(")

	for i, arg := range e.Args {
		str.WriteString(arg.String())

		if i != len(e.Args)-1 {
			str.WriteString(", ")
		}
	}
	str.WriteString(")")

	return str.String()
}
