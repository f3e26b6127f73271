package arith

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzer(t *testing.T) {
	sub := &Sub{Left: &Num{Value: 1}, Right: &Num{Value: 1}}

	cases := []struct {
		name   string
		vars   VariableEnv
		funcs  FunctionDefEnv
		data   Expr
		expect []error
	}{
		{
			"valid program",
			VariableEnv{"x": 1},
			NewFunctionDefEnv(square()),
			&FunctionApp{Name: "square", Args: []Expr{&Variable{Name: "x"}}},
			nil,
		},
		{
			"undefined names in walk order",
			nil,
			nil,
			&Plus{
				Left:  &Variable{Name: "x"},
				Right: &FunctionApp{Name: "nope", Args: []Expr{&Variable{Name: "y"}}},
			},
			[]error{
				&UndefinedVariableError{Name: "x"},
				&UndefinedVariableError{Name: "y"},
				&UndefinedFunctionError{Name: "nope"},
			},
		},
		{
			"duplicates are reported once",
			nil,
			nil,
			&Mult{Left: &Variable{Name: "x"}, Right: &Variable{Name: "x"}},
			[]error{
				&UndefinedVariableError{Name: "x"},
			},
		},
		{
			"arity",
			nil,
			NewFunctionDefEnv(square()),
			&FunctionApp{Name: "square", Args: []Expr{&Num{Value: 1}, &Num{Value: 2}}},
			[]error{
				&ArityMismatchError{Name: "square", Want: 1, Got: 2},
			},
		},
		{
			"bodies only see their parameters",
			VariableEnv{"g": 1},
			NewFunctionDefEnv(&FunctionDef{
				Name:   "f",
				Params: []string{"a"},
				Body:   &Plus{Left: &Variable{Name: "a"}, Right: &Variable{Name: "g"}},
			}),
			&FunctionApp{Name: "f", Args: []Expr{&Variable{Name: "g"}}},
			[]error{
				&UndefinedVariableError{Name: "g"},
			},
		},
		{
			"duplicate parameter",
			nil,
			NewFunctionDefEnv(&FunctionDef{
				Name:   "f",
				Params: []string{"x", "y", "x"},
				Body:   &Variable{Name: "y"},
			}),
			&FunctionApp{Name: "f", Args: []Expr{&Num{Value: 1}, &Num{Value: 2}, &Num{Value: 3}}},
			[]error{
				&DuplicateParamError{Function: "f", Name: "x"},
			},
		},
		{
			"nil definition is undefined",
			nil,
			FunctionDefEnv{"f": nil},
			&FunctionApp{Name: "f"},
			[]error{
				&UndefinedFunctionError{Name: "f"},
			},
		},
		{
			"sub must be desugared",
			nil,
			nil,
			&IfThenElse{Cond: &Num{Value: 1}, Then: sub, Else: &Num{Value: 0}},
			[]error{
				&UnsupportedNodeError{Op: "analyze", Node: sub},
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := NewAnalyzer(c.vars, c.funcs).Do(c.data)
			assert.Equal(t, c.expect, got)
		})
	}
}

func TestSymbolTable(t *testing.T) {
	stab := NewSymbolTable()
	stab.Add("a")

	assert.True(t, stab.Has("a"))
	assert.False(t, stab.Has("b"))

	stab.AddError(&UndefinedVariableError{Name: "b"})
	assert.Len(t, stab.Errors, 1)
}
