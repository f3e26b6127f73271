package arith

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstitute(t *testing.T) {
	cases := []struct {
		name   string
		data   Expr
		names  []string
		values []int64
		expect Expr
	}{
		{
			"bound variable",
			&Variable{Name: "p"},
			[]string{"p"},
			[]int64{9},
			&Num{Value: 9},
		},
		{
			"literal",
			&Num{Value: 4},
			nil,
			nil,
			&Num{Value: 4},
		},
		{
			"positional binding",
			&Plus{Left: &Variable{Name: "b"}, Right: &Mult{Left: &Variable{Name: "a"}, Right: &Variable{Name: "b"}}},
			[]string{"a", "b"},
			[]int64{2, 3},
			&Plus{Left: &Num{Value: 3}, Right: &Mult{Left: &Num{Value: 2}, Right: &Num{Value: 3}}},
		},
		{
			"first binding wins",
			&Variable{Name: "x"},
			[]string{"x", "x"},
			[]int64{1, 2},
			&Num{Value: 1},
		},
		{
			"conditional",
			&IfThenElse{Cond: &Variable{Name: "c"}, Then: &Num{Value: 1}, Else: &Sub{Left: &Variable{Name: "c"}, Right: &Num{Value: 1}}},
			[]string{"c"},
			[]int64{0},
			&IfThenElse{Cond: &Num{Value: 0}, Then: &Num{Value: 1}, Else: &Sub{Left: &Num{Value: 0}, Right: &Num{Value: 1}}},
		},
		{
			"call arguments",
			&FunctionApp{Name: "f", Args: []Expr{&Variable{Name: "n"}, &Num{Value: 2}}},
			[]string{"n"},
			[]int64{5},
			&FunctionApp{Name: "f", Args: []Expr{&Num{Value: 5}, &Num{Value: 2}}},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Substitute(c.data, c.names, c.values)
			require.NoError(t, err)
			assert.Equal(t, c.expect, got)
		})
	}
}

func TestSubstituteErrors(t *testing.T) {
	def := square()

	cases := []struct {
		name   string
		data   Expr
		names  []string
		values []int64
		expect error
	}{
		{
			"unbound identifier",
			&Variable{Name: "q"},
			[]string{"p"},
			[]int64{9},
			&UnboundIdentifierError{Name: "q"},
		},
		{
			"unbound deep in the tree",
			&Plus{Left: &Num{Value: 1}, Right: &Mult{Left: &Variable{Name: "p"}, Right: &Variable{Name: "r"}}},
			[]string{"p"},
			[]int64{9},
			&UnboundIdentifierError{Name: "r"},
		},
		{
			"nested definition",
			def,
			[]string{"n"},
			[]int64{1},
			&UnsupportedNodeError{Op: "substitute", Node: def},
		},
		{
			"unequal binding lists",
			&Num{Value: 1},
			[]string{"a", "b"},
			[]int64{1},
			&ArityMismatchError{Want: 2, Got: 1},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Substitute(c.data, c.names, c.values)
			assert.Equal(t, c.expect, err)
		})
	}
}

func TestSubstituteDoesNotModifyInput(t *testing.T) {
	data := &Plus{Left: &Variable{Name: "x"}, Right: &Num{Value: 1}}

	got, err := Substitute(data, []string{"x"}, []int64{41})
	require.NoError(t, err)

	assert.Equal(t, &Plus{Left: &Num{Value: 41}, Right: &Num{Value: 1}}, got)
	assert.Equal(t, &Plus{Left: &Variable{Name: "x"}, Right: &Num{Value: 1}}, data)
}
