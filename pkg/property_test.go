package arith_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.arith.dev/internal/test"
	"go.arith.dev/pkg"
)

func TestRandomExprDesugarInterpret(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 500; i++ {
		expr, expect := test.GetRandomExpr(r, 6)

		desugared, err := arith.Desugar(expr)
		require.NoError(t, err)
		assert.False(t, test.ContainsSub(desugared), "%s", desugared)

		got, err := arith.Interpret(desugared, arith.VariableEnv{}, arith.FunctionDefEnv{})
		require.NoError(t, err)
		assert.Equal(t, expect, got, "%s", expr)

		again, err := arith.Desugar(desugared)
		require.NoError(t, err)
		assert.Equal(t, desugared, again)
	}
}

func TestRandomExprPlusMult(t *testing.T) {
	r := rand.New(rand.NewSource(2))

	for i := 0; i < 200; i++ {
		a, b := r.Int63()-r.Int63(), r.Int63()-r.Int63()

		got, err := arith.Interpret(&arith.Plus{Left: &arith.Num{Value: a}, Right: &arith.Num{Value: b}}, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, a+b, got)

		got, err = arith.Interpret(&arith.Mult{Left: &arith.Num{Value: a}, Right: &arith.Num{Value: b}}, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, a*b, got)
	}
}

func TestRandomExprBindingsAgree(t *testing.T) {
	r := rand.New(rand.NewSource(3))

	overlay := arith.NewInterpreter()
	substitute := arith.NewInterpreter()
	substitute.Binding = arith.BindSubstitute

	for i := 0; i < 100; i++ {
		body, _ := test.GetRandomExpr(r, 4)
		body, err := arith.Desugar(&arith.Plus{Left: body, Right: &arith.Variable{Name: "p"}})
		require.NoError(t, err)

		funcs := arith.NewFunctionDefEnv(&arith.FunctionDef{Name: "f", Params: []string{"p"}, Body: body})
		call := &arith.FunctionApp{Name: "f", Args: []arith.Expr{&arith.Num{Value: int64(i)}}}

		got1, err := overlay.Interpret(call, nil, funcs)
		require.NoError(t, err)
		got2, err := substitute.Interpret(call, nil, funcs)
		require.NoError(t, err)
		assert.Equal(t, got1, got2)
	}
}
