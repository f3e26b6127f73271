package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/kr/pretty"
	"go.arith.dev/pkg"
)

type args struct {
	Binding  string `arg:"--binding" default:"overlay" help:"function argument binding: overlay or substitute"`
	Lenient  bool   `arg:"--lenient" help:"truncate mismatched argument lists instead of failing"`
	Debug    bool   `arg:"--debug" help:"trace function calls"`
	Tree     bool   `arg:"--tree" help:"print the desugared expression tree"`
	EmitLLVM bool   `arg:"--emit-llvm" help:"print the LLVM module instead of evaluating"`
}

func (args) Version() string {
	return "arith 0.1.0"
}

func (args) Description() string {
	return "evaluates the demo program (3 + 4 * 5)"
}

func main() {
	var a args
	arg.MustParse(&a)

	if err := run(a); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(a args) error {
	expr := &arith.Plus{
		Left: &arith.Num{Value: 3},
		Right: &arith.Mult{
			Left:  &arith.Num{Value: 4},
			Right: &arith.Num{Value: 5},
		},
	}
	vars := arith.VariableEnv{}
	funcs := arith.NewFunctionDefEnv()

	if a.EmitLLVM {
		mod, err := arith.NewCompiler().Compile(expr, vars, funcs)
		if err != nil {
			return err
		}

		fmt.Println(mod)
		return nil
	}

	desugared, err := arith.Desugar(expr)
	if err != nil {
		return err
	}

	if a.Tree {
		pretty.Println(desugared)
	}

	interpreter := arith.NewInterpreter()
	interpreter.LenientArity = a.Lenient
	interpreter.Debug = a.Debug
	interpreter.Logf = func(format string, v ...interface{}) {
		log.Printf("interpret: "+format, v...)
	}

	switch a.Binding {
	case "overlay":
		interpreter.Binding = arith.BindOverlay
	case "substitute":
		interpreter.Binding = arith.BindSubstitute
	default:
		return fmt.Errorf("unknown binding: %s", a.Binding)
	}

	result, err := interpreter.Interpret(desugared, vars, funcs)
	if err != nil {
		return err
	}

	fmt.Println(result)
	return nil
}
