package arith

import (
	"github.com/hashicorp/go-multierror"
	"github.com/llir/llvm/ir"
	"github.com/pkg/errors"
)

// Compiler turns a program into an LLVM module whose main prints the value of
// the program. Compiled functions use substitution scoping: a body only sees
// its own parameters.
type Compiler struct{}

func NewCompiler() *Compiler {
	return &Compiler{}
}

// Compile desugars and checks the program before generating code. All the
// problems the checks find are returned together as a *multierror.Error.
func (c *Compiler) Compile(expr Expr, vars VariableEnv, funcs FunctionDefEnv) (*ir.Module, error) {
	expr, err := Desugar(expr)
	if err != nil {
		return nil, errors.Wrap(err, "desugar")
	}

	funcs, err = DesugarFunctions(funcs)
	if err != nil {
		return nil, errors.Wrap(err, "desugar")
	}

	if err := c.check(expr, vars, funcs); err != nil {
		return nil, err
	}

	return c.compile(expr, vars, funcs)
}

func (c *Compiler) check(expr Expr, vars VariableEnv, funcs FunctionDefEnv) error {
	var reterr error
	for _, name := range funcs.Names() {
		if reservedNames[name] {
			reterr = multierror.Append(reterr, &ReservedNameError{Name: name})
		}
	}

	for _, err := range NewAnalyzer(vars, funcs).Do(expr) {
		reterr = multierror.Append(reterr, err)
	}

	return reterr
}

func (c *Compiler) compile(expr Expr, vars VariableEnv, funcs FunctionDefEnv) (*ir.Module, error) {
	builder := NewLLVMIRBuilder()

	names := funcs.Names()
	for _, name := range names {
		builder.declare(name, funcs[name])
	}

	for _, name := range names {
		if err := builder.function(name, funcs[name]); err != nil {
			return nil, errors.Wrapf(err, "function '%s'", name)
		}
	}

	if err := builder.main(expr, vars); err != nil {
		return nil, errors.Wrap(err, "main")
	}

	return builder.Module(), nil
}
