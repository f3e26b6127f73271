package arith

import (
	"github.com/pkg/errors"
)

// Binding selects how a function call binds its arguments to the parameters
// of the callee.
type Binding int

const (
	// BindOverlay evaluates the body under the caller's variables with the
	// parameters layered on top. Callees see every caller variable they don't
	// shadow.
	BindOverlay Binding = iota

	// BindSubstitute replaces the parameters in the body with the argument
	// values and evaluates the closed result under an empty variable env.
	BindSubstitute
)

func (b Binding) String() string {
	switch b {
	case BindOverlay:
		return "overlay"
	case BindSubstitute:
		return "substitute"
	default:
		return "unknown"
	}
}

// DefaultMaxCallDepth bounds the nesting of function calls for interpreters
// built with NewInterpreter.
const DefaultMaxCallDepth = 10000

// Interpreter evaluates desugared expressions. The zero value uses overlay
// binding, strict arity and no call depth limit. An Interpreter is not
// modified by evaluation and can be shared between goroutines.
type Interpreter struct {
	Binding Binding

	// LenientArity zips arguments and parameters to the shorter of the two
	// instead of failing on a mismatch.
	LenientArity bool

	// MaxCallDepth is the deepest allowed call nesting. Zero disables the
	// check.
	MaxCallDepth int

	Debug bool
	Logf  func(format string, v ...interface{})
}

func NewInterpreter() *Interpreter {
	return &Interpreter{
		Binding:      BindOverlay,
		MaxCallDepth: DefaultMaxCallDepth,
	}
}

// Interpret evaluates expr with a default interpreter: overlay binding,
// strict arity, and at most DefaultMaxCallDepth nested function calls. A
// deeper call returns a *CallDepthError; use an Interpreter with MaxCallDepth
// set to 0 to lift the limit.
func Interpret(expr Expr, vars VariableEnv, funcs FunctionDefEnv) (int64, error) {
	return NewInterpreter().Interpret(expr, vars, funcs)
}

func (i *Interpreter) Interpret(expr Expr, vars VariableEnv, funcs FunctionDefEnv) (int64, error) {
	return i.eval(expr, vars, funcs, 0)
}

func (i *Interpreter) eval(expr Expr, vars VariableEnv, funcs FunctionDefEnv, depth int) (int64, error) {
	switch e := expr.(type) {
	case *Num:
		return e.Value, nil
	case *Plus:
		l, r, err := i.evalPair(e.Left, e.Right, vars, funcs, depth)
		if err != nil {
			return 0, err
		}

		return l + r, nil
	case *Mult:
		l, r, err := i.evalPair(e.Left, e.Right, vars, funcs, depth)
		if err != nil {
			return 0, err
		}

		return l * r, nil
	case *IfThenElse:
		c, err := i.eval(e.Cond, vars, funcs, depth)
		if err != nil {
			return 0, err
		}

		if c != 0 {
			return i.eval(e.Then, vars, funcs, depth)
		}

		return i.eval(e.Else, vars, funcs, depth)
	case *Variable:
		if v, ok := vars.Get(e.Name); ok {
			return v, nil
		}

		return 0, &UndefinedVariableError{Name: e.Name}
	case *FunctionApp:
		return i.call(e, vars, funcs, depth)
	}

	// Sub has to be desugared away first and definitions are not values.
	return 0, &UnsupportedNodeError{Op: "interpret", Node: expr}
}

func (i *Interpreter) evalPair(left, right Expr, vars VariableEnv, funcs FunctionDefEnv, depth int) (int64, int64, error) {
	l, err := i.eval(left, vars, funcs, depth)
	if err != nil {
		return 0, 0, err
	}

	r, err := i.eval(right, vars, funcs, depth)
	if err != nil {
		return 0, 0, err
	}

	return l, r, nil
}

func (i *Interpreter) call(app *FunctionApp, vars VariableEnv, funcs FunctionDefEnv, depth int) (int64, error) {
	def, ok := funcs.Get(app.Name)
	if !ok {
		return 0, &UndefinedFunctionError{Name: app.Name}
	}

	if err := checkParams(def); err != nil {
		return 0, err
	}

	if i.MaxCallDepth > 0 && depth >= i.MaxCallDepth {
		return 0, &CallDepthError{Name: app.Name, Depth: depth + 1}
	}

	// arguments are evaluated in the caller's scope
	args := make([]int64, 0, len(app.Args))
	for n, arg := range app.Args {
		v, err := i.eval(arg, vars, funcs, depth)
		if err != nil {
			return 0, wrapCall(err, "argument %d of '%s'", n+1, app.Name)
		}

		args = append(args, v)
	}

	params := def.Params
	if len(params) != len(args) {
		if !i.LenientArity {
			return 0, &ArityMismatchError{Name: app.Name, Want: len(params), Got: len(args)}
		}

		if len(params) > len(args) {
			params = params[:len(args)]
		} else {
			args = args[:len(params)]
		}
	}

	i.logf("call %s%v (depth %d, %s)", app.Name, args, depth+1, i.Binding)

	var result int64
	var err error
	switch i.Binding {
	case BindSubstitute:
		var body Expr
		body, err = Substitute(def.Body, params, args)
		if err == nil {
			result, err = i.eval(body, VariableEnv{}, funcs, depth+1)
		}
	default:
		result, err = i.eval(def.Body, vars.Overlay(params, args), funcs, depth+1)
	}

	if err != nil {
		return 0, wrapCall(err, "in call to '%s'", app.Name)
	}

	i.logf("return %s = %d", app.Name, result)
	return result, nil
}

// wrapCall adds call site context to err. Depth errors are passed through
// as is so runaway recursion does not build a message per frame.
func wrapCall(err error, format string, args ...interface{}) error {
	if _, ok := errors.Cause(err).(*CallDepthError); ok {
		return err
	}

	return errors.Wrapf(err, format, args...)
}

func (i *Interpreter) logf(format string, v ...interface{}) {
	if !i.Debug || i.Logf == nil {
		return
	}

	i.Logf(format, v...)
}
