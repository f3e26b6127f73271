package arith

import (
	"github.com/pkg/errors"
)

// Desugar returns a copy of expr in core form: every Sub(l, r) becomes
// Plus(l, Mult(Num(-1), r)), with both operands desugared first. The result
// contains no Sub node. Function definitions and calls are desugared
// recursively too.
func Desugar(expr Expr) (Expr, error) {
	switch e := expr.(type) {
	case *Num, *Variable:
		return e, nil
	case *Sub:
		l, r, err := desugarPair(e.Left, e.Right)
		if err != nil {
			return nil, err
		}

		return &Plus{
			Left: l,
			Right: &Mult{
				Left:  &Num{Value: -1},
				Right: r,
			},
		}, nil
	case *Plus:
		l, r, err := desugarPair(e.Left, e.Right)
		if err != nil {
			return nil, err
		}

		return &Plus{Left: l, Right: r}, nil
	case *Mult:
		l, r, err := desugarPair(e.Left, e.Right)
		if err != nil {
			return nil, err
		}

		return &Mult{Left: l, Right: r}, nil
	case *IfThenElse:
		c, err := Desugar(e.Cond)
		if err != nil {
			return nil, err
		}

		t, f, err := desugarPair(e.Then, e.Else)
		if err != nil {
			return nil, err
		}

		return &IfThenElse{Cond: c, Then: t, Else: f}, nil
	case *FunctionApp:
		app := &FunctionApp{Name: e.Name}
		for _, arg := range e.Args {
			a, err := Desugar(arg)
			if err != nil {
				return nil, err
			}

			app.Args = append(app.Args, a)
		}

		return app, nil
	case *FunctionDef:
		if e == nil {
			break
		}

		body, err := Desugar(e.Body)
		if err != nil {
			return nil, errors.Wrapf(err, "in definition of '%s'", e.Name)
		}

		params := append([]string(nil), e.Params...)
		return &FunctionDef{Name: e.Name, Params: params, Body: body}, nil
	}

	return nil, &UnsupportedNodeError{Op: "desugar", Node: expr}
}

func desugarPair(left, right Expr) (Expr, Expr, error) {
	l, err := Desugar(left)
	if err != nil {
		return nil, nil, err
	}

	r, err := Desugar(right)
	if err != nil {
		return nil, nil, err
	}

	return l, r, nil
}

// DesugarFunctions desugars every definition of funcs into a new env. The
// result is keyed by each definition's own name; nil entries are dropped.
func DesugarFunctions(funcs FunctionDefEnv) (FunctionDefEnv, error) {
	var defs []*FunctionDef
	for _, name := range funcs.Names() {
		def, err := Desugar(funcs[name])
		if err != nil {
			return nil, err
		}

		defs = append(defs, def.(*FunctionDef))
	}

	return FunctionDefEnv{}.With(defs...), nil
}
