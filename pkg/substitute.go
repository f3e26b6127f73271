package arith

// Substitute replaces every Variable of expr with the literal bound to its
// name, names[i] binding values[i]. The names must cover every variable in
// expr; the result then has no free variables. Calls are rebuilt with their
// arguments substituted; nested definitions are rejected.
func Substitute(expr Expr, names []string, values []int64) (Expr, error) {
	if len(names) != len(values) {
		return nil, &ArityMismatchError{Want: len(names), Got: len(values)}
	}

	return substitute(expr, names, values)
}

func substitute(expr Expr, names []string, values []int64) (Expr, error) {
	switch e := expr.(type) {
	case *Num:
		return e, nil
	case *Variable:
		for i, name := range names {
			if name == e.Name {
				return &Num{Value: values[i]}, nil
			}
		}

		return nil, &UnboundIdentifierError{Name: e.Name}
	case *Plus:
		l, r, err := substitutePair(e.Left, e.Right, names, values)
		if err != nil {
			return nil, err
		}

		return &Plus{Left: l, Right: r}, nil
	case *Mult:
		l, r, err := substitutePair(e.Left, e.Right, names, values)
		if err != nil {
			return nil, err
		}

		return &Mult{Left: l, Right: r}, nil
	case *Sub:
		l, r, err := substitutePair(e.Left, e.Right, names, values)
		if err != nil {
			return nil, err
		}

		return &Sub{Left: l, Right: r}, nil
	case *IfThenElse:
		c, err := substitute(e.Cond, names, values)
		if err != nil {
			return nil, err
		}

		t, f, err := substitutePair(e.Then, e.Else, names, values)
		if err != nil {
			return nil, err
		}

		return &IfThenElse{Cond: c, Then: t, Else: f}, nil
	case *FunctionApp:
		app := &FunctionApp{Name: e.Name}
		for _, arg := range e.Args {
			a, err := substitute(arg, names, values)
			if err != nil {
				return nil, err
			}

			app.Args = append(app.Args, a)
		}

		return app, nil
	}

	return nil, &UnsupportedNodeError{Op: "substitute", Node: expr}
}

func substitutePair(left, right Expr, names []string, values []int64) (Expr, Expr, error) {
	l, err := substitute(left, names, values)
	if err != nil {
		return nil, nil, err
	}

	r, err := substitute(right, names, values)
	if err != nil {
		return nil, nil, err
	}

	return l, r, nil
}
