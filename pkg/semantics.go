package arith

// Analyzer checks a program statically: the main expression against the
// global variables, and every function body against its own parameters.
type Analyzer struct {
	vars  VariableEnv
	funcs FunctionDefEnv
}

func NewAnalyzer(vars VariableEnv, funcs FunctionDefEnv) *Analyzer {
	return &Analyzer{
		vars:  vars,
		funcs: funcs,
	}
}

// Do returns every problem found in expr and the function table, in walk
// order and without duplicates. Function bodies are scoped lexically: they
// only see their parameters.
func (a *Analyzer) Do(expr Expr) []error {
	var errs []error

	global := NewSymbolTable()
	for name := range a.vars {
		global.Add(name)
	}

	stab := a.analyze(global, expr)
	errs = appendUnique(errs, stab.Errors...)

	for _, name := range a.funcs.Names() {
		def := a.funcs[name]

		local := NewSymbolTable()
		if err := checkParams(def); err != nil {
			local.AddError(err)
		}

		for _, param := range def.Params {
			local.Add(param)
		}

		stab := a.analyze(local, def.Body)
		errs = appendUnique(errs, stab.Errors...)
	}

	return errs
}

func (a *Analyzer) analyze(stab *SymbolTable, expr Expr) *SymbolTable {
	switch e := expr.(type) {
	case *Num:
	case *Variable:
		if !stab.Has(e.Name) {
			stab.AddError(&UndefinedVariableError{Name: e.Name})
		}
	case *Plus:
		a.analyze(stab, e.Left)
		a.analyze(stab, e.Right)
	case *Mult:
		a.analyze(stab, e.Left)
		a.analyze(stab, e.Right)
	case *IfThenElse:
		a.analyze(stab, e.Cond)
		a.analyze(stab, e.Then)
		a.analyze(stab, e.Else)
	case *FunctionApp:
		for _, arg := range e.Args {
			a.analyze(stab, arg)
		}

		def, ok := a.funcs.Get(e.Name)
		if !ok {
			stab.AddError(&UndefinedFunctionError{Name: e.Name})
			break
		}

		if len(def.Params) != len(e.Args) {
			stab.AddError(&ArityMismatchError{
				Name: e.Name,
				Want: len(def.Params),
				Got:  len(e.Args),
			})
		}
	default:
		// Sub, nested definitions and nil
		stab.AddError(&UnsupportedNodeError{Op: "analyze", Node: expr})
	}

	return stab
}

// checkParams rejects a definition whose parameter list repeats a name.
func checkParams(def *FunctionDef) error {
	seen := make(map[string]bool, len(def.Params))
	for _, param := range def.Params {
		if seen[param] {
			return &DuplicateParamError{Function: def.Name, Name: param}
		}
		seen[param] = true
	}

	return nil
}

func appendUnique(errs []error, more ...error) []error {
	for _, err := range more {
		isDuplicate := false
		for _, err2 := range errs {
			if err.Error() == err2.Error() {
				isDuplicate = true
				break
			}
		}

		if !isDuplicate {
			errs = append(errs, err)
		}
	}

	return errs
}

// SymbolTable is the set of names in scope at some point of the walk, plus
// the errors found so far.
type SymbolTable struct {
	Entries map[string]struct{}
	Errors  []error
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		Entries: make(map[string]struct{}),
	}
}

func (t *SymbolTable) Add(name string) {
	t.Entries[name] = struct{}{}
}

func (t *SymbolTable) Has(name string) bool {
	_, contains := t.Entries[name]
	return contains
}

func (t *SymbolTable) AddError(err error) {
	t.Errors = append(t.Errors, err)
}
