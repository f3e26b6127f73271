package arith

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

type ValueLookup struct {
	vals map[string]value.Value
}

func NewValueLookup() *ValueLookup {
	return &ValueLookup{
		vals: make(map[string]value.Value),
	}
}

func (l *ValueLookup) Get(id string) (value.Value, bool) {
	val, ok := l.vals[id]
	return val, ok
}

func (l *ValueLookup) Set(id string, val value.Value) {
	l.vals[id] = val
}

// LLVMIRBuilder lowers desugared expressions to LLVM IR. Every value is an
// i64.
type LLVMIRBuilder struct {
	mod    *ir.Module
	block  *ir.Block
	funcs  map[string]*ir.Func
	values *ValueLookup
}

func NewLLVMIRBuilder() *LLVMIRBuilder {
	builder := &LLVMIRBuilder{
		mod:    ir.NewModule(),
		funcs:  make(map[string]*ir.Func),
		values: NewValueLookup(),
	}

	defineBuiltins(builder)
	return builder
}

func (b *LLVMIRBuilder) Module() *ir.Module {
	return b.mod
}

// declare adds the signature of def so calls can be emitted before its body.
func (b *LLVMIRBuilder) declare(name string, def *FunctionDef) {
	var params []*ir.Param
	for _, p := range def.Params {
		params = append(params, ir.NewParam(p, types.I64))
	}

	b.funcs[name] = b.mod.NewFunc(name, types.I64, params...)
}

func (b *LLVMIRBuilder) function(name string, def *FunctionDef) error {
	f := b.funcs[name]

	prevBlock := b.block
	prevVals := b.values
	defer func() {
		b.block = prevBlock
		b.values = prevVals
	}()

	b.block = f.NewBlock("")
	b.values = NewValueLookup()
	for i, p := range def.Params {
		b.values.Set(p, f.Params[i])
	}

	v, err := b.recursiveLoad(def.Body)
	if err != nil {
		return err
	}

	b.block.NewRet(v)
	return nil
}

// main emits the entry point: evaluate expr, print it, return 0. The globals
// in vars are inlined as constants.
func (b *LLVMIRBuilder) main(expr Expr, vars VariableEnv) error {
	f := b.mod.NewFunc("main", types.I32)
	b.block = f.NewBlock("")

	b.values = NewValueLookup()
	for name, v := range vars {
		b.values.Set(name, constant.NewInt(types.I64, v))
	}

	v, err := b.recursiveLoad(expr)
	if err != nil {
		return err
	}

	b.block.NewCall(b.funcs[builtinPrintName], v)
	b.block.NewRet(constant.NewInt(types.I32, 0))
	return nil
}

func (b *LLVMIRBuilder) recursiveLoad(expr Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *Num:
		return constant.NewInt(types.I64, e.Value), nil
	case *Variable:
		if v, ok := b.values.Get(e.Name); ok {
			return v, nil
		}

		return nil, &UndefinedVariableError{Name: e.Name}
	case *Plus:
		l, r, err := b.loadPair(e.Left, e.Right)
		if err != nil {
			return nil, err
		}

		return b.block.NewAdd(l, r), nil
	case *Mult:
		l, r, err := b.loadPair(e.Left, e.Right)
		if err != nil {
			return nil, err
		}

		return b.block.NewMul(l, r), nil
	case *IfThenElse:
		return b.conditional(e)
	case *FunctionApp:
		return b.functionCall(e)
	}

	return nil, &UnsupportedNodeError{Op: "compile", Node: expr}
}

func (b *LLVMIRBuilder) loadPair(left, right Expr) (value.Value, value.Value, error) {
	l, err := b.recursiveLoad(left)
	if err != nil {
		return nil, nil, err
	}

	r, err := b.recursiveLoad(right)
	if err != nil {
		return nil, nil, err
	}

	return l, r, nil
}

func (b *LLVMIRBuilder) conditional(expr *IfThenElse) (value.Value, error) {
	c, err := b.recursiveLoad(expr.Cond)
	if err != nil {
		return nil, err
	}

	f := b.block.Parent
	zero := constant.NewInt(types.I64, 0)
	cond := b.block.NewICmp(enum.IPredNE, c, zero)

	thenBlock := f.NewBlock("")
	elseBlock := f.NewBlock("")
	b.block.NewCondBr(cond, thenBlock, elseBlock)

	// nested conditionals move b.block, so the phi predecessors are the
	// blocks each branch ends in
	b.block = thenBlock
	tv, err := b.recursiveLoad(expr.Then)
	if err != nil {
		return nil, err
	}
	thenEnd := b.block

	b.block = elseBlock
	ev, err := b.recursiveLoad(expr.Else)
	if err != nil {
		return nil, err
	}
	elseEnd := b.block

	merge := f.NewBlock("")
	thenEnd.NewBr(merge)
	elseEnd.NewBr(merge)

	b.block = merge
	return merge.NewPhi(ir.NewIncoming(tv, thenEnd), ir.NewIncoming(ev, elseEnd)), nil
}

func (b *LLVMIRBuilder) functionCall(expr *FunctionApp) (value.Value, error) {
	callee, ok := b.funcs[expr.Name]
	if !ok {
		return nil, &UndefinedFunctionError{Name: expr.Name}
	}

	var callVals []value.Value
	for _, arg := range expr.Args {
		argVal, err := b.recursiveLoad(arg)
		if err != nil {
			return nil, err
		}

		callVals = append(callVals, argVal)
	}

	if len(callVals) != len(callee.Params) {
		return nil, &ArityMismatchError{Name: expr.Name, Want: len(callee.Params), Got: len(callVals)}
	}

	return b.block.NewCall(callee, callVals...), nil
}
