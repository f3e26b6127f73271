package arith

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
)

const builtinPrintName = "arith.print"

// reservedNames can't be used for user functions in a compiled module.
var reservedNames = map[string]bool{
	"main":           true,
	"printf":         true,
	builtinPrintName: true,
}

func defineBuiltins(b *LLVMIRBuilder) {
	defineBuiltinFunc(b, builtinPrintName, builtinPrint)
}

type funcDefinition = func(mod *ir.Module) *ir.Func

func defineBuiltinFunc(b *LLVMIRBuilder, name string, definition funcDefinition) {
	f := definition(b.mod)
	f.SetName(name)
	b.funcs[name] = f
}

// builtinPrint prints an i64 followed by a newline through printf.
func builtinPrint(mod *ir.Module) *ir.Func {
	f := mod.NewFunc("", types.Void, ir.NewParam("v", types.I64))
	b := f.NewBlock("")

	printf := mod.NewFunc("printf", types.I32, ir.NewParam("format", types.I8Ptr))
	printf.Sig.Variadic = true

	zero := constant.NewInt(types.I64, 0)

	format := constant.NewCharArrayFromString("%lld\n\x00")
	formatGlob := mod.NewGlobalDef(".arith_printf_fmt", format)
	formatGlob.Immutable = true

	fmtAddr := constant.NewGetElementPtr(format.Typ, formatGlob, zero, zero)

	b.NewCall(printf, fmtAddr, f.Params[0])

	b.NewRet(nil)

	return f
}
