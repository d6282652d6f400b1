package quill

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
)

const (
	builtinPrintSigned   = "print_signed"
	builtinPrintUnsigned = "print_unsigned"
)

func defineBuiltins(b *LLVMIRBuilder) {
	printf := b.mod.NewFunc("printf", types.I32, ir.NewParam("format", types.I8Ptr))
	printf.Sig.Variadic = true

	defineBuiltinFunc(b, builtinPrintSigned, builtinPrint(printf, ".fmt_signed", "%lld\n\x00"))
	defineBuiltinFunc(b, builtinPrintUnsigned, builtinPrint(printf, ".fmt_unsigned", "%llu\n\x00"))
}

type funcDefinition = func(mod *ir.Module) *ir.Func

func defineBuiltinFunc(b *LLVMIRBuilder, name string, definition funcDefinition) {
	f := definition(b.mod)
	f.SetName(name)
	b.values.Set(name, f)
}

// builtinPrint defines a function printing its i64 argument with the given
// NUL-terminated printf format.
func builtinPrint(printf *ir.Func, global, format string) funcDefinition {
	return func(mod *ir.Module) *ir.Func {
		f := mod.NewFunc("", types.Void, ir.NewParam("v", types.I64))
		b := f.NewBlock("")

		zero := constant.NewInt(types.I64, 0)

		str := constant.NewCharArrayFromString(format)
		formatGlob := mod.NewGlobalDef(global, str)

		fmtAddr := constant.NewGetElementPtr(str.Typ, formatGlob, zero, zero)

		b.NewCall(printf, fmtAddr, f.Params[0])

		b.NewRet(nil)

		return f
	}
}
