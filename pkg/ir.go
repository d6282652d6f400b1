package quill

import (
	"fmt"
	"math"

	"fortio.org/safecast"
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
	"github.com/pkg/errors"
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

type IR interface {
	fmt.Stringer
}

type LLVMIRBuilder struct {
	mod    *ir.Module
	values *ValueLookup
}

func NewLLVMIRBuilder() *LLVMIRBuilder {
	builder := &LLVMIRBuilder{
		mod:    ir.NewModule(),
		values: NewValueLookup(),
	}

	defineBuiltins(builder)
	return builder
}

// Lower emits a main function that computes every expression and prints its
// result with the builtin matching the operands' signedness. A builder lowers
// a single batch of expressions.
func (b *LLVMIRBuilder) Lower(exprs []Expr) (IR, error) {
	f := b.mod.NewFunc("main", types.I32)
	block := f.NewBlock("")

	for _, expr := range exprs {
		v, ins, err := b.binaryExpression(expr)
		if err != nil {
			return nil, err
		}

		block.Insts = append(block.Insts, ins...)

		printer := builtinPrintSigned
		if isUnsigned(expr) {
			printer = builtinPrintUnsigned
		}

		fn, ok := b.values.Get(printer)
		if !ok {
			return nil, errors.Errorf("undefined builtin: %s", printer)
		}

		block.NewCall(fn, v)
	}

	block.NewRet(constant.NewInt(types.I32, 0))

	return b.mod, nil
}

func (b *LLVMIRBuilder) binaryExpression(expr Expr) (value.Value, []ir.Instruction, error) {
	n1, n2, err := numericOperands(expr)
	if err != nil {
		return nil, nil, err
	}

	v1, err := loadNumeric(expr, n1)
	if err != nil {
		return nil, nil, err
	}

	v2, err := loadNumeric(expr, n2)
	if err != nil {
		return nil, nil, err
	}

	_, unsigned := n1.(Unsigned)

	switch expr.Op {
	case Addition:
		op := ir.NewAdd(v1, v2)
		return op, []ir.Instruction{op}, nil
	case Subtraction:
		op := ir.NewSub(v1, v2)
		return op, []ir.Instruction{op}, nil
	case Multiplication:
		op := ir.NewMul(v1, v2)
		return op, []ir.Instruction{op}, nil
	case Division:
		if unsigned {
			op := ir.NewUDiv(v1, v2)
			return op, []ir.Instruction{op}, nil
		}

		op := ir.NewSDiv(v1, v2)
		return op, []ir.Instruction{op}, nil
	default:
		return nil, nil, LoweringError{expr, "unexpected operator " + expr.Op.String()}
	}
}

// numericOperands unwraps both operands, which must be numbers of the same
// signedness.
func numericOperands(expr Expr) (Numeric, Numeric, error) {
	l, ok := expr.Left.(Num)
	if !ok {
		return nil, nil, LoweringError{expr, "left operand is not a number"}
	}

	r, ok := expr.Right.(Num)
	if !ok {
		return nil, nil, LoweringError{expr, "right operand is not a number"}
	}

	_, lu := l.Value.(Unsigned)
	_, ru := r.Value.(Unsigned)
	if lu != ru {
		return nil, nil, LoweringError{expr, "operands differ in signedness"}
	}

	return l.Value, r.Value, nil
}

func isUnsigned(expr Expr) bool {
	n, ok := expr.Left.(Num)
	if !ok {
		return false
	}

	_, unsigned := n.Value.(Unsigned)
	return unsigned
}

func loadNumeric(expr Expr, n Numeric) (value.Value, error) {
	switch v := n.(type) {
	case Unsigned:
		i, err := safecast.Conv[int64](uint(v))
		if err != nil {
			return nil, LoweringError{expr, fmt.Sprintf("%s exceeds %d", v, int64(math.MaxInt64))}
		}

		return constant.NewInt(types.I64, i), nil
	case Signed:
		return constant.NewInt(types.I64, int64(v)), nil
	default:
		return nil, LoweringError{expr, "missing numeric value"}
	}
}
