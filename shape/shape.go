package shape

import (
	"vexc/hwintrin"
	"vexc/ir"
	"vexc/report"
	"vexc/types"
)

// The shape package classifies hardware intrinsic call nodes against the
// intrinsic table: it settles the questions that depend on the call site
// rather than on the table alone (actual operand counts, which operand is an
// immediate, the element type a generic call runs at) and validates the node
// before it may be handed to code generation.

// OperandCount returns the number of operands the given call actually takes.
// Most intrinsics have a fixed count in the table; entries authored with a
// count of -1 take theirs from the call node itself.
func OperandCount(call *ir.HWIntrinsicCall) int {
	n := hwintrin.LookupNumArgs(call.Intrin)
	if n == -1 {
		return call.NumOperands()
	}

	return n
}

// IsImmOp reports whether the final operand of the call is an immediate
// control byte.  Intrinsics outside the immediate category never take one.
// Within the category, an intrinsic marked as only maybe taking an immediate
// (the shifts, whose count operand may instead be a full vector) takes one
// exactly when the final operand is not itself a vector.
func IsImmOp(call *ir.HWIntrinsicCall) bool {
	if hwintrin.LookupCategory(call.Intrin) != hwintrin.CategoryImm {
		return false
	}

	if !hwintrin.MaybeImm(call.Intrin) {
		return true
	}

	if call.NumOperands() == 0 {
		return false
	}

	_, isVec := call.LastOperand().Type().(*types.VectorType)
	return !isVec
}

// -----------------------------------------------------------------------------

// ImmLowering describes how the immediate operand of a call will reach the
// generated instruction.
type ImmLowering int

const (
	// ImmNone indicates the call takes no immediate operand.
	ImmNone ImmLowering = iota

	// ImmDirect indicates the immediate is a compile-time constant encoded
	// straight into the instruction.
	ImmDirect

	// ImmJumpTable indicates the immediate is only known at run time, so the
	// back end emits a jump table switching over every valid value.
	ImmJumpTable
)

// PlanImmOperand decides how the immediate operand of the call lowers.  A
// constant operand must fall inside the intrinsic's accepted range; a
// non-constant operand is lowered through a jump table unless the intrinsic
// forbids one, in which case the call site must supply a constant.
func PlanImmOperand(call *ir.HWIntrinsicCall) (ImmLowering, error) {
	if !IsImmOp(call) {
		return ImmNone, nil
	}

	if call.NumOperands() == 0 {
		report.RaiseICE("immediate intrinsic %s classified with no operands", call.Intrin)
	}

	lastOp := call.LastOperand()
	if c, ok := lastOp.(*ir.ConstInt); ok {
		if !hwintrin.InImmRange(call.Intrin, int(c.IntValue)) {
			return ImmNone, report.Raise(lastOp.Span(),
				"control byte %d for %s is out of range: expected a value between 0 and %d",
				c.IntValue, call.Intrin, hwintrin.LookupImmUpperBound(call.Intrin))
		}

		return ImmDirect, nil
	}

	if hwintrin.NoJmpTableImm(call.Intrin) {
		return ImmNone, report.Raise(lastOp.Span(),
			"control byte for %s must be a compile-time constant", call.Intrin)
	}

	return ImmJumpTable, nil
}

// -----------------------------------------------------------------------------

// ResolveBaseType infers the element type an intrinsic call operates on and
// records it on the call node.  The table may redirect inference at the type
// of the first or second operand; otherwise the first type argument wins when
// present, and the vector type of the first operand is consulted last.
func ResolveBaseType(call *ir.HWIntrinsicCall) error {
	flags := hwintrin.LookupFlags(call.Intrin)

	switch {
	case flags.BaseTypeFromFirstArg:
		return baseTypeFromOperand(call, 0)
	case flags.BaseTypeFromSecondArg:
		return baseTypeFromOperand(call, 1)
	}

	if len(call.TypeArgs) > 0 {
		pt, ok := asElemType(call.TypeArgs[0])
		if !ok {
			return report.Raise(call.Span(),
				"type argument %s of %s is not a supported element type",
				call.TypeArgs[0].Repr(), call.Intrin)
		}

		call.BaseType = pt
		return nil
	}

	if call.NumOperands() > 0 {
		return baseTypeFromOperand(call, 0)
	}

	report.RaiseICE("cannot infer element type of %s: no type arguments or operands", call.Intrin)
	return nil
}

func baseTypeFromOperand(call *ir.HWIntrinsicCall, n int) error {
	if call.NumOperands() <= n {
		report.RaiseICE("intrinsic %s infers its element type from operand %d of %d",
			call.Intrin, n, call.NumOperands())
	}

	operand := call.Operands[n]
	pt, ok := asElemType(operand.Type())
	if !ok {
		return report.Raise(operand.Span(),
			"operand of type %s does not determine an element type for %s",
			operand.Type().Repr(), call.Intrin)
	}

	call.BaseType = pt
	return nil
}

// asElemType extracts the primitive element type carried by typ: vectors
// yield their element type, primitives yield themselves, pointers yield the
// element type they point at.
func asElemType(typ types.Type) (types.PrimitiveType, bool) {
	switch v := typ.(type) {
	case types.PrimitiveType:
		return v, true
	case *types.VectorType:
		return v.Elem, true
	case *types.PointerType:
		return asElemType(v.Elem)
	}

	return 0, false
}

// -----------------------------------------------------------------------------

// CheckTypeArguments validates the type argument list of the call against the
// genericity of the intrinsic: one-type generics take exactly one numeric
// type argument, two-type generics take exactly two, and everything else
// takes none.
func CheckTypeArguments(call *ir.HWIntrinsicCall) error {
	var want int
	switch {
	case hwintrin.IsOneTypeGeneric(call.Intrin):
		want = 1
	case hwintrin.IsTwoTypeGeneric(call.Intrin):
		want = 2
	}

	if len(call.TypeArgs) != want {
		return report.Raise(call.Span(),
			"%s takes %d type arguments: received %d",
			call.Intrin, want, len(call.TypeArgs))
	}

	for _, ta := range call.TypeArgs {
		pt, ok := ta.(types.PrimitiveType)
		if !ok || !(pt.IsIntegral() || pt.IsFloating()) {
			return report.Raise(call.Span(),
				"type argument %s of %s is not a numeric type", ta.Repr(), call.Intrin)
		}
	}

	return nil
}

// ValidateForCodegen asserts that the call node is in a state code generation
// can consume.  Violations are compiler defects, not user errors: helpers
// that should have been expanded earlier, or a resolved element type with no
// opcode in the intrinsic's table row.
func ValidateForCodegen(call *ir.HWIntrinsicCall) {
	if !hwintrin.RequiresCodegen(call.Intrin) {
		report.RaiseICE("%s should have been expanded before code generation", call.Intrin)
	}

	switch hwintrin.LookupCategory(call.Intrin) {
	case hwintrin.CategoryIsSupportedProperty, hwintrin.CategoryHelper:
		return
	}

	if hwintrin.GeneratesMultipleIns(call.Intrin) || hwintrin.HasSpecialCodegen(call.Intrin) {
		return
	}

	if hwintrin.LookupIns(call.Intrin, call.BaseType) == hwintrin.OpInvalid {
		report.RaiseICE("%s has no instruction for element type %s",
			call.Intrin, call.BaseType.Repr())
	}
}
