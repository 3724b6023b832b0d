package ir

import (
	"vexc/hwintrin"
	"vexc/types"
)

// HWIntrinsicCall represents an invocation of a hardware intrinsic method.
// The front end builds one of these whenever a call target resolves to an
// intrinsic identifier instead of an ordinary function; the classification
// passes then shape it using the intrinsic's table entry before it reaches
// code generation.
type HWIntrinsicCall struct {
	ValueBase

	// The intrinsic being invoked.
	Intrin hwintrin.Intrinsic

	// The call operands in source order.  For immediate-taking intrinsics the
	// control byte is always the last operand.
	Operands []Value

	// The explicit type arguments supplied at the call site, in source order.
	// Empty for non-generic intrinsics.
	TypeArgs []types.Type

	// BaseType is the element type the call operates on once inference has
	// run.  It selects the opcode column of the intrinsic's table row.
	BaseType types.PrimitiveType
}

// NumOperands returns the operand count of the call.
func (call *HWIntrinsicCall) NumOperands() int {
	return len(call.Operands)
}

// LastOperand returns the final operand of the call.  It panics on a call
// with no operands; callers gate on NumOperands first.
func (call *HWIntrinsicCall) LastOperand() Value {
	return call.Operands[len(call.Operands)-1]
}
