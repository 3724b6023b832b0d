package hwintrin

import (
	"vexc/report"
	"vexc/types"
)

// LookupSimdSize determines the SIMD width in bits an intrinsic call operates
// at.  Most intrinsics carry a fixed width in the table; the handful that can
// run at either 128 or 256 bits take their width from the signature of the
// call site instead.  sig may be nil for fixed-width intrinsics.
func LookupSimdSize(id Intrinsic, sig *types.Signature) int {
	desc := Lookup(id)
	if !desc.Flags.UnfixedSimdSize {
		return desc.SimdSize
	}

	if sig == nil {
		report.RaiseICE("intrinsic %s requires a signature to size", id)
	}

	if vt, ok := sig.ReturnType.(*types.VectorType); ok && vt.Bits == 256 {
		return 256
	}

	for _, param := range sig.Params {
		if vt, ok := param.(*types.VectorType); ok && vt.Bits == 256 {
			return 256
		}
	}

	// No 256-bit vector anywhere in the signature: size down to 128 provided
	// at least one vector type is present at all.
	if _, ok := sig.ReturnType.(*types.VectorType); ok {
		return 128
	}

	for _, param := range sig.Params {
		if _, ok := param.(*types.VectorType); ok {
			return 128
		}
	}

	report.RaiseICE("no vector type in signature of variable-width intrinsic %s", id)
	return 0
}
