package hwintrin

// Intrinsic uniquely identifies one hardware intrinsic operation.  The values
// are dense: they are used directly to index the descriptor table, so they
// must be kept in the same order as the authored table entries.
type Intrinsic uint16

// Enumeration of the recognized hardware intrinsics.
const (
	// IntrinsicInvalid is the "not recognized" sentinel returned by name
	// resolution.  It never has a descriptor.
	IntrinsicInvalid Intrinsic = iota

	// SSE
	SseIsSupported
	SseAdd
	SseSubtract
	SseMultiply
	SseDivide
	SseSqrt
	SseMax
	SseMin
	SseAddScalar
	SseSqrtScalar
	SseCompareEqual
	SseCompareLessThan
	SseShuffle
	SseLoadVector128
	SseLoadAlignedVector128
	SseLoadScalarVector128
	SseStore
	SseStoreAligned
	SseMoveMask
	SseConvertToInt32
	SseConvertScalarToVector128Single
	SseStaticCast
	SseSetAllVector128
	SsePrefetch0

	// SSE2
	Sse2IsSupported
	Sse2Add
	Sse2Subtract
	Sse2MultiplyLow
	Sse2CompareEqual
	Sse2ShiftLeftLogical
	Sse2ShiftRightLogical
	Sse2Shuffle
	Sse2ShuffleHigh
	Sse2ShuffleLow
	Sse2Extract
	Sse2Insert
	Sse2LoadVector128
	Sse2LoadAlignedVector128
	Sse2LoadScalarVector128
	Sse2Store
	Sse2StoreAligned
	Sse2StoreNonTemporal
	Sse2MaskMove
	Sse2MoveMask
	Sse2ConvertToInt64

	// SSE3
	Sse3IsSupported
	Sse3HorizontalAdd
	Sse3MoveAndDuplicate
	Sse3LoadDquVector128

	// SSSE3
	Ssse3IsSupported
	Ssse3Abs
	Ssse3AlignRight
	Ssse3Shuffle
	Ssse3HorizontalAdd

	// SSE4.1
	Sse41IsSupported
	Sse41Blend
	Sse41DotProduct
	Sse41Extract
	Sse41Insert
	Sse41MultiplyLow
	Sse41RoundToNearestInteger
	Sse41TestZ

	// SSE4.2
	Sse42IsSupported
	Sse42Crc32
	Sse42CompareGreaterThan

	// AVX
	AvxIsSupported
	AvxAdd
	AvxSubtract
	AvxMultiply
	AvxDivide
	AvxSqrt
	AvxCompare
	AvxShuffle
	AvxLoadVector256
	AvxLoadAlignedVector256
	AvxStore
	AvxStoreAligned
	AvxStoreAlignedNonTemporal
	AvxBroadcastScalarToVector256
	AvxExtractVector128
	AvxInsertVector128
	AvxSetAllVector256
	AvxSetVector256
	AvxGetLowerHalf
	AvxExtendToVector256
	AvxMaskLoad
	AvxMaskStore
	AvxTestC
	AvxPermute2x128
	AvxConvertToVector256Double

	// AVX2
	Avx2IsSupported
	Avx2Add
	Avx2Subtract
	Avx2MultiplyLow
	Avx2Shuffle
	Avx2Permute4x64
	Avx2BroadcastScalarToVector256
	Avx2ShiftLeftLogical
	Avx2ShiftRightLogical
	Avx2MoveMask
	Avx2GatherVector128
	Avx2GatherVector256
	Avx2GatherMaskVector128
	Avx2GatherMaskVector256

	// AES
	AesIsSupported
	AesEncrypt
	AesDecrypt

	// BMI1
	Bmi1IsSupported
	Bmi1AndNot
	Bmi1ExtractLowestSetBit
	Bmi1ResetLowestSetBit
	Bmi1TrailingZeroCount

	// BMI2
	Bmi2IsSupported
	Bmi2ZeroHighBits
	Bmi2ParallelBitDeposit
	Bmi2ParallelBitExtract
	Bmi2MultiplyNoFlags

	// FMA
	FmaIsSupported
	FmaMultiplyAdd
	FmaMultiplyAddScalar
	FmaMultiplySubtract

	// LZCNT
	LzcntIsSupported
	LzcntLeadingZeroCount

	// PCLMULQDQ
	PclmulqdqIsSupported
	PclmulqdqCarrylessMultiply

	// POPCNT
	PopcntIsSupported
	PopcntPopCount

	// NumIntrinsics is the number of recognized intrinsics plus the invalid
	// sentinel.
	NumIntrinsics
)

// String returns the qualified `Class.Method` name of the intrinsic.
func (id Intrinsic) String() string {
	if id == IntrinsicInvalid || id >= NumIntrinsics {
		return "Invalid"
	}

	desc := Lookup(id)
	return desc.ISA.ClassName() + "." + desc.Name
}
