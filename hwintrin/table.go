package hwintrin

import "vexc/types"

// descriptors is the authored intrinsic table: one entry per intrinsic, in
// identifier order.  The shape of each row is a build-time contract: id,
// method name, owning instruction set, default immediate, nominal SIMD width,
// nominal operand count, one opcode slot per element type, immediate upper
// bound, category, flag record.  The init hook in descriptor.go validates the
// ordering before any compilation begins; nothing mutates this table
// afterward.
var descriptors = []Descriptor{
	// ---------------------------------------------------------------- SSE --
	{ID: SseIsSupported, Name: "IsSupported", ISA: ISASSE,
		Category: CategoryIsSupportedProperty, Flags: Flags{NoFloatingPointUsed: true}},
	{ID: SseAdd, Name: "Add", ISA: ISASSE, SimdSize: 128, NumArgs: 2,
		Ins:      rowFloats(OpAddps, OpInvalid),
		Category: CategorySimpleSIMD, Flags: Flags{Commutative: true}},
	{ID: SseSubtract, Name: "Subtract", ISA: ISASSE, SimdSize: 128, NumArgs: 2,
		Ins:      rowFloats(OpSubps, OpInvalid),
		Category: CategorySimpleSIMD},
	{ID: SseMultiply, Name: "Multiply", ISA: ISASSE, SimdSize: 128, NumArgs: 2,
		Ins:      rowFloats(OpMulps, OpInvalid),
		Category: CategorySimpleSIMD, Flags: Flags{Commutative: true}},
	{ID: SseDivide, Name: "Divide", ISA: ISASSE, SimdSize: 128, NumArgs: 2,
		Ins:      rowFloats(OpDivps, OpInvalid),
		Category: CategorySimpleSIMD},
	{ID: SseSqrt, Name: "Sqrt", ISA: ISASSE, SimdSize: 128, NumArgs: 1,
		Ins:      rowFloats(OpSqrtps, OpInvalid),
		Category: CategorySimpleSIMD, Flags: Flags{NoRMWSemantics: true}},
	{ID: SseMax, Name: "Max", ISA: ISASSE, SimdSize: 128, NumArgs: 2,
		Ins:      rowFloats(OpMaxps, OpInvalid),
		Category: CategorySimpleSIMD},
	{ID: SseMin, Name: "Min", ISA: ISASSE, SimdSize: 128, NumArgs: 2,
		Ins:      rowFloats(OpMinps, OpInvalid),
		Category: CategorySimpleSIMD},
	{ID: SseAddScalar, Name: "AddScalar", ISA: ISASSE, SimdSize: 128, NumArgs: 2,
		Ins:      rowFloats(OpAddss, OpInvalid),
		Category: CategorySIMDScalar, Flags: Flags{CopyUpperBits: true}},
	{ID: SseSqrtScalar, Name: "SqrtScalar", ISA: ISASSE, SimdSize: 128, NumArgs: 1,
		Ins:      rowFloats(OpSqrtss, OpInvalid),
		Category: CategorySIMDScalar, Flags: Flags{CopyUpperBits: true}},
	{ID: SseCompareEqual, Name: "CompareEqual", ISA: ISASSE, ImmDefault: 0, SimdSize: 128, NumArgs: 2,
		Ins:      rowFloats(OpCmpps, OpInvalid),
		Category: CategorySimpleSIMD, Flags: Flags{Commutative: true}},
	{ID: SseCompareLessThan, Name: "CompareLessThan", ISA: ISASSE, ImmDefault: 1, SimdSize: 128, NumArgs: 2,
		Ins:      rowFloats(OpCmpps, OpInvalid),
		Category: CategorySimpleSIMD},
	{ID: SseShuffle, Name: "Shuffle", ISA: ISASSE, SimdSize: 128, NumArgs: 3,
		Ins:      rowFloats(OpShufps, OpInvalid),
		Category: CategoryImm, Flags: Flags{FullRangeImm: true}},
	{ID: SseLoadVector128, Name: "LoadVector128", ISA: ISASSE, SimdSize: 128, NumArgs: 1,
		Ins:      rowFloats(OpMovups, OpInvalid),
		Category: CategoryMemoryLoad, Flags: Flags{NoContainment: true}},
	{ID: SseLoadAlignedVector128, Name: "LoadAlignedVector128", ISA: ISASSE, SimdSize: 128, NumArgs: 1,
		Ins:      rowFloats(OpMovaps, OpInvalid),
		Category: CategoryMemoryLoad, Flags: Flags{NoContainment: true}},
	{ID: SseLoadScalarVector128, Name: "LoadScalarVector128", ISA: ISASSE, SimdSize: 128, NumArgs: 1,
		Ins:      rowFloats(OpMovss, OpInvalid),
		Category: CategoryMemoryLoad, Flags: Flags{NoContainment: true}},
	{ID: SseStore, Name: "Store", ISA: ISASSE, SimdSize: 128, NumArgs: 2,
		Ins:      rowFloats(OpMovups, OpInvalid),
		Category: CategoryMemoryStore, Flags: Flags{NoContainment: true}},
	{ID: SseStoreAligned, Name: "StoreAligned", ISA: ISASSE, SimdSize: 128, NumArgs: 2,
		Ins:      rowFloats(OpMovaps, OpInvalid),
		Category: CategoryMemoryStore, Flags: Flags{NoContainment: true}},
	{ID: SseMoveMask, Name: "MoveMask", ISA: ISASSE, SimdSize: 128, NumArgs: 1,
		Ins:      rowFloats(OpMovmskps, OpInvalid),
		Category: CategorySpecial,
		Flags:    Flags{NoContainment: true, NoRMWSemantics: true, BaseTypeFromFirstArg: true}},
	{ID: SseConvertToInt32, Name: "ConvertToInt32", ISA: ISASSE, SimdSize: 128, NumArgs: 1,
		Ins:      rowFloats(OpCvtss2si, OpInvalid),
		Category: CategorySIMDScalar, Flags: Flags{BaseTypeFromFirstArg: true}},
	{ID: SseConvertScalarToVector128Single, Name: "ConvertScalarToVector128Single", ISA: ISASSE,
		SimdSize: 128, NumArgs: 2,
		Ins:      rowOf(map[types.PrimitiveType]Opcode{types.PrimTypeI32: OpCvtsi2ss}),
		Category: CategorySIMDScalar,
		Flags:    Flags{BaseTypeFromSecondArg: true, CopyUpperBits: true}},
	{ID: SseStaticCast, Name: "StaticCast", ISA: ISASSE, SimdSize: 128, NumArgs: 1,
		Category: CategoryHelper,
		Flags:    Flags{TwoTypeGeneric: true, SkipCodegen: true}},
	{ID: SseSetAllVector128, Name: "SetAllVector128", ISA: ISASSE, SimdSize: 128, NumArgs: 1,
		Category: CategoryHelper,
		Flags:    Flags{OneTypeGeneric: true, MultiIns: true}},
	{ID: SsePrefetch0, Name: "Prefetch0", ISA: ISASSE, NumArgs: 1,
		Ins:      rowOf(map[types.PrimitiveType]Opcode{types.PrimTypeI8: OpPrefetcht0, types.PrimTypeU8: OpPrefetcht0}),
		Category: CategorySpecial,
		Flags:    Flags{NoContainment: true, NoRMWSemantics: true, NoFloatingPointUsed: true, SpecialCodegen: true}},

	// --------------------------------------------------------------- SSE2 --
	{ID: Sse2IsSupported, Name: "IsSupported", ISA: ISASSE2,
		Category: CategoryIsSupportedProperty, Flags: Flags{NoFloatingPointUsed: true}},
	{ID: Sse2Add, Name: "Add", ISA: ISASSE2, SimdSize: 128, NumArgs: 2,
		Ins:      mergeRows(rowInts(OpPaddb, OpPaddw, OpPaddd, OpPaddq), rowFloats(OpInvalid, OpAddpd)),
		Category: CategorySimpleSIMD, Flags: Flags{Commutative: true}},
	{ID: Sse2Subtract, Name: "Subtract", ISA: ISASSE2, SimdSize: 128, NumArgs: 2,
		Ins:      mergeRows(rowInts(OpPsubb, OpPsubw, OpPsubd, OpPsubq), rowFloats(OpInvalid, OpSubpd)),
		Category: CategorySimpleSIMD},
	{ID: Sse2MultiplyLow, Name: "MultiplyLow", ISA: ISASSE2, SimdSize: 128, NumArgs: 2,
		Ins: rowOf(map[types.PrimitiveType]Opcode{
			types.PrimTypeI16: OpPmullw, types.PrimTypeU16: OpPmullw}),
		Category: CategorySimpleSIMD, Flags: Flags{Commutative: true}},
	{ID: Sse2CompareEqual, Name: "CompareEqual", ISA: ISASSE2, ImmDefault: 0, SimdSize: 128, NumArgs: 2,
		Ins: mergeRows(
			rowInts(OpPcmpeqb, OpPcmpeqw, OpPcmpeqd, OpInvalid),
			rowFloats(OpInvalid, OpCmppd)),
		Category: CategorySimpleSIMD, Flags: Flags{Commutative: true}},
	{ID: Sse2ShiftLeftLogical, Name: "ShiftLeftLogical", ISA: ISASSE2, SimdSize: 128, NumArgs: 2,
		Ins:      rowInts(OpInvalid, OpPsllw, OpPslld, OpPsllq),
		Category: CategoryImm,
		Flags:    Flags{FullRangeImm: true, MaybeImm: true, NoJmpTableImm: true}},
	{ID: Sse2ShiftRightLogical, Name: "ShiftRightLogical", ISA: ISASSE2, SimdSize: 128, NumArgs: 2,
		Ins:      rowInts(OpInvalid, OpPsrlw, OpPsrld, OpPsrlq),
		Category: CategoryImm,
		Flags:    Flags{FullRangeImm: true, MaybeImm: true, NoJmpTableImm: true}},
	{ID: Sse2Shuffle, Name: "Shuffle", ISA: ISASSE2, SimdSize: 128, NumArgs: -1,
		Ins: mergeRows(
			rowOf(map[types.PrimitiveType]Opcode{
				types.PrimTypeI32: OpPshufd, types.PrimTypeU32: OpPshufd}),
			rowFloats(OpInvalid, OpShufpd)),
		Category: CategoryImm, Flags: Flags{FullRangeImm: true}},
	{ID: Sse2ShuffleHigh, Name: "ShuffleHigh", ISA: ISASSE2, SimdSize: 128, NumArgs: 2,
		Ins: rowOf(map[types.PrimitiveType]Opcode{
			types.PrimTypeI16: OpPshufhw, types.PrimTypeU16: OpPshufhw}),
		Category: CategoryImm, Flags: Flags{FullRangeImm: true}},
	{ID: Sse2ShuffleLow, Name: "ShuffleLow", ISA: ISASSE2, SimdSize: 128, NumArgs: 2,
		Ins: rowOf(map[types.PrimitiveType]Opcode{
			types.PrimTypeI16: OpPshuflw, types.PrimTypeU16: OpPshuflw}),
		Category: CategoryImm, Flags: Flags{FullRangeImm: true}},
	{ID: Sse2Extract, Name: "Extract", ISA: ISASSE2, SimdSize: 128, NumArgs: 2,
		Ins: rowOf(map[types.PrimitiveType]Opcode{
			types.PrimTypeI16: OpPextrw, types.PrimTypeU16: OpPextrw}),
		ImmUpperBound: 7,
		Category:      CategoryImm, Flags: Flags{NoFloatingPointUsed: true}},
	{ID: Sse2Insert, Name: "Insert", ISA: ISASSE2, SimdSize: 128, NumArgs: 3,
		Ins: rowOf(map[types.PrimitiveType]Opcode{
			types.PrimTypeI16: OpPinsrw, types.PrimTypeU16: OpPinsrw}),
		ImmUpperBound: 7,
		Category:      CategoryImm, Flags: Flags{NoFloatingPointUsed: true}},
	{ID: Sse2LoadVector128, Name: "LoadVector128", ISA: ISASSE2, SimdSize: 128, NumArgs: 1,
		Ins:      mergeRows(rowInts(OpMovdqu, OpMovdqu, OpMovdqu, OpMovdqu), rowFloats(OpInvalid, OpMovupd)),
		Category: CategoryMemoryLoad, Flags: Flags{NoContainment: true}},
	{ID: Sse2LoadAlignedVector128, Name: "LoadAlignedVector128", ISA: ISASSE2, SimdSize: 128, NumArgs: 1,
		Ins:      mergeRows(rowInts(OpMovdqa, OpMovdqa, OpMovdqa, OpMovdqa), rowFloats(OpInvalid, OpMovapd)),
		Category: CategoryMemoryLoad, Flags: Flags{NoContainment: true}},
	{ID: Sse2LoadScalarVector128, Name: "LoadScalarVector128", ISA: ISASSE2, SimdSize: 128, NumArgs: 1,
		Ins: rowOf(map[types.PrimitiveType]Opcode{
			types.PrimTypeI64: OpMovq, types.PrimTypeU64: OpMovq, types.PrimTypeF64: OpMovsd}),
		Category: CategoryMemoryLoad, Flags: Flags{NoContainment: true}},
	{ID: Sse2Store, Name: "Store", ISA: ISASSE2, SimdSize: 128, NumArgs: 2,
		Ins:      mergeRows(rowInts(OpMovdqu, OpMovdqu, OpMovdqu, OpMovdqu), rowFloats(OpInvalid, OpMovupd)),
		Category: CategoryMemoryStore, Flags: Flags{NoContainment: true}},
	{ID: Sse2StoreAligned, Name: "StoreAligned", ISA: ISASSE2, SimdSize: 128, NumArgs: 2,
		Ins:      mergeRows(rowInts(OpMovdqa, OpMovdqa, OpMovdqa, OpMovdqa), rowFloats(OpInvalid, OpMovapd)),
		Category: CategoryMemoryStore, Flags: Flags{NoContainment: true}},
	{ID: Sse2StoreNonTemporal, Name: "StoreNonTemporal", ISA: ISASSE2, NumArgs: 2,
		Ins: rowOf(map[types.PrimitiveType]Opcode{
			types.PrimTypeI32: OpMovnti, types.PrimTypeU32: OpMovnti,
			types.PrimTypeI64: OpMovnti, types.PrimTypeU64: OpMovnti}),
		Category: CategoryMemoryStore,
		Flags:    Flags{NoContainment: true, NoFloatingPointUsed: true}},
	{ID: Sse2MaskMove, Name: "MaskMove", ISA: ISASSE2, SimdSize: 128, NumArgs: 3,
		Ins: rowOf(map[types.PrimitiveType]Opcode{
			types.PrimTypeI8: OpMaskmovdqu, types.PrimTypeU8: OpMaskmovdqu}),
		Category: CategorySpecial,
		Flags:    Flags{NoContainment: true, SpecialCodegen: true}},
	{ID: Sse2MoveMask, Name: "MoveMask", ISA: ISASSE2, SimdSize: 128, NumArgs: 1,
		Ins: mergeRows(
			rowOf(map[types.PrimitiveType]Opcode{
				types.PrimTypeI8: OpPmovmskb, types.PrimTypeU8: OpPmovmskb}),
			rowFloats(OpInvalid, OpMovmskpd)),
		Category: CategorySpecial,
		Flags:    Flags{NoContainment: true, NoRMWSemantics: true, BaseTypeFromFirstArg: true}},
	{ID: Sse2ConvertToInt64, Name: "ConvertToInt64", ISA: ISASSE2, SimdSize: 128, NumArgs: 1,
		Ins: rowOf(map[types.PrimitiveType]Opcode{
			types.PrimTypeI64: OpMovq, types.PrimTypeF64: OpCvtsd2si}),
		Category: CategorySIMDScalar,
		Flags:    Flags{SixtyFourBitOnly: true, BaseTypeFromFirstArg: true}},

	// --------------------------------------------------------------- SSE3 --
	{ID: Sse3IsSupported, Name: "IsSupported", ISA: ISASSE3,
		Category: CategoryIsSupportedProperty, Flags: Flags{NoFloatingPointUsed: true}},
	{ID: Sse3HorizontalAdd, Name: "HorizontalAdd", ISA: ISASSE3, SimdSize: 128, NumArgs: 2,
		Ins:      rowFloats(OpHaddps, OpHaddpd),
		Category: CategorySimpleSIMD},
	{ID: Sse3MoveAndDuplicate, Name: "MoveAndDuplicate", ISA: ISASSE3, SimdSize: 128, NumArgs: 1,
		Ins:      rowFloats(OpInvalid, OpMovddup),
		Category: CategorySimpleSIMD, Flags: Flags{NoRMWSemantics: true}},
	{ID: Sse3LoadDquVector128, Name: "LoadDquVector128", ISA: ISASSE3, SimdSize: 128, NumArgs: 1,
		Ins:      rowInts(OpLddqu, OpLddqu, OpLddqu, OpLddqu),
		Category: CategoryMemoryLoad, Flags: Flags{NoContainment: true}},

	// -------------------------------------------------------------- SSSE3 --
	{ID: Ssse3IsSupported, Name: "IsSupported", ISA: ISASSSE3,
		Category: CategoryIsSupportedProperty, Flags: Flags{NoFloatingPointUsed: true}},
	{ID: Ssse3Abs, Name: "Abs", ISA: ISASSSE3, SimdSize: 128, NumArgs: 1,
		Ins: rowOf(map[types.PrimitiveType]Opcode{
			types.PrimTypeI8: OpPabsb, types.PrimTypeI16: OpPabsw, types.PrimTypeI32: OpPabsd}),
		Category: CategorySimpleSIMD,
		Flags:    Flags{BaseTypeFromFirstArg: true, NoRMWSemantics: true}},
	{ID: Ssse3AlignRight, Name: "AlignRight", ISA: ISASSSE3, SimdSize: 128, NumArgs: 3,
		Ins: rowOf(map[types.PrimitiveType]Opcode{
			types.PrimTypeI8: OpPalignr, types.PrimTypeU8: OpPalignr}),
		Category: CategoryImm, Flags: Flags{FullRangeImm: true}},
	{ID: Ssse3Shuffle, Name: "Shuffle", ISA: ISASSSE3, SimdSize: 128, NumArgs: 2,
		Ins: rowOf(map[types.PrimitiveType]Opcode{
			types.PrimTypeI8: OpPshufb, types.PrimTypeU8: OpPshufb}),
		Category: CategorySimpleSIMD},
	{ID: Ssse3HorizontalAdd, Name: "HorizontalAdd", ISA: ISASSSE3, SimdSize: 128, NumArgs: 2,
		Ins: rowOf(map[types.PrimitiveType]Opcode{
			types.PrimTypeI16: OpPhaddw, types.PrimTypeI32: OpPhaddd}),
		Category: CategorySimpleSIMD},

	// ------------------------------------------------------------- SSE4.1 --
	{ID: Sse41IsSupported, Name: "IsSupported", ISA: ISASSE41,
		Category: CategoryIsSupportedProperty, Flags: Flags{NoFloatingPointUsed: true}},
	{ID: Sse41Blend, Name: "Blend", ISA: ISASSE41, SimdSize: 128, NumArgs: 3,
		Ins: mergeRows(
			rowOf(map[types.PrimitiveType]Opcode{
				types.PrimTypeI16: OpPblendw, types.PrimTypeU16: OpPblendw}),
			rowFloats(OpBlendps, OpBlendpd)),
		Category: CategoryImm, Flags: Flags{FullRangeImm: true}},
	{ID: Sse41DotProduct, Name: "DotProduct", ISA: ISASSE41, SimdSize: 128, NumArgs: 3,
		Ins:      rowFloats(OpDpps, OpDppd),
		Category: CategoryImm, Flags: Flags{FullRangeImm: true}},
	{ID: Sse41Extract, Name: "Extract", ISA: ISASSE41, SimdSize: 128, NumArgs: 2,
		Ins:           rowFloats(OpExtractps, OpInvalid),
		ImmUpperBound: 3,
		Category:      CategoryImm},
	{ID: Sse41Insert, Name: "Insert", ISA: ISASSE41, SimdSize: 128, NumArgs: 3,
		Ins:      rowFloats(OpInsertps, OpInvalid),
		Category: CategoryImm, Flags: Flags{FullRangeImm: true}},
	{ID: Sse41MultiplyLow, Name: "MultiplyLow", ISA: ISASSE41, SimdSize: 128, NumArgs: 2,
		Ins: rowOf(map[types.PrimitiveType]Opcode{
			types.PrimTypeI32: OpPmulld, types.PrimTypeU32: OpPmulld}),
		Category: CategorySimpleSIMD, Flags: Flags{Commutative: true}},
	{ID: Sse41RoundToNearestInteger, Name: "RoundToNearestInteger", ISA: ISASSE41,
		ImmDefault: 8, SimdSize: 128, NumArgs: 1,
		Ins:      rowFloats(OpRoundps, OpRoundpd),
		Category: CategorySimpleSIMD, Flags: Flags{NoRMWSemantics: true}},
	{ID: Sse41TestZ, Name: "TestZ", ISA: ISASSE41, SimdSize: 128, NumArgs: 2,
		Ins:      rowInts(OpPtest, OpPtest, OpPtest, OpPtest),
		Category: CategorySpecial,
		Flags:    Flags{MultiIns: true, NoRMWSemantics: true}},

	// ------------------------------------------------------------- SSE4.2 --
	{ID: Sse42IsSupported, Name: "IsSupported", ISA: ISASSE42,
		Category: CategoryIsSupportedProperty, Flags: Flags{NoFloatingPointUsed: true}},
	{ID: Sse42Crc32, Name: "Crc32", ISA: ISASSE42, NumArgs: 2,
		Ins:      rowInts(OpCrc32, OpCrc32, OpCrc32, OpCrc32),
		Category: CategoryScalar,
		Flags:    Flags{NoFloatingPointUsed: true, SecondArgMaybe64Bit: true}},
	{ID: Sse42CompareGreaterThan, Name: "CompareGreaterThan", ISA: ISASSE42, SimdSize: 128, NumArgs: 2,
		Ins:      rowOf(map[types.PrimitiveType]Opcode{types.PrimTypeI64: OpPcmpgtq}),
		Category: CategorySimpleSIMD},

	// ---------------------------------------------------------------- AVX --
	{ID: AvxIsSupported, Name: "IsSupported", ISA: ISAAVX,
		Category: CategoryIsSupportedProperty, Flags: Flags{NoFloatingPointUsed: true}},
	{ID: AvxAdd, Name: "Add", ISA: ISAAVX, SimdSize: 256, NumArgs: 2,
		Ins:      rowFloats(OpAddps, OpAddpd),
		Category: CategorySimpleSIMD, Flags: Flags{Commutative: true}},
	{ID: AvxSubtract, Name: "Subtract", ISA: ISAAVX, SimdSize: 256, NumArgs: 2,
		Ins:      rowFloats(OpSubps, OpSubpd),
		Category: CategorySimpleSIMD},
	{ID: AvxMultiply, Name: "Multiply", ISA: ISAAVX, SimdSize: 256, NumArgs: 2,
		Ins:      rowFloats(OpMulps, OpMulpd),
		Category: CategorySimpleSIMD, Flags: Flags{Commutative: true}},
	{ID: AvxDivide, Name: "Divide", ISA: ISAAVX, SimdSize: 256, NumArgs: 2,
		Ins:      rowFloats(OpDivps, OpDivpd),
		Category: CategorySimpleSIMD},
	{ID: AvxSqrt, Name: "Sqrt", ISA: ISAAVX, SimdSize: 256, NumArgs: 1,
		Ins:      rowFloats(OpSqrtps, OpSqrtpd),
		Category: CategorySimpleSIMD, Flags: Flags{NoRMWSemantics: true}},
	{ID: AvxCompare, Name: "Compare", ISA: ISAAVX, SimdSize: 256, NumArgs: 3,
		Ins:           rowFloats(OpCmpps, OpCmppd),
		ImmUpperBound: 31,
		Category:      CategoryImm},
	{ID: AvxShuffle, Name: "Shuffle", ISA: ISAAVX, SimdSize: 256, NumArgs: 3,
		Ins:      rowFloats(OpShufps, OpShufpd),
		Category: CategoryImm, Flags: Flags{FullRangeImm: true}},
	{ID: AvxLoadVector256, Name: "LoadVector256", ISA: ISAAVX, SimdSize: 256, NumArgs: 1,
		Ins:      mergeRows(rowInts(OpMovdqu, OpMovdqu, OpMovdqu, OpMovdqu), rowFloats(OpMovups, OpMovupd)),
		Category: CategoryMemoryLoad, Flags: Flags{NoContainment: true}},
	{ID: AvxLoadAlignedVector256, Name: "LoadAlignedVector256", ISA: ISAAVX, SimdSize: 256, NumArgs: 1,
		Ins:      mergeRows(rowInts(OpMovdqa, OpMovdqa, OpMovdqa, OpMovdqa), rowFloats(OpMovaps, OpMovapd)),
		Category: CategoryMemoryLoad, Flags: Flags{NoContainment: true}},
	{ID: AvxStore, Name: "Store", ISA: ISAAVX, SimdSize: 256, NumArgs: 2,
		Ins:      mergeRows(rowInts(OpMovdqu, OpMovdqu, OpMovdqu, OpMovdqu), rowFloats(OpMovups, OpMovupd)),
		Category: CategoryMemoryStore, Flags: Flags{NoContainment: true}},
	{ID: AvxStoreAligned, Name: "StoreAligned", ISA: ISAAVX, SimdSize: 256, NumArgs: 2,
		Ins:      mergeRows(rowInts(OpMovdqa, OpMovdqa, OpMovdqa, OpMovdqa), rowFloats(OpMovaps, OpMovapd)),
		Category: CategoryMemoryStore, Flags: Flags{NoContainment: true}},
	{ID: AvxStoreAlignedNonTemporal, Name: "StoreAlignedNonTemporal", ISA: ISAAVX, SimdSize: 256, NumArgs: 2,
		Ins:      mergeRows(rowInts(OpMovntdq, OpMovntdq, OpMovntdq, OpMovntdq), rowFloats(OpMovntps, OpMovntpd)),
		Category: CategoryMemoryStore, Flags: Flags{NoContainment: true}},
	{ID: AvxBroadcastScalarToVector256, Name: "BroadcastScalarToVector256", ISA: ISAAVX,
		SimdSize: 256, NumArgs: 1,
		Ins:      rowFloats(OpVbroadcastss, OpVbroadcastsd),
		Category: CategoryMemoryLoad, Flags: Flags{NoContainment: true}},
	{ID: AvxExtractVector128, Name: "ExtractVector128", ISA: ISAAVX, SimdSize: 256, NumArgs: -1,
		Ins: mergeRows(
			rowInts(OpVextractf128, OpVextractf128, OpVextractf128, OpVextractf128),
			rowFloats(OpVextractf128, OpVextractf128)),
		ImmUpperBound: 1,
		Category:      CategoryImm, Flags: Flags{MaybeMemoryStore: true}},
	{ID: AvxInsertVector128, Name: "InsertVector128", ISA: ISAAVX, SimdSize: 256, NumArgs: 3,
		Ins: mergeRows(
			rowInts(OpVinsertf128, OpVinsertf128, OpVinsertf128, OpVinsertf128),
			rowFloats(OpVinsertf128, OpVinsertf128)),
		ImmUpperBound: 1,
		Category:      CategoryImm, Flags: Flags{MaybeMemoryLoad: true}},
	{ID: AvxSetAllVector256, Name: "SetAllVector256", ISA: ISAAVX, SimdSize: 256, NumArgs: 1,
		Category: CategoryHelper,
		Flags:    Flags{OneTypeGeneric: true, MultiIns: true}},
	{ID: AvxSetVector256, Name: "SetVector256", ISA: ISAAVX, SimdSize: 256, NumArgs: -1,
		Category: CategoryHelper, Flags: Flags{MultiIns: true}},
	{ID: AvxGetLowerHalf, Name: "GetLowerHalf", ISA: ISAAVX, SimdSize: 256, NumArgs: 1,
		Category: CategoryHelper,
		Flags:    Flags{UnfixedSimdSize: true, NoRMWSemantics: true}},
	{ID: AvxExtendToVector256, Name: "ExtendToVector256", ISA: ISAAVX, SimdSize: 256, NumArgs: 1,
		Category: CategoryHelper,
		Flags:    Flags{UnfixedSimdSize: true, NoRMWSemantics: true}},
	{ID: AvxMaskLoad, Name: "MaskLoad", ISA: ISAAVX, SimdSize: 256, NumArgs: 2,
		Ins:      rowFloats(OpVmaskmovps, OpVmaskmovpd),
		Category: CategoryMemoryLoad, Flags: Flags{NoContainment: true}},
	{ID: AvxMaskStore, Name: "MaskStore", ISA: ISAAVX, SimdSize: 256, NumArgs: 3,
		Ins:      rowFloats(OpVmaskmovps, OpVmaskmovpd),
		Category: CategoryMemoryStore, Flags: Flags{NoContainment: true}},
	{ID: AvxTestC, Name: "TestC", ISA: ISAAVX, SimdSize: 256, NumArgs: 2,
		Ins: mergeRows(
			rowInts(OpPtest, OpPtest, OpPtest, OpPtest),
			rowFloats(OpVtestps, OpVtestpd)),
		Category: CategorySpecial,
		Flags:    Flags{MultiIns: true, NoRMWSemantics: true}},
	{ID: AvxPermute2x128, Name: "Permute2x128", ISA: ISAAVX, SimdSize: 256, NumArgs: 3,
		Ins: mergeRows(
			rowInts(OpVperm2f128, OpVperm2f128, OpVperm2f128, OpVperm2f128),
			rowFloats(OpVperm2f128, OpVperm2f128)),
		Category: CategoryImm, Flags: Flags{FullRangeImm: true}},
	{ID: AvxConvertToVector256Double, Name: "ConvertToVector256Double", ISA: ISAAVX,
		SimdSize: 256, NumArgs: 1,
		Ins: rowOf(map[types.PrimitiveType]Opcode{
			types.PrimTypeI32: OpCvtdq2pd, types.PrimTypeF32: OpCvtps2pd}),
		Category: CategorySimpleSIMD,
		Flags:    Flags{BaseTypeFromFirstArg: true, NoRMWSemantics: true}},

	// --------------------------------------------------------------- AVX2 --
	{ID: Avx2IsSupported, Name: "IsSupported", ISA: ISAAVX2,
		Category: CategoryIsSupportedProperty, Flags: Flags{NoFloatingPointUsed: true}},
	{ID: Avx2Add, Name: "Add", ISA: ISAAVX2, SimdSize: 256, NumArgs: 2,
		Ins:      rowInts(OpPaddb, OpPaddw, OpPaddd, OpPaddq),
		Category: CategorySimpleSIMD, Flags: Flags{Commutative: true}},
	{ID: Avx2Subtract, Name: "Subtract", ISA: ISAAVX2, SimdSize: 256, NumArgs: 2,
		Ins:      rowInts(OpPsubb, OpPsubw, OpPsubd, OpPsubq),
		Category: CategorySimpleSIMD},
	{ID: Avx2MultiplyLow, Name: "MultiplyLow", ISA: ISAAVX2, SimdSize: 256, NumArgs: 2,
		Ins: rowOf(map[types.PrimitiveType]Opcode{
			types.PrimTypeI16: OpPmullw, types.PrimTypeU16: OpPmullw,
			types.PrimTypeI32: OpPmulld, types.PrimTypeU32: OpPmulld}),
		Category: CategorySimpleSIMD, Flags: Flags{Commutative: true}},
	{ID: Avx2Shuffle, Name: "Shuffle", ISA: ISAAVX2, SimdSize: 256, NumArgs: 2,
		Ins: rowOf(map[types.PrimitiveType]Opcode{
			types.PrimTypeI8: OpPshufb, types.PrimTypeU8: OpPshufb,
			types.PrimTypeI32: OpPshufd, types.PrimTypeU32: OpPshufd}),
		Category: CategoryImm,
		Flags:    Flags{FullRangeImm: true, MaybeImm: true}},
	{ID: Avx2Permute4x64, Name: "Permute4x64", ISA: ISAAVX2, SimdSize: 256, NumArgs: 2,
		Ins: rowOf(map[types.PrimitiveType]Opcode{
			types.PrimTypeI64: OpVpermq, types.PrimTypeU64: OpVpermq, types.PrimTypeF64: OpVpermq}),
		Category: CategoryImm, Flags: Flags{FullRangeImm: true}},
	{ID: Avx2BroadcastScalarToVector256, Name: "BroadcastScalarToVector256", ISA: ISAAVX2,
		SimdSize: 256, NumArgs: 1,
		Ins: mergeRows(
			rowInts(OpVpbroadcastb, OpVpbroadcastw, OpVpbroadcastd, OpVpbroadcastq),
			rowFloats(OpVbroadcastss, OpVbroadcastsd)),
		Category: CategorySimpleSIMD,
		Flags:    Flags{MaybeMemoryLoad: true, NoRMWSemantics: true}},
	{ID: Avx2ShiftLeftLogical, Name: "ShiftLeftLogical", ISA: ISAAVX2, SimdSize: 256, NumArgs: 2,
		Ins:      rowInts(OpInvalid, OpPsllw, OpPslld, OpPsllq),
		Category: CategoryImm,
		Flags:    Flags{FullRangeImm: true, MaybeImm: true, NoJmpTableImm: true}},
	{ID: Avx2ShiftRightLogical, Name: "ShiftRightLogical", ISA: ISAAVX2, SimdSize: 256, NumArgs: 2,
		Ins:      rowInts(OpInvalid, OpPsrlw, OpPsrld, OpPsrlq),
		Category: CategoryImm,
		Flags:    Flags{FullRangeImm: true, MaybeImm: true, NoJmpTableImm: true}},
	{ID: Avx2MoveMask, Name: "MoveMask", ISA: ISAAVX2, SimdSize: 256, NumArgs: 1,
		Ins: rowOf(map[types.PrimitiveType]Opcode{
			types.PrimTypeI8: OpPmovmskb, types.PrimTypeU8: OpPmovmskb}),
		Category: CategorySpecial,
		Flags:    Flags{NoContainment: true, NoRMWSemantics: true, BaseTypeFromFirstArg: true}},
	{ID: Avx2GatherVector128, Name: "GatherVector128", ISA: ISAAVX2, SimdSize: 128, NumArgs: 3,
		Ins: mergeRows(
			rowOf(map[types.PrimitiveType]Opcode{
				types.PrimTypeI32: OpVpgatherdd, types.PrimTypeU32: OpVpgatherdd,
				types.PrimTypeI64: OpVpgatherdq, types.PrimTypeU64: OpVpgatherdq}),
			rowFloats(OpVgatherdps, OpVgatherdpd)),
		ImmUpperBound: 8,
		Category:      CategorySpecial,
		Flags: Flags{SpecialImport: true, SpecialCodegen: true,
			NoContainment: true, NoJmpTableImm: true}},
	{ID: Avx2GatherVector256, Name: "GatherVector256", ISA: ISAAVX2, SimdSize: 256, NumArgs: 3,
		Ins: mergeRows(
			rowOf(map[types.PrimitiveType]Opcode{
				types.PrimTypeI32: OpVpgatherdd, types.PrimTypeU32: OpVpgatherdd,
				types.PrimTypeI64: OpVpgatherdq, types.PrimTypeU64: OpVpgatherdq}),
			rowFloats(OpVgatherdps, OpVgatherdpd)),
		ImmUpperBound: 8,
		Category:      CategorySpecial,
		Flags: Flags{SpecialImport: true, SpecialCodegen: true,
			NoContainment: true, NoJmpTableImm: true}},
	{ID: Avx2GatherMaskVector128, Name: "GatherMaskVector128", ISA: ISAAVX2, SimdSize: 128, NumArgs: 5,
		Ins: mergeRows(
			rowOf(map[types.PrimitiveType]Opcode{
				types.PrimTypeI32: OpVpgatherdd, types.PrimTypeU32: OpVpgatherdd,
				types.PrimTypeI64: OpVpgatherdq, types.PrimTypeU64: OpVpgatherdq}),
			rowFloats(OpVgatherdps, OpVgatherdpd)),
		ImmUpperBound: 8,
		Category:      CategorySpecial,
		Flags: Flags{SpecialImport: true, SpecialCodegen: true,
			NoContainment: true, NoJmpTableImm: true}},
	{ID: Avx2GatherMaskVector256, Name: "GatherMaskVector256", ISA: ISAAVX2, SimdSize: 256, NumArgs: 5,
		Ins: mergeRows(
			rowOf(map[types.PrimitiveType]Opcode{
				types.PrimTypeI32: OpVpgatherdd, types.PrimTypeU32: OpVpgatherdd,
				types.PrimTypeI64: OpVpgatherdq, types.PrimTypeU64: OpVpgatherdq}),
			rowFloats(OpVgatherdps, OpVgatherdpd)),
		ImmUpperBound: 8,
		Category:      CategorySpecial,
		Flags: Flags{SpecialImport: true, SpecialCodegen: true,
			NoContainment: true, NoJmpTableImm: true}},

	// ---------------------------------------------------------------- AES --
	{ID: AesIsSupported, Name: "IsSupported", ISA: ISAAES,
		Category: CategoryIsSupportedProperty, Flags: Flags{NoFloatingPointUsed: true}},
	{ID: AesEncrypt, Name: "Encrypt", ISA: ISAAES, SimdSize: 128, NumArgs: 2,
		Ins: rowOf(map[types.PrimitiveType]Opcode{
			types.PrimTypeI8: OpAesenc, types.PrimTypeU8: OpAesenc}),
		Category: CategorySimpleSIMD},
	{ID: AesDecrypt, Name: "Decrypt", ISA: ISAAES, SimdSize: 128, NumArgs: 2,
		Ins: rowOf(map[types.PrimitiveType]Opcode{
			types.PrimTypeI8: OpAesdec, types.PrimTypeU8: OpAesdec}),
		Category: CategorySimpleSIMD},

	// --------------------------------------------------------------- BMI1 --
	{ID: Bmi1IsSupported, Name: "IsSupported", ISA: ISABMI1,
		Category: CategoryIsSupportedProperty, Flags: Flags{NoFloatingPointUsed: true}},
	{ID: Bmi1AndNot, Name: "AndNot", ISA: ISABMI1, NumArgs: 2,
		Ins: rowOf(map[types.PrimitiveType]Opcode{
			types.PrimTypeU32: OpAndn, types.PrimTypeU64: OpAndn}),
		Category: CategoryScalar,
		Flags:    Flags{NoFloatingPointUsed: true, NoRMWSemantics: true}},
	{ID: Bmi1ExtractLowestSetBit, Name: "ExtractLowestSetBit", ISA: ISABMI1, NumArgs: 1,
		Ins: rowOf(map[types.PrimitiveType]Opcode{
			types.PrimTypeU32: OpBlsi, types.PrimTypeU64: OpBlsi}),
		Category: CategoryScalar,
		Flags:    Flags{NoFloatingPointUsed: true, NoRMWSemantics: true}},
	{ID: Bmi1ResetLowestSetBit, Name: "ResetLowestSetBit", ISA: ISABMI1, NumArgs: 1,
		Ins: rowOf(map[types.PrimitiveType]Opcode{
			types.PrimTypeU32: OpBlsr, types.PrimTypeU64: OpBlsr}),
		Category: CategoryScalar,
		Flags:    Flags{NoFloatingPointUsed: true, NoRMWSemantics: true}},
	{ID: Bmi1TrailingZeroCount, Name: "TrailingZeroCount", ISA: ISABMI1, NumArgs: 1,
		Ins: rowOf(map[types.PrimitiveType]Opcode{
			types.PrimTypeU32: OpTzcnt, types.PrimTypeU64: OpTzcnt}),
		Category: CategoryScalar,
		Flags:    Flags{NoFloatingPointUsed: true, NoRMWSemantics: true}},

	// --------------------------------------------------------------- BMI2 --
	{ID: Bmi2IsSupported, Name: "IsSupported", ISA: ISABMI2,
		Category: CategoryIsSupportedProperty, Flags: Flags{NoFloatingPointUsed: true}},
	{ID: Bmi2ZeroHighBits, Name: "ZeroHighBits", ISA: ISABMI2, NumArgs: 2,
		Ins: rowOf(map[types.PrimitiveType]Opcode{
			types.PrimTypeU32: OpBzhi, types.PrimTypeU64: OpBzhi}),
		Category: CategoryScalar,
		Flags:    Flags{NoFloatingPointUsed: true, NoRMWSemantics: true}},
	{ID: Bmi2ParallelBitDeposit, Name: "ParallelBitDeposit", ISA: ISABMI2, NumArgs: 2,
		Ins: rowOf(map[types.PrimitiveType]Opcode{
			types.PrimTypeU32: OpPdep, types.PrimTypeU64: OpPdep}),
		Category: CategoryScalar,
		Flags:    Flags{NoFloatingPointUsed: true, NoRMWSemantics: true}},
	{ID: Bmi2ParallelBitExtract, Name: "ParallelBitExtract", ISA: ISABMI2, NumArgs: 2,
		Ins: rowOf(map[types.PrimitiveType]Opcode{
			types.PrimTypeU32: OpPext, types.PrimTypeU64: OpPext}),
		Category: CategoryScalar,
		Flags:    Flags{NoFloatingPointUsed: true, NoRMWSemantics: true}},
	{ID: Bmi2MultiplyNoFlags, Name: "MultiplyNoFlags", ISA: ISABMI2, NumArgs: -1,
		Ins: rowOf(map[types.PrimitiveType]Opcode{
			types.PrimTypeU32: OpMulx, types.PrimTypeU64: OpMulx}),
		Category: CategoryScalar,
		Flags: Flags{NoFloatingPointUsed: true, MultiIns: true,
			MaybeMemoryStore: true, NoRMWSemantics: true}},

	// ---------------------------------------------------------------- FMA --
	{ID: FmaIsSupported, Name: "IsSupported", ISA: ISAFMA,
		Category: CategoryIsSupportedProperty, Flags: Flags{NoFloatingPointUsed: true}},
	{ID: FmaMultiplyAdd, Name: "MultiplyAdd", ISA: ISAFMA, SimdSize: 128, NumArgs: 3,
		Ins:      rowFloats(OpVfmadd213ps, OpVfmadd213pd),
		Category: CategorySimpleSIMD,
		Flags:    Flags{UnfixedSimdSize: true, SpecialCodegen: true}},
	{ID: FmaMultiplyAddScalar, Name: "MultiplyAddScalar", ISA: ISAFMA, SimdSize: 128, NumArgs: 3,
		Ins:      rowFloats(OpVfmadd213ss, OpVfmadd213sd),
		Category: CategorySIMDScalar,
		Flags:    Flags{CopyUpperBits: true, SpecialCodegen: true}},
	{ID: FmaMultiplySubtract, Name: "MultiplySubtract", ISA: ISAFMA, SimdSize: 128, NumArgs: 3,
		Ins:      rowFloats(OpVfmsub213ps, OpVfmsub213pd),
		Category: CategorySimpleSIMD,
		Flags:    Flags{UnfixedSimdSize: true, SpecialCodegen: true}},

	// -------------------------------------------------------------- LZCNT --
	{ID: LzcntIsSupported, Name: "IsSupported", ISA: ISALZCNT,
		Category: CategoryIsSupportedProperty, Flags: Flags{NoFloatingPointUsed: true}},
	{ID: LzcntLeadingZeroCount, Name: "LeadingZeroCount", ISA: ISALZCNT, NumArgs: 1,
		Ins: rowOf(map[types.PrimitiveType]Opcode{
			types.PrimTypeU32: OpLzcnt, types.PrimTypeU64: OpLzcnt}),
		Category: CategoryScalar,
		Flags:    Flags{NoFloatingPointUsed: true, NoRMWSemantics: true}},

	// ---------------------------------------------------------- PCLMULQDQ --
	{ID: PclmulqdqIsSupported, Name: "IsSupported", ISA: ISAPCLMULQDQ,
		Category: CategoryIsSupportedProperty, Flags: Flags{NoFloatingPointUsed: true}},
	{ID: PclmulqdqCarrylessMultiply, Name: "CarrylessMultiply", ISA: ISAPCLMULQDQ,
		SimdSize: 128, NumArgs: 3,
		Ins: rowOf(map[types.PrimitiveType]Opcode{
			types.PrimTypeI64: OpPclmulqdq, types.PrimTypeU64: OpPclmulqdq}),
		Category: CategoryImm, Flags: Flags{FullRangeImm: true}},

	// ------------------------------------------------------------- POPCNT --
	{ID: PopcntIsSupported, Name: "IsSupported", ISA: ISAPOPCNT,
		Category: CategoryIsSupportedProperty, Flags: Flags{NoFloatingPointUsed: true}},
	{ID: PopcntPopCount, Name: "PopCount", ISA: ISAPOPCNT, NumArgs: 1,
		Ins: rowOf(map[types.PrimitiveType]Opcode{
			types.PrimTypeU32: OpPopcnt, types.PrimTypeU64: OpPopcnt}),
		Category: CategoryScalar,
		Flags:    Flags{NoFloatingPointUsed: true, NoRMWSemantics: true}},
}
