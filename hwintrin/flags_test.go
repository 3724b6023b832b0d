package hwintrin

import "testing"

// The positive-phrased predicates invert the flags stored in the table;
// check both polarities against entries known to set each flag.
func TestInvertedPredicates(t *testing.T) {
	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"helper skips codegen", RequiresCodegen(SseStaticCast), false},
		{"arithmetic requires codegen", RequiresCodegen(SseAdd), true},
		{"fma width is unfixed", HasFixedSimdSize(FmaMultiplyAdd), false},
		{"sse width is fixed", HasFixedSimdSize(SseAdd), true},
		{"loads are not contained", SupportsContainment(SseLoadVector128), false},
		{"arithmetic is containable", SupportsContainment(SseAdd), true},
		{"crc32 uses no float state", IsFloatingPointUsed(Sse42Crc32), false},
		{"addps uses float state", IsFloatingPointUsed(SseAdd), true},
		{"sqrt reads one register", HasRMWSemantics(SseSqrt), false},
		{"addps reads and writes", HasRMWSemantics(SseAdd), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestPositivePredicates(t *testing.T) {
	tests := []struct {
		name string
		got  bool
	}{
		{"add is commutative", IsCommutative(SseAdd)},
		{"subtract is not commutative", !IsCommutative(SseSubtract)},
		{"shuffle takes a full range imm", HasFullRangeImm(SseShuffle)},
		{"cast is two type generic", IsTwoTypeGeneric(SseStaticCast)},
		{"cast is not one type generic", !IsOneTypeGeneric(SseStaticCast)},
		{"splat is one type generic", IsOneTypeGeneric(SseSetAllVector128)},
		{"splat expands to several ins", GeneratesMultipleIns(SseSetAllVector128)},
		{"scalar add preserves upper bits", CopiesUpperBits(SseAddScalar)},
		{"movemask types from its operand", BaseTypeFromFirstArg(SseMoveMask)},
		{"scalar convert types from its source", BaseTypeFromSecondArg(SseConvertScalarToVector128Single)},
		{"shifts may take an imm", MaybeImm(Sse2ShiftLeftLogical)},
		{"shift counts never jump table", NoJmpTableImm(Sse2ShiftLeftLogical)},
		{"avx2 shuffle may jump table", !NoJmpTableImm(Avx2Shuffle)},
		{"int64 convert needs 64 bits", Is64BitOnly(Sse2ConvertToInt64)},
		{"crc32 widens its second operand", SecondArgMaybe64Bit(Sse42Crc32)},
		{"gathers import specially", HasSpecialImport(Avx2GatherVector128)},
		{"gathers generate specially", HasSpecialCodegen(Avx2GatherVector128)},
		{"broadcast may fold a load", MaybeMemoryLoad(Avx2BroadcastScalarToVector256)},
		{"half extract may fold a store", MaybeMemoryStore(AvxExtractVector128)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got {
				t.Error("predicate disagrees with the table")
			}
		})
	}
}

// Flags are independent record fields: setting one must not imply another.
func TestFlagRecordIndependence(t *testing.T) {
	shuffle := LookupFlags(Sse2Shuffle)
	if !shuffle.FullRangeImm {
		t.Error("Sse2.Shuffle lost its full range flag")
	}

	if shuffle.Commutative || shuffle.SkipCodegen || shuffle.SixtyFourBitOnly {
		t.Error("unrelated flags leaked into the Sse2.Shuffle record")
	}

	var zero Flags
	if LookupFlags(Sse3IsSupported) != zero {
		// Property entries carry only the no-float marker.
		got := LookupFlags(Sse3IsSupported)
		got.NoFloatingPointUsed = false
		if got != zero {
			t.Error("property entry carries unexpected flags")
		}
	}
}
