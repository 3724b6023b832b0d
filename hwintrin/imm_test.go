package hwintrin

import "testing"

func TestImmUpperBounds(t *testing.T) {
	tests := []struct {
		name  string
		id    Intrinsic
		bound int
	}{
		{"word extract uses lane count", Sse2Extract, 7},
		{"word insert uses lane count", Sse2Insert, 7},
		{"four lane extract", Sse41Extract, 3},
		{"half extract", AvxExtractVector128, 1},
		{"half insert", AvxInsertVector128, 1},
		{"avx compare predicate", AvxCompare, 31},
		{"full range shuffle", SseShuffle, 255},
		{"full range blend", Sse41Blend, 255},
		{"full range carryless multiply", PclmulqdqCarrylessMultiply, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LookupImmUpperBound(tt.id); got != tt.bound {
				t.Errorf("LookupImmUpperBound(%s) = %d, want %d", tt.id, got, tt.bound)
			}
		})
	}
}

// An intrinsic accepting immediates 0 through B must accept exactly that
// closed interval: B is in range, B+1 and negatives are not.
func TestInImmRangeBoundaries(t *testing.T) {
	for _, id := range []Intrinsic{Sse41Extract, Sse2Extract, AvxCompare, AvxExtractVector128, SseShuffle} {
		t.Run(id.String(), func(t *testing.T) {
			bound := LookupImmUpperBound(id)

			if !InImmRange(id, 0) {
				t.Error("0 rejected")
			}

			if !InImmRange(id, bound) {
				t.Errorf("upper bound %d rejected", bound)
			}

			if InImmRange(id, bound+1) {
				t.Errorf("%d accepted past the upper bound", bound+1)
			}

			if InImmRange(id, -1) {
				t.Error("-1 accepted")
			}
		})
	}
}

// Entries without an authored bound or the full-range flag accept only zero.
func TestImmDefaultBound(t *testing.T) {
	if got := LookupImmUpperBound(SseAdd); got != 0 {
		t.Errorf("LookupImmUpperBound(Sse.Add) = %d, want 0", got)
	}

	if !InImmRange(SseAdd, 0) || InImmRange(SseAdd, 1) {
		t.Error("default bound does not pin the range to exactly zero")
	}
}
