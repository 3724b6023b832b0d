package hwintrin

import (
	"testing"

	"vexc/report"
	"vexc/types"
)

func vec(elem types.PrimitiveType, bits int) *types.VectorType {
	return &types.VectorType{Elem: elem, Bits: bits}
}

func TestLookupSimdSizeFixed(t *testing.T) {
	tests := []struct {
		id   Intrinsic
		want int
	}{
		{SseAdd, 128},
		{AvxAdd, 256},
		{Avx2GatherVector128, 128},
		{Sse42Crc32, 0},
		{PopcntPopCount, 0},
	}

	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			// Fixed-width intrinsics never consult the signature.
			if got := LookupSimdSize(tt.id, nil); got != tt.want {
				t.Errorf("LookupSimdSize = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLookupSimdSizeFromSignature(t *testing.T) {
	v128 := vec(types.PrimTypeF32, 128)
	v256 := vec(types.PrimTypeF32, 256)

	tests := []struct {
		name string
		id   Intrinsic
		sig  *types.Signature
		want int
	}{
		{
			name: "fma at 128",
			id:   FmaMultiplyAdd,
			sig:  &types.Signature{Params: []types.Type{v128, v128, v128}, ReturnType: v128},
			want: 128,
		},
		{
			name: "fma at 256",
			id:   FmaMultiplyAdd,
			sig:  &types.Signature{Params: []types.Type{v256, v256, v256}, ReturnType: v256},
			want: 256,
		},
		{
			name: "lower half sized by its operand",
			id:   AvxGetLowerHalf,
			sig:  &types.Signature{Params: []types.Type{v256}, ReturnType: v128},
			want: 256,
		},
		{
			name: "extend sized by its result",
			id:   AvxExtendToVector256,
			sig:  &types.Signature{Params: []types.Type{v128}, ReturnType: v256},
			want: 256,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LookupSimdSize(tt.id, tt.sig); got != tt.want {
				t.Errorf("LookupSimdSize = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLookupSimdSizeNoVectorPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("no panic for a vector-free signature")
		} else if _, ok := r.(*report.InternalError); !ok {
			t.Fatalf("panic value %T is not an internal error", r)
		}
	}()

	sig := &types.Signature{
		Params:     []types.Type{types.PrimTypeF32},
		ReturnType: types.PrimTypeF32,
	}
	LookupSimdSize(FmaMultiplyAdd, sig)
}
