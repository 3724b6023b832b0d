package types

import "testing"

func TestPrimitiveProperties(t *testing.T) {
	tests := []struct {
		pt       PrimitiveType
		size     int
		repr     string
		integral bool
		floating bool
	}{
		{PrimTypeI8, 1, "i8", true, false},
		{PrimTypeU16, 2, "u16", true, false},
		{PrimTypeI32, 4, "i32", true, false},
		{PrimTypeU64, 8, "u64", true, false},
		{PrimTypeF32, 4, "f32", false, true},
		{PrimTypeF64, 8, "f64", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.repr, func(t *testing.T) {
			if tt.pt.Size() != tt.size {
				t.Errorf("Size() = %d, want %d", tt.pt.Size(), tt.size)
			}

			if tt.pt.Repr() != tt.repr {
				t.Errorf("Repr() = %q, want %q", tt.pt.Repr(), tt.repr)
			}

			if tt.pt.IsIntegral() != tt.integral || tt.pt.IsFloating() != tt.floating {
				t.Errorf("integral %v / floating %v", tt.pt.IsIntegral(), tt.pt.IsFloating())
			}
		})
	}
}

func TestVectorType(t *testing.T) {
	v := &VectorType{Elem: PrimTypeF32, Bits: 128}
	if v.Lanes() != 4 {
		t.Errorf("Lanes() = %d, want 4", v.Lanes())
	}

	if v.Size() != 16 {
		t.Errorf("Size() = %d, want 16", v.Size())
	}

	w := &VectorType{Elem: PrimTypeI16, Bits: 256}
	if w.Lanes() != 16 {
		t.Errorf("Lanes() = %d, want 16", w.Lanes())
	}

	if Equals(v, w) {
		t.Error("distinct vector types compare equal")
	}

	if !Equals(v, &VectorType{Elem: PrimTypeF32, Bits: 128}) {
		t.Error("identical vector types compare unequal")
	}
}

func TestEquals(t *testing.T) {
	if !Equals(PrimTypeI32, PrimTypeI32) || Equals(PrimTypeI32, PrimTypeU32) {
		t.Error("primitive equality broken")
	}

	if Equals(PrimTypeI32, BoolType{}) {
		t.Error("primitive equals bool")
	}

	p := &PointerType{Elem: PrimTypeF32}
	if !Equals(p, &PointerType{Elem: PrimTypeF32}) || Equals(p, &PointerType{Elem: PrimTypeF64}) {
		t.Error("pointer equality broken")
	}
}
