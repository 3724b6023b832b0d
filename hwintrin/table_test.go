package hwintrin

import (
	"testing"

	"vexc/types"
)

// Every intrinsic identifier must resolve to the descriptor authored for it.
func TestLookupIdentity(t *testing.T) {
	for id := IntrinsicInvalid + 1; id < NumIntrinsics; id++ {
		desc := Lookup(id)
		if desc.ID != id {
			t.Errorf("Lookup(%d) returned descriptor for %d", id, desc.ID)
		}
	}
}

// Every table entry must resolve back to its own identifier through name
// resolution, the way the front end finds it.
func TestNameRoundTrip(t *testing.T) {
	for id := IntrinsicInvalid + 1; id < NumIntrinsics; id++ {
		desc := Lookup(id)

		got := LookupID(desc.ISA.ClassName(), desc.Name)
		if got != id {
			t.Errorf("LookupID(%q, %q) = %s, want %s",
				desc.ISA.ClassName(), desc.Name, got, id)
		}

		if LookupISA(desc.ISA.ClassName()) != desc.ISA {
			t.Errorf("LookupISA(%q) did not return %s", desc.ISA.ClassName(), desc.ISA)
		}
	}
}

func TestUnknownNamesResolveToSentinels(t *testing.T) {
	tests := []struct {
		name       string
		className  string
		methodName string
	}{
		{"unknown class", "Sse5", "Add"},
		{"unknown method", "Sse", "Frobnicate"},
		{"empty", "", ""},
		{"case sensitive class", "sse", "Add"},
		{"case sensitive method", "Sse", "add"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if id := LookupID(tt.className, tt.methodName); id != IntrinsicInvalid {
				t.Errorf("LookupID(%q, %q) = %s, want IntrinsicInvalid",
					tt.className, tt.methodName, id)
			}
		})
	}

	if isa := LookupISA("Sse5"); isa != ISAInvalid {
		t.Errorf("LookupISA(\"Sse5\") = %s, want ISAInvalid", isa)
	}
}

func TestSseAddEntry(t *testing.T) {
	id := LookupID("Sse", "Add")
	if id != SseAdd {
		t.Fatalf("LookupID resolved Sse.Add to %s", id)
	}

	desc := Lookup(id)
	if desc.Category != CategorySimpleSIMD {
		t.Errorf("category = %s, want SimpleSIMD", desc.Category)
	}

	if !IsCommutative(id) {
		t.Error("Sse.Add is not commutative")
	}

	if desc.SimdSize != 128 || desc.NumArgs != 2 {
		t.Errorf("simd size %d / operand count %d, want 128 / 2", desc.SimdSize, desc.NumArgs)
	}

	if op := desc.OpcodeFor(types.PrimTypeF32); op == OpInvalid {
		t.Error("no opcode for the f32 column")
	}

	if op := desc.OpcodeFor(types.PrimTypeF64); op != OpInvalid {
		t.Errorf("unexpected f64 opcode %s", op)
	}
}

// IsSupported entries are queries, not operations: no operands, no opcodes,
// no SIMD width.
func TestIsSupportedEntries(t *testing.T) {
	for id := IntrinsicInvalid + 1; id < NumIntrinsics; id++ {
		desc := Lookup(id)
		if desc.Name != "IsSupported" {
			continue
		}

		if desc.Category != CategoryIsSupportedProperty {
			t.Errorf("%s has category %s", id, desc.Category)
		}

		if desc.NumArgs != 0 || desc.SimdSize != 0 {
			t.Errorf("%s has %d operands and width %d", id, desc.NumArgs, desc.SimdSize)
		}

		for pt := types.PrimitiveType(0); pt < types.NumPrimitiveTypes; pt++ {
			if desc.OpcodeFor(pt) != OpInvalid {
				t.Errorf("%s has an opcode for %s", id, pt.Repr())
			}
		}
	}
}

// Conversely, every codegen-reaching table-driven entry must have at least
// one opcode column filled in.
func TestCodegenEntriesHaveOpcodes(t *testing.T) {
	for id := IntrinsicInvalid + 1; id < NumIntrinsics; id++ {
		desc := Lookup(id)

		switch desc.Category {
		case CategoryIsSupportedProperty, CategoryHelper:
			continue
		}

		var found bool
		for pt := types.PrimitiveType(0); pt < types.NumPrimitiveTypes; pt++ {
			if desc.OpcodeFor(pt) != OpInvalid {
				found = true
				break
			}
		}

		if !found {
			t.Errorf("%s has an empty opcode row", id)
		}
	}
}

func TestAVX2GatherDetection(t *testing.T) {
	gathers := []Intrinsic{
		Avx2GatherVector128, Avx2GatherVector256,
		Avx2GatherMaskVector128, Avx2GatherMaskVector256,
	}

	for _, id := range gathers {
		if !IsAVX2Gather(id) {
			t.Errorf("%s not recognized as a gather", id)
		}
	}

	for _, id := range []Intrinsic{Avx2Add, SseAdd, Avx2MoveMask, IntrinsicInvalid} {
		if IsAVX2Gather(id) {
			t.Errorf("%s wrongly recognized as a gather", id)
		}
	}
}

func TestISAClassification(t *testing.T) {
	tests := []struct {
		isa        InstructionSet
		full       bool
		scalarOnly bool
	}{
		{ISASSE, true, false},
		{ISAAVX2, true, false},
		{ISAAES, false, false},
		{ISAFMA, false, false},
		{ISAPCLMULQDQ, false, false},
		{ISABMI1, true, true},
		{ISABMI2, true, true},
		{ISALZCNT, true, true},
		{ISAPOPCNT, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.isa.ClassName(), func(t *testing.T) {
			if tt.isa.FullySupported() != tt.full {
				t.Errorf("FullySupported() = %v, want %v", tt.isa.FullySupported(), tt.full)
			}

			if tt.isa.ScalarOnly() != tt.scalarOnly {
				t.Errorf("ScalarOnly() = %v, want %v", tt.isa.ScalarOnly(), tt.scalarOnly)
			}
		})
	}
}

// Scalar-only instruction sets must never author vector entries.
func TestScalarISAEntriesAreScalar(t *testing.T) {
	for id := IntrinsicInvalid + 1; id < NumIntrinsics; id++ {
		desc := Lookup(id)
		if desc.ISA.ScalarOnly() && desc.SimdSize != 0 {
			t.Errorf("%s belongs to scalar-only %s but has width %d",
				id, desc.ISA, desc.SimdSize)
		}
	}
}
