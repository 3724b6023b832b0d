package hwintrin

import (
	"fmt"

	"vexc/report"
	"vexc/types"
)

// opcodeRow is a fixed-length row holding one native opcode slot per primitive
// element type.  A slot left at OpInvalid marks the element type as
// unsupported for the intrinsic.
type opcodeRow [types.NumPrimitiveTypes]Opcode

// Descriptor is the full, immutable classification record of one intrinsic.
// Descriptors are authored as static data in the intrinsic table, loaded once
// at process initialization, and shared read-only across all concurrently
// compiled units.
type Descriptor struct {
	// The identifier of the intrinsic this descriptor classifies.
	ID Intrinsic

	// The method name of the intrinsic within its class, eg. "Add".
	Name string

	// The instruction-set extension owning the intrinsic.
	ISA InstructionSet

	// The default immediate value baked into the instruction encoding, or a
	// special-codegen discriminator; its meaning depends on the category.
	ImmDefault int

	// The nominal vector width in bits.  Authoritative only when the flags do
	// not mark the width as unfixed.  Zero for purely scalar intrinsics.
	SimdSize int

	// The nominal operand count.  -1 means the arity varies by overload and
	// must be read off the actual call node.
	NumArgs int

	// The per-element-type opcode row.
	Ins opcodeRow

	// The inclusive upper bound of a required immediate operand when the
	// full-range flag is absent.  This is authored per entry: it is a
	// structural property of the operation (typically the lane count of the
	// operating vector width) and cannot be derived generically.
	ImmUpperBound int

	// The codegen-shape category of the intrinsic.
	Category Category

	// The capability record of the intrinsic.
	Flags Flags
}

// OpcodeFor returns the native opcode for the given base element type, or
// OpInvalid when the intrinsic does not support that element type.
func (desc *Descriptor) OpcodeFor(pt types.PrimitiveType) Opcode {
	return desc.Ins[pt]
}

// -----------------------------------------------------------------------------

// Lookup returns the descriptor of the given intrinsic.  Identifiers are
// produced only by name resolution or by the compiler's own construction, so
// a miss here is an internal error, not a user-facing one.
func Lookup(id Intrinsic) *Descriptor {
	if id == IntrinsicInvalid || id >= NumIntrinsics {
		report.RaiseICE("descriptor lookup with illegal intrinsic id %d", id)
	}

	return &descriptors[id-1]
}

// LookupName returns the method name of the intrinsic.
func LookupName(id Intrinsic) string {
	return Lookup(id).Name
}

// LookupISAOf returns the instruction set owning the intrinsic.
func LookupISAOf(id Intrinsic) InstructionSet {
	return Lookup(id).ISA
}

// LookupIval returns the intrinsic's default immediate value.
func LookupIval(id Intrinsic) int {
	return Lookup(id).ImmDefault
}

// LookupCategory returns the intrinsic's category.
func LookupCategory(id Intrinsic) Category {
	return Lookup(id).Category
}

// LookupFlags returns the intrinsic's capability record.
func LookupFlags(id Intrinsic) Flags {
	return Lookup(id).Flags
}

// LookupIns returns the native opcode of the intrinsic for the given base
// element type.
func LookupIns(id Intrinsic, pt types.PrimitiveType) Opcode {
	return Lookup(id).OpcodeFor(pt)
}

// LookupNumArgs returns the intrinsic's nominal operand count, with -1
// standing for an arity that varies by overload.  Callers holding the actual
// call node should prefer shape.OperandCount which applies the override.
func LookupNumArgs(id Intrinsic) int {
	return Lookup(id).NumArgs
}

// -----------------------------------------------------------------------------

// init validates the authored table against the identifier enumeration: the
// table must hold exactly one descriptor per intrinsic, in identifier order.
// The table is never mutated after this point.
func init() {
	if len(descriptors) != int(NumIntrinsics)-1 {
		panic(fmt.Sprintf("intrinsic table holds %d descriptors for %d intrinsics",
			len(descriptors), int(NumIntrinsics)-1))
	}

	for i := range descriptors {
		if descriptors[i].ID != Intrinsic(i+1) {
			panic(fmt.Sprintf("intrinsic table entry %d is out of order: got id %d",
				i, descriptors[i].ID))
		}
	}

	buildNameTables()
}

// -----------------------------------------------------------------------------
// Opcode row constructors used by the authored table.

// rowOf builds an opcode row from explicit per-element-type assignments.
func rowOf(assign map[types.PrimitiveType]Opcode) opcodeRow {
	var row opcodeRow
	for pt, op := range assign {
		row[pt] = op
	}

	return row
}

// rowInts builds a row assigning one opcode per integral width, signed and
// unsigned alike.
func rowInts(op8, op16, op32, op64 Opcode) opcodeRow {
	return rowOf(map[types.PrimitiveType]Opcode{
		types.PrimTypeI8:  op8,
		types.PrimTypeU8:  op8,
		types.PrimTypeI16: op16,
		types.PrimTypeU16: op16,
		types.PrimTypeI32: op32,
		types.PrimTypeU32: op32,
		types.PrimTypeI64: op64,
		types.PrimTypeU64: op64,
	})
}

// rowFloats builds a row assigning the two floating-point slots.
func rowFloats(f32, f64 Opcode) opcodeRow {
	return rowOf(map[types.PrimitiveType]Opcode{
		types.PrimTypeF32: f32,
		types.PrimTypeF64: f64,
	})
}

// mergeRows overlays the given rows; later rows win on conflicting slots.
func mergeRows(rows ...opcodeRow) opcodeRow {
	var merged opcodeRow
	for _, row := range rows {
		for i, op := range row {
			if op != OpInvalid {
				merged[i] = op
			}
		}
	}

	return merged
}
