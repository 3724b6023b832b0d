package types

import "fmt"

// Type represents a vexc data type as seen by the compiler back-end.
type Type interface {
	// Returns whether this type is equal to the other type. This does not
	// account for inner types/type unwrapping: it should only be called within
	// methods of type instances.
	equals(other Type) bool

	// Returns the size of this type in bytes.
	Size() int

	// Returns the representative string for this type.
	Repr() string
}

// Equals returns whether two types are equal.
func Equals(a, b Type) bool {
	return a.equals(b)
}

// -----------------------------------------------------------------------------

// PrimitiveType represents a numeric scalar type.  This must be one of the
// enumerated primitive type values below.  The values form a dense, closed
// ordinal universe: they are used directly to index per-element-type opcode
// rows, so new values may only ever be appended before NumPrimitiveTypes.
type PrimitiveType int

// Enumeration of the different primitive types.
const (
	PrimTypeI8 PrimitiveType = iota
	PrimTypeU8
	PrimTypeI16
	PrimTypeU16
	PrimTypeI32
	PrimTypeU32
	PrimTypeI64
	PrimTypeU64
	PrimTypeF32
	PrimTypeF64

	// NumPrimitiveTypes is the number of primitive types in the universe.
	NumPrimitiveTypes
)

func (pt PrimitiveType) equals(other Type) bool {
	if opt, ok := other.(PrimitiveType); ok {
		return pt == opt
	}

	return false
}

func (pt PrimitiveType) Size() int {
	switch pt {
	case PrimTypeI8, PrimTypeU8:
		return 1
	case PrimTypeI16, PrimTypeU16:
		return 2
	case PrimTypeI32, PrimTypeU32, PrimTypeF32:
		return 4
	default:
		return 8
	}
}

func (pt PrimitiveType) Repr() string {
	switch pt {
	case PrimTypeI8:
		return "i8"
	case PrimTypeU8:
		return "u8"
	case PrimTypeI16:
		return "i16"
	case PrimTypeU16:
		return "u16"
	case PrimTypeI32:
		return "i32"
	case PrimTypeU32:
		return "u32"
	case PrimTypeI64:
		return "i64"
	case PrimTypeU64:
		return "u64"
	case PrimTypeF32:
		return "f32"
	default:
		return "f64"
	}
}

// IsIntegral returns whether this primitive is an integral type.
func (pt PrimitiveType) IsIntegral() bool {
	return PrimTypeI8 <= pt && pt <= PrimTypeU64
}

// IsFloating returns whether this primitive type is a floating-point type.
func (pt PrimitiveType) IsFloating() bool {
	return pt == PrimTypeF32 || pt == PrimTypeF64
}

// -----------------------------------------------------------------------------

// BoolType represents the boolean type.  It is deliberately not part of the
// primitive numeric universe: opcode rows are indexed only by numeric types.
type BoolType struct{}

func (bt BoolType) equals(other Type) bool {
	_, ok := other.(BoolType)
	return ok
}

func (bt BoolType) Size() int {
	return 1
}

func (bt BoolType) Repr() string {
	return "bool"
}

// -----------------------------------------------------------------------------

// VectorType represents a SIMD vector type.
type VectorType struct {
	// The element type of the vector.
	Elem PrimitiveType

	// The total width of the vector in bits.
	Bits int
}

func (vt *VectorType) equals(other Type) bool {
	if ovt, ok := other.(*VectorType); ok {
		return vt.Elem == ovt.Elem && vt.Bits == ovt.Bits
	}

	return false
}

func (vt *VectorType) Size() int {
	return vt.Bits / 8
}

func (vt *VectorType) Repr() string {
	return fmt.Sprintf("vec%d<%s>", vt.Bits, vt.Elem.Repr())
}

// Lanes returns the number of elements the vector holds.
func (vt *VectorType) Lanes() int {
	return vt.Bits / (vt.Elem.Size() * 8)
}

// -----------------------------------------------------------------------------

// PointerType represents a pointer type.
type PointerType struct {
	// The element type of the pointer.
	Elem Type
}

func (ptr *PointerType) equals(other Type) bool {
	if optr, ok := other.(*PointerType); ok {
		return ptr.Elem.equals(optr.Elem)
	}

	return false
}

func (ptr *PointerType) Size() int {
	// Pointer sizes are target dependent; 8 is the size on all of the 64-bit
	// targets vexc currently generates code for.
	return 8
}

func (ptr *PointerType) Repr() string {
	return "*" + ptr.Elem.Repr()
}

// -----------------------------------------------------------------------------

// Signature represents the resolved signature of a call site: the types of its
// arguments and its return type.
type Signature struct {
	// The types of the call's arguments in order.
	Params []Type

	// The return type of the call.
	ReturnType Type
}

// Repr returns the representative string for the signature.
func (sig *Signature) Repr() string {
	s := "("
	for i, param := range sig.Params {
		if i > 0 {
			s += ", "
		}

		s += param.Repr()
	}

	return s + ") -> " + sig.ReturnType.Repr()
}
