package hwintrin

// Category classifies the shape of code generation an intrinsic needs.  This
// must be one of the enumerated category values below.  The category governs
// default expectations which the intrinsic's flags then refine or override.
type Category uint8

// Enumeration of the different intrinsic categories.
const (
	// CategorySimpleSIMD is a simple SIMD intrinsic: it takes vector
	// parameters, returns a vector, and the opcode of each overload is fully
	// determined by the intrinsic and the base element type.
	CategorySimpleSIMD Category = iota

	// CategoryIsSupportedProperty is the per-class IsSupported property: a
	// compile-time-constant boolean reporting extension availability.
	CategoryIsSupportedProperty

	// CategoryImm is an intrinsic requiring a compile-time-constant immediate
	// operand to form its instruction encoding.
	CategoryImm

	// CategoryScalar is an intrinsic operating over general-purpose registers,
	// like crc32, lzcnt, or popcnt.
	CategoryScalar

	// CategorySIMDScalar is an intrinsic operating over vector registers but
	// computing only on the first element.
	CategorySIMDScalar

	// CategoryMemoryLoad and CategoryMemoryStore are intrinsics with explicit
	// memory access semantics.
	CategoryMemoryLoad
	CategoryMemoryStore

	// CategoryHelper is an intrinsic with no direct native instruction: it
	// must be expanded into other operations.
	CategoryHelper

	// CategorySpecial is an intrinsic that defies table-driven classification;
	// both import and code generation address it specially.
	CategorySpecial
)

func (c Category) String() string {
	switch c {
	case CategorySimpleSIMD:
		return "SimpleSIMD"
	case CategoryIsSupportedProperty:
		return "IsSupportedProperty"
	case CategoryImm:
		return "Imm"
	case CategoryScalar:
		return "Scalar"
	case CategorySIMDScalar:
		return "SIMDScalar"
	case CategoryMemoryLoad:
		return "MemoryLoad"
	case CategoryMemoryStore:
		return "MemoryStore"
	case CategoryHelper:
		return "Helper"
	default:
		return "Special"
	}
}
