package hwintrin

// InstructionSet represents a hardware instruction-set extension: a named
// capability group gating the availability of a set of intrinsics.  This must
// be one of the enumerated instruction set values below.
type InstructionSet uint8

// Enumeration of the different instruction-set extensions.
const (
	ISAInvalid InstructionSet = iota
	ISASSE
	ISASSE2
	ISASSE3
	ISASSSE3
	ISASSE41
	ISASSE42
	ISAAVX
	ISAAVX2
	ISAAES
	ISABMI1
	ISABMI2
	ISAFMA
	ISALZCNT
	ISAPCLMULQDQ
	ISAPOPCNT
)

// ClassName returns the name of the intrinsic class exposing this instruction
// set to user code.  It is the first half of the name pair consumed by the
// name resolver.
func (isa InstructionSet) ClassName() string {
	switch isa {
	case ISASSE:
		return "Sse"
	case ISASSE2:
		return "Sse2"
	case ISASSE3:
		return "Sse3"
	case ISASSSE3:
		return "Ssse3"
	case ISASSE41:
		return "Sse41"
	case ISASSE42:
		return "Sse42"
	case ISAAVX:
		return "Avx"
	case ISAAVX2:
		return "Avx2"
	case ISAAES:
		return "Aes"
	case ISABMI1:
		return "Bmi1"
	case ISABMI2:
		return "Bmi2"
	case ISAFMA:
		return "Fma"
	case ISALZCNT:
		return "Lzcnt"
	case ISAPCLMULQDQ:
		return "Pclmulqdq"
	case ISAPOPCNT:
		return "Popcnt"
	default:
		return "Invalid"
	}
}

func (isa InstructionSet) String() string {
	return isa.ClassName()
}

// -----------------------------------------------------------------------------

// FullySupported returns whether the back-end fully implements every intrinsic
// of this instruction set.  The import phase uses this to fold the per-class
// IsSupported property to a compile-time constant true, letting dead-code
// elimination strip software fallback paths.
func (isa InstructionSet) FullySupported() bool {
	switch isa {
	case ISASSE, ISASSE2, ISASSE3, ISASSSE3, ISASSE41, ISASSE42,
		ISAAVX, ISAAVX2, ISABMI1, ISABMI2, ISALZCNT, ISAPOPCNT:
		return true
	default:
		// AES, FMA, and PCLMULQDQ still have unimplemented table entries, so
		// their IsSupported properties cannot be folded yet.
		return false
	}
}

// ScalarOnly returns whether this instruction set operates exclusively on
// general-purpose registers.  The optimizer disables vector-specific
// containment heuristics for intrinsics belonging to scalar-only sets.
func (isa InstructionSet) ScalarOnly() bool {
	switch isa {
	case ISABMI1, ISABMI2, ISALZCNT, ISAPOPCNT:
		return true
	default:
		return false
	}
}

// -----------------------------------------------------------------------------

// IsAVX2Gather returns whether the given intrinsic is one of the AVX2 gather
// memory intrinsics.  Their operand shape (base address + index vector +
// scale) does not fit the generic memory-load category, so the passes that
// recognize memory access identify them here instead of via the classifier.
func IsAVX2Gather(id Intrinsic) bool {
	switch id {
	case Avx2GatherVector128, Avx2GatherVector256,
		Avx2GatherMaskVector128, Avx2GatherMaskVector256:
		return true
	default:
		return false
	}
}
