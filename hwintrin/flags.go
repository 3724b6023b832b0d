package hwintrin

// Flags is the capability record of an intrinsic: a fixed collection of
// independent boolean traits.  No field implies or excludes another by
// construction; any apparent correlation in the authored table is a data
// convention, not an enforced invariant.
type Flags struct {
	// The intrinsic is commutative: operand order may be swapped, so either
	// operand is eligible for memory-operand folding.
	Commutative bool

	// A required constant operand accepts the full native immediate width
	// (0-255 for an imm8 field).  When absent, the legal range is the
	// intrinsic's authored immediate upper bound.
	FullRangeImm bool

	// The intrinsic's type contract is parameterized by one type argument.
	// Supplying a non-numeric type argument is a caller error.
	OneTypeGeneric bool

	// The intrinsic's type contract is parameterized by two type arguments.
	TwoTypeGeneric bool

	// The intrinsic must be fully rewritten during early shaping and must
	// never reach code generation in its original form.
	SkipCodegen bool

	// The descriptor's nominal SIMD size is unreliable: the actual width must
	// be resolved from the call's signature.
	UnfixedSimdSize bool

	// Code generation legitimately produces more than one machine instruction
	// for this intrinsic.
	MultiIns bool

	// The intrinsic can never be folded as a memory operand by the optimizer,
	// even if it superficially resembles a load or store.
	NoContainment bool

	// Scalar-lane semantics require the upper lanes to be preserved from a
	// source operand rather than zeroed.
	CopyUpperBits bool

	// The base element type driving opcode selection must be inferred from the
	// first, respectively second, call operand's type.
	BaseTypeFromFirstArg  bool
	BaseTypeFromSecondArg bool

	// Code generation need not mark the enclosing function as using
	// floating-point state for this intrinsic.
	NoFloatingPointUsed bool

	// The intrinsic has both a constant-operand overload and a vector
	// overload; which applies is resolved per call site.
	MaybeImm bool

	// No jump-table fallback exists when a required immediate operand is not a
	// compile-time constant: that situation is a hard compile failure.
	NoJmpTableImm bool

	// The intrinsic is valid only when the target's general-purpose registers
	// are 64 bits wide.
	SixtyFourBitOnly bool

	// Argument-width assumptions are relaxed for the second operand, for
	// mixed-width forms such as crc32.
	SecondArgMaybe64Bit bool

	// Code generation, respectively import, must apply intrinsic-specific
	// rules layered on top of the table data.
	SpecialCodegen bool
	SpecialImport  bool

	// The destination operand is not implicitly also a source in the two- or
	// three-operand form.
	NoRMWSemantics bool

	// The intrinsic has a pointer overload even though its category is not a
	// memory category.
	MaybeMemoryLoad  bool
	MaybeMemoryStore bool
}

// -----------------------------------------------------------------------------
// Flag predicates.  Each is a pure, total function of the identified
// descriptor's flag record.

// IsCommutative returns whether the intrinsic's operands may be swapped.
func IsCommutative(id Intrinsic) bool {
	return Lookup(id).Flags.Commutative
}

// HasFullRangeImm returns whether a required immediate operand accepts the
// full native immediate range.
func HasFullRangeImm(id Intrinsic) bool {
	return Lookup(id).Flags.FullRangeImm
}

// IsOneTypeGeneric returns whether the intrinsic takes one type argument.
func IsOneTypeGeneric(id Intrinsic) bool {
	return Lookup(id).Flags.OneTypeGeneric
}

// IsTwoTypeGeneric returns whether the intrinsic takes two type arguments.
func IsTwoTypeGeneric(id Intrinsic) bool {
	return Lookup(id).Flags.TwoTypeGeneric
}

// RequiresCodegen returns whether the intrinsic is allowed to reach code
// generation.  An intrinsic for which this is false must be rewritten away
// during shaping; reaching code generation anyway is an internal error.
func RequiresCodegen(id Intrinsic) bool {
	return !Lookup(id).Flags.SkipCodegen
}

// HasFixedSimdSize returns whether the descriptor's nominal SIMD size is
// authoritative.  When false, LookupSimdSize must be given the call signature.
func HasFixedSimdSize(id Intrinsic) bool {
	return !Lookup(id).Flags.UnfixedSimdSize
}

// GeneratesMultipleIns returns whether one intrinsic legitimately expands to
// several machine instructions.
func GeneratesMultipleIns(id Intrinsic) bool {
	return Lookup(id).Flags.MultiIns
}

// SupportsContainment returns whether the optimizer may fold this intrinsic
// as a memory operand.
func SupportsContainment(id Intrinsic) bool {
	return !Lookup(id).Flags.NoContainment
}

// CopiesUpperBits returns whether the upper lanes must be wired explicitly
// from a source operand.
func CopiesUpperBits(id Intrinsic) bool {
	return Lookup(id).Flags.CopyUpperBits
}

// BaseTypeFromFirstArg returns whether the base element type is inferred from
// the first call operand.
func BaseTypeFromFirstArg(id Intrinsic) bool {
	return Lookup(id).Flags.BaseTypeFromFirstArg
}

// BaseTypeFromSecondArg returns whether the base element type is inferred from
// the second call operand.
func BaseTypeFromSecondArg(id Intrinsic) bool {
	return Lookup(id).Flags.BaseTypeFromSecondArg
}

// IsFloatingPointUsed returns whether code generation must mark the enclosing
// function as using floating-point state for this intrinsic.
func IsFloatingPointUsed(id Intrinsic) bool {
	return !Lookup(id).Flags.NoFloatingPointUsed
}

// MaybeImm returns whether the intrinsic has both immediate and vector
// overloads.
func MaybeImm(id Intrinsic) bool {
	return Lookup(id).Flags.MaybeImm
}

// NoJmpTableImm returns whether a non-constant required immediate is a hard
// failure rather than a jump-table expansion.
func NoJmpTableImm(id Intrinsic) bool {
	return Lookup(id).Flags.NoJmpTableImm
}

// Is64BitOnly returns whether the intrinsic requires 64-bit general-purpose
// registers.
func Is64BitOnly(id Intrinsic) bool {
	return Lookup(id).Flags.SixtyFourBitOnly
}

// SecondArgMaybe64Bit returns whether the second operand may be 64 bits wide
// independently of the first.
func SecondArgMaybe64Bit(id Intrinsic) bool {
	return Lookup(id).Flags.SecondArgMaybe64Bit
}

// HasSpecialCodegen returns whether code generation layers bespoke rules on
// top of the table data.
func HasSpecialCodegen(id Intrinsic) bool {
	return Lookup(id).Flags.SpecialCodegen
}

// HasSpecialImport returns whether import layers bespoke rules on top of the
// table data.
func HasSpecialImport(id Intrinsic) bool {
	return Lookup(id).Flags.SpecialImport
}

// HasRMWSemantics returns whether the destination operand is implicitly also
// a source in the two- or three-operand form.
func HasRMWSemantics(id Intrinsic) bool {
	return !Lookup(id).Flags.NoRMWSemantics
}

// MaybeMemoryLoad returns whether the intrinsic has a pointer-load overload
// outside the memory categories.
func MaybeMemoryLoad(id Intrinsic) bool {
	return Lookup(id).Flags.MaybeMemoryLoad
}

// MaybeMemoryStore returns whether the intrinsic has a pointer-store overload
// outside the memory categories.
func MaybeMemoryStore(id Intrinsic) bool {
	return Lookup(id).Flags.MaybeMemoryStore
}
