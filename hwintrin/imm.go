package hwintrin

// LookupImmUpperBound returns the largest immediate value an immediate-taking
// intrinsic accepts.  Intrinsics whose control byte is meaningful across its
// whole encodable range report 255; the rest carry an authored bound in the
// table (a shuffle selecting one of four lanes accepts 0 through 3, a 128-bit
// lane extract accepts 0 or 1, and so on).
func LookupImmUpperBound(id Intrinsic) int {
	desc := Lookup(id)
	if desc.Flags.FullRangeImm {
		return 255
	}

	return desc.ImmUpperBound
}

// InImmRange reports whether ival is a valid immediate operand for the given
// intrinsic.  Immediates are unsigned bytes, so negatives are always out of
// range.
func InImmRange(id Intrinsic, ival int) bool {
	return ival >= 0 && ival <= LookupImmUpperBound(id)
}
