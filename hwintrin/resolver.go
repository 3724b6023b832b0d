package hwintrin

// Name resolution for intrinsic imports.  Front ends see intrinsics as
// `Class.Method` pairs (eg. `Sse2.Shuffle`); these tables map those strings
// back onto the dense identifier space.  Both maps are filled once from the
// descriptor table during init and are read-only afterward, so concurrent
// lookups from parallel unit compilations need no locking.

var (
	isaByClass map[string]InstructionSet
	idByName   map[string]Intrinsic
)

func buildNameTables() {
	isaByClass = make(map[string]InstructionSet)
	for isa := ISASSE; isa <= ISAPOPCNT; isa++ {
		isaByClass[isa.ClassName()] = isa
	}

	idByName = make(map[string]Intrinsic, len(descriptors))
	for i := range descriptors {
		desc := &descriptors[i]
		idByName[desc.ISA.ClassName()+"."+desc.Name] = desc.ID
	}
}

// LookupID resolves a class and method name pair to an intrinsic identifier.
// It returns IntrinsicInvalid when no intrinsic by that name exists; a failed
// resolution is an ordinary outcome (the front end falls back to a normal
// call), not an error.
func LookupID(className, methodName string) Intrinsic {
	id, ok := idByName[className+"."+methodName]
	if !ok {
		return IntrinsicInvalid
	}

	return id
}

// LookupISA resolves an intrinsic class name to its instruction set.  Unknown
// class names yield ISAInvalid.
func LookupISA(className string) InstructionSet {
	isa, ok := isaByClass[className]
	if !ok {
		return ISAInvalid
	}

	return isa
}
