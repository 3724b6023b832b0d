package cmd

import (
	"fmt"
	"strings"

	"vexc/hwintrin"
	"vexc/report"
	"vexc/target"
	"vexc/types"
	"vexc/util"
)

// Driver runs one vexc command line invocation.
type Driver struct {
	// The log level to initialize the reporter with.
	logLevel int

	// The directory to load the target profile from, if any.
	targetPath string

	// The positional arguments: the command name followed by its arguments.
	posArgs []string

	// The target profile commands run against.
	profile *target.Profile
}

// Execute is the main entry point for the `vexc` CLI utility.
func Execute() {
	d := NewDriverFromArgs()

	report.InitReporter(d.logLevel)

	if d.targetPath == "" {
		d.profile = target.HostProfile()
	} else {
		prof, err := target.Load(d.targetPath)
		if err != nil {
			report.ReportFatal(err.Error())
		}

		d.profile = prof
	}

	switch d.posArgs[0] {
	case "inspect":
		if len(d.posArgs) != 2 {
			argumentError("inspect takes exactly one argument")
		}

		d.execInspect(d.posArgs[1])
	case "isas":
		d.execISAs()
	default:
		argumentError("unknown command: %s", d.posArgs[0])
	}
}

// execInspect displays the table entry of a single intrinsic, named as it
// appears at an import site: `Class.Method`.
func (d *Driver) execInspect(query string) {
	className, methodName, ok := strings.Cut(query, ".")
	if !ok {
		argumentError("intrinsic names have the form Class.Method: got `%s`", query)
	}

	id := hwintrin.LookupID(className, methodName)
	if id == hwintrin.IntrinsicInvalid {
		report.ReportFatal("no intrinsic named `%s`", query)
	}

	desc := hwintrin.Lookup(id)

	report.DisplayInfoMessage("Intrinsic", id.String())
	fmt.Printf("  instruction set:  %s\n", desc.ISA)
	fmt.Printf("  category:         %s\n", desc.Category)

	if desc.SimdSize == 0 {
		fmt.Print("  simd width:       scalar\n")
	} else {
		fmt.Printf("  simd width:       %d bits\n", desc.SimdSize)
	}

	if desc.NumArgs == -1 {
		fmt.Print("  operands:         determined per call\n")
	} else {
		fmt.Printf("  operands:         %d\n", desc.NumArgs)
	}

	if desc.Category == hwintrin.CategoryImm {
		fmt.Printf("  immediate range:  0-%d\n", hwintrin.LookupImmUpperBound(id))
	}

	if flags := flagNames(desc.Flags); len(flags) > 0 {
		fmt.Printf("  flags:            %s\n", strings.Join(flags, ", "))
	}

	for pt := types.PrimitiveType(0); pt < types.NumPrimitiveTypes; pt++ {
		if op := desc.OpcodeFor(pt); op != hwintrin.OpInvalid {
			fmt.Printf("  %-6s -> %s\n", pt.Repr(), op)
		}
	}

	if d.profile.CanUse(id) {
		fmt.Printf("\navailable on target `%s`\n", d.profile.Name)
	} else {
		fmt.Printf("\nnot available on target `%s`\n", d.profile.Name)
	}
}

// execISAs lists every known instruction set along with whether the selected
// target supports it.
func (d *Driver) execISAs() {
	if d.targetPath == "" {
		report.DisplayInfoMessage("Host CPU", target.HostCPUName())
	} else {
		report.DisplayInfoMessage("Target", d.profile.Name)
	}

	var isas []hwintrin.InstructionSet
	for isa := hwintrin.ISASSE; isa <= hwintrin.ISAPOPCNT; isa++ {
		isas = append(isas, isa)
	}

	lines := util.Map(isas, func(isa hwintrin.InstructionSet) string {
		status := "unsupported"
		if d.profile.Supports(isa) {
			status = "supported"
		}

		if !isa.FullySupported() {
			status += " (partial table)"
		}

		return fmt.Sprintf("  %-10s %s", isa.ClassName(), status)
	})

	fmt.Println(strings.Join(lines, "\n"))
}

// flagNames returns the names of the flags set in the given flag record.
func flagNames(flags hwintrin.Flags) []string {
	var names []string

	for _, entry := range []struct {
		name string
		set  bool
	}{
		{"commutative", flags.Commutative},
		{"full-range-imm", flags.FullRangeImm},
		{"one-type-generic", flags.OneTypeGeneric},
		{"two-type-generic", flags.TwoTypeGeneric},
		{"no-codegen", flags.SkipCodegen},
		{"unfixed-simd-size", flags.UnfixedSimdSize},
		{"multi-ins", flags.MultiIns},
		{"no-containment", flags.NoContainment},
		{"copy-upper-bits", flags.CopyUpperBits},
		{"base-type-from-first-arg", flags.BaseTypeFromFirstArg},
		{"base-type-from-second-arg", flags.BaseTypeFromSecondArg},
		{"no-float", flags.NoFloatingPointUsed},
		{"maybe-imm", flags.MaybeImm},
		{"no-jmptable-imm", flags.NoJmpTableImm},
		{"64-bit-only", flags.SixtyFourBitOnly},
		{"second-arg-maybe-64-bit", flags.SecondArgMaybe64Bit},
		{"special-codegen", flags.SpecialCodegen},
		{"special-import", flags.SpecialImport},
		{"no-rmw", flags.NoRMWSemantics},
		{"maybe-memory-load", flags.MaybeMemoryLoad},
		{"maybe-memory-store", flags.MaybeMemoryStore},
	} {
		if entry.set {
			names = append(names, entry.name)
		}
	}

	return names
}
