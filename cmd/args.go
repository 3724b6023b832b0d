package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"vexc/common"
	"vexc/report"
)

const usage = `Usage: vexc [flags|options] <command> [arguments]

Commands:
---------
inspect <Class.Method>   Displays the table entry for a hardware intrinsic.
isas                     Lists the known instruction sets and whether the
                         selected target supports them.

Flags:
------
-h, --help      Displays usage information (ie. this text).
-v, --version   Displays the current compiler version.

Options:
--------
-t,  --target     Sets the directory to load the target profile from.  The
                  profile of the host machine is used if unspecified.
-ll, --loglevel   Sets the compiler's log-level.  Valid values are:
                    - "verbose" for outputting all messages (default)
                    - "warn" for outputting errors and warnings
                    - "error" for outputting errors only
                    - "silent" for no output
`

// Prints the usage message and exits the compiler with the given exit code.
func printUsage(exitCode int) {
	fmt.Print(usage, "\n")
	os.Exit(exitCode)
}

// argParser is a command-line argument parser.
type argParser struct {
	// The arguments being parsed.
	args []string

	// The argument parser's position within those arguments.
	ndx int
}

// Set containing all the argument names that correspond to options.
var options = map[string]struct{}{
	"t":         {},
	"ll":        {},
	"-target":   {},
	"-loglevel": {},
}

// argumentError displays an argument error and exits the program.
func argumentError(message string, args ...interface{}) {
	fmt.Print("argument error: ", fmt.Sprintf(message, args...), "\n\n")
	printUsage(1)
}

// nextArg parses the next command-line argument if one exists.  The first
// value is the name of the argument; it is empty for positional arguments.
// The second value is the value of the argument; it is empty for flags.  The
// final value indicates whether there was an argument to parse.
func (ap *argParser) nextArg() (string, string, bool) {
	if ap.ndx < len(ap.args) {
		arg := ap.args[ap.ndx]
		ap.ndx++

		if strings.HasPrefix(arg, "-") { // flag or option
			name := arg[1:]

			if _, ok := options[name]; ok { // option
				// Make sure the option value exists.
				if ap.ndx < len(ap.args) && !strings.HasPrefix(ap.args[ap.ndx], "-") {
					value := ap.args[ap.ndx]
					ap.ndx++
					return name, value, true
				} else {
					argumentError("option %s requires an argument", strings.TrimLeft(name, "-"))
				}
			} else { // flag
				return name, "", true
			}
		} else { // positional
			return "", arg, true
		}
	}

	// No arguments to parse.
	return "", "", false
}

// useArg attempts to use a single command-line argument to initialize the
// driver.  If the argument is invalid, the program will exit.
func useArg(d *Driver, name, value string) {
	switch name {
	case "h", "-help":
		printUsage(0)
	case "v", "-version":
		report.InitReporter(report.LogLevelVerbose)
		report.DisplayInfoMessage("Vexc Version", common.VexcVersion)
		os.Exit(0)
	case "ll", "-loglevel":
		switch value {
		case "silent":
			d.logLevel = report.LogLevelSilent
		case "error":
			d.logLevel = report.LogLevelError
		case "warn":
			d.logLevel = report.LogLevelWarn
		case "verbose":
			d.logLevel = report.LogLevelVerbose
		default:
			argumentError("invalid log level")
		}
	case "t", "-target":
		absPath, err := filepath.Abs(value)
		if err != nil {
			argumentError("invalid target path: %s", value)
		}

		d.targetPath = absPath
	case "":
		d.posArgs = append(d.posArgs, value)
	default:
		argumentError("unknown flag: %s", name)
	}
}

// NewDriverFromArgs creates a new driver instance based on the given command
// line arguments if the arguments are valid.
func NewDriverFromArgs() *Driver {
	d := &Driver{logLevel: report.LogLevelVerbose}

	ap := argParser{args: os.Args[1:], ndx: 0}

	for {
		name, value, ok := ap.nextArg()
		if !ok {
			break
		}

		useArg(d, name, value)
	}

	if len(d.posArgs) == 0 {
		argumentError("no command specified")
	}

	return d
}
