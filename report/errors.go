package report

import (
	"fmt"
	"os"
)

// CompileError is a compilation error tied to a specific call site or span of
// source text: erroneous input code, not a defect in the compiler itself.
// Shaping passes raise these via panic and the unit driver recovers them with
// CatchErrors so that one bad call never takes down sibling compilation units.
type CompileError struct {
	// The error message.
	Message string

	// The span over which the error occurs.
	Span *TextSpan
}

func (ce *CompileError) Error() string {
	return ce.Message
}

// Raise creates a new compile error.
func Raise(span *TextSpan, msg string, args ...interface{}) *CompileError {
	return &CompileError{Message: fmt.Sprintf(msg, args...), Span: span}
}

// -----------------------------------------------------------------------------

// InternalError is an internal compiler error: a lookup by an identifier the
// compiler itself constructed missed the registry, a width-ambiguous intrinsic
// could not be sized from its signature, an intrinsic that should have been
// rewritten away reached code generation, and so on.  These indicate a defect
// in the compiler, never in user input, and abort only the compilation unit in
// which they occur.
type InternalError struct {
	// The error message.
	Message string
}

func (ie *InternalError) Error() string {
	return ie.Message
}

// RaiseICE panics with a new internal compiler error.  The panic is expected
// to be recovered at the compilation unit boundary by CatchErrors.
func RaiseICE(msg string, args ...interface{}) {
	panic(&InternalError{Message: fmt.Sprintf(msg, args...)})
}

// -----------------------------------------------------------------------------

// ReportICE reports an internal compiler error that has already been recovered.
// These errors are always displayed regardless of log level.
func ReportICE(message string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.isErr = true

	displayICE(fmt.Sprintf(message, args...))
}

// ReportFatal reports a fatal error.  These are errors that should cause all
// compilation to stop immediately.  However, they are expected errors that
// generally result from invalid configuration of some form: a missing or
// malformed target profile, an unknown instruction-set name, etc.
func ReportFatal(message string, args ...interface{}) {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayFatal(fmt.Sprintf(message, args...))
	}

	os.Exit(1)
}

// ReportCompileError reports a compilation error: ie. erroneous input code.
// The unitName is the representative name of the compilation unit containing
// the erroneous call.  The span may be nil in which case no position
// information will be printed.
func ReportCompileError(unitName string, span *TextSpan, message string, args ...interface{}) {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		defer rep.m.Unlock()

		rep.isErr = true

		displayCompileMessage("error", unitName, span, fmt.Sprintf(message, args...))
	}
}

// ReportCompileWarning reports a compilation warning.  The arguments are of
// the same form as those to ReportCompileError.
func ReportCompileWarning(unitName string, span *TextSpan, message string, args ...interface{}) {
	if rep.logLevel > LogLevelWarn {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayCompileMessage("warning", unitName, span, fmt.Sprintf(message, args...))
	}
}

// ReportStdError reports a non-fatal, standard Go error.
func ReportStdError(unitName string, err error) {
	if rep.logLevel > LogLevelError {
		rep.m.Lock()
		defer rep.m.Unlock()

		rep.isErr = true

		displayStdError(unitName, err)
	}
}

// -----------------------------------------------------------------------------

// CatchErrors catches any errors thrown by a `panic` during a stage of
// compilation.  In effect, this handler determines when any errors
// "unrecoverable" within a given compilation unit should stop bubbling: a
// compile error or internal error aborts the unit, is reported, and leaves
// every other unit untouched.
// NB: This function must ALWAYS be deferred.
func CatchErrors(unitName string) {
	if x := recover(); x != nil {
		if cerr, ok := x.(*CompileError); ok {
			ReportCompileError(unitName, cerr.Span, cerr.Message)
		} else if ierr, ok := x.(*InternalError); ok {
			ReportICE("%s", ierr.Message)
		} else if serr, ok := x.(error); ok {
			ReportStdError(unitName, serr)
		} else {
			ReportFatal("%v", x)
		}
	}
}
