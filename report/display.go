package report

import (
	"fmt"

	"github.com/pterm/pterm"
)

// The pterm styles used for the different kinds of report banners.
var (
	ErrorColorFG = pterm.FgRed
	ErrorStyleBG = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	WarnColorFG  = pterm.FgYellow
	WarnStyleBG  = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	InfoColorFG  = pterm.FgLightGreen
	InfoStyleBG  = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
)

// displayICE displays an internal compiler error message.
func displayICE(message string) {
	ErrorStyleBG.Print("Internal Error")
	ErrorColorFG.Println(" " + message)
	fmt.Print("This error was not supposed to happen: please open an issue on the vexc issue tracker\n\n")
}

// displayFatal displays a fatal error message.
func displayFatal(message string) {
	ErrorStyleBG.Print("Fatal Error")
	ErrorColorFG.Println(" " + message)
}

// displayCompileMessage displays a compilation error or warning.  The label is
// the string to prefix the message with: eg. if we want to display an error,
// the label is "error".
func displayCompileMessage(label, unitName string, span *TextSpan, message string) {
	if span == nil {
		fmt.Printf("%s: %s: %s\n", unitName, label, message)
	} else {
		fmt.Printf("%s:%d:%d: %s: %s\n", unitName, span.StartLine+1, span.StartCol+1, label, message)
	}
}

// displayStdError displays a standard Go error.
func displayStdError(unitName string, err error) {
	fmt.Printf("%s: error: %s\n", unitName, err)
}

// DisplayInfoMessage prints an informational message to the user.
func DisplayInfoMessage(tag, msg string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + msg)
}
