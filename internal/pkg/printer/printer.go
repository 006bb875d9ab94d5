// Package printer writes colored operator output for the command line tools.
package printer

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)

	out    io.Writer = os.Stdout
	errOut io.Writer = os.Stderr
)

// SetOutput redirects regular and error output
func SetOutput(stdout, stderr io.Writer) {
	out = stdout
	errOut = stderr
}

// Success prints a success message in green with a checkmark prefix
func Success(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "✓") {
		msg = "✓ " + msg
	}
	green.Fprint(out, msg)
}

// Info prints an informational message in the default color
func Info(format string, a ...any) {
	fmt.Fprintf(out, format, a...)
}

// Warning prints a warning message in yellow
func Warning(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "!") {
		msg = "! " + msg
	}
	yellow.Fprint(out, msg)
}

// Step prints a step of a multi-step operation
func Step(format string, a ...any) {
	cyan.Fprintf(out, "→ %s", fmt.Sprintf(format, a...))
}

// Error prints a titled error with details and suggestions to stderr and
// returns a plain error for cobra, which is set to stay silent.
func Error(title, explanation string, details map[string]string, suggestions ...string) error {
	red.Fprintf(errOut, "%s\n", title)

	if explanation != "" {
		fmt.Fprintf(errOut, "\n%s\n", explanation)
	}

	if len(details) > 0 {
		keys := make([]string, 0, len(details))
		for k := range details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fmt.Fprintln(errOut)
		for _, k := range keys {
			fmt.Fprintf(errOut, "  %s: %s\n", k, details[k])
		}
	}

	switch len(suggestions) {
	case 0:
	case 1:
		fmt.Fprintf(errOut, "\n%s\n", suggestions[0])
	default:
		fmt.Fprintf(errOut, "\nEither:\n")
		for i, s := range suggestions {
			fmt.Fprintf(errOut, "  %d. %s\n", i+1, s)
		}
	}

	return fmt.Errorf("%s", title)
}
