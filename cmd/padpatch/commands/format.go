package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	// fatih/color disables these when the output is not a terminal.
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	addColor     = color.New(color.FgGreen)
	delColor     = color.New(color.FgRed)
	hunkColor    = color.New(color.FgCyan)
	dimColor     = color.New(color.FgHiBlack)
)

// printSuccess prints a message with a checkmark.
func printSuccess(w io.Writer, msg string) {
	_, _ = successColor.Fprintf(w, "✓ %s\n", msg)
}

// printPending prints a change that was not written.
func printPending(w io.Writer, msg string) {
	_, _ = warningColor.Fprintf(w, "~ %s\n", msg)
}

// printError prints an error message.
func printError(w io.Writer, msg string) {
	_, _ = errorColor.Fprintf(w, "✗ %s\n", msg)
}

// printDiff prints a unified diff, colouring added and removed lines.
func printDiff(w io.Writer, diff string) {
	for _, line := range strings.SplitAfter(diff, "\n") {
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			_, _ = dimColor.Fprint(w, line)
		case strings.HasPrefix(line, "@@"):
			_, _ = hunkColor.Fprint(w, line)
		case strings.HasPrefix(line, "+"):
			_, _ = addColor.Fprint(w, line)
		case strings.HasPrefix(line, "-"):
			_, _ = delColor.Fprint(w, line)
		default:
			_, _ = fmt.Fprint(w, line)
		}
	}
	if !strings.HasSuffix(diff, "\n") {
		_, _ = fmt.Fprintln(w)
	}
}
