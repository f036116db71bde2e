// Package ui provides user interface utilities for formatted terminal output.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

const (
	BoxWidth = 46
	title    = "clirequest"
)

var (
	// Color/style functions
	Bold   = color.New(color.Bold).SprintFunc()
	Dim    = color.New(color.Faint).SprintFunc()
	Green  = color.New(color.FgGreen).SprintFunc()
	Cyan   = color.New(color.FgCyan).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()

	// Output destination
	Out io.Writer = os.Stderr
)

// Header prints the top border with the tool name.
func Header() {
	border := strings.Repeat("─", BoxWidth-len(title)-4)
	fmt.Fprintf(Out, "  ┌%s %s %s\n", Dim(""), Bold(title), Dim(border))
}

// Footer prints the bottom border.
func Footer() {
	border := strings.Repeat("─", BoxWidth-1)
	fmt.Fprintf(Out, "  └%s\n", Dim(border))
}

// Section prints a bold section title.
func Section(name string) {
	fmt.Fprintf(Out, "  │ %s\n", Bold(name))
}

// Field prints a key/value row. Absent values are shown dimmed.
func Field(key, value string, present bool) {
	if !present {
		fmt.Fprintf(Out, "  │   %-18s %s\n", key, Dim("(absent)"))
		return
	}
	fmt.Fprintf(Out, "  │   %-18s %s\n", key, Cyan(quote(value)))
}

// List prints a key followed by a comma-separated list of values.
func List(key string, values []string) {
	if len(values) == 0 {
		fmt.Fprintf(Out, "  │   %-18s %s\n", key, Dim("(none)"))
		return
	}
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = quote(v)
	}
	fmt.Fprintf(Out, "  │   %-18s %s\n", key, Cyan(strings.Join(quoted, ", ")))
}

func quote(s string) string {
	return fmt.Sprintf("%q", s)
}

// Info prints an informational message with a cyan arrow.
func Info(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "  %s %s\n", Cyan("→"), msg)
}

// Success prints a success message with a green checkmark.
func Success(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "  %s %s\n", Green("✔"), msg)
}

// Fail prints an error message with a red X.
func Fail(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "  %s %s\n", Red("✘"), msg)
}

// Warn prints a warning message with a yellow circle.
func Warn(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "  %s %s\n", Yellow("○"), msg)
}
