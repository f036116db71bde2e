// Package ui provides terminal output formatting for clirequest.
//
// This package handles all user-facing output with consistent styling:
//   - Colored output (cyan, green, red, yellow)
//   - Headers and footers with box-drawing characters
//   - Key/value rows for request fields, with absent values dimmed
//   - Info, success, failure, and warning messages
//
// All output goes to ui.Out (defaults to os.Stderr) to allow
// testing and output redirection. Colors follow fatih/color, which
// disables them when NO_COLOR is set or the output is not a terminal.
//
// Example usage:
//
//	ui.Header()
//	ui.Section("classification")
//	ui.Field("command", cmd, ok)
//	ui.List("flags", req.Flags())
//	ui.Footer()
//
// Output styling:
//   - Info:    → Cyan arrow
//   - Success: ✔ Green checkmark
//   - Fail:    ✘ Red X
//   - Warn:    ○ Yellow circle
package ui
