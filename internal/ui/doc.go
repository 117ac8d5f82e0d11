// Package ui renders hwgrade's plain terminal output: the entry summary
// shown after the grading form closes, the y/n confirmation prompt,
// result boxes and catalog listings.
//
// Unlike package tui, nothing here takes over the screen. Output is
// written to an io.Writer once the Bubble Tea program has exited and
// restored the terminal.
//
// # Components
//
//   - Summary: the finished entry (class, homework id, score, problems)
//   - Confirm: "is this correct? (y/n)" read from an io.Reader
//   - Result: success, warning and failure boxes
//   - Catalog: class and error type listings for the CLI
//
// All rendering functions take an explicit width so they can be tested
// without a terminal; [Printer] fills it in from the terminal size.
package ui
