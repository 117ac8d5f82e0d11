// Package tui runs the grading form as a Bubble Tea program.
//
// The form package draws onto a [form.Surface]; here that surface is a
// [Canvas], an in-memory grid of runes that the Bubble Tea renderer
// turns into the frame. Key presses are translated into form keys and
// routed through the grading sheet.
//
// # Keys
//
//	H J K L   move focus left, down, up, right (arrow keys work too)
//	D         clear a search box
//	R         reload classes and error types from the database
//	Q         commit the focused field and finish
//	ctrl+c    same as Q
//
// Everything else, including Enter and Backspace, goes to the focused
// field.
//
// # Reloading
//
// Catalogs are reloaded on R and, when a database watcher is supplied,
// whenever another process writes to the database. Reloads run inside
// Update because the store connection is shared with error type
// creation and is not safe for concurrent use.
package tui
