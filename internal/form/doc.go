// Package form implements the keyboard-driven input grid used by hwgrade.
//
// A form is a fixed two-dimensional [Grid] of optional fields. A
// [FocusManager] owns the grid and a single focus position; every key
// read from the terminal is handed to it, and it either moves focus or
// forwards the key to the focused field.
//
// # Fields
//
// There are exactly three field kinds:
//
//   - [NumberField]: digits only, commits a float64.
//   - [SearchField]: free-text query that incrementally filters a
//     candidate list and commits the index of the first match.
//   - [TextField]: unrestricted text; Enter hands the value to a
//     [CreateFunc] collaborator.
//
// Values are committed with Select. The focus manager calls Select on
// the field being left before every move (commit-on-leave). Committed
// values are exposed as [Choice] values, which are absent until a
// commit succeeds.
//
// # Composite entries
//
// An [ErrorEntry] pairs a "Type" search field with a "Points Lost"
// number field. It has to be deployed onto a [Surface] before its
// choices can be read; [ErrorEntry.Choices] returns [ErrNotDeployed]
// otherwise.
//
// # Rendering
//
// Fields draw themselves on a line-addressed [Surface]. A field owns
// three regions: its label at (line, col), its input buffer on line+1
// and, for search fields, up to [MaxVisibleRows] candidates from
// line+2. Cursor placement is always a side effect of handling a key,
// never a precondition.
//
// # Concurrency
//
// Nothing in this package is safe for concurrent use. The form is
// driven from a single goroutine, one key at a time.
package form
