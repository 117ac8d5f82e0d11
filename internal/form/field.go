package form

import (
	"errors"
	"fmt"
	"strings"
)

// Surface is the line-addressed screen the form draws on.
type Surface interface {
	// WriteAt writes text starting at (line, col), overwriting whatever
	// was there. The cursor is left after the written text.
	WriteAt(line, col int, text string)
	// MoveCursor places the terminal cursor at (line, col).
	MoveCursor(line, col int)
	// Refresh flushes pending writes to the terminal.
	Refresh()
}

// Field is one addressable input widget in the grid. The set of
// implementations is closed: *NumberField, *SearchField and *TextField.
type Field interface {
	// HandleKey consumes one key. Only a failing collaborator
	// produces an error.
	HandleKey(k Key) error
	// Select commits the field's current value as its choice.
	Select() error
	// CursorToStart moves the cursor to the end of the input line.
	CursorToStart()

	sealed()
}

var (
	// ErrNotDeployed is returned when reading the choices of a
	// composite entry that was never deployed onto a surface.
	ErrNotDeployed = errors.New("form: entry not deployed")
	// ErrEmptyOrigin is returned when a focus manager is created over
	// a grid whose (0,0) cell is empty.
	ErrEmptyOrigin = errors.New("form: grid origin is empty")
	// ErrOutOfBounds is returned when placing a field outside the grid.
	ErrOutOfBounds = errors.New("form: cell out of bounds")
	// ErrCellOccupied is returned when placing a field in a cell that
	// already holds one.
	ErrCellOccupied = errors.New("form: cell already occupied")
)

// Choice is a committed field value. The zero Choice is absent.
type Choice[T any] struct {
	value T
	ok    bool
}

// Some returns a present Choice holding v.
func Some[T any](v T) Choice[T] {
	return Choice[T]{value: v, ok: true}
}

// Get returns the value and whether it is present.
func (c Choice[T]) Get() (T, bool) {
	return c.value, c.ok
}

// Present reports whether a value was committed.
func (c Choice[T]) Present() bool {
	return c.ok
}

// String implements fmt.Stringer.
func (c Choice[T]) String() string {
	if !c.ok {
		return "none"
	}
	return fmt.Sprint(c.value)
}

// input is the state shared by every field kind: where it lives on the
// surface and the text typed so far.
type input struct {
	surface Surface
	line    int
	col     int
	buf     []rune
}

func newInput(s Surface, line, col int, label string) input {
	s.WriteAt(line, col, label)
	return input{surface: s, line: line, col: col}
}

func (in *input) inputLine() int {
	return in.line + 1
}

// CursorToStart moves the cursor to the end of the input buffer.
func (in *input) CursorToStart() {
	in.surface.MoveCursor(in.inputLine(), in.col+len(in.buf))
}

// Buffer returns the text typed so far.
func (in *input) Buffer() string {
	return string(in.buf)
}

// redraw rewrites the input line. The trailing blank erases the rune
// left behind by a backspace.
func (in *input) redraw() {
	in.surface.WriteAt(in.inputLine(), in.col, string(in.buf)+" ")
	in.CursorToStart()
}

func (in *input) blank(width int) {
	if width <= 0 {
		return
	}
	in.surface.WriteAt(in.inputLine(), in.col, strings.Repeat(" ", width))
}

func (in *input) trim(n int) {
	keep := len(in.buf) - n
	if keep < 0 {
		keep = 0
	}
	in.buf = in.buf[:keep]
}
