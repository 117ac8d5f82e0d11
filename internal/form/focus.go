package form

import "fmt"

// Grid is a fixed width × height array of optional fields, addressed
// by (col, row).
type Grid struct {
	width  int
	height int
	cells  [][]Field
}

// NewGrid returns an empty grid.
func NewGrid(width, height int) *Grid {
	cells := make([][]Field, height)
	for row := range cells {
		cells[row] = make([]Field, width)
	}
	return &Grid{width: width, height: height, cells: cells}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Place puts f into an empty cell. A placed field is never replaced.
func (g *Grid) Place(col, row int, f Field) error {
	if !g.inBounds(col, row) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, col, row, g.width, g.height)
	}
	if g.cells[row][col] != nil {
		return fmt.Errorf("%w: (%d,%d)", ErrCellOccupied, col, row)
	}
	g.cells[row][col] = f
	return nil
}

// At returns the field at (col, row), or nil when the cell is empty or
// outside the grid.
func (g *Grid) At(col, row int) Field {
	if !g.inBounds(col, row) {
		return nil
	}
	return g.cells[row][col]
}

func (g *Grid) inBounds(col, row int) bool {
	return col >= 0 && col < g.width && row >= 0 && row < g.height
}

// FocusManager routes keys either to focus movement or to the focused
// field. The focus always rests on an occupied cell.
type FocusManager struct {
	grid *Grid
	col  int
	row  int
}

// NewFocusManager focuses the grid's (0,0) cell.
func NewFocusManager(g *Grid) (*FocusManager, error) {
	if g.At(0, 0) == nil {
		return nil, ErrEmptyOrigin
	}
	m := &FocusManager{grid: g}
	m.Focused().CursorToStart()
	return m, nil
}

// Position returns the focused (col, row).
func (m *FocusManager) Position() (col, row int) {
	return m.col, m.row
}

// Focused returns the focused field.
func (m *FocusManager) Focused() Field {
	return m.grid.At(m.col, m.row)
}

// SetFocus moves the focus to (col, row) if that cell is occupied and
// reports whether it moved.
func (m *FocusManager) SetFocus(col, row int) bool {
	f := m.grid.At(col, row)
	if f == nil {
		return false
	}
	m.col, m.row = col, row
	f.CursorToStart()
	return true
}

// SelectCurrent commits the focused field.
func (m *FocusManager) SelectCurrent() error {
	return m.Focused().Select()
}

// HandleKey applies a movement key or forwards k to the focused field.
//
// A move whose destination lies inside the grid first commits the
// focused field, then moves only if the destination is occupied. A move
// off the grid does nothing.
func (m *FocusManager) HandleKey(k Key) error {
	if !k.IsMove() {
		if f := m.Focused(); f != nil {
			return f.HandleKey(k)
		}
		return nil
	}

	col, row := m.col, m.row
	switch k {
	case KeyLeft:
		col--
	case KeyRight:
		col++
	case KeyUp:
		row--
	case KeyDown:
		row++
	}
	if !m.grid.inBounds(col, row) {
		return nil
	}
	if err := m.SelectCurrent(); err != nil {
		return err
	}
	m.SetFocus(col, row)
	return nil
}
