package form

import (
	"fmt"
	"strconv"
)

// NumberField accumulates ASCII digits and commits them as a float64.
type NumberField struct {
	input
	name   string
	choice Choice[float64]
}

// NewNumberField draws the field's label on s and returns the field.
func NewNumberField(s Surface, name string, line, col int) *NumberField {
	return &NumberField{
		input: newInput(s, line, col, name+": "),
		name:  name,
	}
}

func (f *NumberField) sealed() {}

// Name returns the field label.
func (f *NumberField) Name() string {
	return f.name
}

// HandleKey appends digits and handles backspace. Every other key is
// ignored apart from placing the cursor.
func (f *NumberField) HandleKey(k Key) error {
	f.CursorToStart()
	switch {
	case k == KeyBackspace:
		f.trim(1)
		f.redraw()
	case k.IsDigit():
		f.buf = append(f.buf, k.Rune())
		f.redraw()
	}
	return nil
}

// Select parses the buffer. An empty buffer leaves the choice absent,
// which callers must not confuse with zero.
func (f *NumberField) Select() error {
	if len(f.buf) == 0 {
		return nil
	}
	v, err := strconv.ParseFloat(string(f.buf), 64)
	if err != nil {
		return fmt.Errorf("form: %s: parsing %q: %w", f.name, string(f.buf), err)
	}
	f.choice = Some(v)
	return nil
}

// Choice returns the committed number.
func (f *NumberField) Choice() Choice[float64] {
	return f.choice
}
