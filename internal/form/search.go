package form

import (
	"strings"
)

// MaxVisibleRows is the number of filtered candidates drawn under a
// search field.
const MaxVisibleRows = 5

// listWidth is how many columns are blanked when a candidate row is
// erased.
const listWidth = 42

// SearchField filters a candidate list by the text typed into it and
// commits the position of the first match.
type SearchField[T any] struct {
	input
	name       string
	format     func(T) string
	candidates []T
	// filtered holds indices into candidates, in candidate order.
	filtered []int
	// drawn holds the width of each list row currently on screen.
	drawn  []int
	choice Choice[int]
}

// NewSearchField draws the label and the unfiltered candidate list on s.
func NewSearchField[T any](s Surface, name string, line, col int, candidates []T, format func(T) string) *SearchField[T] {
	f := &SearchField[T]{
		input:      newInput(s, line, col, name+": "),
		name:       name,
		format:     format,
		candidates: candidates,
	}
	f.filtered = f.filter()
	f.drawList()
	s.Refresh()
	return f
}

func (f *SearchField[T]) sealed() {}

// Name returns the field label.
func (f *SearchField[T]) Name() string {
	return f.name
}

// HandleKey appends k to the query and refilters. 'D' clears the query;
// backspace drops the backspace code together with one typed rune.
func (f *SearchField[T]) HandleKey(k Key) error {
	f.CursorToStart()
	f.buf = append(f.buf, k.Rune())
	switch k {
	case KeyClear:
		f.blank(len(f.buf))
		f.buf = f.buf[:0]
		f.surface.MoveCursor(f.inputLine(), f.col)
	case KeyBackspace:
		f.trim(2)
		f.redraw()
	}

	f.filtered = f.filter()
	f.eraseList()
	f.drawList()
	f.surface.WriteAt(f.inputLine(), f.col, string(f.buf))
	f.surface.Refresh()
	return nil
}

// Select replaces the query with the first match and commits that
// match's index in the unfiltered list. With an empty query or no
// match the field is left untouched.
func (f *SearchField[T]) Select() error {
	f.eraseList()
	f.surface.MoveCursor(f.inputLine(), f.col)
	if len(f.filtered) == 0 || len(f.buf) == 0 {
		return nil
	}
	first := f.filtered[0]
	f.buf = []rune(f.format(f.candidates[first]))
	f.surface.WriteAt(f.inputLine(), f.col, string(f.buf))
	f.choice = Some(first)
	return nil
}

// Rebind replaces the candidate list. The filtered view is recomputed
// from the current query; a committed index is kept as is.
func (f *SearchField[T]) Rebind(candidates []T) {
	f.candidates = candidates
	f.filtered = f.filter()
}

// Choice returns the committed index into the candidate list.
func (f *SearchField[T]) Choice() Choice[int] {
	return f.choice
}

// Chosen resolves the committed index against the current candidates.
func (f *SearchField[T]) Chosen() (T, bool) {
	var zero T
	i, ok := f.choice.Get()
	if !ok || i < 0 || i >= len(f.candidates) {
		return zero, false
	}
	return f.candidates[i], true
}

// Candidates returns the candidate list the field is bound to.
func (f *SearchField[T]) Candidates() []T {
	return f.candidates
}

// Filtered returns the candidates matching the current query.
func (f *SearchField[T]) Filtered() []T {
	out := make([]T, len(f.filtered))
	for i, idx := range f.filtered {
		out[i] = f.candidates[idx]
	}
	return out
}

func (f *SearchField[T]) filter() []int {
	return Filter(f.candidates, string(f.buf), f.format)
}

func (f *SearchField[T]) listLine() int {
	return f.line + 2
}

func (f *SearchField[T]) drawList() {
	n := min(len(f.filtered), MaxVisibleRows)
	f.drawn = f.drawn[:0]
	for i := 0; i < n; i++ {
		text := f.format(f.candidates[f.filtered[i]])
		f.surface.WriteAt(f.listLine()+i, f.col, text)
		f.drawn = append(f.drawn, len([]rune(text)))
	}
}

func (f *SearchField[T]) eraseList() {
	for i, width := range f.drawn {
		f.surface.WriteAt(f.listLine()+i, f.col, strings.Repeat(" ", max(width, listWidth)))
	}
	f.drawn = f.drawn[:0]
}

// Filter returns the indices of the candidates whose formatted text
// contains query, ignoring case. Candidate order is preserved.
func Filter[T any](candidates []T, query string, format func(T) string) []int {
	q := strings.ToUpper(query)
	out := make([]int, 0, len(candidates))
	for i, c := range candidates {
		if strings.Contains(strings.ToUpper(format(c)), q) {
			out = append(out, i)
		}
	}
	return out
}
