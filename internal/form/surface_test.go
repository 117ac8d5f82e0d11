package form

import "strings"

// screen is an in-memory Surface for tests.
type screen struct {
	lines     map[int][]rune
	line, col int
	refreshes int
}

func newScreen() *screen {
	return &screen{lines: make(map[int][]rune)}
}

func (s *screen) WriteAt(line, col int, text string) {
	row := s.lines[line]
	for len(row) < col {
		row = append(row, ' ')
	}
	for i, r := range []rune(text) {
		if col+i < len(row) {
			row[col+i] = r
		} else {
			row = append(row, r)
		}
	}
	s.lines[line] = row
	s.line, s.col = line, col+len([]rune(text))
}

func (s *screen) MoveCursor(line, col int) {
	s.line, s.col = line, col
}

func (s *screen) Refresh() {
	s.refreshes++
}

// text returns a line with trailing blanks removed.
func (s *screen) text(line int) string {
	return strings.TrimRight(string(s.lines[line]), " ")
}

func typeKeys(f Field, text string) {
	for _, r := range text {
		_ = f.HandleKey(Key(r))
	}
}
