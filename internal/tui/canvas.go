package tui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

var cursorStyle = lipgloss.NewStyle().Reverse(true)

// Canvas is an in-memory text screen. It grows as text is written past
// its edges.
type Canvas struct {
	lines      [][]rune
	cursorLine int
	cursorCol  int
	refreshes  int
}

// NewCanvas returns an empty canvas with the cursor at the origin.
func NewCanvas() *Canvas {
	return &Canvas{}
}

// controlPlaceholder is drawn in place of control runes, which would
// otherwise break the line they are written on.
const controlPlaceholder = '?'

// WriteAt overwrites the cells starting at (line, col) with text.
// Negative coordinates are ignored.
func (c *Canvas) WriteAt(line, col int, text string) {
	if line < 0 || col < 0 {
		return
	}
	runes := []rune(text)
	for i, r := range runes {
		if unicode.IsControl(r) {
			runes[i] = controlPlaceholder
		}
	}
	row := c.row(line, col+len(runes))
	copy(row[col:], runes)
}

// MoveCursor places the cursor.
func (c *Canvas) MoveCursor(line, col int) {
	c.cursorLine, c.cursorCol = max(line, 0), max(col, 0)
}

// Refresh marks a completed batch of writes. Bubble Tea redraws after
// every Update, so nothing is flushed here.
func (c *Canvas) Refresh() {
	c.refreshes++
}

// Refreshes returns how many times Refresh has been called.
func (c *Canvas) Refreshes() int {
	return c.refreshes
}

// Cursor returns the cursor position.
func (c *Canvas) Cursor() (line, col int) {
	return c.cursorLine, c.cursorCol
}

// Height returns the number of lines written so far.
func (c *Canvas) Height() int {
	return len(c.lines)
}

// Line returns one line with trailing blanks removed.
func (c *Canvas) Line(line int) string {
	if line < 0 || line >= len(c.lines) {
		return ""
	}
	return strings.TrimRight(string(c.lines[line]), " ")
}

// String returns the canvas text without the cursor.
func (c *Canvas) String() string {
	out := make([]string, len(c.lines))
	for i := range c.lines {
		out[i] = c.Line(i)
	}
	return strings.Join(out, "\n")
}

// Render returns the canvas text with the cursor cell highlighted.
func (c *Canvas) Render() string {
	height := max(len(c.lines), c.cursorLine+1)
	out := make([]string, height)
	for i := 0; i < height; i++ {
		text := c.Line(i)
		if i != c.cursorLine {
			out[i] = text
			continue
		}
		runes := []rune(text)
		for len(runes) <= c.cursorCol {
			runes = append(runes, ' ')
		}
		out[i] = string(runes[:c.cursorCol]) +
			cursorStyle.Render(string(runes[c.cursorCol])) +
			string(runes[c.cursorCol+1:])
	}
	return strings.Join(out, "\n")
}

// row returns line, grown to at least width cells.
func (c *Canvas) row(line, width int) []rune {
	for len(c.lines) <= line {
		c.lines = append(c.lines, nil)
	}
	row := c.lines[line]
	for len(row) < width {
		row = append(row, ' ')
	}
	c.lines[line] = row
	return row
}
