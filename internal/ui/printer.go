package ui

import (
	"fmt"
	"io"

	"github.com/muurk/hwgrade/internal/store"
)

// Printer writes UI components to a writer at a fixed width.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a printer sized to the current terminal.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, width: GetTerminalWidth()}
}

// WithWidth overrides the rendering width.
func (p *Printer) WithWidth(width int) *Printer {
	p.width = width
	return p
}

// Width returns the rendering width.
func (p *Printer) Width() int {
	return p.width
}

// Print writes content followed by a newline.
func (p *Printer) Print(content string) {
	fmt.Fprintln(p.out, content)
}

// Result writes a result box.
func (p *Printer) Result(r *Result) {
	p.Print(r.SetWidth(p.width).Render())
}

// Summary writes the entry summary box.
func (p *Printer) Summary(s Summary) {
	s.Width = p.width
	p.Print(s.Render())
}

// Classes writes the class listing.
func (p *Printer) Classes(classes []store.Class) {
	fmt.Fprint(p.out, RenderClasses(classes))
}

// Types writes the error type listing.
func (p *Printer) Types(types []store.ErrorType) {
	fmt.Fprint(p.out, RenderTypes(types))
}
