package form

// CreateFunc submits the text captured by a TextField.
type CreateFunc func(value string) error

// TextField captures free text and hands it to a CreateFunc on Enter.
// It never commits a choice.
type TextField struct {
	input
	create CreateFunc
}

// TextFieldLabel is drawn above every TextField.
const TextFieldLabel = "Create New Type: "

// NewTextField draws the label on s and returns the field.
func NewTextField(s Surface, line, col int, create CreateFunc) *TextField {
	return &TextField{
		input:  newInput(s, line, col, TextFieldLabel),
		create: create,
	}
}

func (f *TextField) sealed() {}

// HandleKey edits the buffer. Enter submits it; the create error is
// returned unchanged.
func (f *TextField) HandleKey(k Key) error {
	f.CursorToStart()
	switch k {
	case KeyBackspace:
		f.trim(1)
		f.redraw()
	case KeyEnter:
		return f.create(string(f.buf))
	default:
		f.buf = append(f.buf, k.Rune())
		f.redraw()
	}
	return nil
}

// Select is a no-op.
func (f *TextField) Select() error {
	return nil
}
