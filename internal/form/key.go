package form

// Key is a single character code read from the terminal.
type Key int

// Named key codes understood by the form.
const (
	KeyLeft      Key = 'H'
	KeyDown      Key = 'J'
	KeyUp        Key = 'K'
	KeyRight     Key = 'L'
	KeyQuit      Key = 'Q'
	KeyReload    Key = 'R'
	KeyClear     Key = 'D'
	KeyEnter     Key = 10
	KeyBackspace Key = 127
)

// IsMove reports whether k is one of the four focus movement keys.
func (k Key) IsMove() bool {
	switch k {
	case KeyLeft, KeyDown, KeyUp, KeyRight:
		return true
	}
	return false
}

// IsDigit reports whether k is an ASCII digit.
func (k Key) IsDigit() bool {
	return k >= '0' && k <= '9'
}

// Rune returns k as a rune.
func (k Key) Rune() rune {
	return rune(k)
}
