package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ConfirmPrompt is the question asked before an entry is saved.
const ConfirmPrompt = "is this correct? (y/n)"

// Confirm writes the prompt to w and reads one line from r. Only "y" or
// "Y" count as yes. End of input without an answer is a no.
func Confirm(w io.Writer, r io.Reader) (bool, error) {
	if _, err := fmt.Fprintln(w, PromptStyle.Render(ConfirmPrompt)); err != nil {
		return false, err
	}

	input, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("reading answer: %w", err)
	}

	answer := strings.TrimRight(input, "\r\n")
	return answer == "y" || answer == "Y", nil
}

// ConfirmEntry prints the summary and asks whether to save it.
func ConfirmEntry(w io.Writer, r io.Reader, s Summary) (bool, error) {
	if _, err := fmt.Fprintln(w, s.Render()); err != nil {
		return false, err
	}
	return Confirm(w, r)
}
