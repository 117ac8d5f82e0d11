package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muurk/hwgrade/internal/store"
)

// Summary describes a finished entry for display.
type Summary struct {
	Entry store.Entry
	// Class is the label of the chosen class. Empty means the entry has
	// no class.
	Class string
	Width int
}

// Score returns the score line, counting every recorded problem as
// wrong.
func (s Summary) Score() string {
	right := s.Entry.NonErrors
	return fmt.Sprintf("you got %d right out of %d", right, right+len(s.Entry.Problems))
}

// Render returns the summary box.
func (s Summary) Render() string {
	width := clampWidth(s.Width)

	class := s.Class
	if class == "" {
		class = "none"
	}

	lines := []string{
		"",
		TitleStyle.Render(fmt.Sprintf("HOMEWORK %d", s.Entry.HomeworkID)),
		"",
		KeyStyle.Render("class:") + ValueStyle.Render(class),
		KeyStyle.Render("homework:") + ValueStyle.Render(strconv.FormatInt(s.Entry.HomeworkID, 10)),
		"",
		ScoreStyle.Render(s.Score()),
		"",
		KeyStyle.Render("problems:"),
	}
	if len(s.Entry.Problems) == 0 {
		lines = append(lines, ProblemStyle.Render(MutedStyle.Render("(none)")))
	}
	for _, p := range s.Entry.Problems {
		lines = append(lines, ProblemStyle.Render(FormatProblem(p)))
	}
	lines = append(lines, "")

	return boxStyle(width, PrimaryColor).Render(strings.Join(lines, "\n"))
}

// FormatProblem renders one problem as "<type> -<points>".
func FormatProblem(p store.Problem) string {
	return fmt.Sprintf("%s  -%s", p.Type, strconv.FormatFloat(p.PointsLost, 'g', -1, 64))
}

// ClassLabel finds the class with id in classes and returns its label.
// A nil id, or one not in classes, yields "".
func ClassLabel(classes []store.Class, id *int64) string {
	if id == nil {
		return ""
	}
	for _, c := range classes {
		if c.ID == *id {
			return c.String()
		}
	}
	return fmt.Sprintf("%d (unknown class)", *id)
}
