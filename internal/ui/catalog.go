package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/hwgrade/internal/store"
)

var (
	catalogHeaderStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	catalogIDStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(6).
			Align(lipgloss.Right).
			MarginRight(2)
)

// RenderClasses lists classes one per line under a header.
func RenderClasses(classes []store.Class) string {
	rows := make([]string, len(classes))
	for i, c := range classes {
		rows[i] = catalogIDStyle.Render(fmt.Sprint(c.ID)) +
			ValueStyle.Render(fmt.Sprintf("%s %s  %s", c.Subject, c.Code, c.Professor))
	}
	return renderCatalog("Classes", rows)
}

// RenderTypes lists error types one per line under a header.
func RenderTypes(types []store.ErrorType) string {
	rows := make([]string, len(types))
	for i, t := range types {
		rows[i] = catalogIDStyle.Render(fmt.Sprint(t.ID)) + ValueStyle.Render(t.Description)
	}
	return renderCatalog("Error types", rows)
}

func renderCatalog(title string, rows []string) string {
	var b strings.Builder
	b.WriteString(catalogHeaderStyle.Render(fmt.Sprintf("%s (%d)", title, len(rows))))
	b.WriteString("\n")
	if len(rows) == 0 {
		b.WriteString(MutedStyle.Render("  (empty)"))
		b.WriteString("\n")
	}
	for _, row := range rows {
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}
