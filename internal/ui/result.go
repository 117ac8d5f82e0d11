package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ResultType indicates how an operation ended.
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
	ResultWarning
)

// Result is a bordered outcome box, such as "homework saved".
type Result struct {
	Type    ResultType
	Title   string
	Details map[string]string
	Error   error
	Width   int
}

// NewSuccessResult creates a success result box.
func NewSuccessResult(title string, details map[string]string) *Result {
	return &Result{Type: ResultSuccess, Title: title, Details: details}
}

// NewFailureResult creates a failure result box.
func NewFailureResult(title string, err error) *Result {
	return &Result{Type: ResultFailure, Title: title, Error: err}
}

// NewWarningResult creates a warning result box.
func NewWarningResult(title string, details map[string]string) *Result {
	return &Result{Type: ResultWarning, Title: title, Details: details}
}

// SetWidth sets the rendering width.
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// AddDetail adds a detail key-value pair.
func (r *Result) AddDetail(key, value string) *Result {
	if r.Details == nil {
		r.Details = make(map[string]string)
	}
	r.Details[key] = value
	return r
}

// Render returns the styled result box.
func (r *Result) Render() string {
	var marker, label string
	var color lipgloss.Color
	switch r.Type {
	case ResultFailure:
		marker, label, color = FailureMarker, "FAILED", ErrorColor
	case ResultWarning:
		marker, label, color = WarningMarker, "NOT SAVED", WarningColor
	default:
		marker, label, color = SuccessMarker, "SAVED", SuccessColor
	}

	title := lipgloss.NewStyle().Foreground(color).Bold(true).
		Render(fmt.Sprintf("%s  %s  %s", marker, label, r.Title))
	lines := []string{"", title, ""}

	if r.Error != nil {
		lines = append(lines, lipgloss.NewStyle().Foreground(ErrorColor).Render("Error: "+r.Error.Error()), "")
	}

	if len(r.Details) > 0 {
		// Map order is random; keep the box stable between runs.
		keys := make([]string, 0, len(r.Details))
		for k := range r.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			lines = append(lines, KeyStyle.Render(k+":")+ValueStyle.Render(r.Details[k]))
		}
		lines = append(lines, "")
	}

	return boxStyle(clampWidth(r.Width), color).
		Border(lipgloss.DoubleBorder()).
		Render(strings.Join(lines, "\n"))
}
