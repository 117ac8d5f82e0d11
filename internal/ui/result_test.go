package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/muurk/hwgrade/internal/store"
)

func TestResultRender(t *testing.T) {
	saved := NewSuccessResult("homework 7", nil).
		AddDetail("rows", "5").
		AddDetail("database", "grades.db").
		SetWidth(80).
		Render()
	assert.Contains(t, saved, SuccessMarker)
	assert.Contains(t, saved, "SAVED")
	assert.Less(t, strings.Index(saved, "database:"), strings.Index(saved, "rows:"))

	failed := NewFailureResult("homework 7", errors.New("disk full")).Render()
	assert.Contains(t, failed, "FAILED")
	assert.Contains(t, failed, "Error: disk full")

	skipped := NewWarningResult("homework 7", nil).Render()
	assert.Contains(t, skipped, "NOT SAVED")
}

func TestClampWidth(t *testing.T) {
	assert.Equal(t, MinTerminalWidth, clampWidth(0))
	assert.Equal(t, 75, clampWidth(75))
	assert.Equal(t, MaxContentWidth, clampWidth(500))
}

func TestPrinterCatalogs(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out).WithWidth(80)

	p.Classes([]store.Class{{ID: 3, Subject: "Algebra", Code: "MATH101", Professor: "Noether"}})
	p.Types(nil)

	text := out.String()
	assert.Contains(t, text, "Classes (1)")
	assert.Contains(t, text, "Algebra MATH101  Noether")
	assert.Contains(t, text, "Error types (0)")
	assert.Contains(t, text, "(empty)")
}
