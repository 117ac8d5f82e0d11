package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/muurk/hwgrade/internal/store"
)

func sampleSummary() Summary {
	classID := int64(2)
	return Summary{
		Entry: store.Entry{
			ClassID:    &classID,
			HomeworkID: 7,
			NonErrors:  3,
			Problems: []store.Problem{
				{Type: store.ErrorType{ID: 1, Description: "sign error"}, PointsLost: 2},
				{Type: store.ErrorType{ID: 4, Description: "units"}, PointsLost: 0.5},
			},
		},
		Class: "2 Calculus MATH201 Noether (professor 1)",
		Width: 80,
	}
}

func TestSummaryScore(t *testing.T) {
	assert.Equal(t, "you got 3 right out of 5", sampleSummary().Score())
	assert.Equal(t, "you got 0 right out of 0", Summary{}.Score())
}

func TestSummaryRender(t *testing.T) {
	out := sampleSummary().Render()

	assert.Contains(t, out, "HOMEWORK 7")
	assert.Contains(t, out, "class:")
	assert.Contains(t, out, "Calculus MATH201")
	assert.Contains(t, out, "homework:")
	assert.Contains(t, out, "you got 3 right out of 5")
	assert.Contains(t, out, "1 sign error  -2")
	assert.Contains(t, out, "4 units  -0.5")
}

func TestSummaryRenderEmpty(t *testing.T) {
	out := Summary{Entry: store.Entry{HomeworkID: 0}}.Render()

	assert.Contains(t, out, "none")
	assert.Contains(t, out, "(none)")
	assert.Contains(t, out, "you got 0 right out of 0")
}

func TestClassLabel(t *testing.T) {
	classes := []store.Class{
		{ID: 1, Subject: "Algebra", Code: "MATH101", Professor: "Noether", ProfessorID: 1},
	}
	id := int64(1)
	missing := int64(9)

	assert.Equal(t, "", ClassLabel(classes, nil))
	assert.Equal(t, "1 Algebra MATH101 Noether (professor 1)", ClassLabel(classes, &id))
	assert.Equal(t, "9 (unknown class)", ClassLabel(classes, &missing))
}
