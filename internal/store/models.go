package store

import "fmt"

// NonErrorTypeID is the typeid stored for correctly solved problems.
const NonErrorTypeID = 0

// Class is one row of the class catalog joined with its professor.
type Class struct {
	ID          int64
	Subject     string
	Code        string
	Professor   string
	ProfessorID int64
}

// String formats the class the way the class picker shows it.
func (c Class) String() string {
	return fmt.Sprintf("%d %s %s %s (professor %d)", c.ID, c.Subject, c.Code, c.Professor, c.ProfessorID)
}

// ErrorType is one kind of mistake a problem can be marked with.
type ErrorType struct {
	ID          int64
	Description string
}

// String formats the type as "{id} {description}".
func (t ErrorType) String() string {
	return fmt.Sprintf("%d %s", t.ID, t.Description)
}

// Catalogs holds the two lists the grading form searches.
type Catalogs struct {
	Classes []Class
	Types   []ErrorType
}

// Problem is one graded mistake.
type Problem struct {
	Type       ErrorType
	PointsLost float64
}

// Entry is a finished grading session ready to be written.
type Entry struct {
	// ClassID is nil when no class was picked.
	ClassID    *int64
	HomeworkID int64
	NonErrors  int
	Problems   []Problem
}

// Total returns the number of problems the homework had.
func (e Entry) Total() int {
	return e.NonErrors + len(e.Problems)
}
