// Package store keeps hwgrade's catalogs and graded problems in SQLite.
//
// It wraps a single zombiezen.com/go/sqlite connection. The grading
// form is single-threaded, so there is no pool: the connection is used
// from one goroutine at a time and a Store must not be shared across
// goroutines.
//
// # Schema
//
//	professors(professorid, name)
//	classes(classid, class, code, professorid)
//	types(typeid, description)
//	problems(classid, homeworkid, typeid, lost)
//
// A problem row with typeid 0 and a NULL lost column records one
// correctly solved problem.
package store
