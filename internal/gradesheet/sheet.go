// Package gradesheet lays out the homework grading form and turns the
// committed choices into a store.Entry.
package gradesheet

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/muurk/hwgrade/internal/config"
	"github.com/muurk/hwgrade/internal/form"
	"github.com/muurk/hwgrade/internal/store"
)

// Header row positions.
const (
	classColumn     = 0
	newTypeColumn   = 50
	nonErrorsColumn = 80
)

// MaxNonErrors is the largest correct-problem count an entry accepts.
// Each one becomes a database row.
const MaxNonErrors = 10000

// ErrTooManyNonErrors is returned by Entry when the non-error count is
// above MaxNonErrors.
var ErrTooManyNonErrors = errors.New("gradesheet: too many non-errors")

// Sheet is one grading session: the class picker, the new-type box,
// the non-error counter and a block of error entries.
type Sheet struct {
	grid   *form.Grid
	focus  *form.FocusManager
	logger *zap.Logger

	class     *form.SearchField[store.Class]
	newType   *form.TextField
	nonErrors *form.NumberField
	errors    []*form.ErrorEntry[store.ErrorType]
}

// Options configures a new Sheet.
type Options struct {
	Layout   config.Layout
	Catalogs store.Catalogs
	// CreateType is called when the user submits a new error type.
	CreateType form.CreateFunc
	Logger     *zap.Logger
}

// GridSize returns the width and height of the grid for layout.
func GridSize(layout config.Layout) (width, height int) {
	return max(3, 2*layout.ErrorColumns), 1 + layout.ErrorRows
}

// New draws the whole form on s and focuses the class picker.
func New(s form.Surface, opts Options) (*Sheet, error) {
	if err := opts.Layout.Validate(); err != nil {
		return nil, err
	}
	if opts.CreateType == nil {
		return nil, errors.New("gradesheet: CreateType is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	width, height := GridSize(opts.Layout)
	sh := &Sheet{
		grid:   form.NewGrid(width, height),
		logger: logger,
	}

	sh.class = form.NewSearchField(s, "Class", 0, classColumn, opts.Catalogs.Classes, store.Class.String)
	sh.newType = form.NewTextField(s, 0, newTypeColumn, opts.CreateType)
	sh.nonErrors = form.NewNumberField(s, "Non-Errors", 0, nonErrorsColumn)

	place := func(col, row int, f form.Field) error {
		if err := sh.grid.Place(col, row, f); err != nil {
			return fmt.Errorf("gradesheet: %w", err)
		}
		return nil
	}
	if err := place(0, 0, sh.class); err != nil {
		return nil, err
	}
	if err := place(1, 0, sh.newType); err != nil {
		return nil, err
	}
	if err := place(2, 0, sh.nonErrors); err != nil {
		return nil, err
	}

	for row := 1; row <= opts.Layout.ErrorRows; row++ {
		for c := 0; c < opts.Layout.ErrorColumns; c++ {
			entry := form.NewErrorEntry(row*opts.Layout.RowSpacing, c*opts.Layout.ColumnSpacing,
				opts.Catalogs.Types, store.ErrorType.String)
			typeField, points := entry.Deploy(s)
			if err := place(2*c, row, typeField); err != nil {
				return nil, err
			}
			if err := place(2*c+1, row, points); err != nil {
				return nil, err
			}
			sh.errors = append(sh.errors, entry)
		}
	}

	focus, err := form.NewFocusManager(sh.grid)
	if err != nil {
		return nil, fmt.Errorf("gradesheet: %w", err)
	}
	sh.focus = focus
	s.Refresh()

	logger.Debug("sheet drawn",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("error_entries", len(sh.errors)),
	)
	return sh, nil
}

// HandleKey routes one key through the focus manager.
func (sh *Sheet) HandleKey(k form.Key) error {
	return sh.focus.HandleKey(k)
}

// Finish commits the focused field. Call it once before reading the
// entry.
func (sh *Sheet) Finish() error {
	return sh.focus.SelectCurrent()
}

// Position returns the focused grid cell.
func (sh *Sheet) Position() (col, row int) {
	return sh.focus.Position()
}

// Reload rebinds the class picker and every error type picker to
// fresh catalogs.
func (sh *Sheet) Reload(cat store.Catalogs) {
	sh.class.Rebind(cat.Classes)
	for _, e := range sh.errors {
		e.Rebind(cat.Types)
	}
	sh.logger.Debug("catalogs rebound",
		zap.Int("classes", len(cat.Classes)),
		zap.Int("types", len(cat.Types)),
	)
}

// Class returns the committed class, resolved against the current
// class catalog.
func (sh *Sheet) Class() (store.Class, bool) {
	return sh.class.Chosen()
}

// Entry collects the committed choices. Error entries missing either
// the type or the points lost are dropped.
func (sh *Sheet) Entry(homeworkID int64) (store.Entry, error) {
	entry := store.Entry{HomeworkID: homeworkID}

	if class, ok := sh.class.Chosen(); ok {
		id := class.ID
		entry.ClassID = &id
	}

	if n, ok := sh.nonErrors.Choice().Get(); ok {
		if math.IsNaN(n) || n < 0 || n > MaxNonErrors {
			return store.Entry{}, fmt.Errorf("%w: %v (limit %d)", ErrTooManyNonErrors, n, MaxNonErrors)
		}
		entry.NonErrors = int(n)
	}

	for i, e := range sh.errors {
		choices, err := e.Choices()
		if err != nil {
			return store.Entry{}, fmt.Errorf("gradesheet: error entry %d: %w", i, err)
		}
		if !choices.Complete() {
			if choices.Type.Present() || choices.PointsLost.Present() {
				sh.logger.Warn("dropping incomplete error entry",
					zap.Int("entry", i),
					zap.Stringer("type", choices.Type),
					zap.Stringer("points_lost", choices.PointsLost),
				)
			}
			continue
		}
		typ, ok := e.Type()
		if !ok {
			sh.logger.Warn("dropping error entry with stale type", zap.Int("entry", i))
			continue
		}
		lost, _ := choices.PointsLost.Get()
		entry.Problems = append(entry.Problems, store.Problem{Type: typ, PointsLost: lost})
	}

	return entry, nil
}
