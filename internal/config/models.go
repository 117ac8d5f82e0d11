package config

import (
	"fmt"

	"github.com/muurk/hwgrade/internal/form"
)

// Smallest spacings that keep neighbouring error entries apart: a
// search field uses its label and input lines plus the candidate list.
const (
	MinRowSpacing    = 2 + form.MaxVisibleRows
	MinColumnSpacing = form.MinEntryWidth + 1
)

// CurrentVersion is the settings file format version.
const CurrentVersion = 1

// Settings is the content of the settings file.
type Settings struct {
	Version int `yaml:"version"`

	// Database is the SQLite file graded homework is written to.
	Database string `yaml:"database,omitempty"`

	// LogLevel is one of debug, info, warn, error. Empty means silent.
	LogLevel string `yaml:"log_level,omitempty"`

	// LogFile receives the session journal after the form closes.
	// Empty means stderr.
	LogFile string `yaml:"log_file,omitempty"`

	// WatchDatabase reloads the catalogs whenever the database file
	// changes on disk.
	WatchDatabase bool `yaml:"watch_database"`

	Layout Layout `yaml:"layout"`
}

// Layout describes the block of error entries below the header row.
type Layout struct {
	ErrorRows     int `yaml:"error_rows"`
	ErrorColumns  int `yaml:"error_columns"`
	RowSpacing    int `yaml:"row_spacing"`
	ColumnSpacing int `yaml:"column_spacing"`
}

// Defaults returns the settings used when no file exists.
func Defaults() *Settings {
	return &Settings{
		Version:       CurrentVersion,
		WatchDatabase: true,
		Layout:        DefaultLayout(),
	}
}

// DefaultLayout is four rows of two error entries each.
func DefaultLayout() Layout {
	return Layout{
		ErrorRows:     4,
		ErrorColumns:  2,
		RowSpacing:    9,
		ColumnSpacing: 50,
	}
}

// Validate checks that the layout can hold at least one entry and that
// entries do not overlap.
func (l Layout) Validate() error {
	if l.ErrorRows < 1 || l.ErrorColumns < 1 {
		return fmt.Errorf("layout needs at least one error row and column, got %dx%d", l.ErrorRows, l.ErrorColumns)
	}
	if l.RowSpacing < MinRowSpacing {
		return fmt.Errorf("row_spacing must be at least %d, got %d", MinRowSpacing, l.RowSpacing)
	}
	if l.ColumnSpacing < MinColumnSpacing {
		return fmt.Errorf("column_spacing must be at least %d, got %d", MinColumnSpacing, l.ColumnSpacing)
	}
	return nil
}

// fillDefaults replaces zero layout values with the defaults.
func (s *Settings) fillDefaults() {
	def := DefaultLayout()
	if s.Layout.ErrorRows == 0 {
		s.Layout.ErrorRows = def.ErrorRows
	}
	if s.Layout.ErrorColumns == 0 {
		s.Layout.ErrorColumns = def.ErrorColumns
	}
	if s.Layout.RowSpacing == 0 {
		s.Layout.RowSpacing = def.RowSpacing
	}
	if s.Layout.ColumnSpacing == 0 {
		s.Layout.ColumnSpacing = def.ColumnSpacing
	}
}
