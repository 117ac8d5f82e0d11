// Package logging provides structured logging for hwgrade.
//
// This package wraps the zap logger. While the grading form is on
// screen the terminal belongs to Bubble Tea, so log output cannot go to
// stdout or stderr. Instead every entry is appended to a [Journal], an
// in-memory sink owned by the command that started the session. The
// command flushes the journal once the terminal has been released.
//
// # Log Levels
//
// The package supports the standard zap levels:
//   - Debug: key routing, catalog reloads, database open/close
//   - Info: records created, homework saved
//   - Warn: watcher errors, dropped incomplete entries
//   - Error: fatal session errors
//
// # Configuration
//
// The level comes from the --log-level flag, the settings file or the
// HWGRADE_LOG_LEVEL environment variable, in that order. When none is
// set logging is silent.
//
//	journal := logging.NewJournal()
//	logger, err := logging.New(level, journal)
//	if err != nil {
//	    return err
//	}
//	defer journal.Flush(os.Stderr)
//
// # Thread Safety
//
// Journal is safe for concurrent use; the file watcher logs from its
// own goroutine.
package logging
