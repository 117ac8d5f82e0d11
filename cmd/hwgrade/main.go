// Hwgrade records graded homework in a SQLite database.
//
// It draws a keyboard-driven form in the terminal: pick the class, count
// the problems solved correctly and list each mistake with the points it
// cost. When the form closes the entry is summarized and saved once
// confirmed.
//
// Usage:
//
//	hwgrade [database] [flags]
//	hwgrade [command]
//
// Running without a command opens the grading form.
// See 'hwgrade --help' for available commands.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/hwgrade/internal/config"
	"github.com/muurk/hwgrade/internal/logging"
	"github.com/muurk/hwgrade/internal/version"
)

// Global flags
var (
	configPath   string
	databasePath string
	logLevel     string
	noWatch      bool
)

// Per-run state set up in PersistentPreRunE.
var (
	settings *config.Settings
	journal  = logging.NewJournal()
	logger   = zap.NewNop()
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	flushJournal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hwgrade [database]",
	Short: "Keyboard-driven homework grading form",
	Long: `Record graded homework in a SQLite database.

The form has a class picker, a box for creating new error types, a
counter for correctly solved problems and a block of error entries.
Move between fields with H, J, K and L. Press R to reload classes and
error types, and Q to finish. The entry is saved only after you
confirm the summary.

The database comes from the argument, --database, or the settings file,
in that order.`,
	Version:           version.Version,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runSession,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Settings file (default $XDG_CONFIG_HOME/hwgrade/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&databasePath, "database", "d", "", "SQLite database file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default $"+logging.LogLevelEnvVar+")")
	rootCmd.Flags().BoolVar(&noWatch, "no-watch", false, "Do not reload catalogs when the database changes")

	rootCmd.AddCommand(versionCmd)
}

// setup loads the settings file and builds the logger. Flags override
// settings.
func setup(cmd *cobra.Command, args []string) error {
	s, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if databasePath != "" {
		s.Database = databasePath
	}
	if logLevel != "" {
		s.LogLevel = logLevel
	}
	if noWatch {
		s.WatchDatabase = false
	}
	settings = s

	l, err := logging.New(s.LogLevel, journal)
	if err != nil {
		return err
	}
	logger = l
	logger.Debug("settings loaded",
		zap.String("command", cmd.Name()),
		zap.String("database", s.Database),
		zap.Bool("watch", s.WatchDatabase),
	)
	return nil
}

// flushJournal writes the buffered log to the configured log file or to
// stderr. It runs after the terminal has been released.
func flushJournal() {
	_ = logger.Sync()
	if journal.Len() == 0 {
		return
	}

	if settings != nil && settings.LogFile != "" {
		f, err := os.OpenFile(settings.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err == nil {
			defer f.Close()
			if err := journal.Flush(f); err == nil {
				return
			}
		}
		fmt.Fprintf(os.Stderr, "could not write log file %s, writing log here\n", settings.LogFile)
	}
	_ = journal.Flush(os.Stderr)
}

// resolveDatabase picks the database from the positional argument or
// the settings.
func resolveDatabase(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if settings != nil && settings.Database != "" {
		return settings.Database, nil
	}
	return "", fmt.Errorf("no database given: pass one as an argument, use --database, or set database in the settings file")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("hwgrade %s\n", version.Full())
	},
}
