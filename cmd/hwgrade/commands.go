package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/muurk/hwgrade/internal/config"
	"github.com/muurk/hwgrade/internal/store"
	"github.com/muurk/hwgrade/internal/ui"
)

// Command flags
var (
	classCode      string
	classProfessor int64
)

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(classesCmd)
	rootCmd.AddCommand(professorsCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(configCmd)

	classesCmd.AddCommand(classesAddCmd)
	classesAddCmd.Flags().StringVar(&classCode, "code", "", "Course code, e.g. \"MATH 210\"")
	classesAddCmd.Flags().Int64Var(&classProfessor, "professor", 0, "Professor id (see 'hwgrade professors add')")
	_ = classesAddCmd.MarkFlagRequired("code")
	_ = classesAddCmd.MarkFlagRequired("professor")

	professorsCmd.AddCommand(professorsAddCmd)
	typesCmd.AddCommand(typesAddCmd)

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

// withStore opens the database named by the settings or --database.
func withStore(cmd *cobra.Command, fn func(st *store.Store) error) error {
	dbPath, err := resolveDatabase(nil)
	if err != nil {
		return err
	}
	st, err := openStore(cmd.Context(), dbPath)
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(st)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database tables",
	Long: `Create the professors, classes, types and problems tables in the
database if they do not exist yet. Existing data is left alone.`,
	Example: `  hwgrade init --database grades.db`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(st *store.Store) error {
			fmt.Printf("Database ready: %s\n", st.Path())
			return nil
		})
	},
}

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "List classes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(st *store.Store) error {
			cat, err := st.LoadCatalogs(cmd.Context())
			if err != nil {
				return err
			}
			ui.NewPrinter(os.Stdout).Classes(cat.Classes)
			return nil
		})
	},
}

var classesAddCmd = &cobra.Command{
	Use:     "add <subject>",
	Short:   "Add a class",
	Example: `  hwgrade classes add Algebra --code "MATH 210" --professor 1`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(st *store.Store) error {
			id, err := st.AddClass(cmd.Context(), args[0], classCode, classProfessor)
			if err != nil {
				return err
			}
			fmt.Printf("Added class %d: %s %s\n", id, args[0], classCode)
			return nil
		})
	},
}

var professorsCmd = &cobra.Command{
	Use:   "professors",
	Short: "Manage professors",
}

var professorsAddCmd = &cobra.Command{
	Use:     "add <name>",
	Short:   "Add a professor",
	Example: `  hwgrade professors add Noether`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(st *store.Store) error {
			id, err := st.AddProfessor(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Added professor %d: %s\n", id, args[0])
			return nil
		})
	},
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List error types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(st *store.Store) error {
			cat, err := st.LoadCatalogs(cmd.Context())
			if err != nil {
				return err
			}
			ui.NewPrinter(os.Stdout).Types(cat.Types)
			return nil
		})
	},
}

var typesAddCmd = &cobra.Command{
	Use:     "add <description>",
	Short:   "Add an error type",
	Example: `  hwgrade types add "sign error"`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(st *store.Store) error {
			t, err := st.CreateType(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Added error type %s\n", t)
			return nil
		})
	},
}

var showCmd = &cobra.Command{
	Use:     "show <homework-id>",
	Short:   "Show a saved homework entry",
	Example: `  hwgrade show 12`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid homework id %q: %w", args[0], err)
		}
		return withStore(cmd, func(st *store.Store) error {
			entry, err := st.Homework(cmd.Context(), id)
			if err != nil {
				return err
			}
			if entry.Total() == 0 {
				return fmt.Errorf("homework %d not found", id)
			}
			cat, err := st.LoadCatalogs(cmd.Context())
			if err != nil {
				return err
			}
			ui.NewPrinter(os.Stdout).Summary(ui.Summary{
				Entry: entry,
				Class: ui.ClassLabel(cat.Classes, entry.ClassID),
			})
			return nil
		})
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the settings file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with default values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.CreateDefaultConfig(configPath)
		if err != nil {
			return err
		}
		fmt.Printf("Settings written to %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(settings)
		if err != nil {
			return fmt.Errorf("failed to marshal settings: %w", err)
		}
		fmt.Print(string(data))
		return nil
	},
}
