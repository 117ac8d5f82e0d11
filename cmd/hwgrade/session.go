package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/hwgrade/internal/gradesheet"
	"github.com/muurk/hwgrade/internal/store"
	"github.com/muurk/hwgrade/internal/tui"
	"github.com/muurk/hwgrade/internal/ui"
	"github.com/muurk/hwgrade/internal/watcher"
)

// runSession shows the grading form, then summarizes the entry and
// saves it once confirmed.
func runSession(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	dbPath, err := resolveDatabase(args)
	if err != nil {
		return err
	}
	if !ui.IsTerminal() {
		return errors.New("the grading form needs an interactive terminal")
	}

	st, err := openStore(ctx, dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	cat, err := st.LoadCatalogs(ctx)
	if err != nil {
		return err
	}

	canvas := tui.NewCanvas()
	sheet, err := gradesheet.New(canvas, gradesheet.Options{
		Layout:   settings.Layout,
		Catalogs: cat,
		CreateType: func(description string) error {
			_, err := st.CreateType(ctx, description)
			return err
		},
		Logger: logger.Named("sheet"),
	})
	if err != nil {
		return err
	}

	w := startWatcher(dbPath)
	if w != nil {
		defer w.Close()
	}

	model, err := tui.New(ctx, tui.Options{
		Canvas:  canvas,
		Sheet:   sheet,
		Source:  st,
		Watcher: w,
		Logger:  logger.Named("tui"),
	})
	if err != nil {
		return err
	}
	if err := tui.Run(ctx, model); err != nil {
		return err
	}

	return confirmAndSave(ctx, st, sheet)
}

// startWatcher watches the database when enabled. A watcher that cannot
// start only costs automatic reloads.
func startWatcher(dbPath string) *watcher.Watcher {
	if !settings.WatchDatabase {
		return nil
	}
	w, err := watcher.New(dbPath)
	if err != nil {
		logger.Warn("database watcher unavailable", zap.Error(err))
		return nil
	}
	w.Start()
	return w
}

func confirmAndSave(ctx context.Context, st *store.Store, sheet *gradesheet.Sheet) error {
	id, err := st.NextHomeworkID(ctx)
	if err != nil {
		return err
	}
	entry, err := sheet.Entry(id)
	if err != nil {
		return err
	}

	summary := ui.Summary{Entry: entry, Width: ui.GetTerminalWidth()}
	if class, ok := sheet.Class(); ok {
		summary.Class = class.String()
	}

	printer := ui.NewPrinter(os.Stdout)
	confirmed, err := ui.ConfirmEntry(os.Stdout, os.Stdin, summary)
	if err != nil {
		return err
	}
	title := fmt.Sprintf("homework %d", entry.HomeworkID)
	if !confirmed {
		logger.Info("entry discarded", zap.Int64("homeworkid", entry.HomeworkID))
		printer.Result(ui.NewWarningResult(title, nil))
		return nil
	}

	if err := st.SaveEntry(ctx, entry); err != nil {
		printer.Result(ui.NewFailureResult(title, err))
		return err
	}
	printer.Result(ui.NewSuccessResult(title, map[string]string{
		"database": st.Path(),
		"rows":     strconv.Itoa(entry.Total()),
	}))
	return nil
}

// openStore opens the database and creates any missing tables.
func openStore(ctx context.Context, dbPath string) (*store.Store, error) {
	st, err := store.Open(store.Config{Path: dbPath, Logger: logger.Named("store")})
	if err != nil {
		return nil, err
	}
	if err := st.Init(ctx); err != nil {
		st.Close()
		return nil, err
	}
	return st, nil
}
