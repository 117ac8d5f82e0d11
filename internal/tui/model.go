package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/hwgrade/internal/form"
	"github.com/muurk/hwgrade/internal/store"
	"github.com/muurk/hwgrade/internal/watcher"
)

// Sheet is the grading form driven by the program.
type Sheet interface {
	HandleKey(k form.Key) error
	Finish() error
	Reload(cat store.Catalogs)
}

// CatalogSource supplies fresh catalogs on reload.
type CatalogSource interface {
	LoadCatalogs(ctx context.Context) (store.Catalogs, error)
}

// Options configures a Model.
type Options struct {
	Canvas *Canvas
	Sheet  Sheet
	Source CatalogSource
	// Watcher triggers a reload on every database change. Nil disables
	// automatic reloads.
	Watcher *watcher.Watcher
	Logger  *zap.Logger
}

// Messages
type watcherEventMsg struct {
	event watcher.Event
}

type watcherErrorMsg struct {
	err error
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555")).Bold(true)
)

// Model is the Bubble Tea model for one grading session.
type Model struct {
	ctx     context.Context
	canvas  *Canvas
	sheet   Sheet
	source  CatalogSource
	watcher *watcher.Watcher
	logger  *zap.Logger

	keys keyMap
	help help.Model

	status   string
	err      error
	finished bool
	width    int
	height   int
}

// New creates the model. ctx bounds every database call made on reload.
func New(ctx context.Context, opts Options) (*Model, error) {
	if opts.Canvas == nil || opts.Sheet == nil || opts.Source == nil {
		return nil, errors.New("tui: Canvas, Sheet and Source are required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Model{
		ctx:     ctx,
		canvas:  opts.Canvas,
		sheet:   opts.Sheet,
		source:  opts.Source,
		watcher: opts.Watcher,
		logger:  logger,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}, nil
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return listenForWatcherEvents(m.watcher)
}

// listenForWatcherEvents waits for the next database change. It yields
// no message once the watcher is closed.
func listenForWatcherEvents(w *watcher.Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-w.Done():
			return nil
		case event := <-w.Events:
			return watcherEventMsg{event: event}
		case err := <-w.Errors:
			return watcherErrorMsg{err: err}
		}
	}
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, m.finish()
		}
		for _, k := range formKeys(msg) {
			switch k {
			case form.KeyQuit:
				return m, m.finish()
			case form.KeyReload:
				if err := m.reload("key"); err != nil {
					return m, m.fail(err)
				}
			default:
				if err := m.sheet.HandleKey(k); err != nil {
					return m, m.fail(err)
				}
			}
		}
		return m, nil

	case watcherEventMsg:
		m.logger.Debug("database changed", zap.String("path", msg.event.Path))
		// The writer that woke us may still hold the database; the next
		// change or an R retries.
		if err := m.reload("watcher"); err != nil {
			m.status = "reload failed: " + err.Error()
		}
		return m, listenForWatcherEvents(m.watcher)

	case watcherErrorMsg:
		m.logger.Warn("database watcher error", zap.Error(msg.err))
		return m, listenForWatcherEvents(m.watcher)
	}
	return m, nil
}

// reload swaps in fresh catalogs. A failed load keeps the old ones.
func (m *Model) reload(trigger string) error {
	cat, err := m.source.LoadCatalogs(m.ctx)
	if err != nil {
		m.logger.Warn("reload failed", zap.String("trigger", trigger), zap.Error(err))
		return fmt.Errorf("reloading catalogs: %w", err)
	}
	m.sheet.Reload(cat)
	m.status = fmt.Sprintf("loaded %d classes, %d error types", len(cat.Classes), len(cat.Types))
	m.logger.Info("catalogs reloaded",
		zap.String("trigger", trigger),
		zap.Int("classes", len(cat.Classes)),
		zap.Int("types", len(cat.Types)),
	)
	return nil
}

// finish commits the focused field and ends the program.
func (m *Model) finish() tea.Cmd {
	if err := m.sheet.Finish(); err != nil {
		return m.fail(err)
	}
	m.finished = true
	return tea.Quit
}

func (m *Model) fail(err error) tea.Cmd {
	m.err = err
	m.logger.Error("grading form failed", zap.Error(err))
	return tea.Quit
}

// View implements tea.Model
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.canvas.Render())
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Finished reports whether the user finished the form with Q.
func (m *Model) Finished() bool {
	return m.finished
}

// Err returns the error that ended the program, if any.
func (m *Model) Err() error {
	return m.err
}

// Run shows the form until the user finishes it or a field fails. It
// returns the field error, if any; the terminal is restored either way.
func Run(ctx context.Context, m *Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return m.err
}
