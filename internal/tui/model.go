// Package tui provides the terminal user interface for dulcinea.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/dulcinea/internal/board"
	"github.com/javiermolinar/dulcinea/internal/config"
	"github.com/javiermolinar/dulcinea/internal/db"
	"github.com/javiermolinar/dulcinea/internal/filter"
	"github.com/javiermolinar/dulcinea/internal/task"
	"github.com/javiermolinar/dulcinea/internal/tui/commands"
	"github.com/javiermolinar/dulcinea/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch      // typing into the search prompt
	ModeModal
)

// ModalType identifies the type of modal.
type ModalType int

const (
	ModalNone          ModalType = iota
	ModalTaskForm                // New task on the committed selection
	ModalConfirmDelete           // Delete the focused task
	ModalInit                    // Create missing config and database
)

// withinWeeksSteps is the cycle of time windows bound to the w key.
var withinWeeksSteps = []int{0, 1, 2, 4, 8}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo      task.Repository
	config    *config.Config
	clipboard commands.Clipboard
	clock     func() time.Time

	// Theme and styles
	theme   *theme.Theme
	styles  *Styles
	overlay OverlayModel

	// Engine
	board   *board.Board
	capture *mouseCapture

	// State
	mode      Mode
	loading   bool
	focusID   int64      // last task pressed; target of delete
	dragStart task.Range // range of the task when a move or resize began

	// Modal state
	modalType    ModalType
	formTitle    textinput.Model
	formCategory task.Category
	deleteID     int64
	initState    InitState
	initError    string

	// Filter controls; a search query can override both
	search      textinput.Model
	categories  filter.CategorySet
	withinWeeks int

	// Terminal dimensions and grid geometry
	width    int
	height   int
	geom     gridGeometry
	maxSlots int // configured lane cap, 0 = as many as fit

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message

	// Error state
	err error
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithInitState sets the startup initialization state.
func WithInitState(state InitState) ModelOption {
	return func(m *Model) {
		m.initState = state
		if state.NeedsInit {
			m.mode = ModeModal
			m.modalType = ModalInit
		}
	}
}

// WithClock replaces the wall clock used for "today" and the time filter.
func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.clock = now
	}
}

// WithClipboard replaces the system clipboard.
func WithClipboard(c commands.Clipboard) ModelOption {
	return func(m *Model) {
		m.clipboard = c
	}
}

// New creates a new TUI model.
func New(repo task.Repository, cfg *config.Config, opts ...ModelOption) *Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	formTitle := textinput.New()
	formTitle.Placeholder = "Task title"
	formTitle.CharLimit = 256
	formTitle.Width = 40
	formTitle.PlaceholderStyle = styles.ModalPlaceholderStyle
	formTitle.TextStyle = styles.ModalInputTextStyle
	formTitle.PromptStyle = styles.ModalInputTextStyle
	formTitle.Cursor.Style = styles.ModalInputCursorStyle
	formTitle.Cursor.TextStyle = styles.ModalInputTextStyle

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search titles"
	search.CharLimit = 64
	search.PromptStyle = styles.PromptStyle
	search.TextStyle = styles.PromptStyle
	search.PlaceholderStyle = styles.PromptStyle.Foreground(styles.Palette().FgMuted)

	m := &Model{
		repo:         repo,
		config:       cfg,
		clipboard:    commands.SystemClipboard,
		clock:        time.Now,
		theme:        t,
		styles:       styles,
		overlay:      NewOverlayModel(styles.ModalBgColor),
		capture:      &mouseCapture{},
		mode:         ModeNormal,
		loading:      true,
		formTitle:    formTitle,
		formCategory: cfg.Category(),
		search:       search,
		categories:   filter.AllCategories(),
		withinWeeks:  cfg.Filter.WithinWeeks,
		maxSlots:     cfg.Calendar.MaxSlots,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.board = board.New(nil, board.Options{
		WeekStart: cfg.WeekStartDay(),
		MaxSlots:  cfg.Calendar.MaxSlots,
		Now:       m.clock,
		Capture:   m.capture,
	})
	m.applyFilter()

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.initState.NeedsInit {
		return nil
	}
	return commands.LoadTasks(m.repo)
}

// RunOptions configures a TUI session.
type RunOptions struct {
	Debug  bool // write the JSON-lines debug log
	Memory bool // run without a database
}

// Run starts the TUI.
func Run(repo task.Repository, cfg *config.Config) error {
	return RunWithOptions(repo, cfg, RunOptions{})
}

// RunWithOptions starts the TUI. With a nil repository the database from
// the configuration is opened, after asking to create it when missing,
// unless opts.Memory is set.
func RunWithOptions(repo task.Repository, cfg *config.Config, opts RunOptions) error {
	if err := InitDebugLogger(opts.Debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	initialRepo := repo
	var initState InitState

	if repo == nil && !opts.Memory {
		state, err := DetectInitState(cfg, config.DefaultConfigPath())
		if err != nil {
			return err
		}
		initState = state
		if !state.NeedsInit {
			opened, err := db.Open(state.DBPath)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			repo = opened
		}
	}

	model := New(repo, cfg, WithInitState(initState))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	finalModel, err := p.Run()
	if initialRepo == nil {
		var opened task.Repository
		switch fm := finalModel.(type) {
		case Model:
			opened = fm.repo
		case *Model:
			opened = fm.repo
		}
		if opened != nil {
			_ = opened.Close()
		}
	}
	return err
}

func (m *Model) setStatus(msg string, d time.Duration) tea.Cmd {
	m.statusMsg = msg
	m.statusTime = time.Now().Add(d)
	return tea.Tick(d, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}
