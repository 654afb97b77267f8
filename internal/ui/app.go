package ui

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/logdeck/internal/logbuf"
	"github.com/five82/logdeck/internal/prefs"
	"github.com/five82/logdeck/internal/state"
	"github.com/five82/logdeck/internal/vstack"
)

// Options configures the UI.
type Options struct {
	Store       *state.Store
	Source      string
	ThemeName   string
	PrefsPath   string
	Follow      bool
	RowHeight   float64
	BufferLimit int
	Observer    vstack.Observer
	Logger      *slog.Logger
	RefreshTick time.Duration
}

// LinesMsg delivers raw log lines from the follower or poller. Reset
// replaces the buffer contents instead of appending.
type LinesMsg struct {
	Lines []string
	Reset bool
}

// Model is the root application state for Bubble Tea.
type Model struct {
	store       *state.Store
	logger      *slog.Logger
	prefsPath   string
	refreshTick time.Duration
	source      string

	theme  Theme
	keys   keyMap
	help   help.Model
	width  int
	height int
	ready  bool

	snapshot state.Snapshot
	showHelp bool

	log *logView
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	tick := opts.RefreshTick
	if tick <= 0 {
		tick = time.Second
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	limit := opts.BufferLimit
	if limit <= 0 {
		limit = logbuf.DefaultLimit
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	theme := GetTheme(opts.ThemeName)

	return Model{
		store:       opts.Store,
		logger:      logger,
		prefsPath:   prefsPath,
		refreshTick: tick,
		source:      opts.Source,
		theme:       theme,
		keys:        DefaultKeyMap(),
		help:        newHelp(theme),
		log:         newLogView(limit, opts.RowHeight, opts.Follow, opts.Observer, logger),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.refreshTick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.log.resize(m.width, m.paneHeight())
		m.log.input.Width = max(10, m.width-4)
		return m, nil

	case LinesMsg:
		m.log.apply(msg)
		return m, nil

	case tickMsg:
		var cmds []tea.Cmd
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		cmds = append(cmds, tickCmd(m.refreshTick))
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		return m, nil
	}

	if m.log.searching {
		var cmd tea.Cmd
		m.log.input, cmd = m.log.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// paneHeight is the terminal height minus the header and status bars.
func (m Model) paneHeight() int {
	return max(0, m.height-2)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	bg := NewBgStyle(m.theme.FocusBg)
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	if pane := m.log.render(styles, bg); pane != "" {
		b.WriteString(pane)
		b.WriteString("\n")
	}
	b.WriteString(m.renderStatus())
	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	if m.log.searching {
		return m.handleSearchInput(msg)
	}

	v := m.log
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.help = newHelp(m.theme)
		m.savePrefs()

	case key.Matches(msg, m.keys.ToggleFollow):
		v.toggleFollow()
		m.savePrefs()

	case key.Matches(msg, m.keys.Search):
		v.startSearch()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.NextMatch):
		v.stepMatch(1)

	case key.Matches(msg, m.keys.PrevMatch):
		v.stepMatch(-1)

	case key.Matches(msg, m.keys.Escape):
		v.clearSearch()

	case key.Matches(msg, m.keys.Down):
		v.scrollRows(1)

	case key.Matches(msg, m.keys.Up):
		v.scrollRows(-1)

	case key.Matches(msg, m.keys.Top):
		v.gotoTop()

	case key.Matches(msg, m.keys.Bottom):
		v.gotoBottom()

	case key.Matches(msg, m.keys.HalfPageDown):
		v.scrollLines(v.pageRows() / 2)

	case key.Matches(msg, m.keys.HalfPageUp):
		v.scrollLines(-v.pageRows() / 2)

	case key.Matches(msg, m.keys.PageDown):
		v.scrollLines(v.pageRows())

	case key.Matches(msg, m.keys.PageUp):
		v.scrollLines(-v.pageRows())

	case key.Matches(msg, m.keys.PanLeft):
		v.pan(-panStep)

	case key.Matches(msg, m.keys.PanRight):
		v.pan(panStep)
	}
	return m, nil
}

// handleSearchInput handles keyboard input while the search prompt is open.
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.log.submitSearch()
		return m, nil
	case key.Matches(msg, m.keys.Escape):
		m.log.cancelSearch()
		return m, nil
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.log.input, cmd = m.log.input.Update(msg)
	return m, cmd
}

func (m Model) savePrefs() {
	p := prefs.Prefs{Theme: m.theme.Name, Follow: m.log.follow}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save prefs", "path", m.prefsPath, "error", err)
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}
