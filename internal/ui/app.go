package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/faceoff/internal/config"
	"github.com/five82/faceoff/internal/document"
	"github.com/five82/faceoff/internal/nhl"
	"github.com/five82/faceoff/internal/prefs"
	"github.com/five82/faceoff/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    nhl.Fetcher
	Store     *state.Store
	Config    config.Config
	Logger    *zap.Logger
	Prefs     prefs.Prefs
	PrefsPath string
	PollTick  time.Duration
	Location  *time.Location
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    nhl.Fetcher
	store     *state.Store
	config    config.Config
	logger    *zap.Logger
	prefs     prefs.Prefs
	prefsPath string
	pollTick  time.Duration
	location  *time.Location

	// UI state
	keys     keyMap
	theme    Theme
	spinner  spinner.Model
	spinning bool
	width    int
	height   int
	ready    bool

	tabs   []*tab
	active tabID

	// Data state
	snapshot    state.Snapshot
	lastVersion uint64
	day         dayState
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = DefaultUIInterval
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	p := opts.Prefs
	if p.Theme == "" {
		p.Theme = prefs.Defaults().Theme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	m := Model{
		ctx:       ctx,
		client:    opts.Client,
		store:     opts.Store,
		config:    opts.Config,
		logger:    logger,
		prefs:     p,
		prefsPath: prefsPath,
		pollTick:  pollTick,
		location:  loc,
		keys:      DefaultKeyMap(),
		theme:     GetTheme(p.Theme),
		spinner:   spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		tabs:      newTabs(),
		active:    tabByName(p.StartTab),
	}
	m.applyTheme()
	m.syncSnapshot(true)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.pollTick)
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
		h := bodyHeight(m.height)
		for _, t := range m.tabs {
			t.base.SetHeight(h)
			t.stack.SetHeight(h)
		}
		return m, nil

	case tickMsg:
		return m.handleTick()

	case loadedMsg:
		m.handleLoaded(msg)
		return m, nil

	case dayLoadedMsg:
		m.handleDayLoaded(msg)
		return m, nil

	case spinner.TickMsg:
		if !m.loading() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderBody())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	return b.String()
}

// renderBody draws the active document into a buffer the size of the body.
func (m Model) renderBody() string {
	buf := document.NewBuffer(m.width, bodyHeight(m.height))
	m.currentTab().view().Render(buf.Area(), buf)
	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Background)).
		Width(m.width).
		Render(buf.String())
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t := m.currentTab()

	// Global keys
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.toggleHelp()
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Back):
		t.stack.Pop()
		return m, nil

	case key.Matches(msg, m.keys.ViewScores):
		m.active = tabScores
		return m, nil

	case key.Matches(msg, m.keys.ViewStandings):
		m.active = tabStandings
		return m, nil

	case key.Matches(msg, m.keys.ViewLog):
		m.active = tabLog
		m.refreshLog()
		return m, nil

	case key.Matches(msg, m.keys.PrevDay):
		return m, m.withSpinner(m.changeDay(false))

	case key.Matches(msg, m.keys.NextDay):
		return m, m.withSpinner(m.changeDay(true))
	}

	// Keys for the active document
	v := t.view()
	switch {
	case key.Matches(msg, m.keys.NextLink):
		v.FocusNext()
	case key.Matches(msg, m.keys.PrevLink):
		v.FocusPrev()
	case key.Matches(msg, m.keys.Left):
		v.FocusLeft()
	case key.Matches(msg, m.keys.Right):
		v.FocusRight()
	case key.Matches(msg, m.keys.Up):
		v.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		v.ScrollDown(1)
	case key.Matches(msg, m.keys.PageUp):
		v.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		v.PageDown()
	case key.Matches(msg, m.keys.Top):
		v.ScrollToTop()
	case key.Matches(msg, m.keys.Bottom):
		v.ScrollToBottom()
	case key.Matches(msg, m.keys.Activate):
		if target, ok := v.ActivateFocused(); ok {
			return m, m.withSpinner(m.open(target))
		}
	}
	return m, nil
}

// handleTick picks up new poller data and schedules the next tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.syncSnapshot(false)
	if m.active == tabLog {
		m.refreshLog()
	}
	return m, tickCmd(m.pollTick)
}

// syncSnapshot copies the store's snapshot and rebuilds the base documents
// when the data changed since the last sync.
func (m *Model) syncSnapshot(force bool) {
	if m.store == nil {
		m.rebuildBases()
		return
	}
	version := m.store.Version()
	prev := m.snapshot
	m.snapshot = m.store.Snapshot()
	if !force && version == m.lastVersion && prev.ConsecutiveFailures == m.snapshot.ConsecutiveFailures {
		return
	}
	m.lastVersion = version
	m.rebuildBases()
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.applyTheme()
	m.prefs.Theme = m.theme.Name
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.logger.Warn("save preferences failed", zap.String("path", m.prefsPath), zap.Error(err))
	}
}

func (m *Model) applyTheme() {
	styles := m.theme.Documents()
	for _, t := range m.tabs {
		t.base.SetStyles(styles)
		t.stack.SetStyles(styles)
	}
	m.spinner.Style = lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Accent)).
		Background(lipgloss.Color(m.theme.Surface))
}

// loading reports whether any fetch the user is waiting on is in flight.
func (m Model) loading() bool {
	if m.day.loading {
		return true
	}
	for _, t := range m.tabs {
		for _, e := range t.stack.Entries() {
			if e.Loading() {
				return true
			}
		}
	}
	return false
}

// withSpinner starts the spinner alongside cmd unless it is already running.
func (m *Model) withSpinner(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	if m.spinning {
		return cmd
	}
	m.spinning = true
	return tea.Batch(cmd, m.spinner.Tick)
}

// Messages

type tickMsg time.Time

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(opts Options) error {
	m := New(opts)
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		programOpts = append(programOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, programOpts...)
	_, err := p.Run()
	return err
}
