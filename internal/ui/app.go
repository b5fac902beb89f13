package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/monplan/muse/internal/actions"
	"github.com/monplan/muse/internal/config"
	"github.com/monplan/muse/internal/state"
)

// Focus identifies the pane receiving keys.
type Focus int

const (
	FocusSearch Focus = iota
	FocusUnit
)

// Options configures the UI.
type Options struct {
	Context  context.Context
	Actions  *actions.Actions
	Store    *state.Store
	Config   *config.Config
	PollTick time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx      context.Context
	actions  *actions.Actions
	store    *state.Store
	config   *config.Config
	pollTick time.Duration

	// UI state
	theme  Theme
	keys   keyMap
	help   help.Model
	focus  Focus
	width  int
	height int
	ready  bool

	// Data state
	snapshot    state.State
	lastUpdated time.Time
	lastErr     error

	// Search state
	input    textinput.Model
	selected int

	// Unit state
	unitViewport viewport.Model
	showHelp     bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = 250 * time.Millisecond
	}

	input := textinput.New()
	input.Placeholder = "Search by unit code or name"
	input.Prompt = "> "
	input.CharLimit = 64
	input.Focus()

	m := Model{
		ctx:          ctx,
		actions:      opts.Actions,
		store:        opts.Store,
		config:       opts.Config,
		pollTick:     pollTick,
		theme:        defaultTheme,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		focus:        FocusSearch,
		input:        input,
		unitViewport: viewport.New(0, 0),
	}
	if m.store != nil {
		m.snapshot = m.store.Snapshot()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		textinput.Blink,
		tickCmd(m.pollTick),
	}
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
		m.resize()
		m.updateUnitViewport()
		return m, nil

	case tickMsg:
		var cmds []tea.Cmd
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		cmds = append(cmds, tickCmd(m.pollTick))
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.applySnapshot(state.State(msg))
		return m, nil

	case actionDoneMsg:
		m.lastErr = msg.err
		if m.store != nil {
			return m, fetchSnapshotCmd(m.store)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.SwitchFocus):
		m.toggleFocus()
		return m, nil
	}

	if m.focus == FocusUnit {
		return m.handleUnitKey(msg)
	}
	return m.handleSearchKey(msg)
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	results := m.visibleResults()

	switch {
	case key.Matches(msg, m.keys.Open):
		if m.selected < 0 || m.selected >= len(results) {
			return m, nil
		}
		code := results[m.selected].UnitCode
		if m.actions != nil {
			m.actions.HideSearchResults()
		}
		m.setFocus(FocusUnit)
		m.refresh()
		return m, m.openUnitCmd(code)

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(results)-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.Dismiss):
		if m.actions == nil {
			return m, nil
		}
		if len(results) > 0 {
			m.actions.HideSearchResults()
		} else {
			m.input.SetValue("")
			m.actions.PerformSearch("")
		}
		m.refresh()
		return m, nil

	case msg.String() == "ctrl+r":
		return m, m.reloadCmd()

	case msg.String() == "ctrl+b":
		return m, m.backCmd()
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.search(m.input.Value())
	}
	return m, cmd
}

func (m Model) handleUnitKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.ToSearch):
		m.setFocus(FocusSearch)
		return m, nil

	case key.Matches(msg, m.keys.Close), msg.String() == "q":
		if m.actions != nil {
			m.actions.ClearCurrentUnit()
		}
		m.setFocus(FocusSearch)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		return m, m.reloadCmd()

	case key.Matches(msg, m.keys.Back):
		return m, m.backCmd()

	case key.Matches(msg, m.keys.Requisite):
		codes := m.requisiteCodes()
		idx := int(msg.String()[0] - '1')
		if idx < 0 || idx >= len(codes) {
			return m, nil
		}
		return m, m.openUnitCmd(codes[idx])

	case key.Matches(msg, m.keys.ScrollUp):
		m.unitViewport.ScrollUp(1)
		return m, nil

	case key.Matches(msg, m.keys.ScrollDown):
		m.unitViewport.ScrollDown(1)
		return m, nil
	}

	var cmd tea.Cmd
	m.unitViewport, cmd = m.unitViewport.Update(msg)
	return m, cmd
}

// search runs the query and reveals results that an earlier selection hid.
func (m *Model) search(query string) {
	if m.actions == nil {
		return
	}
	m.actions.PerformSearch(query)
	m.actions.RevealSearchResultsIfNeeded()
	m.selected = 0
	m.refresh()
}

func (m *Model) toggleFocus() {
	if m.focus == FocusSearch {
		m.setFocus(FocusUnit)
		return
	}
	m.setFocus(FocusSearch)
}

func (m *Model) setFocus(f Focus) {
	m.focus = f
	if f == FocusSearch {
		m.input.Focus()
		return
	}
	m.input.Blur()
}

// refresh pulls a fresh snapshot synchronously after a local dispatch.
func (m *Model) refresh() {
	if m.store == nil {
		return
	}
	m.applySnapshot(m.store.Snapshot())
}

func (m *Model) applySnapshot(s state.State) {
	m.snapshot = s
	m.lastUpdated = time.Now()
	if n := len(m.visibleResults()); m.selected >= n {
		m.selected = max(n-1, 0)
	}
	m.updateUnitViewport()
}

// visibleResults returns the results the search pane should list.
func (m Model) visibleResults() []state.SearchResult {
	if m.snapshot.Search.AreResultsHidden {
		return nil
	}
	return m.snapshot.Search.Results
}

func (m Model) requisiteCodes() []string {
	view := m.snapshot.CurrentUnit()
	if view.Detail == nil {
		return nil
	}
	return view.Detail.RequisiteCodes()
}

// Messages

type tickMsg time.Time

type snapshotMsg state.State

type actionDoneMsg struct {
	err error
}

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

func (m Model) openUnitCmd(code string) tea.Cmd {
	acts, ctx := m.actions, m.ctx
	if acts == nil {
		return nil
	}
	return func() tea.Msg {
		return actionDoneMsg{err: acts.OpenUnit(ctx, code)}
	}
}

// reloadCmd refetches the open unit. Nothing happens when no unit is open.
func (m Model) reloadCmd() tea.Cmd {
	acts, ctx := m.actions, m.ctx
	if acts == nil || m.snapshot.Navigator.CurrentUnitCode == "" {
		return nil
	}
	return func() tea.Msg {
		return actionDoneMsg{err: acts.ReloadCurrentUnit(ctx)}
	}
}

func (m Model) backCmd() tea.Cmd {
	acts, ctx := m.actions, m.ctx
	if acts == nil {
		return nil
	}
	return func() tea.Msg {
		return actionDoneMsg{err: acts.GoBack(ctx)}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		programOpts = append(programOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, programOpts...)
	_, err := p.Run()
	return exitError(opts.Context, err)
}

// exitError drops the kill error Bubble Tea reports when ctx was cancelled,
// since that is an ordinary shutdown.
func exitError(ctx context.Context, err error) error {
	if ctx != nil && ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
