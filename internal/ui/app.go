package ui

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/dex/internal/browse"
	"github.com/five82/dex/internal/catalog"
	"github.com/five82/dex/internal/config"
	"github.com/five82/dex/internal/logging"
	"github.com/five82/dex/internal/modal"
	"github.com/five82/dex/internal/pokeapi"
	"github.com/five82/dex/internal/prefs"
	"github.com/five82/dex/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Fetcher   pokeapi.Fetcher
	Store     *state.Store
	Config    *config.Config
	Logger    *slog.Logger
	ThemeName string
	PrefsPath string
	// Reload restarts the catalog load. The UI only offers it after a failure.
	Reload func()
	// Delays overrides the detail overlay timing; zero uses modal defaults.
	Delays modal.Delays
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	fetcher   pokeapi.Fetcher
	store     *state.Store
	logger    *slog.Logger
	prefsPath string
	reload    func()

	// UI state
	keys   keyMap
	help   help.Model
	theme  Theme
	width  int
	height int
	ready  bool

	// Data state
	snapshot state.Snapshot
	loadedAt time.Time
	browse   *browse.State

	// Search box
	search    textinput.Model
	searching bool

	// Loading indicator
	spinner spinner.Model

	// Detail overlay
	lifecycle *modal.Lifecycle
	scheduler *tickScheduler
	selection uint64
	pending   string

	// Status line
	status    string
	statusErr bool

	// Help overlay
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	pageSize, windowSize := catalog.DefaultPageSize, catalog.DefaultWindowSize
	if opts.Config != nil {
		pageSize, windowSize = opts.Config.PageSize, opts.Config.WindowSize
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search by name"
	search.CharLimit = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	sched := &tickScheduler{}
	lifecycle := modal.New(sched, opts.Delays)
	lifecycle.Observe(func(t modal.Transition) {
		logger.Debug("detail overlay transition",
			"from", t.From.String(),
			"to", t.To.String(),
			"record", t.Record.Name,
		)
	})

	return Model{
		ctx:       ctx,
		fetcher:   opts.Fetcher,
		store:     opts.Store,
		logger:    logger,
		prefsPath: prefsPath,
		reload:    opts.Reload,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		theme:     GetTheme(themeName),
		browse:    browse.New(pageSize, windowSize),
		search:    search,
		spinner:   sp,
		lifecycle: lifecycle,
		scheduler: sched,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		m.spinner.Tick,
		tickCmd(SnapshotInterval),
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
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case tickMsg:
		var cmds []tea.Cmd
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		cmds = append(cmds, tickCmd(SnapshotInterval))
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case detailMsg:
		return m.handleDetail(msg)

	case modalEventMsg:
		m.lifecycle.Fire(modal.Event(msg))
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.lifecycle.IsOpen() {
		return m.renderDetail()
	}

	return m.renderMain()
}

// applySnapshot copies a new load result into the browse state. A failed load
// clears the grid so a partial list is never shown.
func (m *Model) applySnapshot(snap state.Snapshot) {
	prev := m.snapshot.Phase
	m.snapshot = snap

	switch snap.Phase {
	case state.Ready:
		if !snap.LoadedAt.Equal(m.loadedAt) {
			m.browse.SetRecords(snap.Records)
			m.loadedAt = snap.LoadedAt
		}
	case state.Failed:
		if prev != state.Failed {
			m.browse.SetRecords(nil)
			m.loadedAt = snap.LoadedAt
		}
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.lifecycle.IsOpen() {
		return m.handleDetailKey(msg)
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		// Nothing is open; drop any in-flight detail request.
		if m.pending != "" {
			m.selection++
			m.pending = ""
			m.setStatus("", false)
		}
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		return m.handleReload()

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.NextCategory):
		m.browse.CycleCategory(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevCategory):
		m.browse.CycleCategory(-1)
		return m, nil

	case key.Matches(msg, m.keys.AllTypes):
		m.browse.SetCategory(catalog.AllCategories)
		return m, nil
	}

	return m.handleGridKey(msg)
}

// handleGridKey processes navigation and paging keys.
func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.browse.MoveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.browse.MoveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.browse.MoveCursor(-GridColumns)
	case key.Matches(msg, m.keys.Down):
		m.browse.MoveCursor(GridColumns)
	case key.Matches(msg, m.keys.NextPage):
		m.browse.NextPage()
	case key.Matches(msg, m.keys.PrevPage):
		m.browse.PrevPage()
	case key.Matches(msg, m.keys.FirstPage):
		m.browse.FirstPage()
	case key.Matches(msg, m.keys.LastPage):
		m.browse.LastPage()
	case key.Matches(msg, m.keys.JumpPage):
		m.jumpToWindowSlot(msg.String())
	case key.Matches(msg, m.keys.Open):
		return m.openSelected()
	}
	return m, nil
}

// handleSearchKey routes input to the search box while it has focus. The
// filter updates on every keystroke.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.browse.SetSearch(m.search.Value())
	return m, cmd
}

// handleDetailKey processes input while the overlay is shown.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.lifecycle.Close()
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
	}
	return m, nil
}

// jumpToWindowSlot maps digit n to the n-th page button currently shown.
func (m *Model) jumpToWindowSlot(digit string) {
	n, err := strconv.Atoi(digit)
	if err != nil {
		return
	}
	window := m.browse.Window()
	if n < 1 || n > len(window) {
		return
	}
	m.browse.SetPage(window[n-1])
}

// openSelected starts a fresh fetch of the record under the cursor. The
// overlay opens when the response arrives.
func (m Model) openSelected() (tea.Model, tea.Cmd) {
	record, ok := m.browse.Selected()
	if !ok || m.fetcher == nil {
		return m, nil
	}
	m.selection++
	m.pending = record.Name
	m.setStatus("Loading "+displayName(record.Name)+"…", false)
	return m, fetchDetailCmd(m.ctx, m.fetcher, record, m.selection)
}

// handleDetail opens the overlay for the latest selection. Responses for
// superseded selections are dropped; failures leave the overlay closed.
func (m Model) handleDetail(msg detailMsg) (tea.Model, tea.Cmd) {
	if msg.token != m.selection {
		m.logger.Debug("dropping stale detail response", "record", msg.name)
		return m, nil
	}
	m.pending = ""

	if msg.err != nil {
		m.logger.Warn("detail fetch failed", "record", msg.name, "error", msg.err)
		m.setStatus("Could not load "+displayName(msg.name)+": "+msg.err.Error(), true)
		return m, nil
	}

	m.setStatus("", false)
	m.searching = false
	m.search.Blur()
	m.lifecycle.Open(msg.record)
	return m, m.scheduler.drain()
}

func (m Model) handleReload() (tea.Model, tea.Cmd) {
	if m.snapshot.Phase != state.Failed || m.reload == nil {
		return m, nil
	}
	m.reload()
	// Hold off a second reload until the next snapshot reports the outcome.
	m.snapshot.Phase = state.Loading
	m.setStatus("", false)
	var cmd tea.Cmd
	if m.store != nil {
		cmd = fetchSnapshotCmd(m.store)
	}
	return m, cmd
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.logger.Warn("save prefs failed", "error", err)
	}
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = strings.TrimSpace(text)
	m.statusErr = isErr
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type detailMsg struct {
	token  uint64
	name   string
	record catalog.Record
	err    error
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

func fetchDetailCmd(ctx context.Context, fetcher pokeapi.Fetcher, record catalog.Record, token uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, DetailFetchTimeout)
		defer cancel()

		id := record.Name
		if record.ID > 0 {
			id = strconv.Itoa(record.ID)
		}
		fresh, err := fetcher.FetchRecordByID(ctx, id)
		return detailMsg{token: token, name: record.Name, record: fresh, err: err}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		// Shutdown signal, not a failure.
		return nil
	}
	return err
}
