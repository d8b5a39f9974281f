package ui

import (
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"zoomshell/internal/config"
	"zoomshell/internal/eventbus"
	"zoomshell/internal/navigation"
	"zoomshell/internal/ui/input"
	"zoomshell/internal/ui/input/types"
	"zoomshell/internal/ui/views"
	"zoomshell/internal/viewport"
	"zoomshell/internal/workspace"
)

// Model is the Bubble Tea model for the shell. It owns the navigator
// exclusively: every zoom operation goes through Update on the single
// program goroutine, which provides the serialization the navigator
// itself does not.
type Model struct {
	cfg      *config.Config
	store    *workspace.Store
	nav      *navigation.Navigator
	panes    *viewport.Manager
	bus      eventbus.EventBus
	input    *input.Handler
	renderer *views.Renderer
	helpText *HelpRenderer
	pager    *PagerOps

	width         int
	height        int
	cursor        int
	statusMessage string
	transitions   []string
	started       time.Time
	uptime        time.Duration
}

// NewModel creates the UI model
func NewModel(
	cfg *config.Config,
	store *workspace.Store,
	nav *navigation.Navigator,
	panes *viewport.Manager,
	bus eventbus.EventBus,
) *Model {
	return &Model{
		cfg:      cfg,
		store:    store,
		nav:      nav,
		panes:    panes,
		bus:      bus,
		input:    input.New(),
		renderer: views.NewRenderer(),
		helpText: NewHelpRenderer(),
		started:  time.Now(),
	}
}

// SetProgram wires the running program in for pager sessions
func (m *Model) SetProgram(p *tea.Program) {
	m.pager = NewPagerOps(p)
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.uptime = time.Since(m.started)
		return m, tick()

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil

	case pagerDoneMsg:
		if msg.err != nil {
			log.Printf("Pager error: %v", msg.err)
			m.statusMessage = "pager failed: " + msg.err.Error()
		}
		return m, nil

	case tea.KeyMsg:
		ctx := m.context()
		actions, cmd := m.input.HandleKey(msg, ctx)
		cmds := []tea.Cmd{cmd}
		for _, action := range actions {
			cmds = append(cmds, m.applyAction(action))
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

// applyAction executes one action produced by the input handler
func (m *Model) applyAction(action types.Action) tea.Cmd {
	switch a := action.(type) {
	case types.ZoomInAction:
		target := a.Target
		if a.UseCursor {
			target = m.cursor
		}
		m.nav.ZoomIn(target)
		m.afterTransition()

	case types.ZoomOutAction:
		m.nav.ZoomOut()
		m.afterTransition()

	case types.SplitAction:
		m.nav.SplitView()

	case types.JumpAction:
		m.jumpTo(a.Path)
		m.afterTransition()

	case types.NavigateAction:
		m.moveCursor(a.Direction)

	case types.TogglePaneAction:
		if m.panes.Primary().HasFocus {
			m.panes.FocusSecondary()
		} else {
			m.panes.FocusPrimary()
		}

	case types.ShowHelpAction:
		return m.pagerCmd(m.helpText.RenderHelpContent())

	case types.ShowLogAction:
		content := strings.Join(m.transitions, "\n")
		if content == "" {
			content = "No transitions yet."
		}
		return m.pagerCmd(content)

	case types.QuitAction:
		return tea.Quit
	}
	return nil
}

// handleEvent reacts to domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) {
	if tr, ok := event.(interface{ Message() string }); ok {
		m.transitions = append(m.transitions, tr.Message())
		m.statusMessage = tr.Message()
	}

	switch ev := event.(type) {
	case eventbus.SplitRequestedEvent:
		m.panes.Split(ev.Sector)

	case eventbus.PickerEnteredEvent, eventbus.ReturnedToSectorEvent, eventbus.ReturnedToRootEvent:
		// Zooming out collapses an active split
		if m.panes.IsSplit() {
			m.panes.Unsplit()
		}
	}
}

// afterTransition syncs derived state once the navigator has moved
func (m *Model) afterTransition() {
	m.panes.SetPrimaryPath(pathForLevel(m.nav.Level()))
	m.cursor = 0
}

// jumpTo plans the route from the current position to a slash path and
// replays it through the navigator so every hop notifies normally
func (m *Model) jumpTo(path string) {
	target, err := viewport.ParsePath(path)
	if err != nil {
		m.statusMessage = err.Error()
		return
	}

	// Plan in sector/app space only. A selected window is a picker
	// detail, not a hierarchy level the navigator climbs through, so a
	// window segment on either side must not count toward the route.
	current := pathForLevel(m.nav.Level()).Truncate(2)
	zoomOuts, zoomIns := current.TransitionTo(target.Truncate(2))

	for i := 0; i < zoomOuts; i++ {
		m.nav.ZoomOut()
		// The picker is a detour, not a hierarchy level: leaving a
		// multi-window app lands there first
		if m.nav.Level().Kind() == navigation.KindPicker {
			m.nav.ZoomOut()
		}
	}
	for _, t := range zoomIns {
		m.nav.ZoomIn(t)
	}

	if window, ok := target.WindowID(); ok {
		m.selectWindow(window)
	}
}

// selectWindow picks a window of the focused app by going out through
// the picker and back in. Single-window apps have no picker; the zoom
// out lands on the sector and the focus is simply restored.
func (m *Model) selectWindow(window int) {
	if m.nav.Level().Kind() == navigation.KindPicker {
		m.nav.ZoomIn(window)
		return
	}
	focus, ok := m.nav.Level().(navigation.Focus)
	if !ok {
		return
	}
	m.nav.ZoomOut()
	if m.nav.Level().Kind() == navigation.KindPicker {
		m.nav.ZoomIn(window)
		return
	}
	m.nav.ZoomIn(focus.App)
}

func (m *Model) moveCursor(direction string) {
	max := m.itemCount() - 1
	if max < 0 {
		max = 0
	}
	switch direction {
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down":
		if m.cursor < max {
			m.cursor++
		}
	case "home":
		m.cursor = 0
	case "end":
		m.cursor = max
	}
}

// itemCount returns the number of selectable items at the current level
func (m *Model) itemCount() int {
	switch lvl := m.nav.Level().(type) {
	case navigation.Root:
		return m.store.SectorCount()
	case navigation.Sector:
		return m.store.AppCount(lvl.Sector)
	case navigation.Picker:
		return m.store.WindowCount(lvl.Sector, lvl.App)
	default:
		return 0
	}
}

func (m *Model) pagerCmd(content string) tea.Cmd {
	if m.pager == nil {
		m.statusMessage = "pager unavailable"
		return nil
	}
	pager := m.pager
	return func() tea.Msg {
		return pagerDoneMsg{err: pager.ShowInPager(content)}
	}
}

// context builds the read-only view of model state for input handling
func (m *Model) context() types.Context {
	return &modelContext{model: m}
}

func (m *Model) View() string {
	level := m.nav.Level()

	state := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Level:         level,
		Workspace:     m.store.Snapshot(),
		Cursor:        m.cursor,
		StatusMessage: m.statusMessage,
		NavStatus:     m.nav.Status(),
		InputMode:     "",
		Split:         m.panes.IsSplit(),
		ShowStatusBar: m.cfg.UI.ShowStatusBar,
	}

	if m.input.CurrentMode() != types.ModeNormal {
		state.InputMode = m.input.ModeName()
		state.TextInput = m.input.TextInputView()
	}

	if sec, ok := m.panes.Secondary(); ok {
		if sectorID, ok := sec.Path.SectorID(); ok {
			state.SecondarySector = sectorID
		}
		state.SecondaryFocused = sec.HasFocus
	}

	state.StatusBar = views.StatusBarState{
		User:   m.cfg.UI.User,
		Host:   m.cfg.UI.Host,
		Level:  level.Kind().Tag(),
		Sector: m.activeSectorName(),
		Uptime: m.uptime,
		Width:  m.width,
	}

	return m.renderer.Render(state)
}

// activeSectorName resolves the active sector index to its configured
// name, "---" at the root
func (m *Model) activeSectorName() string {
	index, ok := navigation.SectorIndex(m.nav.Level())
	if !ok {
		return "---"
	}
	if sec, found := m.store.Sector(index); found {
		return sec.Name
	}
	return "?"
}

// pathForLevel expresses a navigator level as a zoom path
func pathForLevel(level navigation.Level) viewport.Path {
	switch lvl := level.(type) {
	case navigation.Sector:
		return viewport.PathOf(lvl.Sector)
	case navigation.Focus:
		if lvl.HasWindow {
			return viewport.PathOf(lvl.Sector, lvl.App, lvl.Window)
		}
		return viewport.PathOf(lvl.Sector, lvl.App)
	case navigation.Picker:
		return viewport.PathOf(lvl.Sector, lvl.App)
	default:
		return viewport.NewPath()
	}
}

// modelContext implements types.Context for the input handler
type modelContext struct {
	model *Model
}

func (c *modelContext) LevelTag() string {
	return c.model.nav.Level().Kind().Tag()
}

func (c *modelContext) CursorIndex() int {
	return c.model.cursor
}

func (c *modelContext) ItemCount() int {
	return c.model.itemCount()
}

func (c *modelContext) CanSplit() bool {
	return c.model.nav.Level().Kind() == navigation.KindFocus
}

func (c *modelContext) IsSplit() bool {
	return c.model.panes.IsSplit()
}
