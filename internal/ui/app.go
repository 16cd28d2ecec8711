package ui

import (
	"maps"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/abelbrown/newsai/internal/content"
	"github.com/abelbrown/newsai/internal/eventlog"
	"github.com/abelbrown/newsai/internal/inspect"
	"github.com/abelbrown/newsai/internal/logging"
	"github.com/abelbrown/newsai/internal/scroll"
	"github.com/abelbrown/newsai/internal/session"
)

// LoadFunc returns a Cmd that produces a ContentLoaded message.
type LoadFunc func(categories, tabs []string) tea.Cmd

// AppConfig wires the dashboard to its session and content.
type AppConfig struct {
	Controller *session.Controller
	Load       LoadFunc
	Refresh    LoadFunc
	Ring       *eventlog.Ring

	UserName     string
	Theme        string
	ShowSidebar  bool
	Debug        bool
	RefreshEvery time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

type pane int

const (
	paneSidebar pane = iota
	paneCarousel
	paneCards
	paneFeed
	paneGlobal
	paneList
)

// App is the root Bubble Tea model.
// IMPORTANT: App does NOT hold session state. Every intent goes through the
// controller and every render reads the controller's current State.
type App struct {
	ctrl         *session.Controller
	load         LoadFunc
	refresh      LoadFunc
	ring         *eventlog.Ring
	clock        func() time.Time
	refreshEvery time.Duration

	styles  styles
	help    help.Model
	spinner spinner.Model

	user string
	now  time.Time

	snapshot content.Snapshot
	loaded   bool
	loading  bool

	focus   pane
	cursors map[pane]int

	modal      viewport.Model
	inspecting inspect.Inspection
	manager    *manager

	err          error
	width        int
	height       int
	ready        bool
	showSidebar  bool
	debugVisible bool
}

func NewApp(cfg AppConfig) App {
	clock := cfg.Now
	if clock == nil {
		clock = time.Now
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	a := App{
		ctrl:         cfg.Controller,
		load:         cfg.Load,
		refresh:      cfg.Refresh,
		ring:         cfg.Ring,
		clock:        clock,
		refreshEvery: cfg.RefreshEvery,
		styles:       newStyles(cfg.Theme),
		help:         help.New(),
		spinner:      sp,
		user:         cfg.UserName,
		now:          clock(),
		cursors:      make(map[pane]int),
		showSidebar:  cfg.ShowSidebar,
		debugVisible: cfg.Debug,
		focus:        paneCarousel,
	}
	if a.refresh == nil {
		a.refresh = a.load
	}
	if a.ctrl != nil {
		a = a.fixFocus()
	}
	return a
}

func (a App) loadArgs() ([]string, []string) {
	return a.ctrl.State().Catalog().IDs(), session.GlobalTabs
}

func clockTick() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg { return ClockTick{Now: t} })
}

func (a App) refreshTick() tea.Cmd {
	if a.refreshEvery <= 0 {
		return nil
	}
	return tea.Tick(a.refreshEvery, func(time.Time) tea.Msg { return RefreshTick{} })
}

// Init starts the first load along with the clock and refresh timers.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.spinner.Tick, clockTick(), a.refreshTick()}
	if a.load != nil {
		cmds = append(cmds, a.load(a.loadArgs()))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and returns the updated model and any commands.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.help.Width = msg.Width
		a.measureCarousel()
		a.modal = viewport.Model{}
		return a.syncModal(), nil

	case ContentLoaded:
		a.loading = false
		if msg.Err != nil {
			a.err = msg.Err
			logging.Warn("content load failed", "err", msg.Err)
			// A partial snapshot is still worth showing.
			if msg.Snapshot.Articles == nil && msg.Snapshot.Headlines == nil {
				return a, nil
			}
		}
		a.snapshot = msg.Snapshot
		a.loaded = true
		a = a.clampCursors()
		a.modal = viewport.Model{}
		return a.syncModal(), nil

	case ClockTick:
		a.now = msg.Now
		return a, clockTick()

	case RefreshTick:
		if a.refresh == nil || a.loading {
			return a, a.refreshTick()
		}
		a.loading = true
		return a, tea.Batch(a.refresh(a.loadArgs()), a.refreshTick())

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	return a, nil
}

// focusOrder is the tab cycle for the current sidebar mode.
func (a App) focusOrder() []pane {
	var order []pane
	if a.showSidebar {
		order = append(order, paneSidebar)
	}
	switch a.mode() {
	case "dashboard":
		order = append(order, paneCarousel, paneCards, paneFeed, paneGlobal)
	case "categories":
		if !a.showSidebar {
			order = append(order, paneSidebar)
		}
	default:
		order = append(order, paneList)
	}
	return order
}

func (a App) cycleFocus(delta int) App {
	order := a.focusOrder()
	i := 0
	for j, p := range order {
		if p == a.focus {
			i = j
			break
		}
	}
	a.focus = order[(i+delta+len(order))%len(order)]
	return a
}

// fixFocus moves focus onto a pane the current mode actually shows.
func (a App) fixFocus() App {
	for _, p := range a.focusOrder() {
		if p == a.focus {
			return a
		}
	}
	a.focus = a.focusOrder()[0]
	return a
}

func (a App) itemCount(p pane) int {
	switch p {
	case paneCards:
		return len(a.cardItems())
	case paneFeed:
		return len(a.feedItems())
	case paneGlobal:
		return len(a.globalItems())
	case paneList:
		return len(a.listItems())
	}
	return 0
}

func (a App) clampCursors() App {
	cursors := make(map[pane]int, len(a.cursors))
	for p, c := range a.cursors {
		cursors[p] = max(min(c, a.itemCount(p)-1), 0)
	}
	a.cursors = cursors
	return a
}

func (a App) moveCursor(delta int) App {
	n := a.itemCount(a.focus)
	if n == 0 {
		return a
	}
	return a.setCursor(a.focus, max(min(a.cursors[a.focus]+delta, n-1), 0))
}

func (a App) setCursor(p pane, v int) App {
	cursors := maps.Clone(a.cursors)
	cursors[p] = v
	a.cursors = cursors
	return a
}

// selectedArticle is the article under the cursor of the focused pane.
func (a App) selectedArticle() (inspect.ArticleID, bool) {
	i := a.cursors[a.focus]
	switch a.focus {
	case paneCards:
		if items := a.cardItems(); i < len(items) {
			return items[i].ID, true
		}
	case paneFeed:
		if items := a.feedItems(); i < len(items) {
			return items[i].ID, true
		}
	case paneGlobal:
		if items := a.globalItems(); i < len(items) {
			return items[i].ID, true
		}
	case paneList:
		if items := a.listItems(); i < len(items) {
			return items[i].ID, true
		}
	}
	return "", false
}

func (a App) sectionFor(p pane) string {
	switch p {
	case paneCarousel:
		return session.SectionCarousel
	case paneFeed:
		return session.SectionFeed
	case paneGlobal:
		return session.SectionGlobal
	case paneSidebar:
		return session.SectionSidebar
	}
	return ""
}

// cycleSection moves the focused section's tab and resets its list cursor.
func (a App) cycleSection(delta int) App {
	name := a.sectionFor(a.focus)
	if name == "" {
		return a
	}
	a.err = a.ctrl.Dispatch(session.CycleSectionFilter{Section: name, Delta: delta})
	if a.err != nil {
		return a
	}
	switch a.focus {
	case paneCarousel:
		a.revealActive()
		return a
	case paneSidebar:
		return a.setCursor(paneList, 0)
	default:
		return a.setCursor(a.focus, 0)
	}
}

func (a App) openSelected(mode inspect.Mode) App {
	id, ok := a.selectedArticle()
	if !ok {
		return a
	}
	a.err = a.ctrl.Dispatch(session.OpenArticle{Article: id, Mode: mode})
	return a.syncModal()
}

// toggleActiveCategory adds or removes the carousel's active category.
func (a App) toggleActiveCategory() App {
	st := a.ctrl.State()
	id, err := st.ActiveFilter(session.SectionCarousel)
	if err != nil {
		a.err = err
		return a
	}
	if st.Selection().Contains(id) {
		a.err = a.ctrl.Dispatch(session.RemoveCategory{ID: id})
	} else {
		a.err = a.ctrl.Dispatch(session.AddCategory{ID: id})
	}
	return a.clampCursors()
}

// handleKeyMsg processes keyboard input.
func (a App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}
	// Clear any existing error on key press
	a.err = nil

	if a.manager != nil {
		return a.handleManagerKey(msg)
	}
	if _, open := a.ctrl.State().Inspection(); open {
		return a.handleModalKey(msg)
	}
	if a.debugVisible {
		if key.Matches(msg, keys.Debug) || key.Matches(msg, keys.Close) {
			a.debugVisible = false
		} else if key.Matches(msg, keys.Quit) {
			return a, tea.Quit
		}
		return a, nil
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, keys.Help):
		a.help.ShowAll = !a.help.ShowAll

	case key.Matches(msg, keys.Debug):
		a.debugVisible = true

	case key.Matches(msg, keys.NextPane):
		a = a.cycleFocus(1)

	case key.Matches(msg, keys.PrevPane):
		a = a.cycleFocus(-1)

	case key.Matches(msg, keys.Sidebar):
		a.showSidebar = !a.showSidebar
		a = a.fixFocus()
		a.measureCarousel()

	case key.Matches(msg, keys.Manage):
		a = a.openManager()

	case key.Matches(msg, keys.Refresh):
		if a.refresh != nil && !a.loading {
			a.loading = true
			return a, a.refresh(a.loadArgs())
		}

	case key.Matches(msg, keys.ScrollLeft):
		a.err = a.ctrl.Dispatch(session.ScrollBy{Strip: session.StripCarousel, Direction: scroll.Left})

	case key.Matches(msg, keys.ScrollRight):
		a.err = a.ctrl.Dispatch(session.ScrollBy{Strip: session.StripCarousel, Direction: scroll.Right})

	default:
		return a.handlePaneKey(msg)
	}
	return a, nil
}

func (a App) handlePaneKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.focus == paneSidebar {
		switch {
		case key.Matches(msg, keys.Up), key.Matches(msg, keys.Left):
			a = a.cycleSection(-1)
		case key.Matches(msg, keys.Down), key.Matches(msg, keys.Right):
			a = a.cycleSection(1)
		case key.Matches(msg, keys.Open):
			if a.mode() == "categories" {
				return a.openManager(), nil
			}
			a = a.cycleFocus(1)
		}
		return a, nil
	}

	switch {
	case key.Matches(msg, keys.Left):
		a = a.cycleSection(-1)
	case key.Matches(msg, keys.Right):
		a = a.cycleSection(1)
	case key.Matches(msg, keys.Up):
		a = a.moveCursor(-1)
	case key.Matches(msg, keys.Down):
		a = a.moveCursor(1)
	case key.Matches(msg, keys.Open):
		if a.focus == paneCarousel {
			return a.toggleActiveCategory(), nil
		}
		a = a.openSelected(inspect.ModeSummary)
	case key.Matches(msg, keys.Points):
		a = a.openSelected(inspect.ModePoints)
	case key.Matches(msg, keys.Bookmark):
		if id, ok := a.selectedArticle(); ok {
			a.err = a.ctrl.Dispatch(session.ToggleBookmark{Article: id})
			a = a.clampCursors()
		}
	}
	return a, nil
}

// bodyWidth is the space left of the sidebar.
func (a App) bodyWidth() int {
	if a.sidebarShown() {
		return max(a.width-sidebarWidth-1, 0)
	}
	return a.width
}

func (a App) sidebarShown() bool {
	return a.showSidebar && a.width >= 60
}

func (a App) sectionTitle(title string, p pane) string {
	if a.focus == p {
		return a.styles.SectionTitleFocused.Render("▸ " + title)
	}
	return a.styles.SectionTitle.Render("  " + title)
}

type block struct {
	pane pane
	view string
}

func (a App) bodyBlocks(width int) []block {
	switch a.mode() {
	case "dashboard":
		return []block{
			{pane: -1, view: a.renderHero(width)},
			{pane: paneCarousel, view: a.renderCarousel(width)},
			{pane: paneCards, view: a.renderCards(width)},
			{pane: paneFeed, view: a.renderFeed(width)},
			{pane: paneGlobal, view: a.renderGlobal(width)},
		}
	case "categories":
		return []block{{pane: paneSidebar, view: a.renderCategoriesHint()}}
	default:
		return []block{{pane: paneList, view: a.renderList(width)}}
	}
}

// scrollBody crops the stacked blocks to height, keeping the focused block
// in view.
func (a App) scrollBody(blocks []block, height int) string {
	var lines []string
	top, bottom := 0, 0
	for _, b := range blocks {
		ls := strings.Split(b.view, "\n")
		if b.pane == a.focus {
			top, bottom = len(lines), len(lines)+len(ls)
		}
		lines = append(lines, ls...)
	}

	start := 0
	if bottom > height {
		start = min(top, bottom-height)
	}
	end := min(start+height, len(lines))
	return strings.Join(lines[start:end], "\n")
}

func (a App) statusBar() string {
	var left string
	if a.err != nil {
		left = a.styles.Error.Render("✗ " + a.err.Error())
	} else if a.manager != nil {
		left = a.help.View(managerKeys{})
	} else if _, open := a.ctrl.State().Inspection(); open {
		left = a.help.View(modalKeys{})
	} else {
		left = a.help.View(keys)
	}

	right := ""
	if a.loading || !a.loaded {
		right = a.spinner.View() + " loading"
	} else if !a.snapshot.LoadedAt.IsZero() {
		right = "updated " + content.Ago(a.now.Sub(a.snapshot.LoadedAt))
	}

	gap := max(a.width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	return a.styles.StatusBar.Width(a.width).Render(left + strings.Repeat(" ", gap) + a.styles.StatusText.Render(right))
}

// View renders the App.
func (a App) View() string {
	if !a.ready {
		return "Initializing..."
	}

	if a.debugVisible {
		overlay := debugOverlay(a.styles, a.ring, a.width, a.height-1)
		if overlay == "" {
			overlay = a.styles.Meta.Render("event journal disabled")
		}
		return lipgloss.JoinVertical(lipgloss.Left, overlay, debugStatusBar(a.styles, a.width))
	}

	status := a.statusBar()
	avail := max(a.height-lipgloss.Height(status), 1)

	var body string
	switch {
	case a.manager != nil:
		body = lipgloss.Place(a.width, avail, lipgloss.Center, lipgloss.Center, a.renderManager())
	case a.inspecting.Article != "":
		body = lipgloss.Place(a.width, avail, lipgloss.Center, lipgloss.Center, a.renderModal())
	default:
		width := a.bodyWidth()
		main := a.scrollBody(a.bodyBlocks(width), avail)
		if a.sidebarShown() {
			main = lipgloss.JoinHorizontal(lipgloss.Top, a.renderSidebar(avail), " ", main)
		}
		body = lipgloss.NewStyle().MaxHeight(avail).Render(main)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, status)
}
