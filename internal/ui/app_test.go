package ui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/newsai/internal/catalog"
	"github.com/abelbrown/newsai/internal/content"
	"github.com/abelbrown/newsai/internal/inspect"
	"github.com/abelbrown/newsai/internal/scroll"
	"github.com/abelbrown/newsai/internal/selection"
	"github.com/abelbrown/newsai/internal/session"
)

var seed = []string{"technology", "business", "science", "health"}

func fixedNow() time.Time { return time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC) }

func mockSnapshot(t *testing.T) content.Snapshot {
	t.Helper()
	svc := content.NewService(content.NewStatic(content.Mock()), 0, nil)
	snap, err := svc.Load(context.Background(), catalog.Default().IDs(), session.GlobalTabs)
	if err != nil {
		t.Fatalf("load mock content: %v", err)
	}
	return snap
}

// newTestApp builds a sized, loaded App over the mock content.
func newTestApp(t *testing.T, sidebar bool, selected ...string) App {
	t.Helper()
	st, err := session.New(catalog.Default(), session.Options{
		Seed:   selected,
		Scroll: scroll.Computer{Slack: 1, Step: 24},
	})
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}

	app := NewApp(AppConfig{
		Controller:  session.NewController(st, nil),
		UserName:    "John",
		ShowSidebar: sidebar,
		Now:         fixedNow,
	})
	model, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	model, _ = model.Update(ContentLoaded{Snapshot: mockSnapshot(t)})
	return model.(App)
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(a App, ks ...string) App {
	var model tea.Model = a
	for _, k := range ks {
		model, _ = model.Update(keyMsg(k))
	}
	return model.(App)
}

func active(t *testing.T, a App, section string) string {
	t.Helper()
	k, err := a.ctrl.State().ActiveFilter(section)
	if err != nil {
		t.Fatalf("ActiveFilter(%s): %v", section, err)
	}
	return k
}

// mockLoader tracks whether a load was requested.
type mockLoader struct {
	calls      int
	categories []string
}

func (m *mockLoader) load(categories, tabs []string) tea.Cmd {
	m.calls++
	m.categories = categories
	return func() tea.Msg { return ContentLoaded{} }
}

func TestAppInitLoadsContent(t *testing.T) {
	st, err := session.New(catalog.Default(), session.Options{})
	if err != nil {
		t.Fatal(err)
	}
	mock := &mockLoader{}
	app := NewApp(AppConfig{Controller: session.NewController(st, nil), Load: mock.load})

	if cmd := app.Init(); cmd == nil {
		t.Fatal("Init should return a command")
	}
	if mock.calls != 1 {
		t.Errorf("Init should call load once, got %d", mock.calls)
	}
	if len(mock.categories) != catalog.Default().Len() {
		t.Errorf("load should cover the whole catalog, got %v", mock.categories)
	}
}

func TestViewBeforeReady(t *testing.T) {
	st, _ := session.New(catalog.Default(), session.Options{})
	app := NewApp(AppConfig{Controller: session.NewController(st, nil)})
	if got := app.View(); got != "Initializing..." {
		t.Errorf("View before resize = %q", got)
	}
}

func TestGreeting(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "Good morning"},
		{11, "Good morning"},
		{12, "Good afternoon"},
		{17, "Good afternoon"},
		{18, "Good evening"},
		{23, "Good evening"},
	}
	for _, tt := range tests {
		got := greeting(time.Date(2026, 1, 1, tt.hour, 0, 0, 0, time.UTC))
		if got != tt.want {
			t.Errorf("greeting(%d:00) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}

func TestViewShowsDashboard(t *testing.T) {
	app := newTestApp(t, false, seed...)
	view := app.View()

	for _, want := range []string{"Good morning, John", "Your News Feed", "Global News", "OpenAI Announces GPT-5"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}

func TestClockTickUpdatesHero(t *testing.T) {
	app := newTestApp(t, false, seed...)
	model, cmd := app.Update(ClockTick{Now: time.Date(2026, 10, 15, 19, 0, 0, 0, time.UTC)})
	if cmd == nil {
		t.Error("ClockTick should schedule the next tick")
	}
	if !strings.Contains(model.(App).View(), "Good evening") {
		t.Error("hero should follow the clock")
	}
}

func TestFeedTabsCycleIndependently(t *testing.T) {
	app := newTestApp(t, false, seed...)
	app = press(app, "tab", "tab") // carousel -> cards -> feed
	if app.focus != paneFeed {
		t.Fatalf("focus = %v, want feed", app.focus)
	}

	app = press(app, "l")
	if got := active(t, app, session.SectionFeed); got != "business" {
		t.Errorf("feed tab = %q, want business", got)
	}
	if got := active(t, app, session.SectionGlobal); got != "trending" {
		t.Errorf("global tab changed to %q", got)
	}

	app = press(app, "h", "h")
	if got := active(t, app, session.SectionFeed); got != "health" {
		t.Errorf("feed tab should wrap to health, got %q", got)
	}
	if items := app.feedItems(); len(items) != 1 || items[0].ID != "feed-6" {
		t.Errorf("health feed = %v", items)
	}
}

func TestBookmarkFromFeed(t *testing.T) {
	app := newTestApp(t, false, seed...)
	app = press(app, "tab", "tab", "j", "b")

	if !app.ctrl.State().IsBookmarked("feed-2") {
		t.Fatal("b should bookmark the article under the cursor")
	}
	app = press(app, "b")
	if app.ctrl.State().IsBookmarked("feed-2") {
		t.Error("second b should clear the bookmark")
	}
}

func TestOpenArticleModal(t *testing.T) {
	app := newTestApp(t, false, seed...)
	app = press(app, "tab", "tab", "enter")

	in, ok := app.ctrl.State().Inspection()
	if !ok {
		t.Fatal("enter should open the article")
	}
	if in != (inspect.Inspection{Article: "feed-1", Mode: inspect.ModeSummary}) {
		t.Errorf("inspection = %+v", in)
	}
	view := app.View()
	if !strings.Contains(view, "OpenAI Announces GPT-5") || !strings.Contains(view, "Key Points") {
		t.Errorf("modal should show title and mode tabs, got:\n%s", view)
	}

	app = press(app, "tab")
	in, _ = app.ctrl.State().Inspection()
	if in.Mode != inspect.ModePoints {
		t.Errorf("tab should toggle to points, got %v", in.Mode)
	}
	if !strings.Contains(app.View(), "1. ") {
		t.Error("points mode should list numbered points")
	}

	app = press(app, "b")
	if !app.ctrl.State().IsBookmarked("feed-1") {
		t.Error("b in the modal should bookmark the open article")
	}

	app = press(app, "esc")
	if _, ok := app.ctrl.State().Inspection(); ok {
		t.Error("esc should close the modal")
	}
}

func TestOpenPointsDirectly(t *testing.T) {
	app := newTestApp(t, false, seed...)
	app = press(app, "tab", "tab", "tab", "j", "p") // global, second headline

	in, ok := app.ctrl.State().Inspection()
	if !ok || in.Article != "global-2" || in.Mode != inspect.ModePoints {
		t.Errorf("inspection = %+v, %v", in, ok)
	}
	if !strings.Contains(app.View(), "No key points") {
		t.Error("headlines have no points")
	}
}

func TestCarouselScrollAffordance(t *testing.T) {
	app := newTestApp(t, false, seed...)
	_, total := layoutChips(catalog.Default().All())
	viewport := carouselViewport(120)
	if total <= viewport {
		t.Fatalf("fixture needs an overflowing strip: content %d, viewport %d", total, viewport)
	}

	aff, _ := app.ctrl.State().ScrollAffordance(session.StripCarousel)
	if aff.CanScrollLeft || !aff.CanScrollRight {
		t.Errorf("initial affordance = %+v", aff)
	}

	app = press(app, "]")
	if got, want := app.ctrl.State().StripOffset(session.StripCarousel), total-viewport; got != want {
		t.Errorf("offset after ] = %d, want %d", got, want)
	}
	aff, _ = app.ctrl.State().ScrollAffordance(session.StripCarousel)
	if !aff.CanScrollLeft || aff.CanScrollRight {
		t.Errorf("affordance at end = %+v", aff)
	}

	app = press(app, "[")
	if got := app.ctrl.State().StripOffset(session.StripCarousel); got != 0 {
		t.Errorf("offset after [ = %d", got)
	}
}

func TestResizeRemeasuresCarousel(t *testing.T) {
	app := newTestApp(t, false, seed...)
	app = press(app, "]")

	model, _ := app.Update(tea.WindowSizeMsg{Width: 200, Height: 60})
	app = model.(App)

	if got := app.ctrl.State().StripOffset(session.StripCarousel); got != 0 {
		t.Errorf("offset should clamp to 0 when everything fits, got %d", got)
	}
	aff, _ := app.ctrl.State().ScrollAffordance(session.StripCarousel)
	if aff.CanScrollLeft || aff.CanScrollRight {
		t.Errorf("affordance on wide terminal = %+v", aff)
	}
}

func TestCarouselRevealsActiveChip(t *testing.T) {
	app := newTestApp(t, false, seed...)
	app = press(app, "h") // wraps to the last category

	if got := active(t, app, session.SectionCarousel); got != "fashion" {
		t.Fatalf("carousel active = %q", got)
	}
	chips, _ := layoutChips(catalog.Default().All())
	last := chips[len(chips)-1]
	offset := app.ctrl.State().StripOffset(session.StripCarousel)
	if last.end() > offset+carouselViewport(120) {
		t.Errorf("active chip [%d,%d) not visible at offset %d", last.start, last.end(), offset)
	}
}

func TestCarouselEnterTogglesSelection(t *testing.T) {
	app := newTestApp(t, false, seed...)

	app = press(app, "enter")
	if app.ctrl.State().Selection().Contains("technology") {
		t.Fatal("enter on a selected category should remove it")
	}
	app = press(app, "enter")
	got := app.ctrl.State().SelectedCategories()
	if got[len(got)-1] != "technology" {
		t.Errorf("re-added category should go to the end, got %v", got)
	}
}

func TestCarouselCapacityError(t *testing.T) {
	app := newTestApp(t, false, seed...)
	app = press(app, "l", "l", "l", "l", "l", "enter") // sports

	if !errors.Is(app.err, selection.ErrCapacityExceeded) {
		t.Fatalf("err = %v, want capacity exceeded", app.err)
	}
	if !strings.Contains(app.View(), selection.ErrCapacityExceeded.Error()) {
		t.Error("status bar should show the error")
	}
	if app.ctrl.State().Selection().Len() != selection.MaxSelected {
		t.Error("failed add must not change the selection")
	}

	app = press(app, "l")
	if app.err != nil {
		t.Errorf("next key should clear the error, got %v", app.err)
	}
}

func TestManagerRemoveAndReorder(t *testing.T) {
	app := newTestApp(t, false, seed...)
	app = press(app, "m")
	if app.manager == nil {
		t.Fatal("m should open the category manager")
	}

	app = press(app, "J")
	want := []string{"business", "technology", "science", "health"}
	if got := app.ctrl.State().SelectedCategories(); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("after J = %v, want %v", got, want)
	}
	if app.manager.cursor != 1 {
		t.Errorf("cursor should follow the moved category, got %d", app.manager.cursor)
	}

	app = press(app, "x")
	want = []string{"business", "science", "health"}
	if got := app.ctrl.State().SelectedCategories(); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("after x = %v, want %v", got, want)
	}

	app = press(app, "esc")
	if app.manager != nil {
		t.Error("esc should close the manager")
	}
}

func TestManagerAddWithSuggestion(t *testing.T) {
	app := newTestApp(t, false, "technology")
	app = press(app, "m", "a", "sprots", "enter")

	if app.manager.suggest == nil || app.manager.suggest.ID != "sports" {
		t.Fatalf("expected a suggestion for sports, got %+v", app.manager.suggest)
	}
	if !strings.Contains(app.View(), "did you mean Sports?") {
		t.Error("suggestion should be shown")
	}

	app = press(app, "enter")
	got := app.ctrl.State().SelectedCategories()
	if len(got) != 2 || got[1] != "sports" {
		t.Errorf("selection = %v", got)
	}
	if app.manager.adding {
		t.Error("a successful add should leave input mode")
	}
}

func TestManagerAddExactAndUnknown(t *testing.T) {
	app := newTestApp(t, false, "technology")
	app = press(app, "m", "a", "Travel", "enter")
	if !app.ctrl.State().Selection().Contains("travel") {
		t.Fatal("exact name should add directly")
	}

	app = press(app, "a", "qqqqqqqq", "enter")
	if !errors.Is(app.err, selection.ErrUnknownCategory) {
		t.Errorf("err = %v, want unknown category", app.err)
	}
	if !app.manager.adding {
		t.Error("input should stay open after a rejected add")
	}

	app = press(app, "esc")
	if app.manager.adding {
		t.Error("esc should leave input mode")
	}
}

func TestManagerAddDisabledWhenFull(t *testing.T) {
	app := newTestApp(t, false, seed...)
	app = press(app, "m")
	if !strings.Contains(app.View(), "maximum 4 reached") {
		t.Error("full selection should show the disabled add hint")
	}

	app = press(app, "a")
	if app.manager.adding {
		t.Error("a should not open input when full")
	}
	if !errors.Is(app.err, selection.ErrCapacityExceeded) {
		t.Errorf("err = %v", app.err)
	}
}

func TestSidebarModes(t *testing.T) {
	app := newTestApp(t, true, seed...)
	app = press(app, "shift+tab")
	if app.focus != paneSidebar {
		t.Fatalf("focus = %v, want sidebar", app.focus)
	}

	app = press(app, "j")
	if app.mode() != "trending" {
		t.Fatalf("mode = %q", app.mode())
	}
	for _, it := range app.listItems() {
		if !strings.HasPrefix(string(it.ID), "global-") {
			t.Errorf("trending list should only hold headlines, got %s", it.ID)
		}
	}
	if n := len(app.listItems()); n != 4 {
		t.Errorf("trending items = %d, want 4", n)
	}
	if !strings.Contains(app.View(), "Trending Now") {
		t.Error("view should show the trending list")
	}

	app = press(app, "j", "j") // bookmarks
	if !strings.Contains(app.View(), "No saved articles yet") {
		t.Error("empty bookmarks should say so")
	}
}

func TestBookmarksView(t *testing.T) {
	app := newTestApp(t, true, seed...)
	app = press(app, "tab", "b")        // cards: card-1
	app = press(app, "tab", "tab", "b") // global: global-1

	app = press(app, "tab", "j", "j", "j") // sidebar -> bookmarks
	if app.mode() != "bookmarks" {
		t.Fatalf("mode = %q", app.mode())
	}
	items := app.listItems()
	if len(items) != 2 || items[0].ID != "card-1" || items[1].ID != "global-1" {
		t.Errorf("bookmarks = %v", items)
	}

	app = press(app, "tab", "enter")
	in, ok := app.ctrl.State().Inspection()
	if !ok || in.Article != "card-1" {
		t.Errorf("enter in bookmarks should open card-1, got %+v", in)
	}
}

func TestSidebarCategoriesOpensManager(t *testing.T) {
	app := newTestApp(t, true, seed...)
	app = press(app, "shift+tab", "k") // wraps to categories
	if app.mode() != "categories" {
		t.Fatalf("mode = %q", app.mode())
	}
	app = press(app, "enter")
	if app.manager == nil {
		t.Error("enter on categories should open the manager")
	}
}

func TestContentLoadError(t *testing.T) {
	st, _ := session.New(catalog.Default(), session.Options{})
	app := NewApp(AppConfig{Controller: session.NewController(st, nil)})
	model, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	model, _ = model.Update(ContentLoaded{Err: errors.New("source offline")})
	app = model.(App)

	if app.loaded {
		t.Error("failed load should not mark content loaded")
	}
	if !strings.Contains(app.View(), "source offline") {
		t.Error("status bar should show the load error")
	}
}

func TestRefreshKey(t *testing.T) {
	mock := &mockLoader{}
	st, _ := session.New(catalog.Default(), session.Options{})
	app := NewApp(AppConfig{Controller: session.NewController(st, nil), Load: mock.load})

	model, cmd := app.Update(keyMsg("r"))
	if cmd == nil || mock.calls != 1 {
		t.Fatalf("r should trigger a load, calls=%d", mock.calls)
	}
	if !model.(App).loading {
		t.Error("app should be loading")
	}

	_, _ = model.Update(keyMsg("r"))
	if mock.calls != 1 {
		t.Error("r while loading should not start another load")
	}
}

func TestFocusedPaneStaysVisible(t *testing.T) {
	app := newTestApp(t, false, seed...)
	model, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 20})
	app = press(model.(App), "tab", "tab", "tab")

	view := app.View()
	if !strings.Contains(view, "Global News") {
		t.Errorf("focused global pane should be scrolled into view, got:\n%s", view)
	}
	if strings.Contains(view, "Good morning") {
		t.Error("hero should have scrolled off")
	}
}

func TestQuit(t *testing.T) {
	app := newTestApp(t, false, seed...)
	_, cmd := app.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}
