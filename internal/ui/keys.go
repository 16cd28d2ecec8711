package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit        key.Binding
	Help        key.Binding
	NextPane    key.Binding
	PrevPane    key.Binding
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	ScrollLeft  key.Binding
	ScrollRight key.Binding
	Open        key.Binding
	Points      key.Binding
	Bookmark    key.Binding
	Manage      key.Binding
	Sidebar     key.Binding
	Refresh     key.Binding
	Debug       key.Binding
	Close       key.Binding
	ToggleMode  key.Binding

	// Category manager
	Remove   key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding
	Add      key.Binding
}

var keys = keyMap{
	Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	NextPane:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next section")),
	PrevPane:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev section")),
	Up:          key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
	Down:        key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
	Left:        key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("←/h", "prev tab")),
	Right:       key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("→/l", "next tab")),
	ScrollLeft:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "scroll left")),
	ScrollRight: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "scroll right")),
	Open:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "summary")),
	Points:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "key points")),
	Bookmark:    key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "bookmark")),
	Manage:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "categories")),
	Sidebar:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sidebar")),
	Refresh:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Debug:       key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "debug")),
	Close:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	ToggleMode:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "summary/points")),

	Remove:   key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove")),
	MoveUp:   key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "move up")),
	MoveDown: key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "move down")),
	Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPane, k.Left, k.Open, k.Bookmark, k.Manage, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextPane, k.PrevPane, k.Up, k.Down, k.Left, k.Right},
		{k.ScrollLeft, k.ScrollRight, k.Open, k.Points, k.Bookmark},
		{k.Manage, k.Sidebar, k.Refresh, k.Debug, k.Help, k.Quit},
	}
}

// modalKeys is the help shown while an article is open.
type modalKeys struct{}

func (modalKeys) ShortHelp() []key.Binding {
	return []key.Binding{keys.ToggleMode, keys.Bookmark, keys.Up, keys.Down, keys.Close}
}
func (m modalKeys) FullHelp() [][]key.Binding { return [][]key.Binding{m.ShortHelp()} }

// managerKeys is the help shown in the category manager.
type managerKeys struct{}

func (managerKeys) ShortHelp() []key.Binding {
	return []key.Binding{keys.Up, keys.Down, keys.MoveUp, keys.MoveDown, keys.Remove, keys.Add, keys.Close}
}
func (m managerKeys) FullHelp() [][]key.Binding { return [][]key.Binding{m.ShortHelp()} }
