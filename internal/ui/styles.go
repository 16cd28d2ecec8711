package ui

import "github.com/charmbracelet/lipgloss"

type palette struct {
	fg, muted, subtle, surface lipgloss.Color
	primary, highlight, danger lipgloss.Color
	heroFg, heroBg             lipgloss.Color
}

var (
	darkPalette = palette{
		fg: "255", muted: "245", subtle: "240", surface: "236",
		primary: "62", highlight: "212", danger: "196",
		heroFg: "234", heroBg: "220",
	}
	lightPalette = palette{
		fg: "235", muted: "242", subtle: "248", surface: "254",
		primary: "61", highlight: "162", danger: "160",
		heroFg: "234", heroBg: "221",
	}
)

// Category accent tokens to terminal colours.
var accents = map[string]lipgloss.Color{
	"blue":    "33",
	"green":   "35",
	"purple":  "99",
	"red":     "203",
	"pink":    "205",
	"orange":  "208",
	"indigo":  "63",
	"emerald": "42",
	"cyan":    "44",
	"amber":   "214",
	"lime":    "148",
	"rose":    "204",
}

func accentColor(token string) lipgloss.Color {
	if c, ok := accents[token]; ok {
		return c
	}
	return "250"
}

type styles struct {
	p palette

	Hero, HeroMeta, HeroTitle lipgloss.Style

	SectionTitle, SectionTitleFocused lipgloss.Style

	Tab, ActiveTab lipgloss.Style

	Chip, ActiveChip, Arrow, ArrowOff lipgloss.Style

	Item, SelectedItem, Meta, Bookmark, Trending lipgloss.Style

	Sidebar, SidebarItem, SidebarActive lipgloss.Style

	Modal, ModalTitle, ModalTab, ModalActiveTab lipgloss.Style

	StatusBar, StatusText, Error, Flash lipgloss.Style

	DebugPanel, DebugHeader lipgloss.Style
}

func newStyles(theme string) styles {
	p := darkPalette
	if theme == "light" {
		p = lightPalette
	}

	s := styles{p: p}

	s.Hero = lipgloss.NewStyle().Foreground(p.heroFg).Background(p.heroBg).Padding(1, 2)
	s.HeroMeta = lipgloss.NewStyle().Foreground(p.heroFg).Faint(true)
	s.HeroTitle = lipgloss.NewStyle().Foreground(p.heroFg).Bold(true)

	s.SectionTitle = lipgloss.NewStyle().Foreground(p.fg).Bold(true).MarginTop(1)
	s.SectionTitleFocused = s.SectionTitle.Foreground(p.highlight)

	s.Tab = lipgloss.NewStyle().Foreground(p.muted).Padding(0, 1)
	s.ActiveTab = lipgloss.NewStyle().Foreground(p.fg).Background(p.primary).Bold(true).Padding(0, 1)

	s.Chip = lipgloss.NewStyle().Foreground(p.fg)
	s.ActiveChip = lipgloss.NewStyle().Foreground(p.heroFg).Bold(true)
	s.Arrow = lipgloss.NewStyle().Foreground(p.highlight).Bold(true)
	s.ArrowOff = lipgloss.NewStyle().Foreground(p.subtle)

	s.Item = lipgloss.NewStyle().Foreground(p.fg).PaddingLeft(1)
	s.SelectedItem = lipgloss.NewStyle().Foreground(p.fg).Background(p.surface).Bold(true).PaddingLeft(1)
	s.Meta = lipgloss.NewStyle().Foreground(p.muted)
	s.Bookmark = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	s.Trending = lipgloss.NewStyle().Foreground(p.heroFg).Background(p.heroBg).Padding(0, 1)

	s.Sidebar = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderRight(true).
		BorderForeground(p.subtle).PaddingRight(1)
	s.SidebarItem = lipgloss.NewStyle().Foreground(p.muted).PaddingLeft(1)
	s.SidebarActive = lipgloss.NewStyle().Foreground(p.fg).Background(p.primary).Bold(true).PaddingLeft(1)

	s.Modal = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.primary).Padding(1, 2)
	s.ModalTitle = lipgloss.NewStyle().Foreground(p.fg).Bold(true)
	s.ModalTab = s.Tab
	s.ModalActiveTab = s.ActiveTab

	s.StatusBar = lipgloss.NewStyle().Foreground(p.fg).Background(p.surface).Padding(0, 1)
	s.StatusText = lipgloss.NewStyle().Foreground(p.muted)
	s.Error = lipgloss.NewStyle().Foreground(p.danger).Bold(true)
	s.Flash = lipgloss.NewStyle().Foreground(p.highlight)

	s.DebugPanel = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.highlight).Padding(1, 2)
	s.DebugHeader = lipgloss.NewStyle().Foreground(p.highlight).Bold(true)

	return s
}

// chip styles a carousel entry in its category accent.
func (s styles) chip(accent string, active bool) lipgloss.Style {
	if active {
		return s.ActiveChip.Background(accentColor(accent))
	}
	return s.Chip.Foreground(accentColor(accent))
}
