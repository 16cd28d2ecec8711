package ui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

const tagline = "Your personalized AI news feed is ready. Discover today's top stories curated just for you."

func greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "Good morning"
	case h < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

func (a App) renderHero(width int) string {
	name := a.user
	if name == "" {
		name = "there"
	}
	now := a.now
	title := a.styles.HeroTitle.Render(greeting(now) + ", " + name)
	meta := a.styles.HeroMeta.Render(now.Format("15:04") + " • " + now.Format("Monday, January 2, 2006"))
	body := lipgloss.JoinVertical(lipgloss.Left, meta, title, "", a.styles.HeroMeta.Render(tagline))
	return a.styles.Hero.Width(max(width, 20)).Render(body)
}
