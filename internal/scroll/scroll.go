// Package scroll derives scroll affordances for horizontally scrollable strips.
//
// Nothing here holds state. The presentation layer calls Compute whenever a
// strip's geometry changes (resize, scroll, content change) and NextOffset when
// the user asks to scroll.
package scroll

import (
	"fmt"
	"strings"
)

const (
	// DefaultSlack keeps the right affordance from flickering at the boundary.
	DefaultSlack = 10
	// DefaultStep is how far one scroll intent moves the strip.
	DefaultStep = 200
)

// Direction is a horizontal scroll direction.
type Direction int

const (
	Left Direction = iota + 1
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection accepts "left" or "right".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return 0, fmt.Errorf("scroll: unknown direction %q", s)
}

// Geometry is a strip's scroll offset, visible width and total content width.
type Geometry struct {
	Offset   int
	Viewport int
	Content  int
}

// MaxOffset is the furthest the strip can scroll right.
func (g Geometry) MaxOffset() int {
	if g.Content <= g.Viewport {
		return 0
	}
	return g.Content - g.Viewport
}

// Affordance says which scroll controls should be shown.
type Affordance struct {
	CanScrollLeft  bool
	CanScrollRight bool
}

// Computer carries the slack and step for one unit system (pixels, cells).
type Computer struct {
	Slack int
	Step  int
}

// Default is the pixel-unit computer.
var Default = Computer{Slack: DefaultSlack, Step: DefaultStep}

// Compute applies the default slack.
func Compute(offset, viewport, content int) Affordance {
	return Default.Compute(Geometry{Offset: offset, Viewport: viewport, Content: content})
}

// Compute derives the affordance for g.
func (c Computer) Compute(g Geometry) Affordance {
	return Affordance{
		CanScrollLeft:  g.Offset > 0,
		CanScrollRight: g.Offset < g.Content-g.Viewport-c.Slack,
	}
}

// Next returns the offset after one step in direction d.
func (c Computer) Next(d Direction, g Geometry) int {
	return NextOffset(d, g, c.Step)
}

// NextOffset moves g.Offset by step in direction d, clamped to [0, MaxOffset].
func NextOffset(d Direction, g Geometry, step int) int {
	offset := g.Offset
	switch d {
	case Left:
		offset -= step
	case Right:
		offset += step
	}
	return Clamp(offset, g)
}

// Clamp bounds offset to the scrollable range of g.
func Clamp(offset int, g Geometry) int {
	if offset > g.MaxOffset() {
		offset = g.MaxOffset()
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
