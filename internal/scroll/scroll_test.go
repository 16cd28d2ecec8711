package scroll

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name                    string
		offset, viewport, total int
		want                    Affordance
	}{
		{"start of wide strip", 0, 300, 900, Affordance{CanScrollLeft: false, CanScrollRight: true}},
		{"end of wide strip", 600, 300, 900, Affordance{CanScrollLeft: true, CanScrollRight: false}},
		{"middle", 300, 300, 900, Affordance{CanScrollLeft: true, CanScrollRight: true}},
		{"inside slack", 591, 300, 900, Affordance{CanScrollLeft: true, CanScrollRight: false}},
		{"just before slack", 589, 300, 900, Affordance{CanScrollLeft: true, CanScrollRight: true}},
		{"exactly at slack", 590, 300, 900, Affordance{CanScrollLeft: true, CanScrollRight: false}},
		{"content fits", 0, 900, 300, Affordance{}},
		{"content barely wider", 0, 300, 305, Affordance{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Compute(tt.offset, tt.viewport, tt.total))
		})
	}
}

func TestComputerSlack(t *testing.T) {
	cells := Computer{Slack: 1, Step: 10}
	g := Geometry{Offset: 18, Viewport: 20, Content: 40}

	require.True(t, cells.Compute(g).CanScrollRight)
	g.Offset = 19
	require.False(t, cells.Compute(g).CanScrollRight)
}

func TestNextOffset(t *testing.T) {
	g := Geometry{Offset: 0, Viewport: 300, Content: 900}

	tests := []struct {
		name   string
		dir    Direction
		offset int
		step   int
		want   int
	}{
		{"right from start", Right, 0, 200, 200},
		{"right clamps to max", Right, 500, 200, 600},
		{"left from middle", Left, 300, 200, 100},
		{"left clamps to zero", Left, 100, 200, 0},
		{"left at zero", Left, 0, 200, 0},
		{"unknown direction only clamps", Direction(0), 700, 200, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g.Offset = tt.offset
			require.Equal(t, tt.want, NextOffset(tt.dir, g, tt.step))
		})
	}
}

func TestNextOffsetWhenContentFits(t *testing.T) {
	g := Geometry{Offset: 0, Viewport: 80, Content: 40}
	require.Equal(t, 0, NextOffset(Right, g, 200))
	require.Equal(t, 0, g.MaxOffset())
}

func TestComputerNextUsesStep(t *testing.T) {
	c := Computer{Slack: 1, Step: 12}
	require.Equal(t, 12, c.Next(Right, Geometry{Viewport: 20, Content: 100}))
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("Left")
	require.NoError(t, err)
	require.Equal(t, Left, d)

	d, err = ParseDirection("right")
	require.NoError(t, err)
	require.Equal(t, "right", d.String())

	_, err = ParseDirection("up")
	require.Error(t, err)
}
