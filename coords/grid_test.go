package coords

import (
	"math"
	"testing"

	"github.com/erdincmutlu/gridview/geom"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGrid(t *testing.T, s Surface, cfg GridConfig) *Grid {
	t.Helper()
	g, err := NewGrid(s, cfg)
	require.NoError(t, err)
	return g
}

func verticals(lines []Line) []Line {
	var out []Line
	for _, l := range lines {
		if l.Vertical() {
			out = append(out, l)
		}
	}
	return out
}

func TestDefaultGridConfig(t *testing.T) {
	cfg := DefaultGridConfig()

	assert.Equal(t, "gray", cfg.Color)
	assert.Equal(t, 0.25, cfg.LineWidth)
	assert.Equal(t, 25, cfg.Step)
	assert.Equal(t, 5, cfg.BoldInterval)
	assert.Equal(t, "darkgray", cfg.BoldColor)
	assert.Equal(t, 0.5, cfg.BoldLineWidth)
	assert.Equal(t, Monospace16, cfg.LabelFont)
	assert.NoError(t, cfg.Validate())
}

func TestConfigure_Rejects(t *testing.T) {
	tests := []struct {
		name         string
		step         int
		boldInterval int
		lineWidth    float64
	}{
		{"zero step", 0, 5, 0.25},
		{"negative step", -25, 5, 0.25},
		{"zero bold interval", 25, 0, 0.25},
		{"negative bold interval", 25, -1, 0.25},
		{"negative line width", 25, 5, -1},
		{"bold spacing overflows", 1 << 62, 2, 0.25},
		{"bold spacing wraps to zero", 1 << 32, 1 << 32, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Configure("gray", tt.lineWidth, tt.step, tt.boldInterval, "darkgray", 0.5)
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Equal(t, GridConfig{}, cfg)
		})
	}
}

func TestGrid_HugeSpacing(t *testing.T) {
	tests := []struct {
		name         string
		step         int
		boldInterval int
	}{
		{"largest bold spacing", math.MaxInt / 2, 2},
		{"largest step", math.MaxInt, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Configure("gray", 0.25, tt.step, tt.boldInterval, "darkgray", 0.5)
			require.NoError(t, err)
			rec := newRecorder(100, 100)
			g := mustGrid(t, rec, cfg)

			require.NoError(t, g.Render(100, 100))

			assert.Len(t, g.Lines(100, 100), 2)
			require.Len(t, rec.texts, 1)
			assert.Equal(t, "0", rec.texts[0].Text)
		})
	}
}

func TestNewGrid_InvalidConfig(t *testing.T) {
	cfg := DefaultGridConfig()
	cfg.Step = 0

	g, err := NewGrid(newRecorder(100, 100), cfg)
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Nil(t, g)
}

func TestGrid_ConcreteScenario(t *testing.T) {
	cfg, err := Configure("gray", 0.25, 50, 2, "darkgray", 0.5)
	require.NoError(t, err)
	rec := newRecorder(200, 100)
	g := mustGrid(t, rec, cfg)

	require.NoError(t, g.Render(200, 100))

	bold := Line{Color: "darkgray", Width: 0.5, Bold: true}
	thin := Line{Color: "gray", Width: 0.25}
	at := func(style Line, x1, y1, x2, y2 float64) Line {
		style.Start, style.End = geom.Pt(x1, y1), geom.Pt(x2, y2)
		return style
	}
	want := []Line{
		at(bold, 0, 0, 0, 100),
		at(thin, 50, 0, 50, 100),
		at(bold, 100, 0, 100, 100),
		at(thin, 150, 0, 150, 100),
		at(bold, 0, 0, 200, 0),
		at(thin, 0, 50, 200, 50),
	}
	if diff := cmp.Diff(want, g.Lines(200, 100)); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}

	require.Len(t, rec.strokes, len(want))
	for i, l := range want {
		assert.Equal(t, strokeCall{Start: l.Start, End: l.End, Color: l.Color, Width: l.Width}, rec.strokes[i])
	}

	wantTexts := []textCall{
		{Text: "0", X: 1, Y: 15, Font: Monospace16, Color: "darkgray"},
		{Text: "100", X: 100, Y: 15, Font: Monospace16, Color: "darkgray"},
	}
	if diff := cmp.Diff(wantTexts, rec.texts); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestGrid_HorizontalLabels(t *testing.T) {
	rec := newRecorder(100, 300)
	g := mustGrid(t, rec, GridConfig{Color: "gray", LineWidth: 1, Step: 50, BoldInterval: 2, BoldColor: "black", BoldLineWidth: 2})

	require.NoError(t, g.Render(100, 300))

	want := []textCall{
		{Text: "0", X: 1, Y: 15, Font: Monospace16, Color: "black"},
		{Text: "100", X: 0, Y: 115, Font: Monospace16, Color: "black"},
		{Text: "200", X: 0, Y: 215, Font: Monospace16, Color: "black"},
	}
	assert.Equal(t, want, rec.texts)
}

func TestGrid_VerticalLineCount(t *testing.T) {
	for _, step := range []int{1, 3, 7, 25, 50, 64} {
		for _, width := range []int{0, 1, 24, 25, 26, 99, 100, 101, 640} {
			g := mustGrid(t, newRecorder(width, 10), GridConfig{Step: step, BoldInterval: 5})
			got := len(verticals(g.Lines(width, 10)))
			want := int(math.Ceil(float64(width) / float64(step)))
			assert.Equal(t, want, got, "step=%d width=%d", step, width)
		}
	}
}

func TestGrid_BoldClassification(t *testing.T) {
	cfg := GridConfig{Color: "c", LineWidth: 1, Step: 7, BoldInterval: 3, BoldColor: "b", BoldLineWidth: 2}
	g := mustGrid(t, newRecorder(500, 300), cfg)

	for _, l := range g.Lines(500, 300) {
		at := l.Start.Y
		if l.Vertical() {
			at = l.Start.X
		}
		multiple := int(at)%(cfg.Step*cfg.BoldInterval) == 0
		assert.Equal(t, multiple, l.Bold, "line at %v", at)
		if l.Bold {
			assert.Equal(t, "b", l.Color)
			assert.Equal(t, 2.0, l.Width)
		} else {
			assert.Equal(t, "c", l.Color)
			assert.Equal(t, 1.0, l.Width)
		}
	}
}

func TestGrid_PartialTrailingStep(t *testing.T) {
	g := mustGrid(t, newRecorder(110, 60), GridConfig{Step: 50, BoldInterval: 2})

	lines := verticals(g.Lines(110, 60))
	require.Len(t, lines, 3)
	assert.Equal(t, 100.0, lines[2].Start.X, "last line is the last step before the edge")
}

func TestGrid_CacheReused(t *testing.T) {
	rec := newRecorder(200, 100)
	g := mustGrid(t, rec, DefaultGridConfig())

	require.NoError(t, g.Render(200, 100))
	first := g.Lines(200, 100)
	require.NoError(t, g.Render(200, 100))

	assert.Equal(t, 1, g.Generations())
	assert.Equal(t, first, g.Lines(200, 100))
}

func TestGrid_CacheInvalidatedOnResize(t *testing.T) {
	g := mustGrid(t, newRecorder(200, 100), GridConfig{Step: 50, BoldInterval: 2})

	require.NoError(t, g.Render(200, 100))
	before := g.Lines(200, 100)
	require.NoError(t, g.Render(300, 100))
	after := g.Lines(300, 100)

	assert.Equal(t, 2, g.Generations())
	assert.Len(t, verticals(before), 4)
	assert.Len(t, verticals(after), 6)
	assert.Len(t, verticals(before), 4, "earlier line set is left untouched")

	require.NoError(t, g.Render(300, 150))
	assert.Equal(t, 3, g.Generations())
}

func TestGrid_DegenerateSurface(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 100},
		{"zero height", 100, 0},
		{"zero area", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newRecorder(tt.width, tt.height)
			g := mustGrid(t, rec, GridConfig{Step: 10, BoldInterval: 1, BoldColor: "darkgray"})

			require.NoError(t, g.Render(tt.width, tt.height))

			assert.Empty(t, g.Lines(tt.width, tt.height))
			assert.Empty(t, rec.strokes)
			require.Len(t, rec.texts, 1)
			assert.Equal(t, "0", rec.texts[0].Text)
		})
	}
}

func TestGrid_SurfaceErrorPropagates(t *testing.T) {
	for _, op := range []string{"stroke", "text"} {
		t.Run(op, func(t *testing.T) {
			rec := newRecorder(100, 100)
			rec.failOn = op
			g := mustGrid(t, rec, DefaultGridConfig())

			assert.ErrorIs(t, g.Render(100, 100), errSurfaceLost)
		})
	}
}
