package coords

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"github.com/erdincmutlu/gridview/geom"
)

const (
	labelBaseline = 15 // pixels below a bold line where its label sits
	originLabelX  = 1
)

// GridConfig holds the grid style. Step and BoldInterval are whole pixels
// and lines respectively.
type GridConfig struct {
	Color         string
	LineWidth     float64
	Step          int
	BoldInterval  int // every Nth line is bold
	BoldColor     string
	BoldLineWidth float64
	LabelFont     Font
}

// DefaultGridConfig returns a gray grid with a line every 25px and every
// 5th line bold
func DefaultGridConfig() GridConfig {
	return GridConfig{
		Color:         "gray",
		LineWidth:     0.25,
		Step:          25,
		BoldInterval:  5,
		BoldColor:     "darkgray",
		BoldLineWidth: 0.5,
		LabelFont:     Monospace16,
	}
}

// Configure builds a validated GridConfig from positional parameters
func Configure(color string, lineWidth float64, step, boldInterval int, boldColor string, boldLineWidth float64) (GridConfig, error) {
	cfg := GridConfig{
		Color:         color,
		LineWidth:     lineWidth,
		Step:          step,
		BoldInterval:  boldInterval,
		BoldColor:     boldColor,
		BoldLineWidth: boldLineWidth,
		LabelFont:     Monospace16,
	}
	if err := cfg.Validate(); err != nil {
		return GridConfig{}, err
	}
	return cfg, nil
}

// Validate checks the numeric parameters
func (c GridConfig) Validate() error {
	switch {
	case c.Step <= 0:
		return fmt.Errorf("%w: step must be positive, got %d", ErrInvalidConfig, c.Step)
	case c.BoldInterval <= 0:
		return fmt.Errorf("%w: bold interval must be a positive integer, got %d", ErrInvalidConfig, c.BoldInterval)
	case c.Step > math.MaxInt/c.BoldInterval:
		return fmt.Errorf("%w: step %d times bold interval %d overflows", ErrInvalidConfig, c.Step, c.BoldInterval)
	case c.LineWidth < 0 || c.BoldLineWidth < 0:
		return fmt.Errorf("%w: line widths must not be negative", ErrInvalidConfig)
	}
	return nil
}

// boldEvery is the pixel distance between bold lines
func (c GridConfig) boldEvery() int {
	return c.Step * c.BoldInterval
}

// Grid renders evenly spaced lines over a surface. The generated line set
// is cached for the surface dimensions it was built for.
type Grid struct {
	surface Surface
	cfg     GridConfig

	lines         []Line
	cached        bool
	width, height int
	generations   int
}

// NewGrid creates a grid drawing onto s
func NewGrid(s Surface, cfg GridConfig) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.LabelFont == (Font{}) {
		cfg.LabelFont = Monospace16
	}
	return &Grid{surface: s, cfg: cfg}, nil
}

// Config returns the grid style
func (g *Grid) Config() GridConfig {
	return g.cfg
}

// Generations returns how many times the line set has been built
func (g *Grid) Generations() int {
	return g.generations
}

// Lines returns the line set for a width x height surface, rebuilding it if
// the dimensions changed since the last call
func (g *Grid) Lines(width, height int) []Line {
	if !g.cached || width != g.width || height != g.height {
		g.generate(width, height)
	}
	return g.lines
}

func (g *Grid) generate(width, height int) {
	var lines []Line
	if width > 0 && height > 0 {
		w, h := float64(width), float64(height)
		lines = make([]Line, 0, countSteps(width, g.cfg.Step)+countSteps(height, g.cfg.Step))
		for x := 0; x < width; x += g.cfg.Step {
			fx := float64(x)
			lines = append(lines, g.line(x, geom.Pt(fx, 0), geom.Pt(fx, h)))
		}
		for y := 0; y < height; y += g.cfg.Step {
			fy := float64(y)
			lines = append(lines, g.line(y, geom.Pt(0, fy), geom.Pt(w, fy)))
		}
	}

	g.lines = lines
	g.width, g.height = width, height
	g.cached = true
	g.generations++

	slog.Debug("Grid lines generated.", "width", width, "height", height, "lines", len(g.lines))
}

// countSteps is ceil(length / step) for a positive length
func countSteps(length, step int) int {
	return (length-1)/step + 1
}

func (g *Grid) line(at int, start, end geom.Point) Line {
	if at%g.cfg.boldEvery() == 0 {
		return Line{Color: g.cfg.BoldColor, Width: g.cfg.BoldLineWidth, Start: start, End: end, Bold: true}
	}
	return Line{Color: g.cfg.Color, Width: g.cfg.LineWidth, Start: start, End: end}
}

// Render draws all lines and the axis labels
func (g *Grid) Render(width, height int) error {
	for _, l := range g.Lines(width, height) {
		if err := l.Draw(g.surface); err != nil {
			return err
		}
	}
	return g.drawLabels(width, height)
}

func (g *Grid) drawLabels(width, height int) error {
	font, color := g.cfg.LabelFont, g.cfg.BoldColor

	if err := g.surface.FillText("0", originLabelX, labelBaseline, font, color); err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return nil
	}

	every := g.cfg.boldEvery()
	for x := every; x < width; x += every {
		if err := g.surface.FillText(strconv.Itoa(x), float64(x), labelBaseline, font, color); err != nil {
			return err
		}
	}
	for y := every; y < height; y += every {
		if err := g.surface.FillText(strconv.Itoa(y), 0, float64(y+labelBaseline), font, color); err != nil {
			return err
		}
	}
	return nil
}
