package config

import (
	"fmt"
	"log/slog"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"golang.org/x/image/colornames"

	"github.com/erdincmutlu/gridview/palette"
)

type hclFile struct {
	Preset   *string      `hcl:"preset,optional"`
	Grid     *hclGrid     `hcl:"grid,block"`
	Pointer  *hclPointer  `hcl:"pointer,block"`
	Window   *hclWindow   `hcl:"window,block"`
	Terminal *hclTerminal `hcl:"terminal,block"`
}

type hclGrid struct {
	Color         *string  `hcl:"color,optional"`
	LineWidth     *float64 `hcl:"line_width,optional"`
	Step          *int     `hcl:"step,optional"`
	BoldInterval  *int     `hcl:"bold_interval,optional"`
	BoldColor     *string  `hcl:"bold_color,optional"`
	BoldLineWidth *float64 `hcl:"bold_line_width,optional"`
}

type hclPointer struct {
	Color *string `hcl:"color,optional"`
}

type hclWindow struct {
	Width      *int    `hcl:"width,optional"`
	Height     *int    `hcl:"height,optional"`
	Margin     *int    `hcl:"margin,optional"`
	Title      *string `hcl:"title,optional"`
	Background *string `hcl:"background,optional"`
}

type hclTerminal struct {
	CellWidth  *int `hcl:"cell_width,optional"`
	CellHeight *int `hcl:"cell_height,optional"`
	FPS        *int `hcl:"fps,optional"`
}

// Load reads the HCL file at path and applies it on top of base
func Load(path string, base Settings) (Settings, error) {
	slog.Debug("Loading settings file.", "path", path)
	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return Settings{}, fmt.Errorf("failed to parse settings file %s: %w", path, diags)
	}
	return decode(file, path, base)
}

// Parse is Load for in-memory source. filename is used in diagnostics.
func Parse(src []byte, filename string, base Settings) (Settings, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return Settings{}, fmt.Errorf("failed to parse settings file %s: %w", filename, diags)
	}
	return decode(file, filename, base)
}

func decode(file *hcl.File, filename string, base Settings) (Settings, error) {
	var parsed hclFile
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &parsed); diags.HasErrors() {
		return Settings{}, fmt.Errorf("failed to decode settings file %s: %w", filename, diags)
	}

	s := base
	if parsed.Preset != nil {
		grid, err := Preset(*parsed.Preset)
		if err != nil {
			return Settings{}, fmt.Errorf("%s: %w", filename, err)
		}
		s.Grid = grid
	}
	if g := parsed.Grid; g != nil {
		set(&s.Grid.Color, g.Color)
		set(&s.Grid.LineWidth, g.LineWidth)
		set(&s.Grid.Step, g.Step)
		set(&s.Grid.BoldInterval, g.BoldInterval)
		set(&s.Grid.BoldColor, g.BoldColor)
		set(&s.Grid.BoldLineWidth, g.BoldLineWidth)
	}
	if p := parsed.Pointer; p != nil {
		set(&s.Pointer.Color, p.Color)
	}
	if w := parsed.Window; w != nil {
		set(&s.Window.Width, w.Width)
		set(&s.Window.Height, w.Height)
		set(&s.Window.Margin, w.Margin)
		set(&s.Window.Title, w.Title)
		set(&s.Window.Background, w.Background)
	}
	if t := parsed.Terminal; t != nil {
		set(&s.Terminal.CellWidth, t.CellWidth)
		set(&s.Terminal.CellHeight, t.CellHeight)
		set(&s.Terminal.FPS, t.FPS)
	}

	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// evalContext exposes the CSS palette as colors.<name>
func evalContext() *hcl.EvalContext {
	colors := make(map[string]cty.Value, len(colornames.Map))
	for name, c := range colornames.Map {
		colors[name] = cty.StringVal(palette.Hex(c))
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"colors": cty.ObjectVal(colors),
		},
	}
}
