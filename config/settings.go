package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/erdincmutlu/gridview/coords"
	"github.com/erdincmutlu/gridview/palette"
)

// ErrUnknownPreset is returned for a preset name that is not registered
var ErrUnknownPreset = errors.New("unknown preset")

// Settings is everything the hosts need to build a grid and pointer
type Settings struct {
	Grid     coords.GridConfig
	Pointer  PointerSettings
	Window   WindowSettings
	Terminal TerminalSettings
}

// PointerSettings styles the pointer readout
type PointerSettings struct {
	Color string
}

// WindowSettings sizes the surface used by the window and PNG hosts
type WindowSettings struct {
	Width, Height int
	Margin        int
	Title         string
	Background    string
}

// TerminalSettings maps terminal cells to pixels
type TerminalSettings struct {
	CellWidth, CellHeight int
	FPS                   int
}

// Default returns the settings used when nothing is configured
func Default() Settings {
	return Settings{
		Grid:    coords.DefaultGridConfig(),
		Pointer: PointerSettings{Color: "black"},
		Window: WindowSettings{
			Width:      800,
			Height:     600,
			Margin:     20,
			Title:      "gridview",
			Background: "white",
		},
		Terminal: TerminalSettings{CellWidth: 8, CellHeight: 16, FPS: 30},
	}
}

var presets = map[string]func() coords.GridConfig{
	"default": coords.DefaultGridConfig,
	"gray50": func() coords.GridConfig {
		cfg := coords.DefaultGridConfig()
		cfg.Step, cfg.BoldInterval = 50, 2
		return cfg
	},
	"pink": func() coords.GridConfig {
		return coords.GridConfig{
			Color:         "deeppink",
			LineWidth:     0.25,
			Step:          50,
			BoldInterval:  2,
			BoldColor:     "darkviolet",
			BoldLineWidth: 1,
			LabelFont:     coords.Monospace16,
		}
	},
}

// Preset returns a named grid style
func Preset(name string) (coords.GridConfig, error) {
	fn, ok := presets[strings.ToLower(name)]
	if !ok {
		return coords.GridConfig{}, fmt.Errorf("%w %q, have %s", ErrUnknownPreset, name, strings.Join(PresetNames(), ", "))
	}
	return fn(), nil
}

// PresetNames lists the registered presets in sorted order
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks the grid numbers, every color and the sizes
func (s Settings) Validate() error {
	if err := s.Grid.Validate(); err != nil {
		return err
	}
	colors := map[string]string{
		"grid.color":        s.Grid.Color,
		"grid.bold_color":   s.Grid.BoldColor,
		"pointer.color":     s.Pointer.Color,
		"window.background": s.Window.Background,
	}
	for field, value := range colors {
		if _, err := palette.Resolve(value); err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
	}
	if s.Window.Width < 0 || s.Window.Height < 0 || s.Window.Margin < 0 {
		return fmt.Errorf("window size must not be negative, got %dx%d margin %d", s.Window.Width, s.Window.Height, s.Window.Margin)
	}
	if s.Terminal.CellWidth <= 0 || s.Terminal.CellHeight <= 0 {
		return fmt.Errorf("terminal cell size must be positive, got %dx%d", s.Terminal.CellWidth, s.Terminal.CellHeight)
	}
	if s.Terminal.FPS <= 0 {
		return fmt.Errorf("terminal fps must be positive, got %d", s.Terminal.FPS)
	}
	return nil
}
