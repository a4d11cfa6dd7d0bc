// Package palette turns CSS color strings into concrete colors.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrUnknownColor is returned for strings that are neither a CSS color
// name nor a #rgb/#rrggbb hex value
var ErrUnknownColor = errors.New("unknown color")

// Fallback is used by surfaces when a color cannot be resolved, matching a
// canvas whose style was never set
var Fallback = color.RGBA{A: 0xff}

// Resolve parses a CSS color name (case insensitive) or hex string
func Resolve(name string) (color.RGBA, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if c, ok := colornames.Map[key]; ok {
		return c, nil
	}
	if strings.HasPrefix(key, "#") {
		c, err := colorful.Hex(key)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, name)
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
	}
	return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}

// ResolveOr is Resolve with a fallback for unknown names
func ResolveOr(name string, fallback color.RGBA) color.RGBA {
	c, err := Resolve(name)
	if err != nil {
		return fallback
	}
	return c
}

// Hex formats c as #rrggbb
func Hex(c color.RGBA) string {
	cf, _ := colorful.MakeColor(color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
	return cf.Hex()
}

// Blend mixes fg over bg, t=0 yields bg and t=1 yields fg
func Blend(fg, bg color.RGBA, t float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))
	f, _ := colorful.MakeColor(opaque(fg))
	b, _ := colorful.MakeColor(opaque(bg))
	r, g, bl := b.BlendRgb(f, t).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 0xff}
}

// StrokeIntensity maps a stroke width onto how strongly a surface that can
// only draw whole cells should show it. Hairlines still show at a quarter.
func StrokeIntensity(width float64) float64 {
	return math.Max(0.25, math.Min(1, width*2))
}

func opaque(c color.RGBA) color.RGBA {
	c.A = 0xff
	return c
}
