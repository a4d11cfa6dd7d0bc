// Package metrics picks font faces for coords fonts and measures text with
// them.
package metrics

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/inconsolata"

	"github.com/erdincmutlu/gridview/coords"
)

// DefaultCacheSize is large enough for a screenful of axis labels plus the
// pointer readouts of a few seconds of movement
const DefaultCacheSize = 512

// Face returns the bitmap face closest to f. Only monospace faces are
// available; anything below 14px gets the 7x13 face.
func Face(f coords.Font) font.Face {
	if f.Size > 0 && f.Size < 14 {
		return basicfont.Face7x13
	}
	if strings.Contains(strings.ToLower(f.Family), "bold") {
		return inconsolata.Bold8x16
	}
	return inconsolata.Regular8x16
}

type key struct {
	font coords.Font
	text string
}

// Widths caches text advance widths in pixels
type Widths struct {
	cache *lru.Cache[key, float64]
}

// NewWidths creates a width cache holding up to size entries
func NewWidths(size int) (*Widths, error) {
	cache, err := lru.New[key, float64](size)
	if err != nil {
		return nil, err
	}
	return &Widths{cache: cache}, nil
}

// Measure returns the advance width of text in f
func (w *Widths) Measure(text string, f coords.Font) float64 {
	k := key{font: f, text: text}
	if v, ok := w.cache.Get(k); ok {
		return v
	}
	v := float64(font.MeasureString(Face(f), text)) / 64
	w.cache.Add(k, v)
	return v
}

// Len returns the number of cached entries
func (w *Widths) Len() int {
	return w.cache.Len()
}
