package coords

import (
	"errors"

	"github.com/erdincmutlu/gridview/geom"
)

type strokeCall struct {
	Start, End geom.Point
	Color      string
	Width      float64
}

type textCall struct {
	Text  string
	X, Y  float64
	Font  Font
	Color string
}

// recorder is a Surface that remembers every call in order
type recorder struct {
	width, height int
	origin        geom.Point
	charWidth     float64

	ops     []string
	strokes []strokeCall
	texts   []textCall
	clears  int

	failOn string
}

var errSurfaceLost = errors.New("surface lost")

func newRecorder(width, height int) *recorder {
	return &recorder{width: width, height: height, charWidth: 8}
}

func (r *recorder) Size() (int, int) { return r.width, r.height }

func (r *recorder) Bounds() geom.Rect {
	return geom.Rect{X: r.origin.X, Y: r.origin.Y, Width: float64(r.width), Height: float64(r.height)}
}

func (r *recorder) Clear() error {
	r.ops = append(r.ops, "clear")
	if r.failOn == "clear" {
		return errSurfaceLost
	}
	r.clears++
	return nil
}

func (r *recorder) StrokeLine(start, end geom.Point, color string, width float64) error {
	r.ops = append(r.ops, "stroke")
	if r.failOn == "stroke" {
		return errSurfaceLost
	}
	r.strokes = append(r.strokes, strokeCall{Start: start, End: end, Color: color, Width: width})
	return nil
}

func (r *recorder) FillText(text string, x, y float64, font Font, color string) error {
	r.ops = append(r.ops, "text")
	if r.failOn == "text" {
		return errSurfaceLost
	}
	r.texts = append(r.texts, textCall{Text: text, X: x, Y: y, Font: font, Color: color})
	return nil
}

func (r *recorder) MeasureText(text string, font Font) float64 {
	r.ops = append(r.ops, "measure")
	return float64(len(text)) * r.charWidth
}
