package coords

import "github.com/erdincmutlu/gridview/geom"

// Line is a single stroked segment of the grid
type Line struct {
	Color string
	Width float64
	Start geom.Point
	End   geom.Point
	Bold  bool
}

// Draw strokes the line onto s
func (l Line) Draw(s Surface) error {
	return s.StrokeLine(l.Start, l.End, l.Color, l.Width)
}

// Vertical reports whether the line runs along the Y axis
func (l Line) Vertical() bool {
	return l.Start.X == l.End.X
}
