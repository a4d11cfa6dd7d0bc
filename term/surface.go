// Package term renders the grid into a terminal. Every cell stands in for a
// block of CellWidth x CellHeight pixels so grid settings mean the same
// thing here as in a window.
package term

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/erdincmutlu/gridview/coords"
	"github.com/erdincmutlu/gridview/geom"
	"github.com/erdincmutlu/gridview/palette"
)

// heavyStroke is the narrowest width drawn with heavy box glyphs
const heavyStroke = 0.5

type cell struct{ col, row int }

// strokes drawn through a cell during the current frame
type stroke uint8

const (
	vertical stroke = 1 << iota
	horizontal
	heavyVertical
	heavyHorizontal
	diagonal
)

func (s stroke) glyph() rune {
	v, h := s&vertical != 0, s&horizontal != 0
	hv, hh := s&heavyVertical != 0, s&heavyHorizontal != 0
	switch {
	case v && h:
		switch {
		case hv && hh:
			return '╋'
		case hv:
			return '╂'
		case hh:
			return '┿'
		}
		return '┼'
	case v:
		if hv {
			return '┃'
		}
		return '│'
	case h:
		if hh {
			return '━'
		}
		return '─'
	}
	return '·'
}

// Surface draws onto a tcell screen
type Surface struct {
	screen       tcell.Screen
	cellW, cellH int
	background   color.RGBA
	strokes      map[cell]stroke
}

// NewSurface wraps screen. cellW and cellH give the pixel size of one cell.
func NewSurface(screen tcell.Screen, cellW, cellH int, background string) (*Surface, error) {
	if cellW <= 0 || cellH <= 0 {
		return nil, fmt.Errorf("invalid cell size %dx%d", cellW, cellH)
	}
	bg, err := palette.Resolve(background)
	if err != nil {
		return nil, err
	}
	return &Surface{
		screen:     screen,
		cellW:      cellW,
		cellH:      cellH,
		background: bg,
		strokes:    make(map[cell]stroke),
	}, nil
}

// CellSize returns the pixel size of one cell
func (s *Surface) CellSize() (w, h int) {
	return s.cellW, s.cellH
}

func (s *Surface) Size() (int, int) {
	cols, rows := s.screen.Size()
	return cols * s.cellW, rows * s.cellH
}

func (s *Surface) Bounds() geom.Rect {
	w, h := s.Size()
	return geom.Rect{Width: float64(w), Height: float64(h)}
}

func (s *Surface) Clear() error {
	s.screen.Fill(' ', s.style(s.background))
	clear(s.strokes)
	return nil
}

func (s *Surface) StrokeLine(start, end geom.Point, clr string, width float64) error {
	if width <= 0 {
		return nil
	}
	fg := palette.Blend(palette.ResolveOr(clr, palette.Fallback), s.background, palette.StrokeIntensity(width))
	heavy := width >= heavyStroke

	switch {
	case start.X == end.X:
		col := s.col(start.X)
		from, to := span(start.Y, end.Y, s.cellH)
		mark := vertical
		if heavy {
			mark |= heavyVertical
		}
		for row := from; row <= to; row++ {
			s.mark(cell{col, row}, mark, fg)
		}
	case start.Y == end.Y:
		row := s.row(start.Y)
		from, to := span(start.X, end.X, s.cellW)
		mark := horizontal
		if heavy {
			mark |= heavyHorizontal
		}
		for col := from; col <= to; col++ {
			s.mark(cell{col, row}, mark, fg)
		}
	default:
		c0 := cell{s.col(start.X), s.row(start.Y)}
		c1 := cell{s.col(end.X), s.row(end.Y)}
		n := max(abs(c1.col-c0.col), abs(c1.row-c0.row))
		for i := 0; i <= n; i++ {
			t := float64(i) / float64(max(n, 1))
			c := cell{
				col: c0.col + int(math.Round(t*float64(c1.col-c0.col))),
				row: c0.row + int(math.Round(t*float64(c1.row-c0.row))),
			}
			s.mark(c, diagonal, fg)
		}
	}
	return nil
}

// FillText writes text on the cell row just above the baseline, so with
// 16px cells a baseline at y=15 lands on row 0.
func (s *Surface) FillText(text string, x, y float64, _ coords.Font, clr string) error {
	row := int(math.Ceil(y/float64(s.cellH))) - 1
	col := s.col(x)
	style := s.style(palette.ResolveOr(clr, palette.Fallback))
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if s.inside(cell{col, row}) {
			delete(s.strokes, cell{col, row})
			s.screen.SetContent(col, row, r, nil, style)
		}
		col += w
	}
	return nil
}

func (s *Surface) MeasureText(text string, _ coords.Font) float64 {
	return float64(runewidth.StringWidth(text) * s.cellW)
}

func (s *Surface) mark(c cell, mark stroke, fg color.RGBA) {
	if !s.inside(c) {
		return
	}
	merged := s.strokes[c] | mark
	s.strokes[c] = merged
	s.screen.SetContent(c.col, c.row, merged.glyph(), nil, s.style(fg))
}

func (s *Surface) inside(c cell) bool {
	cols, rows := s.screen.Size()
	return c.col >= 0 && c.col < cols && c.row >= 0 && c.row < rows
}

func (s *Surface) col(x float64) int {
	return int(math.Floor(x / float64(s.cellW)))
}

func (s *Surface) row(y float64) int {
	return int(math.Floor(y / float64(s.cellH)))
}

func (s *Surface) style(fg color.RGBA) tcell.Style {
	return tcell.StyleDefault.
		Foreground(rgb(fg)).
		Background(rgb(s.background))
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// span returns the first and last cell index covered by [a, b]
func span(a, b float64, size int) (from, to int) {
	lo, hi := math.Min(a, b), math.Max(a, b)
	from = int(math.Floor(lo / float64(size)))
	to = int(math.Ceil(hi/float64(size))) - 1
	if to < from {
		to = from
	}
	return from, to
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
