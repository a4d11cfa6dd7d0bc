package view

import (
	"image/color"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/text"

	"github.com/erdincmutlu/gridview/coords"
	"github.com/erdincmutlu/gridview/geom"
	"github.com/erdincmutlu/gridview/metrics"
	"github.com/erdincmutlu/gridview/palette"
)

// Surface is an offscreen ebiten image placed at origin inside the window
type Surface struct {
	img        *ebiten.Image
	origin     geom.Point
	background color.RGBA
	widths     *metrics.Widths
}

// NewSurface creates a width x height offscreen surface
func NewSurface(width, height int, origin geom.Point, background string) (*Surface, error) {
	bg, err := palette.Resolve(background)
	if err != nil {
		return nil, err
	}
	img, err := ebiten.NewImage(width, height, ebiten.FilterDefault)
	if err != nil {
		return nil, err
	}
	widths, err := metrics.NewWidths(metrics.DefaultCacheSize)
	if err != nil {
		return nil, err
	}
	return &Surface{img: img, origin: origin, background: bg, widths: widths}, nil
}

func (s *Surface) Size() (int, int) {
	return s.img.Size()
}

// Bounds is given in window coordinates
func (s *Surface) Bounds() geom.Rect {
	w, h := s.img.Size()
	return geom.Rect{X: s.origin.X, Y: s.origin.Y, Width: float64(w), Height: float64(h)}
}

func (s *Surface) Clear() error {
	return s.img.Fill(s.background)
}

func (s *Surface) StrokeLine(start, end geom.Point, clr string, width float64) error {
	if width <= 0 {
		return nil
	}
	c := palette.ResolveOr(clr, palette.Fallback)
	switch {
	case start.X == end.X:
		y0, y1 := start.Y, end.Y
		if y1 < y0 {
			y0, y1 = y1, y0
		}
		ebitenutil.DrawRect(s.img, start.X-width/2, y0, width, y1-y0, c)
	case start.Y == end.Y:
		x0, x1 := start.X, end.X
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		ebitenutil.DrawRect(s.img, x0, start.Y-width/2, x1-x0, width, c)
	default:
		ebitenutil.DrawLine(s.img, start.X, start.Y, end.X, end.Y, c)
	}
	return nil
}

func (s *Surface) FillText(str string, x, y float64, f coords.Font, clr string) error {
	text.Draw(s.img, str, metrics.Face(f), int(x), int(y), palette.ResolveOr(clr, palette.Fallback))
	return nil
}

func (s *Surface) MeasureText(str string, f coords.Font) float64 {
	return s.widths.Measure(str, f)
}

func (s *Surface) drawTo(screen *ebiten.Image) error {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(s.origin.X, s.origin.Y)
	return screen.DrawImage(s.img, op)
}
