// Package raster implements an in-memory surface backed by an RGBA image.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/erdincmutlu/gridview/coords"
	"github.com/erdincmutlu/gridview/geom"
	"github.com/erdincmutlu/gridview/metrics"
	"github.com/erdincmutlu/gridview/palette"
)

// Surface draws into an *image.RGBA. Strokes are anti-aliased, so widths
// below one pixel come out as partial coverage.
type Surface struct {
	img        *image.RGBA
	background color.RGBA
	widths     *metrics.Widths
}

// New creates a width x height surface cleared to background
func New(width, height int, background string) (*Surface, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("invalid surface size %dx%d", width, height)
	}
	bg, err := palette.Resolve(background)
	if err != nil {
		return nil, err
	}
	widths, err := metrics.NewWidths(metrics.DefaultCacheSize)
	if err != nil {
		return nil, err
	}
	s := &Surface{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		background: bg,
		widths:     widths,
	}
	return s, s.Clear()
}

// Image returns the backing image
func (s *Surface) Image() *image.RGBA {
	return s.img
}

func (s *Surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) Bounds() geom.Rect {
	w, h := s.Size()
	return geom.Rect{Width: float64(w), Height: float64(h)}
}

func (s *Surface) Clear() error {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(s.background), image.Point{}, draw.Src)
	return nil
}

func (s *Surface) StrokeLine(start, end geom.Point, clr string, width float64) error {
	dx, dy := end.X-start.X, end.Y-start.Y
	length := math.Hypot(dx, dy)
	if width <= 0 || length == 0 {
		return nil
	}
	w, h := s.Size()
	if w == 0 || h == 0 {
		return nil
	}

	// unit normal scaled to half the stroke width
	nx, ny := -dy/length*width/2, dx/length*width/2

	r := vector.NewRasterizer(w, h)
	r.MoveTo(float32(start.X+nx), float32(start.Y+ny))
	r.LineTo(float32(end.X+nx), float32(end.Y+ny))
	r.LineTo(float32(end.X-nx), float32(end.Y-ny))
	r.LineTo(float32(start.X-nx), float32(start.Y-ny))
	r.ClosePath()
	r.Draw(s.img, s.img.Bounds(), image.NewUniform(palette.ResolveOr(clr, palette.Fallback)), image.Point{})
	return nil
}

func (s *Surface) FillText(text string, x, y float64, f coords.Font, clr string) error {
	d := font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(palette.ResolveOr(clr, palette.Fallback)),
		Face: metrics.Face(f),
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(text)
	return nil
}

func (s *Surface) MeasureText(text string, f coords.Font) float64 {
	return s.widths.Measure(text, f)
}

// WritePNG encodes the current image as PNG
func (s *Surface) WritePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}
