// Package coords draws a coordinate grid and a pointer position readout onto
// a 2D drawing surface.
package coords

import (
	"fmt"

	"github.com/erdincmutlu/gridview/geom"
)

// Font describes the face used for text. Size is in logical pixels.
type Font struct {
	Family string
	Size   float64
}

// Monospace16 is the face used for axis labels and the pointer readout
var Monospace16 = Font{Family: "monospace", Size: 16}

func (f Font) String() string {
	return fmt.Sprintf("%gpx %s", f.Size, f.Family)
}

// Surface is the drawing target the grid and pointer render onto.
//
// Colors are CSS style names or hex strings; a surface decides how to
// resolve them. Text y coordinates are the alphabetic baseline.
type Surface interface {
	// Size returns the current drawable dimensions in pixels.
	Size() (width, height int)
	// Bounds returns the surface rectangle in host coordinates, used to
	// translate pointer positions into surface space.
	Bounds() geom.Rect
	Clear() error
	StrokeLine(start, end geom.Point, color string, width float64) error
	FillText(text string, x, y float64, font Font, color string) error
	MeasureText(text string, font Font) float64
}
