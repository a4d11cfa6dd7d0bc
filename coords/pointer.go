package coords

import (
	"fmt"

	"github.com/erdincmutlu/gridview/geom"
)

const (
	labelGapX  = 20
	labelBelow = 25
	labelAbove = -18
	defaultInk = "black"
)

// PointerState tells whether any pointer notification has arrived yet
type PointerState int

const (
	// Idle is the state before the first notification; position is (0, 0)
	Idle PointerState = iota
	// Tracking holds the position from the latest notification
	Tracking
)

func (s PointerState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Tracking:
		return "tracking"
	}
	return fmt.Sprintf("PointerState(%d)", int(s))
}

// Pointer tracks the last pointer position over a surface and draws it as
// a text readout next to the pointer.
type Pointer struct {
	surface Surface
	color   string
	font    Font

	x, y  int
	state PointerState
}

// NewPointer creates a pointer overlay drawing onto s. An empty color
// means black.
func NewPointer(s Surface, color string) *Pointer {
	if color == "" {
		color = defaultInk
	}
	return &Pointer{surface: s, color: color, font: Monospace16}
}

// Move records a pointer notification given in host coordinates. bounds is
// the surface rectangle in the same coordinate space.
func (p *Pointer) Move(client geom.Point, bounds geom.Rect) {
	p.x, p.y = geom.Pt(client.X-bounds.Left(), client.Y-bounds.Top()).Floor()
	p.state = Tracking
}

// Position returns the pointer position relative to the surface origin
func (p *Pointer) Position() (x, y int) {
	return p.x, p.y
}

// State returns Idle until the first Move
func (p *Pointer) State() PointerState {
	return p.state
}

// Label returns the readout text for the current position
func (p *Pointer) Label() string {
	return fmt.Sprintf("X: %d, Y: %d", p.x, p.y)
}

// LabelOffset returns where the readout goes relative to the pointer so
// it stays on a width x height surface. Left of center the label sits to
// the right of the pointer, right of center it sits to the left. Above
// center it hangs below the pointer, below center it sits above.
func (p *Pointer) LabelOffset(width, height int, textWidth float64) geom.Point {
	var off geom.Point
	if float64(p.x) < float64(width)/2 {
		off.X = labelGapX
	} else {
		off.X = -textWidth - labelGapX
	}
	if float64(p.y) < float64(height)/2 {
		off.Y = labelBelow
	} else {
		off.Y = labelAbove
	}
	return off
}

// Render draws the readout
func (p *Pointer) Render(width, height int) error {
	txt := p.Label()
	off := p.LabelOffset(width, height, p.surface.MeasureText(txt, p.font))
	return p.surface.FillText(txt, float64(p.x)+off.X, float64(p.y)+off.Y, p.font, p.color)
}
