package view

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten"

	"github.com/erdincmutlu/gridview/coords"
	"github.com/erdincmutlu/gridview/geom"
)

// ErrQuit is returned by Update when the user closes the program with Esc
var ErrQuit = errors.New("quit")

var (
	backgroundColor = color.RGBA{0xdc, 0xdc, 0xdc, 0xff}
)

// Options configures the windowed program
type Options struct {
	Board        Board
	Background   string
	PointerColor string
	Grid         coords.GridConfig
	Debug        bool
}

// Prog represent the window program state
type Prog struct {
	surface *Surface
	pointer *coords.Pointer
	frame   *coords.Frame
	debug   bool

	cursorX, cursorY int
}

// NewProg generates a new Prog object
func NewProg(opts Options) (*Prog, error) {
	origin := geom.Pt(float64(opts.Board.Margin), float64(opts.Board.Margin))
	surface, err := NewSurface(opts.Board.Width, opts.Board.Height, origin, opts.Background)
	if err != nil {
		return nil, err
	}
	grid, err := coords.NewGrid(surface, opts.Grid)
	if err != nil {
		return nil, err
	}
	pointer := coords.NewPointer(surface, opts.PointerColor)
	return &Prog{
		surface: surface,
		pointer: pointer,
		frame:   coords.NewFrame(surface, grid, pointer),
		debug:   opts.Debug,
		cursorX: -1,
		cursorY: -1,
	}, nil
}

// Update reads input for the next frame. Cursor movement over the surface
// is forwarded to the pointer overlay.
func (p *Prog) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ErrQuit
	}
	x, y := ebiten.CursorPosition()
	if x == p.cursorX && y == p.cursorY {
		return nil
	}
	p.cursorX, p.cursorY = x, y

	client := geom.Pt(float64(x), float64(y))
	if bounds := p.surface.Bounds(); bounds.Contains(client) {
		p.pointer.Move(client, bounds)
	}
	return nil
}

// Draw draws the current frame to the given screen
func (p *Prog) Draw(screen *ebiten.Image) error {
	if err := screen.Fill(backgroundColor); err != nil {
		return err
	}
	if err := p.frame.Draw(); err != nil {
		return err
	}
	if err := p.surface.drawTo(screen); err != nil {
		return err
	}
	if p.debug {
		return drawDebug(screen, p.pointer)
	}
	return nil
}
