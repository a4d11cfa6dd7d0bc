package term

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/erdincmutlu/gridview/coords"
	"github.com/erdincmutlu/gridview/geom"
)

// Options configures a terminal host
type Options struct {
	CellWidth, CellHeight int
	FPS                   int
	Background            string
	PointerColor          string
	Grid                  coords.GridConfig
}

// Host runs the frame loop on a terminal screen. Events and frames are
// handled on the goroutine calling Run.
type Host struct {
	screen   tcell.Screen
	surface  *Surface
	pointer  *coords.Pointer
	frame    *coords.Frame
	interval time.Duration
}

// NewHost builds the grid and pointer on an initialized screen
func NewHost(screen tcell.Screen, opts Options) (*Host, error) {
	surface, err := NewSurface(screen, opts.CellWidth, opts.CellHeight, opts.Background)
	if err != nil {
		return nil, err
	}
	grid, err := coords.NewGrid(surface, opts.Grid)
	if err != nil {
		return nil, err
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = 30
	}
	pointer := coords.NewPointer(surface, opts.PointerColor)
	return &Host{
		screen:   screen,
		surface:  surface,
		pointer:  pointer,
		frame:    coords.NewFrame(surface, grid, pointer),
		interval: time.Second / time.Duration(fps),
	}, nil
}

// Pointer returns the overlay fed by mouse events
func (h *Host) Pointer() *coords.Pointer {
	return h.pointer
}

// Run draws frames until a quit key, a closed event stream or ctx is done
func (h *Host) Run(ctx context.Context) error {
	h.screen.EnableMouse(tcell.MouseMotionEvents)
	h.screen.HideCursor()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go h.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	w, hgt := h.surface.Size()
	slog.Info("Terminal host started.", "width", w, "height", hgt, "interval", h.interval)

	if err := h.DrawFrame(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || h.HandleEvent(ev) {
				slog.Info("Terminal host stopped.")
				return nil
			}
		case <-ticker.C:
			if err := h.DrawFrame(); err != nil {
				return err
			}
		}
	}
}

// HandleEvent applies one terminal event and reports whether the loop
// should stop
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return true
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return true
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		cw, ch := h.surface.CellSize()
		client := geom.Pt(float64(col*cw), float64(row*ch))
		bounds := h.surface.Bounds()
		if bounds.Contains(client) {
			h.pointer.Move(client, bounds)
		}
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return false
}

// DrawFrame renders one frame and flushes it to the terminal
func (h *Host) DrawFrame() error {
	if err := h.frame.Draw(); err != nil {
		return err
	}
	h.screen.Show()
	return nil
}
