package coords

// Frame draws one animation frame: clear, grid, then pointer readout on top.
type Frame struct {
	surface Surface
	grid    *Grid
	pointer *Pointer
}

// NewFrame ties a grid and pointer to the surface they share
func NewFrame(s Surface, grid *Grid, pointer *Pointer) *Frame {
	return &Frame{surface: s, grid: grid, pointer: pointer}
}

// Draw renders a frame at the surface's current size. The first surface
// error stops the frame and is returned as is.
func (f *Frame) Draw() error {
	w, h := f.surface.Size()
	if err := f.surface.Clear(); err != nil {
		return err
	}
	if err := f.grid.Render(w, h); err != nil {
		return err
	}
	return f.pointer.Render(w, h)
}
