package raster

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/erdincmutlu/gridview/coords"
	"github.com/erdincmutlu/gridview/geom"
)

// Snapshot describes a single headless frame
type Snapshot struct {
	Width, Height int
	Background    string
	Grid          coords.GridConfig
	PointerColor  string
	// Pointer, when set, is delivered as one pointer notification before
	// the frame is drawn
	Pointer *geom.Point
}

// Render draws the snapshot frame and returns the surface holding it
func (snap Snapshot) Render() (*Surface, error) {
	s, err := New(snap.Width, snap.Height, snap.Background)
	if err != nil {
		return nil, err
	}
	grid, err := coords.NewGrid(s, snap.Grid)
	if err != nil {
		return nil, err
	}
	pointer := coords.NewPointer(s, snap.PointerColor)
	if snap.Pointer != nil {
		bounds := s.Bounds()
		if !bounds.Contains(*snap.Pointer) {
			return nil, fmt.Errorf("pointer %v outside %vx%v surface", *snap.Pointer, bounds.Width, bounds.Height)
		}
		pointer.Move(*snap.Pointer, bounds)
	}
	if err := coords.NewFrame(s, grid, pointer).Draw(); err != nil {
		return nil, err
	}
	return s, nil
}

// WriteFile renders the snapshot and saves it as a PNG at path
func (snap Snapshot) WriteFile(path string) error {
	s, err := snap.Render()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.WritePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	slog.Info("Snapshot written.", "path", path, "width", snap.Width, "height", snap.Height)
	return nil
}
