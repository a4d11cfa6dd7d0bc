package view

// Board is the layout of the window: the grid surface inset by a margin on
// every side
type Board struct {
	Width  int // surface width
	Height int // surface height
	Margin int
}

// WindowSize returns the window dimensions holding the board
func (b Board) WindowSize() (width, height int) {
	return b.Width + 2*b.Margin, b.Height + 2*b.Margin
}
