package geom

import "math"

// Point is a 2D coordinate in surface pixels
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Rect is an axis aligned rectangle. Origin is top left, Y grows downward.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Left returns the X position of the left side
func (r Rect) Left() float64 { return r.X }

// Right returns the X position of the right side
func (r Rect) Right() float64 { return r.X + r.Width }

// Top returns the Y position of the top side
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the Y position of the bottom side
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Area returns width * height
func (r Rect) Area() float64 { return r.Width * r.Height }

// Empty reports whether the rectangle covers no area
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X < r.Right() && p.Y >= r.Top() && p.Y < r.Bottom()
}

// Floor truncates both coordinates toward negative infinity
func (p Point) Floor() (x, y int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y))
}
