package geometry

import "math"

// NoCell is the sentinel index for "unresolved or outside the row".
const NoCell = -1

// Point is a single coordinate in host space.
type Point struct {
	X float64
	Y float64
}

// Box is an axis-aligned rectangle plus the last known pointer position
// associated with the snapshot.
type Box struct {
	Top    float64
	Left   float64
	Right  float64
	Bottom float64

	// X and Y are the pointer position at the time the box was captured.
	X float64
	Y float64
}

// Point returns the pointer position carried by the box.
func (b Box) Point() Point {
	return Point{X: b.X, Y: b.Y}
}

// Width returns the horizontal extent, or 0 for an inverted box.
func (b Box) Width() float64 {
	if b.Right <= b.Left {
		return 0
	}
	return b.Right - b.Left
}

// Height returns the vertical extent, or 0 for an inverted box.
func (b Box) Height() float64 {
	if b.Bottom <= b.Top {
		return 0
	}
	return b.Bottom - b.Top
}

// PointBox returns a zero-area box at p.
func PointBox(p Point) Box {
	return Box{Top: p.Y, Left: p.X, Right: p.X, Bottom: p.Y, X: p.X, Y: p.Y}
}

// BoxFromPoints returns the rectangle spanned by a and b. The pointer
// position of the result is b.
func BoxFromPoints(a, b Point) Box {
	return Box{
		Top:    math.Min(a.Y, b.Y),
		Left:   math.Min(a.X, b.X),
		Right:  math.Max(a.X, b.X),
		Bottom: math.Max(a.Y, b.Y),
		X:      b.X,
		Y:      b.Y,
	}
}

// Intersects reports whether two boxes overlap. Edges are inclusive, so a
// zero-area box on the border of another still intersects it.
func Intersects(a, b Box) bool {
	return a.Left <= b.Right && a.Right >= b.Left &&
		a.Top <= b.Bottom && a.Bottom >= b.Top
}

// PointInBox reports whether p lies within box, edges included.
func PointInBox(box Box, p Point) bool {
	return box.Left <= p.X && p.X <= box.Right &&
		box.Top <= p.Y && p.Y <= box.Bottom
}

// inRowBand reports whether y lies within the row's vertical extent.
func inRowBand(row Box, y float64) bool {
	return row.Top <= y && y <= row.Bottom
}
