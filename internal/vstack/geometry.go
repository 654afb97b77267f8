package vstack

// Point is a position in panel coordinates.
type Point struct {
	X, Y float64
}

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// Empty reports whether either dimension is zero or negative.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// Bottom returns the Y coordinate just past the rectangle.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}
