package geom

// Rect is a size with an implicit origin at (0, 0). It describes both the
// bound rect of a selector and the pixel dimensions of an asset.
type Rect struct {
	Width, Height float64
}

// NewRect creates a new rect
func NewRect(width, height float64) Rect {
	return Rect{Width: width, Height: height}
}

// Contains reports whether p lies inside the rect, edges included
func (r Rect) Contains(p Point2D) bool {
	return p.X >= 0 && p.X <= r.Width &&
		p.Y >= 0 && p.Y <= r.Height
}

// Empty reports whether the rect has no area
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}
