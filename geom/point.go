package geom

import "math"

// Point2D is a point or offset in a 2D coordinate space
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPoint2D creates a new point
func NewPoint2D(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Add returns the sum of two points
func (p Point2D) Add(other Point2D) Point2D {
	return Point2D{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference between two points
func (p Point2D) Sub(other Point2D) Point2D {
	return Point2D{X: p.X - other.X, Y: p.Y - other.Y}
}

// Distance returns the euclidean distance between two points
func (p Point2D) Distance(other Point2D) float64 {
	d := p.Sub(other)
	return math.Sqrt(d.X*d.X + d.Y*d.Y)
}

// BoundToRect clamps the point into [0, r.Width] x [0, r.Height]
func (p Point2D) BoundToRect(r Rect) Point2D {
	return Point2D{
		X: math.Max(0, math.Min(r.Width, p.X)),
		Y: math.Max(0, math.Min(r.Height, p.Y)),
	}
}

// IsFinite reports whether both coordinates are finite numbers
func (p Point2D) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
