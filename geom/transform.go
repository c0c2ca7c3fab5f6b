package geom

// Transform maps client (screen) coordinates onto the local coordinate
// space of a selector's bound rect and back.
type Transform struct {
	Origin Point2D // client position of the bound rect's top-left corner
	ScaleX float64 // local units per client pixel
	ScaleY float64
}

// NewTransform builds the transform for a surface whose bound rect is
// displayed at origin with the given client size.
//
// Parameters:
//   - origin: client coordinates of the surface's top-left corner
//   - client: size of the surface in client pixels
//   - bound: size of the surface in local units (e.g. image pixels)
//
// A zero client dimension falls back to a scale of 1 on that axis.
func NewTransform(origin Point2D, client, bound Rect) Transform {
	t := Transform{Origin: origin, ScaleX: 1, ScaleY: 1}
	if client.Width > 0 {
		t.ScaleX = bound.Width / client.Width
	}
	if client.Height > 0 {
		t.ScaleY = bound.Height / client.Height
	}
	return t
}

// ToLocal converts a client point to local coordinates
func (t Transform) ToLocal(p Point2D) Point2D {
	return Point2D{
		X: (p.X - t.Origin.X) * t.ScaleX,
		Y: (p.Y - t.Origin.Y) * t.ScaleY,
	}
}

// ToClient converts a local point to client coordinates
func (t Transform) ToClient(p Point2D) Point2D {
	if t.ScaleX == 0 || t.ScaleY == 0 {
		return t.Origin
	}
	return Point2D{
		X: p.X/t.ScaleX + t.Origin.X,
		Y: p.Y/t.ScaleY + t.Origin.Y,
	}
}

// SizeToClient converts a local size to client pixels
func (t Transform) SizeToClient(r Rect) Rect {
	if t.ScaleX == 0 || t.ScaleY == 0 {
		return Rect{}
	}
	return Rect{Width: r.Width / t.ScaleX, Height: r.Height / t.ScaleY}
}
