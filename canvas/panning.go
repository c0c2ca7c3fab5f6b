package canvas

import "math"

// PanDirection represents a direction to pan the image
type PanDirection int

const (
	PanLeft PanDirection = iota
	PanRight
	PanUp
	PanDown
)

// PanSpeed in pixels per frame
const PanSpeed = 20

// Pan moves the image in the specified direction by a fixed number of pixels
func (v *View) Pan(dir PanDirection) {
	switch dir {
	case PanLeft:
		v.PanBy(PanSpeed, 0)
	case PanRight:
		v.PanBy(-PanSpeed, 0)
	case PanUp:
		v.PanBy(0, PanSpeed)
	case PanDown:
		v.PanBy(0, -PanSpeed)
	}
}

// PanBy moves the image by screen pixel offsets. At least a quarter of the
// displayed image stays on screen.
func (v *View) PanBy(dx, dy float64) {
	w := v.image.Width * v.Zoom
	h := v.image.Height * v.Zoom

	minX := -w * 0.75
	maxX := float64(v.ScreenWidth) - w*0.25
	minY := -h * 0.75
	maxY := float64(v.ScreenHeight) - h*0.25

	v.OffsetX = math.Max(minX, math.Min(maxX, v.OffsetX+dx))
	v.OffsetY = math.Max(minY, math.Min(maxY, v.OffsetY+dy))
}
