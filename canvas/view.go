// Package canvas places the asset image inside the window and converts
// between screen and image pixels.
package canvas

import (
	"math"

	"github.com/OpticalFlyer/tagger/geom"
)

const (
	// MinZoom and MaxZoom bound the display pixels per image pixel
	MinZoom = 0.05
	MaxZoom = 32.0
	// ZoomStep is the factor applied per zoom in/out step
	ZoomStep = 1.25
	// fitMargin leaves a border around a fitted image
	fitMargin = 0.95
)

// View holds where the asset image is drawn on screen
type View struct {
	ScreenWidth  int
	ScreenHeight int
	Zoom         float64 // display pixels per image pixel
	OffsetX      float64 // screen position of the image's top-left corner
	OffsetY      float64

	image geom.Rect
}

// New creates a view with the image fitted into the screen
func New(screenWidth, screenHeight int, image geom.Rect) *View {
	v := &View{
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		image:        image,
	}
	v.Fit()
	return v
}

// ImageSize returns the size of the displayed image in image pixels
func (v *View) ImageSize() geom.Rect {
	return v.image
}

// SetImageSize replaces the image and fits it into the screen
func (v *View) SetImageSize(image geom.Rect) {
	v.image = image
	v.Fit()
}

// SetScreenSize updates the window size, keeping the image point at the
// screen center fixed
func (v *View) SetScreenSize(width, height int) {
	if width == v.ScreenWidth && height == v.ScreenHeight {
		return
	}
	v.OffsetX += float64(width-v.ScreenWidth) / 2
	v.OffsetY += float64(height-v.ScreenHeight) / 2
	v.ScreenWidth = width
	v.ScreenHeight = height
}

// Fit scales the image to fit the screen and centers it
func (v *View) Fit() {
	if v.image.Empty() || v.ScreenWidth <= 0 || v.ScreenHeight <= 0 {
		v.Zoom = 1
		v.OffsetX, v.OffsetY = 0, 0
		return
	}
	zoom := math.Min(float64(v.ScreenWidth)/v.image.Width, float64(v.ScreenHeight)/v.image.Height) * fitMargin
	v.Zoom = math.Max(MinZoom, math.Min(MaxZoom, zoom))
	v.OffsetX = (float64(v.ScreenWidth) - v.image.Width*v.Zoom) / 2
	v.OffsetY = (float64(v.ScreenHeight) - v.image.Height*v.Zoom) / 2
}

// ClientRect returns the image's position and displayed size on screen
func (v *View) ClientRect() (geom.Point2D, geom.Rect) {
	return geom.NewPoint2D(v.OffsetX, v.OffsetY),
		geom.NewRect(v.image.Width*v.Zoom, v.image.Height*v.Zoom)
}

// Transform returns the screen to image pixel transform
func (v *View) Transform() geom.Transform {
	origin, size := v.ClientRect()
	return geom.NewTransform(origin, size, v.image)
}

// ScreenToImage converts screen coordinates to image pixel coordinates
func (v *View) ScreenToImage(screenX, screenY float64) (x, y float64) {
	p := v.Transform().ToLocal(geom.NewPoint2D(screenX, screenY))
	return p.X, p.Y
}

// ZoomIn zooms one step around the screen center
func (v *View) ZoomIn() {
	v.ZoomAtPoint(true, float64(v.ScreenWidth)/2, float64(v.ScreenHeight)/2)
}

// ZoomOut zooms one step out around the screen center
func (v *View) ZoomOut() {
	v.ZoomAtPoint(false, float64(v.ScreenWidth)/2, float64(v.ScreenHeight)/2)
}

// ZoomAtPoint zooms while keeping the image point under (screenX, screenY)
// at the same screen location
func (v *View) ZoomAtPoint(zoomIn bool, screenX, screenY float64) {
	newZoom := v.Zoom / ZoomStep
	if zoomIn {
		newZoom = v.Zoom * ZoomStep
	}
	newZoom = math.Max(MinZoom, math.Min(MaxZoom, newZoom))
	if newZoom == v.Zoom {
		return
	}

	// Image point under the cursor before zooming
	imageX := (screenX - v.OffsetX) / v.Zoom
	imageY := (screenY - v.OffsetY) / v.Zoom

	v.Zoom = newZoom
	v.OffsetX = screenX - imageX*v.Zoom
	v.OffsetY = screenY - imageY*v.Zoom
}
