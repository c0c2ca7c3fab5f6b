// Package selector implements the interactive region-selection state
// machines. A selector turns pointer and keyboard events into committed
// geom.RegionData values, reported through Callbacks.
package selector

import (
	"github.com/OpticalFlyer/tagger/event"
	"github.com/OpticalFlyer/tagger/frame"
	"github.com/OpticalFlyer/tagger/geom"
	"github.com/OpticalFlyer/tagger/scene"
)

// Selector is the common contract of every selection strategy
type Selector interface {
	Resize(width, height float64)
	Show()
	Hide()
	Enabled() bool
	Layer() *scene.Layer
}

// Callbacks are the only way information leaves a selector. Both hooks
// are optional.
type Callbacks struct {
	OnSelectionBegin func()
	OnSelectionEnd   func(region geom.RegionData)
}

// Host is the surface a selector is attached to
type Host interface {
	// SetPointerCapture routes all further events of the pointer to the
	// surface until released
	SetPointerCapture(pointerID int)
	ReleasePointerCapture(pointerID int)
	// ClientRect returns the surface position and size in client pixels
	ClientRect() (origin geom.Point2D, size geom.Rect)
}

// Env bundles the collaborators shared by all selectors of an editor view
type Env struct {
	Host   Host
	Events *event.Dispatcher
	Frames *frame.Scheduler
}

// Modificator constrains the shape of a rect selection
type Modificator int

const (
	Free Modificator = iota
	Square
)

func (m Modificator) String() string {
	if m == Square {
		return "square"
	}
	return "free"
}

var _ Selector = (*RectSelector)(nil)
var _ Selector = (*PointSelector)(nil)
var _ Selector = (*PolygonSelector)(nil)
var _ Selector = (*AreaSelector)(nil)
