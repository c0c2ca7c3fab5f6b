package selector

import (
	"github.com/OpticalFlyer/tagger/event"
	"github.com/OpticalFlyer/tagger/geom"
	"github.com/OpticalFlyer/tagger/scene"
)

// PointSelector places single points: the cross follows the cursor and a
// press-release commits its position.
type PointSelector struct {
	*surface

	cross     *scene.Cross
	pos       geom.Point2D
	hovering  bool
	capturing bool
}

// NewPointSelector creates a hidden point selector over bound
func NewPointSelector(bound geom.Rect, env Env, callbacks Callbacks) *PointSelector {
	s := &PointSelector{
		surface: newSurface("point", bound, env, callbacks),
		cross:   scene.NewCross(bound),
	}
	s.layer = scene.NewLayer(s.cross)
	s.listeners = []event.Listener{
		{Type: event.PointerEnter, Scope: event.Surface, Handle: s.onPointerEnter},
		{Type: event.PointerLeave, Scope: event.Surface, Handle: s.onPointerLeave},
		{Type: event.PointerDown, Scope: event.Surface, Handle: s.onPointerDown},
		{Type: event.PointerUp, Scope: event.Surface, Handle: s.onPointerUp},
		{Type: event.PointerMove, Scope: event.Surface, Handle: s.onPointerMove},
	}
	return s
}

func (s *PointSelector) Show() {
	s.enable()
}

func (s *PointSelector) Hide() {
	s.disable()
	s.hovering = false
	s.capturing = false
}

func (s *PointSelector) Resize(width, height float64) {
	s.bound = geom.NewRect(width, height)
	s.cross.Resize(width, height)
	s.pos = s.pos.BoundToRect(s.bound)
	s.requestSync()
}

// Capturing reports whether a press is in progress
func (s *PointSelector) Capturing() bool {
	return s.capturing
}

// Pos returns the current cross position
func (s *PointSelector) Pos() geom.Point2D {
	return s.pos
}

func (s *PointSelector) onPointerEnter(e *event.Event) {
	if s.foreign(e) {
		return
	}
	s.inside = true
	s.hovering = true
	if !s.capturing {
		s.pos = s.local(e)
	}
	s.requestSync()
}

func (s *PointSelector) onPointerLeave(e *event.Event) {
	if s.foreign(e) {
		return
	}
	s.inside = false
	if !s.capturing {
		s.hovering = false
	}
	s.requestSync()
}

func (s *PointSelector) onPointerDown(e *event.Event) {
	if s.foreign(e) {
		return
	}
	if s.capturing {
		return
	}
	s.capturing = true
	s.hovering = true
	s.pos = s.local(e)
	s.acquireCapture(e.PointerID)
	s.begin()
	s.requestSync()
}

func (s *PointSelector) onPointerMove(e *event.Event) {
	if s.foreign(e) {
		return
	}
	s.pos = s.local(e)
	s.hovering = true
	s.requestSync()
}

func (s *PointSelector) onPointerUp(e *event.Event) {
	if s.foreign(e) {
		return
	}
	if !s.capturing {
		return
	}
	s.pos = s.local(e)
	s.capturing = false
	s.hovering = s.inside
	s.releaseCapture()
	s.end(geom.BuildPointRegionData(s.pos.X, s.pos.Y))
	s.requestSync()
}

func (s *PointSelector) requestSync() {
	if s.Enabled() {
		s.schedule(s.sync)
	}
}

func (s *PointSelector) sync() {
	s.cross.Move(s.pos)
	setVisible(s.cross, s.hovering || s.capturing)
}
