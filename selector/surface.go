package selector

import (
	"fmt"
	"sync/atomic"

	"github.com/OpticalFlyer/tagger/event"
	"github.com/OpticalFlyer/tagger/geom"
	"github.com/OpticalFlyer/tagger/scene"
)

var surfaceSeq atomic.Int64

// surface is the bookkeeping shared by all selectors: bound rect, listener
// table and its subscription, frame key, pointer capture and callbacks.
type surface struct {
	key       string
	bound     geom.Rect
	env       Env
	callbacks Callbacks
	layer     *scene.Layer

	listeners []event.Listener
	sub       *event.Subscription

	captured  bool
	captureID int
	inside    bool
}

func newSurface(name string, bound geom.Rect, env Env, callbacks Callbacks) *surface {
	return &surface{
		key:       fmt.Sprintf("%s-%d", name, surfaceSeq.Add(1)),
		bound:     bound,
		env:       env,
		callbacks: callbacks,
		layer:     scene.NewLayer(),
	}
}

// Enabled reports whether the listener table is attached
func (s *surface) Enabled() bool {
	return !s.sub.Closed()
}

// Layer returns the elements the selector paints
func (s *surface) Layer() *scene.Layer {
	return s.layer
}

// Bound returns the rect selection coordinates are interpreted in
func (s *surface) Bound() geom.Rect {
	return s.bound
}

func (s *surface) enable() {
	if s.Enabled() {
		return
	}
	s.sub = s.env.Events.Subscribe(s.listeners...)
}

// disable detaches all listeners, drops the pending frame update, releases
// a held pointer capture and hides every element
func (s *surface) disable() {
	s.sub.Close()
	s.sub = nil
	s.env.Frames.Cancel(s.key)
	s.releaseCapture()
	s.inside = false
	s.layer.HideAll()
}

func (s *surface) schedule(fn func()) {
	s.env.Frames.Request(s.key, fn)
}

// local converts the event position to bound coordinates, clamped to the
// bound rect
func (s *surface) local(e *event.Event) geom.Point2D {
	origin, size := s.env.Host.ClientRect()
	return geom.NewTransform(origin, size, s.bound).ToLocal(e.Client()).BoundToRect(s.bound)
}

func (s *surface) acquireCapture(pointerID int) {
	if s.captured {
		return
	}
	s.env.Host.SetPointerCapture(pointerID)
	s.captured = true
	s.captureID = pointerID
}

// foreign reports whether e comes from a pointer other than the captured
// one; such events must not touch a capture in progress
func (s *surface) foreign(e *event.Event) bool {
	return s.captured && e.PointerID != s.captureID
}

func (s *surface) releaseCapture() {
	if !s.captured {
		return
	}
	s.captured = false
	s.env.Host.ReleasePointerCapture(s.captureID)
}

func (s *surface) begin() {
	if s.callbacks.OnSelectionBegin != nil {
		s.callbacks.OnSelectionBegin()
	}
}

func (s *surface) end(region geom.RegionData) {
	if s.callbacks.OnSelectionEnd != nil {
		s.callbacks.OnSelectionEnd(region)
	}
}

func setVisible(e scene.Element, visible bool) {
	if visible {
		e.Show()
	} else {
		e.Hide()
	}
}
