// Package host turns raw pointer and key state, as polled from the window
// each tick, into selection events. It implements selector.Host.
package host

import (
	"log"

	"github.com/OpticalFlyer/tagger/event"
	"github.com/OpticalFlyer/tagger/geom"
)

// MousePointer is the pointer id of the mouse; touches use ids from 1
const MousePointer = 0

// Surface reports where the selection surface is on screen
type Surface interface {
	ClientRect() (geom.Point2D, geom.Rect)
}

type pointerState struct {
	x, y   float64
	inside bool
	down   bool
}

// Input tracks pointers, modifiers and pointer capture for one surface
type Input struct {
	events   *event.Dispatcher
	surface  Surface
	pointers map[int]*pointerState
	captured map[int]bool
	shift    bool
	ctrl     bool
}

// NewInput creates an input tracker dispatching into events
func NewInput(events *event.Dispatcher, surface Surface) *Input {
	return &Input{
		events:   events,
		surface:  surface,
		pointers: make(map[int]*pointerState),
		captured: make(map[int]bool),
	}
}

// ClientRect returns the surface rect in client pixels
func (in *Input) ClientRect() (geom.Point2D, geom.Rect) {
	return in.surface.ClientRect()
}

// SetPointerCapture routes the pointer's events to the surface even when
// it is outside the client rect
func (in *Input) SetPointerCapture(pointerID int) {
	if in.captured[pointerID] {
		log.Printf("Pointer %d captured twice", pointerID)
	}
	in.captured[pointerID] = true
}

// ReleasePointerCapture ends a capture started by SetPointerCapture
func (in *Input) ReleasePointerCapture(pointerID int) {
	if !in.captured[pointerID] {
		log.Printf("Release of uncaptured pointer %d", pointerID)
		return
	}
	delete(in.captured, pointerID)
}

// Captured reports whether the pointer is captured by the surface
func (in *Input) Captured(pointerID int) bool {
	return in.captured[pointerID]
}

// Pointer feeds the state of one pointer for the current tick. pressed and
// released are the edges detected this tick.
func (in *Input) Pointer(id int, x, y float64, pressed, released bool) {
	p, known := in.pointers[id]
	if !known {
		p = &pointerState{x: x, y: y}
		in.pointers[id] = p
	}

	origin, size := in.surface.ClientRect()
	inside := x >= origin.X && x <= origin.X+size.Width &&
		y >= origin.Y && y <= origin.Y+size.Height
	moved := !known || x != p.x || y != p.y
	p.x, p.y = x, y

	switch {
	case inside && !p.inside:
		in.emit(event.PointerEnter, id, x, y, event.Surface)
	case !inside && p.inside:
		in.emit(event.PointerLeave, id, x, y, event.Surface)
	}
	p.inside = inside

	if moved {
		in.emit(event.PointerMove, id, x, y, in.target(id, inside))
	}
	if pressed && !p.down {
		p.down = true
		in.emit(event.PointerDown, id, x, y, in.target(id, inside))
	}
	if released && p.down {
		p.down = false
		in.emit(event.PointerUp, id, x, y, in.target(id, inside))
	}
}

// PointerGone ends a pointer that disappeared, such as a lifted touch
func (in *Input) PointerGone(id int) {
	p, ok := in.pointers[id]
	if !ok {
		return
	}
	if p.down {
		p.down = false
		in.emit(event.PointerUp, id, p.x, p.y, in.target(id, p.inside))
	}
	if p.inside {
		in.emit(event.PointerLeave, id, p.x, p.y, event.Surface)
	}
	delete(in.pointers, id)
}

// Abandon forgets a pointer without reporting a release, so a pointer
// whose gesture was taken over (a finger joining a pinch) cannot commit
// anything when it lifts
func (in *Input) Abandon(id int) {
	p, ok := in.pointers[id]
	if !ok {
		return
	}
	if p.inside {
		in.emit(event.PointerLeave, id, p.x, p.y, event.Surface)
	}
	delete(in.pointers, id)
}

// Key feeds a key edge. Shift and control also update the modifier state
// carried by every later event.
func (in *Input) Key(k event.Key, down bool) {
	switch k {
	case event.KeyShift:
		in.shift = down
	case event.KeyControl:
		in.ctrl = down
	}

	t := event.KeyUp
	if down {
		t = event.KeyDown
	}
	in.events.Dispatch(event.Event{
		Type:   t,
		Target: event.Window,
		Key:    k,
		Shift:  in.shift,
		Ctrl:   in.ctrl,
	})
}

func (in *Input) target(id int, inside bool) event.Scope {
	if inside || in.captured[id] {
		return event.Surface
	}
	return event.Window
}

func (in *Input) emit(t event.Type, id int, x, y float64, target event.Scope) {
	in.events.Dispatch(event.Event{
		Type:      t,
		Target:    target,
		PointerID: id,
		ClientX:   x,
		ClientY:   y,
		Shift:     in.shift,
		Ctrl:      in.ctrl,
	})
}
