// Package event models pointer and keyboard input and routes it to
// declarative listener tables.
package event

import (
	"fmt"

	"github.com/OpticalFlyer/tagger/geom"
)

// Type is the kind of input event
type Type int

const (
	PointerEnter Type = iota
	PointerLeave
	PointerDown
	PointerMove
	PointerUp
	KeyDown
	KeyUp
)

func (t Type) String() string {
	switch t {
	case PointerEnter:
		return "pointerenter"
	case PointerLeave:
		return "pointerleave"
	case PointerDown:
		return "pointerdown"
	case PointerMove:
		return "pointermove"
	case PointerUp:
		return "pointerup"
	case KeyDown:
		return "keydown"
	case KeyUp:
		return "keyup"
	}
	return fmt.Sprintf("event(%d)", int(t))
}

// Scope is where a listener is attached: the whole window or the
// selection surface only.
type Scope int

const (
	Window Scope = iota
	Surface
)

// Key identifies the keys the selection engine reacts to
type Key int

const (
	KeyUnknown Key = iota
	KeyShift
	KeyControl
	KeyEscape
	KeyEnter
)

// Event is a single pointer or keyboard event. Shift and Ctrl carry the
// modifier state after the event was applied.
type Event struct {
	Type      Type
	Target    Scope
	PointerID int
	ClientX   float64
	ClientY   float64
	Key       Key
	Shift     bool
	Ctrl      bool

	stopped bool
}

// Client returns the pointer position in client coordinates
func (e *Event) Client() geom.Point2D {
	return geom.NewPoint2D(e.ClientX, e.ClientY)
}

// StopPropagation prevents the remaining listeners from seeing the event
func (e *Event) StopPropagation() {
	e.stopped = true
}

// Stopped reports whether a listener stopped propagation
func (e *Event) Stopped() bool {
	return e.stopped
}

// Listener is one row of a declarative listener table. Intercepting
// window listeners run before surface listeners.
type Listener struct {
	Type      Type
	Scope     Scope
	Intercept bool
	Handle    func(*Event)
}
