package selector

import (
	"github.com/OpticalFlyer/tagger/event"
	"github.com/OpticalFlyer/tagger/frame"
	"github.com/OpticalFlyer/tagger/geom"
)

// fakeHost is a surface at a fixed client rect that counts pointer captures
type fakeHost struct {
	origin   geom.Point2D
	size     geom.Rect
	acquired []int
	released []int
}

func (h *fakeHost) SetPointerCapture(id int)     { h.acquired = append(h.acquired, id) }
func (h *fakeHost) ReleasePointerCapture(id int) { h.released = append(h.released, id) }

func (h *fakeHost) ClientRect() (geom.Point2D, geom.Rect) {
	return h.origin, h.size
}

// recorder collects callback invocations
type recorder struct {
	begins  int
	regions []geom.RegionData
}

func (r *recorder) callbacks() Callbacks {
	return Callbacks{
		OnSelectionBegin: func() { r.begins++ },
		OnSelectionEnd:   func(region geom.RegionData) { r.regions = append(r.regions, region) },
	}
}

type harness struct {
	host   *fakeHost
	events *event.Dispatcher
	frames *frame.Scheduler
	rec    *recorder
}

func newHarness(width, height float64) *harness {
	return &harness{
		host:   &fakeHost{size: geom.NewRect(width, height)},
		events: event.NewDispatcher(),
		frames: frame.NewScheduler(),
		rec:    &recorder{},
	}
}

func (h *harness) env() Env {
	return Env{Host: h.host, Events: h.events, Frames: h.frames}
}

func (h *harness) pointer(t event.Type, x, y float64) {
	h.events.Dispatch(event.Event{Type: t, Target: event.Surface, ClientX: x, ClientY: y})
}

func (h *harness) pointerAs(id int, t event.Type, x, y float64) {
	h.events.Dispatch(event.Event{Type: t, Target: event.Surface, PointerID: id, ClientX: x, ClientY: y})
}

func (h *harness) enter(x, y float64) { h.pointer(event.PointerEnter, x, y) }
func (h *harness) leave(x, y float64) { h.pointer(event.PointerLeave, x, y) }
func (h *harness) down(x, y float64)  { h.pointer(event.PointerDown, x, y) }
func (h *harness) move(x, y float64)  { h.pointer(event.PointerMove, x, y) }
func (h *harness) up(x, y float64)    { h.pointer(event.PointerUp, x, y) }

func (h *harness) click(x, y float64) {
	h.down(x, y)
	h.up(x, y)
}

// key dispatches a window-scope key event with the modifier state that
// results from it
func (h *harness) key(t event.Type, k event.Key, shift, ctrl bool) {
	h.events.Dispatch(event.Event{Type: t, Target: event.Window, Key: k, Shift: shift, Ctrl: ctrl})
}

func (h *harness) shiftDown() { h.key(event.KeyDown, event.KeyShift, true, false) }
func (h *harness) shiftUp()   { h.key(event.KeyUp, event.KeyShift, false, false) }
func (h *harness) ctrlDown()  { h.key(event.KeyDown, event.KeyControl, false, true) }
func (h *harness) ctrlUp()    { h.key(event.KeyUp, event.KeyControl, false, false) }

func rect(r geom.RegionData) [4]float64 {
	return [4]float64{r.X(), r.Y(), r.Width(), r.Height()}
}
