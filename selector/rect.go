package selector

import (
	"math"

	"github.com/OpticalFlyer/tagger/event"
	"github.com/OpticalFlyer/tagger/geom"
	"github.com/OpticalFlyer/tagger/scene"
)

type rectPhase int

const (
	rectIdle            rectPhase = iota // cursor outside, nothing in progress
	rectHover                            // cursor inside, not capturing
	rectDrag                             // one-point mode, button held
	rectArmed                            // two-point mode, first corner placed
	rectTwoPointCapture                  // two-point mode, second press held
)

// RectSelector draws rectangles either by press-drag-release or, while
// ctrl is held, by two separate clicks. Holding shift forces a square.
type RectSelector struct {
	*surface

	crossA *scene.Cross
	crossB *scene.Cross
	box    *scene.Box
	mask   *scene.Mask

	phase       rectPhase
	twoPoints   bool
	modificator Modificator

	a, b   geom.Point2D // opposite corners, a is the anchor
	cursor geom.Point2D
}

// NewRectSelector creates a hidden rect selector over bound
func NewRectSelector(bound geom.Rect, env Env, callbacks Callbacks) *RectSelector {
	r := &RectSelector{
		surface: newSurface("rect", bound, env, callbacks),
		crossA:  scene.NewCross(bound),
		crossB:  scene.NewCross(bound),
		box:     scene.NewBox(),
		mask:    scene.NewMask(bound),
	}
	r.layer = scene.NewLayer(r.mask, r.box, r.crossB, r.crossA)
	r.listeners = []event.Listener{
		{Type: event.PointerEnter, Scope: event.Surface, Handle: r.onPointerEnter},
		{Type: event.PointerLeave, Scope: event.Surface, Handle: r.onPointerLeave},
		{Type: event.PointerDown, Scope: event.Surface, Handle: r.onPointerDown},
		{Type: event.PointerUp, Scope: event.Surface, Handle: r.onPointerUp},
		{Type: event.PointerMove, Scope: event.Surface, Handle: r.onPointerMove},
		{Type: event.KeyDown, Scope: event.Window, Handle: r.onKeyDown},
		{Type: event.KeyUp, Scope: event.Window, Intercept: true, Handle: r.onKeyUp},
	}
	return r
}

// Show attaches the listeners
func (r *RectSelector) Show() {
	r.enable()
}

// Hide detaches the listeners, abandons any selection in progress and
// hides every element immediately
func (r *RectSelector) Hide() {
	r.disable()
	r.phase = rectIdle
	r.twoPoints = false
	r.modificator = Free
	r.b = r.a
}

// Resize changes the bound rect; corners are clamped into the new bound
func (r *RectSelector) Resize(width, height float64) {
	r.bound = geom.NewRect(width, height)
	r.crossA.Resize(width, height)
	r.crossB.Resize(width, height)
	r.mask.Resize(width, height)
	r.a = r.a.BoundToRect(r.bound)
	r.b = r.b.BoundToRect(r.bound)
	r.cursor = r.cursor.BoundToRect(r.bound)
	r.reconstrain()
	r.requestSync()
}

// Capturing reports whether a selection extent is being defined
func (r *RectSelector) Capturing() bool {
	return r.phase == rectDrag || r.phase == rectTwoPointCapture
}

// Armed reports whether the first corner of a two-point selection is placed
func (r *RectSelector) Armed() bool {
	return r.phase == rectArmed
}

// TwoPoints reports whether click-click placement is active
func (r *RectSelector) TwoPoints() bool {
	return r.twoPoints
}

// Modificator returns the active shape constraint
func (r *RectSelector) Modificator() Modificator {
	return r.modificator
}

// Corners returns the anchor and free corner of the current selection
func (r *RectSelector) Corners() (a, b geom.Point2D) {
	return r.a, r.b
}

func (r *RectSelector) onPointerEnter(e *event.Event) {
	if r.foreign(e) {
		return
	}
	r.inside = true
	p := r.local(e)
	r.cursor = p
	if r.phase == rectIdle {
		r.phase = rectHover
		r.track(p)
	}
	r.requestSync()
}

func (r *RectSelector) onPointerLeave(e *event.Event) {
	if r.foreign(e) {
		return
	}
	r.inside = false
	p := r.local(e)
	r.cursor = p
	switch r.phase {
	case rectDrag, rectArmed, rectTwoPointCapture:
		// the selection survives leaving the surface; freeze the free corner
		r.b = r.constrain(p)
	default:
		r.phase = rectIdle
	}
	r.requestSync()
}

func (r *RectSelector) onPointerDown(e *event.Event) {
	if r.foreign(e) {
		return
	}
	p := r.local(e)
	r.cursor = p
	switch {
	case r.twoPoints && r.phase == rectArmed:
		r.phase = rectTwoPointCapture
		r.acquireCapture(e.PointerID)
		r.b = r.constrain(p)
		r.begin()
	case !r.twoPoints && r.phase != rectDrag:
		r.phase = rectDrag
		r.acquireCapture(e.PointerID)
		r.a = p
		r.b = r.a
		r.begin()
	}
	r.requestSync()
}

func (r *RectSelector) onPointerMove(e *event.Event) {
	if r.foreign(e) {
		return
	}
	p := r.local(e)
	r.cursor = p
	switch r.phase {
	case rectDrag, rectArmed, rectTwoPointCapture:
		r.b = r.constrain(p)
	default:
		r.phase = rectHover
		r.track(p)
	}
	r.requestSync()
}

func (r *RectSelector) onPointerUp(e *event.Event) {
	if r.foreign(e) {
		return
	}
	p := r.local(e)
	r.cursor = p
	switch {
	case r.twoPoints && (r.phase == rectIdle || r.phase == rectHover):
		r.a, r.b = p, p
		r.phase = rectArmed
	case r.twoPoints && r.phase == rectTwoPointCapture:
		r.b = r.constrain(p)
		r.releaseCapture()
		region := geom.RectFromCorners(r.a, r.b)
		r.a, r.b = p, p
		r.phase = r.restingPhase()
		r.end(region)
	case !r.twoPoints && r.phase == rectDrag:
		r.b = r.constrain(p)
		r.releaseCapture()
		region := geom.RectFromCorners(r.a, r.b)
		r.a, r.b = p, p
		r.phase = r.restingPhase()
		r.end(region)
	}
	r.requestSync()
}

func (r *RectSelector) onKeyDown(e *event.Event) {
	if e.Shift && r.modificator != Square {
		r.modificator = Square
		r.reconstrain()
	}
	if e.Ctrl && !r.twoPoints && !r.Capturing() {
		r.twoPoints = true
		r.b = r.a
	}
	r.requestSync()
}

func (r *RectSelector) onKeyUp(e *event.Event) {
	if !e.Shift && r.modificator != Free {
		r.modificator = Free
		r.reconstrain()
	}
	if !e.Ctrl && r.twoPoints {
		r.twoPoints = false
		r.cancel()
	}
	r.requestSync()
}

// cancel abandons a two-point placement without committing
func (r *RectSelector) cancel() {
	r.releaseCapture()
	r.b = r.a
	if r.phase == rectArmed || r.phase == rectTwoPointCapture {
		r.phase = r.restingPhase()
	}
}

// track moves the idle crosses with the cursor
func (r *RectSelector) track(p geom.Point2D) {
	r.a, r.b = p, p
}

func (r *RectSelector) reconstrain() {
	switch r.phase {
	case rectDrag, rectArmed, rectTwoPointCapture:
		r.b = r.constrain(r.cursor)
	}
}

// constrain returns the free corner for cursor p. In square mode the side
// is the larger of |dx| and |dy|, signed by the cursor's quadrant relative
// to the anchor, and shortened to the room the bound leaves in that
// quadrant so the corner never needs clamping.
func (r *RectSelector) constrain(p geom.Point2D) geom.Point2D {
	if r.modificator != Square {
		return p
	}
	dx, dy := p.X-r.a.X, p.Y-r.a.Y
	sx, sy := sign(dx), sign(dy)
	side := math.Max(math.Abs(dx), math.Abs(dy))
	side = math.Min(side, room(r.a.X, r.bound.Width, sx))
	side = math.Min(side, room(r.a.Y, r.bound.Height, sy))
	return geom.Point2D{
		X: r.a.X + sx*side,
		Y: r.a.Y + sy*side,
	}
}

// room is the distance from v to the edge of [0, limit] in direction dir
func room(v, limit, dir float64) float64 {
	if dir < 0 {
		return math.Max(0, v)
	}
	return math.Max(0, limit-v)
}

func (r *RectSelector) restingPhase() rectPhase {
	if r.inside {
		return rectHover
	}
	return rectIdle
}

func (r *RectSelector) requestSync() {
	if r.Enabled() {
		r.schedule(r.sync)
	}
}

// sync projects the interaction state onto the scene elements. The box and
// the mask hole are updated together.
func (r *RectSelector) sync() {
	r.crossA.Move(r.a)
	r.crossB.Move(r.b)

	region := geom.RectFromCorners(r.a, r.b)
	r.box.Move(region.Origin())
	r.box.Resize(region.Width(), region.Height())
	r.mask.SetHole(region.Origin(), region.Size())

	selecting := r.phase == rectDrag || r.phase == rectTwoPointCapture
	setVisible(r.crossA, r.phase != rectIdle)
	setVisible(r.crossB, selecting || r.phase == rectArmed)
	setVisible(r.box, selecting)
	setVisible(r.mask, selecting)
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
