package selector

import (
	"github.com/OpticalFlyer/tagger/event"
	"github.com/OpticalFlyer/tagger/geom"
	"github.com/OpticalFlyer/tagger/scene"
)

// DefaultCloseDistance is how close, in bound units, a click must land to
// the first vertex to close the polygon
const DefaultCloseDistance = 5.0

const minPolygonPoints = 3

// PolygonSelector builds polygons one click per vertex. Clicking next to
// the first vertex or pressing enter closes the polygon; escape drops it.
type PolygonSelector struct {
	*surface

	// CloseDistance overrides DefaultCloseDistance when positive
	CloseDistance float64

	cross    *scene.Cross
	polyline *scene.Polyline

	points   []geom.Point2D
	cursor   geom.Point2D
	hovering bool
}

// NewPolygonSelector creates a hidden polygon selector over bound
func NewPolygonSelector(bound geom.Rect, env Env, callbacks Callbacks) *PolygonSelector {
	s := &PolygonSelector{
		surface:  newSurface("polygon", bound, env, callbacks),
		cross:    scene.NewCross(bound),
		polyline: scene.NewPolyline(),
	}
	s.layer = scene.NewLayer(s.polyline, s.cross)
	s.listeners = []event.Listener{
		{Type: event.PointerEnter, Scope: event.Surface, Handle: s.onPointerEnter},
		{Type: event.PointerLeave, Scope: event.Surface, Handle: s.onPointerLeave},
		{Type: event.PointerUp, Scope: event.Surface, Handle: s.onPointerUp},
		{Type: event.PointerMove, Scope: event.Surface, Handle: s.onPointerMove},
		{Type: event.KeyUp, Scope: event.Window, Intercept: true, Handle: s.onKeyUp},
	}
	return s
}

func (s *PolygonSelector) Show() {
	s.enable()
}

// Hide drops an unfinished polygon without committing it
func (s *PolygonSelector) Hide() {
	s.disable()
	s.points = nil
	s.hovering = false
}

func (s *PolygonSelector) Resize(width, height float64) {
	s.bound = geom.NewRect(width, height)
	s.cross.Resize(width, height)
	for i, p := range s.points {
		s.points[i] = p.BoundToRect(s.bound)
	}
	s.cursor = s.cursor.BoundToRect(s.bound)
	s.requestSync()
}

// Points returns the vertices placed so far
func (s *PolygonSelector) Points() []geom.Point2D {
	return append([]geom.Point2D(nil), s.points...)
}

func (s *PolygonSelector) closeDistance() float64 {
	if s.CloseDistance > 0 {
		return s.CloseDistance
	}
	return DefaultCloseDistance
}

func (s *PolygonSelector) onPointerEnter(e *event.Event) {
	s.inside = true
	s.hovering = true
	s.cursor = s.local(e)
	s.requestSync()
}

func (s *PolygonSelector) onPointerLeave(e *event.Event) {
	s.inside = false
	s.hovering = false
	s.requestSync()
}

func (s *PolygonSelector) onPointerMove(e *event.Event) {
	s.hovering = true
	s.cursor = s.local(e)
	s.requestSync()
}

func (s *PolygonSelector) onPointerUp(e *event.Event) {
	p := s.local(e)
	s.cursor = p

	if len(s.points) >= minPolygonPoints && p.Distance(s.points[0]) <= s.closeDistance() {
		s.commit()
		s.requestSync()
		return
	}
	if len(s.points) == 0 {
		s.begin()
	}
	s.points = append(s.points, p)
	s.requestSync()
}

func (s *PolygonSelector) onKeyUp(e *event.Event) {
	switch e.Key {
	case event.KeyEnter:
		if len(s.points) >= minPolygonPoints {
			s.commit()
		}
	case event.KeyEscape:
		s.points = nil
	}
	s.requestSync()
}

func (s *PolygonSelector) commit() {
	region := geom.BuildPolygonRegionData(s.points)
	s.points = nil
	s.end(region)
}

func (s *PolygonSelector) requestSync() {
	if s.Enabled() {
		s.schedule(s.sync)
	}
}

func (s *PolygonSelector) sync() {
	s.cross.Move(s.cursor)
	s.polyline.SetPoints(s.points)
	s.polyline.MoveCursor(s.cursor)
	setVisible(s.cross, s.hovering || len(s.points) > 0)
	setVisible(s.polyline, len(s.points) > 0)
}
