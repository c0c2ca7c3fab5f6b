// Package scene holds the visual elements a selector projects its
// interaction state onto. Elements carry rendering state only.
package scene

import "github.com/OpticalFlyer/tagger/geom"

// Element is anything a Layer can paint
type Element interface {
	Visible() bool
	Show()
	Hide()
}

// visibility is embedded by every element
type visibility struct {
	visible bool
}

func (v *visibility) Visible() bool { return v.visible }
func (v *visibility) Show()         { v.visible = true }
func (v *visibility) Hide()         { v.visible = false }

// Layer is an ordered list of elements, painted first to last
type Layer struct {
	elements []Element
}

// NewLayer creates a layer with the given paint order
func NewLayer(elements ...Element) *Layer {
	return &Layer{elements: elements}
}

// Elements returns the elements in paint order
func (l *Layer) Elements() []Element {
	return append([]Element(nil), l.elements...)
}

// HideAll hides every element of the layer
func (l *Layer) HideAll() {
	for _, e := range l.elements {
		e.Hide()
	}
}

// AnyVisible reports whether at least one element is visible
func (l *Layer) AnyVisible() bool {
	for _, e := range l.elements {
		if e.Visible() {
			return true
		}
	}
	return false
}

// Cross is a crosshair spanning the whole bound rect. Its position is
// always clamped to the bound.
type Cross struct {
	visibility
	pos   geom.Point2D
	bound geom.Rect
}

// NewCross creates a hidden cross at the origin of bound
func NewCross(bound geom.Rect) *Cross {
	return &Cross{bound: bound}
}

func (c *Cross) Move(p geom.Point2D) {
	c.pos = p.BoundToRect(c.bound)
}

func (c *Cross) Resize(width, height float64) {
	c.bound = geom.NewRect(width, height)
	c.pos = c.pos.BoundToRect(c.bound)
}

func (c *Cross) Pos() geom.Point2D { return c.pos }
func (c *Cross) Bound() geom.Rect  { return c.bound }

// Box is an axis aligned rectangle outline
type Box struct {
	visibility
	origin geom.Point2D
	size   geom.Rect
}

func NewBox() *Box {
	return &Box{}
}

func (b *Box) Move(p geom.Point2D) {
	b.origin = p
}

func (b *Box) Resize(width, height float64) {
	b.size = geom.NewRect(width, height)
}

func (b *Box) Origin() geom.Point2D { return b.origin }
func (b *Box) Size() geom.Rect      { return b.size }

// Mask darkens the bound rect except for a rectangular hole
type Mask struct {
	visibility
	bound      geom.Rect
	holeOrigin geom.Point2D
	holeSize   geom.Rect
}

func NewMask(bound geom.Rect) *Mask {
	return &Mask{bound: bound}
}

func (m *Mask) Resize(width, height float64) {
	m.bound = geom.NewRect(width, height)
}

// SetHole moves the uncovered area to the given box
func (m *Mask) SetHole(origin geom.Point2D, size geom.Rect) {
	m.holeOrigin = origin
	m.holeSize = size
}

func (m *Mask) Bound() geom.Rect { return m.bound }

func (m *Mask) Hole() (geom.Point2D, geom.Rect) {
	return m.holeOrigin, m.holeSize
}

// Polyline is an open chain of vertices plus a rubber-band segment from the
// last vertex to the cursor
type Polyline struct {
	visibility
	points []geom.Point2D
	cursor geom.Point2D
}

func NewPolyline() *Polyline {
	return &Polyline{}
}

func (p *Polyline) SetPoints(points []geom.Point2D) {
	p.points = append(p.points[:0], points...)
}

func (p *Polyline) MoveCursor(c geom.Point2D) {
	p.cursor = c
}

func (p *Polyline) Points() []geom.Point2D {
	return append([]geom.Point2D(nil), p.points...)
}

func (p *Polyline) Cursor() geom.Point2D { return p.cursor }
