// Package render draws the asset image and selector layers onto the
// ebiten screen.
package render

import (
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/tagger/canvas"
	"github.com/OpticalFlyer/tagger/geom"
	"github.com/OpticalFlyer/tagger/scene"
)

var (
	CrossColor   = color.RGBA{0, 200, 255, 255}
	BoxColor     = color.RGBA{255, 200, 0, 255}
	MaskColor    = color.RGBA{0, 0, 0, 120}
	PolygonColor = color.RGBA{255, 200, 0, 255}
	PolygonFill  = color.RGBA{255, 200, 0, 64}
	RegionColor  = color.RGBA{0, 220, 120, 255}
)

const (
	strokeWidth  = 1.0
	vertexRadius = 3.0
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Image draws the asset where the view places it
func Image(screen, img *ebiten.Image, view *canvas.View) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(view.Zoom, view.Zoom)
	op.GeoM.Translate(view.OffsetX, view.OffsetY)
	if view.Zoom < 1 {
		op.Filter = ebiten.FilterLinear
	}
	screen.DrawImage(img, op)
}

// Layer draws the visible elements of a selector layer in paint order.
// t maps the selector's local coordinates to the screen.
func Layer(screen *ebiten.Image, layer *scene.Layer, t geom.Transform) {
	for _, el := range layer.Elements() {
		if !el.Visible() {
			continue
		}
		switch e := el.(type) {
		case *scene.Mask:
			drawMask(screen, e, t)
		case *scene.Box:
			o := t.ToClient(e.Origin())
			s := t.SizeToClient(e.Size())
			vector.StrokeRect(screen, float32(o.X), float32(o.Y),
				float32(s.Width), float32(s.Height), strokeWidth, BoxColor, false)
		case *scene.Cross:
			drawCross(screen, e, t)
		case *scene.Polyline:
			drawPolyline(screen, e, t)
		}
	}
}

// Region outlines a committed region
func Region(screen *ebiten.Image, r geom.RegionData, t geom.Transform) {
	switch r.Type() {
	case geom.RegionPoint:
		p := t.ToClient(r.Origin())
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), vertexRadius, RegionColor, true)
	case geom.RegionPolygon:
		pts := toClient(r.Points(), t)
		for i := range pts {
			next := pts[(i+1)%len(pts)]
			vector.StrokeLine(screen, float32(pts[i].X), float32(pts[i].Y),
				float32(next.X), float32(next.Y), strokeWidth, RegionColor, true)
		}
	default:
		o := t.ToClient(r.Origin())
		s := t.SizeToClient(r.Size())
		vector.StrokeRect(screen, float32(o.X), float32(o.Y),
			float32(s.Width), float32(s.Height), strokeWidth, RegionColor, false)
	}
}

func drawCross(screen *ebiten.Image, c *scene.Cross, t geom.Transform) {
	p := t.ToClient(c.Pos())
	lo := t.Origin
	hi := t.ToClient(geom.NewPoint2D(c.Bound().Width, c.Bound().Height))

	vector.StrokeLine(screen, float32(lo.X), float32(p.Y),
		float32(hi.X), float32(p.Y), strokeWidth, CrossColor, false)
	vector.StrokeLine(screen, float32(p.X), float32(lo.Y),
		float32(p.X), float32(hi.Y), strokeWidth, CrossColor, false)
}

// drawMask shades the four bands of the bound rect around the hole
func drawMask(screen *ebiten.Image, m *scene.Mask, t geom.Transform) {
	lo := t.Origin
	hi := t.ToClient(geom.NewPoint2D(m.Bound().Width, m.Bound().Height))
	holeOrigin, holeSize := m.Hole()
	h0 := t.ToClient(holeOrigin)
	h1 := t.ToClient(holeOrigin.Add(geom.NewPoint2D(holeSize.Width, holeSize.Height)))

	bands := [4][4]float64{
		{lo.X, lo.Y, hi.X - lo.X, h0.Y - lo.Y},
		{lo.X, h1.Y, hi.X - lo.X, hi.Y - h1.Y},
		{lo.X, h0.Y, h0.X - lo.X, h1.Y - h0.Y},
		{h1.X, h0.Y, hi.X - h1.X, h1.Y - h0.Y},
	}
	for _, b := range bands {
		if b[2] <= 0 || b[3] <= 0 {
			continue
		}
		vector.DrawFilledRect(screen, float32(b[0]), float32(b[1]),
			float32(b[2]), float32(b[3]), MaskColor, false)
	}
}

func drawPolyline(screen *ebiten.Image, p *scene.Polyline, t geom.Transform) {
	pts := toClient(p.Points(), t)
	if len(pts) == 0 {
		return
	}
	fillPolygon(screen, pts, PolygonFill)

	for i := 1; i < len(pts); i++ {
		vector.StrokeLine(screen, float32(pts[i-1].X), float32(pts[i-1].Y),
			float32(pts[i].X), float32(pts[i].Y), strokeWidth, PolygonColor, true)
	}
	last := pts[len(pts)-1]
	cursor := t.ToClient(p.Cursor())
	vector.StrokeLine(screen, float32(last.X), float32(last.Y),
		float32(cursor.X), float32(cursor.Y), strokeWidth, PolygonColor, true)

	for _, v := range pts {
		vector.DrawFilledCircle(screen, float32(v.X), float32(v.Y), vertexRadius, PolygonColor, true)
	}
}

func fillPolygon(screen *ebiten.Image, pts []geom.Point2D, clr color.RGBA) {
	indices, err := geom.Triangulate(pts)
	if err != nil {
		// the outline is still drawn
		log.Printf("Skipping polygon fill: %v", err)
		return
	}
	if len(indices) == 0 {
		return
	}

	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	vertices := make([]ebiten.Vertex, len(pts))
	for i, p := range pts {
		vertices[i] = ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: r * a,
			ColorG: g * a,
			ColorB: b * a,
			ColorA: a,
		}
	}
	idx := make([]uint16, len(indices))
	for i, v := range indices {
		idx[i] = uint16(v)
	}
	screen.DrawTriangles(vertices, idx, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

func toClient(points []geom.Point2D, t geom.Transform) []geom.Point2D {
	out := make([]geom.Point2D, len(points))
	for i, p := range points {
		out[i] = t.ToClient(p)
	}
	return out
}
