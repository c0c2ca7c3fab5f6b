package geom

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// RegionType identifies the shape of a region
type RegionType string

const (
	RegionRect    RegionType = "RECT"
	RegionPolygon RegionType = "POLYGON"
	RegionPoint   RegionType = "POINT"
)

var (
	ErrUnknownRegionType = errors.New("unknown region type")
	ErrInvalidRegion     = errors.New("invalid region data")
)

// RegionData is the committed geometry of a region: its bounding box in
// image pixels plus, for polygons and points, the shape vertices.
// Values are immutable once built; use the Build* constructors.
type RegionData struct {
	kind   RegionType
	x, y   float64
	width  float64
	height float64
	points []Point2D
}

// BuildRectRegionData builds a rect region. A negative width or height
// flips the origin so that x,y is always the top-left corner.
func BuildRectRegionData(x, y, width, height float64) RegionData {
	if width < 0 {
		x, width = x+width, -width
	}
	if height < 0 {
		y, height = y+height, -height
	}
	return RegionData{
		kind:   RegionRect,
		x:      x,
		y:      y,
		width:  width,
		height: height,
		points: []Point2D{
			{X: x, Y: y},
			{X: x + width, Y: y},
			{X: x + width, Y: y + height},
			{X: x, Y: y + height},
		},
	}
}

// RectFromCorners builds a rect region from two opposite corners in any order
func RectFromCorners(a, b Point2D) RegionData {
	return BuildRectRegionData(
		math.Min(a.X, b.X),
		math.Min(a.Y, b.Y),
		math.Abs(a.X-b.X),
		math.Abs(a.Y-b.Y),
	)
}

// BuildPointRegionData builds a zero-size point region
func BuildPointRegionData(x, y float64) RegionData {
	return RegionData{
		kind:   RegionPoint,
		x:      x,
		y:      y,
		points: []Point2D{{X: x, Y: y}},
	}
}

// BuildPolygonRegionData builds a polygon region whose bounding box encloses
// all vertices. The vertex slice is copied.
func BuildPolygonRegionData(points []Point2D) RegionData {
	r := RegionData{kind: RegionPolygon, points: append([]Point2D(nil), points...)}
	if len(points) == 0 {
		return r
	}
	minP, maxP := points[0], points[0]
	for _, p := range points[1:] {
		minP = Point2D{X: math.Min(minP.X, p.X), Y: math.Min(minP.Y, p.Y)}
		maxP = Point2D{X: math.Max(maxP.X, p.X), Y: math.Max(maxP.Y, p.Y)}
	}
	r.x, r.y = minP.X, minP.Y
	r.width, r.height = maxP.X-minP.X, maxP.Y-minP.Y
	return r
}

func (r RegionData) Type() RegionType { return r.kind }
func (r RegionData) X() float64       { return r.x }
func (r RegionData) Y() float64       { return r.y }
func (r RegionData) Width() float64   { return r.width }
func (r RegionData) Height() float64  { return r.height }

// Points returns a copy of the shape vertices
func (r RegionData) Points() []Point2D {
	return append([]Point2D(nil), r.points...)
}

// Origin returns the top-left corner of the bounding box
func (r RegionData) Origin() Point2D {
	return Point2D{X: r.x, Y: r.y}
}

// Size returns the size of the bounding box
func (r RegionData) Size() Rect {
	return Rect{Width: r.width, Height: r.height}
}

// IsDegenerate reports whether a rect or polygon region has no area
func (r RegionData) IsDegenerate() bool {
	return r.kind != RegionPoint && (r.width == 0 || r.height == 0)
}

// FitsWithin reports whether the bounding box lies inside bound
func (r RegionData) FitsWithin(bound Rect) bool {
	return r.x >= 0 && r.y >= 0 &&
		r.x+r.width <= bound.Width &&
		r.y+r.height <= bound.Height
}

// Scale returns a copy with every coordinate multiplied by sx, sy
func (r RegionData) Scale(sx, sy float64) RegionData {
	scaled := make([]Point2D, len(r.points))
	for i, p := range r.points {
		scaled[i] = Point2D{X: p.X * sx, Y: p.Y * sy}
	}
	switch r.kind {
	case RegionRect:
		return BuildRectRegionData(r.x*sx, r.y*sy, r.width*sx, r.height*sy)
	case RegionPoint:
		return BuildPointRegionData(r.x*sx, r.y*sy)
	default:
		return BuildPolygonRegionData(scaled)
	}
}

func (r RegionData) String() string {
	return fmt.Sprintf("%s(%g,%g %gx%g)", r.kind, r.x, r.y, r.width, r.height)
}

type regionJSON struct {
	Type   RegionType `json:"type"`
	X      float64    `json:"x"`
	Y      float64    `json:"y"`
	Width  float64    `json:"width"`
	Height float64    `json:"height"`
	Points []Point2D  `json:"points,omitempty"`
}

// MarshalJSON writes the canonical shape description
func (r RegionData) MarshalJSON() ([]byte, error) {
	return json.Marshal(regionJSON{
		Type:   r.kind,
		X:      r.x,
		Y:      r.y,
		Width:  r.width,
		Height: r.height,
		Points: r.points,
	})
}

// UnmarshalJSON reads the canonical shape description and normalises it
// through the matching Build* constructor.
func (r *RegionData) UnmarshalJSON(data []byte) error {
	var in regionJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("decoding region: %w", err)
	}
	for _, v := range []float64{in.X, in.Y, in.Width, in.Height} {
		if !isFinite(v) {
			return fmt.Errorf("%w: non-finite coordinate", ErrInvalidRegion)
		}
	}

	switch in.Type {
	case RegionRect:
		*r = BuildRectRegionData(in.X, in.Y, in.Width, in.Height)
	case RegionPoint:
		*r = BuildPointRegionData(in.X, in.Y)
	case RegionPolygon:
		if len(in.Points) < 3 {
			return fmt.Errorf("%w: polygon needs at least 3 points, got %d", ErrInvalidRegion, len(in.Points))
		}
		*r = BuildPolygonRegionData(in.Points)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRegionType, in.Type)
	}
	return nil
}
