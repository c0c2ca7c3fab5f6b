package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OpticalFlyer/tagger/geom"
)

func TestCrossClampsToBound(t *testing.T) {
	c := NewCross(geom.NewRect(100, 50))

	c.Move(geom.NewPoint2D(150, -10))
	assert.Equal(t, geom.NewPoint2D(100, 0), c.Pos())

	c.Resize(40, 40)
	assert.Equal(t, geom.NewPoint2D(40, 0), c.Pos())
}

func TestLayerHideAll(t *testing.T) {
	cross := NewCross(geom.NewRect(10, 10))
	box := NewBox()
	mask := NewMask(geom.NewRect(10, 10))
	layer := NewLayer(mask, box, cross)

	assert.False(t, layer.AnyVisible())
	cross.Show()
	box.Show()
	assert.True(t, layer.AnyVisible())

	layer.HideAll()
	assert.False(t, layer.AnyVisible())
	assert.Len(t, layer.Elements(), 3)
}

func TestMaskHole(t *testing.T) {
	m := NewMask(geom.NewRect(100, 100))
	m.SetHole(geom.NewPoint2D(10, 20), geom.NewRect(30, 40))

	origin, size := m.Hole()
	assert.Equal(t, geom.NewPoint2D(10, 20), origin)
	assert.Equal(t, geom.NewRect(30, 40), size)
}

func TestPolylinePointsAreCopied(t *testing.T) {
	p := NewPolyline()
	src := []geom.Point2D{{X: 1, Y: 1}, {X: 2, Y: 2}}
	p.SetPoints(src)
	src[0].X = 9

	assert.Equal(t, []geom.Point2D{{X: 1, Y: 1}, {X: 2, Y: 2}}, p.Points())
}
