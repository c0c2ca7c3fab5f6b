package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpticalFlyer/tagger/event"
	"github.com/OpticalFlyer/tagger/geom"
)

func newRectHarness(t *testing.T) (*harness, *RectSelector) {
	t.Helper()
	h := newHarness(200, 100)
	s := NewRectSelector(geom.NewRect(200, 100), h.env(), h.rec.callbacks())
	s.Show()
	return h, s
}

func TestRectOnePointDragCommits(t *testing.T) {
	h, s := newRectHarness(t)

	h.down(10, 10)
	assert.True(t, s.Capturing())
	assert.Equal(t, 1, h.rec.begins)

	h.move(50, 40)
	h.up(50, 40)

	require.Len(t, h.rec.regions, 1)
	assert.Equal(t, geom.RegionRect, h.rec.regions[0].Type())
	assert.Equal(t, [4]float64{10, 10, 40, 30}, rect(h.rec.regions[0]))
	assert.False(t, s.Capturing())
}

func TestRectDragTowardsOriginIsNormalised(t *testing.T) {
	h, _ := newRectHarness(t)

	h.down(50, 40)
	h.move(10, 10)
	h.up(10, 10)

	require.Len(t, h.rec.regions, 1)
	assert.Equal(t, [4]float64{10, 10, 40, 30}, rect(h.rec.regions[0]))
}

func TestRectSquareModifierLargerMagnitudeWins(t *testing.T) {
	center := geom.NewPoint2D(100, 50)
	tests := []struct {
		name   string
		from   geom.Point2D
		to     geom.Point2D
		want   [4]float64
		corner geom.Point2D
	}{
		{name: "wide drag", from: center, to: geom.NewPoint2D(130, 60), want: [4]float64{100, 50, 30, 30}, corner: geom.NewPoint2D(130, 80)},
		{name: "tall drag up-left", from: center, to: geom.NewPoint2D(95, 20), want: [4]float64{70, 20, 30, 30}, corner: geom.NewPoint2D(70, 20)},
		{name: "flat drag counts as positive", from: center, to: geom.NewPoint2D(80, 50), want: [4]float64{80, 50, 20, 20}, corner: geom.NewPoint2D(80, 70)},
		{name: "near right edge", from: geom.NewPoint2D(180, 50), to: geom.NewPoint2D(190, 90), want: [4]float64{180, 50, 20, 20}, corner: geom.NewPoint2D(200, 70)},
		{name: "near top edge up-left", from: geom.NewPoint2D(100, 10), to: geom.NewPoint2D(60, 5), want: [4]float64{90, 0, 10, 10}, corner: geom.NewPoint2D(90, 0)},
		{name: "anchor on the edge", from: geom.NewPoint2D(200, 50), to: geom.NewPoint2D(200, 80), want: [4]float64{200, 50, 0, 0}, corner: geom.NewPoint2D(200, 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s := newRectHarness(t)
			h.shiftDown()
			assert.Equal(t, Square, s.Modificator())

			h.down(tt.from.X, tt.from.Y)
			h.move(tt.to.X, tt.to.Y)
			_, b := s.Corners()
			assert.Equal(t, tt.corner, b)

			h.up(tt.to.X, tt.to.Y)
			require.Len(t, h.rec.regions, 1)
			r := h.rec.regions[0]
			assert.Equal(t, tt.want, rect(r))
			assert.Equal(t, r.Width(), r.Height())
		})
	}
}

func TestRectSquareFromOrigin(t *testing.T) {
	h, _ := newRectHarness(t)
	h.shiftDown()

	h.down(0, 0)
	h.move(30, 10)
	h.up(30, 10)

	require.Len(t, h.rec.regions, 1)
	assert.Equal(t, [4]float64{0, 0, 30, 30}, rect(h.rec.regions[0]))
}

func TestRectSquareIsAppliedWhenShiftChangesMidDrag(t *testing.T) {
	h, s := newRectHarness(t)

	h.down(0, 0)
	h.move(30, 10)
	h.shiftDown()
	_, b := s.Corners()
	assert.Equal(t, geom.NewPoint2D(30, 30), b)

	h.shiftUp()
	_, b = s.Corners()
	assert.Equal(t, geom.NewPoint2D(30, 10), b)
	assert.Equal(t, Free, s.Modificator())
}

func TestRectTwoPointPlacement(t *testing.T) {
	h, s := newRectHarness(t)
	h.ctrlDown()
	require.True(t, s.TwoPoints())

	h.move(5, 5)
	h.click(5, 5)
	assert.True(t, s.Armed())
	assert.Zero(t, h.rec.begins)
	assert.Empty(t, h.rec.regions)

	h.move(25, 15)
	h.click(25, 15)

	require.Len(t, h.rec.regions, 1)
	assert.Equal(t, [4]float64{5, 5, 20, 10}, rect(h.rec.regions[0]))
	assert.Equal(t, 1, h.rec.begins)

	a, b := s.Corners()
	assert.Equal(t, geom.NewPoint2D(25, 15), a)
	assert.Equal(t, geom.NewPoint2D(25, 15), b)
	assert.True(t, s.TwoPoints(), "two-point mode survives a commit")
	assert.False(t, s.Armed())
}

func TestRectTwoPointArmedTracksFreeCorner(t *testing.T) {
	h, s := newRectHarness(t)
	h.ctrlDown()
	h.click(5, 5)

	h.move(40, 30)
	h.frames.Flush()

	a, b := s.Corners()
	assert.Equal(t, geom.NewPoint2D(5, 5), a)
	assert.Equal(t, geom.NewPoint2D(40, 30), b)
	assert.True(t, s.crossA.Visible())
	assert.True(t, s.crossB.Visible())
	assert.False(t, s.box.Visible())
	assert.False(t, s.mask.Visible())
}

func TestRectCtrlUpWhileArmedCancels(t *testing.T) {
	h, s := newRectHarness(t)
	h.ctrlDown()
	h.enter(5, 5)
	h.click(5, 5)
	h.move(25, 15)
	h.frames.Flush()
	require.True(t, s.Armed())

	h.ctrlUp()
	h.frames.Flush()

	assert.Empty(t, h.rec.regions)
	assert.False(t, s.TwoPoints())
	assert.False(t, s.Armed())
	a, b := s.Corners()
	assert.Equal(t, a, b)
	assert.False(t, s.crossB.Visible())
	assert.False(t, s.box.Visible())
	assert.False(t, s.mask.Visible())
}

func TestRectCtrlUpMidTwoPointCaptureReleasesCapture(t *testing.T) {
	h, s := newRectHarness(t)
	h.ctrlDown()
	h.click(5, 5)
	h.down(25, 15)
	require.True(t, s.Capturing())

	h.ctrlUp()

	assert.Empty(t, h.rec.regions)
	assert.False(t, s.Capturing())
	assert.Len(t, h.host.acquired, 1)
	assert.Len(t, h.host.released, 1)
}

func TestRectCtrlDownWhileCapturingIsIgnored(t *testing.T) {
	h, s := newRectHarness(t)

	h.down(10, 10)
	h.ctrlDown()
	assert.False(t, s.TwoPoints())

	h.up(20, 20)
	require.Len(t, h.rec.regions, 1)
	assert.Equal(t, [4]float64{10, 10, 10, 10}, rect(h.rec.regions[0]))
}

func TestRectPointerCaptureReleasedOncePerAcquire(t *testing.T) {
	h, _ := newRectHarness(t)

	for round := 0; round < 3; round++ {
		h.down(10, 10)
		for i := 0; i < 20; i++ {
			h.move(10+float64(i), 10+float64(i))
		}
		h.down(30, 30)
		h.up(30, 30)
		h.up(30, 30)
	}

	assert.Len(t, h.host.acquired, 3)
	assert.Len(t, h.host.released, 3)
	assert.Len(t, h.rec.regions, 3)
}

func TestRectUpWithoutDownIsNoop(t *testing.T) {
	h, s := newRectHarness(t)

	h.up(10, 10)
	assert.Empty(t, h.rec.regions)
	assert.Empty(t, h.host.released)
	assert.False(t, s.Capturing())
}

func TestRectHideMidCaptureResets(t *testing.T) {
	h, s := newRectHarness(t)

	h.enter(10, 10)
	h.down(10, 10)
	h.move(40, 40)
	h.frames.Flush()
	require.True(t, s.Layer().AnyVisible())

	s.Hide()
	assert.False(t, s.Layer().AnyVisible())
	assert.False(t, s.Capturing())
	assert.False(t, s.Enabled())
	assert.Equal(t, 1, len(h.host.released))
	assert.Zero(t, h.events.Listeners())

	h.frames.Flush()
	assert.False(t, s.Layer().AnyVisible())

	s.Show()
	h.down(50, 50)
	assert.True(t, s.Capturing())
	a, b := s.Corners()
	assert.Equal(t, geom.NewPoint2D(50, 50), a)
	assert.Equal(t, a, b)
	h.up(60, 70)

	require.Len(t, h.rec.regions, 1)
	assert.Equal(t, [4]float64{50, 50, 10, 20}, rect(h.rec.regions[0]))
	assert.Len(t, h.host.acquired, 2)
	assert.Len(t, h.host.released, 2)
}

func TestRectVisibilityFollowsInteraction(t *testing.T) {
	h, s := newRectHarness(t)

	h.enter(10, 10)
	h.frames.Flush()
	assert.True(t, s.crossA.Visible())
	assert.False(t, s.crossB.Visible())

	h.down(10, 10)
	h.move(60, 50)
	h.frames.Flush()
	assert.True(t, s.crossB.Visible())
	assert.True(t, s.box.Visible())
	assert.True(t, s.mask.Visible())
	assert.Equal(t, geom.NewPoint2D(10, 10), s.box.Origin())
	assert.Equal(t, geom.NewRect(50, 40), s.box.Size())
	origin, size := s.mask.Hole()
	assert.Equal(t, s.box.Origin(), origin)
	assert.Equal(t, s.box.Size(), size)

	h.up(60, 50)
	h.frames.Flush()
	assert.True(t, s.crossA.Visible())
	assert.False(t, s.crossB.Visible())
	assert.False(t, s.mask.Visible())

	h.leave(250, 50)
	h.frames.Flush()
	assert.False(t, s.Layer().AnyVisible())
}

func TestRectLeaveAndReenterWithinFrameDoesNotFlicker(t *testing.T) {
	h, s := newRectHarness(t)
	h.enter(10, 10)
	h.frames.Flush()

	h.leave(-1, 10)
	h.enter(1, 10)
	assert.Equal(t, 1, h.frames.Pending())

	h.frames.Flush()
	assert.True(t, s.crossA.Visible())
}

func TestRectLeaveWhileCapturingFreezesFreeCorner(t *testing.T) {
	h, s := newRectHarness(t)
	h.enter(10, 10)
	h.down(10, 10)
	h.move(150, 80)

	h.leave(260, 90)
	assert.True(t, s.Capturing())
	_, b := s.Corners()
	assert.Equal(t, geom.NewPoint2D(200, 90), b)

	h.up(260, 90)
	require.Len(t, h.rec.regions, 1)
	assert.Equal(t, [4]float64{10, 10, 190, 80}, rect(h.rec.regions[0]))
	assert.True(t, h.rec.regions[0].FitsWithin(s.Bound()))
}

func TestRectUsesClientRectTransform(t *testing.T) {
	h := newHarness(100, 50)
	h.host.origin = geom.NewPoint2D(20, 10)
	s := NewRectSelector(geom.NewRect(200, 100), h.env(), h.rec.callbacks())
	s.Show()

	h.down(25, 15)
	h.up(45, 35)

	require.Len(t, h.rec.regions, 1)
	assert.Equal(t, [4]float64{10, 10, 40, 40}, rect(h.rec.regions[0]))
}

func TestRectResizeClampsCorners(t *testing.T) {
	h, s := newRectHarness(t)
	h.down(150, 80)

	s.Resize(100, 50)
	a, _ := s.Corners()
	assert.Equal(t, geom.NewPoint2D(100, 50), a)
	assert.Equal(t, geom.NewRect(100, 50), s.Bound())
}

func TestRectEventsIgnoredWhileHidden(t *testing.T) {
	h := newHarness(200, 100)
	s := NewRectSelector(geom.NewRect(200, 100), h.env(), h.rec.callbacks())

	h.down(10, 10)
	h.up(20, 20)

	assert.False(t, s.Enabled())
	assert.Empty(t, h.rec.regions)
	assert.Zero(t, h.frames.Pending())
}

func TestRectCallbacksAreOptional(t *testing.T) {
	h := newHarness(200, 100)
	s := NewRectSelector(geom.NewRect(200, 100), h.env(), Callbacks{})
	s.Show()

	assert.NotPanics(t, func() {
		h.down(10, 10)
		h.up(20, 20)
	})
}

func TestRectOnePointCommitMovesAnchorToCursor(t *testing.T) {
	h, s := newRectHarness(t)
	h.enter(10, 10)
	h.down(10, 10)
	h.move(50, 40)
	h.up(50, 40)

	require.Len(t, h.rec.regions, 1)
	a, b := s.Corners()
	assert.Equal(t, geom.NewPoint2D(50, 40), a)
	assert.Equal(t, a, b)

	h.frames.Flush()
	assert.True(t, s.crossA.Visible())
	assert.Equal(t, geom.NewPoint2D(50, 40), s.crossA.Pos())
	assert.False(t, s.box.Visible())
}

func TestRectSquareSurvivesResize(t *testing.T) {
	h, s := newRectHarness(t)
	h.shiftDown()
	h.down(20, 20)
	h.move(90, 60)

	s.Resize(60, 100)
	a, b := s.Corners()
	assert.Equal(t, b.X-a.X, b.Y-a.Y)
	assert.True(t, geom.RectFromCorners(a, b).FitsWithin(s.Bound()))
}

func TestRectIgnoresOtherPointersWhileCapturing(t *testing.T) {
	h, s := newRectHarness(t)
	h.pointerAs(1, event.PointerDown, 10, 10)
	h.pointerAs(1, event.PointerMove, 40, 30)

	h.pointerAs(2, event.PointerDown, 150, 80)
	h.pointerAs(2, event.PointerMove, 160, 90)
	h.pointerAs(2, event.PointerLeave, 250, 90)
	h.pointerAs(2, event.PointerUp, 160, 90)

	assert.True(t, s.Capturing())
	assert.Empty(t, h.rec.regions)
	assert.Empty(t, h.host.released)
	_, b := s.Corners()
	assert.Equal(t, geom.NewPoint2D(40, 30), b)

	h.pointerAs(1, event.PointerUp, 40, 30)
	require.Len(t, h.rec.regions, 1)
	assert.Equal(t, [4]float64{10, 10, 30, 20}, rect(h.rec.regions[0]))
	assert.Equal(t, []int{1}, h.host.released)
}
