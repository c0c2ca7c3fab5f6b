package geom

import (
	"math"
	"testing"
)

func TestTransformToLocal(t *testing.T) {
	tests := []struct {
		name   string
		origin Point2D
		client Rect
		bound  Rect
		in     Point2D
		want   Point2D
	}{
		{
			name:   "identity",
			client: NewRect(800, 600),
			bound:  NewRect(800, 600),
			in:     NewPoint2D(10, 20),
			want:   NewPoint2D(10, 20),
		},
		{
			name:   "offset surface",
			origin: NewPoint2D(100, 50),
			client: NewRect(400, 300),
			bound:  NewRect(400, 300),
			in:     NewPoint2D(110, 60),
			want:   NewPoint2D(10, 10),
		},
		{
			name:   "image displayed at half size",
			origin: NewPoint2D(0, 0),
			client: NewRect(960, 540),
			bound:  NewRect(1920, 1080),
			in:     NewPoint2D(480, 270),
			want:   NewPoint2D(960, 540),
		},
		{
			name:   "zero client size",
			origin: NewPoint2D(5, 5),
			bound:  NewRect(10, 10),
			in:     NewPoint2D(7, 9),
			want:   NewPoint2D(2, 4),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTransform(tt.origin, tt.client, tt.bound)
			got := tr.ToLocal(tt.in)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("got %v; want %v", got, tt.want)
			}

			back := tr.ToClient(got)
			if math.Abs(back.X-tt.in.X) > 1e-9 || math.Abs(back.Y-tt.in.Y) > 1e-9 {
				t.Errorf("round trip got %v; want %v", back, tt.in)
			}
		})
	}
}

func TestTransformSizeToClient(t *testing.T) {
	tr := NewTransform(NewPoint2D(0, 0), NewRect(500, 250), NewRect(1000, 1000))
	if got := tr.SizeToClient(NewRect(100, 100)); got != NewRect(50, 25) {
		t.Errorf("got %v; want 50x25", got)
	}
}

func BenchmarkTransformToLocal(b *testing.B) {
	tr := NewTransform(NewPoint2D(120, 40), NewRect(960, 540), NewRect(1920, 1080))
	points := []Point2D{
		{X: 0, Y: 0},
		{X: 480, Y: 270},
		{X: 1080, Y: 580},
		{X: 133.7, Y: 42.42},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, p := range points {
			tr.ToLocal(p)
		}
	}
}
