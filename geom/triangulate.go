package geom

import (
	"fmt"

	earcut "github.com/flywave/go-earcut"
)

// Triangulate splits a simple polygon into triangles by ear clipping.
// It returns indices into points, three per triangle. Fewer than three
// points yield no triangles.
func Triangulate(points []Point2D) ([]int, error) {
	if len(points) < 3 {
		return nil, nil
	}
	flat := make([]float64, 0, len(points)*2)
	for _, p := range points {
		flat = append(flat, p.X, p.Y)
	}
	indices, err := earcut.Earcut(flat, nil, 2)
	if err != nil {
		return nil, fmt.Errorf("triangulating %d points: %w", len(points), err)
	}
	return indices, nil
}
