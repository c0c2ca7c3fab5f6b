package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/tagger/selector"
)

// touchPointer maps a touch to a pointer id; the mouse owns id 0
func touchPointer(id ebiten.TouchID) int {
	return int(id) + 1
}

func (g *Tagger) handleTouchEvents() {
	touches := make([]ebiten.TouchID, 0, 8)
	touches = ebiten.AppendTouchIDs(touches)

	// Initialize touch tracking maps if needed
	if g.lastTouchX == nil {
		g.lastTouchX = make(map[ebiten.TouchID]float64)
		g.lastTouchY = make(map[ebiten.TouchID]float64)
	}

	// Clean up ended touches; a lifted finger ends its pointer
	for id := range g.lastTouchX {
		if !containsTouchID(touches, id) {
			g.input.PointerGone(touchPointer(id))
			delete(g.lastTouchX, id)
			delete(g.lastTouchY, id)
		}
	}

	if len(touches) < 2 {
		g.pinching = false
	}

	switch len(touches) {
	case 1: // Single touch - select, or pan when no selector is active
		id := touches[0]
		x, y := ebiten.TouchPosition(id)
		lastX, known := g.lastTouchX[id]
		lastY := g.lastTouchY[id]

		if g.area.Mode() == selector.ModeNone {
			dx := float64(x) - lastX
			dy := float64(y) - lastY
			if known && (dx != 0 || dy != 0) {
				g.view.PanBy(dx, dy)
			}
		} else {
			g.input.Pointer(touchPointer(id), float64(x), float64(y), !known, false)
		}
		g.lastTouchX[id] = float64(x)
		g.lastTouchY[id] = float64(y)

	case 2: // Two finger touch - pinch to zoom
		id1, id2 := touches[0], touches[1]
		if !g.pinching {
			// a pinch takes over any selection the first finger started
			g.pinching = true
			g.area.Cancel()
			g.input.Abandon(touchPointer(id1))
			g.input.Abandon(touchPointer(id2))
		}
		x1, y1 := ebiten.TouchPosition(id1)
		x2, y2 := ebiten.TouchPosition(id2)

		currentDist := distance(float64(x1), float64(y1), float64(x2), float64(y2))

		if _, ok := g.lastTouchX[id1]; ok {
			if _, ok := g.lastTouchX[id2]; ok {
				prevDist := distance(g.lastTouchX[id1], g.lastTouchY[id1],
					g.lastTouchX[id2], g.lastTouchY[id2])

				midX := (float64(x1) + float64(x2)) / 2
				midY := (float64(y1) + float64(y2)) / 2

				if currentDist > prevDist*1.1 { // Zoom in
					g.view.ZoomAtPoint(true, midX, midY)
				} else if currentDist < prevDist*0.9 { // Zoom out
					g.view.ZoomAtPoint(false, midX, midY)
				}
			}
		}

		g.lastTouchX[id1], g.lastTouchY[id1] = float64(x1), float64(y1)
		g.lastTouchX[id2], g.lastTouchY[id2] = float64(x2), float64(y2)
	}
}

// Helper function to check if a TouchID is in a slice
func containsTouchID(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, tid := range ids {
		if tid == id {
			return true
		}
	}
	return false
}

// Helper function to calculate distance between two points
func distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Hypot(dx, dy)
}
