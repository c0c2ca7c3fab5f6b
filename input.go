package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/tagger/event"
	"github.com/OpticalFlyer/tagger/host"
	"github.com/OpticalFlyer/tagger/selector"
)

var modeKeys = map[ebiten.Key]selector.Mode{
	ebiten.KeyDigit1: selector.ModeNone,
	ebiten.KeyDigit2: selector.ModePoint,
	ebiten.KeyDigit3: selector.ModeRect,
	ebiten.KeyDigit4: selector.ModePolygon,
}

// selectionKeys are the keys selectors listen to
var selectionKeys = []struct {
	key   ebiten.Key
	event event.Key
}{
	{ebiten.KeyShift, event.KeyShift},
	{ebiten.KeyControl, event.KeyControl},
	{ebiten.KeyEscape, event.KeyEscape},
	{ebiten.KeyEnter, event.KeyEnter},
}

func (g *Tagger) handleKeys() {
	for _, k := range selectionKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			g.input.Key(k.event, true)
		}
		if inpututil.IsKeyJustReleased(k.key) {
			g.input.Key(k.event, false)
		}
	}
}

// handleMouse feeds the mouse as pointer 0. Presses that land on the tool
// panel stay with the panel.
func (g *Tagger) handleMouse() {
	x, y := ebiten.CursorPosition()
	pressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	released := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	if g.ui.IsInteractingWithUI() {
		pressed = false
	}
	g.input.Pointer(host.MousePointer, float64(x), float64(y), pressed, released)
}
