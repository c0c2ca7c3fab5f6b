package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ Component = (*Button)(nil)

const debugGlyphHeight = 16

type Button struct {
	x, y          float64
	width, height float64
	text          string
	onClick       func()
	parent        Container

	// State
	isHovered  bool
	isPressed  bool
	isSelected bool
}

func (b *Button) SetParent(parent Container) {
	b.parent = parent
}

func (b *Button) GetParent() Container {
	return b.parent
}

func NewButton(x, y float64, text string, onClick func()) *Button {
	return &Button{
		x:       x,
		y:       y,
		width:   100,
		height:  30,
		text:    text,
		onClick: onClick,
	}
}

// SetSelected marks the button as the active choice of its group
func (b *Button) SetSelected(selected bool) {
	b.isSelected = selected
}

func (b *Button) Selected() bool {
	return b.isSelected
}

func (b *Button) Update() error {
	return nil
}

func (b *Button) Draw(screen *ebiten.Image) {
	// Colors
	var bgColor color.Color
	switch {
	case b.isPressed:
		bgColor = color.RGBA{100, 100, 100, 255}
	case b.isSelected:
		bgColor = color.RGBA{33, 150, 243, 255}
	case b.isHovered:
		bgColor = color.RGBA{180, 180, 180, 255}
	default:
		bgColor = color.RGBA{150, 150, 150, 255}
	}

	absoluteX, absoluteY := b.x, b.y
	if b.parent != nil {
		parentBounds := b.parent.Bounds()
		absoluteX += parentBounds.X
		absoluteY += parentBounds.Y
	}

	// Draw background
	vector.DrawFilledRect(screen, float32(absoluteX), float32(absoluteY),
		float32(b.width), float32(b.height), bgColor, true)

	// Draw border
	vector.StrokeRect(screen, float32(absoluteX), float32(absoluteY),
		float32(b.width), float32(b.height), 1, color.Black, true)

	ebitenutil.DebugPrintAt(screen, b.text,
		int(absoluteX)+6, int(absoluteY+(b.height-debugGlyphHeight)/2))
}

func (b *Button) HandleInput(x, y float64, pressed bool) bool {
	// Check if point is within button bounds
	if b.Bounds().Contains(x, y) {
		b.isHovered = true

		if pressed {
			b.isPressed = true
		} else if b.isPressed {
			b.isPressed = false
			if b.onClick != nil {
				b.onClick()
			}
		}
		return true
	}

	b.isHovered = false
	b.isPressed = false
	return false
}

func (b *Button) Bounds() Rectangle {
	return Rectangle{
		X:      b.x,
		Y:      b.y,
		Width:  b.width,
		Height: b.height,
	}
}

func (b *Button) SetBounds(r Rectangle) {
	b.x, b.y = r.X, r.Y
	b.width, b.height = r.Width, r.Height
}
