package ui

import "github.com/hajimehoshi/ebiten/v2"

// Component represents the basic building block of the UI system.
// All UI elements must implement this interface.
type Component interface {
	Update() error
	Draw(screen *ebiten.Image)
	Bounds() Rectangle
	SetBounds(r Rectangle)
	HandleInput(x, y float64, pressed bool) bool
	SetParent(parent Container)
	GetParent() Container
}

// Container represents a Component that can hold and manage other Components.
type Container interface {
	Component
	AddChild(child Component)
	RemoveChild(child Component)
	Children() []Component
	Layout() Layout
}

// Rectangle represents the bounds of a Component
type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether the point lies inside the rectangle
func (r Rectangle) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Layout defines how Components are arranged within a Container
type Layout interface {
	ArrangeChildren(container Container)
}

// VerticalLayout stacks children below the title bar, each spanning the
// container's width
type VerticalLayout struct {
	Padding float64
	Spacing float64
	Height  float64
}

func (l VerticalLayout) ArrangeChildren(container Container) {
	bounds := container.Bounds()
	y := titleBarHeight + l.Padding
	for _, child := range container.Children() {
		child.SetBounds(Rectangle{
			X:      l.Padding,
			Y:      y,
			Width:  bounds.Width - 2*l.Padding,
			Height: l.Height,
		})
		y += l.Height + l.Spacing
	}
}
