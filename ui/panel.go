package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ Container = (*Panel)(nil)

const (
	titleBarHeight = 20.0
	resizeArea     = 5.0
	minPanelWidth  = 100.0
	minPanelHeight = 50.0
	panelAlpha     = 200
)

type ResizeState int

const (
	resizeNone ResizeState = iota
	resizeLeft
	resizeRight
	resizeBottom
	resizeBottomLeft
	resizeBottomRight
)

// Panel is a floating window with a title bar. It can be dragged by the
// title bar and resized from its side and bottom edges; children are
// arranged by its layout.
type Panel struct {
	X, Y          float64
	Width, Height float64
	Title         string

	children []Component
	layout   Layout
	parent   Container

	// Interaction state
	isDragging                bool
	isResizing                bool
	isPressedInside           bool
	dragStartX                float64
	dragStartY                float64
	resizeState               ResizeState
	startX                    float64
	startWidth                float64
	startHeight               float64
	mouseButtonPreviouslyDown bool
	ownsCursor                bool

	// Window dimensions
	windowWidth  int
	windowHeight int
}

func NewPanel(x, y, width, height float64, title string, layout Layout) *Panel {
	return &Panel{
		X:            x,
		Y:            y,
		Width:        width,
		Height:       height,
		Title:        title,
		layout:       layout,
		windowWidth:  800, // Default window size
		windowHeight: 600, // Default window size
	}
}

func (p *Panel) AddChild(child Component) {
	child.SetParent(p)
	p.children = append(p.children, child)
	p.arrange()
}

func (p *Panel) RemoveChild(child Component) {
	for i, c := range p.children {
		if c == child {
			p.children = append(p.children[:i], p.children[i+1:]...)
			child.SetParent(nil)
			break
		}
	}
	p.arrange()
}

func (p *Panel) Children() []Component {
	return p.children
}

func (p *Panel) Layout() Layout {
	return p.layout
}

func (p *Panel) SetParent(parent Container) {
	p.parent = parent
}

func (p *Panel) GetParent() Container {
	return p.parent
}

func (p *Panel) Bounds() Rectangle {
	return Rectangle{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

func (p *Panel) SetBounds(r Rectangle) {
	p.X, p.Y = r.X, r.Y
	p.Width = max(minPanelWidth, r.Width)
	p.Height = max(minPanelHeight, r.Height)
	p.arrange()
}

func (p *Panel) arrange() {
	if p.layout != nil {
		p.layout.ArrangeChildren(p)
	}
}

// UpdateWindowSize keeps the title bar reachable after the window shrinks
func (p *Panel) UpdateWindowSize(width, height int) {
	p.windowWidth = width
	p.windowHeight = height
	p.X = min(p.X, float64(width)-p.Width)
	p.Y = min(p.Y, float64(height)-titleBarHeight)
	p.X = max(p.X, 0)
	p.Y = max(p.Y, 0)
}

// Active reports whether the panel owns the current mouse press
func (p *Panel) Active() bool {
	return p.isDragging || p.isResizing || p.isPressedInside
}

// Hovered reports whether the point is over the panel or its resize edges
func (p *Panel) Hovered(x, y float64) bool {
	return p.Bounds().Contains(x, y) || p.getResizeArea(x, y) != resizeNone
}

func (p *Panel) getResizeArea(x, y float64) ResizeState {
	withinY := y >= p.Y+titleBarHeight && y <= p.Y+p.Height+resizeArea
	withinX := x >= p.X-resizeArea && x <= p.X+p.Width+resizeArea

	left := withinY && x >= p.X-resizeArea && x <= p.X+resizeArea
	right := withinY && x >= p.X+p.Width-resizeArea && x <= p.X+p.Width+resizeArea
	bottom := withinX && y >= p.Y+p.Height-resizeArea && y <= p.Y+p.Height+resizeArea

	switch {
	case left && bottom:
		return resizeBottomLeft
	case right && bottom:
		return resizeBottomRight
	case left:
		return resizeLeft
	case right:
		return resizeRight
	case bottom:
		return resizeBottom
	}
	return resizeNone
}

func (p *Panel) updateCursor(x, y float64) {
	switch p.getResizeArea(x, y) {
	case resizeLeft, resizeRight:
		ebiten.SetCursorShape(ebiten.CursorShapeEWResize)
	case resizeBottom:
		ebiten.SetCursorShape(ebiten.CursorShapeNSResize)
	case resizeBottomRight:
		ebiten.SetCursorShape(ebiten.CursorShapeNWSEResize)
	case resizeBottomLeft:
		ebiten.SetCursorShape(ebiten.CursorShapeNESWResize)
	default:
		if p.isInTitleBar(x, y) {
			ebiten.SetCursorShape(ebiten.CursorShapeMove)
		} else {
			ebiten.SetCursorShape(ebiten.CursorShapeDefault)
		}
	}
}

func (p *Panel) Update() error {
	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)

	if p.Hovered(fx, fy) || p.Active() {
		p.updateCursor(fx, fy)
		p.ownsCursor = true
	} else if p.ownsCursor {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
		p.ownsCursor = false
	}
	p.HandleInput(fx, fy, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
	return nil
}

// HandleInput runs the drag/resize state machine for the mouse at screen
// position (x, y) and forwards presses to the children. It returns true
// while the panel owns the press.
func (p *Panel) HandleInput(x, y float64, pressed bool) bool {
	if pressed {
		if !p.mouseButtonPreviouslyDown {
			p.mouseButtonPreviouslyDown = true
			p.beginPress(x, y)
		}

		switch {
		case p.isDragging:
			p.X = x - p.dragStartX
			p.Y = y - p.dragStartY
		case p.isResizing:
			p.resize(x-p.dragStartX, y-p.dragStartY)
		case p.isPressedInside:
			p.forward(x, y, true)
		}
		return p.Active()
	}

	if p.isPressedInside {
		p.forward(x, y, false)
	}
	p.isDragging = false
	p.isResizing = false
	p.isPressedInside = false
	p.mouseButtonPreviouslyDown = false
	return false
}

func (p *Panel) beginPress(x, y float64) {
	if state := p.getResizeArea(x, y); state != resizeNone {
		p.isResizing = true
		p.resizeState = state
		p.dragStartX = x
		p.dragStartY = y
		p.startX = p.X
		p.startWidth = p.Width
		p.startHeight = p.Height
		return
	}
	if p.isInTitleBar(x, y) {
		p.isDragging = true
		p.dragStartX = x - p.X
		p.dragStartY = y - p.Y
		return
	}
	p.isPressedInside = p.Bounds().Contains(x, y)
}

func (p *Panel) resize(deltaX, deltaY float64) {
	switch p.resizeState {
	case resizeLeft, resizeBottomLeft:
		p.Width = max(minPanelWidth, p.startWidth-deltaX)
		p.X = p.startX + p.startWidth - p.Width
	case resizeRight, resizeBottomRight:
		p.Width = max(minPanelWidth, p.startWidth+deltaX)
	}
	switch p.resizeState {
	case resizeBottom, resizeBottomLeft, resizeBottomRight:
		p.Height = max(minPanelHeight, p.startHeight+deltaY)
	}
	p.arrange()
}

// forward passes the input to children in panel-relative coordinates
func (p *Panel) forward(x, y float64, pressed bool) {
	for _, child := range p.children {
		child.HandleInput(x-p.X, y-p.Y, pressed)
	}
}

func (p *Panel) Draw(screen *ebiten.Image) {
	bgColor := color.RGBA{100, 100, 100, panelAlpha}
	titleColor := color.RGBA{60, 60, 60, panelAlpha}

	// Draw panel background
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), bgColor, true)

	// Draw title bar
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(titleBarHeight), titleColor, true)
	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X)+4, int(p.Y)+2)

	for _, child := range p.children {
		child.Draw(screen)
	}
}

func (p *Panel) isInTitleBar(x, y float64) bool {
	return x >= p.X && x <= p.X+p.Width &&
		y >= p.Y && y <= p.Y+titleBarHeight
}
