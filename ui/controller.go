package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	choicePadding = 8.0
	choiceSpacing = 6.0
	choiceHeight  = 26.0
	choiceWidth   = 140.0
)

// Controller owns the floating panels and the tool choice group: a set of
// buttons of which exactly one is selected
type Controller struct {
	panels   []*Panel
	choices  []*Button
	onChoose func(index int)
}

func NewController() *Controller {
	return &Controller{}
}

func (c *Controller) AddPanel(panel *Panel) {
	c.panels = append(c.panels, panel)
}

// AddChoicePanel adds a panel with one button per label. Clicking a button
// selects it and reports its index to onChoose.
func (c *Controller) AddChoicePanel(x, y float64, title string, labels []string, onChoose func(index int)) *Panel {
	n := float64(len(labels))
	height := titleBarHeight + 2*choicePadding + n*choiceHeight + max(0, n-1)*choiceSpacing
	panel := NewPanel(x, y, choiceWidth, height, title,
		VerticalLayout{Padding: choicePadding, Spacing: choiceSpacing, Height: choiceHeight})

	c.onChoose = onChoose
	c.choices = c.choices[:0]
	for i, label := range labels {
		button := NewButton(0, 0, label, func() {
			c.Choose(i)
			if c.onChoose != nil {
				c.onChoose(i)
			}
		})
		c.choices = append(c.choices, button)
		panel.AddChild(button)
	}
	c.AddPanel(panel)
	return panel
}

// Choose marks the button at index as selected and clears the others.
// An index outside the group clears all of them.
func (c *Controller) Choose(index int) {
	for i, button := range c.choices {
		button.SetSelected(i == index)
	}
}

// Chosen returns the index of the selected button, or -1
func (c *Controller) Chosen() int {
	for i, button := range c.choices {
		if button.Selected() {
			return i
		}
	}
	return -1
}

func (c *Controller) Update() error {
	for _, panel := range c.panels {
		if err := panel.Update(); err != nil {
			return err
		}
	}
	return nil
}

// Draw paints the panels in the order they were added
func (c *Controller) Draw(screen *ebiten.Image) {
	for _, panel := range c.panels {
		panel.Draw(screen)
	}
}

// UpdateWindowSize keeps every panel reachable in the resized window
func (c *Controller) UpdateWindowSize(width, height int) {
	for _, panel := range c.panels {
		panel.UpdateWindowSize(width, height)
	}
}

// ShowDebugInfo prints frame rates followed by extra lines
func (c *Controller) ShowDebugInfo(screen *ebiten.Image, extra string) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f TPS: %.2f\n%s", ebiten.ActualFPS(), ebiten.ActualTPS(), extra))
}

// IsInteractingWithUI reports whether a panel owns the current mouse press
func (c *Controller) IsInteractingWithUI() bool {
	for _, panel := range c.panels {
		if panel.Active() {
			return true
		}
	}
	return false
}
