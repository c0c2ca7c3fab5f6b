package selector

import (
	"errors"
	"fmt"
	"strings"

	"github.com/OpticalFlyer/tagger/geom"
	"github.com/OpticalFlyer/tagger/scene"
)

// Mode selects the active selection strategy of an AreaSelector
type Mode int

const (
	ModeNone Mode = iota
	ModePoint
	ModeRect
	ModePolygon
)

var ErrUnknownMode = errors.New("unknown selection mode")

func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModePoint:
		return "point"
	case ModeRect:
		return "rect"
	case ModePolygon:
		return "polygon"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode converts a mode name as written in config files and flags
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return ModeNone, nil
	case "point":
		return ModePoint, nil
	case "rect", "rectangle":
		return ModeRect, nil
	case "polygon":
		return ModePolygon, nil
	}
	return ModeNone, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Options tunes the selectors built by NewAreaSelector
type Options struct {
	PolygonCloseDistance float64
}

// AreaSelector owns one selector per mode and keeps exactly one of them
// attached while shown
type AreaSelector struct {
	selectors map[Mode]Selector
	mode      Mode
	visible   bool
	empty     *scene.Layer
}

// NewAreaSelector creates the per-mode selectors over bound. All of them
// report through the same callbacks. The area selector starts hidden in
// ModeNone.
func NewAreaSelector(bound geom.Rect, env Env, callbacks Callbacks, opts Options) *AreaSelector {
	polygon := NewPolygonSelector(bound, env, callbacks)
	polygon.CloseDistance = opts.PolygonCloseDistance

	return &AreaSelector{
		selectors: map[Mode]Selector{
			ModePoint:   NewPointSelector(bound, env, callbacks),
			ModeRect:    NewRectSelector(bound, env, callbacks),
			ModePolygon: polygon,
		},
		mode:  ModeNone,
		empty: scene.NewLayer(),
	}
}

// Mode returns the active selection mode
func (a *AreaSelector) Mode() Mode {
	return a.mode
}

// Selector returns the selector used for mode, nil for ModeNone
func (a *AreaSelector) Selector(mode Mode) Selector {
	return a.selectors[mode]
}

// SetSelectionMode switches the active selector. The previous one is
// hidden, abandoning any selection in progress.
func (a *AreaSelector) SetSelectionMode(mode Mode) {
	if mode == a.mode {
		return
	}
	if cur := a.selectors[a.mode]; cur != nil && a.visible {
		cur.Hide()
	}
	a.mode = mode
	if next := a.selectors[a.mode]; next != nil && a.visible {
		next.Show()
	}
}

func (a *AreaSelector) Show() {
	a.visible = true
	if cur := a.selectors[a.mode]; cur != nil {
		cur.Show()
	}
}

func (a *AreaSelector) Hide() {
	a.visible = false
	if cur := a.selectors[a.mode]; cur != nil {
		cur.Hide()
	}
}

// Cancel abandons the selection in progress without committing; the active
// selector stays attached
func (a *AreaSelector) Cancel() {
	cur := a.selectors[a.mode]
	if cur == nil || !a.visible {
		return
	}
	cur.Hide()
	cur.Show()
}

// Resize forwards the new bound to every selector, active or not
func (a *AreaSelector) Resize(width, height float64) {
	for _, s := range a.selectors {
		s.Resize(width, height)
	}
}

func (a *AreaSelector) Enabled() bool {
	cur := a.selectors[a.mode]
	return a.visible && cur != nil && cur.Enabled()
}

// Layer returns the elements of the active selector
func (a *AreaSelector) Layer() *scene.Layer {
	if cur := a.selectors[a.mode]; cur != nil {
		return cur.Layer()
	}
	return a.empty
}
