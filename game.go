package main

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/tagger/asset"
	"github.com/OpticalFlyer/tagger/canvas"
	"github.com/OpticalFlyer/tagger/config"
	"github.com/OpticalFlyer/tagger/event"
	"github.com/OpticalFlyer/tagger/frame"
	"github.com/OpticalFlyer/tagger/geom"
	"github.com/OpticalFlyer/tagger/host"
	"github.com/OpticalFlyer/tagger/render"
	"github.com/OpticalFlyer/tagger/selector"
	"github.com/OpticalFlyer/tagger/ui"
)

var backgroundColor = color.RGBA{30, 30, 30, 255}

// Tagger implements ebiten.Game interface.
type Tagger struct {
	asset   *asset.Asset
	image   *ebiten.Image
	view    *canvas.View
	watcher *asset.Watcher

	events *event.Dispatcher
	frames *frame.Scheduler
	input  *host.Input
	area   *selector.AreaSelector

	ui *ui.Controller

	tag       string
	debugMode bool

	lastZoomTime float64 // Track last zoom time

	// Touch state for multi-touch interactions
	lastTouchX map[ebiten.TouchID]float64
	lastTouchY map[ebiten.TouchID]float64
	pinching   bool
}

func newTagger(cfg *config.Config, path string, img image.Image) (*Tagger, error) {
	mode, err := cfg.Mode()
	if err != nil {
		return nil, err
	}

	size := asset.Size(img)
	g := &Tagger{
		asset:        asset.New(path, size),
		image:        ebiten.NewImageFromImage(img),
		view:         canvas.New(cfg.Window.Width, cfg.Window.Height, size),
		events:       event.NewDispatcher(),
		frames:       frame.NewScheduler(),
		ui:           ui.NewController(),
		tag:          cfg.Editor.DefaultTag,
		debugMode:    cfg.Editor.Debug,
		lastZoomTime: float64(time.Now().UnixNano()) / 1e9,
	}
	if path == "" {
		g.asset.Name = "untitled"
	}
	g.asset.Visit()
	g.input = host.NewInput(g.events, g.view)

	env := selector.Env{Host: g.input, Events: g.events, Frames: g.frames}
	g.area = selector.NewAreaSelector(size, env, selector.Callbacks{
		OnSelectionBegin: g.onSelectionBegin,
		OnSelectionEnd:   g.onSelectionEnd,
	}, selector.Options{PolygonCloseDistance: cfg.Selector.PolygonCloseDistance})

	g.buildToolPanel()
	g.area.Show()
	g.setMode(mode)
	return g, nil
}

var toolModes = []selector.Mode{selector.ModeNone, selector.ModePoint, selector.ModeRect, selector.ModePolygon}

func (g *Tagger) buildToolPanel() {
	labels := make([]string, len(toolModes))
	for i, mode := range toolModes {
		labels[i] = fmt.Sprintf("%d %s", i+1, mode)
	}
	g.ui.AddChoicePanel(10, 10, "Tools", labels, func(i int) {
		g.setMode(toolModes[i])
	})
}

func (g *Tagger) setMode(mode selector.Mode) {
	if mode != g.area.Mode() {
		log.Printf("Selection mode %s", mode)
	}
	g.area.SetSelectionMode(mode)
	for i, m := range toolModes {
		if m == mode && g.ui.Chosen() != i {
			g.ui.Choose(i)
		}
	}
}

func (g *Tagger) onSelectionBegin() {
	log.Printf("Selection started in %s mode", g.area.Mode())
}

func (g *Tagger) onSelectionEnd(region geom.RegionData) {
	if err := g.asset.AddRegion(region, g.tag); err != nil {
		log.Printf("Dropped region: %v", err)
		return
	}
	data, err := json.Marshal(g.asset.Regions[len(g.asset.Regions)-1])
	if err != nil {
		log.Printf("Failed to encode region: %v", err)
		return
	}
	fmt.Println(string(data))
	log.Printf("Tagged %s as %q on %s", region, g.tag, g.asset.Name)
}

// drainChanges re-validates the asset for every change the watcher saw
func (g *Tagger) drainChanges() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path := <-g.watcher.Changes():
			g.reload(path)
		default:
			return
		}
	}
}

func (g *Tagger) reload(path string) {
	img, err := asset.Load(path)
	if err != nil {
		log.Printf("Reload of %s failed: %v", path, err)
		return
	}
	size := asset.Size(img)
	if err := g.asset.Refresh(size); err != nil {
		log.Printf("Asset invalidated: %v", err)
		g.view.SetImageSize(size)
		g.area.Resize(size.Width, size.Height)
	}
	g.image = ebiten.NewImageFromImage(img)
}

func (g *Tagger) Update() error {
	// Update UI first to handle any panel interactions
	if err := g.ui.Update(); err != nil {
		return err
	}
	g.drainChanges()

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debugMode = !g.debugMode
	}

	for key, mode := range modeKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.setMode(mode)
		}
	}

	// Handle keyboard zooming
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || // = key
		inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) { // numpad +
		g.view.ZoomIn()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || // - key
		inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) { // numpad -
		g.view.ZoomOut()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit0) {
		g.view.Fit()
	}

	// Handle mouse wheel zooming with time-based throttling
	currentTime := float64(time.Now().UnixNano()) / 1e9 // Current time in seconds
	_, wheelY := ebiten.Wheel()
	if wheelY != 0 && (currentTime-g.lastZoomTime) > 0.1 { // 100ms between zooms
		x, y := ebiten.CursorPosition()
		g.view.ZoomAtPoint(wheelY > 0, float64(x), float64(y))
		g.lastZoomTime = currentTime
	}

	// Handle keyboard panning
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		g.view.Pan(canvas.PanLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		g.view.Pan(canvas.PanRight)
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		g.view.Pan(canvas.PanUp)
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		g.view.Pan(canvas.PanDown)
	}

	g.handleKeys()
	g.handleMouse()
	g.handleTouchEvents()
	return nil
}

func (g *Tagger) Draw(screen *ebiten.Image) {
	// Apply the visual updates requested since the last frame
	g.frames.Flush()

	screen.Fill(backgroundColor)
	render.Image(screen, g.image, g.view)

	t := g.view.Transform()
	for _, r := range g.asset.Regions {
		render.Region(screen, r.Data, t)
	}
	render.Layer(screen, g.area.Layer(), t)

	// Draw UI
	g.ui.Draw(screen)

	// Draw debug overlay if enabled
	if g.debugMode {
		redColor := color.RGBA{R: 255, A: 255}
		strokeWidth := float32(1.0)

		// Draw crosshair
		centerX := float32(g.view.ScreenWidth / 2)
		centerY := float32(g.view.ScreenHeight / 2)
		crosshairSize := float32(10.0)

		vector.StrokeLine(screen,
			centerX-crosshairSize, centerY,
			centerX+crosshairSize, centerY,
			strokeWidth, redColor, false)
		vector.StrokeLine(screen,
			centerX, centerY-crosshairSize,
			centerX, centerY+crosshairSize,
			strokeWidth, redColor, false)

		x, y := ebiten.CursorPosition()
		ix, iy := g.view.ScreenToImage(float64(x), float64(y))
		debugText := fmt.Sprintf("Image: %.1f, %.1f\nZoom: %.3f\nMode: %s\nRegions: %d (%s)\nPending: %d",
			ix, iy, g.view.Zoom, g.area.Mode(), len(g.asset.Regions), g.asset.State, g.frames.Pending())
		g.ui.ShowDebugInfo(screen, debugText)
	}
}

func (g *Tagger) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.view.SetScreenSize(outsideWidth, outsideHeight)
	g.ui.UpdateWindowSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
