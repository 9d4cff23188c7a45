// Package viewer implements the interactive grid viewer loop.
package viewer

import (
	"fmt"
	"time"

	"github.com/sqweek/dialog"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/hexdrape/internal/config"
	"github.com/Faultbox/hexdrape/internal/engine/camera"
	"github.com/Faultbox/hexdrape/internal/engine/debug"
	"github.com/Faultbox/hexdrape/internal/engine/input"
	"github.com/Faultbox/hexdrape/internal/engine/picking"
	"github.com/Faultbox/hexdrape/internal/engine/renderer"
	"github.com/Faultbox/hexdrape/internal/engine/scene"
	"github.com/Faultbox/hexdrape/internal/engine/window"
	"github.com/Faultbox/hexdrape/internal/world"
	"github.com/Faultbox/hexdrape/pkg/hexgrid"
	"github.com/Faultbox/hexdrape/pkg/math"
)

const title = "hexview"

var (
	hoverColor = [4]float32{1.0, 0.85, 0.1, 1.0}
	startColor = [4]float32{0.1, 0.9, 0.3, 1.0}
	goalColor  = [4]float32{0.9, 0.2, 0.2, 1.0}
	pathColor  = [4]float32{0.95, 0.95, 0.95, 1.0}
	boxColor   = [4]float32{0.3, 0.3, 0.9, 1.0}
)

// Viewer is the main viewer instance.
type Viewer struct {
	cfg     *config.Config
	world   *world.World
	log     *zap.Logger
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	scene    *scene.Scene
	input    *input.Input
	camera   *camera.OrbitCamera

	selection   *Selection
	screenshots *debug.ScreenshotCapture

	dragging bool
	showBox  bool
	mouseX   int
	mouseY   int
	ground   math.Vec3
	onGround bool
	fps      int

	// Heightmap chosen in the open dialog, consumed on the main thread
	pendingHeightmap chan string
}

// New opens the window and uploads w.
func New(cfg *config.Config, w *world.World, log *zap.Logger) (*Viewer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("initializing viewer",
		zap.Int("width", cfg.Viewer.Width),
		zap.Int("height", cfg.Viewer.Height),
		zap.Bool("fullscreen", cfg.Viewer.Fullscreen),
	)

	v := &Viewer{
		cfg:         cfg,
		world:       w,
		log:         log,
		input:       input.New(),
		camera:      camera.NewOrbitCamera(),
		screenshots: debug.NewScreenshotCapture("screenshots", "hexview"),

		pendingHeightmap: make(chan string, 1),
	}

	// Create window (this also creates OpenGL context)
	var err error
	v.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Viewer.Width,
		Height:     cfg.Viewer.Height,
		Fullscreen: cfg.Viewer.Fullscreen,
		VSync:      cfg.Viewer.VSync,
		Logger:     log.Named("window"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	dw, dh := v.window.GetDrawableSize()
	v.renderer, err = renderer.New(renderer.Config{Width: dw, Height: dh})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.scene, err = scene.New(scene.DefaultConfig())
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}
	if err := v.scene.Load(w, cfg.Grid.Ceiling()); err != nil {
		v.Close()
		return nil, err
	}

	v.resetView()

	log.Info("viewer initialized", zap.Int("gpu_buffers", v.scene.GridBuffers()))
	return v, nil
}

// resetView starts a fresh selection on the current grid and frames it.
func (v *Viewer) resetView() {
	pf := hexgrid.NewPathFinder(v.world.Grid)
	pf.ClimbCost = v.cfg.Viewer.ClimbCost
	v.selection = NewSelection(pf)

	lo, hi := v.world.Grid.Bounds()
	v.camera.FitToBounds(lo, hi)
}

// openHeightmapDialog shows a native file dialog. SDL and GL calls must stay on
// the main thread, so the chosen path is queued for update.
func (v *Viewer) openHeightmapDialog() {
	go func() {
		filename, err := dialog.File().
			Filter("Heightmaps", "png", "bmp", "tga").
			Filter("All Files", "*").
			Title("Open Heightmap").
			Load()
		if err != nil {
			if err != dialog.ErrCancelled {
				v.log.Error("file dialog failed", zap.Error(err))
			}
			return
		}
		select {
		case v.pendingHeightmap <- filename:
		default:
		}
	}()
}

// loadHeightmap regenerates the world over the image at path.
func (v *Viewer) loadHeightmap(path string) {
	cfg := *v.cfg
	cfg.Terrain.Source = config.SourceImage
	cfg.Terrain.Path = path

	w, err := world.Build(&cfg, v.log.Named("world"))
	if err != nil {
		v.log.Error("failed to load heightmap", zap.String("path", path), zap.Error(err))
		return
	}
	if err := v.scene.Load(w, cfg.Grid.Ceiling()); err != nil {
		v.log.Error("failed to upload grid", zap.Error(err))
		return
	}

	v.cfg, v.world = &cfg, w
	v.resetView()
	v.log.Info("heightmap loaded", zap.String("path", path), zap.Object("stats", w.Grid.Stats))
}

// Run starts the main loop.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	v.log.Info("starting viewer loop")

	for v.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if v.input.Update() {
			v.running = false
			break
		}
		v.handleEvents()
		v.update(dt)
		v.render()

		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.fps = frameCount
			frameCount = 0
			fpsTimer = time.Now()
			v.updateTitle()
		}
	}

	return nil
}

func (v *Viewer) handleEvents() {
	for _, event := range v.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			v.renderer.Resize(v.window.GetDrawableSize())

		case input.EventKeyDown:
			v.handleKey(event.Key)

		case input.EventMouseDown:
			switch event.Button {
			case sdl.BUTTON_RIGHT:
				v.dragging = true
			case sdl.BUTTON_LEFT:
				v.selection.Click(v.selection.Hovered)
				v.logSelection()
			}

		case input.EventMouseUp:
			if event.Button == sdl.BUTTON_RIGHT {
				v.dragging = false
			}

		case input.EventMouseMove:
			v.mouseX, v.mouseY = event.MouseX, event.MouseY
			if v.dragging {
				v.camera.HandleDrag(float32(event.DeltaX), float32(event.DeltaY))
			}

		case input.EventMouseWheel:
			v.camera.HandleZoom(float32(event.DeltaY))
		}
	}
}

func (v *Viewer) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		v.running = false
	case sdl.SCANCODE_G:
		v.scene.ShowGrid = !v.scene.ShowGrid
	case sdl.SCANCODE_T:
		v.scene.ShowTerrain = !v.scene.ShowTerrain
	case sdl.SCANCODE_B:
		v.showBox = !v.showBox
	case sdl.SCANCODE_C:
		v.selection.Clear()
	case sdl.SCANCODE_HOME:
		lo, hi := v.world.Grid.Bounds()
		v.camera.FitToBounds(lo, hi)
	case sdl.SCANCODE_O:
		v.openHeightmapDialog()
	case sdl.SCANCODE_F12:
		v.screenshot()
	}
}

func (v *Viewer) logSelection() {
	s := v.selection
	switch {
	case s.Start == nil:
		v.log.Debug("selection cleared")
	case s.Goal == nil:
		v.log.Debug("path start", zap.Int("x", s.Start.Coord.X), zap.Int("z", s.Start.Coord.Z))
	default:
		v.log.Info("path",
			zap.Int("from_x", s.Start.Coord.X), zap.Int("from_z", s.Start.Coord.Z),
			zap.Int("to_x", s.Goal.Coord.X), zap.Int("to_z", s.Goal.Coord.Z),
			zap.Int("cells", len(s.Path)),
		)
	}
}

func (v *Viewer) update(dt float32) {
	select {
	case path := <-v.pendingHeightmap:
		v.loadHeightmap(path)
	default:
	}

	var forward, right, up float32
	if v.input.IsKeyHeld(sdl.SCANCODE_W) {
		forward++
	}
	if v.input.IsKeyHeld(sdl.SCANCODE_S) {
		forward--
	}
	if v.input.IsKeyHeld(sdl.SCANCODE_D) {
		right++
	}
	if v.input.IsKeyHeld(sdl.SCANCODE_A) {
		right--
	}
	if v.input.IsKeyHeld(sdl.SCANCODE_E) {
		up++
	}
	if v.input.IsKeyHeld(sdl.SCANCODE_Q) {
		up--
	}
	if forward != 0 || right != 0 || up != 0 {
		scale := dt * 60
		v.camera.HandleMovement(forward*scale, right*scale, up*scale)
	}

	v.pick()
}

// pick casts the mouse ray onto the terrain and records the hovered cell.
func (v *Viewer) pick() {
	ww, wh := v.window.GetSize()
	viewProj := v.camera.ViewProjection(v.renderer.Aspect())
	ray := picking.ScreenToRay(float32(v.mouseX), float32(v.mouseY), float32(ww), float32(wh), viewProj.Inverse())

	c, hit, ok := v.world.CellUnder(ray, v.camera.Far)
	v.ground, v.onGround = hit, ok
	v.selection.Hovered = c
}

func (v *Viewer) render() {
	viewProj := v.camera.ViewProjection(v.renderer.Aspect())
	v.scene.Render(viewProj)

	lift := v.world.Lift * 2
	s := v.selection
	if s.Hovered != nil {
		v.scene.DrawLines(viewProj, debug.CellOutline(s.Hovered, lift), hoverColor)
	}
	if s.Start != nil {
		v.scene.DrawLines(viewProj, debug.CellOutline(s.Start, lift), startColor)
	}
	if s.Goal != nil {
		v.scene.DrawLines(viewProj, debug.CellOutline(s.Goal, lift), goalColor)
	}
	if len(s.Path) > 1 {
		v.scene.DrawLines(viewProj, debug.PathLines(s.Path, lift), pathColor)
	}
	if v.showBox {
		lo, hi := v.world.Grid.Bounds()
		v.scene.DrawLines(viewProj, debug.BBoxWireframe(lo, hi), boxColor)
	}
}

func (v *Viewer) updateTitle() {
	t := fmt.Sprintf("%s - %d cells, %d buffers | %d fps", title,
		v.world.Grid.Len(), len(v.world.Grid.Buffers), v.fps)
	if v.onGround {
		t += fmt.Sprintf(" | (%.2f, %.2f)", v.ground.X, v.ground.Z)
	}
	if c := v.selection.Hovered; c != nil {
		t += fmt.Sprintf(" | cell (%d, %d)", c.Coord.X, c.Coord.Z)
	}
	v.window.SetTitle(t)
}

func (v *Viewer) screenshot() {
	w, h := v.renderer.Size()
	path, err := v.screenshots.CaptureFromPixels(v.renderer.ReadPixels(), w, h)
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.scene != nil {
		v.scene.Destroy()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
