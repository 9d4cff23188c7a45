// Package scene renders a terrain with its hex grid and line overlays.
package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/hexdrape/internal/engine/lighting"
	"github.com/Faultbox/hexdrape/internal/world"
	"github.com/Faultbox/hexdrape/pkg/math"
)

// Config contains scene configuration options.
type Config struct {
	ClearColor  [4]float32
	ShowTerrain bool
	ShowGrid    bool
}

// DefaultConfig returns a default scene configuration.
func DefaultConfig() Config {
	return Config{
		ClearColor:  [4]float32{0.53, 0.68, 0.85, 1.0},
		ShowTerrain: true,
		ShowGrid:    true,
	}
}

// Scene owns the renderers for one world.
type Scene struct {
	Config

	terrainRenderer *TerrainRenderer
	gridRenderer    *GridRenderer
	lineRenderer    *LineRenderer

	// Lighting
	LightDir [3]float32
	Ambient  float32

	lift float32
}

// New creates a scene. A GL context must be current.
func New(cfg Config) (*Scene, error) {
	s := &Scene{
		Config:   cfg,
		LightDir: lighting.LightDirection(135, 50),
		Ambient:  0.35,
	}

	var err error
	if s.terrainRenderer, err = NewTerrainRenderer(); err != nil {
		return nil, err
	}
	if s.gridRenderer, err = NewGridRenderer(); err != nil {
		s.terrainRenderer.Destroy()
		return nil, err
	}
	if s.lineRenderer, err = NewLineRenderer(); err != nil {
		s.terrainRenderer.Destroy()
		s.gridRenderer.Destroy()
		return nil, err
	}
	return s, nil
}

// Load uploads the terrain and grid buffers of w.
func (s *Scene) Load(w *world.World, ceiling int) error {
	if err := s.gridRenderer.Upload(w.Grid.Buffers, ceiling); err != nil {
		return fmt.Errorf("uploading grid: %w", err)
	}
	s.terrainRenderer.LoadTerrain(w.Terrain)
	s.lift = w.Lift
	return nil
}

// Render clears the frame and draws terrain then grid.
func (s *Scene) Render(viewProj math.Mat4) {
	c := s.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)

	if s.ShowTerrain {
		s.terrainRenderer.Render(viewProj, s.LightDir, s.Ambient)
	}
	if s.ShowGrid {
		s.gridRenderer.Render(viewProj, s.lift)
	}
}

// DrawLines draws overlay lines on top of the scene.
func (s *Scene) DrawLines(viewProj math.Mat4, lines []float32, color [4]float32) {
	s.lineRenderer.Draw(viewProj, lines, color)
}

// GridBuffers returns the number of grid buffers on the GPU.
func (s *Scene) GridBuffers() int {
	return s.gridRenderer.Buffers()
}

// Destroy releases all renderer resources.
func (s *Scene) Destroy() {
	s.terrainRenderer.Destroy()
	s.gridRenderer.Destroy()
	s.lineRenderer.Destroy()
}
