// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// LineVertexShader is the vertex shader for grid and overlay lines.
//
//go:embed line.vert
var LineVertexShader string

// LineFragmentShader is the fragment shader for grid and overlay lines.
//
//go:embed line.frag
var LineFragmentShader string

// TerrainVertexShader is the vertex shader for terrain rendering.
//
//go:embed terrain.vert
var TerrainVertexShader string

// TerrainFragmentShader is the fragment shader for terrain rendering.
//
//go:embed terrain.frag
var TerrainFragmentShader string
