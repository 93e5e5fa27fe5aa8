// Package transform places generator-local meshes into world space. The
// operation order is a contract with the output format: uniform scale, then
// Y-axis rotation, then translation, then the fixed unit conversion into the
// game's coordinate units. Reordering any of these changes the emitted file.
package transform

import (
	"github.com/chewxy/math32"

	"trueskate-exporter/internal/geometry"
)

// UnitScale converts park units (meters) into the game engine's internal
// units. It is applied to final positions only, never to normals.
const UnitScale = 100.0

// Placement is an object's world transform: position offset, rotation around
// the Y axis in radians, and uniform scale.
type Placement struct {
	X, Y, Z   float32
	RotationY float32
	Scale     float32
}

// DefaultPlacement returns the identity placement (origin, no rotation,
// scale 1).
func DefaultPlacement() Placement {
	return Placement{Scale: 1}
}

// Apply returns a new vertex with p applied to v: position scaled uniformly,
// position and normal rotated around Y, position translated, and finally the
// position converted by UnitScale. The Y components are untouched by the
// rotation; UV and color pass through unchanged. Normals are not renormalized
// (rotation preserves length, scale never touches them).
func Apply(v geometry.Vertex, p Placement) geometry.Vertex {
	x := v.X * p.Scale
	y := v.Y * p.Scale
	z := v.Z * p.Scale

	cos := math32.Cos(p.RotationY)
	sin := math32.Sin(p.RotationY)

	rx := x*cos - z*sin
	rz := x*sin + z*cos

	nx := v.NX*cos - v.NZ*sin
	nz := v.NX*sin + v.NZ*cos

	out := v
	out.X = (rx + p.X) * UnitScale
	out.Y = (y + p.Y) * UnitScale
	out.Z = (rz + p.Z) * UnitScale
	out.NX = nx
	out.NZ = nz
	return out
}

// ApplyMesh returns a copy of m with p applied to every vertex. Indices and
// material index carry over unchanged.
func ApplyMesh(m geometry.Mesh, p Placement) geometry.Mesh {
	out := geometry.Mesh{
		Vertices:      make([]geometry.Vertex, len(m.Vertices)),
		Indices:       append([]uint32(nil), m.Indices...),
		MaterialIndex: m.MaterialIndex,
	}
	for i, v := range m.Vertices {
		out.Vertices[i] = Apply(v, p)
	}
	return out
}
