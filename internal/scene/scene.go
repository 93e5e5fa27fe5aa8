// Package scene assembles a park document into the ordered mesh list the
// format writer serializes. Assembly is deterministic: the synthesized ground
// slab comes first, then one mesh per park object in document order.
package scene

import (
	"fmt"

	"trueskate-exporter/internal/geometry"
	"trueskate-exporter/internal/park"
	"trueskate-exporter/internal/shapes"
	"trueskate-exporter/internal/transform"
)

// GroundSize is the default edge length of the synthesized ground slab.
const GroundSize = 50.0

// groundOffsetY sinks the ground slab slightly so object bottoms at y=0
// never z-fight with it.
const groundOffsetY = -0.25

// defaultTextures is the texture name list written into the geometry file.
var defaultTextures = []string{"concrete_gray"}

// Scene is the assembled export: all meshes in output order plus the texture
// name list. Built once per export and handed to the writer.
type Scene struct {
	Meshes   []geometry.Mesh
	Textures []string
}

// VertexCount returns the total vertex count across all meshes.
func (s *Scene) VertexCount() int {
	n := 0
	for i := range s.Meshes {
		n += len(s.Meshes[i].Vertices)
	}
	return n
}

// Diagnostic reports one skipped object. Skips are never fatal; the export
// continues without the object.
type Diagnostic struct {
	Index int    // position in the park's object list
	Type  string // the unrecognized type identifier
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("object %d: unknown type %q, skipped", d.Index, d.Type)
}

// Options tunes assembly. The zero value uses the defaults.
type Options struct {
	// GroundSize overrides the synthesized ground slab's edge length.
	GroundSize float32
	// Catalog supplies per-kind shape parameter overrides.
	Catalog shapes.Catalog
}

// Assemble builds the scene for p: a ground slab, then each object generated
// in its local frame and transformed into world space. Objects whose type is
// not in the catalog are skipped and reported in the returned diagnostics.
func Assemble(p *park.Park, opts Options) (*Scene, []Diagnostic) {
	groundSize := opts.GroundSize
	if groundSize <= 0 {
		groundSize = GroundSize
	}

	s := &Scene{
		Meshes:   make([]geometry.Mesh, 0, len(p.Objects)+1),
		Textures: defaultTextures,
	}

	groundPlace := transform.DefaultPlacement()
	groundPlace.Y = groundOffsetY
	s.Meshes = append(s.Meshes, transform.ApplyMesh(shapes.GroundFlat(groundSize), groundPlace))

	var diags []Diagnostic
	for i, obj := range p.Objects {
		kind, ok := shapes.KindFromString(obj.Type)
		if !ok {
			diags = append(diags, Diagnostic{Index: i, Type: obj.Type})
			continue
		}
		mesh := kind.Generate(opts.Catalog.For(kind))
		s.Meshes = append(s.Meshes, transform.ApplyMesh(mesh, obj.Placement()))
	}
	return s, diags
}
