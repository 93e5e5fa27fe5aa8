// Package trueskate serializes an assembled scene into True Skate's
// line-oriented text geometry format and its _mod.json metadata descriptor.
// The layout is consumed by a third-party engine, so field order, the fixed
// preamble, and the constant material blocks must be reproduced exactly: all
// counts precede their data, and every per-mesh header block is written
// before any mesh's vertex data.
package trueskate

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"trueskate-exporter/internal/scene"
)

// magic is the 4-line decimal byte preamble identifying the format
// (ASCII "TASK").
var magic = [4]int{84, 65, 83, 75}

// Fixed preamble values following the magic.
const (
	version       = 1003
	visMarker     = "<VIS "
	formatConst   = 17
	numColourSets = 2
	numUVSets     = 2
	meshFlags     = 1
)

// lineBuffer accumulates output lines; the final file is the lines joined by
// newline, with no trailing newline.
type lineBuffer struct {
	lines []string
}

func (b *lineBuffer) add(s string) {
	b.lines = append(b.lines, s)
}

func (b *lineBuffer) addf(format string, args ...any) {
	b.lines = append(b.lines, fmt.Sprintf(format, args...))
}

func (b *lineBuffer) addFloat(v float32) {
	b.lines = append(b.lines, strconv.FormatFloat(float64(v), 'f', 6, 32))
}

func (b *lineBuffer) addByte(v uint8) {
	b.lines = append(b.lines, strconv.Itoa(int(v)))
}

// GeometryText renders the geometry file for s as a single text blob.
func GeometryText(s *scene.Scene) string {
	var b lineBuffer

	for _, m := range magic {
		b.add(strconv.Itoa(m))
	}
	b.addf("%d #Version", version)
	b.add(visMarker)
	b.add(strconv.Itoa(formatConst))

	b.addf("%d #Num Textures", len(s.Textures))
	for _, tex := range s.Textures {
		b.add(tex)
	}

	b.addf("%d #Num Materials", len(Materials))
	for _, mat := range Materials {
		writeMaterial(&b, mat)
	}

	b.addf("%d #Num Vertices", s.VertexCount())

	// All per-mesh headers first, in scene order; vertex and index data only
	// after the last header. Interleaving headers with data is a format
	// violation.
	for i := range s.Meshes {
		m := &s.Meshes[i]
		b.addf("%d #Num Indices", len(m.Indices))
		b.addf("%d #Num Vertices", len(m.Vertices))
		b.add("#Normals (Flags |= 0x1)")
		b.addf("%d #Flags", meshFlags)
		b.addf("%d #Num Colour Sets", numColourSets)
		b.addf("%d #Num Uv Sets", numUVSets)
		b.add("#Mesh")
	}

	for i := range s.Meshes {
		for _, v := range s.Meshes[i].Vertices {
			b.addFloat(v.NX)
			b.addFloat(v.NY)
			b.addFloat(v.NZ)
			b.addFloat(v.X)
			b.addFloat(v.Y)
			b.addFloat(v.Z)
			// UV set 1, then set 2 (lightmap) mirroring set 1.
			b.addFloat(v.U)
			b.addFloat(v.V)
			b.addFloat(v.U)
			b.addFloat(v.V)
			b.addByte(v.R)
			b.addByte(v.G)
			b.addByte(v.B)
			b.addByte(v.A)
			// Color set 2 is always opaque white.
			b.add("255")
			b.add("255")
			b.add("255")
			b.add("255")
		}
	}

	// Index blocks stay local to each mesh's own vertex block; the format
	// never rebases across meshes.
	for i := range s.Meshes {
		for _, idx := range s.Meshes[i].Indices {
			b.add(strconv.FormatUint(uint64(idx), 10))
		}
	}

	return strings.Join(b.lines, "\n")
}

// WriteGeometry writes the geometry file for s to w as one buffered blob.
func WriteGeometry(w io.Writer, s *scene.Scene) error {
	if _, err := io.WriteString(w, GeometryText(s)); err != nil {
		return fmt.Errorf("trueskate: write geometry: %w", err)
	}
	return nil
}

// writeMaterial emits one fixed material block. Everything except the
// diffuse color is constant across the table.
func writeMaterial(b *lineBuffer, mat Material) {
	b.add("#Material")
	b.add("1 #Material Type (Solid)")
	b.add("#Color")
	b.addByte(mat.R)
	b.addByte(mat.G)
	b.addByte(mat.B)
	b.add("255")
	b.add("1.000000 #Specular")
	b.add("5.000000 #G Blend Sharpness")
	b.add("0.800000 #G Blend Level")
	b.add("0.500000 #G Blend Mode")
	b.add("#G Shadow Color")
	b.add("180")
	b.add("180")
	b.add("180")
	b.add("255")
	b.add("#G Highlight Color")
	b.add("255")
	b.add("255")
	b.add("255")
	b.add("255")
	b.add("0 #Texture index")
	b.add("0")
	b.add("0")
}
