package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trueskate-exporter/internal/park"
)

func obj(typ string) park.Object {
	return park.Object{Type: typ}
}

func TestAssembleGroundFirst(t *testing.T) {
	s, diags := Assemble(&park.Park{Name: "Empty"}, Options{})
	assert.Empty(t, diags)
	require.Len(t, s.Meshes, 1)

	ground := s.Meshes[0]
	assert.Len(t, ground.Vertices, 24)
	assert.Equal(t, 0, ground.MaterialIndex)

	// The slab top sits at -0.25 park units, i.e. -25 game units.
	var maxY float32 = -1e9
	for _, v := range ground.Vertices {
		if v.Y > maxY {
			maxY = v.Y
		}
	}
	assert.InDelta(t, -25, maxY, 1e-3)

	assert.Equal(t, []string{"concrete_gray"}, s.Textures)
}

func TestAssemblePreservesObjectOrder(t *testing.T) {
	p := &park.Park{Objects: []park.Object{obj("ledge"), obj("bench"), obj("pyramid")}}
	s, diags := Assemble(p, Options{})
	assert.Empty(t, diags)
	require.Len(t, s.Meshes, 4)

	assert.Equal(t, 1, s.Meshes[1].MaterialIndex) // ledge
	assert.Equal(t, 5, s.Meshes[2].MaterialIndex) // bench
	assert.Equal(t, 2, s.Meshes[3].MaterialIndex) // pyramid
}

func TestAssembleSkipsUnknownTypes(t *testing.T) {
	known := &park.Park{Objects: []park.Object{obj("ledge")}}
	withUnknown := &park.Park{Objects: []park.Object{obj("ledge"), obj("not-a-real-type")}}

	want, _ := Assemble(known, Options{})
	got, diags := Assemble(withUnknown, Options{})

	// Identical scene, plus one reported skip; assembly never aborts.
	assert.Equal(t, want.Meshes, got.Meshes)
	require.Len(t, diags, 1)
	assert.Equal(t, 1, diags[0].Index)
	assert.Equal(t, "not-a-real-type", diags[0].Type)
	assert.Contains(t, diags[0].String(), "not-a-real-type")
}

func TestAssembleAppliesPlacement(t *testing.T) {
	scale := float32(2)
	p := &park.Park{Objects: []park.Object{{
		Type:     "ledge",
		Position: park.Position{X: 1, Z: 2},
		Scale:    &scale,
	}}}
	s, _ := Assemble(p, Options{})
	require.Len(t, s.Meshes, 2)

	ledge := s.Meshes[1]
	assert.Len(t, ledge.Vertices, 24)
	// Default ledge is 5 long; scaled by 2 and centered at x=1, so it spans
	// (1-5)*100 to (1+5)*100.
	var minX, maxX float32 = 1e9, -1e9
	for _, v := range ledge.Vertices {
		if v.X < minX {
			minX = v.X
		}
		if v.X > maxX {
			maxX = v.X
		}
	}
	assert.InDelta(t, -400, minX, 1e-2)
	assert.InDelta(t, 600, maxX, 1e-2)
}

func TestVertexCount(t *testing.T) {
	p := &park.Park{Objects: []park.Object{obj("ledge")}}
	s, _ := Assemble(p, Options{})
	assert.Equal(t, 48, s.VertexCount())
}

func TestAssembleGroundSizeOption(t *testing.T) {
	small, _ := Assemble(&park.Park{}, Options{GroundSize: 10})
	big, _ := Assemble(&park.Park{}, Options{})

	var smallMax, bigMax float32
	for _, v := range small.Meshes[0].Vertices {
		if v.X > smallMax {
			smallMax = v.X
		}
	}
	for _, v := range big.Meshes[0].Vertices {
		if v.X > bigMax {
			bigMax = v.X
		}
	}
	assert.InDelta(t, 500, smallMax, 1e-2)
	assert.InDelta(t, 2500, bigMax, 1e-2)
}
