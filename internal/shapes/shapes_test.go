package shapes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trueskate-exporter/internal/geometry"
)

// checkMesh asserts the invariants every generator must hold: triangle-list
// indices, all in range of the mesh's own vertices.
func checkMesh(t *testing.T, m geometry.Mesh) {
	t.Helper()
	require.NotEmpty(t, m.Vertices)
	require.NotEmpty(t, m.Indices)
	assert.Zero(t, len(m.Indices)%3, "index count must be a multiple of 3")
	for _, idx := range m.Indices {
		assert.Less(t, int(idx), len(m.Vertices), "index out of range")
	}
}

func TestAllKindsProduceValidMeshes(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			checkMesh(t, k.Generate(ShapeDef{}))
		})
	}
}

func TestBoxCounts(t *testing.T) {
	m := Box(2, 1, 3, geometry.Vec3{})
	// 6 faces, 4 vertices each, no sharing across faces.
	assert.Len(t, m.Vertices, 24)
	assert.Equal(t, 12, m.TriangleCount())
}

func TestBoxCountsIndependentOfDimensions(t *testing.T) {
	a := Box(1, 1, 1, geometry.Vec3{})
	b := Box(100, 0.01, 7, geometry.Vec3{Y: 42})
	assert.Len(t, b.Vertices, len(a.Vertices))
	assert.Len(t, b.Indices, len(a.Indices))
}

func TestBoxOffset(t *testing.T) {
	m := Box(2, 2, 2, geometry.Vec3{Y: 1})
	for _, v := range m.Vertices {
		assert.GreaterOrEqual(t, v.Y, float32(0))
		assert.LessOrEqual(t, v.Y, float32(2))
	}
}

func TestQuarterPipeCounts(t *testing.T) {
	const segs = 12
	m := QuarterPipe(3, 6, segs)
	// Curved surface: (segs+1)*2. Each side panel: segs+1 arc vertices plus
	// the two fan corners.
	assert.Len(t, m.Vertices, 4*segs+8)
	assert.Len(t, m.Indices, 12*segs)
	assert.Equal(t, 1, m.MaterialIndex)
	checkMesh(t, m)
}

func TestQuarterPipeSidePanelsFaceOutward(t *testing.T) {
	m := QuarterPipe(3, 6, 4)
	var negZ, posZ int
	for _, v := range m.Vertices {
		switch v.NZ {
		case -1:
			negZ++
		case 1:
			posZ++
		}
	}
	// Both side panels present, with opposite normals.
	assert.Equal(t, negZ, posZ)
	assert.NotZero(t, negZ)
}

func TestPyramidCounts(t *testing.T) {
	m := Pyramid(3, 2)
	// 4 side triangles with their own vertices plus a 4-vertex base quad.
	assert.Len(t, m.Vertices, 16)
	assert.Equal(t, 6, m.TriangleCount())
	assert.Equal(t, 2, m.MaterialIndex)
}

func TestPyramidNormals(t *testing.T) {
	m := Pyramid(3, 2)
	// The first 12 vertices are the four side faces; each face's three
	// vertices share one computed unit normal.
	for f := 0; f < 4; f++ {
		v0 := m.Vertices[f*3]
		l := v0.NX*v0.NX + v0.NY*v0.NY + v0.NZ*v0.NZ
		assert.InDelta(t, 1, l, 1e-5)
		for _, v := range m.Vertices[f*3+1 : f*3+3] {
			assert.Equal(t, v0.NX, v.NX)
			assert.Equal(t, v0.NY, v.NY)
			assert.Equal(t, v0.NZ, v.NZ)
		}
	}
	// Base quad faces down.
	for _, v := range m.Vertices[12:] {
		assert.Equal(t, float32(-1), v.NY)
	}
}

func TestRailCounts(t *testing.T) {
	m := Rail(6, 0.8, 0.08)
	// Bar: 8 segments x 4 vertices; posts: 2 x 8 segments x 4 vertices.
	assert.Len(t, m.Vertices, 96)
	assert.Equal(t, 48, m.TriangleCount())
	assert.Equal(t, 3, m.MaterialIndex)
}

func TestStairsCounts(t *testing.T) {
	for _, steps := range []int{3, 4, 5} {
		m := Stairs(steps, 0.4, 1, 3)
		assert.Len(t, m.Vertices, 24*steps)
		assert.Equal(t, 12*steps, m.TriangleCount())
		checkMesh(t, m)
	}
}

func TestStairsStepPlacement(t *testing.T) {
	m := Stairs(3, 0.4, 1, 3)
	// Highest vertex belongs to the last step: stepHeight*(2+0.5) + half a
	// step height.
	var maxY float32
	for _, v := range m.Vertices {
		if v.Y > maxY {
			maxY = v.Y
		}
	}
	assert.InDelta(t, 0.4*3, maxY, 1e-5)
}

func TestLedgeRestsOnGround(t *testing.T) {
	m := Ledge(5, 0.6, 0.8)
	assert.Equal(t, 1, m.MaterialIndex)
	var minY float32 = 1
	for _, v := range m.Vertices {
		if v.Y < minY {
			minY = v.Y
		}
	}
	assert.InDelta(t, 0, minY, 1e-6)
}

func TestKickerCounts(t *testing.T) {
	m := Kicker(2, 1.5, 3)
	// Bezier strip: (8+1)*2, plus 4-vertex bottom and back faces.
	assert.Len(t, m.Vertices, 26)
	assert.Equal(t, 20, m.TriangleCount())
	assert.Equal(t, 4, m.MaterialIndex)
}

func TestKickerProfileEndsAtHeight(t *testing.T) {
	m := Kicker(2, 1.5, 3)
	// Last bezier strip pair sits at (length, height).
	v := m.Vertices[17]
	assert.InDelta(t, 2, v.X, 1e-5)
	assert.InDelta(t, 1.5, v.Y, 1e-5)
}

func TestSlopeFixedNormal(t *testing.T) {
	m := Slope(5, 2, 5)
	assert.Len(t, m.Vertices, 18)
	assert.Equal(t, 8, m.TriangleCount())
	// The top surface keeps its fixed lighting normal regardless of the
	// slope dimensions.
	for _, v := range m.Vertices[:4] {
		assert.Equal(t, float32(0.894), v.NY)
		assert.Equal(t, float32(-0.447), v.NZ)
	}
	steep := Slope(1, 10, 5)
	assert.Equal(t, float32(0.894), steep.Vertices[0].NY)
}

func TestGroundFlatTopAtZero(t *testing.T) {
	m := GroundFlat(50)
	assert.Equal(t, 0, m.MaterialIndex)
	var maxY float32 = -1
	for _, v := range m.Vertices {
		if v.Y > maxY {
			maxY = v.Y
		}
	}
	assert.InDelta(t, 0, maxY, 1e-6)
}

func TestBenchCounts(t *testing.T) {
	m := Bench()
	// Seat plus two legs, three boxes concatenated.
	assert.Len(t, m.Vertices, 72)
	assert.Equal(t, 36, m.TriangleCount())
	assert.Equal(t, 5, m.MaterialIndex)
	checkMesh(t, m)
}
