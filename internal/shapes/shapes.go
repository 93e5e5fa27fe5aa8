// Package shapes holds the parametric solid generators for the skatepark
// object catalog. Every generator is a pure function from shape parameters to
// a mesh in the object's local coordinate frame, with consistent CCW winding
// (the game back-face culls), outward normals, and per-face UVs in [0,1].
// Vertex and triangle counts are closed-form per generator, independent of
// the dimension values.
package shapes

import (
	"github.com/chewxy/math32"

	"trueskate-exporter/internal/geometry"
)

// Material table indices. The table itself is fixed and lives in the
// trueskate package; generators only select an entry.
const (
	matConcrete = 0
	matRamp     = 1
	matPyramid  = 2
	matRail     = 3
	matWood     = 4
	matBench    = 5
)

// boxFace describes one face of a box: the corner indices in winding order
// and the outward normal shared by all four vertices.
type boxFace struct {
	corners [4]int
	normal  geometry.Vec3
}

var boxFaces = [6]boxFace{
	{[4]int{0, 1, 2, 3}, geometry.Vec3{Z: -1}}, // back
	{[4]int{5, 4, 7, 6}, geometry.Vec3{Z: 1}},  // front
	{[4]int{4, 0, 3, 7}, geometry.Vec3{X: -1}}, // left
	{[4]int{1, 5, 6, 2}, geometry.Vec3{X: 1}},  // right
	{[4]int{3, 2, 6, 7}, geometry.Vec3{Y: 1}},  // top
	{[4]int{4, 5, 1, 0}, geometry.Vec3{Y: -1}}, // bottom
}

// Box generates an axis-aligned box centered on offset. Each of the 6 faces
// gets its own 4 vertices (24 total, 12 triangles) so shading stays flat, and
// corner-local UVs spanning [0,1]×[0,1].
func Box(width, height, depth float32, offset geometry.Vec3) geometry.Mesh {
	hw, hh, hd := width/2, height/2, depth/2

	corners := [8]geometry.Vec3{
		{X: -hw + offset.X, Y: -hh + offset.Y, Z: -hd + offset.Z},
		{X: hw + offset.X, Y: -hh + offset.Y, Z: -hd + offset.Z},
		{X: hw + offset.X, Y: hh + offset.Y, Z: -hd + offset.Z},
		{X: -hw + offset.X, Y: hh + offset.Y, Z: -hd + offset.Z},
		{X: -hw + offset.X, Y: -hh + offset.Y, Z: hd + offset.Z},
		{X: hw + offset.X, Y: -hh + offset.Y, Z: hd + offset.Z},
		{X: hw + offset.X, Y: hh + offset.Y, Z: hd + offset.Z},
		{X: -hw + offset.X, Y: hh + offset.Y, Z: hd + offset.Z},
	}

	var m geometry.Mesh
	for _, f := range boxFaces {
		base := uint32(len(m.Vertices))
		for i, ci := range f.corners {
			c := corners[ci]
			var u, v float32
			if i == 1 || i == 2 {
				u = 1
			}
			if i == 2 || i == 3 {
				v = 1
			}
			m.Vertices = append(m.Vertices,
				geometry.NewVertex(c.X, c.Y, c.Z).
					WithNormal(f.normal.X, f.normal.Y, f.normal.Z).
					WithUV(u, v))
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}

// QuarterPipe generates a quarter pipe ramp: a quarter-circle profile
// (angle 0 to pi/2) swept across the width, plus two flat side panels
// triangulated as fans from each panel's bottom corner. The base of the
// transition sits at the origin's Y, the curve rises to radius.
func QuarterPipe(radius, width float32, segments int) geometry.Mesh {
	m := geometry.Mesh{MaterialIndex: matRamp}

	// Curved ride surface, two vertices (left/right edge) per profile step.
	for i := 0; i <= segments; i++ {
		angle := (math32.Pi / 2) * float32(i) / float32(segments)
		x := radius * (1 - math32.Cos(angle))
		y := radius * math32.Sin(angle)

		// Normal points out of the curve, toward the skater.
		nx := -math32.Cos(angle)
		ny := math32.Sin(angle)
		u := float32(i) / float32(segments)

		m.Vertices = append(m.Vertices,
			geometry.NewVertex(x-radius, y, -width/2).WithNormal(nx, ny, 0).WithUV(u, 0),
			geometry.NewVertex(x-radius, y, width/2).WithNormal(nx, ny, 0).WithUV(u, 1))
	}
	for i := 0; i < segments; i++ {
		base := uint32(i * 2)
		m.Indices = append(m.Indices,
			base, base+2, base+3,
			base, base+3, base+1)
	}

	// Left side panel: profile arc plus the bottom and top corner, fanned
	// from the bottom corner. Winding faces -Z.
	sideStart := uint32(len(m.Vertices))
	for i := 0; i <= segments; i++ {
		angle := (math32.Pi / 2) * float32(i) / float32(segments)
		x := radius * (1 - math32.Cos(angle))
		y := radius * math32.Sin(angle)
		m.Vertices = append(m.Vertices,
			geometry.NewVertex(x-radius, y, -width/2).WithNormal(0, 0, -1).WithUV(x/radius, y/radius))
	}
	m.Vertices = append(m.Vertices,
		geometry.NewVertex(-radius, 0, -width/2).WithNormal(0, 0, -1).WithUV(0, 0),
		geometry.NewVertex(0, radius, -width/2).WithNormal(0, 0, -1).WithUV(1, 1))
	bottomLeft := uint32(len(m.Vertices)) - 2
	for i := 0; i < segments; i++ {
		m.Indices = append(m.Indices, bottomLeft, sideStart+uint32(i), sideStart+uint32(i)+1)
	}

	// Right side panel, mirrored winding so the normal faces +Z.
	rightStart := uint32(len(m.Vertices))
	for i := 0; i <= segments; i++ {
		angle := (math32.Pi / 2) * float32(i) / float32(segments)
		x := radius * (1 - math32.Cos(angle))
		y := radius * math32.Sin(angle)
		m.Vertices = append(m.Vertices,
			geometry.NewVertex(x-radius, y, width/2).WithNormal(0, 0, 1).WithUV(x/radius, y/radius))
	}
	m.Vertices = append(m.Vertices,
		geometry.NewVertex(-radius, 0, width/2).WithNormal(0, 0, 1).WithUV(0, 0),
		geometry.NewVertex(0, radius, width/2).WithNormal(0, 0, 1).WithUV(1, 1))
	bottomRight := uint32(len(m.Vertices)) - 2
	for i := 0; i < segments; i++ {
		m.Indices = append(m.Indices, bottomRight, rightStart+uint32(i)+1, rightStart+uint32(i))
	}

	return m
}

// Pyramid generates a 4-sided pyramid with a square base of the given
// half-width, apex centered above the origin at height. Side-face normals are
// computed from the face geometry; the base is a downward-facing quad.
// 16 vertices, 6 triangles.
func Pyramid(halfWidth, height float32) geometry.Mesh {
	m := geometry.Mesh{MaterialIndex: matPyramid}

	corners := [4]geometry.Vec3{
		{X: -halfWidth, Z: -halfWidth},
		{X: halfWidth, Z: -halfWidth},
		{X: halfWidth, Z: halfWidth},
		{X: -halfWidth, Z: halfWidth},
	}
	apex := geometry.Vec3{Y: height}

	// Side faces: front, right, back, left.
	edges := [4][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	for _, e := range edges {
		p1, p2 := corners[e[0]], corners[e[1]]
		n := geometry.FaceNormal(p1, p2, apex)
		base := uint32(len(m.Vertices))
		m.Vertices = append(m.Vertices,
			geometry.NewVertex(p1.X, p1.Y, p1.Z).WithNormal(n.X, n.Y, n.Z).WithUV(0, 0),
			geometry.NewVertex(p2.X, p2.Y, p2.Z).WithNormal(n.X, n.Y, n.Z).WithUV(1, 0),
			geometry.NewVertex(apex.X, apex.Y, apex.Z).WithNormal(n.X, n.Y, n.Z).WithUV(0.5, 1))
		m.Indices = append(m.Indices, base, base+1, base+2)
	}

	// Base quad, facing down.
	base := uint32(len(m.Vertices))
	for _, c := range corners {
		m.Vertices = append(m.Vertices,
			geometry.NewVertex(c.X, c.Y, c.Z).
				WithNormal(0, -1, 0).
				WithUV((c.X+halfWidth)/(2*halfWidth), (c.Z+halfWidth)/(2*halfWidth)))
	}
	m.Indices = append(m.Indices, base, base+2, base+1, base, base+3, base+2)

	return m
}

// railSegments is the cross-section resolution of the rail tube and its
// support posts.
const railSegments = 8

// railSupportRadius is the radius of the two support posts.
const railSupportRadius = 0.05

// railSupportInset is how far each support post sits in from the rail ends.
const railSupportInset = 0.5

// Rail generates a flat grind rail: a cylindrical tube along the X axis at
// the given height, plus two vertical support posts inset from the ends.
// Tube radius is the rail bar's; posts use railSupportRadius.
func Rail(length, height, radius float32) geometry.Mesh {
	m := geometry.Mesh{MaterialIndex: matRail}

	// Rail bar: one quad strip segment per cross-section step.
	for i := 0; i < railSegments; i++ {
		a1 := 2 * math32.Pi * float32(i) / railSegments
		a2 := 2 * math32.Pi * float32(i+1) / railSegments

		y1 := height + radius*math32.Cos(a1)
		z1 := radius * math32.Sin(a1)
		y2 := height + radius*math32.Cos(a2)
		z2 := radius * math32.Sin(a2)

		n1y, n1z := math32.Cos(a1), math32.Sin(a1)
		n2y, n2z := math32.Cos(a2), math32.Sin(a2)

		base := uint32(len(m.Vertices))
		m.Vertices = append(m.Vertices,
			geometry.NewVertex(-length/2, y1, z1).WithNormal(0, n1y, n1z).WithUV(0, float32(i)/railSegments),
			geometry.NewVertex(-length/2, y2, z2).WithNormal(0, n2y, n2z).WithUV(0, float32(i+1)/railSegments),
			geometry.NewVertex(length/2, y1, z1).WithNormal(0, n1y, n1z).WithUV(1, float32(i)/railSegments),
			geometry.NewVertex(length/2, y2, z2).WithNormal(0, n2y, n2z).WithUV(1, float32(i+1)/railSegments))
		m.Indices = append(m.Indices, base, base+1, base+3, base, base+3, base+2)
	}

	// Support posts near each end, from the ground up to the bar.
	for _, sx := range [2]float32{-length/2 + railSupportInset, length/2 - railSupportInset} {
		for i := 0; i < railSegments; i++ {
			a1 := 2 * math32.Pi * float32(i) / railSegments
			a2 := 2 * math32.Pi * float32(i+1) / railSegments

			x1 := sx + railSupportRadius*math32.Cos(a1)
			z1 := railSupportRadius * math32.Sin(a1)
			x2 := sx + railSupportRadius*math32.Cos(a2)
			z2 := railSupportRadius * math32.Sin(a2)

			base := uint32(len(m.Vertices))
			m.Vertices = append(m.Vertices,
				geometry.NewVertex(x1, 0, z1).WithNormal(math32.Cos(a1), 0, math32.Sin(a1)).WithUV(0, 0),
				geometry.NewVertex(x2, 0, z2).WithNormal(math32.Cos(a2), 0, math32.Sin(a2)).WithUV(1, 0),
				geometry.NewVertex(x1, height, z1).WithNormal(math32.Cos(a1), 0, math32.Sin(a1)).WithUV(0, 1),
				geometry.NewVertex(x2, height, z2).WithNormal(math32.Cos(a2), 0, math32.Sin(a2)).WithUV(1, 1))
			m.Indices = append(m.Indices, base, base+2, base+3, base, base+3, base+1)
		}
	}

	return m
}

// Stairs generates a staircase as steps boxes concatenated into one mesh with
// index rebasing. Step i is raised by stepHeight*(i+0.5) and pushed back by
// stepDepth*i, so the flight descends toward +Z.
func Stairs(steps int, stepHeight, stepDepth, stepWidth float32) geometry.Mesh {
	m := geometry.Mesh{MaterialIndex: matRamp}
	for i := 0; i < steps; i++ {
		step := Box(stepWidth, stepHeight, stepDepth, geometry.Vec3{
			Y: stepHeight * (float32(i) + 0.5),
			Z: -stepDepth * float32(i),
		})
		m.Append(step)
	}
	return m
}

// Ledge generates a grind ledge: a box resting on the ground (bottom at y=0)
// with the ramp material for its coping.
func Ledge(length, height, depth float32) geometry.Mesh {
	m := Box(length, height, depth, geometry.Vec3{Y: height / 2})
	m.MaterialIndex = matRamp
	return m
}

// ManualPad generates a manual pad: a low box resting on the ground.
func ManualPad(length, height, width float32) geometry.Mesh {
	m := Box(length, height, width, geometry.Vec3{Y: height / 2})
	m.MaterialIndex = matRamp
	return m
}

// kickerSegments is the profile resolution of the kicker's curved face.
const kickerSegments = 8

// Kicker generates a kicker ramp. The ride surface follows a quadratic bezier
// with control points (0,0), (0.75*length, 0), and (length, height), swept
// across the width; normals come from the bezier tangent rotated 90 degrees.
// Flat bottom and back faces close the solid.
func Kicker(length, height, width float32) geometry.Mesh {
	m := geometry.Mesh{MaterialIndex: matWood}

	for i := 0; i <= kickerSegments; i++ {
		t := float32(i) / kickerSegments
		// Quadratic bezier: (1-t)^2*P0 + 2(1-t)t*P1 + t^2*P2.
		x := 2*(1-t)*t*(length*0.75) + t*t*length
		y := t * t * height

		// Tangent, then rotate 90 degrees for the surface normal.
		dx := 2*(1-t)*(length*0.75) + 2*t*(length-length*0.75)
		dy := 2 * t * height
		nx, ny := float32(0), float32(1)
		if l := math32.Sqrt(dx*dx + dy*dy); l > 0 {
			nx, ny = -dy/l, dx/l
		}

		m.Vertices = append(m.Vertices,
			geometry.NewVertex(x, y, -width/2).WithNormal(nx, ny, 0).WithUV(t, 0),
			geometry.NewVertex(x, y, width/2).WithNormal(nx, ny, 0).WithUV(t, 1))
	}
	for i := 0; i < kickerSegments; i++ {
		base := uint32(i * 2)
		m.Indices = append(m.Indices, base, base+2, base+3, base, base+3, base+1)
	}

	// Bottom face.
	base := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices,
		geometry.NewVertex(0, 0, -width/2).WithNormal(0, -1, 0).WithUV(0, 0),
		geometry.NewVertex(0, 0, width/2).WithNormal(0, -1, 0).WithUV(0, 1),
		geometry.NewVertex(length, 0, width/2).WithNormal(0, -1, 0).WithUV(1, 1),
		geometry.NewVertex(length, 0, -width/2).WithNormal(0, -1, 0).WithUV(1, 0))
	m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)

	// Back face.
	base = uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices,
		geometry.NewVertex(length, 0, -width/2).WithNormal(1, 0, 0).WithUV(0, 0),
		geometry.NewVertex(length, 0, width/2).WithNormal(1, 0, 0).WithUV(1, 0),
		geometry.NewVertex(length, height, width/2).WithNormal(1, 0, 0).WithUV(1, 1),
		geometry.NewVertex(length, height, -width/2).WithNormal(1, 0, 0).WithUV(0, 1))
	m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)

	return m
}

// slopeNormal is the top-surface normal of Slope. It is the exact normal only
// for the default 5x2 dimensions (a ~26.57 degree bank); other length/height
// combinations keep this lighting normal even though the visual angle
// changes. Known simplification, kept for output compatibility.
var slopeNormal = geometry.Vec3{X: 0, Y: 0.894, Z: -0.447}

// Slope generates a bank: an angled quad rising from the origin to
// (length, height), closed by bottom, back, and two triangular side faces.
// 18 vertices, 8 triangles.
func Slope(length, height, width float32) geometry.Mesh {
	m := geometry.Mesh{MaterialIndex: matRamp}

	// Angled top surface.
	m.Vertices = append(m.Vertices,
		geometry.NewVertex(0, 0, -width/2).WithNormal(slopeNormal.X, slopeNormal.Y, slopeNormal.Z).WithUV(0, 0),
		geometry.NewVertex(0, 0, width/2).WithNormal(slopeNormal.X, slopeNormal.Y, slopeNormal.Z).WithUV(0, 1),
		geometry.NewVertex(length, height, width/2).WithNormal(slopeNormal.X, slopeNormal.Y, slopeNormal.Z).WithUV(1, 1),
		geometry.NewVertex(length, height, -width/2).WithNormal(slopeNormal.X, slopeNormal.Y, slopeNormal.Z).WithUV(1, 0))
	m.Indices = append(m.Indices, 0, 1, 2, 0, 2, 3)

	// Bottom.
	base := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices,
		geometry.NewVertex(0, 0, -width/2).WithNormal(0, -1, 0).WithUV(0, 0),
		geometry.NewVertex(0, 0, width/2).WithNormal(0, -1, 0).WithUV(0, 1),
		geometry.NewVertex(length, 0, width/2).WithNormal(0, -1, 0).WithUV(1, 1),
		geometry.NewVertex(length, 0, -width/2).WithNormal(0, -1, 0).WithUV(1, 0))
	m.Indices = append(m.Indices, base, base+2, base+1, base, base+3, base+2)

	// Back wall.
	base = uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices,
		geometry.NewVertex(length, 0, -width/2).WithNormal(1, 0, 0).WithUV(0, 0),
		geometry.NewVertex(length, 0, width/2).WithNormal(1, 0, 0).WithUV(1, 0),
		geometry.NewVertex(length, height, width/2).WithNormal(1, 0, 0).WithUV(1, 1),
		geometry.NewVertex(length, height, -width/2).WithNormal(1, 0, 0).WithUV(0, 1))
	m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)

	// Triangular sides.
	base = uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices,
		geometry.NewVertex(0, 0, -width/2).WithNormal(0, 0, -1).WithUV(0, 0),
		geometry.NewVertex(length, 0, -width/2).WithNormal(0, 0, -1).WithUV(1, 0),
		geometry.NewVertex(length, height, -width/2).WithNormal(0, 0, -1).WithUV(1, 1))
	m.Indices = append(m.Indices, base, base+1, base+2)

	base = uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices,
		geometry.NewVertex(0, 0, width/2).WithNormal(0, 0, 1).WithUV(0, 0),
		geometry.NewVertex(length, height, width/2).WithNormal(0, 0, 1).WithUV(1, 1),
		geometry.NewVertex(length, 0, width/2).WithNormal(0, 0, 1).WithUV(1, 0))
	m.Indices = append(m.Indices, base, base+1, base+2)

	return m
}

// groundThickness is the slab thickness of GroundFlat.
const groundThickness = 0.5

// GroundFlat generates a flat ground slab of size x size, offset down so its
// top surface sits at y=0.
func GroundFlat(size float32) geometry.Mesh {
	m := Box(size, groundThickness, size, geometry.Vec3{Y: -groundThickness / 2})
	m.MaterialIndex = matConcrete
	return m
}

// Bench generates a park bench: a seat slab on two leg boxes, concatenated
// with index rebasing. 72 vertices, 36 triangles.
func Bench() geometry.Mesh {
	m := Box(2.0, 0.1, 0.5, geometry.Vec3{Y: 0.5})
	for _, x := range [2]float32{-0.8, 0.8} {
		m.Append(Box(0.1, 0.5, 0.5, geometry.Vec3{X: x, Y: 0.25}))
	}
	m.MaterialIndex = matBench
	return m
}
