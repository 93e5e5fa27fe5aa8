package geometry

import "github.com/chewxy/math32"

// Vertex is a single mesh vertex: position, normal, one UV pair, and an RGBA
// color. Vertices are plain values; transforms return new vertices rather than
// mutating in place. The second UV set and second color set the output format
// requires are derived at write time, not stored here.
type Vertex struct {
	X, Y, Z    float32
	NX, NY, NZ float32
	U, V       float32
	R, G, B, A uint8
}

// NewVertex returns a vertex at (x, y, z) with an up normal, zero UV, and
// opaque white color.
func NewVertex(x, y, z float32) Vertex {
	return Vertex{X: x, Y: y, Z: z, NY: 1, R: 255, G: 255, B: 255, A: 255}
}

// WithNormal returns a copy of v with the given normal.
func (v Vertex) WithNormal(nx, ny, nz float32) Vertex {
	v.NX, v.NY, v.NZ = nx, ny, nz
	return v
}

// WithUV returns a copy of v with the given texture coordinates.
func (v Vertex) WithUV(u, uvV float32) Vertex {
	v.U, v.V = u, uvV
	return v
}

// Vec3 is a float32 3-vector used for face-normal math and local offsets.
type Vec3 struct {
	X, Y, Z float32
}

// Sub returns a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Cross returns the cross product a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Length returns the Euclidean length of a.
func (a Vec3) Length() float32 {
	return math32.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
}

// FaceNormal returns the unit normal of the triangle (p1, p2, p3), following
// the right-hand rule over the winding order. A degenerate triangle whose
// edge cross product has zero length yields the up normal (0, 1, 0) instead
// of NaN.
func FaceNormal(p1, p2, p3 Vec3) Vec3 {
	n := p2.Sub(p1).Cross(p3.Sub(p1))
	l := n.Length()
	if l == 0 {
		return Vec3{0, 1, 0}
	}
	return Vec3{n.X / l, n.Y / l, n.Z / l}
}

// Mesh is a vertex buffer plus a flat triangle index list (stride 3,
// zero-based, relative to this mesh's own vertices) and a material table
// index. Generators produce a mesh atomically; after that the only permitted
// mutation is Append's index rebasing during concatenation.
type Mesh struct {
	Vertices      []Vertex
	Indices       []uint32
	MaterialIndex int
}

// Append concatenates other onto m, rebasing other's indices by m's current
// vertex count so they keep referencing the same vertices. other is not
// modified. other's material index is ignored; a combined mesh keeps m's.
func (m *Mesh) Append(other Mesh) {
	base := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, other.Vertices...)
	for _, idx := range other.Indices {
		m.Indices = append(m.Indices, idx+base)
	}
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}
