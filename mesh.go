package vaporgrid

import "errors"

// ErrNoMesh is returned when a mesh source contains no usable triangles.
var ErrNoMesh = errors.New("no triangle mesh found")

// Vertex represents a single vertex of a Mesh.
type Vertex struct {
	Position Vector
	Normal   Vector
	// U and V are texture coordinates; (0, 0) is the top-left of a texture, which maps to the far-left corner of a ground plane.
	U, V float64
	// Metalness is sampled from a metalness map (if any), ranging from 0 to 1. It is multiplied by the Material's Metalness.
	Metalness float32
}

// NewVertex creates a new Vertex with the provided position and UV values. The normal defaults to +Y, and metalness to 1.
func NewVertex(x, y, z, u, v float64) Vertex {
	return Vertex{
		Position:  NewVector(x, y, z),
		Normal:    VecY,
		U:         u,
		V:         v,
		Metalness: 1,
	}
}

// Mesh represents indexed triangle geometry. Every three entries in Indices form one triangle.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []int
	// Columns and Rows describe the vertex grid for meshes created with NewPlaneMesh; they are 0 otherwise.
	Columns, Rows int
}

// NewPlaneMesh creates a ground plane lying flat on the XZ plane, centered on the origin, facing +Y.
// width runs along X, depth along Z, and the plane is subdivided into segmentsX * segmentsZ quads.
// The far edge (-Z) has V = 0 and the near edge (+Z) has V = 1.
func NewPlaneMesh(width, depth float64, segmentsX, segmentsZ int) *Mesh {

	if segmentsX < 1 {
		segmentsX = 1
	}
	if segmentsZ < 1 {
		segmentsZ = 1
	}

	cols := segmentsX + 1
	rows := segmentsZ + 1

	mesh := &Mesh{
		Name:     "Plane",
		Vertices: make([]Vertex, 0, cols*rows),
		Indices:  make([]int, 0, segmentsX*segmentsZ*6),
		Columns:  cols,
		Rows:     rows,
	}

	for iz := 0; iz < rows; iz++ {
		v := float64(iz) / float64(segmentsZ)
		z := -depth/2 + v*depth
		for ix := 0; ix < cols; ix++ {
			u := float64(ix) / float64(segmentsX)
			x := -width/2 + u*width
			mesh.Vertices = append(mesh.Vertices, NewVertex(x, 0, z, u, v))
		}
	}

	for iz := 0; iz < segmentsZ; iz++ {
		for ix := 0; ix < segmentsX; ix++ {
			a := iz*cols + ix
			b := a + 1
			c := a + cols
			d := c + 1
			// Counter-clockwise when viewed from above.
			mesh.Indices = append(mesh.Indices, a, c, b, b, c, d)
		}
	}

	return mesh

}

// TriangleCount returns the number of triangles in the Mesh.
func (mesh *Mesh) TriangleCount() int {
	return len(mesh.Indices) / 3
}

// Clone returns a deep copy of the Mesh.
func (mesh *Mesh) Clone() *Mesh {
	newMesh := *mesh
	newMesh.Vertices = append([]Vertex(nil), mesh.Vertices...)
	newMesh.Indices = append([]int(nil), mesh.Indices...)
	return &newMesh
}

// Dimensions returns the minimum and maximum corners of the Mesh's axis-aligned bounding box.
func (mesh *Mesh) Dimensions() (min, max Vector) {
	if len(mesh.Vertices) == 0 {
		return
	}
	min = mesh.Vertices[0].Position
	max = min
	for _, v := range mesh.Vertices[1:] {
		p := v.Position
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Z < min.Z {
			min.Z = p.Z
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
		if p.Z > max.Z {
			max.Z = p.Z
		}
	}
	return
}

// RecalculateNormals recomputes smooth vertex normals by accumulating the face normals of every triangle sharing a vertex.
func (mesh *Mesh) RecalculateNormals() {

	normals := make([]Vector, len(mesh.Vertices))

	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		a, b, c := mesh.Indices[i], mesh.Indices[i+1], mesh.Indices[i+2]
		p0 := mesh.Vertices[a].Position
		faceNormal := mesh.Vertices[b].Position.Sub(p0).Cross(mesh.Vertices[c].Position.Sub(p0))
		normals[a] = normals[a].Add(faceNormal)
		normals[b] = normals[b].Add(faceNormal)
		normals[c] = normals[c].Add(faceNormal)
	}

	for i := range mesh.Vertices {
		if n := normals[i].Unit(); n.Magnitude() > 0 {
			mesh.Vertices[i].Normal = n
		}
	}

}
