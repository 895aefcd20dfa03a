package orbis

import (
	"math"

	"github.com/fogleman/simplify"
)

// Mesh is a bag of triangles.
type Mesh struct {
	Triangles []*Triangle
}

// NewTriangleMesh wraps triangles in a Mesh.
func NewTriangleMesh(triangles []*Triangle) *Mesh {
	return &Mesh{triangles}
}

// NewEmptyMesh returns a mesh with no triangles.
func NewEmptyMesh() *Mesh {
	return &Mesh{}
}

// Add appends the triangles of another mesh.
func (m *Mesh) Add(b *Mesh) {
	m.Triangles = append(m.Triangles, b.Triangles...)
}

// Transform applies a matrix to every triangle.
func (m *Mesh) Transform(matrix Matrix) {
	for _, t := range m.Triangles {
		t.Transform(matrix)
	}
}

// SetColor sets the vertex color of every triangle.
func (m *Mesh) SetColor(c Color) {
	for _, t := range m.Triangles {
		t.SetColor(c)
	}
}

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max Vector
}

// BoundingBox returns the bounding box of the mesh.
func (m *Mesh) BoundingBox() Box {
	if len(m.Triangles) == 0 {
		return Box{}
	}
	min := Vector{math.MaxFloat64, math.MaxFloat64, math.MaxFloat64}
	max := min.Negate()
	for _, t := range m.Triangles {
		for _, v := range []Vector{t.V1.Position, t.V2.Position, t.V3.Position} {
			min = min.Min(v)
			max = max.Max(v)
		}
	}
	return Box{min, max}
}

// Center returns the center of the box.
func (b Box) Center() Vector {
	return b.Min.Lerp(b.Max, 0.5)
}

// Simplify decimates the mesh to the given fraction of its triangle count.
// Vertex colors and texture coordinates do not survive decimation, so this
// is only suitable for untextured background geometry such as distant moons.
func (m *Mesh) Simplify(factor float64) {
	st := make([]*simplify.Triangle, len(m.Triangles))
	for i, t := range m.Triangles {
		v1 := simplify.Vector(t.V1.Position)
		v2 := simplify.Vector(t.V2.Position)
		v3 := simplify.Vector(t.V3.Position)
		st[i] = simplify.NewTriangle(v1, v2, v3)
	}
	sm := simplify.NewMesh(st)
	sm = sm.Simplify(factor)
	triangles := make([]*Triangle, len(sm.Triangles))
	for i, t := range sm.Triangles {
		v1 := Vertex{Position: Vector(t.V1)}
		v2 := Vertex{Position: Vector(t.V2)}
		v3 := Vertex{Position: Vector(t.V3)}
		triangles[i] = NewTriangle(v1, v2, v3)
	}
	m.Triangles = triangles
}
