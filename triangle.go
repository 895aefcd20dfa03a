package orbis

// Triangle is a renderable triangle.
type Triangle struct {
	V1, V2, V3 Vertex
}

// NewTriangle creates a triangle and fixes missing normals.
func NewTriangle(v1, v2, v3 Vertex) *Triangle {
	t := &Triangle{v1, v2, v3}
	t.FixNormals()
	return t
}

// Normal returns the face normal.
func (t *Triangle) Normal() Vector {
	e1 := t.V2.Position.Sub(t.V1.Position)
	e2 := t.V3.Position.Sub(t.V1.Position)
	return e1.Cross(e2).Normalize()
}

// FixNormals replaces zero vertex normals with the face normal.
func (t *Triangle) FixNormals() {
	n := t.Normal()
	zero := Vector{}
	if t.V1.Normal == zero {
		t.V1.Normal = n
	}
	if t.V2.Normal == zero {
		t.V2.Normal = n
	}
	if t.V3.Normal == zero {
		t.V3.Normal = n
	}
}

// SetColor sets the vertex colors of the triangle.
func (t *Triangle) SetColor(c Color) {
	t.V1.Color = c
	t.V2.Color = c
	t.V3.Color = c
}

// Transform applies a matrix to the triangle's positions and normals.
func (t *Triangle) Transform(matrix Matrix) {
	t.V1.Position = matrix.MulPosition(t.V1.Position)
	t.V2.Position = matrix.MulPosition(t.V2.Position)
	t.V3.Position = matrix.MulPosition(t.V3.Position)
	n := matrix.Inverse().Transpose()
	t.V1.Normal = n.MulDirection(t.V1.Normal)
	t.V2.Normal = n.MulDirection(t.V2.Normal)
	t.V3.Normal = n.MulDirection(t.V3.Normal)
}
