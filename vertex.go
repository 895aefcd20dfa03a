package orbis

// Vertex carries everything the rasterizer interpolates across a triangle.
// Output is the clip-space position written by the vertex stage; World is the
// world-space position shaders such as RingShader need per fragment.
type Vertex struct {
	Position Vector
	Normal   Vector
	Texture  Vector
	Color    Color
	World    Vector
	Output   VectorW
}

// Outside reports whether the vertex lies outside the clip volume.
func (v Vertex) Outside() bool {
	return v.Output.Outside()
}

// InterpolateVertexes interpolates the vertex attributes with the given
// perspective-corrected barycentric weights.
func InterpolateVertexes(v1, v2, v3 Vertex, b VectorW) Vertex {
	v := Vertex{}
	v.Position = interpolateVectors(v1.Position, v2.Position, v3.Position, b)
	v.Normal = interpolateVectors(v1.Normal, v2.Normal, v3.Normal, b).Normalize()
	v.Texture = interpolateVectors(v1.Texture, v2.Texture, v3.Texture, b)
	v.Color = interpolateColors(v1.Color, v2.Color, v3.Color, b)
	v.World = interpolateVectors(v1.World, v2.World, v3.World, b)
	v.Output = interpolateVectorWs(v1.Output, v2.Output, v3.Output, b)
	return v
}

func interpolateColors(v1, v2, v3 Color, b VectorW) Color {
	n := Color{}
	n = n.Add(Color{v1.R * b.X, v1.G * b.X, v1.B * b.X, v1.A * b.X})
	n = n.Add(Color{v2.R * b.Y, v2.G * b.Y, v2.B * b.Y, v2.A * b.Y})
	n = n.Add(Color{v3.R * b.Z, v3.G * b.Z, v3.B * b.Z, v3.A * b.Z})
	return Color{n.R * b.W, n.G * b.W, n.B * b.W, n.A * b.W}
}

func interpolateVectors(v1, v2, v3 Vector, b VectorW) Vector {
	n := Vector{}
	n = n.Add(v1.MulScalar(b.X))
	n = n.Add(v2.MulScalar(b.Y))
	n = n.Add(v3.MulScalar(b.Z))
	return n.MulScalar(b.W)
}

func interpolateVectorWs(v1, v2, v3 VectorW, b VectorW) VectorW {
	n := VectorW{}
	n = n.Add(v1.MulScalar(b.X))
	n = n.Add(v2.MulScalar(b.Y))
	n = n.Add(v3.MulScalar(b.Z))
	return n.MulScalar(b.W)
}
