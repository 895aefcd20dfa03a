package orbis

// Object pairs a mesh with its texture, tint and placement. Objects are
// passed to the renderer to be rendered.
type Object struct {
	Mesh    *Mesh
	Texture Texture
	Color   Color
	Matrix  Matrix
}

// NewEmptyObject returns an empty object
func NewEmptyObject() *Object {
	return &Object{Color: White, Matrix: Identity()}
}

// NewObjectFromMesh wraps a mesh in an object with identity placement.
func NewObjectFromMesh(mesh *Mesh) *Object {
	return &Object{Mesh: mesh, Color: White, Matrix: Identity()}
}

// NewRingObject builds a ring annulus object between the two radii.
func NewRingObject(innerRadius, outerRadius float64, segments, rings int) *Object {
	return NewObjectFromMesh(NewRingMesh(innerRadius, outerRadius, segments, rings))
}

// NewPlanetObject builds a planet sphere object of the given radius.
func NewPlanetObject(radius float64, slices, stacks int) *Object {
	o := NewObjectFromMesh(NewSphereMesh(slices, stacks))
	o.Matrix = Scale(V(radius, radius, radius))
	return o
}

// SetColor sets the color of the mesh
func (o *Object) SetColor(c Color) {
	o.Color = c
	if o.Mesh != nil {
		o.Mesh.SetColor(c)
	}
}
