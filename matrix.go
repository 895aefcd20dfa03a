package orbis

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Matrix is a 4x4 transformation matrix backed by mgl64. Construction and
// composition follow the same conventions as the shaders expect: a chain
// like LookAt(...).Perspective(...) applies the perspective after the view.
type Matrix struct {
	M mgl64.Mat4
}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{mgl64.Ident4()}
}

// FromMgl wraps an mgl64 matrix, for callers that build transforms with
// mathgl directly.
func FromMgl(m mgl64.Mat4) Matrix {
	return Matrix{m}
}

// Translate returns a translation matrix.
func Translate(v Vector) Matrix {
	return Matrix{mgl64.Translate3D(v.X, v.Y, v.Z)}
}

// Scale returns a scaling matrix.
func Scale(v Vector) Matrix {
	return Matrix{mgl64.Scale3D(v.X, v.Y, v.Z)}
}

// Rotate returns a rotation of angle radians about the given axis.
func Rotate(axis Vector, angle float64) Matrix {
	return Matrix{mgl64.HomogRotate3D(angle, axis.Normalize().Mgl())}
}

// LookAt returns the view matrix for a camera at eye looking at center.
func LookAt(eye, center, up Vector) Matrix {
	return Matrix{mgl64.LookAtV(eye.Mgl(), center.Mgl(), up.Mgl())}
}

// Screen maps normalized device coordinates to pixel coordinates.
func Screen(w, h int) Matrix {
	flip := mgl64.Scale3D(1, -1, 1)
	translate := mgl64.Translate3D(1, 1, 1)
	scale := mgl64.Scale3D(float64(w)/2, float64(h)/2, 0.5)
	return Matrix{scale.Mul4(translate).Mul4(flip)}
}

// Perspective applies a perspective projection (fovy in degrees) on top of m.
func (m Matrix) Perspective(fovy, aspect, near, far float64) Matrix {
	p := mgl64.Perspective(mgl64.DegToRad(fovy), aspect, near, far)
	return Matrix{p.Mul4(m.M)}
}

// Translated applies a translation on top of m.
func (m Matrix) Translated(v Vector) Matrix {
	return Translate(v).Mul(m)
}

// Scaled applies a scale on top of m.
func (m Matrix) Scaled(v Vector) Matrix {
	return Scale(v).Mul(m)
}

// Rotated applies a rotation on top of m.
func (m Matrix) Rotated(axis Vector, angle float64) Matrix {
	return Rotate(axis, angle).Mul(m)
}

// Mul returns m * b.
func (m Matrix) Mul(b Matrix) Matrix {
	return Matrix{m.M.Mul4(b.M)}
}

// MulPosition transforms a position, ignoring the projective divide.
func (m Matrix) MulPosition(v Vector) Vector {
	r := m.M.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, 1})
	return Vector{r.X(), r.Y(), r.Z()}
}

// MulPositionW transforms a position keeping the homogeneous coordinate.
func (m Matrix) MulPositionW(v Vector) VectorW {
	r := m.M.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, 1})
	return VectorW{r.X(), r.Y(), r.Z(), r.W()}
}

// MulDirection transforms a direction and renormalizes it.
func (m Matrix) MulDirection(v Vector) Vector {
	r := m.M.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, 0})
	return Vector{r.X(), r.Y(), r.Z()}.Normalize()
}

// Inverse returns the inverse matrix.
func (m Matrix) Inverse() Matrix {
	return Matrix{m.M.Inv()}
}

// Transpose returns the transposed matrix.
func (m Matrix) Transpose() Matrix {
	return Matrix{m.M.Transpose()}
}
