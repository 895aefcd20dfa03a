package orbis

import (
	"math"
)

// Shader shader interface
type Shader interface {
	Vertex(Vertex) Vertex
	Fragment(Vertex, *Object) Color
}

// PlanetShader lights the planet body at the center of a ring scene with
// simple diffuse and optional specular shading.
type PlanetShader struct {
	Matrix         Matrix
	ModelMatrix    Matrix
	LightDirection Vector
	CameraPosition Vector
	AmbientColor   Color
	DiffuseColor   Color
	SpecularColor  Color
	SpecularPower  float64
	NightColor     Color // unlit hemisphere tint
}

// NewPlanetShader f
func NewPlanetShader(matrix Matrix, lightDirection, cameraPosition Vector, ambient, diffuse Color) *PlanetShader {
	return &PlanetShader{
		Matrix:         matrix,
		ModelMatrix:    Identity(),
		LightDirection: lightDirection.Normalize(),
		CameraPosition: cameraPosition,
		AmbientColor:   ambient,
		DiffuseColor:   diffuse,
		SpecularColor:  Color{1, 1, 1, 1},
		SpecularPower:  0,
		NightColor:     HexColor("05060a"),
	}
}

// Vertex f
func (shader *PlanetShader) Vertex(v Vertex) Vertex {
	v.Output = shader.Matrix.MulPositionW(v.Position)
	v.World = shader.ModelMatrix.MulPosition(v.Position)
	normalMatrix := shader.ModelMatrix.Inverse().Transpose()
	v.Normal = normalMatrix.MulDirection(v.Normal)
	return v
}

// Fragment f
func (shader *PlanetShader) Fragment(v Vertex, fromObject *Object) Color {
	color := fromObject.Color
	if fromObject.Texture != nil {
		sample := fromObject.Texture.Sample(v.Texture.X, v.Texture.Y)
		if sample.A > 0 {
			color = color.Lerp(sample.DivScalar(sample.A), sample.A)
		}
	}
	diffuse := math.Max(v.Normal.Dot(shader.LightDirection), 0)
	light := shader.AmbientColor.Add(shader.DiffuseColor.MulScalar(diffuse))
	if diffuse > 0 && shader.SpecularPower > 0 {
		camera := shader.CameraPosition.Sub(v.World).Normalize()
		reflected := reflect(shader.LightDirection.Negate(), v.Normal)
		specular := math.Max(camera.Dot(reflected), 0)
		if specular > 0 {
			specular = math.Pow(specular, shader.SpecularPower)
			light = light.Add(shader.SpecularColor.MulScalar(specular))
		}
	}
	lit := color.Mul(light).Min(White)
	// Fall toward the night tint instead of pure black on the dark side.
	lit = shader.NightColor.Lerp(lit, Saturate(diffuse+0.15))
	return lit.Alpha(color.A)
}

func reflect(i, n Vector) Vector {
	return i.Sub(n.MulScalar(2 * i.Dot(n)))
}
