package orbis

import (
	"image"
	"image/png"
	"io"
	"log"
	"os"

	"github.com/nfnt/resize"
)

// Scene collects the objects of one render and the camera they are seen
// from. Rendering happens at size*scale and is downsampled back to size, the
// same supersampling the production renderers use.
type Scene struct {
	Context         *Context
	Objects         []*Object
	Shader          Shader
	eye, center, up Vector
	size, scale     int
}

// NewScene returns a new scene
func NewScene(eye, center, up Vector, size, scale int, shader Shader) *Scene {
	if scale < 1 {
		scale = 1
	}
	context := NewContext(size*scale, size*scale, shader)
	return &Scene{context, nil, shader, eye, center, up, size, scale}
}

// AddObject adds an object to the scene
func (s *Scene) AddObject(o *Object) {
	s.Objects = append(s.Objects, o)
}

// AddObjects is a convenience method to add multiple objects
func (s *Scene) AddObjects(objects []*Object) {
	for _, o := range objects {
		s.AddObject(o)
	}
}

// Render draws every object and returns the final downsampled image.
func (s *Scene) Render() image.Image {
	for _, o := range s.Objects {
		if o.Mesh == nil {
			log.Printf("orbis: object attempted to render with nil mesh")
			continue
		}
		s.Context.DrawObject(o)
	}
	im := s.Context.Image()
	if s.scale > 1 {
		im = resize.Resize(uint(s.size), uint(s.size), im, resize.Bilinear)
	}
	return im
}

// Draw renders the scene to a PNG file.
func (s *Scene) Draw(path string, objects []*Object) {
	s.AddObjects(objects)
	file, err := os.Create(path)
	if err != nil {
		log.Printf("orbis: could not create file in Draw: %v", err)
		return
	}
	defer file.Close()

	if err := png.Encode(file, s.Render()); err != nil {
		log.Printf("orbis: could not encode png in Draw: %v", err)
	}
}

// DrawToWriter renders the scene and encodes the PNG to the writer.
func (s *Scene) DrawToWriter(writer io.Writer, objects []*Object) error {
	s.AddObjects(objects)
	return png.Encode(writer, s.Render())
}

// RingSceneConfig is everything GenerateRingScene needs to set up a standard
// planet-plus-ring render with an explicit camera.
type RingSceneConfig struct {
	Eye, Center, Up Vector
	FovY            float64
	Near, Far       float64
	Size, Scale     int
	LightDirection  Vector
}

// GenerateRingScene renders a planet and its ring with the two domain
// shaders and encodes the result to the writer. The ring shader's material
// fields are expected to be configured by the caller beforehand.
func GenerateRingScene(writer io.Writer, cfg RingSceneConfig, ring *RingShader, planet *Object, ringObject *Object) error {
	aspect := 1.0
	matrix := LookAt(cfg.Eye, cfg.Center, cfg.Up).Perspective(cfg.FovY, aspect, cfg.Near, cfg.Far)

	ring.Matrix = matrix
	ring.CameraPosition = cfg.Eye
	ring.LightDirection = cfg.LightDirection.Normalize()
	ring.Prepare()

	planetShader := NewPlanetShader(matrix, cfg.LightDirection, cfg.Eye, HexColor("b0b0b0"), HexColor("808080"))

	// Opaque planet first, then the blended ring over it. The ring is a flat
	// sheet seen from either side, so face culling is off.
	scene := NewScene(cfg.Eye, cfg.Center, cfg.Up, cfg.Size, cfg.Scale, planetShader)
	scene.Context.Cull = CullNone
	scene.Context.DrawObject(planet)
	scene.Context.Shader = ring
	scene.Context.DrawObject(ringObject)
	return png.Encode(writer, scene.Render())
}
