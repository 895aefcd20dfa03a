package orbis

import (
	"math"
	"testing"

	"github.com/beorn7/floats"
)

func newTestRingShader() *RingShader {
	eye := V(0, 0, 20)
	matrix := LookAt(eye, V(0, 0, 0), V(0, 1, 0)).Perspective(45, 1, 0.1, 1000)
	s := NewRingShader(matrix, V(1, 0, 0), eye)
	s.InnerRadius = 4
	s.OuterRadius = 9
	s.PlanetRadius = 6000
	s.SunRadius = 700
	s.SunPosition = V(-100000, 0, 0)
	s.MainTexture = solidTexture{Color{0.6, 0.45, 0.3, 0.9}}
	s.DetailTexture = solidTexture{Color{0.7, 0.8, 0, 1}}
	s.DustTexture = solidTexture{Color{0.4, 0.9, 0, 1}}
	// Fully transparent shade tile: shadow factor 1 without eclipse geometry.
	s.InnerShadeTexture = solidTexture{Color{0, 0, 0, 0}}
	s.InnerShadeTileCount = 2
	s.Prepare()
	return s
}

func ringVertex(world Vector, u, v float64) Vertex {
	return Vertex{Texture: V(u, v, 0), World: world}
}

func TestRingShaderVertexStage(t *testing.T) {
	s := newTestRingShader()
	s.ModelMatrix = Translate(V(3, 0, -2))
	s.Prepare()

	v := s.Vertex(Vertex{Position: V(1, 2, 3), Texture: V(0.25, 0.5, 0)})
	want := V(4, 2, 1)
	if v.World.Distance(want) > 1e-9 {
		t.Errorf("world position = %v, want %v", v.World, want)
	}
	if v.Texture != V(0.25, 0.5, 0) {
		t.Errorf("texture coordinate must pass through, got %v", v.Texture)
	}
	if v.Output == (VectorW{}) {
		t.Errorf("clip-space output not written")
	}
}

func TestRingShaderOriginFollowsModelMatrix(t *testing.T) {
	s := newTestRingShader()
	s.ModelMatrix = Translate(V(5, 1, -4))
	s.Prepare()
	if s.origin.Distance(V(5, 1, -4)) > 1e-9 {
		t.Errorf("ring origin = %v, want the transformed model origin", s.origin)
	}
}

// Beyond every fade distance only the main texture, lighting and shadow
// survive: the detail and dust passes must contribute nothing to RGB.
func TestRingShaderBeyondAllFadeDistances(t *testing.T) {
	s := newTestRingShader()
	s.Pass1Distance = 1
	s.Pass2Distance = 1
	s.DustFadeDistance = 1
	s.CullDistance = 1e9 // keep the cull cutoff saturated
	s.CullRoughness = -1
	s.CullGain = 2
	s.Prepare()

	world := V(0, 0, -500)
	got := s.Fragment(ringVertex(world, 0.3, 0.5), nil)

	base := s.MainTexture.Sample(0, 0)
	cos := s.LightDirection.Dot(s.CameraPosition.Sub(world).Normalize())
	dotLight := 0.5 * (cos + 1)
	mie := MiePhase(cos, mieAsymmetry) * mieStrength
	shadow := 1.0 // transparent shade tile

	wantR := s.BaseColor.R * shadow * (base.R*dotLight + base.R*mie)
	wantG := s.BaseColor.G * shadow * (base.G*dotLight + base.G*mie)
	wantB := s.BaseColor.B * shadow * (base.B*dotLight + base.B*mie)

	if !floats.AlmostEqual(got.R, wantR, 1e-9) ||
		!floats.AlmostEqual(got.G, wantG, 1e-9) ||
		!floats.AlmostEqual(got.B, wantB, 1e-9) {
		t.Errorf("got %+v, want (%f, %f, %f)", got, wantR, wantG, wantB)
	}
}

func TestRingShaderCullForcesInvisible(t *testing.T) {
	s := newTestRingShader()
	s.CullDistance = 10
	s.CullRoughness = -1
	s.CullGain = 1 // weight hits 0 at distance >= 10
	s.Prepare()

	got := s.Fragment(ringVertex(V(0, 0, -100), 0.3, 0.5), nil)
	if got.A != 0 {
		t.Errorf("beyond cull range alpha = %f, want exactly 0", got.A)
	}
}

func TestRingShaderCullSaturatedKeepsAlpha(t *testing.T) {
	s := newTestRingShader()
	s.CullDistance = 1e9
	s.CullRoughness = -1
	s.CullGain = 5
	s.Prepare()

	near := s.Fragment(ringVertex(V(0, 0, 19), 0.3, 0.5), nil)
	if near.A <= 0 {
		t.Errorf("saturated cutoff should keep the blended alpha, got %f", near.A)
	}
}

func TestRingShaderShadowGatesBothLightTerms(t *testing.T) {
	s := newTestRingShader()
	world := V(0, 0, 10)
	lit := s.Fragment(ringVertex(world, 0.3, 0.5), nil)

	s.InnerShadeTexture = solidTexture{Color{0, 0, 0, 1}} // opaque: factor 0.2
	shadowed := s.Fragment(ringVertex(world, 0.3, 0.5), nil)

	if lit.R == 0 {
		t.Fatal("lit fragment should have nonzero red")
	}
	ratio := shadowed.R / lit.R
	if !floats.AlmostEqual(ratio, 0.2, 1e-9) {
		t.Errorf("shadow must scale direct and scattering terms together: ratio %f, want 0.2", ratio)
	}
	if shadowed.A != lit.A {
		t.Errorf("shadow must not touch alpha: %f vs %f", shadowed.A, lit.A)
	}
}

func TestRingShaderDeterministic(t *testing.T) {
	s := newTestRingShader()
	v := ringVertex(V(1, 0, 5), 0.12, 0.88)
	first := s.Fragment(v, nil)
	second := s.Fragment(v, nil)
	if first != second {
		t.Errorf("Fragment must be a pure function: %+v vs %+v", first, second)
	}
}

func TestRingShaderOutputFinite(t *testing.T) {
	s := newTestRingShader()
	// Zero-configured distances and degenerate geometry must still produce
	// finite channels.
	s.Pass1Distance = 0
	s.Pass2Distance = 0
	s.DustFadeDistance = 0
	s.CullDistance = 0
	s.InnerShadeTileCount = 0
	s.SunRadius = 0
	s.Prepare()

	got := s.Fragment(ringVertex(V(0, 0, 0), 0, 0), nil)
	for _, c := range []float64{got.R, got.G, got.B, got.A} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			t.Fatalf("non-finite channel in %+v", got)
		}
	}
	if got.A < 0 || got.A > 1 {
		t.Errorf("alpha out of range: %f", got.A)
	}
}

func TestRingShaderMainRemap(t *testing.T) {
	s := newTestRingShader()
	rec := &recordingTexture{c: Color{0.5, 0.5, 0.5, 1}}
	s.MainTexture = rec
	s.MainTransform = TextureTransform{ScaleU: 2, ScaleV: 3, OffsetU: 0.1, OffsetV: 0.2}
	s.MainRemap = TextureTransform{ScaleU: 0.5, ScaleV: 1, OffsetU: 0.05, OffsetV: 0}
	s.Prepare()

	s.Fragment(ringVertex(V(0, 0, 10), 0.4, 0.6), nil)
	u, v := s.MainTransform.Apply(0.4, 0.6)
	u, v = s.MainRemap.Apply(u, v)
	if !floats.AlmostEqual(rec.u, u, 1e-12) || !floats.AlmostEqual(rec.v, v, 1e-12) {
		t.Errorf("main texture sampled at (%f, %f), want (%f, %f)", rec.u, rec.v, u, v)
	}
}

func TestRingShaderDustUVScale(t *testing.T) {
	s := newTestRingShader()
	rec := &recordingTexture{c: Color{0.5, 0.5, 0.5, 1}}
	s.DustTexture = rec
	s.DustUScale = 8
	s.DustVScale = 2
	s.Prepare()

	s.Fragment(ringVertex(V(0, 0, 10), 0.25, 0.5), nil)
	wantU, wantV := s.DustTransform.Apply(0.25*8, 0.5*2)
	if !floats.AlmostEqual(rec.u, wantU, 1e-12) || !floats.AlmostEqual(rec.v, wantV, 1e-12) {
		t.Errorf("dust sampled at (%f, %f), want (%f, %f)", rec.u, rec.v, wantU, wantV)
	}
}
