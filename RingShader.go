package orbis

// RingShader shades planetary ring geometry. The fragment stage chains four
// steps: shadow resolution (eclipse penumbra or scrolling shade tile), a
// three-pass overlay blend of procedural detail and dust with camera-distance
// fades, a distance cull on the merged alpha, and a view-dependent
// scattering light combine. All fields are read-only while a draw is in
// flight; Fragment is a pure function of the interpolated vertex.
type RingShader struct {
	Matrix         Matrix // combined view-projection, model applied per object
	ModelMatrix    Matrix
	CameraPosition Vector
	LightDirection Vector

	BaseColor Color

	// Eclipse geometry, in the planet's local physical scale.
	InnerRadius        float64
	OuterRadius        float64
	PlanetRadius       float64
	SunRadius          float64
	SunPosition        Vector // relative to the planet
	PenumbraMultiplier float64

	MainTexture   Texture
	MainTransform TextureTransform
	MainRemap     TextureTransform // extra scale/offset on top of MainTransform

	// InnerShadeTileCount selects the shadow model: 0 means eclipse mode,
	// any positive count means the scrolling shade tile.
	InnerShadeTexture      Texture
	InnerShadeTileCount    int
	InnerShadeScrollOffset float64

	DetailTexture   Texture
	DetailTransform TextureTransform
	DetailDiv1      float64
	DetailDiv2      float64
	Pass1Distance   float64
	Pass2Distance   float64

	DustTexture             Texture
	DustTransform           TextureTransform
	DustUScale              float64
	DustVScale              float64
	DustIntensityMultiplier float64
	DustGain                float64
	DustAlpha               float64
	DustFadeDistance        float64

	CullDistance  float64
	CullRoughness float64
	CullGain      float64

	mode   ShadowMode
	origin Vector // world-space ring origin, resolved from ModelMatrix
}

// NewRingShader returns a ring shader with neutral material defaults. The
// caller sets textures and geometry afterwards and the matrices carry the
// camera; distances default to generous values so nothing fades until tuned.
func NewRingShader(matrix Matrix, lightDirection, cameraPosition Vector) *RingShader {
	s := &RingShader{
		Matrix:             matrix,
		ModelMatrix:        Identity(),
		CameraPosition:     cameraPosition,
		LightDirection:     lightDirection.Normalize(),
		BaseColor:          White,
		PenumbraMultiplier: 1,
		MainTransform:      IdentityTransform(),
		MainRemap:          IdentityTransform(),
		DetailTransform:    IdentityTransform(),
		DetailDiv1:         1,
		DetailDiv2:         1,
		Pass1Distance:      10,
		Pass2Distance:      40,
		DustTransform:      IdentityTransform(),
		DustUScale:         1,
		DustVScale:         1,
		DustGain:           1,
		DustAlpha:          1,
		DustFadeDistance:   80,
		CullDistance:       500,
		CullRoughness:      -1,
		CullGain:           1.5,
	}
	s.Prepare()
	return s
}

// Prepare resolves the per-draw state: the shadow mode variant and the ring
// origin in world space. Context.DrawObject calls it after swapping the
// object matrix in; call it manually after mutating ModelMatrix or
// InnerShadeTileCount outside a scene.
func (s *RingShader) Prepare() {
	if s.InnerShadeTileCount > 0 {
		s.mode = ShadowShadeTile
	} else {
		s.mode = ShadowEclipse
	}
	s.origin = s.ModelMatrix.MulPosition(Vector{})
}

// Mode reports the resolved shadow mode.
func (s *RingShader) Mode() ShadowMode {
	return s.mode
}

// Vertex transforms the position into clip space and records the world-space
// position for the fragment stage.
func (s *RingShader) Vertex(v Vertex) Vertex {
	v.Output = s.Matrix.MulPositionW(v.Position)
	v.World = s.ModelMatrix.MulPosition(v.Position)
	return v
}

// Fragment computes the ring color for one sample. u parameterizes the
// angular position around the ring, v the radial position between the inner
// and outer radius.
func (s *RingShader) Fragment(v Vertex, fromObject *Object) Color {
	u, rv := v.Texture.X, v.Texture.Y
	distance := s.CameraPosition.Distance(v.World)

	shadow := s.shadowFactor(u, rv, v.World)

	mu, mv := s.MainTransform.Apply(u, rv)
	mu, mv = s.MainRemap.Apply(mu, mv)
	base := White
	if s.MainTexture != nil {
		base = s.MainTexture.Sample(mu, mv).Saturate()
	}

	var d1, d2 Color
	if s.DetailTexture != nil {
		du, dv := s.DetailTransform.Apply(u, rv)
		u1, v1 := detailUV(du, dv, s.DetailDiv1)
		u2, v2 := detailUV(du, dv, s.DetailDiv2)
		d1 = s.DetailTexture.Sample(u1, v1)
		d2 = s.DetailTexture.Sample(u2, v2)
	} else {
		// Midpoint detail is the overlay identity.
		d1 = Color{0.5, 0.5, 0.5, 1}
		d2 = d1
	}
	var dust Color
	if s.DustTexture != nil {
		su, sv := s.DustTransform.Apply(u*s.DustUScale, rv*s.DustVScale)
		dust = s.DustTexture.Sample(su, sv)
	} else {
		dust = Color{0.5, 0.5, 0.5, 1}
	}

	rgb := BlendChain(base, distance, []BlendStage{
		{Detail: d1.R, Gain: 1, Distance: s.Pass1Distance},
		{Detail: d2.R, Gain: 1, Distance: s.Pass2Distance},
		{Detail: dust.R * (1 + s.DustIntensityMultiplier), Gain: s.DustGain, Distance: s.DustFadeDistance},
	})

	r1 := SaturateRatio(distance, s.Pass1Distance)
	r2 := SaturateRatio(distance, s.Pass2Distance)
	r3 := SaturateRatio(distance, s.DustFadeDistance)

	a0 := Saturate(base.A * s.BaseColor.A)
	a1 := AlphaStage(d1.G, a0, r1)
	a2 := AlphaStage(d2.G, a1, r2)
	dustA := DustAlphaStage(dust.G*d2.G, a2, s.DustAlpha, r3)

	cutoff := CullWeight(distance, s.CullDistance, s.CullRoughness, s.CullGain)
	alpha := Lerp(0, dustA, cutoff)

	// View-dependent scattering: mu is the cosine between the light and the
	// surface-to-viewer direction, remapped to [0,1] as a stylized direct
	// term plus a backscatter-heavy Mie term.
	cos := s.LightDirection.Dot(s.CameraPosition.Sub(v.World).Normalize())
	dotLight := 0.5 * (cos + 1)
	mie := MiePhase(cos, mieAsymmetry) * mieStrength

	return Color{
		R: s.BaseColor.R * shadow * (rgb.R*dotLight + rgb.R*mie),
		G: s.BaseColor.G * shadow * (rgb.G*dotLight + rgb.G*mie),
		B: s.BaseColor.B * shadow * (rgb.B*dotLight + rgb.B*mie),
		A: alpha,
	}
}

func (s *RingShader) shadowFactor(u, v float64, world Vector) float64 {
	if s.mode == ShadowShadeTile {
		return shadeTileFactor(s.InnerShadeTexture, u, v, s.InnerShadeTileCount, s.InnerShadeScrollOffset)
	}
	pos := world.Sub(s.origin).MulScalar(PlanetLocalScale)
	return eclipseFactor(pos, s.SunPosition, s.SunRadius, s.PlanetRadius, s.PenumbraMultiplier)
}

// detailUV divides a tiled coordinate by a detail frequency divisor. A
// non-positive divisor samples at the base frequency instead of dividing.
func detailUV(u, v, div float64) (float64, float64) {
	if div <= 0 {
		return u, v
	}
	return u / div, v / div
}
