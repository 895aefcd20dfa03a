package orbis

import "math"

// ShadowMode selects how RingShader shadows a fragment. The mode is resolved
// once per draw from InnerShadeTileCount; the two models are never blended.
type ShadowMode int

const (
	// ShadowEclipse evaluates the analytic penumbra cast by the planet.
	ShadowEclipse ShadowMode = iota
	// ShadowShadeTile samples a scrolling shade texture tiled across the ring.
	ShadowShadeTile
)

// PlanetLocalScale converts world units into the planet's physical scale
// before the eclipse geometry is evaluated. Sun and planet radii on
// RingShader are expressed in this scale.
const PlanetLocalScale = 6000

// shadeTileFactor returns the shadow factor for the scrolling shade texture.
// An opaque texel darkens the ring to 20% brightness, a transparent texel
// leaves it fully lit.
func shadeTileFactor(shade Texture, u, v float64, tiles int, scroll float64) float64 {
	if shade == nil || tiles <= 0 {
		return 1
	}
	s := shade.Sample(u, v/float64(tiles)+scroll)
	return 1 - 0.8*Saturate(s.A)
}

// eclipseFactor evaluates the penumbra cast by a sphere of sphereRadius at
// the origin of pos's frame, lit by a sun of sunRadius at sunPos. Returns 1
// for fully lit down to 0 for full shadow.
func eclipseFactor(pos, sunPos Vector, sunRadius, sphereRadius, penumbra float64) float64 {
	toSun := sunPos.Sub(pos)
	toSphere := pos.Negate()
	distToSun := toSun.Length()
	sphereDist := toSphere.Length()
	if distToSun == 0 || sphereDist == 0 {
		return 1
	}
	sunDir := toSun.DivScalar(distToSun)
	sphereDir := toSphere.DivScalar(sphereDist)

	// Angular gap between the sun direction and the occluder's limb. Both
	// asin arguments can drift past 1 from rounding near degenerate
	// geometry; clamp before evaluating.
	separation := math.Asin(Clamp(sunDir.Cross(sphereDir).Length(), -1, 1))
	angularRadius := math.Asin(Clamp(sphereRadius/sphereDist, -1, 1))
	dd := separation - angularRadius

	lightRadius := sunRadius * penumbra
	if lightRadius <= 0 {
		lightRadius = 1
	}
	weight := Smoothstep(-1, 1, -dd*distToSun/lightRadius)
	// Suppress the shadow when the occluder sits behind the fragment
	// relative to the sun.
	weight *= Smoothstep(0, 0.2, sunDir.Dot(sphereDir))
	return 1 - Saturate(weight)
}
