package orbis

import "math"

// Fixed scattering tuning for ring material lighting. The asymmetry favors
// strong backscatter so rings glow when lit from behind; the strength factor
// brings the phase function's magnitude into a displayable range.
const (
	mieAsymmetry = -0.95
	mieStrength  = 0.03
)

// MiePhase evaluates the Mie-style phase function for cosine mu between the
// light and view directions, with asymmetry g in (-1, 1).
func MiePhase(mu, g float64) float64 {
	g2 := g * g
	return 1.5 / (4 * math.Pi) * (1 - g2) * math.Pow(1+g2-2*g*mu, -1.5) * (1 + mu*mu) / (2 + g2)
}
