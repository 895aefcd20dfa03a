package orbis

import (
	"testing"

	"github.com/beorn7/floats"
)

func TestColorLerpEndpoints(t *testing.T) {
	a := Color{1, 0, 0, 1}
	b := Color{0, 1, 0, 0}
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(t=0) must return the receiver, got %+v", got)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(t=1) must return the argument, got %+v", got)
	}
}

func TestColorLerpInterpolatesAlpha(t *testing.T) {
	a := Color{1, 0, 0, 1}
	b := Color{0, 1, 0, 0}
	got := a.Lerp(b, 0.5)
	if !floats.AlmostEqual(got.A, 0.5, 1e-12) {
		t.Errorf("alpha must interpolate like the other channels, got %f", got.A)
	}
	if !floats.AlmostEqual(got.R, 0.5, 1e-12) || !floats.AlmostEqual(got.G, 0.5, 1e-12) {
		t.Errorf("midpoint RGB = %+v", got)
	}
}

func TestColorMulScalarKeepsAlpha(t *testing.T) {
	// The blend-chain gain scales brightness only; alpha has its own chain.
	c := Color{0.5, 0.5, 0.5, 0.7}
	if got := c.MulScalar(2); got.A != 0.7 {
		t.Errorf("MulScalar must not touch alpha, got %f", got.A)
	}
}
