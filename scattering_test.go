package orbis

import (
	"math"
	"testing"
)

func TestMiePhaseFiniteOverDomain(t *testing.T) {
	for mu := -1.0; mu <= 1.0; mu += 0.01 {
		got := MiePhase(mu, mieAsymmetry)
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Fatalf("MiePhase(%f) = %f", mu, got)
		}
		if got < 0 {
			t.Fatalf("MiePhase(%f) = %f, phase must be non-negative", mu, got)
		}
	}
}

func TestMiePhaseBackscatterDominates(t *testing.T) {
	// g = -0.95 is tuned for strong backscatter: rings should light up when
	// the sun is behind them relative to the viewer.
	back := MiePhase(-1, mieAsymmetry)
	forward := MiePhase(1, mieAsymmetry)
	if back <= forward {
		t.Errorf("backscatter %f should exceed forward scatter %f", back, forward)
	}
	if back < 100*forward {
		t.Errorf("expected pronounced asymmetry, got back=%f forward=%f", back, forward)
	}
}

func TestMiePhaseSymmetricAtZeroG(t *testing.T) {
	if got, want := MiePhase(0.5, 0), MiePhase(-0.5, 0); math.Abs(got-want) > 1e-12 {
		t.Errorf("isotropic asymmetry should be symmetric in mu: %f vs %f", got, want)
	}
}
