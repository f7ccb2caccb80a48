// --------------------------------------------------------
// Distribution statement A. Approved for public release.
// Distribution is unlimited.
// This work was supported by the Office of Naval Research.
// --------------------------------------------------------

package pyirtam

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestFexpSaturation(t *testing.T) {
	if got := Fexp(100); got != fexpHigh {
		t.Errorf("Fexp(100) = %v, want %v", got, fexpHigh)
	}
	if got := Fexp(-100); got != fexpLow {
		t.Errorf("Fexp(-100) = %v, want %v", got, fexpLow)
	}
	if got := Fexp(0); got != 1.0 {
		t.Errorf("Fexp(0) = %v, want 1", got)
	}
	if got := Fexp(1); !scalar.EqualWithinRel(got, math.E, 1e-15) {
		t.Errorf("Fexp(1) = %v, want e", got)
	}
}

func TestEpsteinPeak(t *testing.T) {
	// The Epstein function reaches a quarter of its amplitude at the peak.
	nm := 1.45e11
	if got := Epstein(4.0*nm, 110, 7, 110); !scalar.EqualWithinRel(got, nm, 1e-14) {
		t.Errorf("Epstein at the peak = %v, want %v", got, nm)
	}
}

func TestEpsteinTopDecreases(t *testing.T) {
	amp, hm, b := 4*1.9e12, 326.4, 31.5
	prev := EpsteinTop(amp, hm, b, hm)
	for _, h := range []float64{350, 400, 500, 700} {
		cur := EpsteinTop(amp, hm, b, h)
		if !(cur < prev) || !(cur > 0) || math.IsNaN(cur) {
			t.Fatalf("topside not decreasing positive at %v km: %v >= %v", h, cur, prev)
		}
		prev = cur
	}
}

func TestRamakrishnanRawerPeak(t *testing.T) {
	cases := []struct{ nm, hm, b0, b1 float64 }{
		{1.95159501e12, 326.385692, 155.355103, 1.43353497},
		{4.4e11, 300, 100, 2},
		{1e10, 250, 1, 6},
		{7.7e11, 350, 350, 1},
	}
	for _, c := range cases {
		got := RamakrishnanRawer(c.nm, c.hm, c.b0, c.b1, c.hm)
		if got != c.nm {
			t.Errorf("RR at the peak = %v, want %v", got, c.nm)
		}
	}
}

func TestRamakrishnanRawerAbovePeak(t *testing.T) {
	// Above the peak x is negative; the signed-power form must stay
	// defined and finite there.
	for _, h := range []float64{330, 400, 500} {
		got := RamakrishnanRawer(1.95e12, 326.4, 155.4, 1.43, h)
		if math.IsNaN(got) || math.IsInf(got, 0) || got <= 0 {
			t.Fatalf("RR above the peak at %v km = %v", h, got)
		}
	}
}

func TestFreqToNm(t *testing.T) {
	nm := FreqToNm([]float64{6, 0, -3})
	want := 0.124 * 36.0 * 1e11
	if !scalar.EqualWithinRel(nm[0], want, 1e-14) {
		t.Errorf("FreqToNm(6) = %v, want %v", nm[0], want)
	}
	if nm[1] != 1.0 || nm[2] != 1.0 {
		t.Errorf("non-positive conversions = %v, %v, want floored to 1", nm[1], nm[2])
	}
}

func TestF107ToR12(t *testing.T) {
	// Round trip through F10.7 = 63.7 + 0.728 R12 + 0.00089 R12^2.
	for _, r12 := range []float64{0, 25, 100, 200} {
		f107 := 63.7 + 0.728*r12 + 0.00089*r12*r12
		if got := F107ToR12(f107); !scalar.EqualWithinAbsOrRel(got, r12, 1e-9, 1e-9) {
			t.Errorf("F107ToR12(%v) = %v, want %v", f107, got, r12)
		}
	}
}

func TestF2TopThickness(t *testing.T) {
	bTop := F2TopThickness([]float64{6}, []float64{300}, []float64{100}, 120)
	if len(bTop) != 1 || math.IsNaN(bTop[0]) || bTop[0] <= 0 {
		t.Fatalf("F2TopThickness = %v, want a positive thickness", bTop)
	}
}

func TestFindHmF1(t *testing.T) {
	b0 := []float64{155.355103, 155.355103, 155.355103}
	b1 := []float64{1.43353497, 1.43353497, 1.43353497}
	nmF2 := []float64{1.95159501e12, 1.95159501e12, 1.95159501e12}
	hmF2 := []float64{326.385692, 326.385692, 326.385692}
	nmF1 := []float64{1.08274005e12, 5e11, math.NaN()}

	hmF1 := FindHmF1(b0, b1, nmF2, hmF2, nmF1)

	// Reference values from inverting the 0-700 km, 1 km bottomside scan.
	if !scalar.EqualWithinRel(hmF1[0], 238.9670136258543, 1e-8) {
		t.Errorf("hmF1[0] = %v, want 238.9670136", hmF1[0])
	}
	if !scalar.EqualWithinRel(hmF1[1], 176.16523272247346, 1e-8) {
		t.Errorf("hmF1[1] = %v, want 176.1652327", hmF1[1])
	}
	if !math.IsNaN(hmF1[2]) {
		t.Errorf("hmF1[2] = %v, want NaN for a missing F1 peak", hmF1[2])
	}

	// The inversion reproduces the peak density of the bottomside.
	den := RamakrishnanRawer(nmF2[0], hmF2[0], b0[0], b1[0], hmF1[0])
	if !scalar.EqualWithinRel(den, nmF1[0], 1e-4) {
		t.Errorf("RR at hmF1 = %v, want about NmF1=%v", den, nmF1[0])
	}
}

func TestFindBF1Bot(t *testing.T) {
	b := FindBF1Bot([]float64{239.831415, math.NaN()}, []float64{110, 110},
		[]float64{0.9, 0.9})
	if !scalar.EqualWithinRel(b[0], 64.9157075, 1e-12) {
		t.Errorf("BF1Bot[0] = %v, want 64.9157075", b[0])
	}
	if !math.IsNaN(b[1]) {
		t.Errorf("BF1Bot[1] = %v, want NaN propagation", b[1])
	}
}
