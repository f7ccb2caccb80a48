// --------------------------------------------------------
// Distribution statement A. Approved for public release.
// Distribution is unlimited.
// This work was supported by the Office of Naval Research.
// --------------------------------------------------------

// Analytic layer-shape functions: Epstein and Ramakrishnan & Rawer
// profiles and the parameter conversions built on them.

package pyirtam

import "math"

// Fexp is the exponential saturated at |x| = 80 so that profile tails
// never overflow.
func Fexp(x float64) float64 {
	if x > fexpClip {
		return fexpHigh
	}
	if x < -fexpClip {
		return fexpLow
	}
	return math.Exp(x)
}

// Epstein evaluates the Epstein layer function at altitude alt [km] for
// amplitude amp [m-3], peak height hm [km] and thickness b [km]. The peak
// value is amp/4.
func Epstein(amp, hm, b, alt float64) float64 {
	e := Fexp((alt - hm) / b)
	return amp * e / ((1.0 + e) * (1.0 + e))
}

// EpsteinTop evaluates the topside Epstein function with the
// height-dependent thickness correction used above the F2 peak.
func EpsteinTop(amp, hm, bTop, alt float64) float64 {
	dh := alt - hm
	z := dh / (bTop * (1.0 + (topsideR * topsideG * dh / (topsideR*bTop + topsideG*dh))))
	e := Fexp(z)
	return amp * e / ((1.0 + e) * (1.0 + e))
}

// RamakrishnanRawer evaluates the Ramakrishnan & Rawer bottomside profile
// of the F2 layer at altitude h [km]. With x = (hmF2 - h)/B0 the density
// is NmF2 * exp(-sign(x)*|x|^B1) / cosh(x). The signed-power form keeps
// the profile defined above the peak, where x is negative.
func RamakrishnanRawer(nmF2, hmF2, b0, b1, h float64) float64 {
	x := (hmF2 - h) / b0
	s := 1.0
	if x < 0 {
		s = -1.0
	}
	return nmF2 * Fexp(-(s * math.Pow(math.Abs(x), b1))) / math.Cosh(x)
}

// FreqToNm converts critical frequencies in MHz to peak plasma densities
// in m-3. Results at or below zero are floored to 1.
func FreqToNm(fo []float64) []float64 {
	nm := make([]float64, len(fo))
	for i, f := range fo {
		nm[i] = 0.124 * f * f * 1e11
		if nm[i] <= 0 {
			nm[i] = 1.0
		}
	}
	return nm
}

// F107ToR12 converts the F10.7 solar flux index in SFU to an effective
// sunspot number by inverting F10.7 = 63.7 + 0.728 R12 + 0.00089 R12^2.
func F107ToR12(f107 float64) float64 {
	const a, b = 0.00089, 0.728
	c := 63.7 - f107
	return (-b + math.Sqrt(b*b-4.0*a*c)) / (2.0 * a)
}

// F2TopThickness derives the F2 topside thickness [km] from the critical
// frequency, peak height, bottomside thickness and solar flux. The shape
// parameter k follows the empirical solar-activity polynomial; the
// thickness is its rational mapping through x = (k*B0 - 150)/100.
func F2TopThickness(foF2, hmF2, b0 []float64, f107 float64) []float64 {
	r12 := F107ToR12(f107)
	bTop := make([]float64, len(foF2))
	for i := range foF2 {
		k := 3.22 - 0.0538*foF2[i] - 0.00664*hmF2[i] + 0.113*hmF2[i]/b0[i] +
			0.00257*r12
		x := (k*b0[i] - 150.0) / 100.0
		bTop[i] = (100.0*x + 150.0) / (0.041163*x*x - 0.183981*x + 1.424472)
	}
	return bTop
}

// FindHmF1 returns the F1 peak height for every grid point whose F1 peak
// density is finite, by inverting the Ramakrishnan & Rawer bottomside of
// that point: a dense density curve is built over a 0-700 km scan and
// interpolated at NmF1. Points without a finite NmF1 get NaN.
func FindHmF1(b0, b1, nmF2, hmF2, nmF1 []float64) []float64 {

	nScan := int(hmF1ScanTop / hmF1ScanStep)
	h := make([]float64, nScan)
	for i := range h {
		h[i] = float64(i) * hmF1ScanStep
	}

	hmF1 := make([]float64, len(nmF1))
	den := make([]float64, nScan)
	for ig := range nmF1 {
		if math.IsNaN(nmF1[ig]) || math.IsInf(nmF1[ig], 0) {
			hmF1[ig] = math.NaN()
			continue
		}
		for i := range h {
			den[i] = RamakrishnanRawer(nmF2[ig], hmF2[ig], b0[ig], b1[ig], h[i])
		}
		hmF1[ig] = interpMonotonic(nmF1[ig], den, h)
	}
	return hmF1
}

// FindBF1Bot returns the F1 bottomside thickness [km], half the distance
// between the F1 peak and the E peak. NaN heights propagate. The F1
// occurrence probability is part of the merge contract but does not enter
// the thickness.
func FindBF1Bot(hmF1, hmE, pF1 []float64) []float64 {
	b := make([]float64, len(hmF1))
	for i := range hmF1 {
		b[i] = (hmF1[i] - hmE[i]) * 0.5
	}
	return b
}
