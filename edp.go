// --------------------------------------------------------
// Distribution statement A. Approved for public release.
// Distribution is unlimited.
// This work was supported by the Office of Naval Research.
// --------------------------------------------------------

// Construction of vertical electron density profiles from per-grid-point
// layer parameters.

package pyirtam

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ProfileParams bundles the twelve per-grid-point scalars that define one
// vertical profile. All slices share the length N_G.
type ProfileParams struct {
	NmF2   []float64 // F2 peak density [m-3]
	NmF1   []float64 // F1 peak density [m-3], NaN where no F1 layer forms
	NmE    []float64 // E peak density [m-3]
	HmF2   []float64 // F2 peak height [km]
	HmF1   []float64 // F1 peak height [km], NaN where no F1 layer forms
	HmE    []float64 // E peak height [km]
	B0     []float64 // F2 bottomside thickness [km]
	B1     []float64 // F2 bottomside shape parameter
	BF2Top []float64 // F2 topside thickness [km]
	BF1Bot []float64 // F1 bottomside thickness [km]
	BEBot  []float64 // E bottomside thickness [km]
	BETop  []float64 // E topside thickness [km]
}

// profileRegion labels the altitude regime of one (altitude, grid-point)
// pair. Each pair falls in exactly one regime; the two blend regimes sum
// a pair of quartic-weighted shape functions.
type profileRegion int

const (
	regionBelowFloor profileRegion = iota
	regionF2Top                    // alt >= hmF2: Epstein topside
	regionEBottom                  // alt <= hmE: Epstein bottomside
	regionF2Bottom                 // hmF1 <= alt < hmF2: Ramakrishnan & Rawer
	regionETopF1Bot                // hmE < alt < hmF1: E-top / F1-bottom blend
	regionETopF2Bot                // no F1, hmE < alt < hmF2: E-top / F2-bottom blend
)

// classifyRegion assigns the regime of one altitude sample at one grid
// point. NaN comparisons are false, so a NaN hmF1 never selects the F1
// regimes.
func classifyRegion(alt, hmF2, hmF1, hmE, nmF1 float64) profileRegion {
	switch {
	case alt >= hmF2:
		return regionF2Top
	case alt <= hmE:
		return regionEBottom
	case !math.IsNaN(nmF1) && !math.IsInf(nmF1, 0) && alt >= hmF1:
		return regionF2Bottom
	case alt > hmE && alt < hmF1:
		return regionETopF1Bot
	case math.IsNaN(nmF1) && alt > hmE:
		return regionETopF2Bot
	default:
		return regionBelowFloor
	}
}

// quartic two-sided blending weight: 1 at d=0, 0 at d=width.
func dropWeight(d, width float64) float64 {
	r := d / width
	r2 := r * r
	return 1.0 - r2*r2
}

// BuildEDP constructs the electron density [N_V, N_G] in m-3 from the
// layer parameters and the altitude grid in km. Non-positive F1-bottom
// and F2-top thicknesses are replaced with their defaults before
// evaluation, and every output value is floored at DensityFloor so the
// result stays usable in logarithmic space.
func BuildEDP(p *ProfileParams, aalt []float64) (*mat.Dense, error) {

	ng := len(p.NmF2)
	if ng == 0 {
		return nil, fmt.Errorf("empty parameter bundle")
	}
	for _, s := range [][]float64{p.NmF1, p.NmE, p.HmF2, p.HmF1, p.HmE,
		p.B0, p.B1, p.BF2Top, p.BF1Bot, p.BEBot, p.BETop} {
		if len(s) != ng {
			return nil, fmt.Errorf("parameter bundle arrays disagree on N_G=%d", ng)
		}
	}
	if len(aalt) == 0 {
		return nil, fmt.Errorf("empty altitude grid")
	}

	density := mat.NewDense(len(aalt), ng, nil)
	for ig := 0; ig < ng; ig++ {
		bF1Bot := p.BF1Bot[ig]
		if !(bF1Bot > 0) {
			bF1Bot = DefaultBF1Bot
		}
		bF2Top := p.BF2Top[ig]
		if !(bF2Top > 0) {
			bF2Top = DefaultBF2Top
		}

		// Epstein amplitudes
		aF2 := 4.0 * p.NmF2[ig]
		aF1 := 4.0 * p.NmF1[ig]
		aE := 4.0 * p.NmE[ig]

		hmF2, hmF1, hmE := p.HmF2[ig], p.HmF1[ig], p.HmE[ig]

		for iv, alt := range aalt {
			var den float64
			switch classifyRegion(alt, hmF2, hmF1, hmE, p.NmF1[ig]) {
			case regionF2Top:
				den = EpsteinTop(aF2, hmF2, bF2Top, alt)
			case regionEBottom:
				den = Epstein(aE, hmE, p.BEBot[ig], alt)
			case regionF2Bottom:
				den = RamakrishnanRawer(p.NmF2[ig], hmF2, p.B0[ig], p.B1[ig], alt)
			case regionETopF1Bot:
				w := hmF1 - hmE
				den = Epstein(aE, hmE, p.BETop[ig], alt)*dropWeight(alt-hmE, w) +
					Epstein(aF1, hmF1, bF1Bot, alt)*dropWeight(hmF1-alt, w)
			case regionETopF2Bot:
				w := hmF2 - hmE
				den = Epstein(aE, hmE, p.BETop[ig], alt)*dropWeight(alt-hmE, w) +
					RamakrishnanRawer(p.NmF2[ig], hmF2, p.B0[ig], p.B1[ig], alt)*
						dropWeight(hmF2-alt, w)
			}
			if !(den > DensityFloor) {
				den = DensityFloor
			}
			density.Set(iv, ig, den)
		}
	}
	return density, nil
}

// ReconstructDensity assembles the parameter bundle of one time frame
// from the per-region layer parameters and builds its EDP [N_V, N_G].
func ReconstructDensity(f2 *F2Params, f1 *F1Params, e *EParams, aalt []float64) (*mat.Dense, error) {

	p := &ProfileParams{
		NmF2:   f2.Nm,
		NmF1:   f1.Nm,
		NmE:    e.Nm,
		HmF2:   f2.Hm,
		HmF1:   f1.Hm,
		HmE:    e.Hm,
		B0:     f2.B0,
		B1:     f2.B1,
		BF2Top: f2.BTop,
		BF1Bot: f1.BBot,
		BEBot:  e.BBot,
		BETop:  e.BTop,
	}
	return BuildEDP(p, aalt)
}
