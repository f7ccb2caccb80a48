// --------------------------------------------------------
// Distribution statement A. Approved for public release.
// Distribution is unlimited.
// This work was supported by the Office of Naval Research.
// --------------------------------------------------------

// Synthesis of scalar parameter maps from coefficient tables and bases.

package pyirtam

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/mat"
)

// F2Map holds the synthesized F2-region parameter maps of one time frame,
// one value per grid point.
type F2Map struct {
	Fo []float64 // critical frequency [MHz]
	Hm []float64 // peak height [km]
	B0 []float64 // bottomside thickness [km]
	B1 []float64 // bottomside shape parameter
}

// gammaMap projects one coefficient table through the diurnal and
// geographic bases: gamma = D x U x G, returning the first (and in IRTAM
// use the only) time row.
func gammaMap(D, U, G *mat.Dense) []float64 {

	var DU, gamma mat.Dense
	DU.Mul(D, U)
	gamma.Mul(&DU, G)
	return gamma.RawRowView(0)
}

// Synthesize computes the B0, B1, foF2 and hmF2 maps for one time frame
// as D x U x G and clamps the thickness parameters to their physical
// ranges: B0 to [B0Min, B0Max], B1 to [B1Min, B1Max]. Out-of-range values
// are truncated silently.
func Synthesize(G, D *mat.Dense, cs *CoeffSet) *F2Map {

	m := &F2Map{
		B0: gammaMap(D, cs.B0, G),
		B1: gammaMap(D, cs.B1, G),
		Fo: gammaMap(D, cs.FoF2, G),
		Hm: gammaMap(D, cs.HmF2, G),
	}
	for i := range m.B0 {
		m.B0[i] = Clamp(m.B0[i], B0Min, B0Max)
		m.B1[i] = Clamp(m.B1[i], B1Min, B1Max)
	}
	return m
}

// Density returns the IRTAM F2-region parameter maps for a single
// timestamp and grid: it evaluates the geographic basis for the grid and
// modip map, the diurnal basis for the timestamp, loads the coefficient
// tables from dir, and synthesizes the four maps. Pass tov = DefaultTOV
// when the time of validity of the coefficient set is unknown.
func Density(t time.Time, alon, alat, modip []float64, tov float64, dir string) (*F2Map, error) {

	G, err := GeographicBasis(alon, alat, modip)
	if err != nil {
		return nil, fmt.Errorf("GeographicBasis() failed, err=%w", err)
	}

	D := DiurnalBasis([]float64{TimeToUT(t)}, tov)

	cs, err := ReadCoeffSet(t, dir)
	if err != nil {
		return nil, err
	}

	return Synthesize(G, D, cs), nil
}
