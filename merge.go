// --------------------------------------------------------
// Distribution statement A. Approved for public release.
// Distribution is unlimited.
// This work was supported by the Office of Naval Research.
// --------------------------------------------------------

// Merge of one time frame: IRTAM-updated F2 parameters combined with the
// background F1/E/Es parameters into profile-ready bundles.

package pyirtam

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/mat"
)

// StepResult is the reconstruction of one time frame: the merged layer
// bundles and the electron density [N_V, N_G].
type StepResult struct {
	F2  *F2Params
	F1  *F1Params
	E   *EParams
	Es  *EParams
	EDP *mat.Dense
}

// UpdateStep reconstructs one time frame. It synthesizes foF2, hmF2, B0
// and B1 from the IRTAM coefficients for the timestamp, converts the
// critical frequency to a peak density, re-derives hmF1 and the F1
// bottomside thickness against the updated F2 bottomside, carries the
// remaining F1/E/Es parameters over from the background model at time
// index it, and builds the merged density profile.
//
// A missing coefficient file aborts the step; no stale or partial data is
// substituted.
func UpdateStep(bg *BackgroundDay, it int, t time.Time, alon, alat, aalt []float64,
	tov float64, coeffDir string) (*StepResult, error) {

	f2map, err := Density(t, alon, alat, bg.Mag.Modip, tov, coeffDir)
	if err != nil {
		return nil, err
	}

	// Background values of this time frame that stay as they are.
	nmF1 := cloneRow(bg.F1.Nm[it])
	pF1 := cloneRow(bg.F1.P[it])
	nmE := cloneRow(bg.E.Nm[it])
	hmE := cloneRow(bg.E.Hm[it])
	bETop := cloneRow(bg.E.BTop[it])
	bF2Top := cloneRow(bg.F2.BTop[it])

	// Parameters that depend on the updated NmF2, hmF2 and thickness.
	nmF2 := FreqToNm(f2map.Fo)
	hmF1 := FindHmF1(f2map.B0, f2map.B1, nmF2, f2map.Hm, nmF1)
	bF1Bot := FindBF1Bot(hmF1, hmE, pF1)

	f2 := &F2Params{Nm: nmF2, Hm: f2map.Hm, B0: f2map.B0, B1: f2map.B1, BTop: bF2Top}
	f1 := &F1Params{Nm: nmF1, Hm: hmF1, BBot: bF1Bot}
	// Note: the E bottomside thickness is fed from the F1 occurrence
	// probability, matching the upstream parameter mapping.
	e := &EParams{Nm: nmE, Hm: hmE, BBot: pF1, BTop: bETop}
	es := &EParams{
		Nm:   cloneRow(bg.Es.Nm[it]),
		Hm:   cloneRow(bg.Es.Hm[it]),
		BBot: cloneRow(bg.Es.BBot[it]),
		BTop: cloneRow(bg.Es.BTop[it]),
	}

	edp, err := ReconstructDensity(f2, f1, e, aalt)
	if err != nil {
		return nil, fmt.Errorf("ReconstructDensity() failed, err=%w", err)
	}

	return &StepResult{F2: f2, F1: f1, E: e, Es: es, EDP: edp}, nil
}

// cloneRow copies one background row so no time frame aliases another or
// mutates the shared background arrays.
func cloneRow(src []float64) []float64 {
	dst := make([]float64, len(src))
	copy(dst, src)
	return dst
}
