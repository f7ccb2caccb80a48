// --------------------------------------------------------
// Distribution statement A. Approved for public release.
// Distribution is unlimited.
// This work was supported by the Office of Naval Research.
// --------------------------------------------------------

// Geographic and diurnal basis functions for the IRTAM coefficient family.

package pyirtam

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// GeographicBasis evaluates the geographic coordinate functions
// G_k(position) of Jones & Gallet (1965) for every grid point.
//
// Inputs are flattened 1-D arrays of equal length N_G: geographic
// longitude and latitude in degrees and modified dip angle in degrees.
// The result has shape [NkIRTAM, N_G]: nine harmonic groups in longitude,
// each truncated at the per-group degree cap in sin(modip).
func GeographicBasis(alon, alat, modip []float64) (*mat.Dense, error) {

	ng := len(alon)
	if ng == 0 {
		return nil, fmt.Errorf("empty grid")
	}
	if len(alat) != ng || len(modip) != ng {
		return nil, fmt.Errorf("grid size mismatch: lon %d, lat %d, modip %d",
			ng, len(alat), len(modip))
	}

	G := mat.NewDense(NkIRTAM, ng, nil)
	row := make([]float64, ng)

	k := 0
	for j := 0; j < len(qmF2); j++ {
		for i := 0; i < qmF2[j]; i++ {
			for m := 0; m < 2; m++ {
				// The sine longitude term vanishes identically for the
				// zonal group and is not part of the expansion.
				if j == 0 && m == 1 {
					continue
				}
				for ig := 0; ig < ng; ig++ {
					f1 := math.Pow(math.Sin(ToRad(modip[ig])), float64(i))
					f2 := math.Pow(math.Cos(ToRad(alat[ig])), float64(j))
					var f3 float64
					if m == 0 {
						f3 = math.Cos(ToRad(alon[ig] * float64(j)))
					} else {
						f3 = math.Sin(ToRad(alon[ig] * float64(j)))
					}
					row[ig] = f1 * f2 * f3
				}
				G.SetRow(k, row)
				k++
			}
		}
	}
	if k != NkIRTAM {
		return nil, fmt.Errorf("geographic expansion produced %d of %d functions", k, NkIRTAM)
	}
	return G, nil
}

// ccirDiurnalBasis evaluates the standard climatological diurnal functions
// for the given UTs in decimal hours: a constant row followed by cosine and
// sine of the first six harmonics of the hour angle. Shape [NjCCIR, N_T].
func ccirDiurnalBasis(aut []float64) *mat.Dense {

	D := mat.NewDense(NjCCIR, len(aut), nil)
	for it, ut := range aut {
		hou := ToRad(15.0*ut - 180.0)
		D.Set(0, it, 1.0)
		for m := 1; m <= 6; m++ {
			D.Set(2*m-1, it, math.Cos(hou*float64(m)))
			D.Set(2*m, it, math.Sin(hou*float64(m)))
		}
	}
	return D
}

// DiurnalBasis builds the IRTAM diurnal function matrix for the given UTs
// in decimal hours. Row 0 is the climatological constant row; row 1 is the
// linear correction term (UT - TOV)*60 + 720, i.e. minutes since the time
// of validity re-centered on half a day; rows 2..13 are the climatological
// rows 1..12 shifted down by one. Pass tov = DefaultTOV when the time of
// validity is unknown.
//
// The result is transposed to [N_T, NjIRTAM] so it left-multiplies the
// coefficient tables directly.
func DiurnalBasis(aut []float64, tov float64) *mat.Dense {

	ccir := ccirDiurnalBasis(aut)

	D := mat.NewDense(len(aut), NjIRTAM, nil)
	for it, ut := range aut {
		D.Set(it, 0, ccir.At(0, it))
		D.Set(it, 1, (ut-tov)*60.0+720.0)
		for j := 1; j < NjCCIR; j++ {
			D.Set(it, j+1, ccir.At(j, it))
		}
	}
	return D
}
