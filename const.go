// --------------------------------------------------------
// Distribution statement A. Approved for public release.
// Distribution is unlimited.
// This work was supported by the Office of Naval Research.
// --------------------------------------------------------

package pyirtam

const (
	PI = 3.1415926535897932 // Pi

	// Orders of the basis-function expansions for the F2/IRTAM family.
	// NkIRTAM geographic functions (Table 3, Jones & Gallet 1965) and
	// NjIRTAM diurnal functions (CCIR's 13 plus the IRTAM linear term).
	NkIRTAM = 76
	NjCCIR  = 13
	NjIRTAM = 14

	// Sizes of a coefficient file record: the CCIR-style block followed
	// by the additional diurnal-term block.
	NumCCIRValues  = NjCCIR * NkIRTAM // 988
	NumExtraValues = NkIRTAM          // 76
	NumCoeffValues = NumCCIRValues + NumExtraValues

	// Time of Validity sentinel meaning "no diurnal correction".
	DefaultTOV = 24.0

	// Physical bounds for the synthesized thickness parameters (same
	// limits as IRI, to prevent unphysically thin profiles).
	B0Min = 1.0
	B0Max = 350.0
	B1Min = 1.0
	B1Max = 6.0

	// Substitution defaults for missing or non-positive thicknesses [km].
	DefaultBF1Bot = 10.0
	DefaultBF2Top = 30.0

	// Lower bound for every constructed electron density [m-3].
	DensityFloor = 1.0

	// Saturation of the clipped exponential.
	fexpClip = 80.0
	fexpHigh = 5.5406e34
	fexpLow  = 1.8049e-35

	// Topside Epstein shape-correction constants.
	topsideG = 0.125
	topsideR = 100.0

	// Altitude scan used to invert the bottomside for hmF1 [km].
	hmF1ScanTop  = 700.0
	hmF1ScanStep = 1.0
)

// Highest power of sin(modip) for each of the nine harmonic groups of the
// geographic expansion (degree caps of the F2/foF2 coefficient family).
var qmF2 = [9]int{12, 12, 9, 5, 2, 1, 1, 1, 1}

// Coefficient parameter names accepted by the file and retrieval layers.
var CoeffParams = []string{"foF2", "hmF2", "B0", "B1"}
