// --------------------------------------------------------
// Distribution statement A. Approved for public release.
// Distribution is unlimited.
// This work was supported by the Office of Naval Research.
// --------------------------------------------------------

// Contract with the external climatological background model and the
// layer parameter bundles shared between it and the reconstruction.

package pyirtam

// F2Params holds the merged F2-region parameters of one time frame, one
// value per grid point.
type F2Params struct {
	Nm   []float64 // peak density [m-3]
	Hm   []float64 // peak height [km]
	B0   []float64 // bottomside thickness [km]
	B1   []float64 // bottomside shape parameter
	BTop []float64 // topside thickness [km]
}

// F1Params holds the F1-region parameters of one time frame. Nm and Hm
// are NaN at grid points where no F1 layer forms.
type F1Params struct {
	Nm   []float64 // peak density [m-3]
	Hm   []float64 // peak height [km]
	BBot []float64 // bottomside thickness [km]
}

// EParams holds E-region (or sporadic-E) parameters of one time frame.
type EParams struct {
	Nm   []float64 // peak density [m-3]
	Hm   []float64 // peak height [km]
	BBot []float64 // bottomside thickness [km]
	BTop []float64 // topside thickness [km]
}

// BackgroundF2 is the F2 day bundle of the background model, [N_T][N_G].
type BackgroundF2 struct {
	Nm   [][]float64
	Fo   [][]float64
	Hm   [][]float64
	BTop [][]float64
	BBot [][]float64
}

// BackgroundF1 is the F1 day bundle. P is the F1 occurrence probability.
type BackgroundF1 struct {
	Nm   [][]float64
	Fo   [][]float64
	P    [][]float64
	Hm   [][]float64
	BBot [][]float64
}

// BackgroundE is the E or Es day bundle.
type BackgroundE struct {
	Nm   [][]float64
	Fo   [][]float64
	Hm   [][]float64
	BTop [][]float64
	BBot [][]float64
}

// SunGeometry holds the subsolar point per grid point.
type SunGeometry struct {
	Lon []float64
	Lat []float64
}

// MagGeometry holds the magnetic geometry per grid point.
type MagGeometry struct {
	Inc       []float64 // inclination [deg]
	Modip     []float64 // modified dip angle [deg]
	MagDipLat []float64 // magnetic dip latitude [deg]
}

// BackgroundDay is everything the background model supplies for one day:
// baseline layer bundles [N_T][N_G], solar and magnetic geometry [N_G],
// and the baseline electron density [N_T][N_V][N_G].
type BackgroundDay struct {
	F2  *BackgroundF2
	F1  *BackgroundF1
	E   *BackgroundE
	Es  *BackgroundE
	Sun *SunGeometry
	Mag *MagGeometry
	EDP [][][]float64
}

// BackgroundModel is the external climatological provider. It is invoked
// exactly once per day run; the reconstruction treats its outputs as
// read-only.
type BackgroundModel interface {
	Day(year, month, day int, aut, alon, alat, aalt []float64,
		f107 float64) (*BackgroundDay, error)
}
