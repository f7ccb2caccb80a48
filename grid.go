// --------------------------------------------------------
// Distribution statement A. Approved for public release.
// Distribution is unlimited.
// This work was supported by the Office of Naval Research.
// --------------------------------------------------------

package pyirtam

// GeoGrid builds a flattened regular geographic grid with the given
// resolutions in degrees: longitudes span [-180, 180) and latitudes
// [-90, 90]. Both outputs have length N_G and share the positional order
// used by every per-grid-point array.
func GeoGrid(dlon, dlat float64) (alon, alat []float64) {
	for lat := -90.0; lat <= 90.0; lat += dlat {
		for lon := -180.0; lon < 180.0; lon += dlon {
			alon = append(alon, lon)
			alat = append(alat, lat)
		}
	}
	return alon, alat
}

// TimeArray returns the universal times of one day in decimal hours at
// the given step in minutes, starting at 00:00 and excluding 24:00.
func TimeArray(stepMinutes int) []float64 {
	n := 24 * 60 / stepMinutes
	aut := make([]float64, n)
	for i := range aut {
		aut[i] = float64(i*stepMinutes) / 60.0
	}
	return aut
}

// AltGrid returns altitudes in km from lo to hi inclusive at the given
// step.
func AltGrid(lo, hi, step float64) []float64 {
	var aalt []float64
	for h := lo; h <= hi; h += step {
		aalt = append(aalt, h)
	}
	return aalt
}
