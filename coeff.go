// --------------------------------------------------------
// Distribution statement A. Approved for public release.
// Distribution is unlimited.
// This work was supported by the Office of Naval Research.
// --------------------------------------------------------

// Reading and reshaping of IRTAM coefficient files.
//
// A coefficient file is a plain-text record of 988+76 numeric values:
// the CCIR-style [13 x 76] block stored column-major, followed by 76
// coefficients for the additional IRTAM diurnal term. Comment lines are
// prefixed by '#'.

package pyirtam

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gonum.org/v1/gonum/mat"
)

// CoeffSet holds the four coefficient tables of one IRTAM time frame,
// each of shape [NjIRTAM, NkIRTAM].
type CoeffSet struct {
	B0   *mat.Dense
	B1   *mat.Dense
	FoF2 *mat.Dense
	HmF2 *mat.Dense
}

// CoeffFileName returns the full path of the coefficient file for one
// parameter and timestamp:
//
//	<dir>/<YYYY>/<MMDD>/IRTAM_<Param>_COEFFS_<YYYYMMDD>_<HHMMSS>.ASC
//
// The B0 and B1 thickness parameters use the file names B0in and B1in.
// With useSubdirs false the YYYY/MMDD subdirectories are omitted and dir
// is taken as the complete directory.
func CoeffFileName(t time.Time, param, dir string, useSubdirs bool) string {

	name := param
	if param == "B0" || param == "B1" {
		name = param + "in"
	}
	base := fmt.Sprintf("IRTAM_%s_COEFFS_%s_%s.ASC",
		name, t.Format("20060102"), t.Format("150405"))

	if useSubdirs {
		return filepath.Join(dir, t.Format("2006"), t.Format("0102"), base)
	}
	return filepath.Join(dir, base)
}

// ReadCoeffFile reads one IRTAM coefficient file and returns the
// [NjIRTAM, NkIRTAM] table with the additional diurnal-term row inserted.
func ReadCoeffFile(filename string) (*mat.Dense, error) {

	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("unknown IRTAM coefficient file: %s", filename)
	}
	defer f.Close()

	vals := make([]float64, 0, NumCoeffValues)
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := s.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		for _, field := range strings.Fields(line) {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("bad value %q in %s: %w", field, filename, err)
			}
			vals = append(vals, v)
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("read %s failed, err=%w", filename, err)
	}
	if len(vals) != NumCoeffValues {
		return nil, fmt.Errorf("%s holds %d values, want %d",
			filename, len(vals), NumCoeffValues)
	}

	return reshapeCoeffTable(vals), nil
}

// reshapeCoeffTable converts the flat 988+76 record into the IRTAM table:
// the first 988 values fill a [NjCCIR, NkIRTAM] matrix column-major; the
// remaining 76 become row 1 of the [NjIRTAM, NkIRTAM] result, with the
// CCIR rows 1..12 shifted down by one. The column-major order and the
// row-1 insertion mirror the diurnal basis so the products align.
func reshapeCoeffTable(vals []float64) *mat.Dense {

	F := mat.NewDense(NjIRTAM, NkIRTAM, nil)
	for k := 0; k < NkIRTAM; k++ {
		F.Set(0, k, vals[k*NjCCIR])
		F.Set(1, k, vals[NumCCIRValues+k])
		for j := 1; j < NjCCIR; j++ {
			F.Set(j+1, k, vals[k*NjCCIR+j])
		}
	}
	return F
}

// ReadCoeffSet loads the B0, B1, foF2 and hmF2 coefficient tables for one
// timestamp. A missing file is fatal for the time frame: the returned
// error names the expected file and no partial set is produced.
func ReadCoeffSet(t time.Time, dir string) (*CoeffSet, error) {

	cs := &CoeffSet{}
	for _, p := range CoeffParams {
		table, err := ReadCoeffFile(CoeffFileName(t, p, dir, true))
		if err != nil {
			return nil, err
		}
		switch p {
		case "B0":
			cs.B0 = table
		case "B1":
			cs.B1 = table
		case "foF2":
			cs.FoF2 = table
		case "hmF2":
			cs.HmF2 = table
		}
	}
	return cs, nil
}
