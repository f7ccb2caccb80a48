// --------------------------------------------------------
// Distribution statement A. Approved for public release.
// Distribution is unlimited.
// This work was supported by the Office of Naval Research.
// --------------------------------------------------------

package pyirtam

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gonum.org/v1/gonum/mat"
)

// writeCoeffFile writes vals as a coefficient file with a comment header
// and eight values per line.
func writeCoeffFile(t *testing.T, filename string, vals []float64) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	b.WriteString("# START_HEADER\n")
	b.WriteString("# synthetic coefficient record\n")
	for i, v := range vals {
		fmt.Fprintf(&b, " %.10E", v)
		if (i+1)%8 == 0 {
			b.WriteByte('\n')
		}
	}
	b.WriteByte('\n')
	if err := os.WriteFile(filename, []byte(b.String()), 0o644); err != nil {
		t.Fatal(err)
	}
}

// flattenCoeffTable is the inverse of reshapeCoeffTable: it recovers the
// flat 988+76 record from the [NjIRTAM, NkIRTAM] table.
func flattenCoeffTable(F *mat.Dense) []float64 {
	vals := make([]float64, NumCoeffValues)
	for k := 0; k < NkIRTAM; k++ {
		vals[k*NjCCIR] = F.At(0, k)
		vals[NumCCIRValues+k] = F.At(1, k)
		for j := 1; j < NjCCIR; j++ {
			vals[k*NjCCIR+j] = F.At(j+1, k)
		}
	}
	return vals
}

func TestCoeffFileNameSubdirs(t *testing.T) {
	ts := time.Date(2021, 1, 1, 1, 1, 1, 0, time.UTC)
	cases := map[string]string{
		"B0":   "B0in",
		"B1":   "B1in",
		"foF2": "foF2",
		"hmF2": "hmF2",
	}
	for param, name := range cases {
		got := CoeffFileName(ts, param, "root", true)
		want := filepath.Join("root", "2021", "0101",
			"IRTAM_"+name+"_COEFFS_20210101_010101.ASC")
		if got != want {
			t.Errorf("CoeffFileName(%s) = %s, want %s", param, got, want)
		}
	}
}

func TestCoeffFileNameFlat(t *testing.T) {
	ts := time.Date(2021, 12, 31, 23, 45, 0, 0, time.UTC)
	got := CoeffFileName(ts, "foF2", "root", false)
	want := filepath.Join("root", "IRTAM_foF2_COEFFS_20211231_234500.ASC")
	if got != want {
		t.Errorf("CoeffFileName = %s, want %s", got, want)
	}
}

func TestReshapeRoundTrip(t *testing.T) {
	vals := make([]float64, NumCoeffValues)
	for i := range vals {
		vals[i] = float64(i) * 0.25
	}
	F := reshapeCoeffTable(vals)
	if r, c := F.Dims(); r != NjIRTAM || c != NkIRTAM {
		t.Fatalf("table dims = (%d, %d), want (%d, %d)", r, c, NjIRTAM, NkIRTAM)
	}
	back := flattenCoeffTable(F)
	for i := range vals {
		if back[i] != vals[i] {
			t.Fatalf("round trip differs at %d: %v != %v", i, back[i], vals[i])
		}
	}
}

func TestReshapeLayout(t *testing.T) {
	vals := make([]float64, NumCoeffValues)
	for i := range vals {
		vals[i] = float64(i)
	}
	F := reshapeCoeffTable(vals)

	for k := 0; k < NkIRTAM; k++ {
		// Row 0 is row 0 of the column-major CCIR block.
		if F.At(0, k) != float64(k*NjCCIR) {
			t.Fatalf("F[0,%d] = %v, want %v", k, F.At(0, k), float64(k*NjCCIR))
		}
		// Row 1 holds the additional diurnal-term block.
		if F.At(1, k) != float64(NumCCIRValues+k) {
			t.Fatalf("F[1,%d] = %v, want %v", k, F.At(1, k), float64(NumCCIRValues+k))
		}
		// Rows 2..13 are the CCIR rows 1..12.
		for j := 1; j < NjCCIR; j++ {
			if F.At(j+1, k) != float64(k*NjCCIR+j) {
				t.Fatalf("F[%d,%d] = %v, want %v", j+1, k, F.At(j+1, k),
					float64(k*NjCCIR+j))
			}
		}
	}
}

func TestReadCoeffFile(t *testing.T) {
	dir := t.TempDir()
	vals := make([]float64, NumCoeffValues)
	for i := range vals {
		vals[i] = float64(i) - 500.0
	}
	fn := filepath.Join(dir, "IRTAM_foF2_COEFFS_20210101_000000.ASC")
	writeCoeffFile(t, fn, vals)

	F, err := ReadCoeffFile(fn)
	if err != nil {
		t.Fatalf("ReadCoeffFile() failed: %v", err)
	}
	back := flattenCoeffTable(F)
	for i := range vals {
		if back[i] != vals[i] {
			t.Fatalf("value %d: got %v, want %v", i, back[i], vals[i])
		}
	}
}

func TestReadCoeffFileMissing(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "IRTAM_foF2_COEFFS_19990101_000000.ASC")
	_, err := ReadCoeffFile(fn)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "unknown IRTAM coefficient file") {
		t.Errorf("error %q lacks the not-found description", err)
	}
	if !strings.Contains(err.Error(), fn) {
		t.Errorf("error %q lacks the file name", err)
	}
}

func TestReadCoeffFileBadCount(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "short.ASC")
	writeCoeffFile(t, fn, make([]float64, 100))
	if _, err := ReadCoeffFile(fn); err == nil {
		t.Fatal("expected error for short record")
	}
}

func TestReadCoeffSet(t *testing.T) {
	dir := t.TempDir()
	ts := time.Date(2022, 3, 4, 12, 15, 0, 0, time.UTC)
	for i, p := range CoeffParams {
		vals := make([]float64, NumCoeffValues)
		vals[0] = float64(i + 1)
		writeCoeffFile(t, CoeffFileName(ts, p, dir, true), vals)
	}

	cs, err := ReadCoeffSet(ts, dir)
	if err != nil {
		t.Fatalf("ReadCoeffSet() failed: %v", err)
	}
	if cs.FoF2.At(0, 0) != 1 || cs.HmF2.At(0, 0) != 2 ||
		cs.B0.At(0, 0) != 3 || cs.B1.At(0, 0) != 4 {
		t.Errorf("tables mixed up: foF2=%v hmF2=%v B0=%v B1=%v",
			cs.FoF2.At(0, 0), cs.HmF2.At(0, 0), cs.B0.At(0, 0), cs.B1.At(0, 0))
	}
}

func TestReadCoeffSetMissing(t *testing.T) {
	ts := time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := ReadCoeffSet(ts, "bad_path")
	if err == nil {
		t.Fatal("expected error for missing coefficient set")
	}
	if !strings.Contains(err.Error(), "unknown IRTAM coefficient file") {
		t.Errorf("error %q lacks the not-found description", err)
	}
}
