// --------------------------------------------------------
// Distribution statement A. Approved for public release.
// Distribution is unlimited.
// This work was supported by the Office of Naval Research.
// --------------------------------------------------------

// Day driver: iterates the time steps of one UTC day, reconstructing
// parameters and density profiles from the IRTAM coefficients of each
// step on top of a single background-model run.

package pyirtam

import (
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
)

// F2Day collects merged F2 parameters for a whole day, [N_T][N_G].
type F2Day struct {
	Nm   [][]float64
	Hm   [][]float64
	B0   [][]float64
	B1   [][]float64
	BTop [][]float64
}

// F1Day collects merged F1 parameters for a whole day. P is carried over
// from the background model unchanged.
type F1Day struct {
	Nm   [][]float64
	Hm   [][]float64
	BBot [][]float64
	P    [][]float64
}

// EDay collects merged E (or Es) parameters for a whole day.
type EDay struct {
	Nm   [][]float64
	Hm   [][]float64
	BBot [][]float64
	BTop [][]float64
}

// DayResult is the output of one day run: the untouched background-model
// day plus the reconstructed bundles and the density [N_T][N_V][N_G].
type DayResult struct {
	Background *BackgroundDay
	F2         *F2Day
	F1         *F1Day
	E          *EDay
	Es         *EDay
	EDP        [][][]float64
}

// RunDay reconstructs a full day. The background model is invoked exactly
// once; every entry of aut then becomes one reconstruction step whose
// coefficient set is loaded fresh from coeffDir. The step's own UT serves
// as the time of validity of its coefficient set.
//
// A failed coefficient load aborts the whole run: no partial-day result
// is returned.
func RunDay(bg BackgroundModel, year, month, day int, aut, alon, alat,
	aalt []float64, f107 float64, coeffDir string) (*DayResult, error) {

	res, err := prepareDay(bg, year, month, day, aut, alon, alat, aalt, f107)
	if err != nil {
		return nil, err
	}

	for it, ut := range aut {
		t := UTToTime(year, month, day, ut)
		log.WithFields(log.Fields{"step": it, "time": t}).Debug("reconstructing time frame")
		step, err := UpdateStep(res.Background, it, t, alon, alat, aalt, ut, coeffDir)
		if err != nil {
			return nil, fmt.Errorf("time frame %v: %w", t, err)
		}
		res.store(it, len(aalt), step)
	}
	return res, nil
}

// RunDaySteps is the task-parallel form of RunDay: time steps are
// independent given the shared background day, so each worker reads the
// immutable background arrays and writes only its own output slot. The
// first failing step (in step order) aborts the result.
func RunDaySteps(bg BackgroundModel, year, month, day int, aut, alon, alat,
	aalt []float64, f107 float64, coeffDir string, workers int) (*DayResult, error) {

	if workers <= 1 {
		return RunDay(bg, year, month, day, aut, alon, alat, aalt, f107, coeffDir)
	}

	res, err := prepareDay(bg, year, month, day, aut, alon, alat, aalt, f107)
	if err != nil {
		return nil, err
	}

	errs := make([]error, len(aut))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for it := range aut {
		wg.Add(1)
		sem <- struct{}{}
		go func(it int) {
			defer wg.Done()
			defer func() { <-sem }()
			t := UTToTime(year, month, day, aut[it])
			step, err := UpdateStep(res.Background, it, t, alon, alat, aalt, aut[it], coeffDir)
			if err != nil {
				errs[it] = fmt.Errorf("time frame %v: %w", t, err)
				return
			}
			res.store(it, len(aalt), step)
		}(it)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// prepareDay validates the run inputs, invokes the background model once
// and allocates the day-long result collections.
func prepareDay(bg BackgroundModel, year, month, day int, aut, alon, alat,
	aalt []float64, f107 float64) (*DayResult, error) {

	if len(aut) == 0 {
		return nil, fmt.Errorf("empty time array")
	}
	if len(alon) == 0 || len(alon) != len(alat) {
		return nil, fmt.Errorf("grid size mismatch: lon %d, lat %d", len(alon), len(alat))
	}
	for i := 1; i < len(aalt); i++ {
		if aalt[i] <= aalt[i-1] {
			return nil, fmt.Errorf("altitude grid must increase strictly at index %d", i)
		}
	}

	log.WithFields(log.Fields{
		"date":  fmt.Sprintf("%04d-%02d-%02d", year, month, day),
		"steps": len(aut),
		"grid":  len(alon),
	}).Debug("running background model")

	bgDay, err := bg.Day(year, month, day, aut, alon, alat, aalt, f107)
	if err != nil {
		return nil, fmt.Errorf("background model failed, err=%w", err)
	}

	nt := len(aut)
	res := &DayResult{
		Background: bgDay,
		F2: &F2Day{
			Nm: make([][]float64, nt), Hm: make([][]float64, nt),
			B0: make([][]float64, nt), B1: make([][]float64, nt),
			BTop: make([][]float64, nt),
		},
		F1: &F1Day{
			Nm: make([][]float64, nt), Hm: make([][]float64, nt),
			BBot: make([][]float64, nt), P: bgDay.F1.P,
		},
		E: &EDay{
			Nm: make([][]float64, nt), Hm: make([][]float64, nt),
			BBot: make([][]float64, nt), BTop: make([][]float64, nt),
		},
		Es: &EDay{
			Nm: make([][]float64, nt), Hm: make([][]float64, nt),
			BBot: make([][]float64, nt), BTop: make([][]float64, nt),
		},
		EDP: make([][][]float64, nt),
	}
	return res, nil
}

// store writes one reconstructed step into its disjoint slot of the day
// collections.
func (r *DayResult) store(it, nv int, step *StepResult) {
	r.F2.Nm[it] = step.F2.Nm
	r.F2.Hm[it] = step.F2.Hm
	r.F2.B0[it] = step.F2.B0
	r.F2.B1[it] = step.F2.B1
	r.F2.BTop[it] = step.F2.BTop

	r.F1.Nm[it] = step.F1.Nm
	r.F1.Hm[it] = step.F1.Hm
	r.F1.BBot[it] = step.F1.BBot

	r.E.Nm[it] = step.E.Nm
	r.E.Hm[it] = step.E.Hm
	r.E.BBot[it] = step.E.BBot
	r.E.BTop[it] = step.E.BTop

	r.Es.Nm[it] = step.Es.Nm
	r.Es.Hm[it] = step.Es.Hm
	r.Es.BBot[it] = step.Es.BBot
	r.Es.BTop[it] = step.Es.BTop

	edp := make([][]float64, nv)
	for iv := 0; iv < nv; iv++ {
		edp[iv] = cloneRow(step.EDP.RawRowView(iv))
	}
	r.EDP[it] = edp
}
