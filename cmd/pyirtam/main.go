// --------------------------------------------------------
// Distribution statement A. Approved for public release.
// Distribution is unlimited.
// This work was supported by the Office of Naval Research.
// --------------------------------------------------------

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	m "github.com/victoriyaforsythe/PyIRTAM"
)

type cmdOpt struct {
	download  bool
	timeStr   string
	stepMin   int
	gridFn    string
	coeffDir  string
	tov       float64
	outFn     string
	overwrite bool
	verbose   bool
}

func main() {

	args, err := parseArgs()
	if err != nil {
		flag.Usage()
		os.Exit(1)
	}

	if args.verbose {
		log.SetLevel(log.DebugLevel)
	}

	if err := runApplication(args); err != nil {
		m.PrintE(err)
		os.Exit(1)
	}
}

// Parse command line arguments
func parseArgs() (cmdOpt, error) {

	var args cmdOpt
	flag.BoolVar(&args.download, "download", false, "download coefficient files instead of evaluating maps")
	flag.StringVar(&args.timeStr, "time", "", "UTC timestamp, e.g. 2022-01-01T01:15:00 (with -download: any time of the wanted day)")
	flag.IntVar(&args.stepMin, "step", 15, "time step in minutes for -download")
	flag.StringVar(&args.gridFn, "grid", "", "grid file with one 'lon lat modip' row per grid point")
	flag.StringVar(&args.coeffDir, "dir", "", "IRTAM coefficient directory")
	flag.Float64Var(&args.tov, "tov", m.DefaultTOV, "time of validity in decimal hours (24 if unknown)")
	flag.StringVar(&args.outFn, "o", "", "output file (default stdout)")
	flag.BoolVar(&args.overwrite, "f", false, "overwrite existing coefficient files on download")
	flag.BoolVar(&args.verbose, "v", false, "verbose logging")
	flag.Parse()

	if args.timeStr == "" || args.coeffDir == "" {
		return args, fmt.Errorf("both -time and -dir are required")
	}
	if !args.download && args.gridFn == "" {
		return args, fmt.Errorf("-grid is required unless -download is given")
	}
	return args, nil
}

// Main application processing
func runApplication(args cmdOpt) error {

	t, err := time.Parse("2006-01-02T15:04:05", args.timeStr)
	if err != nil {
		return fmt.Errorf("failed to parse -time: %w", err)
	}

	if args.download {
		return downloadDay(t, args)
	}
	return evaluateMaps(t, args)
}

// Download the four coefficient files for every time step of one day
func downloadDay(t time.Time, args cmdOpt) error {

	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	for _, ut := range m.TimeArray(args.stepMin) {
		ts := m.UTToTime(day.Year(), int(day.Month()), day.Day(), ut)
		stats, err := m.DownloadCoeffSet(nil, ts, args.coeffDir, true, args.overwrite)
		if err != nil {
			return fmt.Errorf("download at %v failed: %w", ts, err)
		}
		for i, st := range stats {
			if !st.FileExists {
				return fmt.Errorf("no %s coefficients for %v: %s",
					m.CoeffParams[i], ts, st.Message)
			}
		}
	}
	return nil
}

// Evaluate the parameter maps for one timestamp over the grid file
func evaluateMaps(t time.Time, args cmdOpt) error {

	alon, alat, modip, err := readGrid(args.gridFn)
	if err != nil {
		return fmt.Errorf("failed to read grid file: %w", err)
	}

	f2, err := m.Density(t, alon, alat, modip, args.tov, args.coeffDir)
	if err != nil {
		return err
	}

	out, err := prepareOutput(args.outFn)
	if err != nil {
		return fmt.Errorf("failed to prepare output: %w", err)
	}
	defer out.Close()

	fmt.Fprintf(out, "%% lon lat foF2[MHz] hmF2[km] B0[km] B1\n")
	for i := range alon {
		fmt.Fprintf(out, "%9.3f %8.3f %8.4f %9.3f %9.3f %7.4f\n",
			alon[i], alat[i], f2.Fo[i], f2.Hm[i], f2.B0[i], f2.B1[i])
	}
	return nil
}

// Read a grid file with one 'lon lat modip' row per line
func readGrid(filename string) (alon, alat, modip []float64, err error) {

	f, err := os.Open(filename)
	if err != nil {
		return nil, nil, nil, err
	}
	defer f.Close()

	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "%") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, nil, nil, fmt.Errorf("bad grid line: %q", line)
		}
		var v [3]float64
		for i := 0; i < 3; i++ {
			v[i], err = strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("bad grid value %q: %w", fields[i], err)
			}
		}
		alon = append(alon, v[0])
		alat = append(alat, v[1])
		modip = append(modip, v[2])
	}
	if err := s.Err(); err != nil {
		return nil, nil, nil, err
	}
	return alon, alat, modip, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// Prepare output file, stdout if none specified
func prepareOutput(filename string) (io.WriteCloser, error) {
	if filename == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(filename)
}
