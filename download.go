// --------------------------------------------------------
// Distribution statement A. Approved for public release.
// Distribution is unlimited.
// This work was supported by the Office of Naval Research.
// --------------------------------------------------------

// Retrieval of IRTAM coefficient files from the UMass Lowell GIRO Data
// Center (GAMBIT).

package pyirtam

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// CoeffBaseURL is the GAMBIT coefficient query endpoint.
var CoeffBaseURL = "https://lgdc.uml.edu/rix/gambit-coeffs"

// startHeaderMarker flags a successful coefficient response; a body
// without it is a failed query, not an I/O error.
const startHeaderMarker = "START_HEADER"

// DownloadStatus reports the outcome of one coefficient retrieval.
// Downloaded is true when a new file was written; FileExists is true when
// the parameter file now exists on disk (fresh or pre-existing); Message
// carries diagnostics for the non-fatal outcomes.
type DownloadStatus struct {
	Downloaded bool
	FileExists bool
	Message    string
}

// DownloadCoeffs retrieves the coefficient file for one parameter and
// timestamp into dir, using the YYYY/MMDD layout when useSubdirs is true.
// An unsupported parameter name or a failed remote query is reported in
// the returned status and does not produce an error; errors are reserved
// for local I/O failures. An existing file is kept unless overwrite is
// set.
func DownloadCoeffs(client *http.Client, t time.Time, param, dir string,
	useSubdirs, overwrite bool) (DownloadStatus, error) {

	var st DownloadStatus

	if !slices.Contains(CoeffParams, param) {
		st.Message = fmt.Sprintf("unsupported IRTAM parameter: %s", param)
		log.Warn(st.Message)
		return st, nil
	}
	if client == nil {
		client = http.DefaultClient
	}

	log.WithField("param", param).Info("downloading coefficients from GAMBIT")

	paramFile := CoeffFileName(t, param, dir, useSubdirs)
	log.WithField("file", paramFile).Info("coefficient destination")

	if err := os.MkdirAll(filepath.Dir(paramFile), 0o755); err != nil {
		return st, fmt.Errorf("create coefficient directory failed, err=%w", err)
	}

	if _, err := os.Stat(paramFile); err == nil {
		st.FileExists = true
		st.Message = fmt.Sprintf("IRTAM parameter coefficient file exists: %s", paramFile)
		if !overwrite {
			log.Warn(st.Message)
			return st, nil
		}
		st.Message = "Overwriting " + st.Message
	}

	url := fmt.Sprintf("%s?charName=%s&time=%s",
		CoeffBaseURL, param, t.Format("2006.01.02T15:04:05"))

	resp, err := client.Get(url)
	if err != nil {
		return st, fmt.Errorf("coefficient query failed, err=%w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return st, fmt.Errorf("read coefficient response failed, err=%w", err)
	}

	if !strings.Contains(string(body), startHeaderMarker) {
		msg := fmt.Sprintf("bad IRTAM coefficient query: %s\nremote message: %s", url, body)
		if st.Message != "" {
			msg = st.Message + "\n" + msg
		}
		st.Message = msg
		log.Warn(st.Message)
		return st, nil
	}

	if err := os.WriteFile(paramFile, body, 0o644); err != nil {
		return st, fmt.Errorf("write %s failed, err=%w", paramFile, err)
	}
	st.Downloaded = true
	st.FileExists = true
	if st.Message != "" {
		log.Info(st.Message)
	}
	return st, nil
}

// DownloadCoeffSet retrieves all four parameter files for one timestamp.
// It keeps going through the remaining parameters after a non-fatal
// failure and returns the statuses in CoeffParams order.
func DownloadCoeffSet(client *http.Client, t time.Time, dir string,
	useSubdirs, overwrite bool) ([]DownloadStatus, error) {

	stats := make([]DownloadStatus, 0, len(CoeffParams))
	for _, p := range CoeffParams {
		st, err := DownloadCoeffs(client, t, p, dir, useSubdirs, overwrite)
		if err != nil {
			return stats, err
		}
		stats = append(stats, st)
	}
	return stats, nil
}
