// --------------------------------------------------------
// Distribution statement A. Approved for public release.
// Distribution is unlimited.
// This work was supported by the Office of Naval Research.
// --------------------------------------------------------

package pyirtam

import (
	"math"
	"time"
)

// UTToTime converts a universal time in decimal hours to a timestamp on the
// given calendar day. Seconds below one minute are truncated, matching the
// 15-minute cadence of the coefficient files.
func UTToTime(year, month, day int, ut float64) time.Time {
	hour := int(math.Trunc(ut))
	minute := int((ut - float64(hour)) * 60.0)
	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
}

// TimeToUT returns the universal time of a timestamp in decimal hours.
func TimeToUT(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60.0 + float64(t.Second())/3600.0
}
