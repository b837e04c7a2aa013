// Package watch implements the watch face: a fixed-duration splash screen
// followed by a live clock, driven by logical-time timers over the ui
// toolkit and painted through the HAL display adapter.
package watch

import "time"

const (
	timeLayout = "15:04:05"
	dateLayout = "Mon, Jan 02 2006"
)

// FormatClock renders the time-of-day and calendar date strings shown on the
// clock screen: zero-padded 24-hour time and an abbreviated weekday/month
// date like "Wed, Jan 01 2025".
func FormatClock(t time.Time) (timeStr, dateStr string) {
	return t.Format(timeLayout), t.Format(dateLayout)
}
