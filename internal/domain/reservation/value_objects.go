package reservation

import "time"

// DateLayout is the wire and storage format of check-in/check-out dates.
const DateLayout = time.DateOnly

// DateOf drops the clock part of t, keeping the calendar date as seen in t's
// location. The result is at 00:00 UTC so dates compare with Before/After/Equal.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
