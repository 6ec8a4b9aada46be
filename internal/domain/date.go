package domain

import "time"

// DateOnly strips the time of day from t, keeping t's calendar date, and returns it
// as midnight UTC. All calendar dates in the domain use this representation.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the calendar date of now as observed in tz.
func Today(now time.Time, tz *time.Location) time.Time {
	if tz == nil {
		tz = time.UTC
	}
	return DateOnly(now.In(tz))
}

// AddDays returns the calendar date n days after date.
// AddDate handles month and year boundaries; Add(24h) would not survive DST.
func AddDays(date time.Time, n int) time.Time {
	return DateOnly(date).AddDate(0, 0, n)
}
