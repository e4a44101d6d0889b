// Package schedule holds the pure time-window rules shared by session
// discovery, the booking lifecycle and the reminder job.
package schedule

import "time"

// IsLive reports whether now falls within [start, start+duration).
// A class is no longer live at the exact instant it ends.
func IsLive(start time.Time, duration time.Duration, now time.Time) bool {
	if start.IsZero() || duration <= 0 {
		return false
	}
	return !now.Before(start) && now.Before(start.Add(duration))
}

// IsPast reports whether the class has ended.
func IsPast(start time.Time, duration time.Duration, now time.Time) bool {
	if start.IsZero() {
		return false
	}
	return now.After(start.Add(duration))
}

// End derives the session end from its start and activity duration.
func End(start time.Time, duration time.Duration) time.Time {
	return start.Add(duration)
}
