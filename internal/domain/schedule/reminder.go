package schedule

import "time"

// ReminderKind identifies which pre-class reminder a booking is due for.
type ReminderKind string

const (
	ReminderNone ReminderKind = "none"
	Reminder24h  ReminderKind = "24h"
	Reminder1h   ReminderKind = "1h"
)

// Reminder windows are closed intervals measured from now to class start.
// A wide 24h window tolerates scheduler jitter of up to an hour either way.
const (
	Window24hMin = 23 * time.Hour
	Window24hMax = 25 * time.Hour
	Window1hMin  = 45 * time.Minute
	Window1hMax  = 75 * time.Minute
)

func (k ReminderKind) String() string {
	return string(k)
}

// ClassifyReminder decides which reminder, if any, a booking is due for.
// start is the session start; sent24h and sent1h are the send guards already
// recorded on the booking. A booking with no resolvable start never
// classifies. The 24h check takes priority; the windows are disjoint by
// construction so both can never match at once.
func ClassifyReminder(start *time.Time, sent24h, sent1h *time.Time, now time.Time) ReminderKind {
	if start == nil || start.IsZero() {
		return ReminderNone
	}

	until := start.Sub(now)

	if until >= Window24hMin && until <= Window24hMax && sent24h == nil {
		return Reminder24h
	}
	if until >= Window1hMin && until <= Window1hMax && sent1h == nil {
		return Reminder1h
	}
	return ReminderNone
}
