package booking

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusAttended  Status = "attended"
	StatusNoShow    Status = "noShow"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusAttended, StatusNoShow:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the booking record can transition no further.
// A new booking for the same user/session pair starts a fresh record.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCancelled, StatusAttended, StatusNoShow:
		return true
	default:
		return false
	}
}
