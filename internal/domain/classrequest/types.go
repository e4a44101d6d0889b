package classrequest

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// IsDecided reports whether the request has left the pending state.
// Decided requests accept no further transitions.
func (s Status) IsDecided() bool {
	return s == StatusApproved || s == StatusRejected
}
