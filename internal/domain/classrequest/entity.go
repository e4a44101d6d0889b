package classrequest

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTitleTooShort  = errors.New("title must be at least 3 characters")
	ErrAlreadyDecided = errors.New("class request has already been decided")
)

const (
	DefaultDurationMinutes = 60
	DefaultSessionCapacity = 20
)

// Requester is an identity snapshot taken at submission time, so the request
// stays attributable even if the account is later deleted.
type Requester struct {
	UserID uuid.UUID
	Email  string
	Name   string
}

// SuggestedVenue is the free-form venue suggestion on a request. VenueRef, if
// set, points at an existing venue and is what allows session creation on
// approval.
type SuggestedVenue struct {
	Name     string
	Address  string
	VenueRef *uuid.UUID
}

type ClassRequest struct {
	id             uuid.UUID
	title          string
	description    string
	instructor     string
	duration       int
	categoryName   string
	suggestedVenue *SuggestedVenue
	preferredTimes []time.Time
	requester      Requester
	status         Status
	adminNote      string
	decidedAt      *time.Time
	decidedBy      *uuid.UUID
	createdAt      time.Time
}

func NewClassRequest(
	title, description, instructor string,
	duration int,
	categoryName string,
	suggestedVenue *SuggestedVenue,
	preferredTimes []time.Time,
	requester Requester,
	createdAt time.Time,
) (*ClassRequest, error) {
	if len(strings.TrimSpace(title)) < 3 {
		return nil, ErrTitleTooShort
	}
	if duration <= 0 {
		duration = DefaultDurationMinutes
	}
	return &ClassRequest{
		id:             uuid.New(),
		title:          strings.TrimSpace(title),
		description:    description,
		instructor:     instructor,
		duration:       duration,
		categoryName:   categoryName,
		suggestedVenue: suggestedVenue,
		preferredTimes: preferredTimes,
		requester:      requester,
		status:         StatusPending,
		createdAt:      createdAt,
	}, nil
}

func ReconstructClassRequest(
	id uuid.UUID,
	title, description, instructor string,
	duration int,
	categoryName string,
	suggestedVenue *SuggestedVenue,
	preferredTimes []time.Time,
	requester Requester,
	status Status,
	adminNote string,
	decidedAt *time.Time,
	decidedBy *uuid.UUID,
	createdAt time.Time,
) *ClassRequest {
	return &ClassRequest{
		id:             id,
		title:          title,
		description:    description,
		instructor:     instructor,
		duration:       duration,
		categoryName:   categoryName,
		suggestedVenue: suggestedVenue,
		preferredTimes: preferredTimes,
		requester:      requester,
		status:         status,
		adminNote:      adminNote,
		decidedAt:      decidedAt,
		decidedBy:      decidedBy,
		createdAt:      createdAt,
	}
}

func (r *ClassRequest) ID() uuid.UUID                   { return r.id }
func (r *ClassRequest) Title() string                   { return r.title }
func (r *ClassRequest) Description() string             { return r.description }
func (r *ClassRequest) Instructor() string              { return r.instructor }
func (r *ClassRequest) Duration() int                   { return r.duration }
func (r *ClassRequest) CategoryName() string            { return r.categoryName }
func (r *ClassRequest) SuggestedVenue() *SuggestedVenue { return r.suggestedVenue }
func (r *ClassRequest) PreferredTimes() []time.Time     { return r.preferredTimes }
func (r *ClassRequest) Requester() Requester            { return r.requester }
func (r *ClassRequest) Status() Status                  { return r.status }
func (r *ClassRequest) AdminNote() string               { return r.adminNote }
func (r *ClassRequest) DecidedAt() *time.Time           { return r.decidedAt }
func (r *ClassRequest) DecidedBy() *uuid.UUID           { return r.decidedBy }
func (r *ClassRequest) CreatedAt() time.Time            { return r.createdAt }

// InstructorOrDefault backs the approval flow, which never creates an
// activity without an instructor label.
func (r *ClassRequest) InstructorOrDefault() string {
	if strings.TrimSpace(r.instructor) == "" {
		return "TBD"
	}
	return r.instructor
}

// CanCreateSessions reports whether approval may materialize sessions:
// it needs both a resolved venue reference and at least one preferred time.
func (r *ClassRequest) CanCreateSessions() bool {
	return r.suggestedVenue != nil && r.suggestedVenue.VenueRef != nil && len(r.preferredTimes) > 0
}

// Approve transitions pending → approved. Re-deciding a decided request is an
// invalid transition.
func (r *ClassRequest) Approve(adminID uuid.UUID, note string, now time.Time) error {
	if r.status.IsDecided() {
		return ErrAlreadyDecided
	}
	r.status = StatusApproved
	r.adminNote = note
	r.decidedAt = &now
	r.decidedBy = &adminID
	return nil
}

// Reject transitions pending → rejected under the same guard as Approve.
func (r *ClassRequest) Reject(adminID uuid.UUID, note string, now time.Time) error {
	if r.status.IsDecided() {
		return ErrAlreadyDecided
	}
	r.status = StatusRejected
	r.adminNote = note
	r.decidedAt = &now
	r.decidedBy = &adminID
	return nil
}

// Slugify normalizes a title or category name for storage, mirroring the slug
// fields on created catalog documents.
func Slugify(s string) string {
	var b strings.Builder
	lastDash := true // trim leading dashes
	for _, c := range strings.ToLower(s) {
		switch {
		case c >= 'a' && c <= 'z' || c >= '0' && c <= '9':
			b.WriteRune(c)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
