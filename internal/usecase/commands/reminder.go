package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"classbook/internal/domain/schedule"
	"classbook/internal/pkg/clock"
	"classbook/internal/pkg/config"
	"classbook/internal/pkg/errs"

	"github.com/google/uuid"
)

// ReminderCandidate is one confirmed booking inside the lookahead window,
// joined with everything a reminder email needs.
type ReminderCandidate struct {
	BookingID    uuid.UUID
	Email        *string
	FirstName    string
	ActivityName string
	VenueName    string
	VenueAddress string
	StartTime    time.Time
	Sent24hAt    *time.Time
	Sent1hAt     *time.Time
}

type OutboundEmail struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

type ReminderReader interface {
	UpcomingCandidates(ctx context.Context, from, to time.Time) ([]*ReminderCandidate, error)
}

type ReminderMarker interface {
	MarkReminderSent(ctx context.Context, bookingID uuid.UUID, kind schedule.ReminderKind, sentAt time.Time) error
}

type Mailer interface {
	Configured() bool
	Send(ctx context.Context, email OutboundEmail) error
}

const (
	DispatchStatusSent   = "sent"
	DispatchStatusFailed = "failed"
	DispatchStatusDryRun = "dry_run"
)

type DispatchItem struct {
	BookingID uuid.UUID `json:"booking_id"`
	Kind      string    `json:"kind"`
	To        string    `json:"to"`
	Status    string    `json:"status"`
	Error     string    `json:"error,omitempty"`
}

type DispatchResult struct {
	DryRun  bool           `json:"dry_run"`
	Checked int            `json:"checked"`
	Queued  int            `json:"queued"`
	Sent    int            `json:"sent"`
	Failed  int            `json:"failed"`
	Items   []DispatchItem `json:"items"`
}

type ReminderCommands interface {
	Dispatch(ctx context.Context, dryRun bool) (*DispatchResult, error)
}

type reminderCommandsImpl struct {
	reader ReminderReader
	marker ReminderMarker
	mailer Mailer
	clock  clock.Clock
	cfg    config.ReminderConfig
}

func NewReminderCommands(
	reader ReminderReader,
	marker ReminderMarker,
	mailer Mailer,
	clk clock.Clock,
	cfg config.ReminderConfig,
) ReminderCommands {
	return &reminderCommandsImpl{
		reader: reader,
		marker: marker,
		mailer: mailer,
		clock:  clk,
		cfg:    cfg,
	}
}

// Dispatch walks every confirmed booking inside the lookahead window,
// classifies it against the reminder windows and sends what is due. Delivery
// is at-least-once: the send guard is stamped only after a successful send, so
// a crash between the two can repeat an email but never lose one.
func (r *reminderCommandsImpl) Dispatch(ctx context.Context, dryRun bool) (*DispatchResult, error) {
	now := r.clock.Now()

	candidates, err := r.reader.UpcomingCandidates(ctx, now, now.Add(r.cfg.Lookahead))
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	result := &DispatchResult{DryRun: dryRun, Checked: len(candidates)}
	for _, candidate := range candidates {
		kind := schedule.ClassifyReminder(&candidate.StartTime, candidate.Sent24hAt, candidate.Sent1hAt, now)
		if kind == schedule.ReminderNone {
			continue
		}
		if candidate.Email == nil || *candidate.Email == "" {
			continue
		}
		result.Queued++

		item := DispatchItem{
			BookingID: candidate.BookingID,
			Kind:      kind.String(),
			To:        *candidate.Email,
		}
		switch {
		case dryRun:
			item.Status = DispatchStatusDryRun
		case !r.mailer.Configured():
			item.Status = DispatchStatusFailed
			item.Error = "mailer is not configured"
			result.Failed++
		default:
			r.deliver(ctx, candidate, kind, now, &item)
			if item.Status == DispatchStatusSent {
				result.Sent++
			} else {
				result.Failed++
			}
		}
		result.Items = append(result.Items, item)
	}

	slog.Info("reminder dispatch finished",
		"dry_run", dryRun,
		"checked", result.Checked,
		"queued", result.Queued,
		"sent", result.Sent,
		"failed", result.Failed,
	)
	return result, nil
}

func (r *reminderCommandsImpl) deliver(ctx context.Context, candidate *ReminderCandidate, kind schedule.ReminderKind, now time.Time, item *DispatchItem) {
	email := buildReminderEmail(candidate, kind)
	if err := r.mailer.Send(ctx, email); err != nil {
		slog.Warn("reminder send failed",
			"booking_id", candidate.BookingID, "kind", kind.String(), "error", err.Error())
		item.Status = DispatchStatusFailed
		item.Error = err.Error()
		return
	}
	item.Status = DispatchStatusSent

	if err := r.marker.MarkReminderSent(ctx, candidate.BookingID, kind, now); err != nil {
		// The email went out; losing the stamp only risks one duplicate on the
		// next run, which the closed windows bound anyway.
		slog.Warn("failed to mark reminder sent",
			"booking_id", candidate.BookingID, "kind", kind.String(), "error", err.Error())
	}
}

func buildReminderEmail(candidate *ReminderCandidate, kind schedule.ReminderKind) OutboundEmail {
	when := candidate.StartTime.Format("Monday, Jan 2 at 3:04 PM")

	var subject, lead string
	if kind == schedule.Reminder24h {
		subject = fmt.Sprintf("Reminder: %s is tomorrow", candidate.ActivityName)
		lead = "is coming up in about 24 hours"
	} else {
		subject = fmt.Sprintf("Starting soon: %s", candidate.ActivityName)
		lead = "starts in about an hour"
	}

	greeting := "Hi"
	if candidate.FirstName != "" {
		greeting = "Hi " + candidate.FirstName
	}

	location := candidate.VenueName
	if candidate.VenueAddress != "" {
		location += ", " + candidate.VenueAddress
	}

	text := fmt.Sprintf("%s,\n\nYour class %s %s.\n\nWhen: %s\nWhere: %s\n\nSee you there!",
		greeting, candidate.ActivityName, lead, when, location)
	html := fmt.Sprintf(
		"<p>%s,</p><p>Your class <strong>%s</strong> %s.</p><p>When: %s<br>Where: %s</p><p>See you there!</p>",
		greeting, candidate.ActivityName, lead, when, location)

	return OutboundEmail{To: *candidate.Email, Subject: subject, Text: text, HTML: html}
}
