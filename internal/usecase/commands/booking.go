package commands

import (
	"context"
	"errors"
	"time"

	"classbook/internal/domain/booking"
	"classbook/internal/domain/tier"
	"classbook/internal/domain/user"
	"classbook/internal/infra"
	"classbook/internal/infra/db"
	"classbook/internal/pkg/clock"
	"classbook/internal/pkg/config"
	"classbook/internal/pkg/errs"
	"classbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrSessionNotFound         = errs.New("class session not found")
	ErrSessionNotBookable      = errs.New("class session is not open for booking")
	ErrBookingClosed           = errs.New("class has already started")
	ErrTierInsufficient        = errs.New("subscription tier does not allow this class")
	ErrDuplicateBooking        = errs.New("active booking already exists for this session")
	ErrMonthlyLimitReached     = errs.New("monthly booking limit reached")
	ErrSessionFull             = errs.New("class session is full")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrInvalidTransition       = errs.New("booking state does not allow this transition")
	ErrCancelDeadlinePassed    = errs.New("cancellation deadline has passed")
	ErrOutsideAttendanceWindow = errs.New("attendance can only be confirmed around class time")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// SessionSnapshot carries the session facts booking checks before writing.
type SessionSnapshot struct {
	ID          uuid.UUID
	StartTime   time.Time
	DurationMin int
	TierLevel   string
	MaxCapacity int
	Status      string
}

const sessionStatusScheduled = "scheduled"

type BookingRepository interface {
	CreateIfCapacity(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	HasActiveBooking(ctx context.Context, userID, sessionID uuid.UUID) (bool, error)
	CountCreatedBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error)
	UpdateStatus(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error
}

type SessionReader interface {
	SnapshotByID(ctx context.Context, id uuid.UUID) (*SessionSnapshot, error)
}

type UserFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

type BookingCommands interface {
	Create(ctx context.Context, userID, sessionID uuid.UUID) (*queries.BookingView, error)
	Cancel(ctx context.Context, userID, bookingID uuid.UUID) error
	ConfirmAttendance(ctx context.Context, userID, bookingID uuid.UUID) error
}

type bookingCommandsImpl struct {
	bookingRepo    BookingRepository
	sessionReader  SessionReader
	userFinder     UserFinder
	bookingQueries queries.BookingQueries
	db             *pgxpool.Pool
	clock          clock.Clock
	cfg            config.BookingConfig
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	sessionReader SessionReader,
	userFinder UserFinder,
	bookingQueries queries.BookingQueries,
	db *pgxpool.Pool,
	clk clock.Clock,
	cfg config.BookingConfig,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:    bookingRepo,
		sessionReader:  sessionReader,
		userFinder:     userFinder,
		bookingQueries: bookingQueries,
		db:             db,
		clock:          clk,
		cfg:            cfg,
	}
}

// Create runs the booking preconditions in a fixed order so a request failing
// several of them always reports the same error: session exists, booking still
// open, tier gate, no duplicate, monthly limit, then capacity. The capacity
// check is atomic with the insert.
func (b *bookingCommandsImpl) Create(ctx context.Context, userID, sessionID uuid.UUID) (*queries.BookingView, error) {
	now := b.clock.Now()

	snap, err := b.sessionReader.SnapshotByID(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snap.Status != sessionStatusScheduled {
		return nil, ErrSessionNotBookable
	}
	if !now.Before(snap.StartTime) {
		return nil, ErrBookingClosed
	}

	actor, err := b.userFinder.FindByID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	required, err := tier.New(snap.TierLevel)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !tier.CanAccess(actor.Tier(), required) {
		return nil, ErrTierInsufficient
	}

	hasActive, err := b.bookingRepo.HasActiveBooking(ctx, userID, sessionID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if hasActive {
		return nil, ErrDuplicateBooking
	}

	if err := b.checkMonthlyLimit(ctx, actor, now); err != nil {
		return nil, err
	}

	entity := booking.NewBooking(userID, sessionID, now)
	if err := b.bookingRepo.CreateIfCapacity(ctx, b.db, entity); err != nil {
		switch {
		case infra.IsKind(err, infra.KindConflict):
			return nil, ErrSessionFull
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrDuplicateBooking
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	view, err := b.bookingQueries.GetByID(ctx, userID, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (b *bookingCommandsImpl) checkMonthlyLimit(ctx context.Context, actor *user.User, now time.Time) error {
	limit := tier.TierNone.MonthlyLimit()
	if t := actor.Tier(); t != nil {
		limit = t.MonthlyLimit()
	}
	if limit == tier.Unlimited {
		return nil
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)
	used, err := b.bookingRepo.CountCreatedBetween(ctx, actor.ID(), monthStart, monthEnd)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if used >= limit {
		return ErrMonthlyLimitReached
	}
	return nil
}

func (b *bookingCommandsImpl) Cancel(ctx context.Context, userID, bookingID uuid.UUID) error {
	entity, snap, err := b.loadOwnedBooking(ctx, userID, bookingID)
	if err != nil {
		return err
	}

	if err := entity.Cancel(snap.StartTime, b.cfg.CancelCutoff, b.clock.Now()); err != nil {
		switch {
		case errors.Is(err, booking.ErrClassAlreadyStarted):
			return ErrCancelDeadlinePassed
		default:
			return errs.Mark(err, ErrInvalidTransition)
		}
	}

	return b.persistTransition(ctx, entity)
}

func (b *bookingCommandsImpl) ConfirmAttendance(ctx context.Context, userID, bookingID uuid.UUID) error {
	entity, snap, err := b.loadOwnedBooking(ctx, userID, bookingID)
	if err != nil {
		return err
	}

	duration := time.Duration(snap.DurationMin) * time.Minute
	if err := entity.ConfirmAttendance(snap.StartTime, duration, b.cfg.AttendanceGrace, b.clock.Now()); err != nil {
		switch {
		case errors.Is(err, booking.ErrOutsideAttendanceSlot):
			return ErrOutsideAttendanceWindow
		default:
			return errs.Mark(err, ErrInvalidTransition)
		}
	}

	return b.persistTransition(ctx, entity)
}

// loadOwnedBooking hides other members' bookings behind not-found.
func (b *bookingCommandsImpl) loadOwnedBooking(ctx context.Context, userID, bookingID uuid.UUID) (*booking.Booking, *SessionSnapshot, error) {
	entity, err := b.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrBookingNotFound
		}
		return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !entity.IsOwnedBy(userID) {
		return nil, nil, ErrBookingNotFound
	}

	snap, err := b.sessionReader.SnapshotByID(ctx, entity.SessionID())
	if err != nil {
		return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity, snap, nil
}

func (b *bookingCommandsImpl) persistTransition(ctx context.Context, entity *booking.Booking) error {
	if err := b.bookingRepo.UpdateStatus(ctx, b.db, entity); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return ErrInvalidTransition
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
