package commands

import (
	"context"
	"time"

	"classbook/internal/domain/classrequest"
	"classbook/internal/domain/tier"
	reqdto "classbook/internal/handler/dto/request"
	"classbook/internal/infra"
	"classbook/internal/infra/db"
	"classbook/internal/pkg/clock"
	"classbook/internal/pkg/errs"
	"classbook/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrClassRequestNotFound = errs.New("class request not found")
	ErrClassRequestDecided  = errs.New("class request has already been decided")
	ErrInvalidClassRequest  = errs.New("invalid class request")
)

type ClassRequestRepository interface {
	Create(ctx context.Context, req *classrequest.ClassRequest) error
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*classrequest.ClassRequest, error)
	ClaimDecision(ctx context.Context, dbtx db.DBTX, id uuid.UUID, to classrequest.Status, adminID uuid.UUID, note string, decidedAt time.Time) (bool, error)
}

type CatalogRepository interface {
	FindCategoryIDByName(ctx context.Context, dbtx db.DBTX, name string) (*uuid.UUID, error)
	CreateCategory(ctx context.Context, dbtx db.DBTX, name, slug string) (uuid.UUID, error)
	CreateActivity(ctx context.Context, dbtx db.DBTX, p CreateActivityParams) (uuid.UUID, error)
	CreateSession(ctx context.Context, dbtx db.DBTX, p CreateSessionParams) (uuid.UUID, error)
}

// TxRunner scopes a closure to one database transaction. A non-nil return
// from the closure rolls the transaction back and passes through unchanged.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(dbtx db.DBTX) error) error
}

// CreateActivityParams mirrors the catalog write surface used on approval.
type CreateActivityParams struct {
	Name        string
	Slug        string
	Instructor  string
	Description string
	DurationMin int
	TierLevel   string
	CategoryID  *uuid.UUID
}

type CreateSessionParams struct {
	ActivityID  uuid.UUID
	VenueID     uuid.UUID
	StartTime   time.Time
	MaxCapacity int
	Status      string
}

// ApproveInput carries the admin's decision. CreateSessions defaults to true
// at the handler; false approves the request without materializing sessions.
type ApproveInput struct {
	AdminNote      string
	CreateSessions bool
}

// ApproveResult lists everything the approval materialized.
type ApproveResult struct {
	RequestID  uuid.UUID
	CategoryID *uuid.UUID
	ActivityID uuid.UUID
	SessionIDs []uuid.UUID
}

type ClassRequestCommands interface {
	Submit(ctx context.Context, userID uuid.UUID, req reqdto.CreateClassRequestRequest) (*queries.ClassRequestView, error)
	Approve(ctx context.Context, adminID, requestID uuid.UUID, in ApproveInput) (*ApproveResult, error)
	Reject(ctx context.Context, adminID, requestID uuid.UUID, adminNote string) error
}

type classRequestCommandsImpl struct {
	requestRepo    ClassRequestRepository
	catalogRepo    CatalogRepository
	userFinder     UserFinder
	requestQueries queries.ClassRequestQueries
	txRunner       TxRunner
	clock          clock.Clock
}

func NewClassRequestCommands(
	requestRepo ClassRequestRepository,
	catalogRepo CatalogRepository,
	userFinder UserFinder,
	requestQueries queries.ClassRequestQueries,
	txRunner TxRunner,
	clk clock.Clock,
) ClassRequestCommands {
	return &classRequestCommandsImpl{
		requestRepo:    requestRepo,
		catalogRepo:    catalogRepo,
		userFinder:     userFinder,
		requestQueries: requestQueries,
		txRunner:       txRunner,
		clock:          clk,
	}
}

func (c *classRequestCommandsImpl) Submit(ctx context.Context, userID uuid.UUID, req reqdto.CreateClassRequestRequest) (*queries.ClassRequestView, error) {
	actor, err := c.userFinder.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	var venue *classrequest.SuggestedVenue
	if req.Venue != nil {
		venueRef, err := req.VenueRefUUID()
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidClassRequest)
		}
		venue = &classrequest.SuggestedVenue{
			Name:     req.Venue.Name,
			Address:  req.Venue.Address,
			VenueRef: venueRef,
		}
	}

	requester := classrequest.Requester{
		UserID: actor.ID(),
		Email:  actor.Email().Value(),
		Name:   actor.FirstName() + " " + actor.LastName(),
	}
	entity, err := classrequest.NewClassRequest(
		req.Title, req.Description, req.Instructor, req.DurationMin,
		req.CategoryName, venue, req.PreferredTimes, requester, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidClassRequest)
	}

	if err := c.requestRepo.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := c.requestQueries.GetByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// Approve claims the pending request and materializes the catalog documents in
// one transaction. The claim is a conditional write, so concurrent decisions
// on the same request leave exactly one winner; the losers observe the row as
// already decided.
func (c *classRequestCommandsImpl) Approve(ctx context.Context, adminID, requestID uuid.UUID, in ApproveInput) (*ApproveResult, error) {
	now := c.clock.Now()
	result := &ApproveResult{RequestID: requestID}

	err := c.txRunner.RunInTx(ctx, func(tx db.DBTX) error {
		claimed, err := c.requestRepo.ClaimDecision(ctx, tx, requestID, classrequest.StatusApproved, adminID, in.AdminNote, now)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !claimed {
			return c.decisionClaimFailure(ctx, tx, requestID)
		}

		entity, err := c.requestRepo.FindByID(ctx, tx, requestID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if entity.CategoryName() != "" {
			categoryID, err := c.resolveCategory(ctx, tx, entity.CategoryName())
			if err != nil {
				return err
			}
			result.CategoryID = categoryID
		}

		activityID, err := c.catalogRepo.CreateActivity(ctx, tx, CreateActivityParams{
			Name:        entity.Title(),
			Slug:        classrequest.Slugify(entity.Title()),
			Instructor:  entity.InstructorOrDefault(),
			Description: entity.Description(),
			DurationMin: entity.Duration(),
			TierLevel:   tier.TierBasic.String(),
			CategoryID:  result.CategoryID,
		})
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		result.ActivityID = activityID

		if in.CreateSessions && entity.CanCreateSessions() {
			venueID := *entity.SuggestedVenue().VenueRef
			for _, startTime := range entity.PreferredTimes() {
				sessionID, err := c.catalogRepo.CreateSession(ctx, tx, CreateSessionParams{
					ActivityID:  activityID,
					VenueID:     venueID,
					StartTime:   startTime,
					MaxCapacity: classrequest.DefaultSessionCapacity,
					Status:      sessionStatusScheduled,
				})
				if err != nil {
					if infra.IsKind(err, infra.KindForeignKeyViolated) {
						return errs.Mark(err, ErrInvalidClassRequest)
					}
					return errs.Mark(err, ErrDatabaseOperationFailed)
				}
				result.SessionIDs = append(result.SessionIDs, sessionID)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *classRequestCommandsImpl) Reject(ctx context.Context, adminID, requestID uuid.UUID, adminNote string) error {
	return c.txRunner.RunInTx(ctx, func(tx db.DBTX) error {
		claimed, err := c.requestRepo.ClaimDecision(ctx, tx, requestID, classrequest.StatusRejected, adminID, adminNote, c.clock.Now())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !claimed {
			return c.decisionClaimFailure(ctx, tx, requestID)
		}
		return nil
	})
}

// decisionClaimFailure disambiguates a failed claim: the request either does
// not exist or was decided first by someone else.
func (c *classRequestCommandsImpl) decisionClaimFailure(ctx context.Context, dbtx db.DBTX, requestID uuid.UUID) error {
	_, err := c.requestRepo.FindByID(ctx, dbtx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrClassRequestNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return ErrClassRequestDecided
}

// resolveCategory matches by exact name; anything else gets a fresh category.
func (c *classRequestCommandsImpl) resolveCategory(ctx context.Context, tx db.DBTX, name string) (*uuid.UUID, error) {
	existing, err := c.catalogRepo.FindCategoryIDByName(ctx, tx, name)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if existing != nil {
		return existing, nil
	}

	created, err := c.catalogRepo.CreateCategory(ctx, tx, name, classrequest.Slugify(name))
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return &created, nil
}
