package commands

import (
	"context"

	"classbook/internal/domain/tier"
	"classbook/internal/domain/user"
	reqdto "classbook/internal/handler/dto/request"
	"classbook/internal/infra"
	"classbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidRole      = errs.New("invalid role")
	ErrInvalidTier      = errs.New("invalid subscription tier")
	ErrCannotDeleteSelf = errs.New("cannot delete own account")
	ErrUserHasRecords   = errs.New("user still has related records")
)

type UserWriteRepository interface {
	UserRepository
	UpdateProfile(ctx context.Context, id uuid.UUID, p UpdateProfileParams) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UpdateProfileParams struct {
	FirstName string
	LastName  string
	Tier      *string
}

type UserCommands interface {
	SetRole(ctx context.Context, targetID uuid.UUID, role string) error
	UpdateProfile(ctx context.Context, targetID uuid.UUID, req reqdto.UpdateProfileRequest) error
	Delete(ctx context.Context, actorID, targetID uuid.UUID) error
}

type userCommandsImpl struct {
	userRepo UserWriteRepository
}

func NewUserCommands(userRepo UserWriteRepository) UserCommands {
	return &userCommandsImpl{userRepo: userRepo}
}

func (u *userCommandsImpl) SetRole(ctx context.Context, targetID uuid.UUID, role string) error {
	newRole, err := user.NewRole(role)
	if err != nil {
		return ErrInvalidRole
	}

	if err := u.userRepo.UpdateRole(ctx, targetID, newRole); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *userCommandsImpl) UpdateProfile(ctx context.Context, targetID uuid.UUID, req reqdto.UpdateProfileRequest) error {
	if req.Tier != nil {
		if _, err := tier.New(*req.Tier); err != nil {
			return ErrInvalidTier
		}
	}

	params := UpdateProfileParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Tier:      req.Tier,
	}
	if err := u.userRepo.UpdateProfile(ctx, targetID, params); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *userCommandsImpl) Delete(ctx context.Context, actorID, targetID uuid.UUID) error {
	if actorID == targetID {
		return ErrCannotDeleteSelf
	}

	if err := u.userRepo.Delete(ctx, targetID); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrUserNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrUserHasRecords
		default:
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return nil
}
