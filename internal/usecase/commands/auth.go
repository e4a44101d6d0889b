package commands

import (
	"context"
	"log/slog"
	"time"

	"classbook/internal/domain/user"
	reqdto "classbook/internal/handler/dto/request"
	"classbook/internal/infra"
	"classbook/internal/pkg/clock"
	"classbook/internal/pkg/config"
	"classbook/internal/pkg/errs"
	"classbook/internal/pkg/jwt"
	"classbook/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrEmailAlreadyTaken    = errs.New("email already registered")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	UserID    uuid.UUID
	Role      user.Role
	TokenPair *TokenPair
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	UpdateRole(ctx context.Context, id uuid.UUID, role user.Role) error
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*LoginResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
	adminCfg   config.AdminConfig
	clock      clock.Clock
}

func NewAuthCommands(userRepo UserRepository, jwtService *jwt.Service, adminCfg config.AdminConfig, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		adminCfg:   adminCfg,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	hash, err := password.Hash(credentials.Password.Value())
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	role := user.RoleMember
	if a.adminCfg.IsAllowedEmail(credentials.Email.Value()) {
		role = user.RoleAdmin
	}

	entity := user.NewUser(credentials.Email, hash, role, req.FirstName, req.LastName)
	if err := a.userRepo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailAlreadyTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	pair, err := a.issueTokens(entity.ID(), role)
	if err != nil {
		return nil, err
	}
	return &LoginResult{UserID: entity.ID(), Role: role, TokenPair: pair}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	entity, err := a.userRepo.FindByEmail(ctx, credentials.Email.Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.Compare(entity.PasswordHash(), credentials.Password.Value()); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !entity.IsActive() {
		return nil, ErrUserInactive
	}

	role := a.effectiveRole(ctx, entity)

	if err := a.userRepo.UpdateLastLogin(ctx, entity.ID(), a.clock.Now()); err != nil {
		slog.Warn("failed to update last login", "user_id", entity.ID(), "error", err.Error())
	}

	pair, err := a.issueTokens(entity.ID(), role)
	if err != nil {
		return nil, err
	}
	return &LoginResult{UserID: entity.ID(), Role: role, TokenPair: pair}, nil
}

// effectiveRole elevates allow-listed emails to admin at login time and
// persists the promotion so later sessions see it without the list.
func (a *authCommandsImpl) effectiveRole(ctx context.Context, entity *user.User) user.Role {
	if entity.IsAdmin() || !a.adminCfg.IsAllowedEmail(entity.Email().Value()) {
		return entity.Role()
	}

	if err := a.userRepo.UpdateRole(ctx, entity.ID(), user.RoleAdmin); err != nil {
		slog.Warn("failed to persist admin promotion", "user_id", entity.ID(), "error", err.Error())
	}
	return user.RoleAdmin
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	entity, err := a.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !entity.IsActive() {
		return nil, ErrUserInactive
	}

	return a.issueTokens(entity.ID(), entity.Role())
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
