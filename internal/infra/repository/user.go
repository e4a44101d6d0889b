package repository

import (
	"context"
	"errors"
	"time"

	"classbook/internal/domain/tier"
	"classbook/internal/domain/user"
	"classbook/internal/infra"
	"classbook/internal/infra/db"
	"classbook/internal/pkg/pgconv"
	"classbook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	const query = `
		INSERT INTO users (id, email, password_hash, first_name, last_name, role, subscription_tier, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	var tierStr *string
	if t := u.Tier(); t != nil {
		s := t.String()
		tierStr = &s
	}

	_, err := r.db.Exec(ctx, query,
		u.ID(), u.Email().Value(), u.PasswordHash(),
		u.FirstName(), u.LastName(), u.Role().String(), tierStr, u.IsActive())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	const query = `UPDATE users SET last_login = $2 WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, id, at); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, id uuid.UUID, role user.Role) error {
	const query = `UPDATE users SET role = $2, updated_at = now() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, role.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update user role", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, p commands.UpdateProfileParams) error {
	const query = `
		UPDATE users
		SET first_name = $2, last_name = $3, subscription_tier = $4, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, p.FirstName, p.LastName, p.Tier)
	if err != nil {
		return infra.WrapRepoErr("failed to update user profile", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM users WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeForeignKeyViolation {
			return infra.WrapRepoErr("user has related records", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

// FindByID reconstructs the domain user, tier left nil when unset in storage.
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	const query = `
		SELECT id, email, password_hash, first_name, last_name, role,
		       subscription_tier, is_active, last_login, created_at, updated_at
		FROM users
		WHERE id = $1`

	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	const query = `
		SELECT id, email, password_hash, first_name, last_name, role,
		       subscription_tier, is_active, last_login, created_at, updated_at
		FROM users
		WHERE email = $1`

	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *UserRepository) scanUser(row rowScanner) (*user.User, error) {
	var (
		id                   uuid.UUID
		email, passwordHash  string
		firstName, lastName  string
		role                 string
		tierStr              *string
		isActive             bool
		lastLogin            *time.Time
		createdAt, updatedAt time.Time
	)
	err := row.Scan(&id, &email, &passwordHash, &firstName, &lastName, &role,
		&tierStr, &isActive, &lastLogin, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	emailVO, err := user.NewEmail(email)
	if err != nil {
		return nil, infra.WrapRepoErr("stored email is invalid", err)
	}

	return user.ReconstructUser(
		id, emailVO, passwordHash, firstName, lastName,
		user.Role(role), tierPtr(tierStr), isActive, lastLogin,
		createdAt, updatedAt,
	), nil
}

func tierPtr(s *string) *tier.Tier {
	if s == nil {
		return nil
	}
	t, err := tier.New(*s)
	if err != nil {
		return nil
	}
	return &t
}
