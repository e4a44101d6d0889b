package readstore

import (
	"context"

	"classbook/internal/infra"
	"classbook/internal/infra/db"
	"classbook/internal/pkg/pgconv"
	"classbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

const userViewColumns = `
	id, email, first_name, last_name, role, subscription_tier,
	is_active, last_login, created_at`

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	query := `SELECT ` + userViewColumns + ` FROM users WHERE id = $1`

	view, err := scanUserView(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return view, nil
}

func (s *UserReadStore) FindAll(ctx context.Context) ([]*queries.UserView, error) {
	query := `SELECT ` + userViewColumns + ` FROM users ORDER BY created_at ASC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	var result []*queries.UserView
	for rows.Next() {
		view, err := scanUserView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read user rows", err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUserView(row rowScanner) (*queries.UserView, error) {
	view := &queries.UserView{}
	var tier pgtype.Text
	var lastLogin pgtype.Timestamptz
	err := row.Scan(
		&view.ID, &view.Email, &view.FirstName, &view.LastName,
		&view.Role, &tier, &view.IsActive, &lastLogin, &view.CreatedAt)
	if err != nil {
		return nil, err
	}
	view.SubscriptionTier = pgconv.StringPtrFromPgtype(tier)
	view.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)
	return view, nil
}
