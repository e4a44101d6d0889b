package repository

import (
	"context"
	"errors"

	"classbook/internal/infra"
	"classbook/internal/infra/db"
	"classbook/internal/pkg/pgconv"
	"classbook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeForeignKeyViolation = "23503"

// CatalogRepository writes the documents an approved class request produces:
// categories, activities and class sessions.
type CatalogRepository struct {
	db db.DBTX
}

func NewCatalogRepository(dbtx db.DBTX) *CatalogRepository {
	return &CatalogRepository{db: dbtx}
}

// FindCategoryIDByName does a case-sensitive exact match, mirroring how
// categories are resolved during approval. Returns nil when absent.
func (r *CatalogRepository) FindCategoryIDByName(ctx context.Context, dbtx db.DBTX, name string) (*uuid.UUID, error) {
	const query = `SELECT id FROM categories WHERE name = $1`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query, name).Scan(&id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find category", err)
	}
	return &id, nil
}

func (r *CatalogRepository) CreateCategory(ctx context.Context, dbtx db.DBTX, name, slug string) (uuid.UUID, error) {
	const query = `INSERT INTO categories (id, name, slug) VALUES ($1, $2, $3)`

	id := uuid.New()
	if _, err := dbtx.Exec(ctx, query, id, name, slug); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create category", err)
	}
	return id, nil
}

func (r *CatalogRepository) CreateActivity(ctx context.Context, dbtx db.DBTX, p commands.CreateActivityParams) (uuid.UUID, error) {
	const query = `
		INSERT INTO activities (id, name, slug, instructor, description, duration_min, tier_level, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	id := uuid.New()
	_, err := dbtx.Exec(ctx, query,
		id, p.Name, p.Slug, p.Instructor, p.Description, p.DurationMin, p.TierLevel,
		pgconv.UUIDPtrToPgtype(p.CategoryID))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create activity", err)
	}
	return id, nil
}

func (r *CatalogRepository) CreateSession(ctx context.Context, dbtx db.DBTX, p commands.CreateSessionParams) (uuid.UUID, error) {
	const query = `
		INSERT INTO class_sessions (id, activity_id, venue_id, start_time, max_capacity, status)
		VALUES ($1, $2, $3, $4, $5, $6)`

	id := uuid.New()
	_, err := dbtx.Exec(ctx, query, id, p.ActivityID, p.VenueID, p.StartTime, p.MaxCapacity, p.Status)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeForeignKeyViolation {
			return uuid.Nil, infra.WrapRepoErr("venue or activity does not exist", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create class session", err)
	}
	return id, nil
}
