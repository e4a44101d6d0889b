package components

import (
	"classbook/internal/infra/db"
	"classbook/internal/infra/readstore"
	repo_impl "classbook/internal/infra/repository"
	"classbook/internal/usecase/commands"
	"classbook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			db.NewTxRunner,
			fx.As(new(commands.TxRunner)),
		),
		// Write side
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
			fx.As(new(commands.UserWriteRepository)),
			fx.As(new(commands.UserFinder)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
			fx.As(new(commands.ReminderMarker)),
		),
		fx.Annotate(
			repo_impl.NewClassRequestRepository,
			fx.As(new(commands.ClassRequestRepository)),
		),
		fx.Annotate(
			repo_impl.NewCatalogRepository,
			fx.As(new(commands.CatalogRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewSessionReadStore,
			fx.As(new(queries.SessionReadStore)),
			fx.As(new(commands.SessionReader)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(commands.ReminderReader)),
		),
		fx.Annotate(
			readstore.NewClassRequestReadStore,
			fx.As(new(queries.ClassRequestReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
