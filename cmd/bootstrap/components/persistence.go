package components

import (
	"restaurant-api/internal/infra/db"
	"restaurant-api/internal/infra/readstore"
	"restaurant-api/internal/infra/uow"
	"restaurant-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationViewRepo)),
		),
		fx.Annotate(
			readstore.NewMenuReadStore,
			fx.As(new(queries.MenuViewRepo)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewViewRepo)),
		),
		fx.Annotate(
			readstore.NewEventReadStore,
			fx.As(new(queries.EventViewRepo)),
		),
		fx.Annotate(
			readstore.NewGalleryReadStore,
			fx.As(new(queries.GalleryViewRepo)),
		),
		fx.Annotate(
			readstore.NewMessageReadStore,
			fx.As(new(queries.MessageViewRepo)),
		),
		fx.Annotate(
			readstore.NewStatsReadStore,
			fx.As(new(queries.StatsViewRepo)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
