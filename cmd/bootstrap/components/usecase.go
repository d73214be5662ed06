package components

import (
	"restaurant-api/internal/pkg/clock"
	"restaurant-api/internal/usecase"
	"restaurant-api/internal/usecase/commands"
	"restaurant-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewMenuQueries,
		queries.NewReviewQueries,
		queries.NewEventQueries,
		queries.NewGalleryQueries,
		queries.NewMessageQueries,
		queries.NewStatsQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewReservationUseCase,
		commands.NewMenuUseCase,
		commands.NewReviewUseCase,
		commands.NewEventUseCase,
		commands.NewGalleryUseCase,
		commands.NewMessageUseCase,
	),
)
