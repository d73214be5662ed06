package components

import (
	"restaurant-api/internal/handler"
	"restaurant-api/internal/handler/api"
	"restaurant-api/internal/handler/middleware"
	"restaurant-api/internal/pkg/config"
	"restaurant-api/internal/pkg/jwt"
	"restaurant-api/internal/usecase/commands"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAuthHandlerFromConfig,
		api.NewReservationHandler,
		api.NewMenuHandler,
		api.NewReviewHandler,
		api.NewEventHandler,
		api.NewGalleryHandler,
		api.NewContactHandler,
		api.NewStatsHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthHandlerFromConfig(authCommands commands.AuthCommands, jwtService *jwt.Service, cfg config.Config) *api.AuthHandler {
	return api.NewAuthHandler(authCommands, jwtService, cfg.Cookie)
}

func NewHandlers(
	auth *api.AuthHandler,
	reservation *api.ReservationHandler,
	menu *api.MenuHandler,
	review *api.ReviewHandler,
	event *api.EventHandler,
	gallery *api.GalleryHandler,
	contact *api.ContactHandler,
	stats *api.StatsHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Reservation: reservation,
		Menu:        menu,
		Review:      review,
		Event:       event,
		Gallery:     gallery,
		Contact:     contact,
		Stats:       stats,
	}
}
