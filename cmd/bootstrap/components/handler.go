package components

import (
	"classbook/internal/handler"
	"classbook/internal/handler/api"
	"classbook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewSessionHandler,
		api.NewBookingHandler,
		api.NewClassRequestHandler,
		api.NewAdminHandler,
		api.NewCronHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	session *api.SessionHandler,
	booking *api.BookingHandler,
	classRequest *api.ClassRequestHandler,
	admin *api.AdminHandler,
	cron *api.CronHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Session:      session,
		Booking:      booking,
		ClassRequest: classRequest,
		Admin:        admin,
		Cron:         cron,
	}
}
