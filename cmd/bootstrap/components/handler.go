package components

import (
	"padelbook/internal/handler"
	"padelbook/internal/handler/api"
	"padelbook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewInvitationHandler,
		api.NewWalletHandler,
		api.NewCompanyHandler,
		api.NewUserHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
