package components

import (
	"digital-menu/internal/handler"
	"digital-menu/internal/handler/api"
	"digital-menu/internal/handler/middleware"
	"digital-menu/internal/handler/ws"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRestaurantHandler,
		api.NewMenuHandler,
		api.NewOfferHandler,
		ws.NewOffersHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
