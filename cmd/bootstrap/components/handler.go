package components

import (
	"smartbox-gateway/internal/handler"
	"smartbox-gateway/internal/handler/api"
	"smartbox-gateway/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAttemptHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
