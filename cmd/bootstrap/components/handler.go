package components

import (
	"barberflow/internal/handler"
	"barberflow/internal/handler/api"
	"barberflow/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewWizardHandler,
		api.NewCalendarHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
