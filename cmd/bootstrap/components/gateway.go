package components

import (
	"barberflow/internal/infra/bookingapi"
	"barberflow/internal/infra/cache"
	"barberflow/internal/infra/session"
	"barberflow/internal/usecase/commands"
	"barberflow/internal/usecase/shared"

	"go.uber.org/fx"
)

// GatewayModule binds the infra implementations to the ports the use cases
// depend on.
var GatewayModule = fx.Module("gateway",
	fx.Provide(
		// Booking API
		fx.Annotate(
			func(c *bookingapi.Client) *bookingapi.Client { return c },
			fx.As(new(commands.WizardGateway)),
			fx.As(new(commands.CalendarGateway)),
		),
		// Catalog cache
		fx.Annotate(
			func(c *cache.Catalog) *cache.Catalog { return c },
			fx.As(new(commands.CatalogReader)),
		),
		// Sessions
		fx.Annotate(
			func(s *session.Store[*shared.WizardSession]) *session.Store[*shared.WizardSession] { return s },
			fx.As(new(shared.WizardStore)),
		),
		fx.Annotate(
			func(s *session.Store[*shared.CalendarSession]) *session.Store[*shared.CalendarSession] { return s },
			fx.As(new(shared.CalendarStore)),
		),
	),
)
