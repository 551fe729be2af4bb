package components

import (
	"log/slog"

	"barberflow/internal/infra/metrics"
	"barberflow/internal/pkg/clock"
	"barberflow/internal/pkg/config"
	"barberflow/internal/usecase"
	"barberflow/internal/usecase/commands"
	"barberflow/internal/usecase/queries"
	"barberflow/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	usecase.NewTokenValidator,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewWizardCommands,
		NewCalendarCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		NewWizardQueries,
		NewCalendarQueries,
	),
)

func NewWizardCommands(
	catalog commands.CatalogReader,
	gateway commands.WizardGateway,
	sessions shared.WizardStore,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
	m *metrics.Metrics,
) commands.WizardCommands {
	return commands.NewWizardUseCase(catalog, gateway, sessions, clk, cfg.Calendar.Location(), cfg.Calendar.SuccessPath, logger, m)
}

func NewCalendarCommands(
	catalog commands.CatalogReader,
	gateway commands.CalendarGateway,
	sessions shared.CalendarStore,
	cfg config.Config,
	logger *slog.Logger,
	m *metrics.Metrics,
) commands.CalendarCommands {
	return commands.NewCalendarUseCase(catalog, gateway, sessions, cfg.Calendar.MobileBreakpoint, logger, m)
}

func NewWizardQueries(sessions shared.WizardStore, clk clock.Clock, cfg config.Config) queries.WizardQueries {
	return queries.NewWizardQueries(sessions, clk, cfg.Calendar.Location())
}

func NewCalendarQueries(sessions shared.CalendarStore, cfg config.Config) queries.CalendarQueries {
	return queries.NewCalendarQueries(sessions, cfg.Calendar.MobileBreakpoint, cfg.Calendar.Location())
}
