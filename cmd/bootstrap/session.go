package bootstrap

import (
	"context"
	"log/slog"

	"barberflow/internal/infra/metrics"
	"barberflow/internal/infra/session"
	"barberflow/internal/pkg/clock"
	"barberflow/internal/pkg/config"
	"barberflow/internal/usecase/shared"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		NewWizardStore,
		NewCalendarStore,
	),
	fx.Invoke(StartJanitor),
)

func NewWizardStore(cfg config.Config, clk clock.Clock) *session.Store[*shared.WizardSession] {
	return session.NewStore[*shared.WizardSession]("wizard", cfg.Session.TTL, clk)
}

func NewCalendarStore(cfg config.Config, clk clock.Clock) *session.Store[*shared.CalendarSession] {
	return session.NewStore[*shared.CalendarSession]("calendar", cfg.Session.TTL, clk)
}

func StartJanitor(
	lc fx.Lifecycle,
	cfg config.Config,
	logger *slog.Logger,
	m *metrics.Metrics,
	wizards *session.Store[*shared.WizardSession],
	calendars *session.Store[*shared.CalendarSession],
) {
	janitor := session.NewJanitor(cfg.Session.SweepInterval, logger, m, wizards, calendars)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			janitor.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return janitor.Stop(ctx)
		},
	})
}
