package visitor

import (
	"context"
	"log/slog"

	"linkvault/config"
	"linkvault/internal/domain/service"

	"go.uber.org/fx"
)

// Params holds dependencies for the VisitInspector, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New builds the inspector from analytics.geoipDbPath and closes the database on shutdown.
func New(params Params) service.VisitInspector {
	insp := openInspector(params.Config.Analytics.GeoIPDBPath, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return insp.Close()
		},
	})

	return insp
}
