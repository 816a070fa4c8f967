// Package persistence selects the analytics backend.
package persistence

import (
	"log/slog"

	"linkvault/config"
	"linkvault/internal/domain/constants"
	"linkvault/internal/domain/repository"
	"linkvault/internal/errors"
	"linkvault/internal/infra/persistence/pebble"
	"linkvault/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params holds dependencies for the AnalyticsRepository, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewAnalyticsRepository opens the store named by analytics.backend.
func NewAnalyticsRepository(params Params) (repository.AnalyticsRepository, error) {
	backend := params.Config.Analytics.Backend
	logger := params.Logger

	switch backend {
	case constants.AnalyticsBackendPebble, "":
		db, err := pebble.New(pebble.Params{Lifecycle: params.Lc, Config: params.Config, Logger: logger})
		if err != nil {
			return nil, err
		}

		return pebble.NewAnalyticsRepository(db)

	case constants.AnalyticsBackendPostgres:
		logger.Info("Using postgres analytics store")

		db, err := postgres.New(postgres.Params{Lifecycle: params.Lc, Config: params.Config, Logger: logger})
		if err != nil {
			return nil, err
		}

		return postgres.NewAnalyticsRepository(db)

	default:
		return nil, errors.Errorf("unknown analytics backend %q", backend)
	}
}
