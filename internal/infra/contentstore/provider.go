// Package contentstore selects the configured content store implementation.
package contentstore

import (
	"context"
	"log/slog"
	"net/http"

	"linkvault/config"
	"linkvault/internal/domain/constants"
	"linkvault/internal/domain/service"
	"linkvault/internal/infra/blobstore"
	"linkvault/internal/infra/irys"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the ContentStore, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New creates a ContentStore based on store.provider.
func New(params Params) (service.ContentStore, error) {
	cfg := params.Config.Store
	logger := params.Logger

	switch cfg.Provider {
	case constants.StoreProviderIrys, "":
		logger.Info("Using Irys content store",
			slog.String("node", cfg.NodeURL),
			slog.String("gateway", cfg.GatewayURL),
		)

		return irys.NewClient(cfg, &http.Client{}, logger)

	case constants.StoreProviderBlob:
		logger.Info("Using blob content store", slog.String("bucket", cfg.BucketURL))

		store, closer, err := blobstore.Open(params.Ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		params.Lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				logger.Info("Closing blob content store")

				return closer.Close()
			},
		})

		return store, nil

	default:
		return nil, errors.Errorf("unknown store provider: %s", cfg.Provider)
	}
}
