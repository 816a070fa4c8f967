// Package pebble implements the local analytics store on top of an embedded Pebble database.
package pebble

import (
	"context"
	"log/slog"
	"os"

	"linkvault/config"
	"linkvault/internal/errors"

	"github.com/cockroachdb/pebble"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the analytics database under analytics.dataDir and closes it on shutdown.
func New(params Params) (*pebble.DB, error) {
	dir := params.Config.Analytics.DataDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create analytics data directory %s", dir)
	}

	db, err := Open(dir, nil)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Analytics store opened", slog.String("dir", dir))

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if err := db.Flush(); err != nil {
				params.Logger.Warn("Failed to flush analytics store", slog.Any("error", err))
			}

			return errors.Wrap(db.Close(), "failed to close analytics store")
		},
	})

	return db, nil
}

// Open opens a Pebble database at dir. A nil opts uses the defaults.
func Open(dir string, opts *pebble.Options) (*pebble.DB, error) {
	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open pebble at %s", dir)
	}

	return db, nil
}
