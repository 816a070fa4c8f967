// Package postgres is the GORM and PostgreSQL analytics backend.
package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"linkvault/config"
	"linkvault/internal/domain/lifecycle"
	"linkvault/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleInterval       = 5 * time.Second
	poolWaitWarnThreshold = 50 * time.Millisecond
)

// Params is filled by fx. Lifecycle is embedded so Append is promoted.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the connection described by the postgres section and closes it on shutdown.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres section is required for the postgres analytics backend")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Each counter update runs in its own explicit transaction.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go samplePool(monitorCtx, params.Logger, sqlDB, poolSampleInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return errors.Wrap(sqlDB.Close(), "failed to close PostgreSQL")
		},
	})

	return db, nil
}

func samplePool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			logPoolWait(ctx, logger, prev, cur)
			prev = cur
		}
	}
}

// logPoolWait reports connections that had to wait for the pool between two samples.
func logPoolWait(ctx context.Context, logger *slog.Logger, prev, cur sql.DBStats) {
	waitDelta := cur.WaitCount - prev.WaitCount
	if waitDelta <= 0 {
		return
	}
	waitDurationDelta := cur.WaitDuration - prev.WaitDuration

	attrs := []slog.Attr{
		slog.Int64("waits", waitDelta),
		slog.Duration("waited", waitDurationDelta),
		slog.Duration("avg_wait", waitDurationDelta/time.Duration(waitDelta)),
		slog.Int("open", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
	}
	if waitDurationDelta >= poolWaitWarnThreshold {
		logger.LogAttrs(ctx, slog.LevelWarn, "Analytics connections waited on the pool", attrs...)
	} else {
		logger.LogAttrs(ctx, slog.LevelDebug, "Analytics pool wait", attrs...)
	}
}
