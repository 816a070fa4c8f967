package main

import (
	"context"
	"log/slog"
	"os"

	"linkvault/config"
	"linkvault/internal/delivery"
	"linkvault/internal/delivery/http"
	httpmiddleware "linkvault/internal/delivery/http/middleware"
	"linkvault/internal/delivery/http/router/handler"
	"linkvault/internal/delivery/middleware"
	"linkvault/internal/infra/auth"
	"linkvault/internal/infra/cache"
	"linkvault/internal/infra/contentstore"
	logs "linkvault/internal/infra/log"
	"linkvault/internal/infra/persistence"
	"linkvault/internal/infra/pubsub"
	"linkvault/internal/infra/qrcode"
	"linkvault/internal/infra/visitor"
	"linkvault/internal/infra/wallet"
	"linkvault/internal/usecase"
	"linkvault/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			watchWallet,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		contentstore.New,
		cache.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.NewAnalyticsRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.New,
			visitor.New,
			wallet.NewProvider,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewResolveService,
			impl.NewPublishService,
			impl.NewAccessService,
			impl.NewAnalyticsService,
			impl.NewDiscoverService,
			impl.NewTemplateService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmiddleware.NewErrorMiddleware,
			httpmiddleware.NewUnlockMiddleware,
			middleware.NewIPRateLimiter,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewWalletHandler,
			handler.NewProfileHandler,
			handler.NewExploreHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// watchWallet keeps the session in step with account and chain changes until shutdown.
func watchWallet(ctx context.Context, lc fx.Lifecycle, sessions usecase.SessionUsecase) {
	watchCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				sessions.Watch(watchCtx)
			}()

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
