package pubsub

import (
	"context"
	"log/slog"

	"linkvault/config"
	"linkvault/internal/domain/constants"
	"linkvault/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops events when no provider is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishProfilePublished(_ context.Context, event *service.ProfilePublishedEvent) error {
	p.logger.Debug("[NoopPubSub] Skipping event", slog.String("content_address", event.ContentAddress))

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher selects the publisher named by pubsub.provider and closes it on shutdown.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("PubSub not configured, profile events will not be published")

		return &noopPublisher{logger: params.Logger}, nil
	}

	if err := validatePubSubConfig(cfg); err != nil {
		return nil, err
	}

	publisher, err := openPublisher(params.Ctx, cfg, params.Logger)
	if err != nil {
		return nil, err
	}
	params.Logger.Info("EventPublisher ready", slog.String("provider", cfg.Provider))

	params.Lc.Append(fx.StopHook(func() error {
		return publisher.Close()
	}))

	return publisher, nil
}

func validatePubSubConfig(cfg *config.PubSubConfig) error {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return errors.New("local endpoint is required for local provider")
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return errors.New("topic ID is required for google provider")
		}
	default:
		return errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	return nil
}

func openPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg.Provider == constants.PubSubProviderLocal {
		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
	}

	return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
}
