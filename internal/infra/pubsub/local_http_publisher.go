package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"linkvault/internal/domain/service"

	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/profile-published-sub"

// localHTTPPublisher posts events to an HTTP endpoint in the Pub/Sub push format,
// so a subscriber can be developed without a Google project.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

// pushEnvelope is the body Google Pub/Sub sends to push subscriptions.
type pushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
		now:        time.Now,
	}
}

func (p *localHTTPPublisher) PublishProfilePublished(ctx context.Context, event *service.ProfilePublishedEvent) error {
	msg, err := newProfilePublishedMessage(event)
	if err != nil {
		return err
	}

	var envelope pushEnvelope
	envelope.Subscription = localSubscription
	envelope.Message.Data = base64.StdEncoding.EncodeToString(msg.data)
	envelope.Message.Attributes = msg.attributes
	envelope.Message.MessageID = msg.id
	envelope.Message.PublishTime = p.now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(envelope)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "push to %s", p.endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("push endpoint returned status %d", resp.StatusCode)
	}

	p.logger.Debug("[LocalPubSub] Event pushed",
		slog.String("event_id", msg.id),
		slog.String("content_address", event.ContentAddress),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	return nil
}
