package service

import (
	"context"
)

// ProfilePublishedEvent is emitted after a profile version is stored.
type ProfilePublishedEvent struct {
	RequestID       string `json:"request_id,omitempty"` // For distributed tracing
	EventID         string `json:"event_id"`
	ContentAddress  string `json:"content_address"`
	PreviousAddress string `json:"previous_address,omitempty"`
	Username        string `json:"username"`
	Creator         string `json:"creator"`
	RetrievalURL    string `json:"retrieval_url"`
	MappingStored   bool   `json:"mapping_stored"`
	PublishedAt     int64  `json:"published_at"` // epoch millis
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishProfilePublished publishes a profile-published event
	PublishProfilePublished(ctx context.Context, event *ProfilePublishedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
