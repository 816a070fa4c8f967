package pubsub

import (
	"encoding/json"

	"linkvault/internal/domain/service"

	"github.com/pkg/errors"
)

const profilePublishedType = "profile.published"

// message is the transport independent form of a published event.
type message struct {
	id         string
	data       []byte
	attributes map[string]string
	// successive versions of one username are delivered in order
	orderingKey string
}

func newProfilePublishedMessage(event *service.ProfilePublishedEvent) (*message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "encode profile published event")
	}

	return &message{
		id:          event.EventID,
		data:        data,
		attributes:  eventAttributes(event),
		orderingKey: event.Username,
	}, nil
}

// eventAttributes let subscribers filter without decoding the payload.
func eventAttributes(event *service.ProfilePublishedEvent) map[string]string {
	attributes := map[string]string{
		"event_type":      profilePublishedType,
		"event_id":        event.EventID,
		"content_address": event.ContentAddress,
		"username":        event.Username,
	}
	if event.PreviousAddress != "" {
		attributes["previous_address"] = event.PreviousAddress
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
