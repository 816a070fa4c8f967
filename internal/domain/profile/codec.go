package profile

import (
	"encoding/json"

	"linkvault/internal/domain/entity"
	"linkvault/internal/errors"
)

// Encode returns the canonical JSON encoding of a profile document.
func Encode(p *entity.Profile) ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode profile")
	}

	return data, nil
}

// Decode parses a document produced by Encode.
func Decode(data []byte) (*entity.Profile, error) {
	var p entity.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(err, "failed to decode profile")
	}

	return &p, nil
}

// EncodeMapping returns the JSON encoding of a username mapping record.
func EncodeMapping(m *entity.UsernameMapping) ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode username mapping")
	}

	return data, nil
}

// DecodeMapping parses a username mapping record. A record without a content
// address is rejected.
func DecodeMapping(data []byte) (*entity.UsernameMapping, error) {
	var m entity.UsernameMapping
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "failed to decode username mapping")
	}
	if m.ContentAddress == "" {
		return nil, errors.New("username mapping has no content address")
	}

	return &m, nil
}
