// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "linkvault/internal/delivery/context"
	"linkvault/internal/domain/entity"
	domainerrors "linkvault/internal/domain/errors"
	"linkvault/internal/domain/profile"
	"linkvault/internal/domain/service"

	"github.com/pkg/errors"
)

// documentLoader fetches immutable records through the optional cache.
type documentLoader struct {
	store  service.ContentStore
	cache  service.DocumentCache
	logger *slog.Logger
}

func (l *documentLoader) fetch(ctx context.Context, address string) ([]byte, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, l.logger)

	if data, ok, err := l.cache.Get(ctx, address); err != nil {
		logger.Warn("Document cache read failed", slog.String("address", address), slog.Any("error", err))
	} else if ok {
		return data, nil
	}

	data, err := l.store.Fetch(ctx, address)
	if err != nil {
		return nil, err
	}

	if err := l.cache.Set(ctx, address, data); err != nil {
		logger.Warn("Document cache write failed", slog.String("address", address), slog.Any("error", err))
	}

	return data, nil
}

// loadProfile fetches and decodes the document at address. Absent or
// undecodable records yield ErrProfileNotFound.
func (l *documentLoader) loadProfile(ctx context.Context, address string) (*entity.Profile, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, domainerrors.ErrMissingRequiredField.WithDetails("address")
	}

	data, err := l.fetch(ctx, address)
	if err != nil {
		if errors.Is(err, service.ErrRecordNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrProfileNotFound, "no record at %s", address)
		}

		return nil, errors.Wrapf(err, "failed to fetch profile %s", address)
	}

	p, err := profile.Decode(data)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrProfileNotFound, "record %s is not a profile: %v", address, err)
	}

	return p, nil
}
