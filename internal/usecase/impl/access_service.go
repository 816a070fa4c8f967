package impl

import (
	"context"
	"log/slog"

	"linkvault/internal/domain/entity"
	domainerrors "linkvault/internal/domain/errors"
	"linkvault/internal/domain/service"
	"linkvault/internal/usecase"

	"github.com/pkg/errors"
)

// accessService implements the AccessUsecase interface.
type accessService struct {
	resolver usecase.ResolveUsecase
	hasher   service.PasswordHasher
	tokens   service.TokenService
	logger   *slog.Logger
}

// NewAccessService is the constructor for accessService.
func NewAccessService(
	resolver usecase.ResolveUsecase,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	logger *slog.Logger,
) usecase.AccessUsecase {
	return &accessService{
		resolver: resolver,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Unlock issues a token when password matches the hash stored in the document.
func (srv *accessService) Unlock(ctx context.Context, address, password string) (*usecase.UnlockResult, error) {
	if password == "" {
		return nil, domainerrors.ErrPasswordRequired
	}

	doc, err := srv.resolver.FetchByAddress(ctx, address)
	if err != nil {
		return nil, err
	}
	if !doc.Settings.PasswordProtected {
		return nil, domainerrors.ErrValidationFailed.WithDetails("profile is not password protected")
	}
	if !srv.hasher.Check(password, doc.Settings.Password) {
		srv.logger.Info("Profile unlock rejected", slog.String("address", address))

		return nil, domainerrors.ErrInvalidPassword
	}

	token, expiresAt, err := srv.tokens.IssueUnlockToken(address)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	srv.logger.Info("Profile unlocked", slog.String("address", address))

	return &usecase.UnlockResult{Token: token, ExpiresAt: expiresAt}, nil
}

// CanView reports whether doc may be shown; unprotected documents always may.
func (srv *accessService) CanView(address string, doc *entity.Profile, token string) bool {
	if !doc.Settings.PasswordProtected {
		return true
	}
	if token == "" {
		return false
	}
	_, err := srv.tokens.ValidateUnlockToken(token, address)

	return err == nil
}
