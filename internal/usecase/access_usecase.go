package usecase

import (
	"context"
	"time"

	"linkvault/internal/domain/entity"
)

// AccessUsecase guards password-protected profiles.
type AccessUsecase interface {
	// Unlock checks password against the document at address and issues a token.
	Unlock(ctx context.Context, address, password string) (*UnlockResult, error)

	// CanView reports whether token grants access to doc stored at address.
	CanView(address string, doc *entity.Profile, token string) bool
}

// UnlockResult carries a token for one protected profile.
type UnlockResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
