package service

import (
	"context"

	"linkvault/internal/domain/entity"
)

// WalletProvider connects the publishing account.
type WalletProvider interface {
	// Connect returns the connected account with its current balance.
	Connect(ctx context.Context) (*entity.WalletSession, error)

	// Disconnect releases the account.
	Disconnect(ctx context.Context) error

	// Events streams account and chain changes until ctx is done.
	Events(ctx context.Context) <-chan entity.WalletEvent

	// SwitchChain moves the account to chainID and emits a chain change event.
	SwitchChain(chainID int64)
}
