package usecase

import (
	"context"

	"linkvault/internal/domain/entity"
)

// SessionUsecase owns the single wallet session of the process.
type SessionUsecase interface {
	Connect(ctx context.Context) (*entity.WalletSession, error)
	Disconnect(ctx context.Context) error

	// Current returns the connected session, or false when no wallet is connected.
	Current() (*entity.WalletSession, bool)

	// SwitchChain moves the connected account to another chain.
	SwitchChain(ctx context.Context, chainID int64) (*entity.WalletSession, error)

	// Watch applies wallet provider events to the session until ctx is done.
	Watch(ctx context.Context)

	Balance(ctx context.Context) (*BalanceInfo, error)

	// Fund credits a decimal token amount such as "0.05" to the session account.
	Fund(ctx context.Context, amount string) (*BalanceInfo, error)
}

// BalanceInfo is a balance in atomic units and in whole tokens.
type BalanceInfo struct {
	Address string `json:"address"`
	Atomic  string `json:"atomic"`
	Amount  string `json:"amount"`
}
