// Package wallet provides the publishing account. The account is configured
// out of band (wallet.address); signing happens on the storage node.
package wallet

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"linkvault/config"
	"linkvault/internal/domain/entity"
	domainerrors "linkvault/internal/domain/errors"
	"linkvault/internal/domain/service"

	"github.com/pkg/errors"
)

const eventBuffer = 8

type provider struct {
	address string
	chainID int64
	store   service.ContentStore
	logger  *slog.Logger
	now     func() time.Time

	mu          sync.Mutex
	connected   bool
	subscribers map[chan entity.WalletEvent]struct{}
}

// NewProvider returns a WalletProvider for the configured account.
func NewProvider(cfg *config.Config, store service.ContentStore, logger *slog.Logger) service.WalletProvider {
	return newProvider(cfg.Wallet, store, logger)
}

func newProvider(cfg config.WalletConfig, store service.ContentStore, logger *slog.Logger) *provider {
	return &provider{
		address:     strings.ToLower(strings.TrimSpace(cfg.Address)),
		chainID:     cfg.ChainID,
		store:       store,
		logger:      logger,
		now:         time.Now,
		subscribers: make(map[chan entity.WalletEvent]struct{}),
	}
}

// Connect opens the session and reads the account balance from the store.
func (p *provider) Connect(ctx context.Context) (*entity.WalletSession, error) {
	if p.address == "" {
		return nil, errors.Wrap(domainerrors.ErrWalletNotConnected, "no wallet address configured")
	}

	balance, err := p.store.Balance(ctx, p.address)
	if err != nil {
		return nil, errors.Wrap(err, "read wallet balance")
	}

	p.mu.Lock()
	wasConnected := p.connected
	p.connected = true
	p.mu.Unlock()

	if !wasConnected {
		p.broadcast(entity.WalletEvent{Type: entity.WalletAccountsChanged, Address: p.address, ChainID: p.chainID})
	}

	p.logger.Info("Wallet connected",
		slog.String("address", p.address),
		slog.Int64("chain_id", p.chainID),
	)

	return &entity.WalletSession{
		Address:     p.address,
		ChainID:     p.chainID,
		BalanceWei:  balance,
		ConnectedAt: p.now().UTC(),
	}, nil
}

// Disconnect closes the session and notifies subscribers with an empty account.
func (p *provider) Disconnect(_ context.Context) error {
	p.mu.Lock()
	wasConnected := p.connected
	p.connected = false
	p.mu.Unlock()

	if wasConnected {
		p.broadcast(entity.WalletEvent{Type: entity.WalletAccountsChanged})
		p.logger.Info("Wallet disconnected", slog.String("address", p.address))
	}

	return nil
}

// Events returns a channel of account changes which is closed when ctx is done.
func (p *provider) Events(ctx context.Context) <-chan entity.WalletEvent {
	ch := make(chan entity.WalletEvent, eventBuffer)

	p.mu.Lock()
	p.subscribers[ch] = struct{}{}
	p.mu.Unlock()

	go func() {
		<-ctx.Done()
		p.mu.Lock()
		delete(p.subscribers, ch)
		close(ch)
		p.mu.Unlock()
	}()

	return ch
}

// SwitchChain records a chain change and notifies subscribers.
func (p *provider) SwitchChain(chainID int64) {
	p.mu.Lock()
	p.chainID = chainID
	p.mu.Unlock()

	p.broadcast(entity.WalletEvent{Type: entity.WalletChainChanged, Address: p.address, ChainID: chainID})
}

// broadcast never blocks; a subscriber with a full buffer misses the event.
func (p *provider) broadcast(event entity.WalletEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for ch := range p.subscribers {
		select {
		case ch <- event:
		default:
			p.logger.Warn("Dropping wallet event for slow subscriber", slog.String("type", string(event.Type)))
		}
	}
}
