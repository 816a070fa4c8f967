package impl

import (
	"context"
	"log/slog"
	"math/big"
	"strings"
	"sync"

	"linkvault/internal/domain/entity"
	domainerrors "linkvault/internal/domain/errors"
	"linkvault/internal/domain/service"
	"linkvault/internal/usecase"

	"github.com/pkg/errors"
)

// tokenDecimals is the number of fractional digits of one whole token.
const tokenDecimals = 18

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	wallet service.WalletProvider
	store  service.ContentStore
	logger *slog.Logger

	mu      sync.RWMutex
	session *entity.WalletSession
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	wallet service.WalletProvider,
	store service.ContentStore,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		wallet: wallet,
		store:  store,
		logger: logger,
	}
}

// Connect opens the wallet session, replacing any previous one.
func (srv *sessionService) Connect(ctx context.Context) (*entity.WalletSession, error) {
	session, err := srv.wallet.Connect(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect wallet")
	}

	srv.mu.Lock()
	srv.session = session
	srv.mu.Unlock()

	srv.logger.Info("Wallet session opened",
		slog.String("address", session.Address),
		slog.Int64("chain_id", session.ChainID),
	)

	return copySession(session), nil
}

// Disconnect clears the session.
func (srv *sessionService) Disconnect(ctx context.Context) error {
	if err := srv.wallet.Disconnect(ctx); err != nil {
		return errors.Wrap(err, "failed to disconnect wallet")
	}

	srv.clear()

	return nil
}

func (srv *sessionService) clear() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.session != nil {
		srv.logger.Info("Wallet session closed", slog.String("address", srv.session.Address))
	}
	srv.session = nil
}

// Current returns a copy of the session.
func (srv *sessionService) Current() (*entity.WalletSession, bool) {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	if srv.session == nil {
		return nil, false
	}

	return copySession(srv.session), true
}

// SwitchChain updates the session right away; the provider event that follows is a no-op.
func (srv *sessionService) SwitchChain(_ context.Context, chainID int64) (*entity.WalletSession, error) {
	if _, ok := srv.Current(); !ok {
		return nil, domainerrors.ErrWalletNotConnected
	}

	srv.wallet.SwitchChain(chainID)
	srv.apply(entity.WalletEvent{Type: entity.WalletChainChanged, ChainID: chainID})

	session, ok := srv.Current()
	if !ok {
		return nil, domainerrors.ErrWalletNotConnected
	}

	return session, nil
}

// Watch applies provider events until ctx is done or the provider closes the stream.
func (srv *sessionService) Watch(ctx context.Context) {
	for event := range srv.wallet.Events(ctx) {
		srv.apply(event)
	}
}

func (srv *sessionService) apply(event entity.WalletEvent) {
	switch event.Type {
	case entity.WalletAccountsChanged:
		if event.Address == "" {
			srv.clear()

			return
		}

		srv.mu.Lock()
		if srv.session != nil && !strings.EqualFold(srv.session.Address, event.Address) {
			srv.logger.Info("Wallet account changed",
				slog.String("from", srv.session.Address),
				slog.String("to", event.Address),
			)
			srv.session.Address = event.Address
			srv.session.BalanceWei = nil
		}
		srv.mu.Unlock()

	case entity.WalletChainChanged:
		srv.mu.Lock()
		if srv.session != nil {
			srv.session.ChainID = event.ChainID
		}
		srv.mu.Unlock()
	}
}

// Balance queries the store balance of the session account.
func (srv *sessionService) Balance(ctx context.Context) (*usecase.BalanceInfo, error) {
	session, ok := srv.Current()
	if !ok {
		return nil, domainerrors.ErrWalletNotConnected
	}

	balance, err := srv.store.Balance(ctx, session.Address)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get balance")
	}

	srv.mu.Lock()
	if srv.session != nil && srv.session.Address == session.Address {
		srv.session.BalanceWei = new(big.Int).Set(balance)
	}
	srv.mu.Unlock()

	return newBalanceInfo(session.Address, balance), nil
}

// Fund converts amount to atomic units and credits it to the session account.
func (srv *sessionService) Fund(ctx context.Context, amount string) (*usecase.BalanceInfo, error) {
	session, ok := srv.Current()
	if !ok {
		return nil, domainerrors.ErrWalletNotConnected
	}

	atomic, err := ParseTokenAmount(amount)
	if err != nil {
		return nil, err
	}

	if err := srv.store.Fund(ctx, session.Address, atomic); err != nil {
		return nil, errors.Wrap(err, "failed to fund account")
	}

	srv.logger.Info("Account funded",
		slog.String("address", session.Address),
		slog.String("amount", amount),
		slog.String("atomic", atomic.String()),
	)

	return srv.Balance(ctx)
}

func copySession(s *entity.WalletSession) *entity.WalletSession {
	c := *s
	if s.BalanceWei != nil {
		c.BalanceWei = new(big.Int).Set(s.BalanceWei)
	}

	return &c
}

func newBalanceInfo(address string, atomic *big.Int) *usecase.BalanceInfo {
	return &usecase.BalanceInfo{
		Address: address,
		Atomic:  atomic.String(),
		Amount:  FormatTokenAmount(atomic),
	}
}

var atomicPerToken = new(big.Int).Exp(big.NewInt(10), big.NewInt(tokenDecimals), nil)

// ParseTokenAmount converts a positive decimal token amount to atomic units.
// Amounts finer than one atomic unit are rejected.
func ParseTokenAmount(amount string) (*big.Int, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return nil, domainerrors.ErrMissingRequiredField.WithDetails("amount")
	}

	r, ok := new(big.Rat).SetString(amount)
	if !ok || strings.ContainsAny(amount, "/eE") {
		return nil, domainerrors.ErrValidationFailed.WithDetails("amount must be a decimal number")
	}
	r.Mul(r, new(big.Rat).SetInt(atomicPerToken))
	if !r.IsInt() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("amount has more than 18 decimals")
	}
	atomic := new(big.Int).Set(r.Num())
	if atomic.Sign() <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("amount must be positive")
	}

	return atomic, nil
}

// FormatTokenAmount renders atomic units as a decimal token amount without trailing zeros.
func FormatTokenAmount(atomic *big.Int) string {
	if atomic == nil {
		return "0"
	}

	whole, frac := new(big.Int).QuoRem(new(big.Int).Abs(atomic), atomicPerToken, new(big.Int))
	sign := ""
	if atomic.Sign() < 0 {
		sign = "-"
	}
	if frac.Sign() == 0 {
		return sign + whole.String()
	}

	fracStr := strings.TrimRight(padLeft(frac.String(), tokenDecimals), "0")

	return sign + whole.String() + "." + fracStr
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}

	return strings.Repeat("0", width-len(s)) + s
}
