package wallet

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/big"
	"testing"
	"time"

	"linkvault/config"
	"linkvault/internal/domain/entity"
	domainerrors "linkvault/internal/domain/errors"
	mockService "linkvault/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAddress = "0xabcdef0000000000000000000000000000000001"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func receive(t *testing.T, ch <-chan entity.WalletEvent) entity.WalletEvent {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for wallet event")

		return entity.WalletEvent{}
	}
}

func TestConnect(t *testing.T) {
	store := mockService.NewMockContentStore(t)
	store.EXPECT().Balance(context.Background(), testAddress).Return(big.NewInt(42), nil)

	p := newProvider(config.WalletConfig{Address: "0xABCDEF0000000000000000000000000000000001", ChainID: 1}, store, discardLogger())
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return fixed }

	session, err := p.Connect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testAddress, session.Address)
	assert.Equal(t, int64(1), session.ChainID)
	assert.Equal(t, int64(42), session.BalanceWei.Int64())
	assert.Equal(t, fixed, session.ConnectedAt)
}

func TestConnect_NoAddress(t *testing.T) {
	store := mockService.NewMockContentStore(t)
	p := newProvider(config.WalletConfig{}, store, discardLogger())

	_, err := p.Connect(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrWalletNotConnected)
}

func TestConnect_BalanceError(t *testing.T) {
	store := mockService.NewMockContentStore(t)
	store.EXPECT().Balance(context.Background(), testAddress).Return(nil, domainerrors.ErrNetworkError)

	p := newProvider(config.WalletConfig{Address: testAddress}, store, discardLogger())

	_, err := p.Connect(context.Background())
	assert.True(t, errors.Is(err, domainerrors.ErrNetworkError))
}

func TestEvents(t *testing.T) {
	store := mockService.NewMockContentStore(t)
	store.EXPECT().Balance(context.Background(), testAddress).Return(big.NewInt(0), nil)

	p := newProvider(config.WalletConfig{Address: testAddress, ChainID: 1}, store, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	events := p.Events(ctx)

	_, err := p.Connect(context.Background())
	require.NoError(t, err)
	ev := receive(t, events)
	assert.Equal(t, entity.WalletAccountsChanged, ev.Type)
	assert.Equal(t, testAddress, ev.Address)

	p.SwitchChain(137)
	ev = receive(t, events)
	assert.Equal(t, entity.WalletChainChanged, ev.Type)
	assert.Equal(t, int64(137), ev.ChainID)

	require.NoError(t, p.Disconnect(context.Background()))
	ev = receive(t, events)
	assert.Equal(t, entity.WalletAccountsChanged, ev.Type)
	assert.Empty(t, ev.Address)

	cancel()
	_, open := <-events
	assert.False(t, open)
}

func TestDisconnect_WhenNotConnected(t *testing.T) {
	p := newProvider(config.WalletConfig{Address: testAddress}, mockService.NewMockContentStore(t), discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := p.Events(ctx)

	require.NoError(t, p.Disconnect(context.Background()))
	select {
	case ev := <-events:
		t.Fatalf("unexpected event %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}
