package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"linkvault/config"
	"linkvault/internal/domain/entity"
	"linkvault/internal/domain/profile"
	mockService "linkvault/internal/mocks/service"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testWallet  = "0x1111111111111111111111111111111111111111"
	testAddress = "tx-profile-1"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App = config.AppConfig{Name: "IrysLinkTree", Version: "1.0.0", ProfileType: "linktree"}

	return cfg
}

func testApp() profile.AppInfo {
	return appInfo(testConfig())
}

func testProfile() *entity.Profile {
	p := entity.NewProfile(testWallet, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	p.Name = "Alice"
	p.Username = "alice"
	p.Bio = "hello"
	p.Links = []entity.Link{
		{ID: "l1", Title: "Blog", URL: "https://alice.dev", IsActive: true, Order: 1},
		{ID: "l2", Title: "Shop", URL: "shop.example.com", IsActive: true, Order: 2},
	}

	return p
}

func encodeProfile(t *testing.T, p *entity.Profile) []byte {
	t.Helper()
	data, err := profile.Encode(p)
	require.NoError(t, err)

	return data
}

// missCache returns a cache that never hits and accepts every write.
func missCache(t *testing.T) *mockService.MockDocumentCache {
	cache := mockService.NewMockDocumentCache(t)
	cache.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, false, nil).Maybe()
	cache.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	return cache
}
