package auth

import (
	"testing"
	"time"

	"linkvault/config"
	domainerrors "linkvault/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAddress = "tx-abc123"

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()
	cfg := &config.Config{}
	cfg.SecretKey.Unlock = "test_unlock_secret_key_very_long_for_testing"
	cfg.Unlock.TTL = time.Minute

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := newTestJWTService(t)

	token, expiresAt, err := svc.IssueUnlockToken(testAddress)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Minute), expiresAt, 5*time.Second)

	claims, err := svc.ValidateUnlockToken(token, testAddress)
	require.NoError(t, err)
	assert.Equal(t, testAddress, claims.Address)
	assert.Equal(t, unlockSubject, claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_ValidateFailures(t *testing.T) {
	svc := newTestJWTService(t)
	token, _, err := svc.IssueUnlockToken(testAddress)
	require.NoError(t, err)

	other := newTestJWTService(t)
	other.secret = []byte("a_different_secret_of_reasonable_length")

	expired := newTestJWTService(t)
	expired.now = func() time.Time { return time.Now().Add(-time.Hour) }
	expiredToken, _, err := expired.IssueUnlockToken(testAddress)
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"address": testAddress,
		"sub":     unlockSubject,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		svc     *jwtService
		token   string
		address string
	}{
		{"garbage", svc, "clearly-not-a-jwt", testAddress},
		{"other address", svc, token, "tx-other"},
		{"wrong secret", other, token, testAddress},
		{"expired", svc, expiredToken, testAddress},
		{"unsigned", svc, noneToken, testAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := tt.svc.ValidateUnlockToken(tt.token, tt.address)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, domainerrors.ErrForbidden)
		})
	}
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "unlock secret must be provided")
}

func TestJWTService_DefaultTTL(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Unlock = "secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, svc.(*jwtService).ttl)
}
