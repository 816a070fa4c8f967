package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "linkvault/internal/domain/errors"
	"linkvault/internal/domain/service"
	mockService "linkvault/internal/mocks/service"
	mockUsecase "linkvault/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accessFixture struct {
	resolver *mockUsecase.MockResolveUsecase
	hasher   *mockService.MockPasswordHasher
	tokens   *mockService.MockTokenService
	srv      *accessService
}

func createTestAccessService(t *testing.T) *accessFixture {
	f := &accessFixture{
		resolver: mockUsecase.NewMockResolveUsecase(t),
		hasher:   mockService.NewMockPasswordHasher(t),
		tokens:   mockService.NewMockTokenService(t),
	}
	f.srv = NewAccessService(f.resolver, f.hasher, f.tokens, testLogger()).(*accessService)

	return f
}

func TestAccessService_Unlock(t *testing.T) {
	ctx := context.Background()
	expires := time.Date(2024, 1, 1, 0, 30, 0, 0, time.UTC)

	protected := testProfile()
	protected.Settings.PasswordProtected = true
	protected.Settings.Password = "$2a$hash"

	tests := []struct {
		name      string
		password  string
		setup     func(f *accessFixture)
		wantToken string
		wantErr   error
	}{
		{
			name:     "correct password",
			password: "secret",
			setup: func(f *accessFixture) {
				f.resolver.EXPECT().FetchByAddress(ctx, testAddress).Return(protected, nil)
				f.hasher.EXPECT().Check("secret", "$2a$hash").Return(true)
				f.tokens.EXPECT().IssueUnlockToken(testAddress).Return("token", expires, nil)
			},
			wantToken: "token",
		},
		{
			name:     "wrong password",
			password: "guess",
			setup: func(f *accessFixture) {
				f.resolver.EXPECT().FetchByAddress(ctx, testAddress).Return(protected, nil)
				f.hasher.EXPECT().Check("guess", "$2a$hash").Return(false)
			},
			wantErr: domainerrors.ErrInvalidPassword,
		},
		{
			name:    "empty password",
			setup:   func(*accessFixture) {},
			wantErr: domainerrors.ErrPasswordRequired,
		},
		{
			name:     "unprotected profile",
			password: "secret",
			setup: func(f *accessFixture) {
				f.resolver.EXPECT().FetchByAddress(ctx, testAddress).Return(testProfile(), nil)
			},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:     "missing profile",
			password: "secret",
			setup: func(f *accessFixture) {
				f.resolver.EXPECT().FetchByAddress(ctx, testAddress).Return(nil, domainerrors.ErrProfileNotFound)
			},
			wantErr: domainerrors.ErrProfileNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestAccessService(t)
			tt.setup(f)

			result, err := f.srv.Unlock(ctx, testAddress, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, result)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, result.Token)
			assert.Equal(t, expires, result.ExpiresAt)
		})
	}
}

func TestAccessService_CanView(t *testing.T) {
	protected := testProfile()
	protected.Settings.PasswordProtected = true

	t.Run("unprotected", func(t *testing.T) {
		f := createTestAccessService(t)
		assert.True(t, f.srv.CanView(testAddress, testProfile(), ""))
	})

	t.Run("protected without token", func(t *testing.T) {
		f := createTestAccessService(t)
		assert.False(t, f.srv.CanView(testAddress, protected, ""))
	})

	t.Run("protected with valid token", func(t *testing.T) {
		f := createTestAccessService(t)
		f.tokens.EXPECT().ValidateUnlockToken("good", testAddress).Return(&service.UnlockClaims{Address: testAddress}, nil)
		assert.True(t, f.srv.CanView(testAddress, protected, "good"))
	})

	t.Run("protected with invalid token", func(t *testing.T) {
		f := createTestAccessService(t)
		f.tokens.EXPECT().ValidateUnlockToken("bad", testAddress).Return(nil, domainerrors.ErrForbidden)
		assert.False(t, f.srv.CanView(testAddress, protected, "bad"))
	})
}
