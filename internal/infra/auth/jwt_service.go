package auth

import (
	"strings"
	"time"

	"linkvault/config"
	domainerrors "linkvault/internal/domain/errors"
	"linkvault/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const unlockSubject = "profile-unlock"

// jwtService issues HS256 tokens that unlock a single protected profile.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService builds the unlock token service from secretKey.unlock and unlock.ttl.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Unlock == "" {
		return nil, errors.New("unlock secret must be provided")
	}
	ttl := cfg.Unlock.TTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Unlock),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// IssueUnlockToken returns a token bound to address and its expiry.
func (s *jwtService) IssueUnlockToken(address string) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := service.UnlockClaims{
		Address: address,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   unlockSubject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign unlock token")
	}

	return signed, expiresAt, nil
}

// ValidateUnlockToken parses token and checks it was issued for address.
func (s *jwtService) ValidateUnlockToken(token, address string) (*service.UnlockClaims, error) {
	claims := &service.UnlockClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithTimeFunc(s.now),
		jwt.WithSubject(unlockSubject),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrForbidden, err.Error())
	}
	if !strings.EqualFold(claims.Address, address) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "token issued for another profile")
	}

	return claims, nil
}
