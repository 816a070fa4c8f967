package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UnlockClaims grant read access to one password-protected profile.
type UnlockClaims struct {
	Address string `json:"address"`
	jwt.RegisteredClaims
}

// TokenService issues and checks unlock tokens.
type TokenService interface {
	// IssueUnlockToken returns a signed token for the document at address.
	IssueUnlockToken(address string) (string, time.Time, error)

	// ValidateUnlockToken parses token and checks that it was issued for address.
	ValidateUnlockToken(token, address string) (*UnlockClaims, error)
}
