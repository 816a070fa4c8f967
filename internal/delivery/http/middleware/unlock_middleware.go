package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	// HeaderUnlockToken carries the token returned by the unlock route.
	HeaderUnlockToken = "X-Unlock-Token"

	unlockTokenKey   = "unlockToken"
	unlockTokenQuery = "token"
)

// UnlockMiddleware extracts the unlock token of password-protected profiles.
// Validation happens in the access usecase, so a missing or bad token never
// fails the request here.
type UnlockMiddleware struct{}

// NewUnlockMiddleware is the constructor for UnlockMiddleware.
func NewUnlockMiddleware() *UnlockMiddleware {
	return &UnlockMiddleware{}
}

// Extract looks at the Authorization bearer, the X-Unlock-Token header and the
// token query parameter, in that order.
func (m *UnlockMiddleware) Extract(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := ""
		if auth := c.Request().Header.Get(echo.HeaderAuthorization); auth != "" {
			if bearer, ok := strings.CutPrefix(auth, "Bearer "); ok {
				token = strings.TrimSpace(bearer)
			}
		}
		if token == "" {
			token = strings.TrimSpace(c.Request().Header.Get(HeaderUnlockToken))
		}
		if token == "" {
			token = strings.TrimSpace(c.QueryParam(unlockTokenQuery))
		}

		if token != "" {
			c.Set(unlockTokenKey, token)
		}

		return next(c)
	}
}

// GetUnlockToken returns the token stored by Extract.
func GetUnlockToken(c echo.Context) string {
	token, _ := c.Get(unlockTokenKey).(string)

	return token
}
