// Package auth provides the password gate for protected profiles.
package auth

import (
	"linkvault/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher implements service.PasswordHasher with bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using bcrypt.DefaultCost.
func NewBcryptHasher() service.PasswordHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

// NewBcryptHasherWithCost returns a hasher with an explicit cost factor.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IsHash reports whether value parses as a bcrypt hash.
func (h *bcryptHasher) IsHash(value string) bool {
	_, err := bcrypt.Cost([]byte(value))

	return err == nil
}
