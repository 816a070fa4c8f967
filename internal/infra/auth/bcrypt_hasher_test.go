package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("open sesame")
	require.NoError(t, err)
	assert.NotEqual(t, "open sesame", hash)

	assert.True(t, hasher.Check("open sesame", hash))
	assert.False(t, hasher.Check("Open Sesame", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("open sesame", "invalid_hash"))
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	hasher := NewBcryptHasherWithCost(6)

	hash, err := hasher.Hash("secret")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	hasher := NewBcryptHasherWithCost(99).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}

func TestBcryptHasher_IsHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("secret")
	require.NoError(t, err)

	assert.True(t, hasher.IsHash(hash))
	assert.False(t, hasher.IsHash("secret"))
	assert.False(t, hasher.IsHash(""))
}
