package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewHasherCost(t *testing.T) {
	assert.Equal(t, 4, NewHasher(4).cost)
	assert.Equal(t, DefaultCost, NewHasher(0).cost)
	assert.Equal(t, DefaultCost, NewHasher(99).cost)
}

func TestHashIsSaltedAndVerifiable(t *testing.T) {
	h := NewHasher(bcrypt.MinCost) // low cost for faster tests

	h1, err := h.Hash("secret")
	require.NoError(t, err)
	h2, err := h.Hash("secret")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "same password must hash differently")
	assert.NotContains(t, h1, "secret")
	assert.True(t, strings.HasPrefix(h1, "$2"), "unexpected hash format: %s", h1)

	assert.True(t, h.Verify("secret", h1))
	assert.True(t, h.Verify("secret", h2))
	assert.False(t, h.Verify("wrong", h1))
}

func TestVerifyMalformedHash(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	assert.False(t, h.Verify("secret", "not-a-hash"))
	assert.False(t, h.Verify("secret", ""))
}

func TestHashEmbedsCost(t *testing.T) {
	h := NewHasher(5)
	hash, err := h.Hash("secret")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}

func TestHashLongPassword(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	long := strings.Repeat("a", 73)

	hash, err := h.Hash(long)
	require.NoError(t, err)
	assert.True(t, h.Verify(long, hash))

	// same first 72 bytes, different tail
	assert.False(t, h.Verify(strings.Repeat("a", 72)+"b", hash))
	assert.False(t, h.Verify(strings.Repeat("a", 72), hash))

	exact := strings.Repeat("x", 72)
	hash, err = h.Hash(exact)
	require.NoError(t, err)
	assert.True(t, h.Verify(exact, hash))
}
