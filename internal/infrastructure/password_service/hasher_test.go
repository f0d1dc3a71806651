package passwordservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher(t *testing.T) {
	h := NewHasherWithCost(bcrypt.MinCost)

	hash, err := h.HashPassword("s3cret-Pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-Pass", hash)

	assert.True(t, h.CheckPasswordHash("s3cret-Pass", hash))
	assert.False(t, h.CheckPasswordHash("wrong", hash))
}
