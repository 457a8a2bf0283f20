package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	h := HashPassword("password")

	// SHA-256 hex digest, stable across runs.
	assert.Len(t, h, 64)
	assert.Equal(t, h, HashPassword("password"))
	assert.NotEqual(t, h, HashPassword("Password"))
}

func TestVerify(t *testing.T) {
	stored := HashPassword("s3cret")

	assert.True(t, Verify("s3cret", stored))
	assert.False(t, Verify("wrong", stored))
	assert.False(t, Verify("s3cret", "not-a-digest"))
}
