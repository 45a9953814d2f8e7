package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHasher_HashAndCheck(t *testing.T) {
	hasher := NewPasswordHasher()

	hash, err := hasher.Hash("pw123")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "pw123", hash)

	assert.True(t, hasher.Check("pw123", hash))
	assert.False(t, hasher.Check("pw124", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestPasswordHasher_SaltedHashesDiffer(t *testing.T) {
	hasher := NewPasswordHasher()

	first, err := hasher.Hash("pw123")
	assert.NoError(t, err)
	second, err := hasher.Hash("pw123")
	assert.NoError(t, err)

	// per-call random salt
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("pw123", first))
	assert.True(t, hasher.Check("pw123", second))
}

func TestPasswordHasher_CheckGarbageHash(t *testing.T) {
	hasher := NewPasswordHasher()
	assert.False(t, hasher.Check("pw123", "not-a-bcrypt-hash"))
}
