package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdesk/taskdesk/internal/auth"
)

const testBcryptCost = 4 // low cost for fast tests

func TestHash_VerifyRoundTrip(t *testing.T) {
	hasher := auth.NewHasher(testBcryptCost)

	passwords := []string{"", "simple", "complex_password_123!@#", "unicode_密码"}
	for _, password := range passwords {
		hash, err := hasher.Hash(password)
		require.NoError(t, err)
		assert.NotEmpty(t, hash)
		assert.NotEqual(t, password, hash)

		assert.True(t, hasher.Verify(password, hash), "password %q should verify against its own hash", password)
	}
}

func TestHash_FreshSaltPerCall(t *testing.T) {
	hasher := auth.NewHasher(testBcryptCost)

	hash1, err := hasher.Hash("test_password")
	require.NoError(t, err)
	hash2, err := hasher.Hash("test_password")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2, "hashing the same password twice should yield different strings")
	assert.True(t, hasher.Verify("test_password", hash1))
	assert.True(t, hasher.Verify("test_password", hash2))
}

func TestVerify_WrongPassword(t *testing.T) {
	hasher := auth.NewHasher(testBcryptCost)

	hash, err := hasher.Hash("test_password")
	require.NoError(t, err)

	assert.False(t, hasher.Verify("wrong_password", hash))
	assert.False(t, hasher.Verify("", hash))
}

func TestVerify_MalformedHash(t *testing.T) {
	hasher := auth.NewHasher(testBcryptCost)

	assert.False(t, hasher.Verify("anything", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Verify("anything", ""))
}
