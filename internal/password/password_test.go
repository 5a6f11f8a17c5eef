package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	hasher := &BcryptHasher{Cost: bcrypt.MinCost}

	hash, err := hasher.Hash("hunter2")
	assert.NoError(t, err, "hashing should not error")
	assert.NotEqual(t, "hunter2", hash, "hash must not be the plain text")

	assert.True(t, hasher.Verify(hash, "hunter2"), "correct password should verify")
	assert.False(t, hasher.Verify(hash, "hunter3"), "wrong password should not verify")
}

func TestHashesDiffer(t *testing.T) {
	hasher := &BcryptHasher{Cost: bcrypt.MinCost}

	first, err := hasher.Hash("same-password")
	assert.NoError(t, err)
	second, err := hasher.Hash("same-password")
	assert.NoError(t, err)

	// bcrypt salts every hash
	assert.NotEqual(t, first, second, "two hashes of the same password should differ")
}

func TestNewBcryptHasherDefaultCost(t *testing.T) {
	hasher := NewBcryptHasher()
	assert.Equal(t, bcrypt.DefaultCost, hasher.Cost)
}
