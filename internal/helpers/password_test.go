package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordProducesDistinctVerifiableDigests(t *testing.T) {
	first, err := HashPassword("s3cret-pw", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("s3cret-pw", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "salt must randomize digests across calls")
	assert.True(t, VerifyPassword(first, "s3cret-pw"))
	assert.True(t, VerifyPassword(second, "s3cret-pw"))
}

func TestVerifyPasswordRejectsWrongPassword(t *testing.T) {
	digest, err := HashPassword("correct-horse", bcrypt.MinCost)
	require.NoError(t, err)

	assert.False(t, VerifyPassword(digest, "wrong-horse"))
	assert.False(t, VerifyPassword(digest, ""))
}

func TestVerifyPasswordMalformedDigestIsFalseNotPanic(t *testing.T) {
	assert.False(t, VerifyPassword("", "anything"))
	assert.False(t, VerifyPassword("not-a-bcrypt-digest", "anything"))
	assert.False(t, VerifyPassword("$2a$garbage", "anything"))
}
