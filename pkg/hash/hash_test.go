package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHash_VerifiesOriginalPassword(t *testing.T) {
	digest, err := Hash("pw123456")
	require.NoError(t, err)

	assert.NotEqual(t, "pw123456", digest)
	assert.True(t, Verify("pw123456", digest))
	assert.False(t, Verify("pw1234567", digest))
}

func TestHash_IsSalted(t *testing.T) {
	a, err := Hash("same-password")
	require.NoError(t, err)
	b, err := Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, Verify("same-password", a))
	assert.True(t, Verify("same-password", b))
}

func TestHash_UsesFixedCost(t *testing.T) {
	digest, err := Hash("secret")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(digest))
	require.NoError(t, err)
	assert.Equal(t, Cost, cost)
}

func TestVerify_RejectsGarbageDigest(t *testing.T) {
	assert.False(t, Verify("secret", "not-a-bcrypt-digest"))
	assert.False(t, Verify("secret", ""))
}

func TestHash_LongestAcceptedPassword(t *testing.T) {
	longest := make([]byte, MaxLength)
	for i := range longest {
		longest[i] = 'a'
	}

	digest, err := Hash(string(longest))
	require.NoError(t, err)
	assert.True(t, Verify(string(longest), digest))

	_, err = Hash(string(longest) + "a")
	assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
}
