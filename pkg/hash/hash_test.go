package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyCode(t *testing.T) {
	digest, err := HashCode("0a1b2c3d")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.NotEqual(t, "0a1b2c3d", digest)

	assert.True(t, VerifyCode("0a1b2c3d", digest))
	assert.False(t, VerifyCode("wrong-code", digest))
}

func TestVerifyCodeMalformedDigest(t *testing.T) {
	// A digest that is not bcrypt output must not verify.
	assert.False(t, VerifyCode("0a1b2c3d", "not-a-bcrypt-digest"))
}

func TestHashCodeUniqueSalts(t *testing.T) {
	first, err := HashCode("same-code")
	require.NoError(t, err)
	second, err := HashCode("same-code")
	require.NoError(t, err)

	// bcrypt salts per call, so digests differ but both verify.
	assert.NotEqual(t, first, second)
	assert.True(t, VerifyCode("same-code", first))
	assert.True(t, VerifyCode("same-code", second))
}
