package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hashed, err := hashPassword("some-password-of-sixteen")
	require.NoError(t, err)
	assert.NotContains(t, hashed, "some-password-of-sixteen")

	match, err := comparePasswords(hashed, "some-password-of-sixteen")
	require.NoError(t, err)
	assert.True(t, match)
}

func TestComparePasswords_Mismatch(t *testing.T) {
	hashed, err := hashPassword("some-password-of-sixteen")
	require.NoError(t, err)

	match, err := comparePasswords(hashed, "another-password-entirely")
	require.NoError(t, err)
	assert.False(t, match)
}

func TestComparePasswords_InvalidFormat(t *testing.T) {
	_, err := comparePasswords("not-a-stored-password", "whatever")
	assert.ErrorContains(t, err, "invalid format")
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	first, err := hashPassword("some-password-of-sixteen")
	require.NoError(t, err)
	second, err := hashPassword("some-password-of-sixteen")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
