package helper

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/mcpmarket/marketplace-manager/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	user := &model.User{ID: uuid.New(), Email: "someone@something.org"}

	signed, err := GenerateAccessToken(user, key, 900)
	require.NoError(t, err)

	token, err := jwt.Parse([]byte(signed), jwt.WithKey(jwa.RS256, &key.PublicKey), jwt.WithValidate(true))
	require.NoError(t, err)

	claim, ok := token.Get("user")
	require.True(t, ok)
	userClaim, ok := claim.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, user.ID.String(), userClaim["id"])
	assert.Equal(t, "someone@something.org", userClaim["email"])
	assert.NotContains(t, userClaim, "password")
}

func TestGenerateRefreshToken_RoundTrip(t *testing.T) {
	user := &model.User{ID: uuid.New()}

	refreshToken, err := GenerateRefreshToken(user, "secret", 86400)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshToken.SignedString)
	assert.NotEmpty(t, refreshToken.TokenID)

	claims, err := ValidateRefreshToken(refreshToken.SignedString, "secret")
	require.NoError(t, err)
	assert.Equal(t, refreshToken.TokenID, claims.ID)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestValidateRefreshToken_WrongSecret(t *testing.T) {
	user := &model.User{ID: uuid.New()}

	refreshToken, err := GenerateRefreshToken(user, "secret", 86400)
	require.NoError(t, err)

	_, err = ValidateRefreshToken(refreshToken.SignedString, "another-secret")
	assert.ErrorContains(t, err, "failed to parse refresh token")
}

func TestValidateRefreshToken_Expired(t *testing.T) {
	user := &model.User{ID: uuid.New()}

	refreshToken, err := GenerateRefreshToken(user, "secret", -10)
	require.NoError(t, err)

	_, err = ValidateRefreshToken(refreshToken.SignedString, "secret")
	assert.Error(t, err)
}
