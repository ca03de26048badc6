package helper

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/mcpmarket/marketplace-manager/pkg/model"
)

func GenerateAccessToken(user *model.User, key *rsa.PrivateKey, expirationInSeconds int) (string, error) {
	unixTime := time.Now().Unix()
	tokenExpiration := unixTime + int64(expirationInSeconds)

	token := jwt.New()

	err := token.Set(jwt.IssuedAtKey, unixTime)
	if err != nil {
		return "", err
	}

	err = token.Set(jwt.ExpirationKey, tokenExpiration)
	if err != nil {
		return "", err
	}

	err = token.Set("user", user)
	if err != nil {
		return "", err
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.RS256, key))
	if err != nil {
		return "", err
	}

	return string(signed), nil
}

type RefreshToken struct {
	SignedString string
	TokenID      string
	ExpiresIn    time.Duration
}

func GenerateRefreshToken(user *model.User, secretKey string, expirationInSeconds int) (*RefreshToken, error) {
	currentTime := time.Now()
	tokenExpiration := currentTime.Add(time.Duration(expirationInSeconds) * time.Second)

	token := jwt.New()

	err := token.Set("userId", user.ID.String())
	if err != nil {
		return nil, err
	}

	tokenID := uuid.NewString()
	err = token.Set(jwt.JwtIDKey, tokenID)
	if err != nil {
		return nil, err
	}

	err = token.Set(jwt.ExpirationKey, tokenExpiration.Unix())
	if err != nil {
		return nil, err
	}

	err = token.Set(jwt.IssuedAtKey, currentTime.Unix())
	if err != nil {
		return nil, err
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, []byte(secretKey)))
	if err != nil {
		return nil, err
	}

	return &RefreshToken{
		SignedString: string(signed),
		TokenID:      tokenID,
		ExpiresIn:    tokenExpiration.Sub(currentTime),
	}, nil
}

type RefreshTokenClaims struct {
	ID     string
	UserID uuid.UUID
}

func ValidateRefreshToken(tokenString string, secretKey string) (*RefreshTokenClaims, error) {
	token, err := jwt.Parse([]byte(tokenString), jwt.WithKey(jwa.HS256, []byte(secretKey)), jwt.WithValidate(true))
	if err != nil {
		return nil, fmt.Errorf("failed to parse refresh token: %v", err)
	}

	userIDData, ok := token.Get("userId")
	if !ok {
		return nil, errors.New("userId not found in claims")
	}

	userIDString, ok := userIDData.(string)
	if !ok {
		return nil, errors.New("failed to parse userId claim")
	}

	userID, err := uuid.Parse(userIDString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse userId claim: %v", err)
	}

	return &RefreshTokenClaims{
		ID:     token.JwtID(),
		UserID: userID,
	}, nil
}
