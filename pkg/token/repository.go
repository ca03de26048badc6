package token

import (
	"fmt"
	"time"

	"github.com/go-redis/redis"
	"github.com/google/uuid"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRepository(client *redis.Client) *redisRepository {
	return &redisRepository{client}
}

type redisRepository struct {
	client *redis.Client
}

func (r redisRepository) SetRefreshToken(userID uuid.UUID, tokenID string, expiresIn time.Duration) error {
	return r.client.Set(key(userID, tokenID), "valid", expiresIn).Err()
}

func (r redisRepository) DeleteRefreshToken(userID uuid.UUID, previousTokenID string) error {
	return r.client.Del(key(userID, previousTokenID)).Err()
}

func (r redisRepository) DeleteRefreshTokens(userID uuid.UUID) error {
	keys, err := r.client.Keys(fmt.Sprintf("refreshToken:%s:*", userID)).Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(keys...).Err()
}

func key(userID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("refreshToken:%s:%s", userID, tokenID)
}
