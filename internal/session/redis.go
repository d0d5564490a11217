package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces session keys; the auth layer writes them with a TTL,
// compass only ever reads.
const keyPrefix = "compass:session:"

// RedisStore reads sessions written by the external auth layer.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Lookup returns the account id for token. A missing key is not an error:
// the session simply does not exist (anymore).
func (s *RedisStore) Lookup(ctx context.Context, token string) (string, error) {
	accountID, err := s.client.Get(ctx, keyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to look up session: %w", err)
	}
	return accountID, nil
}
