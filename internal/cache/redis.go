package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"rosegold_back_end/internal/identity/local"
)

// RedisTokenStore keeps issued session ids under session:<user>:<token> and
// revoked ones under blacklist:<token>, both expiring with the token.
type RedisTokenStore struct {
	client *redis.Client
}

var _ local.TokenStore = (*RedisTokenStore)(nil)

func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

func sessionKey(userID, tokenID string) string {
	return fmt.Sprintf("session:%s:%s", userID, tokenID)
}

func blacklistKey(tokenID string) string {
	return fmt.Sprintf("blacklist:%s", tokenID)
}

func (s *RedisTokenStore) Store(ctx context.Context, userID, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, sessionKey(userID, tokenID), time.Now().Unix(), ttl).Err()
}

func (s *RedisTokenStore) Revoke(ctx context.Context, userID, tokenID string, ttl time.Duration) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, sessionKey(userID, tokenID))
	pipe.Set(ctx, blacklistKey(tokenID), "revoked", ttl)
	_, err := pipe.Exec(ctx)
	return err
}

// IsRevoked treats a Redis failure as not revoked; the token signature and
// expiry are still checked by the caller.
func (s *RedisTokenStore) IsRevoked(ctx context.Context, tokenID string) bool {
	exists, err := s.client.Exists(ctx, blacklistKey(tokenID)).Result()
	if err != nil {
		log.Printf("⚠️ Blacklist check failed: %v", err)
		return false
	}
	return exists > 0
}

// ActiveSessions lists the token ids still registered for a user.
func (s *RedisTokenStore) ActiveSessions(ctx context.Context, userID string) ([]string, error) {
	prefix := sessionKey(userID, "")
	var ids []string
	iter := s.client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		ids = append(ids, iter.Val()[len(prefix):])
	}
	return ids, iter.Err()
}
