package dao

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedTokenPrefix = "revoked_token:"

// SessionDAO keeps the denylist of revoked token ids in Redis.
type SessionDAO struct {
	rdb *redis.Client
}

func NewSessionDAO(rdb *redis.Client) *SessionDAO {
	return &SessionDAO{
		rdb: rdb,
	}
}

// Revoke denies the token id until ttl elapses. Tokens already expired need
// no entry.
func (d *SessionDAO) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if jti == "" {
		return errors.New("empty token id")
	}
	if ttl <= 0 {
		return nil
	}

	return d.rdb.Set(ctx, revokedTokenPrefix+jti, "1", ttl).Err()
}

func (d *SessionDAO) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := d.rdb.Exists(ctx, revokedTokenPrefix+jti).Result()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}
