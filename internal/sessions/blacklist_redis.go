package sessions

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const blacklistKeyPrefix = "revoked:access:"

// blacklistClient backs logout revocation of still-valid access tokens. Nil
// when Redis is not configured, in which case tokens simply age out.
var blacklistClient *redis.Client

// SetBlacklistClient configures the Redis client used for revocation. Pass
// nil to disable the blacklist.
func SetBlacklistClient(c *redis.Client) {
	blacklistClient = c
}

// BlacklistAccessToken marks an access token revoked until ttl elapses, which
// should cover the token's remaining lifetime. Without a client it is a no-op.
func BlacklistAccessToken(ctx context.Context, token string, ttl time.Duration) error {
	if blacklistClient == nil {
		return nil
	}
	return blacklistClient.Set(ctx, blacklistKeyPrefix+token, "1", ttl).Err()
}

// IsAccessTokenBlacklisted reports whether the token was revoked. Without a
// client it reports false.
func IsAccessTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	if blacklistClient == nil {
		return false, nil
	}
	exists, err := blacklistClient.Exists(ctx, blacklistKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}
