package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// Remember-me tokens let an admin skip the login form across browser
// sessions. Tokens live in Redis with a TTL; when Redis is absent the
// feature is disabled and every call errors out harmlessly.

const (
	rememberKeyPrefix = "admin_remember:"
	// RememberTTL is how long an admin remember-me token stays valid.
	RememberTTL = 30 * 24 * time.Hour
)

type rememberedAdmin struct {
	AdminID string `json:"adminId"`
	Email   string `json:"email"`
}

// NewRememberToken generates an opaque remember-me token.
func NewRememberToken() string {
	return uuid.NewString()
}

// StoreAdminToken saves the admin identity under the token.
func StoreAdminToken(ctx context.Context, rdb *redis.Client, token, adminID, email string) error {
	if rdb == nil {
		return fmt.Errorf("redis client not available")
	}
	payload, err := json.Marshal(rememberedAdmin{AdminID: adminID, Email: email})
	if err != nil {
		return err
	}
	return rdb.Set(ctx, rememberKeyPrefix+token, payload, RememberTTL).Err()
}

// LookupAdminToken resolves a token back to the admin identity.
func LookupAdminToken(ctx context.Context, rdb *redis.Client, token string) (adminID string, err error) {
	if rdb == nil {
		return "", fmt.Errorf("redis client not available")
	}
	raw, err := rdb.Get(ctx, rememberKeyPrefix+token).Result()
	if err != nil {
		if err == redis.Nil {
			return "", fmt.Errorf("remember-me token not found or expired")
		}
		return "", err
	}
	var remembered rememberedAdmin
	if err := json.Unmarshal([]byte(raw), &remembered); err != nil {
		return "", err
	}
	return remembered.AdminID, nil
}

// RemoveAdminToken deletes the token, e.g. on logout.
func RemoveAdminToken(ctx context.Context, rdb *redis.Client, token string) error {
	if rdb == nil {
		return fmt.Errorf("redis client not available")
	}
	return rdb.Del(ctx, rememberKeyPrefix+token).Err()
}
