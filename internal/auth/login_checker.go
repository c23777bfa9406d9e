package auth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

func (lc *LoginChecker) SessionEmail(ctx context.Context, token string) (string, error) {
	cmd := lc.redisClient.HGetAll(ctx, sessionKeyPrefix+token)
	if err := cmd.Err(); err != nil {
		return "", fmt.Errorf("get session: %w", err)
	}

	session := cmd.Val()
	email := session[sessionEmailField]
	if email == "" {
		return "", ErrSessionNotFound
	}

	createdAtUnix, err := strconv.ParseInt(session[sessionCreatedAtField], 10, 64)
	if err != nil {
		return "", fmt.Errorf("parse session created at: %w", err)
	}

	if time.Since(time.Unix(createdAtUnix, 0)) > lc.ttl {
		return "", ErrSessionExpired
	}

	return email, nil
}
