package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gympro/pkg"
)

const (
	DefaultTTL            = 24 * 7 * time.Hour
	TokenLength           = 35
	sessionKeyPrefix      = "gympro-session||"
	tokensSetKey          = "gympro-sessions"
	sessionEmailField     = "email"
	sessionCreatedAtField = "created_at"
)

type LoginSession struct {
	Token     string
	Email     string
	CreatedAt time.Time
}

// Service creates and removes redis backed login sessions.
// Credentials are checked by the users service before a session is created.
type Service struct {
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewAuthService(
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	return &Service{
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

func (as *Service) Login(ctx context.Context, email string, createdAt time.Time) (string, error) {
	token, err := as.RandStringFunc(TokenLength)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	sessionKey := sessionKeyPrefix + token
	cmdHSet := as.redisClient.HSet(ctx, sessionKey,
		sessionEmailField, email,
		sessionCreatedAtField, createdAt.Unix(),
	)
	if err := cmdHSet.Err(); err != nil {
		return "", err
	}

	// add token to list of sessions
	cmdSAdd := as.redisClient.SAdd(ctx, tokensSetKey, token)
	if err := cmdSAdd.Err(); err != nil {
		return "", err
	}

	return token, nil
}

// Logout returns false if the session did not exist.
func (as *Service) Logout(ctx context.Context, token string) (bool, error) {
	sessionKey := sessionKeyPrefix + token
	cmd := as.redisClient.HGet(ctx, sessionKey, sessionCreatedAtField)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	createdAtUnix, err := strconv.ParseInt(cmd.Val(), 10, 64)
	if err != nil {
		return false, err
	}

	cmdDel := as.redisClient.Del(ctx, sessionKey)
	if err := cmdDel.Err(); err != nil {
		return false, err
	}

	// remove token from the list of sessions
	cmdSRem := as.redisClient.SRem(ctx, tokensSetKey, token)
	if err := cmdSRem.Err(); err != nil {
		return false, err
	}

	return createdAtUnix > 0, nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old
func (as *Service) ScanAndClean(ctx context.Context) {
	cmd := as.redisClient.SMembers(ctx, tokensSetKey)
	if err := cmd.Err(); err != nil {
		log.Errorf("!!! auth service, scan and clean, get sessions: %s", err)
		return
	}

	sessionTokens := cmd.Val()
	if len(sessionTokens) == 0 {
		log.Debugln("=> auth service, scan and clean abort, no sessions")
		return
	}

	log.Infof("=> auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	var toRemove []string
	for _, token := range sessionTokens {
		cmd := as.redisClient.HGet(ctx, sessionKeyPrefix+token, sessionCreatedAtField)
		if err := cmd.Err(); err != nil {
			if errors.Is(err, redis.Nil) {
				// session hash gone, drop the dangling token
				toRemove = append(toRemove, token)
				continue
			}
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			continue
		}

		createdAtUnix, err := strconv.ParseInt(cmd.Val(), 10, 64)
		if err != nil {
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			continue
		}

		if time.Since(time.Unix(createdAtUnix, 0)) > as.ttl {
			log.Debugf("=>\twill clean the session with token: %s", token)
			toRemove = append(toRemove, token)
		}
	}

	for _, token := range toRemove {
		cmdDel := as.redisClient.Del(ctx, sessionKeyPrefix+token)
		if err := cmdDel.Err(); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
			continue
		}

		cmdSRem := as.redisClient.SRem(ctx, tokensSetKey, token)
		if err := cmdSRem.Err(); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
			continue
		}
	}
}
