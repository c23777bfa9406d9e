package auth

import (
	"context"
	"errors"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

var _ Checker = (*LoginChecker)(nil)
var _ Checker = (*LoginTestChecker)(nil)

// Checker resolves a session token to the email of the logged user.
type Checker interface {
	SessionEmail(ctx context.Context, token string) (string, error)
}

// LoginTestChecker keeps sessions in memory, token -> email.
type LoginTestChecker struct {
	LoggedSessions map[string]string
}

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		LoggedSessions: map[string]string{},
	}
}

func (c *LoginTestChecker) SessionEmail(_ context.Context, token string) (string, error) {
	email, ok := c.LoggedSessions[token]
	if !ok {
		return "", ErrSessionNotFound
	}
	return email, nil
}
