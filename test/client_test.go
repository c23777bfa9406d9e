//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"

	"github.com/2beens/gympro/internal/middleware"
	"github.com/2beens/gympro/internal/users"
)

type testUser struct {
	Name     string
	Email    string
	Password string
	Token    string
}

func newTestUser() *testUser {
	return &testUser{
		Name:     gofakeit.Name(),
		Email:    strings.ToLower(gofakeit.Email()),
		Password: gofakeit.Password(true, true, true, false, false, 14),
	}
}

// doRequest sends v as json body (if not nil) and returns the status code and the response body.
func (s *IntegrationTestSuite) doRequest(
	ctx context.Context,
	t *testing.T,
	method, path, token string,
	v any,
) (int, []byte) {
	t.Helper()

	var body io.Reader
	if v != nil {
		reqJson, err := json.Marshal(v)
		require.NoError(t, err)
		body = bytes.NewBuffer(reqJson)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, body)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(middleware.AuthTokenHeader, token)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, respBytes
}

func (s *IntegrationTestSuite) registerAndLogin(ctx context.Context, t *testing.T) *testUser {
	t.Helper()

	user := newTestUser()
	status, _ := s.doRequest(ctx, t, "POST", "/a/register", "", users.RegisterRequest{
		Name:     user.Name,
		Email:    user.Email,
		Password: user.Password,
	})
	require.Equal(t, http.StatusCreated, status)

	status, respBytes := s.doRequest(ctx, t, "POST", "/a/login", "", users.LoginRequest{
		Email:    user.Email,
		Password: user.Password,
	})
	require.Equal(t, http.StatusOK, status)

	var loginResp users.LoginResponse
	require.NoError(t, json.Unmarshal(respBytes, &loginResp))
	require.NotEmpty(t, loginResp.Token)
	require.Equal(t, user.Name, loginResp.Name)
	user.Token = loginResp.Token

	return user
}
