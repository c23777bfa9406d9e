// Package exercisedb looks up exercise demo animations in a third-party exercise database.
package exercisedb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gympro/internal/apperr"
	"github.com/2beens/gympro/internal/telemetry/tracing"
)

const (
	demoCacheKeyPrefix = "exercise-demo::"
	demoCacheTTL       = 24 * time.Hour
	maxResponseBytes   = 4 << 20
)

var (
	ErrDemoNotFound  = fmt.Errorf("exercise demo: %w", apperr.ErrRecordNotFound)
	ErrNotConfigured = errors.New("exercise database api key not set")
)

type exerciseResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	GifURL string `json:"gifUrl"`
}

type Client struct {
	baseURL     string
	host        string
	apiKey      string
	httpClient  *http.Client
	redisClient *redis.Client
}

func NewClient(baseURL, host, apiKey string, httpClient *http.Client, redisClient *redis.Client) *Client {
	return &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		host:        host,
		apiKey:      apiKey,
		httpClient:  httpClient,
		redisClient: redisClient,
	}
}

// DemoURL returns the animation url of the first exercise matching name.
func (c *Client) DemoURL(ctx context.Context, name string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "exercisedb.demourl")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	name = strings.ToLower(strings.TrimSpace(name))
	span.SetAttributes(attribute.String("exercise.name", name))
	if name == "" {
		return "", ErrDemoNotFound
	}

	cacheKey := demoCacheKeyPrefix + name
	if cached, err := c.redisClient.Get(ctx, cacheKey).Result(); err == nil {
		log.Tracef("found exercise demo for %s in cache", name)
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return cached, nil
	} else if !errors.Is(err, redis.Nil) {
		log.Errorf("failed to read exercise demo cache for %s: %s", name, err)
	}

	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	gifURL, err := c.fetchDemoURL(ctx, name)
	if err != nil {
		return "", err
	}

	if err := c.redisClient.Set(ctx, cacheKey, gifURL, demoCacheTTL).Err(); err != nil {
		log.Errorf("failed to write exercise demo cache for %s: %s", name, err)
	}

	return gifURL, nil
}

func (c *Client) fetchDemoURL(ctx context.Context, name string) (string, error) {
	reqURL := c.baseURL + "/exercises/name/" + url.PathEscape(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.host)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("get exercise demo: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", ErrDemoNotFound
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("get exercise demo: unexpected status %d", resp.StatusCode)
	}

	var found []exerciseResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&found); err != nil {
		return "", fmt.Errorf("decode exercise demo response: %w", err)
	}

	for _, e := range found {
		if e.GifURL != "" {
			return e.GifURL, nil
		}
	}

	return "", ErrDemoNotFound
}
