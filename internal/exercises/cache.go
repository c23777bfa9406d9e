package exercises

import (
	"context"
	"encoding/json"

	"github.com/coocood/freecache"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gympro/internal/telemetry/metrics"
)

const (
	oneHour          = 60 * 60
	catalogExpire    = oneHour * 6
	exerciseKeyPfx   = "exercise::"
	bodyPartsKey     = "body-parts"
	megabyte         = 1024 * 1024
	defaultCacheSize = 16 * megabyte
)

//go:generate mockgen -source=$GOFILE -destination=cache_mocks_test.go -package=exercises_test

type catalogRepo interface {
	Get(ctx context.Context, id string) (*Exercise, error)
	GetByIDs(ctx context.Context, ids []string) ([]Exercise, error)
	ListByBodyPart(ctx context.Context, bodyPart string) ([]Exercise, error)
	BodyParts(ctx context.Context) ([]string, error)
}

// CachedRepo is a read-through cache in front of the catalog repo.
// The catalog only changes on import, so entries simply expire.
type CachedRepo struct {
	repo           catalogRepo
	cache          *freecache.Cache
	metricsManager *metrics.Manager
}

func NewCachedRepo(repo catalogRepo, cacheSizeMB int, metricsManager *metrics.Manager) *CachedRepo {
	cacheSize := defaultCacheSize
	if cacheSizeMB > 0 {
		cacheSize = cacheSizeMB * megabyte
	}
	return &CachedRepo{
		repo:           repo,
		cache:          freecache.NewCache(cacheSize),
		metricsManager: metricsManager,
	}
}

func (c *CachedRepo) Get(ctx context.Context, id string) (*Exercise, error) {
	if e, ok := c.fromCache(id); ok {
		return e, nil
	}

	e, err := c.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	c.toCache(*e)

	return e, nil
}

func (c *CachedRepo) GetByIDs(ctx context.Context, ids []string) ([]Exercise, error) {
	found := make([]Exercise, 0, len(ids))
	var missing []string
	for _, id := range ids {
		if e, ok := c.fromCache(id); ok {
			found = append(found, *e)
			continue
		}
		missing = append(missing, id)
	}

	if len(missing) == 0 {
		return found, nil
	}

	fetched, err := c.repo.GetByIDs(ctx, missing)
	if err != nil {
		return nil, err
	}
	for _, e := range fetched {
		c.toCache(e)
	}

	return append(found, fetched...), nil
}

func (c *CachedRepo) ListByBodyPart(ctx context.Context, bodyPart string) ([]Exercise, error) {
	list, err := c.repo.ListByBodyPart(ctx, bodyPart)
	if err != nil {
		return nil, err
	}
	for _, e := range list {
		c.toCache(e)
	}
	return list, nil
}

func (c *CachedRepo) BodyParts(ctx context.Context) ([]string, error) {
	if cached, err := c.cache.Get([]byte(bodyPartsKey)); err == nil {
		var bodyParts []string
		if err := json.Unmarshal(cached, &bodyParts); err == nil {
			c.countLookup("hit")
			return bodyParts, nil
		} else {
			log.Errorf("failed to unmarshal body parts from cache: %s", err)
		}
	}
	c.countLookup("miss")

	bodyParts, err := c.repo.BodyParts(ctx)
	if err != nil {
		return nil, err
	}

	if bodyPartsJson, err := json.Marshal(bodyParts); err == nil {
		if err := c.cache.Set([]byte(bodyPartsKey), bodyPartsJson, catalogExpire); err != nil {
			log.Errorf("failed to write body parts cache: %s", err)
		}
	}

	return bodyParts, nil
}

func (c *CachedRepo) fromCache(id string) (*Exercise, bool) {
	cached, err := c.cache.Get([]byte(exerciseKeyPfx + id))
	if err != nil {
		c.countLookup("miss")
		return nil, false
	}

	var e Exercise
	if err := json.Unmarshal(cached, &e); err != nil {
		log.Errorf("failed to unmarshal exercise %s from cache: %s", id, err)
		c.countLookup("miss")
		return nil, false
	}

	c.countLookup("hit")
	return &e, true
}

func (c *CachedRepo) toCache(e Exercise) {
	exJson, err := json.Marshal(e)
	if err != nil {
		log.Errorf("failed to marshal exercise %s for cache: %s", e.ID, err)
		return
	}
	if err := c.cache.Set([]byte(exerciseKeyPfx+e.ID), exJson, catalogExpire); err != nil {
		log.Errorf("failed to write exercise %s cache: %s", e.ID, err)
	}
}

func (c *CachedRepo) countLookup(result string) {
	if c.metricsManager == nil {
		return
	}
	c.metricsManager.CounterCatalogCache.With(prometheus.Labels{"result": result}).Inc()
}
