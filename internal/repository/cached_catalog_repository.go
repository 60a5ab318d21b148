package repository

import (
	"context"
	"time"

	"placement-match/internal/domain/matching"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const catalogCacheKey = "catalog:offerings:v1"

type CatalogCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type cachedOffering struct {
	ID            uuid.UUID         `json:"id"`
	Name          string            `json:"name"`
	Platform      string            `json:"platform"`
	URL           string            `json:"url"`
	SkillsCovered matching.TokenSet `json:"skills_covered"`
}

// CachedCatalogRepository serves the catalog listing from cache and falls
// through to next on a miss or a cache failure.
type CachedCatalogRepository struct {
	next   CatalogRepository
	cache  CatalogCache
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedCatalogRepository(next CatalogRepository, cache CatalogCache, ttl time.Duration, logger *zap.Logger) *CachedCatalogRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedCatalogRepository{next: next, cache: cache, ttl: ttl, logger: logger}
}

func (r *CachedCatalogRepository) ListOfferings(ctx context.Context) ([]matching.CourseOffering, error) {
	if r.cache != nil {
		var cached []cachedOffering
		hit, err := r.cache.GetJSON(ctx, catalogCacheKey, &cached)
		if err != nil {
			r.logger.Warn("catalog cache read failed", zap.Error(err))
		}
		if hit {
			out := make([]matching.CourseOffering, 0, len(cached))
			for _, c := range cached {
				out = append(out, matching.CourseOffering(c))
			}
			return out, nil
		}
	}

	offerings, err := r.next.ListOfferings(ctx)
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		payload := make([]cachedOffering, 0, len(offerings))
		for _, o := range offerings {
			payload = append(payload, cachedOffering(o))
		}
		if err := r.cache.SetJSON(ctx, catalogCacheKey, payload, r.ttl); err != nil {
			r.logger.Warn("catalog cache write failed", zap.Error(err))
		}
	}
	return offerings, nil
}

// Invalidate drops the cached listing so the next read hits the store.
func (r *CachedCatalogRepository) Invalidate(ctx context.Context) error {
	if r.cache == nil {
		return nil
	}
	return r.cache.Delete(ctx, catalogCacheKey)
}
