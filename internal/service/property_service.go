package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/dpletzke/LightBnB/internal/cache"
	"github.com/dpletzke/LightBnB/internal/logging"
	"github.com/dpletzke/LightBnB/internal/metrics"
	"github.com/dpletzke/LightBnB/internal/model"
	"github.com/dpletzke/LightBnB/internal/repository"
)

// PropertyService answers listing searches through the search cache and keeps
// the cache coherent across writes.
type PropertyService struct {
	repo    repository.PropertyRepository
	cache   *cache.SearchCache
	metrics *metrics.Metrics
}

func NewPropertyService(repo repository.PropertyRepository, sc *cache.SearchCache, m *metrics.Metrics) *PropertyService {
	return &PropertyService{repo: repo, cache: sc, metrics: m}
}

func (s *PropertyService) Search(ctx context.Context, f *model.PropertySearchFilters, limit int) ([]*model.Property, error) {
	if rows, ok := s.cache.Get(ctx, f, limit); ok {
		s.metrics.CacheHit()
		return rows, nil
	}
	if s.cache.Enabled() {
		s.metrics.CacheMiss()
	}

	start := time.Now()
	rows, err := s.repo.Search(ctx, f, limit)
	s.metrics.ObserveQuery("property_search", start, err)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, f, limit, rows)
	return rows, nil
}

func (s *PropertyService) Create(ctx context.Context, p *model.Property) error {
	start := time.Now()
	err := s.repo.Create(ctx, p)
	s.metrics.ObserveQuery("property_create", start, err)
	if err != nil {
		return err
	}
	// Cached search pages may now be stale.
	if err := s.cache.Invalidate(ctx); err != nil {
		logging.Warn(ctx, "search cache invalidation failed", zap.Error(err))
	}
	logging.Info(ctx, "property created",
		zap.Int64("property_id", p.ID), zap.Int64("owner_id", p.OwnerID))
	return nil
}
