package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/scan-track/fridge-service/internal/models"
	"github.com/scan-track/fridge-service/internal/openfoodfacts"
	"github.com/scan-track/fridge-service/internal/view"
	"github.com/scan-track/fridge-service/pkg/metrics"
)

// lookupService implements LookupService
type lookupService struct {
	fetcher ProductFetcher
	cache   CacheInterface
	ttl     time.Duration
	logger  *slog.Logger
	metrics *metrics.ServiceMetrics
}

// NewLookupService creates the product lookup service. ttl bounds how
// long a resolved query is served from cache.
func NewLookupService(
	fetcher ProductFetcher,
	cache CacheInterface,
	ttl time.Duration,
	logger *slog.Logger,
	serviceMetrics *metrics.ServiceMetrics,
) LookupService {
	return &lookupService{
		fetcher: fetcher,
		cache:   cache,
		ttl:     ttl,
		logger:  logger,
		metrics: serviceMetrics,
	}
}

func lookupCacheKey(query string) string {
	return "lookup:" + query
}

// isBarcode reports whether the query is all digits, which routes it to
// the by-barcode endpoint instead of keyword search.
func isBarcode(query string) bool {
	if query == "" {
		return false
	}
	for _, r := range query {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Lookup resolves a query into a deduplicated candidate page. The full
// deduplicated list is cached per query; pagination is applied per
// request so every page is served from one upstream round trip.
func (s *lookupService) Lookup(ctx context.Context, query string, page int) (*models.ProductSearchResponse, error) {
	kind := "keyword"
	if isBarcode(query) {
		kind = "barcode"
	}

	candidates, err := s.resolve(ctx, query, kind)
	if err != nil {
		return nil, err
	}

	p := view.Paginate(candidates, page)

	return &models.ProductSearchResponse{
		Results:    p.Results,
		Page:       p.Number,
		TotalPages: p.TotalPages,
		Total:      p.Total,
	}, nil
}

func (s *lookupService) resolve(ctx context.Context, query, kind string) ([]models.ProductCandidate, error) {
	key := lookupCacheKey(query)

	var cached []models.ProductCandidate
	err := s.cache.Get(ctx, key, &cached)
	if err == nil {
		s.metrics.RecordCacheHit("lookup")
		return cached, nil
	}
	if err != ErrCacheMiss {
		s.logger.Warn("lookup cache read failed", "error", err)
	}
	s.metrics.RecordCacheMiss("lookup")

	start := time.Now()
	candidates, err := s.fetch(ctx, query, kind)
	duration := time.Since(start)

	if err != nil {
		s.metrics.RecordProductLookup(kind, duration, "error")
		return nil, err
	}

	deduped := view.DedupeCandidates(candidates)
	s.metrics.RecordProductLookup(kind, duration, "success")

	s.logger.Info("product lookup resolved",
		"kind", kind,
		"raw", len(candidates),
		"deduplicated", len(deduped),
		"duration_ms", duration.Milliseconds(),
	)

	if err := s.cache.Set(ctx, key, deduped, s.ttl); err != nil {
		s.logger.Warn("lookup cache write failed", "error", err)
	}

	return deduped, nil
}

// fetch hits the upstream. An unknown barcode is an empty result, not
// an error: the client falls back to manual entry.
func (s *lookupService) fetch(ctx context.Context, query, kind string) ([]models.ProductCandidate, error) {
	if kind == "barcode" {
		candidate, err := s.fetcher.FetchByBarcode(ctx, query)
		if err != nil {
			if err == openfoodfacts.ErrProductNotFound {
				return nil, nil
			}
			return nil, err
		}
		return []models.ProductCandidate{*candidate}, nil
	}

	return s.fetcher.SearchByKeyword(ctx, query)
}
