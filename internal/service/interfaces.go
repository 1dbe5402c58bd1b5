package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/scan-track/fridge-service/internal/models"
	"github.com/scan-track/fridge-service/internal/view"
)

// InventoryService defines the business logic for refrigerators and
// tracked items
type InventoryService interface {
	// ListItems returns the computed inventory view for a refrigerator
	ListItems(ctx context.Context, refrigeratorID uuid.UUID, params view.Params) (*models.InventoryListResponse, error)

	// CreateItem registers a scanned product as an active item
	CreateItem(ctx context.Context, req *models.CreateItemRequest) (*models.InventoryItem, error)

	// UpdateItem applies a partial update to an item
	UpdateItem(ctx context.Context, itemID uuid.UUID, req *models.UpdateItemRequest) (*models.InventoryItem, error)

	// DeleteItem removes an item permanently
	DeleteItem(ctx context.Context, itemID uuid.UUID) error

	// CreateRefrigerator registers a new refrigerator
	CreateRefrigerator(ctx context.Context, name string) (*models.Refrigerator, error)

	// ListRefrigerators returns all refrigerators
	ListRefrigerators(ctx context.Context) ([]models.Refrigerator, error)
}

// LookupService defines product lookups against the upstream catalog
type LookupService interface {
	// Lookup resolves a barcode or keyword into a deduplicated,
	// paginated candidate page
	Lookup(ctx context.Context, query string, page int) (*models.ProductSearchResponse, error)
}

// ProductFetcher is the upstream product catalog client
type ProductFetcher interface {
	FetchByBarcode(ctx context.Context, barcode string) (*models.ProductCandidate, error)
	SearchByKeyword(ctx context.Context, keyword string) ([]models.ProductCandidate, error)
}

// CacheInterface defines caching operations used by the services
type CacheInterface interface {
	// Get retrieves a value from cache into value
	Get(ctx context.Context, key string, value interface{}) error

	// Set stores a value in cache with TTL
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes a value from cache
	Delete(ctx context.Context, key string) error

	// DeletePattern removes all keys matching a pattern
	DeletePattern(ctx context.Context, pattern string) error
}

// ErrCacheMiss is returned by CacheInterface.Get when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

// ErrInvalidInput marks a request rejected before touching storage.
var ErrInvalidInput = errors.New("invalid input")
