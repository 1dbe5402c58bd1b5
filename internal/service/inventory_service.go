package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/scan-track/fridge-service/internal/dates"
	"github.com/scan-track/fridge-service/internal/models"
	"github.com/scan-track/fridge-service/internal/repository"
	"github.com/scan-track/fridge-service/internal/view"
	"github.com/scan-track/fridge-service/pkg/metrics"
)

// inventoryCacheTTL bounds staleness of the per-refrigerator record
// cache; mutations invalidate it eagerly anyway.
const inventoryCacheTTL = 5 * time.Minute

// inventoryService implements InventoryService
type inventoryService struct {
	items   repository.InventoryItemRepository
	fridges repository.RefrigeratorRepository
	cache   CacheInterface
	logger  *slog.Logger
	metrics *metrics.ServiceMetrics
}

// NewInventoryService creates the inventory business logic service
func NewInventoryService(
	items repository.InventoryItemRepository,
	fridges repository.RefrigeratorRepository,
	cache CacheInterface,
	logger *slog.Logger,
	serviceMetrics *metrics.ServiceMetrics,
) InventoryService {
	return &inventoryService{
		items:   items,
		fridges: fridges,
		cache:   cache,
		logger:  logger,
		metrics: serviceMetrics,
	}
}

func inventoryCacheKey(refrigeratorID uuid.UUID) string {
	return "inventory:" + refrigeratorID.String()
}

// ListItems loads the refrigerator's records and computes the requested
// view. Raw records are cached; the view itself is computed per request
// because it depends on the caller's parameters and on local today.
func (s *inventoryService) ListItems(ctx context.Context, refrigeratorID uuid.UUID, params view.Params) (*models.InventoryListResponse, error) {
	records, err := s.loadRecords(ctx, refrigeratorID)
	if err != nil {
		s.metrics.RecordInventoryOperation("list", "error")
		return nil, err
	}

	items, stats := view.ComputeView(records, params, time.Now())

	s.metrics.RecordViewComputation(len(items), stats.DegradedDates, stats.RangeSkipped)
	s.metrics.RecordInventoryOperation("list", "success")

	if stats.DegradedDates > 0 {
		s.logger.Warn("inventory view degraded malformed expiry dates",
			"refrigerator_id", refrigeratorID,
			"degraded", stats.DegradedDates,
		)
	}
	if stats.RangeSkipped {
		s.logger.Debug("inverted expiry range ignored", "refrigerator_id", refrigeratorID)
	}

	return &models.InventoryListResponse{
		Items:         items,
		DegradedDates: stats.DegradedDates,
	}, nil
}

func (s *inventoryService) loadRecords(ctx context.Context, refrigeratorID uuid.UUID) ([]models.InventoryItem, error) {
	key := inventoryCacheKey(refrigeratorID)

	var cached []models.InventoryItem
	err := s.cache.Get(ctx, key, &cached)
	if err == nil {
		s.metrics.RecordCacheHit("inventory")
		return cached, nil
	}
	if err != ErrCacheMiss {
		s.logger.Warn("inventory cache read failed", "error", err)
	}
	s.metrics.RecordCacheMiss("inventory")

	records, err := s.items.ListByRefrigerator(ctx, refrigeratorID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, records, inventoryCacheTTL); err != nil {
		s.logger.Warn("inventory cache write failed", "error", err)
	}

	return records, nil
}

// CreateItem validates the request, fills display fallbacks and inserts
// the item together with its product master row.
func (s *inventoryService) CreateItem(ctx context.Context, req *models.CreateItemRequest) (*models.InventoryItem, error) {
	if _, err := dates.ParseLocal(req.ExpiryDate); err != nil {
		s.metrics.RecordInventoryOperation("create", "invalid")
		return nil, errors.Wrapf(ErrInvalidInput, "expiry_date %q is not a YYYY-MM-DD date", req.ExpiryDate)
	}

	product := &models.ProductMaster{
		Barcode:  req.Barcode,
		Name:     req.Name,
		ImageURL: req.Image,
		Category: req.Category,
	}
	if product.ImageURL == "" {
		product.ImageURL = models.PlaceholderImageURL
	}
	if product.Category == "" {
		product.Category = models.DefaultCategory
	}

	item, err := s.items.CreateWithProduct(ctx, product, req.RefrigeratorID, req.ExpiryDate)
	if err != nil {
		s.metrics.RecordInventoryOperation("create", "error")
		return nil, err
	}

	s.invalidateInventory(ctx, req.RefrigeratorID)
	s.metrics.RecordInventoryOperation("create", "success")

	s.logger.Info("inventory item created",
		"item_id", item.ID,
		"refrigerator_id", item.RefrigeratorID,
		"barcode", item.Barcode,
		"expiry_date", item.ExpiryDate,
	)

	return item, nil
}

// UpdateItem applies a partial update after validating the supplied
// fields.
func (s *inventoryService) UpdateItem(ctx context.Context, itemID uuid.UUID, req *models.UpdateItemRequest) (*models.InventoryItem, error) {
	if req.Status == nil && req.ExpiryDate == nil {
		s.metrics.RecordInventoryOperation("update", "invalid")
		return nil, errors.Wrap(ErrInvalidInput, "at least one of status or expiry_date is required")
	}
	if req.Status != nil && !models.ValidStatus(*req.Status) {
		s.metrics.RecordInventoryOperation("update", "invalid")
		return nil, errors.Wrapf(ErrInvalidInput, "unknown status %q", *req.Status)
	}
	if req.ExpiryDate != nil {
		if _, err := dates.ParseLocal(*req.ExpiryDate); err != nil {
			s.metrics.RecordInventoryOperation("update", "invalid")
			return nil, errors.Wrapf(ErrInvalidInput, "expiry_date %q is not a YYYY-MM-DD date", *req.ExpiryDate)
		}
	}

	item, err := s.items.UpdateItem(ctx, itemID, req.Status, req.ExpiryDate)
	if err != nil {
		s.metrics.RecordInventoryOperation("update", "error")
		return nil, err
	}

	s.invalidateInventory(ctx, item.RefrigeratorID)
	s.metrics.RecordInventoryOperation("update", "success")

	s.logger.Info("inventory item updated",
		"item_id", item.ID,
		"status", item.Status,
		"expiry_date", item.ExpiryDate,
	)

	return item, nil
}

// DeleteItem removes an item permanently
func (s *inventoryService) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		s.metrics.RecordInventoryOperation("delete", "error")
		return err
	}

	if err := s.items.Delete(ctx, itemID); err != nil {
		s.metrics.RecordInventoryOperation("delete", "error")
		return err
	}

	s.invalidateInventory(ctx, item.RefrigeratorID)
	s.metrics.RecordInventoryOperation("delete", "success")

	s.logger.Info("inventory item deleted", "item_id", itemID)

	return nil
}

// CreateRefrigerator registers a new refrigerator
func (s *inventoryService) CreateRefrigerator(ctx context.Context, name string) (*models.Refrigerator, error) {
	fridge, err := s.fridges.Create(ctx, name)
	if err != nil {
		return nil, err
	}

	s.logger.Info("refrigerator created", "refrigerator_id", fridge.ID, "name", fridge.Name)

	return fridge, nil
}

// ListRefrigerators returns all refrigerators
func (s *inventoryService) ListRefrigerators(ctx context.Context) ([]models.Refrigerator, error) {
	return s.fridges.List(ctx)
}

func (s *inventoryService) invalidateInventory(ctx context.Context, refrigeratorID uuid.UUID) {
	if err := s.cache.Delete(ctx, inventoryCacheKey(refrigeratorID)); err != nil {
		s.logger.Warn("inventory cache invalidation failed",
			"refrigerator_id", refrigeratorID,
			"error", err,
		)
	}
}
