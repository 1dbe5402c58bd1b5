package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/scan-track/fridge-service/internal/models"
)

// MockInventoryItemRepository is a mock implementation of
// repository.InventoryItemRepository
type MockInventoryItemRepository struct {
	mock.Mock
}

func (m *MockInventoryItemRepository) ListByRefrigerator(ctx context.Context, refrigeratorID uuid.UUID) ([]models.InventoryItem, error) {
	args := m.Called(ctx, refrigeratorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.InventoryItem), args.Error(1)
}

func (m *MockInventoryItemRepository) GetByID(ctx context.Context, itemID uuid.UUID) (*models.InventoryItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryItem), args.Error(1)
}

func (m *MockInventoryItemRepository) CreateWithProduct(ctx context.Context, product *models.ProductMaster, refrigeratorID uuid.UUID, expiryDate string) (*models.InventoryItem, error) {
	args := m.Called(ctx, product, refrigeratorID, expiryDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryItem), args.Error(1)
}

func (m *MockInventoryItemRepository) UpdateItem(ctx context.Context, itemID uuid.UUID, status *string, expiryDate *string) (*models.InventoryItem, error) {
	args := m.Called(ctx, itemID, status, expiryDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryItem), args.Error(1)
}

func (m *MockInventoryItemRepository) Delete(ctx context.Context, itemID uuid.UUID) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *MockInventoryItemRepository) ListExpiringOn(ctx context.Context, date string) ([]models.InventoryItem, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.InventoryItem), args.Error(1)
}

// MockRefrigeratorRepository is a mock implementation of
// repository.RefrigeratorRepository
type MockRefrigeratorRepository struct {
	mock.Mock
}

func (m *MockRefrigeratorRepository) Create(ctx context.Context, name string) (*models.Refrigerator, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Refrigerator), args.Error(1)
}

func (m *MockRefrigeratorRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Refrigerator, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Refrigerator), args.Error(1)
}

func (m *MockRefrigeratorRepository) List(ctx context.Context) ([]models.Refrigerator, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Refrigerator), args.Error(1)
}

// MockCache is a mock implementation of CacheInterface
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string, value interface{}) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) DeletePattern(ctx context.Context, pattern string) error {
	args := m.Called(ctx, pattern)
	return args.Error(0)
}

// MockProductFetcher is a mock implementation of ProductFetcher
type MockProductFetcher struct {
	mock.Mock
}

func (m *MockProductFetcher) FetchByBarcode(ctx context.Context, barcode string) (*models.ProductCandidate, error) {
	args := m.Called(ctx, barcode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProductCandidate), args.Error(1)
}

func (m *MockProductFetcher) SearchByKeyword(ctx context.Context, keyword string) ([]models.ProductCandidate, error) {
	args := m.Called(ctx, keyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductCandidate), args.Error(1)
}
