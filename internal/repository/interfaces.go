package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/scan-track/fridge-service/internal/models"
)

// InventoryItemRepository defines methods for working with tracked items
type InventoryItemRepository interface {
	// ListByRefrigerator retrieves all items in a refrigerator joined
	// with their product master rows, in insertion order
	ListByRefrigerator(ctx context.Context, refrigeratorID uuid.UUID) ([]models.InventoryItem, error)

	// GetByID retrieves a single item by its ID
	GetByID(ctx context.Context, itemID uuid.UUID) (*models.InventoryItem, error)

	// CreateWithProduct upserts the product master row and inserts the
	// item in one transaction, returning the created item
	CreateWithProduct(ctx context.Context, product *models.ProductMaster, refrigeratorID uuid.UUID, expiryDate string) (*models.InventoryItem, error)

	// UpdateItem applies a partial update (status and/or expiry date)
	UpdateItem(ctx context.Context, itemID uuid.UUID, status *string, expiryDate *string) (*models.InventoryItem, error)

	// Delete removes an item permanently
	Delete(ctx context.Context, itemID uuid.UUID) error

	// ListExpiringOn retrieves active items whose expiration date equals
	// the given local date, across all refrigerators
	ListExpiringOn(ctx context.Context, date string) ([]models.InventoryItem, error)
}

// ProductRepository defines methods for working with the product catalog
type ProductRepository interface {
	// GetByBarcode retrieves a product master row
	GetByBarcode(ctx context.Context, barcode string) (*models.ProductMaster, error)

	// Upsert inserts or updates a product master row
	Upsert(ctx context.Context, product *models.ProductMaster) error
}

// RefrigeratorRepository defines methods for working with refrigerators
type RefrigeratorRepository interface {
	// Create creates a new refrigerator
	Create(ctx context.Context, name string) (*models.Refrigerator, error)

	// GetByID retrieves a refrigerator by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*models.Refrigerator, error)

	// List retrieves all refrigerators in creation order
	List(ctx context.Context) ([]models.Refrigerator, error)
}

// Repositories aggregates all repository interfaces
type Repositories struct {
	Items         InventoryItemRepository
	Products      ProductRepository
	Refrigerators RefrigeratorRepository
}

// NewRepositories creates a new Repositories instance
func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Items:         NewInventoryItemRepository(db),
		Products:      NewProductRepository(db),
		Refrigerators: NewRefrigeratorRepository(db),
	}
}
