package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	dberrors "github.com/scan-track/fridge-service/internal/errors"
	"github.com/scan-track/fridge-service/internal/models"
)

// productRepo implements ProductRepository
type productRepo struct {
	db *sqlx.DB
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(db *sqlx.DB) ProductRepository {
	return &productRepo{
		db: db,
	}
}

// GetByBarcode retrieves a product master row
func (r *productRepo) GetByBarcode(ctx context.Context, barcode string) (*models.ProductMaster, error) {
	query := `
		SELECT barcode, name, image_url, category
		FROM products_master
		WHERE barcode = $1
	`

	var product models.ProductMaster
	err := r.db.GetContext(ctx, &product, query, barcode)
	if err != nil {
		return nil, dberrors.HandleDatabaseError(err, "get product")
	}

	return &product, nil
}

// Upsert inserts or updates a product master row. A later scan of the
// same barcode overwrites the stored name, image and category.
func (r *productRepo) Upsert(ctx context.Context, product *models.ProductMaster) error {
	query := `
		INSERT INTO products_master (barcode, name, image_url, category)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (barcode)
		DO UPDATE SET name = $2, image_url = $3, category = $4
	`

	_, err := r.db.ExecContext(ctx, query, product.Barcode, product.Name, product.ImageURL, product.Category)
	if err != nil {
		return dberrors.HandleDatabaseError(err, "upsert product")
	}

	return nil
}
