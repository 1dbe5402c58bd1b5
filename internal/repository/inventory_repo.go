package repository

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	dberrors "github.com/scan-track/fridge-service/internal/errors"
	"github.com/scan-track/fridge-service/internal/models"
)

// itemColumns selects an inventory item joined with its product master
// row. expiration_date and added_at cross the boundary as text so a
// local civil date is never routed through a timezone-carrying scan.
const itemColumns = `
	i.id, i.refrigerator_id, i.barcode,
	p.name, p.image_url, p.category,
	to_char(i.expiration_date, 'YYYY-MM-DD') AS expiry_date,
	i.status,
	to_char(i.added_at, 'YYYY-MM-DD"T"HH24:MI:SS') AS created_at
`

// inventoryItemRepo implements InventoryItemRepository
type inventoryItemRepo struct {
	db *sqlx.DB
}

// NewInventoryItemRepository creates a new InventoryItemRepository
func NewInventoryItemRepository(db *sqlx.DB) InventoryItemRepository {
	return &inventoryItemRepo{
		db: db,
	}
}

// ListByRefrigerator retrieves all items in a refrigerator joined with
// their product master rows
func (r *inventoryItemRepo) ListByRefrigerator(ctx context.Context, refrigeratorID uuid.UUID) ([]models.InventoryItem, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM inventory_items i
		JOIN products_master p ON p.barcode = i.barcode
		WHERE i.refrigerator_id = $1
		ORDER BY i.added_at, i.id
	`

	var items []models.InventoryItem
	err := r.db.SelectContext(ctx, &items, query, refrigeratorID)
	if err != nil {
		return nil, dberrors.HandleDatabaseError(err, "list inventory items")
	}

	return items, nil
}

// GetByID retrieves a single item by its ID
func (r *inventoryItemRepo) GetByID(ctx context.Context, itemID uuid.UUID) (*models.InventoryItem, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM inventory_items i
		JOIN products_master p ON p.barcode = i.barcode
		WHERE i.id = $1
	`

	var item models.InventoryItem
	err := r.db.GetContext(ctx, &item, query, itemID)
	if err != nil {
		return nil, dberrors.HandleDatabaseError(err, "get inventory item")
	}

	return &item, nil
}

// CreateWithProduct upserts the product master row and inserts the item
// in one transaction
func (r *inventoryItemRepo) CreateWithProduct(ctx context.Context, product *models.ProductMaster, refrigeratorID uuid.UUID, expiryDate string) (*models.InventoryItem, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	upsert := `
		INSERT INTO products_master (barcode, name, image_url, category)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (barcode)
		DO UPDATE SET name = $2, image_url = $3, category = $4
	`

	_, err = tx.ExecContext(ctx, upsert, product.Barcode, product.Name, product.ImageURL, product.Category)
	if err != nil {
		return nil, dberrors.HandleDatabaseError(err, "upsert product")
	}

	insert := `
		INSERT INTO inventory_items (refrigerator_id, barcode, expiration_date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var itemID uuid.UUID
	err = tx.GetContext(ctx, &itemID, insert, refrigeratorID, product.Barcode, expiryDate, models.StatusActive)
	if err != nil {
		return nil, dberrors.HandleDatabaseError(err, "create inventory item")
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "failed to commit transaction")
	}

	return r.GetByID(ctx, itemID)
}

// UpdateItem applies a partial update. At least one field must be set.
func (r *inventoryItemRepo) UpdateItem(ctx context.Context, itemID uuid.UUID, status *string, expiryDate *string) (*models.InventoryItem, error) {
	sets := make([]string, 0, 2)
	args := make([]interface{}, 0, 3)

	if status != nil {
		args = append(args, *status)
		sets = append(sets, "status = $"+strconv.Itoa(len(args)))
	}
	if expiryDate != nil {
		args = append(args, *expiryDate)
		sets = append(sets, "expiration_date = $"+strconv.Itoa(len(args)))
	}
	if len(sets) == 0 {
		return nil, errors.New("no fields to update")
	}

	args = append(args, itemID)
	query := `UPDATE inventory_items SET ` + strings.Join(sets, ", ") +
		` WHERE id = $` + strconv.Itoa(len(args))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, dberrors.HandleDatabaseError(err, "update inventory item")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return nil, dberrors.ErrNotFound
	}

	return r.GetByID(ctx, itemID)
}

// Delete removes an item permanently
func (r *inventoryItemRepo) Delete(ctx context.Context, itemID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM inventory_items WHERE id = $1`, itemID)
	if err != nil {
		return dberrors.HandleDatabaseError(err, "delete inventory item")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return dberrors.ErrNotFound
	}

	return nil
}

// ListExpiringOn retrieves active items whose expiration date equals
// the given local date
func (r *inventoryItemRepo) ListExpiringOn(ctx context.Context, date string) ([]models.InventoryItem, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM inventory_items i
		JOIN products_master p ON p.barcode = i.barcode
		WHERE i.status = $1 AND i.expiration_date = $2
		ORDER BY i.refrigerator_id, i.added_at
	`

	var items []models.InventoryItem
	err := r.db.SelectContext(ctx, &items, query, models.StatusActive, date)
	if err != nil {
		return nil, dberrors.HandleDatabaseError(err, "list expiring items")
	}

	return items, nil
}
