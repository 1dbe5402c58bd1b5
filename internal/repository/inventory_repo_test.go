package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dberrors "github.com/scan-track/fridge-service/internal/errors"
	"github.com/scan-track/fridge-service/internal/models"
)

func newItemRepo(t *testing.T) (InventoryItemRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewInventoryItemRepository(sqlxDB), mock, func() { db.Close() }
}

func itemRows(items ...models.InventoryItem) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "refrigerator_id", "barcode", "name", "image_url", "category",
		"expiry_date", "status", "created_at",
	})
	for _, it := range items {
		rows.AddRow(it.ID, it.RefrigeratorID, it.Barcode, it.Name, it.ImageURL,
			it.Category, it.ExpiryDate, it.Status, it.CreatedAt)
	}
	return rows
}

func TestInventoryItemRepo_ListByRefrigerator(t *testing.T) {
	repo, mock, closeDB := newItemRepo(t)
	defer closeDB()

	ctx := context.Background()
	fridgeID := uuid.New()

	t.Run("success", func(t *testing.T) {
		items := []models.InventoryItem{
			{
				ID:             uuid.New(),
				RefrigeratorID: fridgeID,
				Barcode:        "4901234567894",
				Name:           "牛乳",
				ImageURL:       "https://example.com/milk.jpg",
				Category:       "乳製品",
				ExpiryDate:     "2024-06-20",
				Status:         models.StatusActive,
				CreatedAt:      "2024-06-10T09:00:00",
			},
			{
				ID:             uuid.New(),
				RefrigeratorID: fridgeID,
				Barcode:        "4909876543212",
				Name:           "納豆",
				ImageURL:       "",
				Category:       "未分類",
				ExpiryDate:     "2024-06-18",
				Status:         models.StatusActive,
				CreatedAt:      "2024-06-11T12:30:00",
			},
		}

		mock.ExpectQuery("SELECT (.+) FROM inventory_items i JOIN products_master p ON p.barcode = i.barcode WHERE i.refrigerator_id = \\$1 ORDER BY i.added_at, i.id").
			WithArgs(fridgeID).
			WillReturnRows(itemRows(items...))

		result, err := repo.ListByRefrigerator(ctx, fridgeID)
		assert.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "牛乳", result[0].Name)
		assert.Equal(t, "2024-06-20", result[0].ExpiryDate)
		assert.Equal(t, "納豆", result[1].Name)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM inventory_items i JOIN products_master p").
			WithArgs(fridgeID).
			WillReturnRows(itemRows())

		result, err := repo.ListByRefrigerator(ctx, fridgeID)
		assert.NoError(t, err)
		assert.Empty(t, result)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestInventoryItemRepo_GetByID(t *testing.T) {
	repo, mock, closeDB := newItemRepo(t)
	defer closeDB()

	ctx := context.Background()
	itemID := uuid.New()

	t.Run("success", func(t *testing.T) {
		item := models.InventoryItem{
			ID:             itemID,
			RefrigeratorID: uuid.New(),
			Barcode:        "4901234567894",
			Name:           "牛乳",
			ExpiryDate:     "2024-06-20",
			Status:         models.StatusActive,
			CreatedAt:      "2024-06-10T09:00:00",
		}

		mock.ExpectQuery("SELECT (.+) FROM inventory_items i JOIN products_master p ON p.barcode = i.barcode WHERE i.id = \\$1").
			WithArgs(itemID).
			WillReturnRows(itemRows(item))

		result, err := repo.GetByID(ctx, itemID)
		assert.NoError(t, err)
		assert.Equal(t, itemID, result.ID)
		assert.Equal(t, "牛乳", result.Name)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM inventory_items i JOIN products_master p ON p.barcode = i.barcode WHERE i.id = \\$1").
			WithArgs(itemID).
			WillReturnError(sql.ErrNoRows)

		result, err := repo.GetByID(ctx, itemID)
		assert.Nil(t, result)
		assert.True(t, dberrors.IsNotFound(err))

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestInventoryItemRepo_CreateWithProduct(t *testing.T) {
	repo, mock, closeDB := newItemRepo(t)
	defer closeDB()

	ctx := context.Background()
	fridgeID := uuid.New()
	itemID := uuid.New()

	product := &models.ProductMaster{
		Barcode:  "4901234567894",
		Name:     "牛乳",
		ImageURL: "https://example.com/milk.jpg",
		Category: "乳製品",
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO products_master").
			WithArgs(product.Barcode, product.Name, product.ImageURL, product.Category).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("INSERT INTO inventory_items").
			WithArgs(fridgeID, product.Barcode, "2024-06-20", models.StatusActive).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(itemID))
		mock.ExpectCommit()

		created := models.InventoryItem{
			ID:             itemID,
			RefrigeratorID: fridgeID,
			Barcode:        product.Barcode,
			Name:           product.Name,
			ImageURL:       product.ImageURL,
			Category:       product.Category,
			ExpiryDate:     "2024-06-20",
			Status:         models.StatusActive,
			CreatedAt:      "2024-06-10T09:00:00",
		}
		mock.ExpectQuery("SELECT (.+) FROM inventory_items i JOIN products_master p ON p.barcode = i.barcode WHERE i.id = \\$1").
			WithArgs(itemID).
			WillReturnRows(itemRows(created))

		result, err := repo.CreateWithProduct(ctx, product, fridgeID, "2024-06-20")
		assert.NoError(t, err)
		assert.Equal(t, itemID, result.ID)
		assert.Equal(t, "2024-06-20", result.ExpiryDate)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert fails rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO products_master").
			WithArgs(product.Barcode, product.Name, product.ImageURL, product.Category).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("INSERT INTO inventory_items").
			WithArgs(fridgeID, product.Barcode, "2024-06-20", models.StatusActive).
			WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		result, err := repo.CreateWithProduct(ctx, product, fridgeID, "2024-06-20")
		assert.Error(t, err)
		assert.Nil(t, result)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestInventoryItemRepo_UpdateItem(t *testing.T) {
	repo, mock, closeDB := newItemRepo(t)
	defer closeDB()

	ctx := context.Background()
	itemID := uuid.New()

	t.Run("status only", func(t *testing.T) {
		status := models.StatusConsumed

		mock.ExpectExec("UPDATE inventory_items SET status = \\$1 WHERE id = \\$2").
			WithArgs(status, itemID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		updated := models.InventoryItem{
			ID:         itemID,
			Barcode:    "4901234567894",
			Name:       "牛乳",
			ExpiryDate: "2024-06-20",
			Status:     status,
			CreatedAt:  "2024-06-10T09:00:00",
		}
		mock.ExpectQuery("SELECT (.+) FROM inventory_items i JOIN products_master p ON p.barcode = i.barcode WHERE i.id = \\$1").
			WithArgs(itemID).
			WillReturnRows(itemRows(updated))

		result, err := repo.UpdateItem(ctx, itemID, &status, nil)
		assert.NoError(t, err)
		assert.Equal(t, models.StatusConsumed, result.Status)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("status and expiry", func(t *testing.T) {
		status := models.StatusActive
		expiry := "2024-07-01"

		mock.ExpectExec("UPDATE inventory_items SET status = \\$1, expiration_date = \\$2 WHERE id = \\$3").
			WithArgs(status, expiry, itemID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		updated := models.InventoryItem{
			ID:         itemID,
			Barcode:    "4901234567894",
			Name:       "牛乳",
			ExpiryDate: expiry,
			Status:     status,
			CreatedAt:  "2024-06-10T09:00:00",
		}
		mock.ExpectQuery("SELECT (.+) FROM inventory_items i JOIN products_master p ON p.barcode = i.barcode WHERE i.id = \\$1").
			WithArgs(itemID).
			WillReturnRows(itemRows(updated))

		result, err := repo.UpdateItem(ctx, itemID, &status, &expiry)
		assert.NoError(t, err)
		assert.Equal(t, expiry, result.ExpiryDate)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no fields", func(t *testing.T) {
		result, err := repo.UpdateItem(ctx, itemID, nil, nil)
		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("not found", func(t *testing.T) {
		status := models.StatusDiscarded

		mock.ExpectExec("UPDATE inventory_items SET status = \\$1 WHERE id = \\$2").
			WithArgs(status, itemID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		result, err := repo.UpdateItem(ctx, itemID, &status, nil)
		assert.Nil(t, result)
		assert.True(t, dberrors.IsNotFound(err))

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestInventoryItemRepo_Delete(t *testing.T) {
	repo, mock, closeDB := newItemRepo(t)
	defer closeDB()

	ctx := context.Background()
	itemID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM inventory_items WHERE id = \\$1").
			WithArgs(itemID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, itemID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM inventory_items WHERE id = \\$1").
			WithArgs(itemID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(ctx, itemID)
		assert.True(t, dberrors.IsNotFound(err))

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestInventoryItemRepo_ListExpiringOn(t *testing.T) {
	repo, mock, closeDB := newItemRepo(t)
	defer closeDB()

	ctx := context.Background()

	item := models.InventoryItem{
		ID:             uuid.New(),
		RefrigeratorID: uuid.New(),
		Barcode:        "4901234567894",
		Name:           "牛乳",
		ExpiryDate:     "2024-06-16",
		Status:         models.StatusActive,
		CreatedAt:      "2024-06-10T09:00:00",
	}

	mock.ExpectQuery("SELECT (.+) FROM inventory_items i JOIN products_master p ON p.barcode = i.barcode WHERE i.status = \\$1 AND i.expiration_date = \\$2").
		WithArgs(models.StatusActive, "2024-06-16").
		WillReturnRows(itemRows(item))

	result, err := repo.ListExpiringOn(ctx, "2024-06-16")
	assert.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "牛乳", result[0].Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}
