package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	dberrors "github.com/scan-track/fridge-service/internal/errors"
	"github.com/scan-track/fridge-service/internal/models"
)

// refrigeratorRepo implements RefrigeratorRepository
type refrigeratorRepo struct {
	db *sqlx.DB
}

// NewRefrigeratorRepository creates a new RefrigeratorRepository
func NewRefrigeratorRepository(db *sqlx.DB) RefrigeratorRepository {
	return &refrigeratorRepo{
		db: db,
	}
}

// Create creates a new refrigerator
func (r *refrigeratorRepo) Create(ctx context.Context, name string) (*models.Refrigerator, error) {
	query := `
		INSERT INTO refrigerators (name)
		VALUES ($1)
		RETURNING id, name, created_at
	`

	var fridge models.Refrigerator
	err := r.db.GetContext(ctx, &fridge, query, name)
	if err != nil {
		return nil, dberrors.HandleDatabaseError(err, "create refrigerator")
	}

	return &fridge, nil
}

// GetByID retrieves a refrigerator by its ID
func (r *refrigeratorRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Refrigerator, error) {
	query := `
		SELECT id, name, created_at
		FROM refrigerators
		WHERE id = $1
	`

	var fridge models.Refrigerator
	err := r.db.GetContext(ctx, &fridge, query, id)
	if err != nil {
		return nil, dberrors.HandleDatabaseError(err, "get refrigerator")
	}

	return &fridge, nil
}

// List retrieves all refrigerators in creation order
func (r *refrigeratorRepo) List(ctx context.Context) ([]models.Refrigerator, error) {
	query := `
		SELECT id, name, created_at
		FROM refrigerators
		ORDER BY created_at, id
	`

	var fridges []models.Refrigerator
	err := r.db.SelectContext(ctx, &fridges, query)
	if err != nil {
		return nil, dberrors.HandleDatabaseError(err, "list refrigerators")
	}

	return fridges, nil
}
