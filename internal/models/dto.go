package models

import (
	"github.com/google/uuid"
)

// CreateItemRequest registers a product into a refrigerator. The product
// master is upserted by barcode, then an active inventory item is inserted.
type CreateItemRequest struct {
	RefrigeratorID uuid.UUID `json:"refrigerator_id" validate:"required"`
	Name           string    `json:"name" validate:"required"`
	Barcode        string    `json:"barcode" validate:"required"`
	Image          string    `json:"image" validate:"required"`
	Category       string    `json:"category,omitempty"`
	ExpiryDate     string    `json:"expiry_date" validate:"required"`
}

// UpdateItemRequest is a partial update: only supplied fields change.
// At least one of Status/ExpiryDate must be present.
type UpdateItemRequest struct {
	Status     *string `json:"status,omitempty" validate:"omitempty,oneof=active consumed discarded"`
	ExpiryDate *string `json:"expiry_date,omitempty"`
}

// CreateRefrigeratorRequest registers a new shared refrigerator.
type CreateRefrigeratorRequest struct {
	Name string `json:"name" validate:"required"`
}

// InventoryListResponse is the inventory view after server-side
// filter/sort/search computation.
type InventoryListResponse struct {
	Items         []InventoryItem `json:"items"`
	DegradedDates int             `json:"degraded_dates,omitempty"`
}

// ProductSearchResponse is a deduplicated, paginated page of lookup results.
type ProductSearchResponse struct {
	Results    []ProductCandidate `json:"results"`
	Page       int                `json:"page"`
	TotalPages int                `json:"total_pages"`
	Total      int                `json:"total"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
