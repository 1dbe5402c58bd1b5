package models

import (
	"time"

	"github.com/google/uuid"
)

// Item lifecycle statuses. Only active items are ever shown in the
// inventory view; consumed and discarded items stay in the table for
// history.
const (
	StatusActive    = "active"
	StatusConsumed  = "consumed"
	StatusDiscarded = "discarded"
)

// ValidStatus reports whether s is a known item status.
func ValidStatus(s string) bool {
	switch s {
	case StatusActive, StatusConsumed, StatusDiscarded:
		return true
	}
	return false
}

// InventoryItem is one tracked physical item instance in a refrigerator,
// joined with its product master row. ExpiryDate is YYYY-MM-DD text with
// local-civil-date semantics and is deliberately not a time.Time: a row
// with a malformed date must survive listing and filtering as a degraded
// record instead of failing a scan.
type InventoryItem struct {
	ID             uuid.UUID `json:"id" db:"id"`
	RefrigeratorID uuid.UUID `json:"refrigerator_id" db:"refrigerator_id"`
	Barcode        string    `json:"barcode" db:"barcode"`
	Name           string    `json:"name" db:"name"`
	ImageURL       string    `json:"image_url" db:"image_url"`
	Category       string    `json:"category" db:"category"`
	ExpiryDate     string    `json:"expiry_date" db:"expiry_date"`
	Status         string    `json:"status" db:"status"`
	CreatedAt      string    `json:"created_at" db:"created_at"`
}

// ProductMaster is the shared product catalog row, keyed by barcode.
type ProductMaster struct {
	Barcode  string `json:"barcode" db:"barcode"`
	Name     string `json:"name" db:"name"`
	ImageURL string `json:"image_url" db:"image_url"`
	Category string `json:"category" db:"category"`
}

// Refrigerator is a shared inventory scope. Membership and row-level
// access control live in the database layer, not here.
type Refrigerator struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Display fallbacks for optional product fields.
const (
	PlaceholderImageURL = "https://placehold.co/150x150?text=No+Image"
	DefaultCategory     = "未分類"
)
