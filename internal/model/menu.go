package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem represents a purchasable item in the catalog.
type MenuItem struct {
	ID        int64           `json:"id" db:"id"`
	Name      string          `json:"name" db:"name"`
	Price     decimal.Decimal `json:"price" db:"price"`
	Category  string          `json:"category" db:"category"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
}

// CreateMenuItemRequest represents the request payload for adding a menu item.
type CreateMenuItemRequest struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
}

// DeleteMenuItemsRequest represents the request payload for deleting menu
// items. Confirm must be set; the API never deletes without an explicit
// confirmation from the caller.
type DeleteMenuItemsRequest struct {
	IDs     []int64 `json:"ids"`
	Confirm bool    `json:"confirm"`
}
