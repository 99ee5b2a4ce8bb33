package model

import (
	"time"

	"github.com/shopspring/decimal"

	"cafe-pos/internal/billing"
)

// Order represents a persisted order header. Lines reference it by ID.
type Order struct {
	ID          int64           `json:"id" db:"id"`
	TotalAmount decimal.Decimal `json:"totalAmount" db:"total_amount"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
}

// OrderLine represents a persisted line item in the order ledger.
type OrderLine struct {
	ID          int64           `json:"-" db:"id"`
	OrderID     int64           `json:"-" db:"order_id"`
	ItemID      int64           `json:"itemId" db:"item_id"`
	Quantity    int             `json:"quantity" db:"quantity"`
	TotalAmount decimal.Decimal `json:"totalAmount" db:"total_amount"`
}

// OrderRequest represents the request payload for creating an order.
type OrderRequest struct {
	Items []OrderLineRequest `json:"items"`
}

// OrderLineRequest represents a single requested line in an order.
type OrderLineRequest struct {
	ItemID   int64 `json:"itemId"`
	Quantity int   `json:"quantity"`
}

// SkippedLine reports a requested line that was not persisted.
type SkippedLine struct {
	ItemID int64  `json:"itemId"`
	Reason string `json:"reason"`
}

// OrderResponse represents the result of an order creation attempt.
// OrderID is nil when no line validated and nothing was persisted.
type OrderResponse struct {
	OrderID *int64          `json:"orderId"`
	Total   decimal.Decimal `json:"total"`
	Bill    billing.Bill    `json:"bill"`
	Skipped []SkippedLine   `json:"skipped,omitempty"`
}

// OrderLineDetail is a ledger line joined with its menu item name. Name
// falls back to a placeholder when the item has since been deleted.
type OrderLineDetail struct {
	ItemID      int64           `json:"itemId"`
	Name        string          `json:"name"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// OrderDetail represents an order header with its lines.
type OrderDetail struct {
	Order Order             `json:"order"`
	Lines []OrderLineDetail `json:"lines"`
}

// LedgerEntry is one row of the administrative order browse view.
type LedgerEntry struct {
	OrderID     int64           `json:"orderId"`
	ItemName    string          `json:"itemName"`
	Quantity    int             `json:"quantity"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	OrderDate   time.Time       `json:"orderDate"`
}

// DeleteOrdersRequest represents the request payload for deleting orders.
// All deletes the entire ledger; otherwise OrderIDs selects the orders to
// remove. Confirm must be set either way.
type DeleteOrdersRequest struct {
	OrderIDs []int64 `json:"orderIds,omitempty"`
	All      bool    `json:"all,omitempty"`
	Confirm  bool    `json:"confirm"`
}
