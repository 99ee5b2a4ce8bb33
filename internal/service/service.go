package service

import (
	"context"

	"cafe-pos/internal/billing"
	"cafe-pos/internal/model"
)

// OrderService defines operations over the order ledger.
type OrderService interface {
	// CreateOrder validates the requested lines against the catalog, prices
	// them, and persists the valid ones atomically. Lines referencing unknown
	// items are reported in the response, not treated as a hard failure; the
	// response carries a nil order ID when nothing was persisted.
	CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error)

	// CalculateBill prices the requested lines without persisting anything.
	CalculateBill(ctx context.Context, items []model.OrderLineRequest) (*billing.Bill, []model.SkippedLine, error)

	// GetOrder retrieves an order with its lines.
	GetOrder(ctx context.Context, id int64) (*model.OrderDetail, error)

	// ListLedger retrieves ledger rows for the administrative browse view.
	ListLedger(ctx context.Context, limit, offset int) ([]model.LedgerEntry, error)

	// DeleteOrders deletes selected orders, or the whole ledger when req.All
	// is set. The request must carry an explicit confirmation.
	DeleteOrders(ctx context.Context, req *model.DeleteOrdersRequest) (int64, error)

	// SaveReceipt renders the order's bill to a text file and returns its path.
	SaveReceipt(ctx context.Context, orderID int64) (string, error)
}

// MenuService defines operations for menu catalog management.
type MenuService interface {
	// GetMenu retrieves the full menu.
	GetMenu(ctx context.Context) ([]model.MenuItem, error)

	// GetItem retrieves a single menu item by ID.
	GetItem(ctx context.Context, id int64) (*model.MenuItem, error)

	// CreateItem adds a new menu item.
	CreateItem(ctx context.Context, req *model.CreateMenuItemRequest) (*model.MenuItem, error)

	// DeleteItems removes menu items. The request must carry an explicit
	// confirmation. Historical order lines keep referencing the deleted IDs.
	DeleteItems(ctx context.Context, req *model.DeleteMenuItemsRequest) (int64, error)
}

// AnalyticsService defines read-only sales reporting.
type AnalyticsService interface {
	// Summary returns today's total sales and order count.
	Summary(ctx context.Context) (*model.SalesSummary, error)

	// TopItems returns the n best-selling items; n is clamped to a sane range.
	TopItems(ctx context.Context, n int) ([]model.ItemSales, error)

	// SalesByCategory returns pre-tax sales grouped by category.
	SalesByCategory(ctx context.Context) ([]model.CategorySales, error)

	// TrailingWeekSales returns per-day totals for the trailing 7 days.
	TrailingWeekSales(ctx context.Context) ([]model.DailySales, error)
}

// AuthService defines administrator authentication.
type AuthService interface {
	// Login verifies an administrator's credentials and issues a session
	// token for the administrative endpoints. Unknown usernames and wrong
	// passwords both yield model.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, error)

	// Validate reports whether the token belongs to a live admin session.
	Validate(token string) bool
}
