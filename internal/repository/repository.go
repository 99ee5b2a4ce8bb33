package repository

import (
	"context"

	"cafe-pos/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// MenuRepository defines the interface for menu catalog data access.
type MenuRepository interface {
	// GetAll retrieves the full menu, ordered by category then name so that
	// category grouping is contiguous for callers that render it that way.
	GetAll(ctx context.Context) ([]model.MenuItem, error)

	// GetByID retrieves a single menu item. Returns (nil, nil) when the item
	// does not exist.
	GetByID(ctx context.Context, id int64) (*model.MenuItem, error)

	// GetByIDs retrieves multiple menu items by their IDs. Missing IDs are
	// simply absent from the result.
	GetByIDs(ctx context.Context, ids []int64) ([]model.MenuItem, error)

	// Create inserts a new menu item and fills in its generated ID.
	Create(ctx context.Context, item *model.MenuItem) error

	// Delete removes the menu items with the given IDs and reports how many
	// rows were deleted. Historical order lines are left untouched.
	Delete(ctx context.Context, ids []int64) (int64, error)
}

// OrderRepository defines the interface for order ledger data access.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order header within the provided transaction
	// and fills in its generated ID.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderLines inserts multiple order lines within the provided transaction.
	CreateOrderLines(ctx context.Context, tx pgx.Tx, lines []model.OrderLine) error

	// GetByID retrieves an order header with its lines joined to item names.
	// Returns (nil, nil, nil) when the order does not exist.
	GetByID(ctx context.Context, id int64) (*model.Order, []model.OrderLineDetail, error)

	// ListLedger retrieves ledger rows for the administrative browse view,
	// newest orders first.
	ListLedger(ctx context.Context, limit, offset int) ([]model.LedgerEntry, error)

	// Delete removes the orders with the given IDs (lines cascade) and
	// reports how many orders were deleted.
	Delete(ctx context.Context, orderIDs []int64) (int64, error)

	// DeleteAll empties the order ledger and reports how many orders were deleted.
	DeleteAll(ctx context.Context) (int64, error)
}

// AnalyticsRepository defines read-only aggregate queries over the ledger.
type AnalyticsRepository interface {
	// TodaySales returns the sum of today's order totals.
	TodaySales(ctx context.Context) (decimal.Decimal, error)

	// TodayOrderCount returns the number of orders placed today.
	TodayOrderCount(ctx context.Context) (int, error)

	// TopItems returns the n best-selling items by quantity sold.
	TopItems(ctx context.Context, n int) ([]model.ItemSales, error)

	// SalesByCategory returns pre-tax sales grouped by menu category.
	SalesByCategory(ctx context.Context) ([]model.CategorySales, error)

	// TrailingWeekSales returns per-day totals for the trailing 7 days.
	TrailingWeekSales(ctx context.Context) ([]model.DailySales, error)
}

// AdminRepository defines the interface for administrator credential access.
type AdminRepository interface {
	// GetCredentials retrieves the stored credentials for a username.
	// Returns (nil, nil) when the user does not exist.
	GetCredentials(ctx context.Context, username string) (*model.AdminCredentials, error)
}
