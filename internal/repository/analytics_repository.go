package repository

import (
	"context"
	"fmt"

	"cafe-pos/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// analyticsRepository implements the AnalyticsRepository interface using
// PostgreSQL aggregate queries. All methods are read-only.
type analyticsRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewAnalyticsRepository creates a new PostgreSQL-backed analytics repository.
func NewAnalyticsRepository(pool *pgxpool.Pool, logger zerolog.Logger) AnalyticsRepository {
	return &analyticsRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "analytics").Logger(),
	}
}

// TodaySales returns the sum of today's order totals.
func (r *analyticsRepository) TodaySales(ctx context.Context) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE created_at::date = CURRENT_DATE
	`

	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query).Scan(&total); err != nil {
		r.logger.Error().Err(err).Msg("failed to query today's sales")
		return decimal.Zero, fmt.Errorf("failed to query today's sales: %w", err)
	}

	return total, nil
}

// TodayOrderCount returns the number of orders placed today.
func (r *analyticsRepository) TodayOrderCount(ctx context.Context) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM orders
		WHERE created_at::date = CURRENT_DATE
	`

	var count int
	if err := r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		r.logger.Error().Err(err).Msg("failed to query today's order count")
		return 0, fmt.Errorf("failed to query today's order count: %w", err)
	}

	return count, nil
}

// TopItems returns the n best-selling items by quantity sold. Lines whose
// menu item has since been deleted are reported under a placeholder name.
func (r *analyticsRepository) TopItems(ctx context.Context, n int) ([]model.ItemSales, error) {
	query := `
		SELECT COALESCE(m.name, '(deleted item)'), SUM(l.quantity) AS total_quantity
		FROM order_lines l
		LEFT JOIN menu_items m ON m.id = l.item_id
		GROUP BY l.item_id, m.name
		ORDER BY total_quantity DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, n)
	if err != nil {
		r.logger.Error().Err(err).Int("limit", n).Msg("failed to query top items")
		return nil, fmt.Errorf("failed to query top items: %w", err)
	}
	defer rows.Close()

	var results []model.ItemSales
	for rows.Next() {
		var row model.ItemSales
		if err := rows.Scan(&row.Name, &row.Quantity); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan top items row")
			return nil, fmt.Errorf("failed to scan top items row: %w", err)
		}
		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating top items rows")
		return nil, fmt.Errorf("error iterating top items rows: %w", err)
	}

	return results, nil
}

// SalesByCategory returns pre-tax sales grouped by menu category.
func (r *analyticsRepository) SalesByCategory(ctx context.Context) ([]model.CategorySales, error) {
	query := `
		SELECT COALESCE(m.category, 'Uncategorised'), SUM(l.total_amount) AS total_sales
		FROM order_lines l
		LEFT JOIN menu_items m ON m.id = l.item_id
		GROUP BY m.category
		ORDER BY total_sales DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query sales by category")
		return nil, fmt.Errorf("failed to query sales by category: %w", err)
	}
	defer rows.Close()

	var results []model.CategorySales
	for rows.Next() {
		var row model.CategorySales
		if err := rows.Scan(&row.Category, &row.Amount); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan category sales row")
			return nil, fmt.Errorf("failed to scan category sales row: %w", err)
		}
		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating category sales rows")
		return nil, fmt.Errorf("error iterating category sales rows: %w", err)
	}

	return results, nil
}

// TrailingWeekSales returns per-day totals for the trailing 7 days, oldest
// first. Days with no orders are absent from the result.
func (r *analyticsRepository) TrailingWeekSales(ctx context.Context) ([]model.DailySales, error) {
	query := `
		SELECT created_at::date AS day, SUM(total_amount) AS total
		FROM orders
		WHERE created_at >= CURRENT_DATE - INTERVAL '7 days'
		GROUP BY day
		ORDER BY day
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query trailing week sales")
		return nil, fmt.Errorf("failed to query trailing week sales: %w", err)
	}
	defer rows.Close()

	var results []model.DailySales
	for rows.Next() {
		var row model.DailySales
		if err := rows.Scan(&row.Date, &row.Amount); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan daily sales row")
			return nil, fmt.Errorf("failed to scan daily sales row: %w", err)
		}
		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating daily sales rows")
		return nil, fmt.Errorf("error iterating daily sales rows: %w", err)
	}

	return results, nil
}
