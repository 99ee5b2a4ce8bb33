package repository

import (
	"context"
	"fmt"

	"cafe-pos/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *orderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// CreateOrder inserts a new order header within the provided transaction.
func (r *orderRepository) CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	query := `
		INSERT INTO orders (total_amount)
		VALUES ($1)
		RETURNING id, created_at
	`

	err := tx.QueryRow(ctx, query, order.TotalAmount).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Debug().
		Int64("order_id", order.ID).
		Msg("order created successfully")

	return nil
}

// CreateOrderLines inserts multiple order lines within the provided transaction.
func (r *orderRepository) CreateOrderLines(ctx context.Context, tx pgx.Tx, lines []model.OrderLine) error {
	if len(lines) == 0 {
		return nil
	}

	query := `
		INSERT INTO order_lines (order_id, item_id, quantity, total_amount)
		VALUES ($1, $2, $3, $4)
	`

	batch := &pgx.Batch{}
	for _, line := range lines {
		batch.Queue(query, line.OrderID, line.ItemID, line.Quantity, line.TotalAmount)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(lines); i++ {
		_, err := results.Exec()
		if err != nil {
			r.logger.Error().
				Err(err).
				Int64("order_id", lines[i].OrderID).
				Int64("item_id", lines[i].ItemID).
				Msg("failed to create order line")
			return fmt.Errorf("failed to create order line: %w", err)
		}
	}

	r.logger.Debug().
		Int("count", len(lines)).
		Msg("order lines created successfully")

	return nil
}

// GetByID retrieves an order header with its lines joined to item names.
// Lines for since-deleted menu items are still returned, with a placeholder
// name and the unit price derived from the recorded line total.
func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, []model.OrderLineDetail, error) {
	orderQuery := `
		SELECT id, total_amount, created_at
		FROM orders
		WHERE id = $1
	`

	var order model.Order
	err := r.pool.QueryRow(ctx, orderQuery, id).Scan(
		&order.ID,
		&order.TotalAmount,
		&order.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int64("order_id", id).Msg("order not found")
			return nil, nil, nil
		}
		r.logger.Error().Err(err).Int64("order_id", id).Msg("failed to query order")
		return nil, nil, fmt.Errorf("failed to query order: %w", err)
	}

	linesQuery := `
		SELECT
			l.item_id,
			COALESCE(m.name, '(deleted item)'),
			ROUND(l.total_amount / l.quantity, 2),
			l.quantity,
			l.total_amount
		FROM order_lines l
		LEFT JOIN menu_items m ON m.id = l.item_id
		WHERE l.order_id = $1
		ORDER BY l.id
	`

	rows, err := r.pool.Query(ctx, linesQuery, id)
	if err != nil {
		r.logger.Error().
			Err(err).
			Int64("order_id", id).
			Msg("failed to query order lines")
		return nil, nil, fmt.Errorf("failed to query order lines: %w", err)
	}
	defer rows.Close()

	var lines []model.OrderLineDetail
	for rows.Next() {
		var line model.OrderLineDetail
		err := rows.Scan(&line.ItemID, &line.Name, &line.UnitPrice, &line.Quantity, &line.TotalAmount)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order line row")
			return nil, nil, fmt.Errorf("failed to scan order line: %w", err)
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order line rows")
		return nil, nil, fmt.Errorf("error iterating order lines: %w", err)
	}

	return &order, lines, nil
}

// ListLedger retrieves ledger rows for the administrative browse view.
func (r *orderRepository) ListLedger(ctx context.Context, limit, offset int) ([]model.LedgerEntry, error) {
	query := `
		SELECT
			l.order_id,
			COALESCE(m.name, '(deleted item)'),
			l.quantity,
			l.total_amount,
			o.created_at
		FROM order_lines l
		JOIN orders o ON o.id = l.order_id
		LEFT JOIN menu_items m ON m.id = l.item_id
		ORDER BY o.created_at DESC, l.id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		r.logger.Error().Err(err).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to query order ledger")
		return nil, fmt.Errorf("failed to query order ledger: %w", err)
	}
	defer rows.Close()

	var entries []model.LedgerEntry
	for rows.Next() {
		var entry model.LedgerEntry
		err := rows.Scan(&entry.OrderID, &entry.ItemName, &entry.Quantity, &entry.TotalAmount, &entry.OrderDate)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan ledger row")
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating ledger rows")
		return nil, fmt.Errorf("error iterating ledger entries: %w", err)
	}

	return entries, nil
}

// Delete removes the orders with the given IDs; their lines cascade.
func (r *orderRepository) Delete(ctx context.Context, orderIDs []int64) (int64, error) {
	if len(orderIDs) == 0 {
		return 0, nil
	}

	query := `DELETE FROM orders WHERE id = ANY($1)`

	tag, err := r.pool.Exec(ctx, query, orderIDs)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(orderIDs)).Msg("failed to delete orders")
		return 0, fmt.Errorf("failed to delete orders: %w", err)
	}

	r.logger.Info().
		Int64("deleted", tag.RowsAffected()).
		Int("requested", len(orderIDs)).
		Msg("orders deleted")

	return tag.RowsAffected(), nil
}

// DeleteAll empties the order ledger.
func (r *orderRepository) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM orders`)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to delete all orders")
		return 0, fmt.Errorf("failed to delete all orders: %w", err)
	}

	r.logger.Info().
		Int64("deleted", tag.RowsAffected()).
		Msg("all orders deleted")

	return tag.RowsAffected(), nil
}
