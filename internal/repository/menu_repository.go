package repository

import (
	"context"
	"fmt"

	"cafe-pos/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// menuRepository implements the MenuRepository interface using PostgreSQL.
type menuRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewMenuRepository creates a new PostgreSQL-backed menu repository.
func NewMenuRepository(pool *pgxpool.Pool, logger zerolog.Logger) MenuRepository {
	return &menuRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "menu").Logger(),
	}
}

// GetAll retrieves the full menu ordered by category then name.
func (r *menuRepository) GetAll(ctx context.Context) ([]model.MenuItem, error) {
	query := `
		SELECT id, name, price, category, created_at
		FROM menu_items
		ORDER BY category, name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query menu items")
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	var items []model.MenuItem
	for rows.Next() {
		var item model.MenuItem
		err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Category, &item.CreatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan menu item row")
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating menu item rows")
		return nil, fmt.Errorf("error iterating menu items: %w", err)
	}

	return items, nil
}

// GetByID retrieves a single menu item by its ID.
func (r *menuRepository) GetByID(ctx context.Context, id int64) (*model.MenuItem, error) {
	query := `
		SELECT id, name, price, category, created_at
		FROM menu_items
		WHERE id = $1
	`

	var item model.MenuItem
	err := r.pool.QueryRow(ctx, query, id).Scan(&item.ID, &item.Name, &item.Price, &item.Category, &item.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int64("item_id", id).Msg("menu item not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("item_id", id).Msg("failed to query menu item")
		return nil, fmt.Errorf("failed to query menu item: %w", err)
	}

	return &item, nil
}

// GetByIDs retrieves multiple menu items by their IDs.
func (r *menuRepository) GetByIDs(ctx context.Context, ids []int64) ([]model.MenuItem, error) {
	if len(ids) == 0 {
		return []model.MenuItem{}, nil
	}

	query := `
		SELECT id, name, price, category, created_at
		FROM menu_items
		WHERE id = ANY($1)
	`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to query menu items by IDs")
		return nil, fmt.Errorf("failed to query menu items by IDs: %w", err)
	}
	defer rows.Close()

	var items []model.MenuItem
	for rows.Next() {
		var item model.MenuItem
		err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Category, &item.CreatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan menu item row")
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating menu item rows")
		return nil, fmt.Errorf("error iterating menu items: %w", err)
	}

	return items, nil
}

// Create inserts a new menu item and fills in its generated ID.
func (r *menuRepository) Create(ctx context.Context, item *model.MenuItem) error {
	query := `
		INSERT INTO menu_items (name, price, category)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query, item.Name, item.Price, item.Category).
		Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("name", item.Name).Msg("failed to create menu item")
		return fmt.Errorf("failed to create menu item: %w", err)
	}

	r.logger.Debug().
		Int64("item_id", item.ID).
		Str("name", item.Name).
		Msg("menu item created successfully")

	return nil
}

// Delete removes the menu items with the given IDs.
func (r *menuRepository) Delete(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query := `DELETE FROM menu_items WHERE id = ANY($1)`

	tag, err := r.pool.Exec(ctx, query, ids)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to delete menu items")
		return 0, fmt.Errorf("failed to delete menu items: %w", err)
	}

	r.logger.Info().
		Int64("deleted", tag.RowsAffected()).
		Int("requested", len(ids)).
		Msg("menu items deleted")

	return tag.RowsAffected(), nil
}
