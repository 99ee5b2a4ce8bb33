package repository

import (
	"context"
	"fmt"

	"cafe-pos/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// adminRepository implements the AdminRepository interface using PostgreSQL.
type adminRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewAdminRepository creates a new PostgreSQL-backed admin credential repository.
func NewAdminRepository(pool *pgxpool.Pool, logger zerolog.Logger) AdminRepository {
	return &adminRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "admin").Logger(),
	}
}

// GetCredentials retrieves the stored credentials for a username.
func (r *adminRepository) GetCredentials(ctx context.Context, username string) (*model.AdminCredentials, error) {
	query := `
		SELECT id, username, password_hash, created_at
		FROM admins
		WHERE username = $1
	`

	var creds model.AdminCredentials
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&creds.ID,
		&creds.Username,
		&creds.PasswordHash,
		&creds.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			// Not logged at warn level; callers collapse unknown user and
			// wrong password into one result.
			r.logger.Debug().Msg("admin user not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Msg("failed to query admin credentials")
		return nil, fmt.Errorf("failed to query admin credentials: %w", err)
	}

	return &creds, nil
}
