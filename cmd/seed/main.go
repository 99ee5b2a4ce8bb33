// Command seed populates a development database with a starter menu and an
// administrator account. Existing rows are left alone; reruns are safe.
package main

import (
	"context"
	"fmt"
	"os"

	"cafe-pos/internal/config"
	"cafe-pos/internal/database"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type seedItem struct {
	name     string
	price    string
	category string
}

var menu = []seedItem{
	{"Espresso", "150.00", "Coffee"},
	{"Latte", "180.00", "Coffee"},
	{"Cappuccino", "170.00", "Coffee"},
	{"Masala Chai", "90.00", "Tea"},
	{"Green Tea", "80.00", "Tea"},
	{"Croissant", "90.00", "Bakery"},
	{"Blueberry Muffin", "110.00", "Bakery"},
	{"Veg Sandwich", "140.00", "Snacks"},
	{"Paneer Roll", "160.00", "Snacks"},
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := context.Background()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	for _, item := range menu {
		price, err := decimal.NewFromString(item.price)
		if err != nil {
			return fmt.Errorf("bad seed price for %s: %w", item.name, err)
		}
		_, err = pool.Exec(ctx, `
			INSERT INTO menu_items (name, price, category)
			SELECT $1, $2, $3
			WHERE NOT EXISTS (SELECT 1 FROM menu_items WHERE name = $1)
		`, item.name, price, item.category)
		if err != nil {
			return fmt.Errorf("failed to seed menu item %s: %w", item.name, err)
		}
	}
	logger.Info().Int("count", len(menu)).Msg("menu seeded")

	username := envOr("SEED_ADMIN_USER", "admin")
	password := envOr("SEED_ADMIN_PASSWORD", "")
	if password == "" {
		logger.Info().Msg("SEED_ADMIN_PASSWORD not set, skipping admin account")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO admins (username, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash
	`, username, string(hash))
	if err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}
	logger.Info().Str("username", username).Msg("admin account seeded")

	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
