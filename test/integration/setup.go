package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cafe-pos/internal/database"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	// Get connection string
	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	// Create connection pool with the decimal codec registered, matching
	// what database.NewPool does for the real server.
	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	// Apply the embedded schema
	if err := database.Migrate(ctx, pool, zerolog.Nop()); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// SeedMenuItems inserts test menu data and returns the generated IDs keyed
// by item name.
func SeedMenuItems(t *testing.T, pool *pgxpool.Pool) map[string]int64 {
	t.Helper()

	ctx := context.Background()

	items := []struct {
		name     string
		price    string
		category string
	}{
		{"Espresso", "150.00", "Coffee"},
		{"Latte", "180.00", "Coffee"},
		{"Cappuccino", "170.00", "Coffee"},
		{"Croissant", "90.00", "Bakery"},
		{"Blueberry Muffin", "110.00", "Bakery"},
	}

	ids := make(map[string]int64, len(items))
	for _, item := range items {
		var id int64
		err := pool.QueryRow(ctx,
			"INSERT INTO menu_items (name, price, category) VALUES ($1, $2, $3) RETURNING id",
			item.name, decimal.RequireFromString(item.price), item.category,
		).Scan(&id)
		if err != nil {
			t.Fatalf("failed to seed menu item %s: %v", item.name, err)
		}
		ids[item.name] = id
	}

	return ids
}

// SeedAdmin inserts an administrator account with the given bcrypt hash.
func SeedAdmin(t *testing.T, pool *pgxpool.Pool, username, passwordHash string) {
	t.Helper()

	ctx := context.Background()

	_, err := pool.Exec(ctx,
		"INSERT INTO admins (username, password_hash) VALUES ($1, $2)",
		username, passwordHash,
	)
	if err != nil {
		t.Fatalf("failed to seed admin %s: %v", username, err)
	}
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"order_lines", "orders", "menu_items", "admins"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
