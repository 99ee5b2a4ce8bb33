package integration

import (
	"context"
	"testing"

	"cafe-pos/internal/model"
	"cafe-pos/internal/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewMenuRepository(testDB.Pool, logger)

	ctx := context.Background()

	t.Run("GetAll returns items grouped by category", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedMenuItems(t, testDB.Pool)

		items, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, items, 5)

		// Categories must be contiguous: Bakery rows first, then Coffee.
		assert.Equal(t, "Bakery", items[0].Category)
		assert.Equal(t, "Bakery", items[1].Category)
		assert.Equal(t, "Coffee", items[2].Category)
	})

	t.Run("GetByID returns correct item", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		ids := SeedMenuItems(t, testDB.Pool)

		item, err := repo.GetByID(ctx, ids["Espresso"])
		require.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, "Espresso", item.Name)
		assert.True(t, item.Price.Equal(decimal.RequireFromString("150.00")))
	})

	t.Run("GetByID returns nil for non-existent item", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		item, err := repo.GetByID(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, item)
	})

	t.Run("GetByIDs returns only existing items", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		ids := SeedMenuItems(t, testDB.Pool)

		items, err := repo.GetByIDs(ctx, []int64{ids["Espresso"], ids["Latte"], 999999})
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("Create assigns id and created_at", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		item := &model.MenuItem{
			Name:     "Mocha",
			Price:    decimal.RequireFromString("190.00"),
			Category: "Coffee",
		}
		require.NoError(t, repo.Create(ctx, item))
		assert.NotZero(t, item.ID)
		assert.False(t, item.CreatedAt.IsZero())

		fetched, err := repo.GetByID(ctx, item.ID)
		require.NoError(t, err)
		require.NotNil(t, fetched)
		assert.Equal(t, "Mocha", fetched.Name)
	})

	t.Run("Delete removes selected items", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		ids := SeedMenuItems(t, testDB.Pool)

		deleted, err := repo.Delete(ctx, []int64{ids["Espresso"], ids["Latte"]})
		require.NoError(t, err)
		assert.Equal(t, int64(2), deleted)

		item, err := repo.GetByID(ctx, ids["Espresso"])
		require.NoError(t, err)
		assert.Nil(t, item)
	})
}

func TestOrderRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	orderRepo := repository.NewOrderRepository(testDB.Pool, logger)
	menuRepo := repository.NewMenuRepository(testDB.Pool, logger)

	ctx := context.Background()

	createOrder := func(t *testing.T, ids map[string]int64, total string) int64 {
		t.Helper()

		tx, err := orderRepo.BeginTx(ctx)
		require.NoError(t, err)

		order := &model.Order{TotalAmount: decimal.RequireFromString(total)}
		require.NoError(t, orderRepo.CreateOrder(ctx, tx, order))

		lines := []model.OrderLine{
			{OrderID: order.ID, ItemID: ids["Espresso"], Quantity: 2, TotalAmount: decimal.RequireFromString("300.00")},
			{OrderID: order.ID, ItemID: ids["Croissant"], Quantity: 1, TotalAmount: decimal.RequireFromString("90.00")},
		}
		require.NoError(t, orderRepo.CreateOrderLines(ctx, tx, lines))
		require.NoError(t, tx.Commit(ctx))

		return order.ID
	}

	t.Run("create and fetch round trip", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		ids := SeedMenuItems(t, testDB.Pool)

		orderID := createOrder(t, ids, "409.50")

		order, lines, err := orderRepo.GetByID(ctx, orderID)
		require.NoError(t, err)
		require.NotNil(t, order)
		assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("409.50")))
		require.Len(t, lines, 2)
	})

	t.Run("rollback leaves no rows behind", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		tx, err := orderRepo.BeginTx(ctx)
		require.NoError(t, err)

		order := &model.Order{TotalAmount: decimal.RequireFromString("100.00")}
		require.NoError(t, orderRepo.CreateOrder(ctx, tx, order))
		require.NoError(t, tx.Rollback(ctx))

		fetched, _, err := orderRepo.GetByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Nil(t, fetched)
	})

	t.Run("deleted menu item keeps ledger history", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		ids := SeedMenuItems(t, testDB.Pool)

		orderID := createOrder(t, ids, "409.50")

		_, err := menuRepo.Delete(ctx, []int64{ids["Espresso"]})
		require.NoError(t, err)

		_, lines, err := orderRepo.GetByID(ctx, orderID)
		require.NoError(t, err)
		require.Len(t, lines, 2)

		names := []string{lines[0].Name, lines[1].Name}
		assert.Contains(t, names, "(deleted item)")
		assert.Contains(t, names, "Croissant")
	})

	t.Run("ListLedger returns one row per line", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		ids := SeedMenuItems(t, testDB.Pool)

		createOrder(t, ids, "409.50")
		createOrder(t, ids, "409.50")

		entries, err := orderRepo.ListLedger(ctx, 50, 0)
		require.NoError(t, err)
		assert.Len(t, entries, 4)
	})

	t.Run("Delete cascades to order lines", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		ids := SeedMenuItems(t, testDB.Pool)

		orderID := createOrder(t, ids, "409.50")

		deleted, err := orderRepo.Delete(ctx, []int64{orderID})
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		var lineCount int
		err = testDB.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM order_lines WHERE order_id = $1", orderID).Scan(&lineCount)
		require.NoError(t, err)
		assert.Zero(t, lineCount)
	})

	t.Run("DeleteAll empties the ledger", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		ids := SeedMenuItems(t, testDB.Pool)

		createOrder(t, ids, "409.50")
		createOrder(t, ids, "409.50")

		deleted, err := orderRepo.DeleteAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), deleted)

		entries, err := orderRepo.ListLedger(ctx, 50, 0)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestAnalyticsRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	orderRepo := repository.NewOrderRepository(testDB.Pool, logger)
	analyticsRepo := repository.NewAnalyticsRepository(testDB.Pool, logger)

	ctx := context.Background()

	seedOrder := func(t *testing.T, itemID int64, qty int, lineTotal, orderTotal string) {
		t.Helper()

		tx, err := orderRepo.BeginTx(ctx)
		require.NoError(t, err)

		order := &model.Order{TotalAmount: decimal.RequireFromString(orderTotal)}
		require.NoError(t, orderRepo.CreateOrder(ctx, tx, order))
		require.NoError(t, orderRepo.CreateOrderLines(ctx, tx, []model.OrderLine{
			{OrderID: order.ID, ItemID: itemID, Quantity: qty, TotalAmount: decimal.RequireFromString(lineTotal)},
		}))
		require.NoError(t, tx.Commit(ctx))
	}

	t.Run("empty store reports zeroes", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		sales, err := analyticsRepo.TodaySales(ctx)
		require.NoError(t, err)
		assert.True(t, sales.IsZero())

		count, err := analyticsRepo.TodayOrderCount(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)

		items, err := analyticsRepo.TopItems(ctx, 5)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("today's totals", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		ids := SeedMenuItems(t, testDB.Pool)

		seedOrder(t, ids["Espresso"], 2, "300.00", "315.00")
		seedOrder(t, ids["Latte"], 1, "180.00", "189.00")

		sales, err := analyticsRepo.TodaySales(ctx)
		require.NoError(t, err)
		assert.True(t, sales.Equal(decimal.RequireFromString("504.00")), "sales = %s", sales)

		count, err := analyticsRepo.TodayOrderCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("top items ranked by quantity", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		ids := SeedMenuItems(t, testDB.Pool)

		seedOrder(t, ids["Espresso"], 5, "750.00", "787.50")
		seedOrder(t, ids["Latte"], 2, "360.00", "378.00")

		items, err := analyticsRepo.TopItems(ctx, 5)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Espresso", items[0].Name)
		assert.Equal(t, int64(5), items[0].Quantity)
	})

	t.Run("sales by category", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		ids := SeedMenuItems(t, testDB.Pool)

		seedOrder(t, ids["Espresso"], 2, "300.00", "315.00")
		seedOrder(t, ids["Croissant"], 1, "90.00", "94.50")

		results, err := analyticsRepo.SalesByCategory(ctx)
		require.NoError(t, err)
		require.Len(t, results, 2)

		byCategory := make(map[string]decimal.Decimal, len(results))
		for _, r := range results {
			byCategory[r.Category] = r.Amount
		}
		assert.True(t, byCategory["Coffee"].Equal(decimal.RequireFromString("300.00")))
		assert.True(t, byCategory["Bakery"].Equal(decimal.RequireFromString("90.00")))
	})

	t.Run("trailing week includes today", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		ids := SeedMenuItems(t, testDB.Pool)

		seedOrder(t, ids["Espresso"], 2, "300.00", "315.00")

		results, err := analyticsRepo.TrailingWeekSales(ctx)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.True(t, results[0].Amount.Equal(decimal.RequireFromString("315.00")))
	})
}

func TestAdminRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewAdminRepository(testDB.Pool, logger)

	ctx := context.Background()

	t.Run("GetCredentials returns stored hash", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedAdmin(t, testDB.Pool, "admin", "$2a$10$abcdefghijklmnopqrstuv")

		creds, err := repo.GetCredentials(ctx, "admin")
		require.NoError(t, err)
		require.NotNil(t, creds)
		assert.Equal(t, "admin", creds.Username)
		assert.Equal(t, "$2a$10$abcdefghijklmnopqrstuv", creds.PasswordHash)
	})

	t.Run("GetCredentials returns nil for unknown user", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		creds, err := repo.GetCredentials(ctx, "ghost")
		require.NoError(t, err)
		assert.Nil(t, creds)
	})
}
