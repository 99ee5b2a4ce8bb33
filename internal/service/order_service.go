package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"cafe-pos/internal/billing"
	"cafe-pos/internal/model"
	"cafe-pos/internal/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo  repository.OrderRepository
	menuRepo   repository.MenuRepository
	taxRate    decimal.Decimal
	receiptDir string
	logger     zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	menuRepo repository.MenuRepository,
	taxRate decimal.Decimal,
	receiptDir string,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:  orderRepo,
		menuRepo:   menuRepo,
		taxRate:    taxRate,
		receiptDir: receiptDir,
		logger:     logger.With().Str("service", "order").Logger(),
	}
}

// resolveLines validates quantities, looks the requested items up in the
// catalog, and splits the request into priceable lines and a skip report.
// Unknown item IDs are skipped, not fatal; non-positive quantities are.
// Empty input resolves to no lines, which prices to a zero bill.
func (s *orderService) resolveLines(ctx context.Context, items []model.OrderLineRequest) ([]billing.Line, []model.SkippedLine, error) {
	if len(items) == 0 {
		return nil, nil, nil
	}

	ids := make([]int64, len(items))
	for i, item := range items {
		if item.Quantity <= 0 {
			s.logger.Warn().
				Int("item_index", i).
				Int64("item_id", item.ItemID).
				Int("quantity", item.Quantity).
				Msg("invalid quantity")
			return nil, nil, model.ErrInvalidQuantity
		}
		ids[i] = item.ItemID
	}

	catalog, err := s.menuRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve menu items: %w", err)
	}

	byID := make(map[int64]model.MenuItem, len(catalog))
	for _, item := range catalog {
		byID[item.ID] = item
	}

	var lines []billing.Line
	var skipped []model.SkippedLine
	for _, req := range items {
		item, ok := byID[req.ItemID]
		if !ok {
			s.logger.Warn().
				Int64("item_id", req.ItemID).
				Msg("requested item not in catalog, skipping line")
			skipped = append(skipped, model.SkippedLine{
				ItemID: req.ItemID,
				Reason: "item not found in menu",
			})
			continue
		}
		lines = append(lines, billing.Line{
			ItemID:    item.ID,
			Name:      item.Name,
			UnitPrice: item.Price,
			Quantity:  req.Quantity,
		})
	}

	return lines, skipped, nil
}

// CreateOrder validates, prices, and persists an order in one transaction.
func (s *orderService) CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("order request is nil")
	}

	lines, skipped, err := s.resolveLines(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	bill := billing.Calculate(lines, s.taxRate)

	// Empty order, or every line invalid: nothing to persist, and by contract
	// that is a "no order created" result rather than an error.
	if len(lines) == 0 {
		s.logger.Warn().
			Int("requested", len(req.Items)).
			Msg("no valid lines, order not created")
		return &model.OrderResponse{
			OrderID: nil,
			Total:   decimal.Zero,
			Bill:    bill,
			Skipped: skipped,
		}, nil
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	order := &model.Order{
		TotalAmount: bill.GrandTotal.Round(2),
	}

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Msg("failed to create order header")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	orderLines := make([]model.OrderLine, len(bill.Items))
	for i, item := range bill.Items {
		orderLines[i] = model.OrderLine{
			OrderID:     order.ID,
			ItemID:      item.ItemID,
			Quantity:    item.Quantity,
			TotalAmount: item.LineTotal,
		}
	}

	if err = s.orderRepo.CreateOrderLines(ctx, tx, orderLines); err != nil {
		s.logger.Error().
			Err(err).
			Int64("order_id", order.ID).
			Int("line_count", len(orderLines)).
			Msg("failed to create order lines")
		return nil, fmt.Errorf("failed to create order lines: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Int64("order_id", order.ID).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Int64("order_id", order.ID).
		Int("line_count", len(orderLines)).
		Int("skipped_count", len(skipped)).
		Str("total", order.TotalAmount.StringFixed(2)).
		Msg("order created successfully")

	orderID := order.ID
	return &model.OrderResponse{
		OrderID: &orderID,
		Total:   order.TotalAmount,
		Bill:    bill,
		Skipped: skipped,
	}, nil
}

// CalculateBill prices the requested lines without persisting anything.
// It shares the resolution and pricing path with CreateOrder, so a displayed
// bill always matches what an identical order would persist.
func (s *orderService) CalculateBill(ctx context.Context, items []model.OrderLineRequest) (*billing.Bill, []model.SkippedLine, error) {
	lines, skipped, err := s.resolveLines(ctx, items)
	if err != nil {
		return nil, nil, err
	}

	bill := billing.Calculate(lines, s.taxRate)
	return &bill, skipped, nil
}

// GetOrder retrieves an order with its lines.
func (s *orderService) GetOrder(ctx context.Context, id int64) (*model.OrderDetail, error) {
	order, lines, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("order_id", id).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil {
		s.logger.Debug().Int64("order_id", id).Msg("order not found")
		return nil, model.ErrOrderNotFound
	}

	return &model.OrderDetail{
		Order: *order,
		Lines: lines,
	}, nil
}

// ListLedger retrieves ledger rows for the administrative browse view.
func (s *orderService) ListLedger(ctx context.Context, limit, offset int) ([]model.LedgerEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}
	if offset < 0 {
		offset = 0
	}

	entries, err := s.orderRepo.ListLedger(ctx, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to list order ledger")
		return nil, fmt.Errorf("failed to list order ledger: %w", err)
	}

	return entries, nil
}

// DeleteOrders deletes selected orders or the whole ledger.
func (s *orderService) DeleteOrders(ctx context.Context, req *model.DeleteOrdersRequest) (int64, error) {
	if req == nil || !req.Confirm {
		return 0, model.ErrConfirmationRequired
	}

	if req.All {
		deleted, err := s.orderRepo.DeleteAll(ctx)
		if err != nil {
			s.logger.Error().Err(err).Msg("failed to delete all orders")
			return 0, fmt.Errorf("failed to delete all orders: %w", err)
		}
		return deleted, nil
	}

	if len(req.OrderIDs) == 0 {
		return 0, fmt.Errorf("order IDs are required when not deleting all")
	}

	deleted, err := s.orderRepo.Delete(ctx, req.OrderIDs)
	if err != nil {
		s.logger.Error().Err(err).Int("count", len(req.OrderIDs)).Msg("failed to delete orders")
		return 0, fmt.Errorf("failed to delete orders: %w", err)
	}

	return deleted, nil
}

// SaveReceipt renders the order's bill to a text file named after the order.
// The bill is reconstructed from the recorded line totals and the recorded
// grand total, so neither price changes nor tax rate changes made after the
// sale alter historical receipts.
func (s *orderService) SaveReceipt(ctx context.Context, orderID int64) (string, error) {
	detail, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return "", err
	}

	items := make([]billing.BillItem, len(detail.Lines))
	for i, line := range detail.Lines {
		items[i] = billing.BillItem{
			ItemID:    line.ItemID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			LineTotal: line.TotalAmount,
		}
	}
	bill := billing.Reconstruct(items, detail.Order.TotalAmount)

	if err := os.MkdirAll(s.receiptDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create receipt directory: %w", err)
	}

	path := filepath.Join(s.receiptDir, billing.ReceiptFileName(orderID))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create receipt file: %w", err)
	}
	defer file.Close()

	if err := billing.WriteReceipt(file, orderID, bill); err != nil {
		return "", fmt.Errorf("failed to write receipt: %w", err)
	}

	s.logger.Info().
		Int64("order_id", orderID).
		Str("path", path).
		Msg("receipt saved")

	return path, nil
}
