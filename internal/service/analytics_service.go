package service

import (
	"context"
	"fmt"

	"cafe-pos/internal/model"
	"cafe-pos/internal/repository"

	"github.com/rs/zerolog"
)

// analyticsService implements AnalyticsService.
type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	logger        zerolog.Logger
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository, logger zerolog.Logger) AnalyticsService {
	return &analyticsService{
		analyticsRepo: analyticsRepo,
		logger:        logger.With().Str("service", "analytics").Logger(),
	}
}

// Summary returns today's total sales and order count.
func (s *analyticsService) Summary(ctx context.Context) (*model.SalesSummary, error) {
	sales, err := s.analyticsRepo.TodaySales(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get today's sales")
		return nil, fmt.Errorf("failed to get today's sales: %w", err)
	}

	count, err := s.analyticsRepo.TodayOrderCount(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get today's order count")
		return nil, fmt.Errorf("failed to get today's order count: %w", err)
	}

	return &model.SalesSummary{
		TotalSales: sales,
		OrderCount: count,
	}, nil
}

// TopItems returns the n best-selling items; n defaults to 5 and is capped
// at 20.
func (s *analyticsService) TopItems(ctx context.Context, n int) ([]model.ItemSales, error) {
	if n <= 0 {
		n = 5
	}
	if n > 20 {
		n = 20
	}

	items, err := s.analyticsRepo.TopItems(ctx, n)
	if err != nil {
		s.logger.Error().Err(err).Int("limit", n).Msg("failed to get top items")
		return nil, fmt.Errorf("failed to get top items: %w", err)
	}

	return items, nil
}

// SalesByCategory returns pre-tax sales grouped by category.
func (s *analyticsService) SalesByCategory(ctx context.Context) ([]model.CategorySales, error) {
	results, err := s.analyticsRepo.SalesByCategory(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get sales by category")
		return nil, fmt.Errorf("failed to get sales by category: %w", err)
	}

	return results, nil
}

// TrailingWeekSales returns per-day totals for the trailing 7 days.
func (s *analyticsService) TrailingWeekSales(ctx context.Context) ([]model.DailySales, error) {
	results, err := s.analyticsRepo.TrailingWeekSales(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get trailing week sales")
		return nil, fmt.Errorf("failed to get trailing week sales: %w", err)
	}

	return results, nil
}
