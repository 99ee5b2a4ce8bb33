package service

import (
	"context"
	"fmt"
	"strings"

	"cafe-pos/internal/model"
	"cafe-pos/internal/repository"

	"github.com/rs/zerolog"
)

// menuService implements MenuService.
type menuService struct {
	menuRepo repository.MenuRepository
	logger   zerolog.Logger
}

// NewMenuService creates a new menu service.
func NewMenuService(menuRepo repository.MenuRepository, logger zerolog.Logger) MenuService {
	return &menuService{
		menuRepo: menuRepo,
		logger:   logger.With().Str("service", "menu").Logger(),
	}
}

// GetMenu retrieves the full menu.
func (s *menuService) GetMenu(ctx context.Context) ([]model.MenuItem, error) {
	items, err := s.menuRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get menu")
		return nil, fmt.Errorf("failed to get menu: %w", err)
	}

	s.logger.Debug().Int("count", len(items)).Msg("retrieved menu")

	return items, nil
}

// GetItem retrieves a single menu item by ID.
func (s *menuService) GetItem(ctx context.Context, id int64) (*model.MenuItem, error) {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("item_id", id).Msg("failed to get menu item")
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}

	if item == nil {
		s.logger.Debug().Int64("item_id", id).Msg("menu item not found")
		return nil, model.ErrItemNotFound
	}

	return item, nil
}

// CreateItem adds a new menu item.
func (s *menuService) CreateItem(ctx context.Context, req *model.CreateMenuItemRequest) (*model.MenuItem, error) {
	if req == nil {
		return nil, fmt.Errorf("menu item request is nil")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, model.NewDomainError(model.ErrCodeInvalidInput, "Menu item name is required")
	}
	if req.Price.IsNegative() {
		return nil, model.NewDomainError(model.ErrCodeInvalidInput, "Menu item price must not be negative")
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = "Uncategorised"
	}

	item := &model.MenuItem{
		Name:     name,
		Price:    req.Price,
		Category: category,
	}

	if err := s.menuRepo.Create(ctx, item); err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("failed to create menu item")
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}

	s.logger.Info().
		Int64("item_id", item.ID).
		Str("name", item.Name).
		Str("category", item.Category).
		Msg("menu item created")

	return item, nil
}

// DeleteItems removes menu items after an explicit confirmation. Historical
// order lines keep their item IDs; reports label them as deleted items.
func (s *menuService) DeleteItems(ctx context.Context, req *model.DeleteMenuItemsRequest) (int64, error) {
	if req == nil || !req.Confirm {
		return 0, model.ErrConfirmationRequired
	}

	if len(req.IDs) == 0 {
		return 0, fmt.Errorf("menu item IDs are required")
	}

	deleted, err := s.menuRepo.Delete(ctx, req.IDs)
	if err != nil {
		s.logger.Error().Err(err).Int("count", len(req.IDs)).Msg("failed to delete menu items")
		return 0, fmt.Errorf("failed to delete menu items: %w", err)
	}

	return deleted, nil
}
