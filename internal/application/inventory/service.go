// Package inventory provides the application layer for pantry inventory
// management and recipe ingredient reconciliation
// This implements the use cases defined in the inbound ports
package inventory

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pantrysage/v2/internal/domain/ingredient"
	"github.com/pantrysage/v2/internal/domain/inventory"
	"github.com/pantrysage/v2/internal/ports/inbound"
	"github.com/pantrysage/v2/internal/ports/outbound"
	"github.com/pantrysage/v2/pkg/errors"
)

// InventoryService implements the inventory use cases
type InventoryService struct {
	inventoryRepo outbound.InventoryRepository
	logger        *zap.Logger
}

// NewInventoryService creates a new inventory service
func NewInventoryService(
	inventoryRepo outbound.InventoryRepository,
	logger *zap.Logger,
) inbound.InventoryService {
	return &InventoryService{
		inventoryRepo: inventoryRepo,
		logger:        logger.Named("inventory-service"),
	}
}

// AddItem adds a pantry item for a user
func (s *InventoryService) AddItem(ctx context.Context, cmd inbound.AddInventoryItemCommand) (*inventory.Item, error) {
	s.logger.Info("Adding inventory item",
		zap.String("user_id", cmd.UserID.String()),
		zap.String("name", cmd.Name),
	)

	if cmd.Name == "" {
		return nil, errors.NewValidationError("item name is required")
	}

	// Fold the new stock into an existing item with the same canonical name
	// instead of creating a duplicate row.
	existing, err := s.inventoryRepo.FindByUserAndName(ctx, cmd.UserID, cmd.Name)
	if err != nil {
		return nil, errors.NewDatabaseError("find inventory item", err)
	}
	if existing != nil {
		existing.Adjust(cmd.Quantity)
		if err := s.inventoryRepo.Update(ctx, existing); err != nil {
			return nil, errors.NewDatabaseError("update inventory item", err)
		}
		return existing, nil
	}

	item := inventory.NewItem(cmd.UserID, cmd.Name, cmd.Category, cmd.Quantity, cmd.Unit)
	if err := s.inventoryRepo.Create(ctx, item); err != nil {
		return nil, errors.NewDatabaseError("create inventory item", err)
	}

	s.logger.Info("Inventory item added",
		zap.String("item_id", item.ID.String()),
		zap.String("name", item.Name),
	)

	return item, nil
}

// UpdateQuantity applies a quantity delta to an item
func (s *InventoryService) UpdateQuantity(ctx context.Context, itemID, userID uuid.UUID, delta float64) (*inventory.Item, error) {
	item, err := s.inventoryRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, errors.NewDatabaseError("find inventory item", err)
	}
	if item == nil {
		return nil, errors.NewItemNotFoundError(itemID.String())
	}
	if item.UserID != userID {
		return nil, errors.NewInsufficientPermissionsError("modify this item")
	}

	item.Adjust(delta)
	if err := s.inventoryRepo.Update(ctx, item); err != nil {
		return nil, errors.NewDatabaseError("update inventory item", err)
	}

	return item, nil
}

// RemoveItem deletes a pantry item
func (s *InventoryService) RemoveItem(ctx context.Context, itemID, userID uuid.UUID) error {
	item, err := s.inventoryRepo.FindByID(ctx, itemID)
	if err != nil {
		return errors.NewDatabaseError("find inventory item", err)
	}
	if item == nil {
		return errors.NewItemNotFoundError(itemID.String())
	}
	if item.UserID != userID {
		return errors.NewInsufficientPermissionsError("delete this item")
	}

	if err := s.inventoryRepo.Delete(ctx, itemID); err != nil {
		return errors.NewDatabaseError("delete inventory item", err)
	}

	s.logger.Info("Inventory item removed",
		zap.String("item_id", itemID.String()),
	)

	return nil
}

// ListItems returns all pantry items for a user
func (s *InventoryService) ListItems(ctx context.Context, userID uuid.UUID) ([]*inventory.Item, error) {
	items, err := s.inventoryRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("list inventory items", err)
	}
	return items, nil
}

// MatchIngredients reconciles recipe ingredient lines against the user's
// pantry and reports the shortage list
func (s *InventoryService) MatchIngredients(ctx context.Context, cmd inbound.MatchIngredientsCommand) (*inbound.MatchReport, error) {
	s.logger.Info("Matching recipe ingredients",
		zap.String("user_id", cmd.UserID.String()),
		zap.Int("ingredient_count", len(cmd.Ingredients)),
	)

	items, err := s.inventoryRepo.FindByUser(ctx, cmd.UserID)
	if err != nil {
		return nil, errors.NewDatabaseError("list inventory items", err)
	}

	onHand := make([]ingredient.InventoryItem, 0, len(items))
	for _, item := range items {
		onHand = append(onHand, ingredient.InventoryItem{
			Name:     item.Name,
			Quantity: item.Quantity,
		})
	}
	byName := make(map[string]*inventory.Item, len(items))
	for _, item := range items {
		byName[item.Name] = item
	}

	report := &inbound.MatchReport{
		Matches:   make([]inbound.IngredientMatch, 0, len(cmd.Ingredients)),
		Shortages: []string{},
		Total:     len(cmd.Ingredients),
	}

	for _, line := range cmd.Ingredients {
		extracted := ingredient.ExtractName(line)
		match := inbound.IngredientMatch{
			Ingredient:    line,
			ExtractedName: extracted,
		}

		if best := ingredient.BestMatch(line, onHand); best != nil {
			match.Matched = true
			match.Item = byName[best.Name]
			report.Covered++
		} else {
			report.Shortages = append(report.Shortages, extracted)
			if subs := ingredient.Substitutions(extracted); subs != nil {
				match.Substitutes = subs.CanSubstituteWith
			}
		}

		report.Matches = append(report.Matches, match)
	}

	s.logger.Info("Ingredient matching complete",
		zap.Int("covered", report.Covered),
		zap.Int("shortages", len(report.Shortages)),
	)

	return report, nil
}
