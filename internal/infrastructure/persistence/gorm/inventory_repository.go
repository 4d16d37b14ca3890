// Package gorm provides GORM-based repository implementations
package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pantrysage/v2/internal/domain/inventory"
	"github.com/pantrysage/v2/internal/ports/outbound"
)

// InventoryRepository implements the inventory repository interface using GORM
type InventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *gorm.DB) outbound.InventoryRepository {
	return &InventoryRepository{db: db}
}

// Create creates a new inventory item
func (r *InventoryRepository) Create(ctx context.Context, item *inventory.Item) error {
	model := InventoryItemToModel(item)

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return result.Error
	}

	item.ID = model.ID
	return nil
}

// Update updates an existing inventory item
func (r *InventoryRepository) Update(ctx context.Context, item *inventory.Item) error {
	model := InventoryItemToModel(item)

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errors.New("inventory item not found")
	}

	return nil
}

// Delete deletes an inventory item by ID (soft delete)
func (r *InventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&InventoryItemModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errors.New("inventory item not found")
	}

	return nil
}

// FindByID finds an inventory item by ID. Returns nil when no row exists;
// the application layer owns the not-found error.
func (r *InventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Item, error) {
	var model InventoryItemModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return InventoryItemToDomain(&model), nil
}

// FindByUser returns all of a user's pantry items, newest first
func (r *InventoryRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*inventory.Item, error) {
	var models []InventoryItemModel

	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models)

	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*inventory.Item, len(models))
	for i := range models {
		items[i] = InventoryItemToDomain(&models[i])
	}

	return items, nil
}

// FindByUserAndName finds one pantry item by its exact name, case-insensitive.
// Returns nil when no row exists.
func (r *InventoryRepository) FindByUserAndName(ctx context.Context, userID uuid.UUID, name string) (*inventory.Item, error) {
	var model InventoryItemModel

	result := r.db.WithContext(ctx).
		Where("user_id = ? AND LOWER(name) = LOWER(?)", userID, name).
		First(&model)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return InventoryItemToDomain(&model), nil
}
