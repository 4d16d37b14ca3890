package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pantrysage/v2/internal/domain/shopping"
	"github.com/pantrysage/v2/internal/ports/outbound"
)

// ShoppingListRepository implements the saved list repository interface using GORM
type ShoppingListRepository struct {
	db *gorm.DB
}

// NewShoppingListRepository creates a new shopping list repository
func NewShoppingListRepository(db *gorm.DB) outbound.ShoppingListRepository {
	return &ShoppingListRepository{db: db}
}

// Create creates a new saved list
func (r *ShoppingListRepository) Create(ctx context.Context, list *shopping.SavedList) error {
	model := ShoppingListToModel(list)

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return result.Error
	}

	list.ID = model.ID
	return nil
}

// Update updates an existing saved list
func (r *ShoppingListRepository) Update(ctx context.Context, list *shopping.SavedList) error {
	model := ShoppingListToModel(list)

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errors.New("shopping list not found")
	}

	return nil
}

// Delete deletes a saved list by ID (soft delete)
func (r *ShoppingListRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&ShoppingListModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errors.New("shopping list not found")
	}

	return nil
}

// FindByID finds a saved list by ID. Returns nil when no row exists.
func (r *ShoppingListRepository) FindByID(ctx context.Context, id uuid.UUID) (*shopping.SavedList, error) {
	var model ShoppingListModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return ShoppingListToDomain(&model), nil
}

// FindByUser returns a page of the user's saved lists with the total count
func (r *ShoppingListRepository) FindByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*shopping.SavedList, int, error) {
	var models []ShoppingListModel
	var total int64

	countResult := r.db.WithContext(ctx).Model(&ShoppingListModel{}).
		Where("user_id = ?", userID).
		Count(&total)
	if countResult.Error != nil {
		return nil, 0, countResult.Error
	}

	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&models)

	if result.Error != nil {
		return nil, 0, result.Error
	}

	lists := make([]*shopping.SavedList, len(models))
	for i := range models {
		lists[i] = ShoppingListToDomain(&models[i])
	}

	return lists, int(total), nil
}
