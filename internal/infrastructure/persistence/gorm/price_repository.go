package gorm

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pantrysage/v2/internal/domain/pricing"
	"github.com/pantrysage/v2/internal/ports/outbound"
)

// PriceRepository implements the price observation repository using GORM
type PriceRepository struct {
	db *gorm.DB
}

// NewPriceRepository creates a new price repository
func NewPriceRepository(db *gorm.DB) outbound.PriceRepository {
	return &PriceRepository{db: db}
}

// Record appends one price observation
func (r *PriceRepository) Record(ctx context.Context, userID uuid.UUID, entry pricing.Entry) error {
	model := PriceEntryToModel(userID, entry)

	result := r.db.WithContext(ctx).Create(model)
	return result.Error
}

// FindByItem returns a user's observations for one item name, newest first.
// Analytics depend on this ordering for trend detection.
func (r *PriceRepository) FindByItem(ctx context.Context, userID uuid.UUID, itemName string) ([]pricing.Entry, error) {
	var models []PriceEntryModel

	result := r.db.WithContext(ctx).
		Where("user_id = ? AND LOWER(item_name) = LOWER(?)", userID, itemName).
		Order("observed_at DESC").
		Find(&models)

	if result.Error != nil {
		return nil, result.Error
	}

	return toEntries(models), nil
}

// FindByUser returns all of a user's observations, newest first
func (r *PriceRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]pricing.Entry, error) {
	var models []PriceEntryModel

	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("observed_at DESC").
		Find(&models)

	if result.Error != nil {
		return nil, result.Error
	}

	return toEntries(models), nil
}

// DeleteByItem removes all observations for one item name
func (r *PriceRepository) DeleteByItem(ctx context.Context, userID uuid.UUID, itemName string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND LOWER(item_name) = LOWER(?)", userID, itemName).
		Delete(&PriceEntryModel{})
	return result.Error
}

func toEntries(models []PriceEntryModel) []pricing.Entry {
	entries := make([]pricing.Entry, len(models))
	for i := range models {
		entries[i] = PriceEntryToDomain(&models[i])
	}
	return entries
}
