// Package gorm provides mapping between domain entities and GORM models
package gorm

import (
	"github.com/google/uuid"

	"github.com/pantrysage/v2/internal/domain/inventory"
	"github.com/pantrysage/v2/internal/domain/pricing"
	"github.com/pantrysage/v2/internal/domain/shopping"
)

// InventoryItemToModel converts a domain inventory item to a GORM model
func InventoryItemToModel(item *inventory.Item) *InventoryItemModel {
	model := &InventoryItemModel{
		ID:        item.ID,
		UserID:    item.UserID,
		Name:      item.Name,
		Category:  item.Category,
		Quantity:  item.Quantity,
		Unit:      item.Unit,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}

	// Map the denormalized best price if one is known
	if bp := item.CurrentBestPrice; bp != nil {
		model.BestPrice = bp.Price
		model.BestPriceStore = bp.Store
		date := bp.Date
		model.BestPriceDate = &date
	}

	return model
}

// InventoryItemToDomain converts a GORM model to a domain inventory item
func InventoryItemToDomain(model *InventoryItemModel) *inventory.Item {
	item := &inventory.Item{
		ID:        model.ID,
		UserID:    model.UserID,
		Name:      model.Name,
		Category:  model.Category,
		Quantity:  model.Quantity,
		Unit:      model.Unit,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	if model.BestPrice > 0 && model.BestPriceDate != nil {
		item.CurrentBestPrice = &pricing.BestPrice{
			Price: model.BestPrice,
			Store: model.BestPriceStore,
			Date:  *model.BestPriceDate,
		}
	}

	return item
}

// ShoppingListToModel converts a domain saved list to a GORM model
func ShoppingListToModel(list *shopping.SavedList) *ShoppingListModel {
	return &ShoppingListModel{
		ID:        list.ID,
		UserID:    list.UserID,
		Name:      list.Name,
		Items:     ItemsField(list.Items),
		Budget:    list.Budget,
		CreatedAt: list.CreatedAt,
		UpdatedAt: list.UpdatedAt,
	}
}

// ShoppingListToDomain converts a GORM model to a domain saved list
func ShoppingListToDomain(model *ShoppingListModel) *shopping.SavedList {
	return &shopping.SavedList{
		ID:        model.ID,
		UserID:    model.UserID,
		Name:      model.Name,
		Items:     []shopping.Item(model.Items),
		Budget:    model.Budget,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// PriceEntryToModel converts a domain price entry to a GORM model
func PriceEntryToModel(userID uuid.UUID, entry pricing.Entry) *PriceEntryModel {
	return &PriceEntryModel{
		UserID:     userID,
		ItemName:   entry.ItemName,
		Store:      entry.Store,
		Price:      entry.Price,
		Source:     entry.Source,
		ObservedAt: entry.Date,
	}
}

// PriceEntryToDomain converts a GORM model to a domain price entry
func PriceEntryToDomain(model *PriceEntryModel) pricing.Entry {
	return pricing.Entry{
		ItemName: model.ItemName,
		Store:    model.Store,
		Price:    model.Price,
		Date:     model.ObservedAt,
		Source:   model.Source,
	}
}
