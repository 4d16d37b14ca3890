// Package gorm provides GORM model definitions for the application
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pantrysage/v2/internal/domain/shopping"
)

// InventoryItemModel represents the GORM model for pantry inventory items
type InventoryItemModel struct {
	ID       uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID   uuid.UUID `gorm:"type:char(36);not null;index"`
	Name     string    `gorm:"type:varchar(255);not null;index"`
	Category string    `gorm:"type:varchar(100);index"`
	Quantity float64   `gorm:"default:0"`
	Unit     string    `gorm:"type:varchar(50)"`

	// Current best known price, denormalized for cheap reads
	BestPrice      float64    `gorm:"default:0"`
	BestPriceStore string     `gorm:"type:varchar(255)"`
	BestPriceDate  *time.Time

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// ShoppingListModel represents the GORM model for saved shopping lists
type ShoppingListModel struct {
	ID     uuid.UUID  `gorm:"type:char(36);primaryKey"`
	UserID uuid.UUID  `gorm:"type:char(36);not null;index"`
	Name   string     `gorm:"type:varchar(255);not null"`
	Items  ItemsField `gorm:"type:json"`
	Budget float64    `gorm:"default:0"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// PriceEntryModel represents the GORM model for price observations
type PriceEntryModel struct {
	ID         uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID     uuid.UUID `gorm:"type:char(36);not null;index"`
	ItemName   string    `gorm:"type:varchar(255);not null;index"`
	Store      string    `gorm:"type:varchar(255);not null;index"`
	Price      float64   `gorm:"not null"`
	Source     string    `gorm:"type:varchar(50);default:'user_inventory'"`
	ObservedAt time.Time `gorm:"index"`

	CreatedAt time.Time
}

// ItemsField custom type for storing shopping list items as JSON
type ItemsField []shopping.Item

// Scan implements the sql.Scanner interface
func (f *ItemsField) Scan(value interface{}) error {
	if value == nil {
		*f = ItemsField{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, f)
	case string:
		return json.Unmarshal([]byte(v), f)
	default:
		return fmt.Errorf("cannot scan %T into ItemsField", value)
	}
}

// Value implements the driver.Valuer interface
func (f ItemsField) Value() (driver.Value, error) {
	if len(f) == 0 {
		return "[]", nil
	}
	return json.Marshal(f)
}

// BeforeCreate hook for InventoryItemModel
func (m *InventoryItemModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for ShoppingListModel
func (m *ShoppingListModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for PriceEntryModel
func (m *PriceEntryModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName methods for custom table names
func (InventoryItemModel) TableName() string {
	return "inventory_items"
}

func (ShoppingListModel) TableName() string {
	return "shopping_lists"
}

func (PriceEntryModel) TableName() string {
	return "price_entries"
}
