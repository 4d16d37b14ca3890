// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"

	"github.com/google/uuid"

	"github.com/pantrysage/v2/internal/domain/inventory"
)

// InventoryService defines the use cases for pantry inventory and recipe
// ingredient reconciliation
// This is the primary port that HTTP handlers and other driving adapters will use
type InventoryService interface {
	// Commands - operations that modify state
	AddItem(ctx context.Context, cmd AddInventoryItemCommand) (*inventory.Item, error)
	UpdateQuantity(ctx context.Context, itemID, userID uuid.UUID, delta float64) (*inventory.Item, error)
	RemoveItem(ctx context.Context, itemID, userID uuid.UUID) error

	// Queries - operations that read state
	ListItems(ctx context.Context, userID uuid.UUID) ([]*inventory.Item, error)
	MatchIngredients(ctx context.Context, cmd MatchIngredientsCommand) (*MatchReport, error)
}

// AddInventoryItemCommand contains data for adding a pantry item
type AddInventoryItemCommand struct {
	UserID   uuid.UUID
	Name     string
	Category string
	Quantity float64
	Unit     string
}

// MatchIngredientsCommand asks which recipe ingredients the user's pantry
// covers. Ingredients are raw recipe lines, e.g. "2 cups all-purpose flour".
type MatchIngredientsCommand struct {
	UserID      uuid.UUID
	Ingredients []string
}

// IngredientMatch is the reconciliation result for one recipe ingredient.
type IngredientMatch struct {
	Ingredient    string          `json:"ingredient"`
	ExtractedName string          `json:"extractedName"`
	Matched       bool            `json:"matched"`
	Item          *inventory.Item `json:"item,omitempty"`
	Substitutes   []string        `json:"substitutes,omitempty"`
}

// MatchReport aggregates per-ingredient matches and the shortage list.
type MatchReport struct {
	Matches   []IngredientMatch `json:"matches"`
	Shortages []string          `json:"shortages"`
	Covered   int               `json:"covered"`
	Total     int               `json:"total"`
}
