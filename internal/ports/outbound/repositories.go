// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pantrysage/v2/internal/domain/inventory"
	"github.com/pantrysage/v2/internal/domain/pricing"
	"github.com/pantrysage/v2/internal/domain/shopping"
)

// InventoryRepository defines the interface for pantry inventory persistence
// This follows the Repository pattern for data access abstraction
type InventoryRepository interface {
	Create(ctx context.Context, item *inventory.Item) error
	Update(ctx context.Context, item *inventory.Item) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*inventory.Item, error)

	// Query operations
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*inventory.Item, error)
	FindByUserAndName(ctx context.Context, userID uuid.UUID, name string) (*inventory.Item, error)
}

// ShoppingListRepository defines the interface for saved shopping list persistence
type ShoppingListRepository interface {
	Create(ctx context.Context, list *shopping.SavedList) error
	Update(ctx context.Context, list *shopping.SavedList) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*shopping.SavedList, error)
	FindByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*shopping.SavedList, int, error)
}

// PriceRepository defines the interface for price observation persistence
type PriceRepository interface {
	Record(ctx context.Context, userID uuid.UUID, entry pricing.Entry) error
	FindByItem(ctx context.Context, userID uuid.UUID, itemName string) ([]pricing.Entry, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]pricing.Entry, error)
	DeleteByItem(ctx context.Context, userID uuid.UUID, itemName string) error
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)

	// Counter operations
	Increment(ctx context.Context, key string) (int64, error)
}
