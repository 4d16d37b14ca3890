// Package inventory holds the pantry inventory aggregate: what a user has
// on hand, in what quantity, and what they have paid for it over time.
package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/pantrysage/v2/internal/domain/pricing"
)

// Item is one on-hand pantry item.
type Item struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"userId"`
	Name     string    `json:"name"`
	Category string    `json:"category,omitempty"`
	Quantity float64   `json:"quantity"`
	Unit     string    `json:"unit,omitempty"`

	CurrentBestPrice *pricing.BestPrice `json:"currentBestPrice,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewItem builds an inventory item with a fresh identity.
func NewItem(userID uuid.UUID, name, category string, quantity float64, unit string) *Item {
	now := time.Now()
	return &Item{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Category:  category,
		Quantity:  quantity,
		Unit:      unit,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Adjust applies a quantity delta, flooring at zero.
func (i *Item) Adjust(delta float64) {
	i.Quantity += delta
	if i.Quantity < 0 {
		i.Quantity = 0
	}
	i.UpdatedAt = time.Now()
}

// RecordBestPrice updates the current best known price when the observation
// beats it (or when none is known yet).
func (i *Item) RecordBestPrice(entry pricing.Entry) {
	if entry.Price <= 0 {
		return
	}
	if i.CurrentBestPrice == nil || entry.Price < i.CurrentBestPrice.Price {
		i.CurrentBestPrice = &pricing.BestPrice{
			Price: entry.Price,
			Store: entry.Store,
			Date:  entry.Date,
		}
		i.UpdatedAt = time.Now()
	}
}
