package shopping

import (
	"time"

	"github.com/google/uuid"
)

// SavedList is a persisted shopping list a user can recall and total later.
type SavedList struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"userId"`
	Name   string    `json:"name"`
	Items  []Item    `json:"items"`
	Budget float64   `json:"budget,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewSavedList builds a saved list with a fresh identity.
func NewSavedList(userID uuid.UUID, name string, items []Item, budget float64) *SavedList {
	now := time.Now()
	return &SavedList{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Items:     items,
		Budget:    budget,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Replace swaps the list contents.
func (l *SavedList) Replace(items []Item, budget float64) {
	l.Items = items
	l.Budget = budget
	l.UpdatedAt = time.Now()
}
