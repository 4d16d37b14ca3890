package inbound

import (
	"context"

	"github.com/google/uuid"

	"github.com/pantrysage/v2/internal/domain/shopping"
)

// ShoppingService defines the use cases for shopping list totals and saved
// shopping lists
type ShoppingService interface {
	// Commands - operations that modify state
	SaveList(ctx context.Context, cmd SaveListCommand) (*shopping.SavedList, error)
	DeleteList(ctx context.Context, listID, userID uuid.UUID) error

	// Queries - operations that read state
	GetList(ctx context.Context, listID, userID uuid.UUID) (*shopping.SavedList, error)
	ListLists(ctx context.Context, userID uuid.UUID, params PaginationParams) (*SavedListPage, error)
	CalculateTotals(ctx context.Context, cmd CalculateTotalsCommand) (*shopping.Totals, error)
	ExportTotals(ctx context.Context, cmd ExportTotalsCommand) (string, *shopping.Summary, error)
}

// SaveListCommand contains data for persisting a shopping list
type SaveListCommand struct {
	UserID uuid.UUID
	Name   string
	Items  []shopping.Item
	Budget float64
}

// CurrencyPreferences carries per-request currency overrides. Empty fields
// fall back to the configured defaults.
type CurrencyPreferences struct {
	Currency         string `json:"currency,omitempty"`
	CurrencySymbol   string `json:"currencySymbol,omitempty"`
	CurrencyPosition string `json:"currencyPosition,omitempty"`
	DecimalPlaces    int    `json:"decimalPlaces,omitempty"`
}

// CalculateTotalsCommand totals an ad-hoc list payload or a saved list.
// When ListID is set the saved list's items are used and List is ignored.
type CalculateTotalsCommand struct {
	UserID    uuid.UUID
	ListID    *uuid.UUID
	List      *shopping.List
	Options   shopping.Options
	TaxRegion string
	Currency  CurrencyPreferences
}

// ExportTotalsCommand renders totals in the requested format.
type ExportTotalsCommand struct {
	CalculateTotalsCommand
	Format string
}

// PaginationParams for paged queries
type PaginationParams struct {
	Page     int
	PageSize int
}

// SavedListPage is one page of a user's saved lists.
type SavedListPage struct {
	Lists      []*shopping.SavedList `json:"lists"`
	Total      int                   `json:"total"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"pageSize"`
	TotalPages int                   `json:"totalPages"`
}
