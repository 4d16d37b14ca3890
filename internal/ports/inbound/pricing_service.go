package inbound

import (
	"context"

	"github.com/google/uuid"

	"github.com/pantrysage/v2/internal/domain/pricing"
)

// PricingService defines the use cases for price tracking and lookup
type PricingService interface {
	// Commands - operations that modify state
	RecordPrice(ctx context.Context, cmd RecordPriceCommand) error

	// Queries - operations that read state
	Lookup(ctx context.Context, query PriceLookupQuery) (*PriceLookupResult, error)
}

// RecordPriceCommand contains one price observation to persist
type RecordPriceCommand struct {
	UserID   uuid.UUID
	ItemName string
	Store    string
	Price    float64
}

// PriceLookupQuery asks for the price picture of one item, optionally
// narrowed to stores whose name contains Store.
type PriceLookupQuery struct {
	UserID     uuid.UUID
	ItemName   string
	Store      string
	StoreLimit int
}

// PriceLookupResult is the full price picture for an item.
type PriceLookupResult struct {
	Item             string                        `json:"item"`
	Prices           []pricing.Entry               `json:"prices"`
	Statistics       pricing.Stats                 `json:"statistics"`
	StoreComparison  []pricing.StoreComparison     `json:"storeComparison"`
	DealAnalysis     pricing.DealAnalysis          `json:"dealAnalysis"`
	Recommendations  []pricing.StoreRecommendation `json:"storeRecommendations"`
	CurrentBestPrice *pricing.BestPrice            `json:"currentBestPrice,omitempty"`
	DataSource       string                        `json:"dataSource"`
}
