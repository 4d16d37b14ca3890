// Package pricing provides the application layer for price tracking and
// smart price lookup
// This implements the use cases defined in the inbound ports
package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pantrysage/v2/internal/domain/ingredient"
	"github.com/pantrysage/v2/internal/domain/pricing"
	"github.com/pantrysage/v2/internal/ports/inbound"
	"github.com/pantrysage/v2/internal/ports/outbound"
	"github.com/pantrysage/v2/pkg/errors"
)

const (
	lookupCacheTTL = 5 * time.Minute
	maxLookupRows  = 20
)

// PricingService implements the price tracking use cases
type PricingService struct {
	priceRepo     outbound.PriceRepository
	inventoryRepo outbound.InventoryRepository
	cache         outbound.CacheRepository
	logger        *zap.Logger
}

// NewPricingService creates a new pricing service
func NewPricingService(
	priceRepo outbound.PriceRepository,
	inventoryRepo outbound.InventoryRepository,
	cache outbound.CacheRepository,
	logger *zap.Logger,
) inbound.PricingService {
	return &PricingService{
		priceRepo:     priceRepo,
		inventoryRepo: inventoryRepo,
		cache:         cache,
		logger:        logger.Named("pricing-service"),
	}
}

// RecordPrice persists one price observation and refreshes the matching
// inventory item's current best price
func (s *PricingService) RecordPrice(ctx context.Context, cmd inbound.RecordPriceCommand) error {
	if cmd.ItemName == "" {
		return errors.NewValidationError("item name is required")
	}
	if cmd.Store == "" {
		return errors.NewValidationError("store is required")
	}
	if cmd.Price <= 0 {
		return errors.NewValidationError("price must be positive")
	}

	entry := pricing.Entry{
		ItemName: cmd.ItemName,
		Store:    cmd.Store,
		Price:    cmd.Price,
		Date:     time.Now(),
		Source:   "user_inventory",
	}

	if err := s.priceRepo.Record(ctx, cmd.UserID, entry); err != nil {
		return errors.NewDatabaseError("record price", err)
	}

	item, err := s.inventoryRepo.FindByUserAndName(ctx, cmd.UserID, cmd.ItemName)
	if err != nil {
		s.logger.Warn("Could not look up inventory item for best price update",
			zap.String("item", cmd.ItemName),
			zap.Error(err),
		)
	} else if item != nil {
		item.RecordBestPrice(entry)
		if err := s.inventoryRepo.Update(ctx, item); err != nil {
			s.logger.Warn("Could not update inventory best price",
				zap.String("item", cmd.ItemName),
				zap.Error(err),
			)
		}
	}

	s.invalidateLookupCache(ctx, cmd.UserID.String(), cmd.ItemName)

	s.logger.Info("Price recorded",
		zap.String("item", cmd.ItemName),
		zap.String("store", cmd.Store),
		zap.Float64("price", cmd.Price),
	)

	return nil
}

// Lookup assembles the full price picture for one item: history, statistics,
// store comparison, deal analysis and store recommendations. Results are
// cached briefly; a cache outage degrades to a repository read.
func (s *PricingService) Lookup(ctx context.Context, query inbound.PriceLookupQuery) (*inbound.PriceLookupResult, error) {
	if query.ItemName == "" {
		return nil, errors.NewValidationError("item name is required")
	}

	cacheKey := s.lookupCacheKey(query)
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil && len(cached) > 0 {
		var result inbound.PriceLookupResult
		if err := json.Unmarshal(cached, &result); err == nil {
			return &result, nil
		}
	}

	entries, err := s.priceRepo.FindByItem(ctx, query.UserID, query.ItemName)
	if err != nil {
		return nil, errors.NewDatabaseError("find price history", err)
	}

	dataSource := "user_inventory"
	if len(entries) == 0 {
		entries, err = s.findSimilarEntries(ctx, query)
		if err != nil {
			return nil, err
		}
		dataSource = "similar_items"
	}

	var bestPrice *pricing.BestPrice
	if item, err := s.inventoryRepo.FindByUserAndName(ctx, query.UserID, query.ItemName); err == nil && item != nil {
		bestPrice = item.CurrentBestPrice
	}

	filtered := entries
	if query.Store != "" {
		filtered = nil
		for _, e := range entries {
			if strings.Contains(strings.ToLower(e.Store), strings.ToLower(query.Store)) {
				filtered = append(filtered, e)
			}
		}
	}
	if len(filtered) > maxLookupRows {
		filtered = filtered[:maxLookupRows]
	}

	result := &inbound.PriceLookupResult{
		Item:             query.ItemName,
		Prices:           filtered,
		Statistics:       pricing.Statistics(entries),
		StoreComparison:  pricing.CompareStores(entries),
		DealAnalysis:     pricing.AnalyzeDeals(entries, bestPrice),
		Recommendations:  pricing.RecommendStores(entries, query.StoreLimit),
		CurrentBestPrice: bestPrice,
		DataSource:       dataSource,
	}

	if payload, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(ctx, cacheKey, payload, lookupCacheTTL); err != nil {
			s.logger.Debug("Lookup cache write failed", zap.Error(err))
		}
	}

	return result, nil
}

// findSimilarEntries widens the search to the user's whole price history,
// keeping entries whose item name can match the queried one.
func (s *PricingService) findSimilarEntries(ctx context.Context, query inbound.PriceLookupQuery) ([]pricing.Entry, error) {
	all, err := s.priceRepo.FindByUser(ctx, query.UserID)
	if err != nil {
		return nil, errors.NewDatabaseError("find price history", err)
	}

	var similar []pricing.Entry
	for _, e := range all {
		if ingredient.CanMatch(query.ItemName, e.ItemName) {
			e.Source = "similar_item"
			similar = append(similar, e)
		}
	}
	return similar, nil
}

func (s *PricingService) lookupCacheKey(query inbound.PriceLookupQuery) string {
	return fmt.Sprintf("prices:%s:%s:%s:%d",
		query.UserID.String(),
		strings.ToLower(query.ItemName),
		strings.ToLower(query.Store),
		query.StoreLimit,
	)
}

func (s *PricingService) invalidateLookupCache(ctx context.Context, userID, itemName string) {
	// Only the unfiltered key is tracked; store-filtered entries age out on
	// their own TTL.
	key := fmt.Sprintf("prices:%s:%s::0", userID, strings.ToLower(itemName))
	if err := s.cache.Delete(ctx, key); err != nil {
		s.logger.Debug("Lookup cache invalidation failed", zap.Error(err))
	}
}
