// Package pricing contains the price analytics core: statistics over a price
// observation history, store comparison, deal analysis against the current
// best price, and cheapest-store recommendations. All operations are pure and
// degrade empty or junk input to a zeroed result rather than an error.
package pricing

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Entry is one recorded price observation for an item.
type Entry struct {
	ItemName string    `json:"itemName,omitempty"`
	Store    string    `json:"store"`
	Price    float64   `json:"price"`
	Date     time.Time `json:"date"`
	Source   string    `json:"source,omitempty"`
}

// BestPrice is the caller's current best known price for an item.
type BestPrice struct {
	Price float64   `json:"price"`
	Store string    `json:"store,omitempty"`
	Date  time.Time `json:"date,omitempty"`
}

// Trend values for Stats.
const (
	TrendStable     = "stable"
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
)

// Stats summarizes a price history. Count, average, min and max consider
// positive prices only; the trend compares the five most recent observations
// against the five before them.
type Stats struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Trend   string  `json:"trend"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func positivePrices(entries []Entry) []float64 {
	var values []float64
	for _, e := range entries {
		if e.Price > 0 {
			values = append(values, e.Price)
		}
	}
	return values
}

// Statistics computes summary stats over a price history.
func Statistics(entries []Entry) Stats {
	values := positivePrices(entries)
	if len(values) == 0 {
		return Stats{Trend: TrendStable}
	}

	sum, min, max := 0.0, values[0], values[0]
	for _, v := range values {
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	trend := TrendStable
	if len(entries) >= 10 {
		sorted := make([]Entry, len(entries))
		copy(sorted, entries)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Date.After(sorted[j].Date)
		})

		recent, older := 0.0, 0.0
		for i := 0; i < 5; i++ {
			recent += sorted[i].Price
			older += sorted[i+5].Price
		}
		recentAvg, olderAvg := recent/5, older/5

		switch {
		case recentAvg > olderAvg*1.05:
			trend = TrendIncreasing
		case recentAvg < olderAvg*0.95:
			trend = TrendDecreasing
		}
	}

	return Stats{
		Count:   len(values),
		Average: round2(sum / float64(len(values))),
		Min:     round2(min),
		Max:     round2(max),
		Trend:   trend,
	}
}

// StoreComparison is the per-store rollup of a price history.
type StoreComparison struct {
	Store        string    `json:"store"`
	AveragePrice float64   `json:"averagePrice"`
	PriceCount   int       `json:"priceCount"`
	LowestPrice  float64   `json:"lowestPrice"`
	HighestPrice float64   `json:"highestPrice"`
	LastSeen     time.Time `json:"lastSeen"`
}

// CompareStores groups a price history by store and ranks the stores by
// average price, cheapest first. Ties keep first-encountered order.
func CompareStores(entries []Entry) []StoreComparison {
	index := make(map[string]int)
	var stores []StoreComparison
	totals := make(map[string]float64)

	for _, e := range entries {
		i, ok := index[e.Store]
		if !ok {
			i = len(stores)
			index[e.Store] = i
			stores = append(stores, StoreComparison{
				Store:        e.Store,
				LowestPrice:  e.Price,
				HighestPrice: e.Price,
				LastSeen:     e.Date,
			})
		}

		s := &stores[i]
		totals[e.Store] += e.Price
		s.PriceCount++
		if e.Price < s.LowestPrice {
			s.LowestPrice = e.Price
		}
		if e.Price > s.HighestPrice {
			s.HighestPrice = e.Price
		}
		if e.Date.After(s.LastSeen) {
			s.LastSeen = e.Date
		}
	}

	for i := range stores {
		stores[i].AveragePrice = round2(totals[stores[i].Store] / float64(stores[i].PriceCount))
	}

	sort.SliceStable(stores, func(i, j int) bool {
		return stores[i].AveragePrice < stores[j].AveragePrice
	})
	return stores
}

// Deal status values for DealAnalysis.
const (
	DealNoData    = "no_data"
	DealExcellent = "excellent_deal"
	DealGood      = "good_deal"
	DealExpensive = "expensive"
	DealFair      = "fair_price"
)

// DealRecommendation is an actionable suggestion derived from deal analysis.
type DealRecommendation struct {
	Type             string  `json:"type"` // "stock_up" or "wait"
	Message          string  `json:"message"`
	Savings          string  `json:"savings,omitempty"`
	AveragePrice     float64 `json:"avgPrice,omitempty"`
	PotentialSavings float64 `json:"potentialSavings,omitempty"`
}

// DealAnalysis grades the current best price against the price history.
type DealAnalysis struct {
	HasDeals          bool                 `json:"hasDeals"`
	CurrentDealStatus string               `json:"currentDealStatus"`
	Recommendations   []DealRecommendation `json:"recommendations"`
	AveragePrice      float64              `json:"averagePrice,omitempty"`
	HistoricalLow     float64              `json:"historicalLow,omitempty"`
}

// AnalyzeDeals grades current against the history average: at or below 80%
// of average is an excellent deal, at or below 90% good, at or above 120%
// expensive, anything between fair. A nil or zero current price yields
// status no_data.
func AnalyzeDeals(entries []Entry, current *BestPrice) DealAnalysis {
	values := positivePrices(entries)
	if len(values) == 0 {
		return DealAnalysis{
			CurrentDealStatus: DealNoData,
			Recommendations:   []DealRecommendation{},
		}
	}

	sum, min := 0.0, values[0]
	for _, v := range values {
		sum += v
		if v < min {
			min = v
		}
	}
	avg := sum / float64(len(values))

	analysis := DealAnalysis{
		CurrentDealStatus: DealNoData,
		Recommendations:   []DealRecommendation{},
		AveragePrice:      round2(avg),
		HistoricalLow:     round2(min),
	}

	if current == nil || current.Price == 0 {
		return analysis
	}

	price := current.Price
	switch {
	case price <= avg*0.8:
		analysis.CurrentDealStatus = DealExcellent
	case price <= avg*0.9:
		analysis.CurrentDealStatus = DealGood
	case price >= avg*1.2:
		analysis.CurrentDealStatus = DealExpensive
	default:
		analysis.CurrentDealStatus = DealFair
	}

	switch analysis.CurrentDealStatus {
	case DealExcellent:
		analysis.Recommendations = append(analysis.Recommendations, DealRecommendation{
			Type:    "stock_up",
			Message: "Excellent price! Consider buying extra.",
			Savings: fmt.Sprintf("%.1f%% below average", (avg-price)/avg*100),
		})
	case DealExpensive:
		analysis.Recommendations = append(analysis.Recommendations, DealRecommendation{
			Type:             "wait",
			Message:          "Price is high. Consider waiting or checking other stores.",
			AveragePrice:     round2(avg),
			PotentialSavings: round2(price - avg),
		})
	}

	analysis.HasDeals = len(analysis.Recommendations) > 0
	return analysis
}

// StoreRecommendation is one ranked entry in a cheapest-store list.
type StoreRecommendation struct {
	Store          string  `json:"store"`
	AveragePrice   float64 `json:"averagePrice"`
	Rank           int     `json:"rank"`
	PriceCount     int     `json:"priceCount"`
	Recommendation string  `json:"recommendation"` // best_price, good_option, consider
	Savings        float64 `json:"savings"`
}

// RecommendStores ranks the limit cheapest stores by average price, with
// each store's savings figure relative to the cheapest. Limit values below 1
// default to 5.
func RecommendStores(entries []Entry, limit int) []StoreRecommendation {
	if limit < 1 {
		limit = 5
	}

	compared := CompareStores(entries)
	if len(compared) > limit {
		compared = compared[:limit]
	}

	recommendations := make([]StoreRecommendation, 0, len(compared))
	for i, store := range compared {
		label := "consider"
		switch {
		case i == 0:
			label = "best_price"
		case i < 3:
			label = "good_option"
		}

		savings := 0.0
		if i > 0 {
			savings = round2(store.AveragePrice - compared[0].AveragePrice)
		}

		recommendations = append(recommendations, StoreRecommendation{
			Store:          store.Store,
			AveragePrice:   store.AveragePrice,
			Rank:           i + 1,
			PriceCount:     store.PriceCount,
			Recommendation: label,
			Savings:        savings,
		})
	}
	return recommendations
}
