package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AnalyticsTestSuite struct {
	suite.Suite
}

func TestAnalyticsTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsTestSuite))
}

func day(offset int) time.Time {
	return time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func entriesAt(store string, prices ...float64) []Entry {
	entries := make([]Entry, 0, len(prices))
	for i, p := range prices {
		entries = append(entries, Entry{Store: store, Price: p, Date: day(i)})
	}
	return entries
}

func (s *AnalyticsTestSuite) TestStatistics() {
	s.Run("Empty", func() {
		stats := Statistics(nil)
		assert.Equal(s.T(), Stats{Trend: TrendStable}, stats)
	})

	s.Run("IgnoresNonPositivePrices", func() {
		stats := Statistics([]Entry{
			{Store: "A", Price: 0, Date: day(0)},
			{Store: "A", Price: -1, Date: day(1)},
			{Store: "A", Price: 2.50, Date: day(2)},
			{Store: "A", Price: 3.50, Date: day(3)},
		})

		assert.Equal(s.T(), 2, stats.Count)
		assert.InDelta(s.T(), 3.00, stats.Average, 1e-9)
		assert.InDelta(s.T(), 2.50, stats.Min, 1e-9)
		assert.InDelta(s.T(), 3.50, stats.Max, 1e-9)
	})

	s.Run("TrendStableForShortHistory", func() {
		stats := Statistics(entriesAt("A", 1, 2, 3, 4, 5))
		assert.Equal(s.T(), TrendStable, stats.Trend)
	})

	s.Run("TrendIncreasing", func() {
		// Later dates carry clearly higher prices.
		entries := entriesAt("A", 2, 2, 2, 2, 2, 4, 4, 4, 4, 4)
		assert.Equal(s.T(), TrendIncreasing, Statistics(entries).Trend)
	})

	s.Run("TrendDecreasing", func() {
		entries := entriesAt("A", 4, 4, 4, 4, 4, 2, 2, 2, 2, 2)
		assert.Equal(s.T(), TrendDecreasing, Statistics(entries).Trend)
	})

	s.Run("TrendStableWithinBand", func() {
		// A 2% drift stays inside the five percent band.
		entries := entriesAt("A", 2.00, 2.00, 2.00, 2.00, 2.00, 2.04, 2.04, 2.04, 2.04, 2.04)
		assert.Equal(s.T(), TrendStable, Statistics(entries).Trend)
	})
}

func (s *AnalyticsTestSuite) TestCompareStores() {
	entries := []Entry{
		{Store: "Hy-Vee", Price: 4.00, Date: day(0)},
		{Store: "Aldi", Price: 2.50, Date: day(1)},
		{Store: "Hy-Vee", Price: 3.00, Date: day(2)},
		{Store: "Costco", Price: 3.25, Date: day(3)},
		{Store: "Aldi", Price: 2.90, Date: day(4)},
	}

	compared := CompareStores(entries)

	require.Len(s.T(), compared, 3)
	assert.Equal(s.T(), "Aldi", compared[0].Store)
	assert.InDelta(s.T(), 2.70, compared[0].AveragePrice, 1e-9)
	assert.Equal(s.T(), 2, compared[0].PriceCount)
	assert.InDelta(s.T(), 2.50, compared[0].LowestPrice, 1e-9)
	assert.InDelta(s.T(), 2.90, compared[0].HighestPrice, 1e-9)
	assert.Equal(s.T(), day(4), compared[0].LastSeen)

	assert.Equal(s.T(), "Costco", compared[1].Store)
	assert.Equal(s.T(), "Hy-Vee", compared[2].Store)
	assert.InDelta(s.T(), 3.50, compared[2].AveragePrice, 1e-9)
	assert.Equal(s.T(), day(2), compared[2].LastSeen)
}

func (s *AnalyticsTestSuite) TestCompareStoresEmpty() {
	assert.Empty(s.T(), CompareStores(nil))
}

func (s *AnalyticsTestSuite) TestAnalyzeDeals() {
	history := entriesAt("A", 4.00, 4.00, 4.00, 4.00) // average 4.00

	s.Run("NoHistory", func() {
		analysis := AnalyzeDeals(nil, &BestPrice{Price: 3})
		assert.Equal(s.T(), DealNoData, analysis.CurrentDealStatus)
		assert.False(s.T(), analysis.HasDeals)
	})

	s.Run("NoCurrentPrice", func() {
		analysis := AnalyzeDeals(history, nil)
		assert.Equal(s.T(), DealNoData, analysis.CurrentDealStatus)
		assert.InDelta(s.T(), 4.00, analysis.AveragePrice, 1e-9)
		assert.InDelta(s.T(), 4.00, analysis.HistoricalLow, 1e-9)
	})

	s.Run("ExcellentDeal", func() {
		analysis := AnalyzeDeals(history, &BestPrice{Price: 3.00})

		assert.Equal(s.T(), DealExcellent, analysis.CurrentDealStatus)
		assert.True(s.T(), analysis.HasDeals)
		require.Len(s.T(), analysis.Recommendations, 1)
		assert.Equal(s.T(), "stock_up", analysis.Recommendations[0].Type)
		assert.Equal(s.T(), "25.0% below average", analysis.Recommendations[0].Savings)
	})

	s.Run("GoodDeal", func() {
		analysis := AnalyzeDeals(history, &BestPrice{Price: 3.50})
		assert.Equal(s.T(), DealGood, analysis.CurrentDealStatus)
		assert.False(s.T(), analysis.HasDeals)
	})

	s.Run("FairPrice", func() {
		analysis := AnalyzeDeals(history, &BestPrice{Price: 4.00})
		assert.Equal(s.T(), DealFair, analysis.CurrentDealStatus)
	})

	s.Run("Expensive", func() {
		analysis := AnalyzeDeals(history, &BestPrice{Price: 5.00})

		assert.Equal(s.T(), DealExpensive, analysis.CurrentDealStatus)
		require.Len(s.T(), analysis.Recommendations, 1)
		assert.Equal(s.T(), "wait", analysis.Recommendations[0].Type)
		assert.InDelta(s.T(), 4.00, analysis.Recommendations[0].AveragePrice, 1e-9)
		assert.InDelta(s.T(), 1.00, analysis.Recommendations[0].PotentialSavings, 1e-9)
	})
}

func (s *AnalyticsTestSuite) TestRecommendStores() {
	entries := []Entry{
		{Store: "Aldi", Price: 2.50, Date: day(0)},
		{Store: "Hy-Vee", Price: 3.50, Date: day(1)},
		{Store: "Costco", Price: 3.00, Date: day(2)},
		{Store: "Target", Price: 4.00, Date: day(3)},
		{Store: "Walmart", Price: 4.50, Date: day(4)},
		{Store: "Fareway", Price: 5.00, Date: day(5)},
	}

	recs := RecommendStores(entries, 0)

	require.Len(s.T(), recs, 5)
	assert.Equal(s.T(), "Aldi", recs[0].Store)
	assert.Equal(s.T(), 1, recs[0].Rank)
	assert.Equal(s.T(), "best_price", recs[0].Recommendation)
	assert.InDelta(s.T(), 0, recs[0].Savings, 1e-9)

	assert.Equal(s.T(), "good_option", recs[1].Recommendation)
	assert.Equal(s.T(), "good_option", recs[2].Recommendation)
	assert.Equal(s.T(), "consider", recs[3].Recommendation)
	assert.Equal(s.T(), "consider", recs[4].Recommendation)
	assert.InDelta(s.T(), 2.00, recs[4].Savings, 1e-9)

	limited := RecommendStores(entries, 2)
	require.Len(s.T(), limited, 2)
}
