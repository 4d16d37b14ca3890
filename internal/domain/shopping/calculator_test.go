package shopping

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CalculatorTestSuite struct {
	suite.Suite
	calc *Calculator
}

func (s *CalculatorTestSuite) SetupTest() {
	s.calc = NewCalculator(Config{})
}

func TestCalculatorTestSuite(t *testing.T) {
	suite.Run(t, new(CalculatorTestSuite))
}

func (s *CalculatorTestSuite) TestFormatCurrency() {
	s.Run("Defaults", func() {
		assert.Equal(s.T(), "$0.00", s.calc.FormatCurrency(0))
		assert.Equal(s.T(), "$3.50", s.calc.FormatCurrency(3.5))
		assert.Equal(s.T(), "$-1.25", s.calc.FormatCurrency(-1.25))
	})

	s.Run("NaNRendersAsZero", func() {
		assert.Equal(s.T(), "$0.00", s.calc.FormatCurrency(math.NaN()))
	})

	s.Run("SymbolAfter", func() {
		calc := NewCalculator(Config{CurrencySymbol: "€", CurrencyPosition: "after"})
		assert.Equal(s.T(), "12.34€", calc.FormatCurrency(12.34))
	})

	s.Run("DecimalPlaces", func() {
		calc := NewCalculator(Config{DecimalPlaces: 3})
		assert.Equal(s.T(), "$1.500", calc.FormatCurrency(1.5))
	})
}

func (s *CalculatorTestSuite) TestParsePrice() {
	tests := []struct {
		name     string
		input    Value
		expected float64
	}{
		{"NumberPassesThrough", Num(3.99), 3.99},
		{"DollarString", Str("$3.99"), 3.99},
		{"PlainString", Str("4.25"), 4.25},
		{"ThousandsSeparator", Str("1,299.00"), 1299},
		{"LeadingDashStripped", Str("-5.00"), 5},
		{"BareDot", Str(".99"), 0.99},
		{"Garbage", Str("free"), 0},
		{"Empty", Str(""), 0},
		{"Absent", Value{}, 0},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			assert.InDelta(s.T(), tt.expected, s.calc.ParsePrice(tt.input), 1e-9)
		})
	}
}

func (s *CalculatorTestSuite) TestParseQuantity() {
	tests := []struct {
		name     string
		input    Value
		expected float64
	}{
		{"NumberPassesThrough", Num(3), 3},
		{"LeadingNumber", Str("2 lbs"), 2},
		{"Decimal", Str("1.5 cups"), 1.5},
		{"BareDot", Str(".5 lb"), 0.5},
		{"NoLeadingNumber", Str("a dozen"), 1},
		{"FractionGlyph", Str("½ cup"), 1},
		{"Empty", Str(""), 1},
		{"Absent", Value{}, 1},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			assert.InDelta(s.T(), tt.expected, s.calc.ParseQuantity(tt.input), 1e-9)
		})
	}
}

func (s *CalculatorTestSuite) TestNormalizeItems() {
	s.Run("FlatArray", func() {
		var list List
		require.NoError(s.T(), json.Unmarshal([]byte(`[{"name":"Milk"},{"name":"Eggs"}]`), &list))

		items := s.calc.NormalizeItems(&list)
		require.Len(s.T(), items, 2)
		assert.Equal(s.T(), "Milk", items[0].Name)
		assert.Equal(s.T(), "Eggs", items[1].Name)
	})

	s.Run("ItemsArrayWrapper", func() {
		var list List
		require.NoError(s.T(), json.Unmarshal([]byte(`{"items":[{"name":"Bread"}]}`), &list))

		items := s.calc.NormalizeItems(&list)
		require.Len(s.T(), items, 1)
		assert.Equal(s.T(), "Bread", items[0].Name)
	})

	s.Run("GroupedByCategoryPreservesOrder", func() {
		raw := `{"items":{
			"Dairy":[{"name":"Milk"},{"name":"Butter"}],
			"Produce":[{"name":"Apples"}],
			"Bakery":[{"name":"Bagels"}]
		}}`
		var list List
		require.NoError(s.T(), json.Unmarshal([]byte(raw), &list))

		items := s.calc.NormalizeItems(&list)
		require.Len(s.T(), items, 4)
		assert.Equal(s.T(), []string{"Milk", "Butter", "Apples", "Bagels"},
			[]string{items[0].Name, items[1].Name, items[2].Name, items[3].Name})
		assert.Equal(s.T(), "Dairy", items[0].Category)
		assert.Equal(s.T(), "Produce", items[2].Category)
		assert.Equal(s.T(), "Bakery", items[3].Category)
	})

	s.Run("GroupedItemKeepsOwnCategory", func() {
		raw := `{"items":{"Dairy":[{"name":"Oat Milk","category":"Alternatives"}]}}`
		var list List
		require.NoError(s.T(), json.Unmarshal([]byte(raw), &list))

		items := s.calc.NormalizeItems(&list)
		require.Len(s.T(), items, 1)
		assert.Equal(s.T(), "Alternatives", items[0].Category)
	})

	s.Run("NullAndWrongShapes", func() {
		var list List
		require.NoError(s.T(), json.Unmarshal([]byte(`null`), &list))
		assert.Empty(s.T(), s.calc.NormalizeItems(&list))

		require.NoError(s.T(), json.Unmarshal([]byte(`{"items":5}`), &list))
		assert.Empty(s.T(), s.calc.NormalizeItems(&list))

		require.NoError(s.T(), json.Unmarshal([]byte(`{"items":{"Dairy":"not a list"}}`), &list))
		assert.Empty(s.T(), s.calc.NormalizeItems(&list))
	})
}

func (s *CalculatorTestSuite) TestCalculateItemTotal() {
	calc := NewCalculator(Config{TaxRate: 0.08})

	s.Run("PriceFallthrough", func() {
		item := Item{Name: "Milk", UnitPrice: Str("3.50"), EstimatedPrice: Str("4.00")}
		result := calc.CalculateItemTotal(item, nil)

		assert.InDelta(s.T(), 3.50, result.ResolvedUnitPrice, 1e-9)
		assert.True(s.T(), result.HasPrice)
		assert.False(s.T(), result.IsEstimated)
	})

	s.Run("ZeroNumberPriceIsAbsent", func() {
		item := Item{Name: "Milk", Price: Num(0), EstimatedPrice: Str("4.00")}
		result := calc.CalculateItemTotal(item, nil)

		assert.InDelta(s.T(), 4.00, result.ResolvedUnitPrice, 1e-9)
		assert.True(s.T(), result.IsEstimated)
	})

	s.Run("ZeroStringPriceIsPresent", func() {
		item := Item{Name: "Milk", Price: Str("0"), EstimatedPrice: Str("4.00")}
		result := calc.CalculateItemTotal(item, nil)

		assert.InDelta(s.T(), 0, result.ResolvedUnitPrice, 1e-9)
		assert.True(s.T(), result.HasPrice)
		assert.False(s.T(), result.IsEstimated)
	})

	s.Run("EstimatedOnly", func() {
		item := Item{Name: "Apples", EstimatedPrice: Str("1.00")}
		result := calc.CalculateItemTotal(item, nil)

		assert.True(s.T(), result.HasPrice)
		assert.True(s.T(), result.IsEstimated)
	})

	s.Run("NoPriceAtAll", func() {
		item := Item{Name: "Salt"}
		result := calc.CalculateItemTotal(item, nil)

		assert.False(s.T(), result.HasPrice)
		assert.False(s.T(), result.IsEstimated)
		assert.InDelta(s.T(), 0, result.Total, 1e-9)
	})

	s.Run("EmptyTaxableCategoriesTaxesEverything", func() {
		item := Item{Name: "Milk", Category: "Dairy", Price: Num(1)}
		assert.True(s.T(), calc.CalculateItemTotal(item, nil).IsTaxable)
	})

	s.Run("CategoryNotListed", func() {
		item := Item{Name: "Milk", Category: "Dairy", Price: Num(1)}
		result := calc.CalculateItemTotal(item, []string{"Beverages"})

		assert.False(s.T(), result.IsTaxable)
		assert.InDelta(s.T(), 0, result.TaxAmount, 1e-9)
	})

	s.Run("AllSentinel", func() {
		item := Item{Name: "Milk", Category: "Dairy", Price: Num(1)}
		assert.True(s.T(), calc.CalculateItemTotal(item, []string{"all"}).IsTaxable)
	})

	s.Run("ZeroQuantityDefaultsToOne", func() {
		item := Item{Name: "Milk", Amount: Num(0), Price: Num(2)}
		result := calc.CalculateItemTotal(item, nil)

		assert.InDelta(s.T(), 1, result.Quantity, 1e-9)
		assert.InDelta(s.T(), 2, result.Subtotal, 1e-9)
	})

	s.Run("FormattedFields", func() {
		item := Item{Name: "Milk", Category: "Dairy", Amount: Str("2"), Price: Str("3.50")}
		result := calc.CalculateItemTotal(item, []string{"Dairy"})

		assert.Equal(s.T(), "$3.50", result.FormattedUnitPrice)
		assert.Equal(s.T(), "$7.00", result.FormattedSubtotal)
		assert.Equal(s.T(), "$0.56", result.FormattedTaxAmount)
		assert.Equal(s.T(), "$7.56", result.FormattedTotal)
	})
}

func (s *CalculatorTestSuite) TestCalculateTotalsSingleTaxableItem() {
	calc := NewCalculator(Config{TaxRate: 0.08})
	list := NewList([]Item{
		{Name: "Milk", Category: "Dairy", Amount: Str("2"), Price: Str("3.50")},
	})

	totals := calc.CalculateTotals(list, Options{TaxableCategories: []string{"Dairy"}})

	assert.InDelta(s.T(), 7.00, totals.Subtotal, 1e-9)
	assert.InDelta(s.T(), 0.56, totals.TaxAmount, 1e-9)
	assert.InDelta(s.T(), 7.56, totals.Total, 1e-9)
	assert.InDelta(s.T(), 7.00, totals.TaxableAmount, 1e-9)
	assert.InDelta(s.T(), 0, totals.NonTaxableAmount, 1e-9)
	assert.Equal(s.T(), 1, totals.TotalItems)
	assert.Equal(s.T(), 1, totals.ItemsWithPrices)
	assert.Empty(s.T(), totals.Warnings)
}

func (s *CalculatorTestSuite) TestCalculateTotalsGroupedEstimated() {
	var list List
	raw := `{"items":{"Produce":[{"name":"Apples","amount":"3","estimatedPrice":"1.00"}]}}`
	require.NoError(s.T(), json.Unmarshal([]byte(raw), &list))

	totals := s.calc.CalculateTotals(&list, Options{})

	require.Len(s.T(), totals.Items, 1)
	assert.Equal(s.T(), "Produce", totals.Items[0].Category)
	assert.True(s.T(), totals.Items[0].IsEstimated)
	assert.InDelta(s.T(), 3.00, totals.Subtotal, 1e-9)
	assert.True(s.T(), totals.HasIncompleteData)
	assert.Contains(s.T(), totals.Warnings, "1 items have estimated prices")
}

func (s *CalculatorTestSuite) TestCalculateTotalsDiscountsAdditive() {
	list := NewList([]Item{
		{Name: "Roast", Category: "Meat & Seafood", Price: Num(100)},
	})

	totals := s.calc.CalculateTotals(list, Options{
		Discounts: []Discount{
			{Type: "percentage", Value: 10},
			{Type: "percentage", Value: 10},
			{Type: "fixed", Value: 5},
		},
	})

	// Both 10% discounts come off the original subtotal: 10 + 10 + 5, not
	// the 19 a chained application would give.
	assert.InDelta(s.T(), 25, totals.DiscountAmount, 1e-9)
	assert.InDelta(s.T(), 75, totals.Total, 1e-9)
}

func (s *CalculatorTestSuite) TestCalculateTotalsClampedNonNegative() {
	list := NewList([]Item{{Name: "Gum", Price: Num(1.50)}})

	totals := s.calc.CalculateTotals(list, Options{
		Coupons: []Coupon{{Value: 10}},
	})

	assert.InDelta(s.T(), 10, totals.CouponAmount, 1e-9)
	assert.InDelta(s.T(), 0, totals.Total, 1e-9)
}

func (s *CalculatorTestSuite) TestCalculateTotalsIgnoresNonPositiveAdjustments() {
	list := NewList([]Item{{Name: "Gum", Price: Num(10)}})

	totals := s.calc.CalculateTotals(list, Options{
		Discounts: []Discount{
			{Type: "percentage", Value: 0},
			{Type: "fixed", Value: -3},
			{Type: "mystery", Value: 50},
		},
		Coupons: []Coupon{{Value: 0}, {Value: -2}},
	})

	assert.InDelta(s.T(), 0, totals.DiscountAmount, 1e-9)
	assert.InDelta(s.T(), 0, totals.CouponAmount, 1e-9)
	assert.InDelta(s.T(), 10, totals.Total, 1e-9)
}

func (s *CalculatorTestSuite) TestCalculateTotalsBudget() {
	list := NewList([]Item{{Name: "Steak", Price: Num(80)}})

	s.Run("UnderBudget", func() {
		totals := s.calc.CalculateTotals(list, Options{Budget: 100})

		require.NotNil(s.T(), totals.BudgetRemaining)
		require.NotNil(s.T(), totals.BudgetPercentUsed)
		assert.InDelta(s.T(), 20, *totals.BudgetRemaining, 1e-9)
		assert.InDelta(s.T(), 80, *totals.BudgetPercentUsed, 1e-9)
		assert.False(s.T(), totals.IsOverBudget)
	})

	s.Run("OverBudget", func() {
		totals := s.calc.CalculateTotals(list, Options{Budget: 50})

		assert.True(s.T(), totals.IsOverBudget)
		assert.InDelta(s.T(), -30, *totals.BudgetRemaining, 1e-9)
	})

	s.Run("NoBudget", func() {
		totals := s.calc.CalculateTotals(list, Options{})

		assert.Nil(s.T(), totals.BudgetRemaining)
		assert.Nil(s.T(), totals.BudgetPercentUsed)
		assert.False(s.T(), totals.IsOverBudget)
	})
}

func (s *CalculatorTestSuite) TestCalculateTotalsMissingPriceWarning() {
	list := NewList([]Item{
		{Name: "Milk", Price: Str("3.50")},
		{Name: "Salt"},
		{Name: "Pepper"},
	})

	totals := s.calc.CalculateTotals(list, Options{})

	assert.Equal(s.T(), 3, totals.TotalItems)
	assert.Equal(s.T(), 1, totals.ItemsWithPrices)
	assert.Contains(s.T(), totals.Warnings, "2 items are missing price information")
}

func (s *CalculatorTestSuite) TestCalculateTotalsCategoryBucketsOrdered() {
	list := NewList([]Item{
		{Name: "Milk", Category: "Dairy", Price: Num(3)},
		{Name: "Apples", Category: "Produce", Price: Num(2)},
		{Name: "Butter", Category: "Dairy", Price: Num(4)},
		{Name: "Soap"},
	})

	totals := s.calc.CalculateTotals(list, Options{})

	require.Len(s.T(), totals.Categories, 3)
	assert.Equal(s.T(), "Dairy", totals.Categories[0].Name)
	assert.Equal(s.T(), "Produce", totals.Categories[1].Name)
	assert.Equal(s.T(), "Other", totals.Categories[2].Name)
	assert.InDelta(s.T(), 7, totals.Categories[0].Subtotal, 1e-9)
	assert.Equal(s.T(), 2, totals.Categories[0].ItemCount)
}

func (s *CalculatorTestSuite) TestGenerateSummary() {
	calc := NewCalculator(Config{TaxRate: 0.07})
	list := NewList([]Item{
		{Name: "Milk", Category: "Dairy", Price: Num(3)},
		{Name: "Apples", Category: "Produce", EstimatedPrice: Str("2.50")},
	})

	totals := calc.CalculateTotals(list, Options{Budget: 6})
	summary := calc.GenerateSummary(totals)

	assert.Equal(s.T(), "$5.50", summary.Subtotal)
	assert.Equal(s.T(), 2, summary.TotalItems)
	assert.Equal(s.T(), 1, summary.EstimatedItems)
	assert.Equal(s.T(), "$6.00", summary.Budget)
	require.NotNil(s.T(), summary.BudgetPercentUsed)
	// 5.885 / 6 * 100 rounds to 98.
	assert.Equal(s.T(), 98, *summary.BudgetPercentUsed)
	require.Len(s.T(), summary.Categories, 2)
	assert.Equal(s.T(), "Dairy", summary.Categories[0].Name)
	assert.NotEmpty(s.T(), summary.Categories[0].FormattedTotal)
	assert.True(s.T(), summary.HasIncompleteData)
}

func (s *CalculatorTestSuite) TestExportText() {
	s.Run("MinimalReceipt", func() {
		calc := NewCalculator(Config{})
		list := NewList([]Item{{Name: "Milk", Price: Num(3)}})

		out := calc.ExportText(calc.CalculateTotals(list, Options{}))

		assert.Contains(s.T(), out, "Shopping List Totals")
		assert.Contains(s.T(), out, "Subtotal: $3.00")
		assert.Contains(s.T(), out, "TOTAL: $3.00")
		assert.NotContains(s.T(), out, "Tax (")
		assert.NotContains(s.T(), out, "Discount:")
		assert.NotContains(s.T(), out, "Coupons:")
		assert.NotContains(s.T(), out, "Budget:")
		assert.NotContains(s.T(), out, "Category Breakdown:")
		assert.NotContains(s.T(), out, "Notes:")
	})

	s.Run("FullReceipt", func() {
		calc := NewCalculator(Config{TaxRate: 0.08})
		list := NewList([]Item{
			{Name: "Milk", Category: "Dairy", Price: Num(10)},
			{Name: "Apples", Category: "Produce", EstimatedPrice: Num(5)},
		})

		totals := calc.CalculateTotals(list, Options{
			Budget:    30,
			Discounts: []Discount{{Type: "fixed", Value: 2}},
			Coupons:   []Coupon{{Value: 1}},
		})
		out := calc.ExportText(totals)

		assert.Contains(s.T(), out, "Tax (8.0%):")
		assert.Contains(s.T(), out, "Discount: -$2.00")
		assert.Contains(s.T(), out, "Coupons: -$1.00")
		assert.Contains(s.T(), out, "Budget: $30.00")
		assert.Contains(s.T(), out, "Category Breakdown:")
		assert.Contains(s.T(), out, "Dairy:")
		assert.Contains(s.T(), out, "Notes:")
		assert.Contains(s.T(), out, "1 items have estimated prices")
	})

	s.Run("NonTextFormatReturnsSummary", func() {
		calc := NewCalculator(Config{})
		list := NewList([]Item{{Name: "Milk", Price: Num(3)}})

		result := calc.ExportTotals(calc.CalculateTotals(list, Options{}), "json")
		_, ok := result.(*Summary)
		assert.True(s.T(), ok)
	})
}

func (s *CalculatorTestSuite) TestTaxRateTable() {
	rate, ok := LookupTaxRate("US-IA")
	require.True(s.T(), ok)
	assert.InDelta(s.T(), 0.06, rate, 1e-9)

	_, ok = LookupTaxRate("US-ZZ")
	assert.False(s.T(), ok)

	assert.Contains(s.T(), TaxableCategories, "Household Items")
	assert.Contains(s.T(), TaxExemptCategories, "Produce")
}

func BenchmarkCalculateTotals(b *testing.B) {
	calc := NewCalculator(Config{TaxRate: 0.08})
	items := make([]Item, 0, 100)
	for i := 0; i < 100; i++ {
		items = append(items, Item{Name: "Milk", Category: "Dairy", Amount: Str("2"), Price: Str("3.50")})
	}
	list := NewList(items)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		calc.CalculateTotals(list, Options{TaxableCategories: []string{"Dairy"}})
	}
}
