// Package shopping contains the core domain logic for shopping list totals:
// per-item and per-category rollups, tax on taxable categories, additive
// discounts and coupons, budget tracking and display formatting. Every
// operation degrades malformed input to a safe default instead of returning
// an error, because the callers sit deep inside rendering and aggregation
// paths where a failure would take down the whole response.
package shopping

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Config carries the user's currency and tax preferences. Zero values fall
// back to the defaults: no tax, USD, symbol before the amount, two decimals.
type Config struct {
	TaxRate          float64
	Currency         string
	CurrencySymbol   string
	CurrencyPosition string // "before" or "after"
	DecimalPlaces    int
	Locale           string
}

// Calculator computes shopping list totals. It holds configuration only and
// no mutable state, so a single instance is safe for concurrent use.
type Calculator struct {
	taxRate          float64
	currency         string
	currencySymbol   string
	currencyPosition string
	decimalPlaces    int
	locale           string
}

// NewCalculator builds a calculator, applying defaults for unset fields.
func NewCalculator(cfg Config) *Calculator {
	c := &Calculator{
		taxRate:          cfg.TaxRate,
		currency:         cfg.Currency,
		currencySymbol:   cfg.CurrencySymbol,
		currencyPosition: cfg.CurrencyPosition,
		decimalPlaces:    cfg.DecimalPlaces,
		locale:           cfg.Locale,
	}
	if c.currency == "" {
		c.currency = "USD"
	}
	if c.currencySymbol == "" {
		c.currencySymbol = "$"
	}
	if c.currencyPosition == "" {
		c.currencyPosition = "before"
	}
	if c.decimalPlaces == 0 {
		c.decimalPlaces = 2
	}
	if c.locale == "" {
		c.locale = "en-US"
	}
	return c
}

// TaxRate exposes the configured rate for display purposes.
func (c *Calculator) TaxRate() float64 {
	return c.taxRate
}

// FormatCurrency renders an amount with the configured symbol and position.
// NaN and infinite amounts render as zero.
func (c *Calculator) FormatCurrency(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	formatted := strconv.FormatFloat(amount, 'f', c.decimalPlaces, 64)
	if c.currencyPosition == "before" {
		return c.currencySymbol + formatted
	}
	return formatted + c.currencySymbol
}

var (
	priceJunk      = regexp.MustCompile(`[^\d.-]`)
	numericPrefix  = regexp.MustCompile(`^(\d+(\.\d*)?|\.\d+)`)
	quantityPrefix = regexp.MustCompile(`^(\d*\.?\d+)`)
)

// ParsePrice resolves a loosely-typed price field to a number. Numeric input
// passes straight through; string input is stripped of currency symbols and
// separators, parsed by its leading numeric prefix, and clamped non-negative.
// Anything unparsable resolves to 0.
func (c *Calculator) ParsePrice(v Value) float64 {
	if n, ok := v.Number(); ok {
		return n
	}
	s, ok := v.Text()
	if !ok || s == "" {
		return 0
	}

	cleaned := priceJunk.ReplaceAllString(s, "")
	cleaned = strings.Trim(cleaned, "-")
	cleaned = strings.TrimSpace(cleaned)

	match := numericPrefix.FindString(cleaned)
	if match == "" {
		return 0
	}
	parsed, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return math.Max(0, parsed)
}

// ParseQuantity extracts the count from an amount field such as "2 lbs".
// Numeric input passes through; strings without a leading number resolve
// to 1.
func (c *Calculator) ParseQuantity(v Value) float64 {
	if n, ok := v.Number(); ok {
		return n
	}
	s, ok := v.Text()
	if !ok || s == "" {
		return 1
	}

	match := quantityPrefix.FindString(s)
	if match == "" {
		return 1
	}
	parsed, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 1
	}
	return parsed
}

// NormalizeItems flattens any accepted list shape into one ordered item
// sequence, back-filling grouped items' categories from their group key.
func (c *Calculator) NormalizeItems(list *List) []Item {
	return list.normalized()
}

// ItemCalc is one shopping list line with its computed totals attached.
type ItemCalc struct {
	Item
	Quantity           float64 `json:"quantity"`
	ResolvedUnitPrice  float64 `json:"resolvedUnitPrice"`
	Subtotal           float64 `json:"subtotal"`
	TaxAmount          float64 `json:"taxAmount"`
	Total              float64 `json:"total"`
	HasPrice           bool    `json:"hasPrice"`
	IsEstimated        bool    `json:"isEstimated"`
	IsTaxable          bool    `json:"isTaxable"`
	FormattedUnitPrice string  `json:"formattedUnitPrice"`
	FormattedSubtotal  string  `json:"formattedSubtotal"`
	FormattedTaxAmount string  `json:"formattedTaxAmount"`
	FormattedTotal     string  `json:"formattedTotal"`
}

// CalculateItemTotal computes a single line. The unit price falls through
// price, unitPrice, estimatedPrice in that order; a line is estimated when
// only estimatedPrice carried a value. An empty taxableCategories list means
// everything is taxable, and the sentinel "all" matches every category.
func (c *Calculator) CalculateItemTotal(item Item, taxableCategories []string) ItemCalc {
	quantity := c.ParseQuantity(item.Amount)
	if quantity == 0 {
		quantity = 1
	}

	priced := item.Price
	if !priced.Truthy() {
		priced = item.UnitPrice
	}
	if !priced.Truthy() {
		priced = item.EstimatedPrice
	}
	unitPrice := c.ParsePrice(priced)

	hasPrice := item.Price.Truthy() || item.UnitPrice.Truthy() || item.EstimatedPrice.Truthy()
	isEstimated := item.EstimatedPrice.Truthy() && !item.Price.Truthy() && !item.UnitPrice.Truthy()

	isTaxable := len(taxableCategories) == 0
	for _, cat := range taxableCategories {
		if cat == item.Category || cat == "all" {
			isTaxable = true
			break
		}
	}

	subtotal := unitPrice * quantity
	taxAmount := 0.0
	if isTaxable {
		taxAmount = subtotal * c.taxRate
	}

	return ItemCalc{
		Item:               item,
		Quantity:           quantity,
		ResolvedUnitPrice:  unitPrice,
		Subtotal:           subtotal,
		TaxAmount:          taxAmount,
		Total:              subtotal + taxAmount,
		HasPrice:           hasPrice,
		IsEstimated:        isEstimated,
		IsTaxable:          isTaxable,
		FormattedUnitPrice: c.FormatCurrency(unitPrice),
		FormattedSubtotal:  c.FormatCurrency(subtotal),
		FormattedTaxAmount: c.FormatCurrency(taxAmount),
		FormattedTotal:     c.FormatCurrency(subtotal + taxAmount),
	}
}

// Discount reduces the pre-tax subtotal. Percentage discounts are each
// computed against the original subtotal, never chained.
type Discount struct {
	Type  string  `json:"type"` // "percentage" or "fixed"
	Value float64 `json:"value"`
}

// Coupon is a fixed amount reduction.
type Coupon struct {
	Value float64 `json:"value"`
}

// Options configures a totals run.
type Options struct {
	Budget            float64    `json:"budget,omitempty"`
	TaxableCategories []string   `json:"taxableCategories,omitempty"`
	Discounts         []Discount `json:"discounts,omitempty"`
	Coupons           []Coupon   `json:"coupons,omitempty"`
}

// CategoryTotals is the rollup for one category bucket.
type CategoryTotals struct {
	Name           string  `json:"name"`
	Subtotal       float64 `json:"subtotal"`
	TaxAmount      float64 `json:"taxAmount"`
	Total          float64 `json:"total"`
	ItemCount      int     `json:"itemCount"`
	EstimatedCount int     `json:"estimatedCount"`
}

// Totals is the full result of a totals run. Categories appear in
// first-encountered order.
type Totals struct {
	Items      []ItemCalc        `json:"items"`
	Categories []*CategoryTotals `json:"categories"`

	Subtotal         float64 `json:"subtotal"`
	TaxableAmount    float64 `json:"taxableAmount"`
	NonTaxableAmount float64 `json:"nonTaxableAmount"`
	TaxAmount        float64 `json:"taxAmount"`
	DiscountAmount   float64 `json:"discountAmount"`
	CouponAmount     float64 `json:"couponAmount"`
	Total            float64 `json:"total"`

	Budget            float64  `json:"budget,omitempty"`
	BudgetRemaining   *float64 `json:"budgetRemaining,omitempty"`
	BudgetPercentUsed *float64 `json:"budgetPercentUsed,omitempty"`
	IsOverBudget      bool     `json:"isOverBudget"`

	TotalItems      int `json:"totalItems"`
	ItemsWithPrices int `json:"itemsWithPrices"`
	EstimatedItems  int `json:"estimatedItems"`

	CalculatedAt      time.Time `json:"calculatedAt"`
	HasIncompleteData bool      `json:"hasIncompleteData"`
	Warnings          []string  `json:"warnings"`
}

// CalculateTotals runs the full rollup for a shopping list.
func (c *Calculator) CalculateTotals(list *List, opts Options) *Totals {
	calc := &Totals{
		Items:        []ItemCalc{},
		Categories:   []*CategoryTotals{},
		Budget:       opts.Budget,
		CalculatedAt: time.Now(),
		Warnings:     []string{},
	}

	buckets := make(map[string]*CategoryTotals)

	for _, item := range c.NormalizeItems(list) {
		itemCalc := c.CalculateItemTotal(item, opts.TaxableCategories)
		calc.Items = append(calc.Items, itemCalc)

		category := item.Category
		if category == "" {
			category = "Other"
		}
		bucket, ok := buckets[category]
		if !ok {
			bucket = &CategoryTotals{Name: category}
			buckets[category] = bucket
			calc.Categories = append(calc.Categories, bucket)
		}
		bucket.Subtotal += itemCalc.Subtotal
		bucket.TaxAmount += itemCalc.TaxAmount
		bucket.Total += itemCalc.Total
		bucket.ItemCount++
		if itemCalc.IsEstimated {
			bucket.EstimatedCount++
		}

		calc.Subtotal += itemCalc.Subtotal
		if itemCalc.IsTaxable {
			calc.TaxableAmount += itemCalc.Subtotal
		} else {
			calc.NonTaxableAmount += itemCalc.Subtotal
		}
		calc.TaxAmount += itemCalc.TaxAmount
		calc.TotalItems++
		if itemCalc.HasPrice {
			calc.ItemsWithPrices++
		}
		if itemCalc.IsEstimated {
			calc.EstimatedItems++
		}
	}

	c.applyDiscountsAndCoupons(calc, opts.Discounts, opts.Coupons)

	calc.Total = math.Max(0, calc.Subtotal+calc.TaxAmount-calc.DiscountAmount-calc.CouponAmount)

	if opts.Budget > 0 {
		remaining := opts.Budget - calc.Total
		percentUsed := calc.Total / opts.Budget * 100
		calc.BudgetRemaining = &remaining
		calc.BudgetPercentUsed = &percentUsed
		calc.IsOverBudget = calc.Total > opts.Budget
	}

	if calc.EstimatedItems > 0 {
		calc.HasIncompleteData = true
		calc.Warnings = append(calc.Warnings,
			fmt.Sprintf("%d items have estimated prices", calc.EstimatedItems))
	}
	if calc.ItemsWithPrices < calc.TotalItems {
		calc.Warnings = append(calc.Warnings,
			fmt.Sprintf("%d items are missing price information", calc.TotalItems-calc.ItemsWithPrices))
	}

	return calc
}

// Each percentage discount is taken against the original subtotal, so two
// 10% discounts remove exactly 20% of it.
func (c *Calculator) applyDiscountsAndCoupons(calc *Totals, discounts []Discount, coupons []Coupon) {
	for _, discount := range discounts {
		switch {
		case discount.Type == "percentage" && discount.Value > 0:
			calc.DiscountAmount += calc.Subtotal * (discount.Value / 100)
		case discount.Type == "fixed" && discount.Value > 0:
			calc.DiscountAmount += discount.Value
		}
	}
	for _, coupon := range coupons {
		if coupon.Value > 0 {
			calc.CouponAmount += coupon.Value
		}
	}
}
