package shopping

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// CategorySummary is a category rollup with display strings attached.
type CategorySummary struct {
	CategoryTotals
	FormattedSubtotal string `json:"formattedSubtotal"`
	FormattedTax      string `json:"formattedTax"`
	FormattedTotal    string `json:"formattedTotal"`
}

// Summary is the display-ready projection of a totals run: every monetary
// figure pre-formatted, percentages rounded to whole numbers.
type Summary struct {
	Subtotal string `json:"subtotal"`
	Tax      string `json:"tax"`
	Discount string `json:"discount"`
	Coupon   string `json:"coupon"`
	Total    string `json:"total"`

	TotalItems      int `json:"totalItems"`
	ItemsWithPrices int `json:"itemsWithPrices"`
	EstimatedItems  int `json:"estimatedItems"`

	Budget            string `json:"budget,omitempty"`
	BudgetRemaining   string `json:"budgetRemaining,omitempty"`
	BudgetPercentUsed *int   `json:"budgetPercentUsed,omitempty"`
	IsOverBudget      bool   `json:"isOverBudget"`

	Categories []CategorySummary `json:"categories"`

	HasIncompleteData bool      `json:"hasIncompleteData"`
	Warnings          []string  `json:"warnings"`
	CalculatedAt      time.Time `json:"calculatedAt"`
}

// GenerateSummary projects totals into display form. Pure projection; it
// performs no new computation.
func (c *Calculator) GenerateSummary(calc *Totals) *Summary {
	summary := &Summary{
		Subtotal:          c.FormatCurrency(calc.Subtotal),
		Tax:               c.FormatCurrency(calc.TaxAmount),
		Discount:          c.FormatCurrency(calc.DiscountAmount),
		Coupon:            c.FormatCurrency(calc.CouponAmount),
		Total:             c.FormatCurrency(calc.Total),
		TotalItems:        calc.TotalItems,
		ItemsWithPrices:   calc.ItemsWithPrices,
		EstimatedItems:    calc.EstimatedItems,
		IsOverBudget:      calc.IsOverBudget,
		Categories:        make([]CategorySummary, 0, len(calc.Categories)),
		HasIncompleteData: calc.HasIncompleteData,
		Warnings:          calc.Warnings,
		CalculatedAt:      calc.CalculatedAt,
	}

	if calc.Budget > 0 {
		summary.Budget = c.FormatCurrency(calc.Budget)
	}
	if calc.BudgetRemaining != nil {
		summary.BudgetRemaining = c.FormatCurrency(*calc.BudgetRemaining)
	}
	if calc.BudgetPercentUsed != nil {
		rounded := int(math.Round(*calc.BudgetPercentUsed))
		summary.BudgetPercentUsed = &rounded
	}

	for _, cat := range calc.Categories {
		summary.Categories = append(summary.Categories, CategorySummary{
			CategoryTotals:    *cat,
			FormattedSubtotal: c.FormatCurrency(cat.Subtotal),
			FormattedTax:      c.FormatCurrency(cat.TaxAmount),
			FormattedTotal:    c.FormatCurrency(cat.Total),
		})
	}

	return summary
}

// FormatText renders totals for ExportTotals.
const FormatText = "text"

// ExportTotals renders totals for sharing or printing. The "text" format
// produces a receipt-style block; any other format returns the Summary as-is.
func (c *Calculator) ExportTotals(calc *Totals, format string) any {
	summary := c.GenerateSummary(calc)
	if format != FormatText {
		return summary
	}
	return c.exportText(calc, summary)
}

// ExportText renders the receipt-style text block directly.
func (c *Calculator) ExportText(calc *Totals) string {
	return c.exportText(calc, c.GenerateSummary(calc))
}

func (c *Calculator) exportText(calc *Totals, summary *Summary) string {
	var out strings.Builder
	out.WriteString("Shopping List Totals\n")
	out.WriteString("===================\n\n")

	fmt.Fprintf(&out, "Subtotal: %s\n", summary.Subtotal)
	if calc.TaxAmount > 0 {
		fmt.Fprintf(&out, "Tax (%.1f%%): %s\n", c.taxRate*100, summary.Tax)
	}
	if calc.DiscountAmount > 0 {
		fmt.Fprintf(&out, "Discount: -%s\n", summary.Discount)
	}
	if calc.CouponAmount > 0 {
		fmt.Fprintf(&out, "Coupons: -%s\n", summary.Coupon)
	}
	fmt.Fprintf(&out, "TOTAL: %s\n\n", summary.Total)

	if summary.Budget != "" {
		fmt.Fprintf(&out, "Budget: %s\n", summary.Budget)
		fmt.Fprintf(&out, "Remaining: %s\n", summary.BudgetRemaining)
		if summary.BudgetPercentUsed != nil {
			fmt.Fprintf(&out, "Used: %d%%\n", *summary.BudgetPercentUsed)
		}
		out.WriteString("\n")
	}

	if len(summary.Categories) > 1 {
		out.WriteString("Category Breakdown:\n")
		for _, cat := range summary.Categories {
			fmt.Fprintf(&out, "  %s: %s (%d items)\n", cat.Name, cat.FormattedTotal, cat.ItemCount)
		}
		out.WriteString("\n")
	}

	if len(summary.Warnings) > 0 {
		out.WriteString("Notes:\n")
		for _, warning := range summary.Warnings {
			fmt.Fprintf(&out, "  • %s\n", warning)
		}
	}

	return out.String()
}
