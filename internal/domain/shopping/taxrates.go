package shopping

// DefaultTaxRates holds the shipped jurisdiction sales tax table. US entries
// are keyed "US-<state>"; other regions carry one flat rate. Static
// configuration data, not consulted by the calculator itself.
var DefaultTaxRates = map[string]float64{
	"US-AL": 0.04,
	"US-CA": 0.0725,
	"US-FL": 0.06,
	"US-IA": 0.06,
	"US-NY": 0.08,
	"US-TX": 0.0625,
	"US-WA": 0.065,

	"CA": 0.05, // GST
	"UK": 0.20, // VAT
	"EU": 0.21, // average VAT
}

// LookupTaxRate resolves a region key against the shipped table.
func LookupTaxRate(region string) (float64, bool) {
	rate, ok := DefaultTaxRates[region]
	return rate, ok
}

// TaxableCategories lists categories that are generally taxable in most
// jurisdictions.
var TaxableCategories = []string{
	"Household Items",
	"Personal Care",
	"Cleaning Supplies",
	"Paper Products",
	"Pet Supplies",
	"Beverages",
}

// TaxExemptCategories lists food categories that are generally tax-exempt.
var TaxExemptCategories = []string{
	"Produce",
	"Meat & Seafood",
	"Dairy",
	"Bread & Bakery",
	"Canned Goods",
	"Frozen Foods",
	"Pantry Staples",
	"Fresh Fruits",
	"Fresh Vegetables",
	"Grains",
	"Condiments",
}
