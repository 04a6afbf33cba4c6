package models

import "fmt"

// Plan is one card of the pricing page.
type Plan struct {
	Name        string
	Description string
	// Price is the monthly amount as displayed; empty means custom pricing
	Price    string
	Currency string
	Popular  bool
	Features []string
}

// IsCustom reports whether the plan is priced on request
func (p Plan) IsCustom() bool {
	return p.Price == ""
}

// FormatPrice returns the price with its currency, e.g. "GHC 49"
func (p Plan) FormatPrice() string {
	if p.IsCustom() {
		return ""
	}
	if p.Currency == "" {
		return p.Price
	}
	return fmt.Sprintf("%s %s", p.Currency, p.Price)
}

// Guarantee is one item of the security note under the plans.
type Guarantee struct {
	Icon  string
	Title string
	Body  string
}
