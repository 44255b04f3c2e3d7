// internal/models/filter.go
package models

// PriceBracket bounds a price filter. Max is optional; nil means unbounded.
type PriceBracket struct {
	Min float64  `json:"min"`
	Max *float64 `json:"max,omitempty"`
}

func (b PriceBracket) Contains(price float64) bool {
	if price < b.Min {
		return false
	}
	return b.Max == nil || price <= *b.Max
}

// FilterConfig describes a single catalog query. It is reconstructed per
// request and never persisted.
type FilterConfig struct {
	Category    string        `json:"category,omitempty"`
	PriceRange  *PriceBracket `json:"price_range,omitempty"`
	SortBy      SortKey       `json:"sort_by,omitempty"`
	Brands      []string      `json:"brands,omitempty"`
	InStockOnly bool          `json:"in_stock,omitempty"`
	OnSaleOnly  bool          `json:"on_sale,omitempty"`
}
