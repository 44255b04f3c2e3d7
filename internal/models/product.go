// internal/models/product.go
package models

type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Brand       string   `json:"brand"`
	Rating      float64  `json:"rating"`
	Stock       int      `json:"stock"`
	Featured    bool     `json:"featured"`
	Colors      []string `json:"colors,omitempty"`
	Discount    int      `json:"discount"`
	Tags        []string `json:"tags"`
}

// EffectivePrice returns the unit price after applying the percentage discount.
// A discount of 0 leaves the price unchanged.
func (p *Product) EffectivePrice() float64 {
	if p.Discount > 0 {
		return p.Price * (1 - float64(p.Discount)/100)
	}
	return p.Price
}

// OnSale reports whether the product carries a discount badge.
func (p *Product) OnSale() bool {
	return p.Discount > 0
}

// InStock reports whether the product can currently be purchased.
func (p *Product) InStock() bool {
	return p.Stock > 0
}
