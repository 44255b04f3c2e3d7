// internal/models/cart.go
package models

// CartEntry ties a catalog product to a purchase quantity. The ledger keeps
// at most one entry per product id and never holds an entry below quantity 1.
type CartEntry struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal is the discounted unit price times the quantity.
func (e *CartEntry) LineTotal() float64 {
	return e.Product.EffectivePrice() * float64(e.Quantity)
}
