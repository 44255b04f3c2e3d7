// internal/cart/ledger.go
package cart

import (
	"github.com/shopease/shopease-backend/internal/models"
)

// Ledger holds the (product, quantity) entries of a single cart along with
// the aggregates derived from them. It is a plain value type; persistence and
// locking live in Service.
type Ledger struct {
	Entries    []models.CartEntry `json:"entries"`
	TotalItems int                `json:"total_items"`
	TotalPrice float64            `json:"total_price"`
}

func NewLedger() *Ledger {
	return &Ledger{}
}

func (l *Ledger) recompute() {
	items := 0
	price := 0.0
	for i := range l.Entries {
		items += l.Entries[i].Quantity
		price += l.Entries[i].LineTotal()
	}
	l.TotalItems = items
	l.TotalPrice = price
}

func (l *Ledger) find(productID int) int {
	for i := range l.Entries {
		if l.Entries[i].Product.ID == productID {
			return i
		}
	}
	return -1
}

// Add merges the quantity into an existing entry for the product or appends
// a new one. The ledger does not clamp against stock; callers check that.
func (l *Ledger) Add(product models.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	if i := l.find(product.ID); i >= 0 {
		l.Entries[i].Quantity += quantity
	} else {
		l.Entries = append(l.Entries, models.CartEntry{Product: product, Quantity: quantity})
	}
	l.recompute()
}

// Remove deletes the entry for the product id. Removing an absent id is a
// no-op, so repeated removes converge on the same state.
func (l *Ledger) Remove(productID int) {
	if i := l.find(productID); i >= 0 {
		l.Entries = append(l.Entries[:i], l.Entries[i+1:]...)
		l.recompute()
	}
}

// UpdateQuantity replaces the quantity of an existing entry. Absent ids are
// ignored; quantities below 1 remove the entry.
func (l *Ledger) UpdateQuantity(productID, quantity int) {
	i := l.find(productID)
	if i < 0 {
		return
	}
	if quantity < 1 {
		l.Entries = append(l.Entries[:i], l.Entries[i+1:]...)
	} else {
		l.Entries[i].Quantity = quantity
	}
	l.recompute()
}

// Increase adds one to an existing entry's quantity.
func (l *Ledger) Increase(productID int) {
	if i := l.find(productID); i >= 0 {
		l.Entries[i].Quantity++
		l.recompute()
	}
}

// Decrease subtracts one from an existing entry's quantity but never drops
// below 1. Removal at quantity 1 stays the caller's responsibility; clients
// swap the decrease control for remove at that point.
func (l *Ledger) Decrease(productID int) {
	if i := l.find(productID); i >= 0 && l.Entries[i].Quantity > 1 {
		l.Entries[i].Quantity--
		l.recompute()
	}
}

// Clear empties the ledger.
func (l *Ledger) Clear() {
	l.Entries = nil
	l.recompute()
}
