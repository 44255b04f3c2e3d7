// internal/models/order.go
package models

// Order is a read-only order-history record. Products and Quantities are
// parallel lists joined against the catalog by product id.
type Order struct {
	ID         string      `json:"id"`
	UserID     string      `json:"user_id,omitempty"`
	Date       string      `json:"date"`
	Total      float64     `json:"total"`
	Status     OrderStatus `json:"status"`
	Products   []int       `json:"products"`
	Quantities []int       `json:"quantities"`
}

// OrderLine is an order entry joined with its catalog product. Product is nil
// when the referenced id has left the catalog.
type OrderLine struct {
	ProductID int      `json:"product_id"`
	Quantity  int      `json:"quantity"`
	Product   *Product `json:"product,omitempty"`
}
