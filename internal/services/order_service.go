// internal/services/order_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopease/shopease-backend/internal/cart"
	"github.com/shopease/shopease-backend/internal/catalog"
	"github.com/shopease/shopease-backend/internal/models"
	"github.com/shopease/shopease-backend/internal/utils"
)

var ErrOrderNotFound = errors.New("order not found")
var ErrEmptyCart = errors.New("cart is empty")

// OrderService keeps the read-only order history and turns carts into new
// orders at checkout. Orders live in memory only, like the catalog.
type OrderService struct {
	mu      sync.RWMutex
	orders  []models.Order
	catalog *catalog.Store
	carts   *cart.Service
}

// CheckoutRequest is the payment form. The card fields are validated and
// then discarded; no payment is processed.
type CheckoutRequest struct {
	CardNumber string `json:"card_number" validate:"required,card_number"`
	CardHolder string `json:"card_holder" validate:"required"`
	ExpiryDate string `json:"expiry_date" validate:"required,card_expiry"`
	CVV        string `json:"cvv" validate:"required,cvv"`
}

// JoinedOrder is an order with its lines resolved against the catalog.
type JoinedOrder struct {
	models.Order
	Lines []models.OrderLine `json:"lines"`
}

func NewOrderService(catalogStore *catalog.Store, cartService *cart.Service) *OrderService {
	return &OrderService{
		orders:  seedOrders(),
		catalog: catalogStore,
		carts:   cartService,
	}
}

// seedOrders is the demo order history every account sees.
func seedOrders() []models.Order {
	return []models.Order{
		{ID: "ORD-34521", Date: "2023-11-15", Total: 329.97, Status: models.OrderStatusDelivered, Products: []int{1, 6, 9}, Quantities: []int{1, 1, 1}},
		{ID: "ORD-34522", Date: "2023-11-16", Total: 199.99, Status: models.OrderStatusProcessing, Products: []int{2}, Quantities: []int{1}},
		{ID: "ORD-34523", Date: "2023-11-17", Total: 1439.97, Status: models.OrderStatusShipped, Products: []int{4, 5, 6}, Quantities: []int{1, 1, 1}},
		{ID: "ORD-34524", Date: "2023-11-18", Total: 159.99, Status: models.OrderStatusDelivered, Products: []int{3}, Quantities: []int{1}},
		{ID: "ORD-34525", Date: "2023-11-19", Total: 389.98, Status: models.OrderStatusProcessing, Products: []int{7, 9}, Quantities: []int{2, 3}},
		{ID: "ORD-34526", Date: "2023-11-20", Total: 929.97, Status: models.OrderStatusDelivered, Products: []int{8, 10, 11}, Quantities: []int{1, 1, 3}},
		{ID: "ORD-34527", Date: "2023-11-21", Total: 294.95, Status: models.OrderStatusShipped, Products: []int{12, 9, 1}, Quantities: []int{1, 1, 1}},
	}
}

// ListOrders returns the demo history plus any orders the user placed,
// newest last, with lines joined against the catalog. Product ids that have
// left the catalog render without product data instead of failing.
func (s *OrderService) ListOrders(userID string) []JoinedOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var joined []JoinedOrder
	for i := range s.orders {
		if s.orders[i].UserID != "" && s.orders[i].UserID != userID {
			continue
		}
		joined = append(joined, s.join(&s.orders[i]))
	}
	return joined
}

func (s *OrderService) GetOrder(userID, orderID string) (*JoinedOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.orders {
		if s.orders[i].ID != orderID {
			continue
		}
		if s.orders[i].UserID != "" && s.orders[i].UserID != userID {
			return nil, ErrOrderNotFound
		}
		order := s.join(&s.orders[i])
		return &order, nil
	}
	return nil, ErrOrderNotFound
}

func (s *OrderService) join(order *models.Order) JoinedOrder {
	joined := JoinedOrder{Order: *order}
	for i, productID := range order.Products {
		quantity := 0
		if i < len(order.Quantities) {
			quantity = order.Quantities[i]
		}
		line := models.OrderLine{ProductID: productID, Quantity: quantity}
		if product, err := s.catalog.GetByID(productID); err == nil {
			line.Product = product
		}
		joined.Lines = append(joined.Lines, line)
	}
	return joined
}

// Checkout validates the payment form, snapshots the user's cart into a new
// Processing order, and clears the cart. Nothing is charged.
func (s *OrderService) Checkout(ctx context.Context, userID string, req *CheckoutRequest) (*JoinedOrder, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	ledger := s.carts.Get(ctx, userID)
	if len(ledger.Entries) == 0 {
		return nil, ErrEmptyCart
	}

	orderNumber, err := utils.GenerateOrderNumber()
	if err != nil {
		return nil, fmt.Errorf("failed to generate order number: %w", err)
	}

	order := models.Order{
		ID:     orderNumber,
		UserID: userID,
		Date:   time.Now().Format("2006-01-02"),
		Total:  ledger.TotalPrice,
		Status: models.OrderStatusProcessing,
	}
	for _, entry := range ledger.Entries {
		order.Products = append(order.Products, entry.Product.ID)
		order.Quantities = append(order.Quantities, entry.Quantity)
	}

	s.mu.Lock()
	s.orders = append(s.orders, order)
	joined := s.join(&order)
	s.mu.Unlock()

	s.carts.Clear(ctx, userID)

	return &joined, nil
}
