// internal/services/order_service_test.go
package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopease/shopease-backend/internal/blobstore"
	"github.com/shopease/shopease-backend/internal/cart"
	"github.com/shopease/shopease-backend/internal/catalog"
	"github.com/shopease/shopease-backend/internal/models"
)

func newOrderFixture() (*OrderService, *cart.Service, *catalog.Store) {
	catalogStore := catalog.NewStore(catalog.SeedProducts())
	cartService := cart.NewService(blobstore.NewMemoryStore())
	return NewOrderService(catalogStore, cartService), cartService, catalogStore
}

func validCheckout() *CheckoutRequest {
	return &CheckoutRequest{
		CardNumber: "4242 4242 4242 4242",
		CardHolder: "Jane Doe",
		ExpiryDate: "12/27",
		CVV:        "123",
	}
}

func TestListOrdersReturnsSeedHistory(t *testing.T) {
	svc, _, _ := newOrderFixture()

	orders := svc.ListOrders("u1")

	require.Len(t, orders, 7)
	assert.Equal(t, "ORD-34521", orders[0].ID)
	assert.Equal(t, "ORD-34527", orders[6].ID)
	assert.Equal(t, models.OrderStatusDelivered, orders[0].Status)
}

func TestListOrdersJoinsProducts(t *testing.T) {
	svc, _, _ := newOrderFixture()

	orders := svc.ListOrders("u1")

	first := orders[0]
	require.Len(t, first.Lines, 3)
	assert.Equal(t, 1, first.Lines[0].ProductID)
	require.NotNil(t, first.Lines[0].Product)
	assert.Equal(t, "Premium Wireless Earbuds", first.Lines[0].Product.Name)
}

func TestJoinToleratesMissingProduct(t *testing.T) {
	svc, _, catalogStore := newOrderFixture()
	require.NoError(t, catalogStore.Delete(3))

	// ORD-34524 references product 3 only.
	order, err := svc.GetOrder("u1", "ORD-34524")
	require.NoError(t, err)

	require.Len(t, order.Lines, 1)
	assert.Equal(t, 3, order.Lines[0].ProductID)
	assert.Nil(t, order.Lines[0].Product)
}

func TestGetOrderUnknownID(t *testing.T) {
	svc, _, _ := newOrderFixture()

	_, err := svc.GetOrder("u1", "ORD-99999")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestCheckoutCreatesOrderAndClearsCart(t *testing.T) {
	svc, carts, catalogStore := newOrderFixture()
	ctx := context.Background()

	product, err := catalogStore.GetByID(1)
	require.NoError(t, err)
	carts.Add(ctx, "u1", *product, 2)

	order, err := svc.Checkout(ctx, "u1", validCheckout())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.ID, "ORD-"))
	assert.Equal(t, "u1", order.UserID)
	assert.Equal(t, models.OrderStatusProcessing, order.Status)
	assert.InDelta(t, 259.98, order.Total, 0.001)
	require.Len(t, order.Lines, 1)
	assert.Equal(t, 2, order.Lines[0].Quantity)

	// The cart is emptied once the order exists.
	assert.Empty(t, carts.Get(ctx, "u1").Entries)

	// The new order shows up in the user's history.
	orders := svc.ListOrders("u1")
	assert.Len(t, orders, 8)
	assert.Equal(t, order.ID, orders[7].ID)
}

func TestCheckoutOrdersArePerUser(t *testing.T) {
	svc, carts, catalogStore := newOrderFixture()
	ctx := context.Background()

	product, err := catalogStore.GetByID(2)
	require.NoError(t, err)
	carts.Add(ctx, "alice", *product, 1)

	order, err := svc.Checkout(ctx, "alice", validCheckout())
	require.NoError(t, err)

	// Bob sees only the shared demo history.
	assert.Len(t, svc.ListOrders("bob"), 7)

	_, err = svc.GetOrder("bob", order.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	got, err := svc.GetOrder("alice", order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc, _, _ := newOrderFixture()

	_, err := svc.Checkout(context.Background(), "u1", validCheckout())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutValidation(t *testing.T) {
	svc, carts, catalogStore := newOrderFixture()
	ctx := context.Background()

	product, err := catalogStore.GetByID(1)
	require.NoError(t, err)

	tests := []struct {
		name    string
		mutate  func(*CheckoutRequest)
		wantErr bool
	}{
		{"valid", func(r *CheckoutRequest) {}, false},
		{"card too short", func(r *CheckoutRequest) { r.CardNumber = "4242" }, true},
		{"card with letters", func(r *CheckoutRequest) { r.CardNumber = "4242 4242 4242 424x" }, true},
		{"missing holder", func(r *CheckoutRequest) { r.CardHolder = "" }, true},
		{"expiry month 13", func(r *CheckoutRequest) { r.ExpiryDate = "13/27" }, true},
		{"expiry missing slash", func(r *CheckoutRequest) { r.ExpiryDate = "1227" }, true},
		{"cvv too short", func(r *CheckoutRequest) { r.CVV = "12" }, true},
		{"cvv four digits", func(r *CheckoutRequest) { r.CVV = "1234" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Successful checkouts clear the cart, so refill it each run.
			carts.Add(ctx, "u1", *product, 1)

			req := validCheckout()
			tt.mutate(req)

			_, err := svc.Checkout(ctx, "u1", req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
