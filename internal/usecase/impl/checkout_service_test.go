package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutService_Checkout_EmptyCart(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.checkout.Checkout(context.Background(), &usecase.CheckoutInput{
		CustomerName:  "Jane Buyer",
		PaymentMethod: entity.PaymentMethodCash,
	})

	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestCheckoutService_Checkout_UnknownPaymentMethod(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	product := env.mustCreateProduct(t, "Cola", 500, 700)
	_, err := env.cart.AddToCart(ctx, &usecase.AddToCartInput{ProductID: product.ID})
	require.NoError(t, err)

	_, err = env.checkout.Checkout(ctx, &usecase.CheckoutInput{
		CustomerName:  "Jane Buyer",
		PaymentMethod: "crypto",
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCheckoutService_Checkout_Success(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	cola := env.mustCreateProduct(t, "Cola", 500, 700)
	water := env.mustCreateProduct(t, "Water", 300, 300)

	_, err := env.cart.AddToCart(ctx, &usecase.AddToCartInput{ProductID: cola.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = env.cart.AddToCart(ctx, &usecase.AddToCartInput{ProductID: water.ID})
	require.NoError(t, err)

	order, err := env.checkout.Checkout(ctx, &usecase.CheckoutInput{
		CustomerName:  "Jane Buyer",
		CustomerPhone: "+237600000000",
		PaymentMethod: entity.PaymentMethodCard,
		Notes:         "deliver after 6pm",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2*500+300), order.TotalAmount)
	assert.Len(t, order.Items, 2)
	for _, item := range order.Items {
		assert.True(t, item.Paid)
	}
	assert.Equal(t, entity.PaymentMethodCard, order.PaymentMethod)

	// Cart is cleared after a successful checkout.
	cart, err := env.cart.GetCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart.Entries)

	orders, err := env.checkout.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
}

func TestCheckoutService_ListOrders_NewestFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	product := env.mustCreateProduct(t, "Cola", 500, 700)

	var ids []uuid.UUID
	for range 2 {
		_, err := env.cart.AddToCart(ctx, &usecase.AddToCartInput{ProductID: product.ID})
		require.NoError(t, err)

		order, err := env.checkout.Checkout(ctx, &usecase.CheckoutInput{
			CustomerName:  "Jane Buyer",
			PaymentMethod: entity.PaymentMethodCash,
		})
		require.NoError(t, err)
		ids = append(ids, order.ID)
	}

	orders, err := env.checkout.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, ids[1], orders[0].ID)
	assert.Equal(t, ids[0], orders[1].ID)
}

func TestCheckoutService_PayEntry(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	product := env.mustCreateProduct(t, "Cola", 500, 700)

	entry, err := env.cart.AddToCart(ctx, &usecase.AddToCartInput{ProductID: product.ID})
	require.NoError(t, err)

	paid, err := env.checkout.PayEntry(ctx, entry.ID)
	require.NoError(t, err)
	assert.True(t, paid.Paid)

	// Settling twice is a no-op, not an error.
	again, err := env.checkout.PayEntry(ctx, entry.ID)
	require.NoError(t, err)
	assert.True(t, again.Paid)

	cart, err := env.cart.GetCart(ctx)
	require.NoError(t, err)
	require.Len(t, cart.Entries, 1)
	assert.True(t, cart.Entries[0].Paid)
}

func TestCheckoutService_PayEntry_UnknownEntry(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.checkout.PayEntry(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrCartEntryNotFound)
}
