package impl

import (
	"context"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddToCart_Defaults(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	product := env.mustCreateProduct(t, "Cola", 500, 700)

	entry, err := env.cart.AddToCart(ctx, &usecase.AddToCartInput{ProductID: product.ID})
	require.NoError(t, err)

	assert.Equal(t, product.ID, entry.ProductID)
	assert.Equal(t, "Cola", entry.Name)
	assert.Equal(t, int64(500), entry.Price)
	assert.Equal(t, "Bottle", entry.Type)
	assert.Equal(t, 1, entry.Quantity)
	assert.False(t, entry.Paid)
}

func TestCartService_AddToCart_UnknownProduct(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.cart.AddToCart(context.Background(), &usecase.AddToCartInput{ProductID: uuid.New()})

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_AddToCart_RapidAdditionsStayDistinct(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	product := env.mustCreateProduct(t, "Cola", 500, 700)

	// Same product, same instant: each add is its own entry.
	first, err := env.cart.AddToCart(ctx, &usecase.AddToCartInput{ProductID: product.ID})
	require.NoError(t, err)
	second, err := env.cart.AddToCart(ctx, &usecase.AddToCartInput{ProductID: product.ID})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	cart, err := env.cart.GetCart(ctx)
	require.NoError(t, err)
	assert.Len(t, cart.Entries, 2)
}

func TestCartService_GetCart_Total(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	cola := env.mustCreateProduct(t, "Cola", 500, 700)
	water := env.mustCreateProduct(t, "Water", 300, 300)

	_, err := env.cart.AddToCart(ctx, &usecase.AddToCartInput{ProductID: cola.ID, Quantity: 3})
	require.NoError(t, err)
	_, err = env.cart.AddToCart(ctx, &usecase.AddToCartInput{ProductID: water.ID, Quantity: 2})
	require.NoError(t, err)

	cart, err := env.cart.GetCart(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3*500+2*300), cart.Total)
	assert.Equal(t, "2,100 XAF", cart.TotalDisplay)
}

func TestCartService_UpdateQuantity(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	product := env.mustCreateProduct(t, "Cola", 500, 700)

	entry, err := env.cart.AddToCart(ctx, &usecase.AddToCartInput{ProductID: product.ID})
	require.NoError(t, err)

	updated, err := env.cart.UpdateQuantity(ctx, entry.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)

	cart, err := env.cart.GetCart(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2500), cart.Total)
}

func TestCartService_UpdateQuantity_BelowOne(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	product := env.mustCreateProduct(t, "Cola", 500, 700)

	entry, err := env.cart.AddToCart(ctx, &usecase.AddToCartInput{ProductID: product.ID})
	require.NoError(t, err)

	_, err = env.cart.UpdateQuantity(ctx, entry.ID, 0)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCartService_UpdateQuantity_UnknownEntry(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.cart.UpdateQuantity(context.Background(), uuid.New(), 2)

	assert.ErrorIs(t, err, domainerrors.ErrCartEntryNotFound)
}

func TestCartService_RemoveEntry(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	product := env.mustCreateProduct(t, "Cola", 500, 700)

	entry, err := env.cart.AddToCart(ctx, &usecase.AddToCartInput{ProductID: product.ID})
	require.NoError(t, err)
	keep, err := env.cart.AddToCart(ctx, &usecase.AddToCartInput{ProductID: product.ID})
	require.NoError(t, err)

	require.NoError(t, env.cart.RemoveEntry(ctx, entry.ID))

	cart, err := env.cart.GetCart(ctx)
	require.NoError(t, err)
	require.Len(t, cart.Entries, 1)
	assert.Equal(t, keep.ID, cart.Entries[0].ID)

	assert.ErrorIs(t, env.cart.RemoveEntry(ctx, entry.ID), domainerrors.ErrCartEntryNotFound)
}

func TestCartService_ClearCart(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	product := env.mustCreateProduct(t, "Cola", 500, 700)

	_, err := env.cart.AddToCart(ctx, &usecase.AddToCartInput{ProductID: product.ID})
	require.NoError(t, err)

	require.NoError(t, env.cart.ClearCart(ctx))

	cart, err := env.cart.GetCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart.Entries)
	assert.Zero(t, cart.Total)
}
