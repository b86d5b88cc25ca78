package impl

import (
	"context"
	"fmt"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductService_CreateProduct_Normalization(t *testing.T) {
	env := newTestEnv(t)

	product, err := env.products.CreateProduct(context.Background(), &usecase.CreateProductInput{
		Name:     "Cola",
		PriceMin: 500,
		Types:    []string{"Bottle", ""},
	})
	require.NoError(t, err)

	// Missing upper bound collapses to the lower one, blank variants are dropped.
	assert.Equal(t, int64(500), product.PriceMax)
	assert.Equal(t, []string{"Bottle"}, product.Types)
}

func TestProductService_CreateProduct_InvalidPrices(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.products.CreateProduct(ctx, &usecase.CreateProductInput{Name: "Cola", PriceMin: -1, Types: []string{"Bottle"}})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = env.products.CreateProduct(ctx, &usecase.CreateProductInput{Name: "Cola", PriceMin: 500, PriceMax: 400, Types: []string{"Bottle"}})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProductService_CreateProduct_RejectsZeroPriceAndNoTypes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// A free product is invalid, the minimum price must be positive.
	_, err := env.products.CreateProduct(ctx, &usecase.CreateProductInput{
		Name:     "Freebie",
		PriceMin: 0,
		Types:    []string{"Bottle"},
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	// No variant labels at all.
	_, err = env.products.CreateProduct(ctx, &usecase.CreateProductInput{
		Name:     "Cola",
		PriceMin: 500,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	// Only blank variant labels.
	_, err = env.products.CreateProduct(ctx, &usecase.CreateProductInput{
		Name:     "Cola",
		PriceMin: 500,
		Types:    []string{"", ""},
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	out, err := env.products.ListProducts(ctx, &usecase.ListProductsInput{})
	require.NoError(t, err)
	assert.Empty(t, out.Products)
}

func TestProductService_UpdateProduct_RejectsZeroPriceAndNoTypes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	product := env.mustCreateProduct(t, "Cola", 500, 700)

	_, err := env.products.UpdateProduct(ctx, product.ID, &usecase.UpdateProductInput{
		Name:     "Cola",
		PriceMin: 0,
		Types:    []string{"Bottle"},
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = env.products.UpdateProduct(ctx, product.ID, &usecase.UpdateProductInput{
		Name:     "Cola",
		PriceMin: 500,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	// The stored product is untouched by the rejected updates.
	kept, err := env.products.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(500), kept.PriceMin)
	assert.Equal(t, []string{"Bottle", "Can"}, kept.Types)
}

func TestProductService_ListProducts_NewestFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first := env.mustCreateProduct(t, "Cola", 500, 700)
	second := env.mustCreateProduct(t, "Water", 300, 300)

	out, err := env.products.ListProducts(ctx, &usecase.ListProductsInput{})
	require.NoError(t, err)
	require.Len(t, out.Products, 2)
	assert.Equal(t, second.ID, out.Products[0].ID)
	assert.Equal(t, first.ID, out.Products[1].ID)
}

func TestProductService_ListProducts_Pagination(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for i := range 25 {
		env.mustCreateProduct(t, fmt.Sprintf("Product %02d", i), 100, 100)
	}

	out, err := env.products.ListProducts(ctx, &usecase.ListProductsInput{Page: 1})
	require.NoError(t, err)
	assert.Len(t, out.Products, 12)
	assert.Equal(t, 25, out.Total)
	assert.Equal(t, 3, out.TotalPages)

	last, err := env.products.ListProducts(ctx, &usecase.ListProductsInput{Page: 3})
	require.NoError(t, err)
	assert.Len(t, last.Products, 1)
}

func TestProductService_ListProducts_CategoryFilter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.mustCreateProduct(t, "Cola", 500, 700)
	snack, err := env.products.CreateProduct(ctx, &usecase.CreateProductInput{
		Name: "Chips", PriceMin: 200, Types: []string{"Pack"}, Category: "Snacks",
	})
	require.NoError(t, err)

	out, err := env.products.ListProducts(ctx, &usecase.ListProductsInput{Category: "Snacks"})
	require.NoError(t, err)
	require.Len(t, out.Products, 1)
	assert.Equal(t, snack.ID, out.Products[0].ID)
}

func TestProductService_UpdateProduct(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	product := env.mustCreateProduct(t, "Cola", 500, 700)
	env.clock.Advance(1)

	updated, err := env.products.UpdateProduct(ctx, product.ID, &usecase.UpdateProductInput{
		Name:     "Cola Zero",
		PriceMin: 550,
		PriceMax: 750,
		Types:    []string{"Can"},
		Category: "Drinks",
	})
	require.NoError(t, err)

	assert.Equal(t, "Cola Zero", updated.Name)
	assert.Equal(t, int64(550), updated.PriceMin)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
}

func TestProductService_DeleteProduct(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	product := env.mustCreateProduct(t, "Cola", 500, 700)

	require.NoError(t, env.products.DeleteProduct(ctx, product.ID))

	_, err := env.products.GetProduct(ctx, product.ID)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)

	assert.ErrorIs(t, env.products.DeleteProduct(ctx, uuid.New()), domainerrors.ErrProductNotFound)
}
