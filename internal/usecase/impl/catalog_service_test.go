package impl

import (
	"context"
	"fmt"
	"strings"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_CreateCatalog_DefaultsCategory(t *testing.T) {
	env := newTestEnv(t)

	catalog, err := env.catalogs.CreateCatalog(context.Background(), &usecase.CreateCatalogInput{Name: "Summer Menu"})
	require.NoError(t, err)

	assert.Equal(t, "Default", catalog.Category)
	assert.Empty(t, catalog.Slug)
}

func TestCatalogService_ViewCatalog_PriceOverrides(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	cola := env.mustCreateProduct(t, "Cola", 500, 700)
	env.mustCreateProduct(t, "Water", 300, 300)

	catalog, err := env.catalogs.CreateCatalog(ctx, &usecase.CreateCatalogInput{
		Name: "Wholesale",
		Prices: []usecase.PriceOverrideInput{
			{ProductID: cola.ID, PriceMin: 400, PriceMax: 600},
		},
	})
	require.NoError(t, err)

	view, err := env.catalogs.ViewCatalog(ctx, catalog.ID, 1, 0)
	require.NoError(t, err)
	require.Len(t, view.Items, 2)

	byName := map[string][2]int64{}
	displays := map[string]string{}
	for _, item := range view.Items {
		byName[item.Product.Name] = [2]int64{item.PriceMin, item.PriceMax}
		displays[item.Product.Name] = item.PriceDisplay
	}
	// Overridden product uses catalog prices, the other falls back to its own.
	assert.Equal(t, [2]int64{400, 600}, byName["Cola"])
	assert.Equal(t, [2]int64{300, 300}, byName["Water"])
	assert.Equal(t, "400 XAF - 600 XAF", displays["Cola"])
	assert.Equal(t, "300 XAF", displays["Water"])
}

func TestCatalogService_ViewCatalog_CategoryFilter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.mustCreateProduct(t, "Cola", 500, 700)
	snack, err := env.products.CreateProduct(ctx, &usecase.CreateProductInput{
		Name: "Chips", PriceMin: 200, PriceMax: 200, Types: []string{"Pack"}, Category: "Snacks",
	})
	require.NoError(t, err)

	catalog, err := env.catalogs.CreateCatalog(ctx, &usecase.CreateCatalogInput{
		Name:              "Snack Corner",
		AllowedCategories: []string{"Snacks"},
	})
	require.NoError(t, err)

	view, err := env.catalogs.ViewCatalog(ctx, catalog.ID, 1, 0)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, snack.ID, view.Items[0].Product.ID)
}

func TestCatalogService_ViewCatalog_Pagination(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for i := range 13 {
		env.mustCreateProduct(t, fmt.Sprintf("Product %02d", i), 100, 100)
	}

	catalog, err := env.catalogs.CreateCatalog(ctx, &usecase.CreateCatalogInput{Name: "Everything"})
	require.NoError(t, err)

	first, err := env.catalogs.ViewCatalog(ctx, catalog.ID, 1, 0)
	require.NoError(t, err)
	assert.Len(t, first.Items, 12)
	assert.Equal(t, 13, first.Total)
	assert.Equal(t, 2, first.TotalPages)

	second, err := env.catalogs.ViewCatalog(ctx, catalog.ID, 2, 0)
	require.NoError(t, err)
	assert.Len(t, second.Items, 1)

	// Past the end is empty, not an error.
	third, err := env.catalogs.ViewCatalog(ctx, catalog.ID, 3, 0)
	require.NoError(t, err)
	assert.Empty(t, third.Items)
}

func TestCatalogService_CreateShareLink(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	catalog, err := env.catalogs.CreateCatalog(ctx, &usecase.CreateCatalogInput{Name: "Summer Menu"})
	require.NoError(t, err)

	link, err := env.catalogs.CreateShareLink(ctx, catalog.ID)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(link.Slug, "summer-menu-"), "slug %q", link.Slug)
	assert.Equal(t, "http://localhost:8080/share/"+link.Slug, link.URL)
	assert.NotEmpty(t, link.QRCode)

	// Second call reuses the assigned slug.
	again, err := env.catalogs.CreateShareLink(ctx, catalog.ID)
	require.NoError(t, err)
	assert.Equal(t, link.Slug, again.Slug)
}

func TestCatalogService_CreateShareLink_DistinctSlugsForSameName(t *testing.T) {
	env := newTestEnv(t)

	_, slugA := env.mustCreateSharedCatalog(t, "Summer Menu", "Default")
	_, slugB := env.mustCreateSharedCatalog(t, "Summer Menu", "Default")

	assert.NotEqual(t, slugA, slugB)
}

func TestCatalogService_UpdateCatalog_PreservesSlug(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	catalog, slug := env.mustCreateSharedCatalog(t, "Summer Menu", "Default")

	updated, err := env.catalogs.UpdateCatalog(ctx, catalog.ID, &usecase.UpdateCatalogInput{
		Name:     "Autumn Menu",
		Category: "Wholesaler",
	})
	require.NoError(t, err)

	assert.Equal(t, "Autumn Menu", updated.Name)
	assert.Equal(t, slug, updated.Slug)
}

func TestCatalogService_GetCatalog_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.catalogs.GetCatalog(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrCatalogNotFound)
}

func TestCatalogService_DeleteCatalog(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	catalog, err := env.catalogs.CreateCatalog(ctx, &usecase.CreateCatalogInput{Name: "Summer Menu"})
	require.NoError(t, err)

	require.NoError(t, env.catalogs.DeleteCatalog(ctx, catalog.ID))

	_, err = env.catalogs.GetCatalog(ctx, catalog.ID)
	assert.ErrorIs(t, err, domainerrors.ErrCatalogNotFound)
}
