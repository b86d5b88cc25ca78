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

func TestCustomerService_ListCategories_SeedsDefaults(t *testing.T) {
	env := newTestEnv(t)

	categories, err := env.cust.ListCategories(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Wholesaler", "Retailer"}, categories)
}

func TestCustomerService_AddCategory(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	categories, err := env.cust.AddCategory(ctx, "VIP")
	require.NoError(t, err)
	assert.Equal(t, []string{"Wholesaler", "Retailer", "VIP"}, categories)

	_, err = env.cust.AddCategory(ctx, "vip")
	assert.ErrorIs(t, err, domainerrors.ErrConflict)

	_, err = env.cust.AddCategory(ctx, "   ")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCustomerService_CreateCustomer(t *testing.T) {
	env := newTestEnv(t)

	customer, err := env.cust.CreateCustomer(context.Background(), &usecase.CreateCustomerInput{
		Name:     "Acme Stores",
		Email:    "orders@acme.example",
		Category: "Wholesaler",
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme Stores", customer.Name)
	assert.Empty(t, customer.CatalogAccess)
}

func TestCustomerService_EligibleCatalogs(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	wholesale, err := env.catalogs.CreateCatalog(ctx, &usecase.CreateCatalogInput{Name: "Wholesale", Category: "Wholesaler"})
	require.NoError(t, err)
	def, err := env.catalogs.CreateCatalog(ctx, &usecase.CreateCatalogInput{Name: "Everyone"})
	require.NoError(t, err)
	_, err = env.catalogs.CreateCatalog(ctx, &usecase.CreateCatalogInput{Name: "Retail", Category: "Retailer"})
	require.NoError(t, err)

	customer, err := env.cust.CreateCustomer(ctx, &usecase.CreateCustomerInput{
		Name:     "Acme Stores",
		Category: "Wholesaler",
	})
	require.NoError(t, err)

	eligible, err := env.cust.EligibleCatalogs(ctx, customer.ID)
	require.NoError(t, err)

	ids := make(map[uuid.UUID]struct{}, len(eligible))
	for _, c := range eligible {
		ids[c.ID] = struct{}{}
	}
	assert.Len(t, eligible, 2)
	assert.Contains(t, ids, wholesale.ID)
	assert.Contains(t, ids, def.ID)
}

func TestCustomerService_GrantAccess(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	wholesale, err := env.catalogs.CreateCatalog(ctx, &usecase.CreateCatalogInput{Name: "Wholesale", Category: "Wholesaler"})
	require.NoError(t, err)
	retail, err := env.catalogs.CreateCatalog(ctx, &usecase.CreateCatalogInput{Name: "Retail", Category: "Retailer"})
	require.NoError(t, err)

	customer, err := env.cust.CreateCustomer(ctx, &usecase.CreateCustomerInput{
		Name:     "Acme Stores",
		Category: "Wholesaler",
	})
	require.NoError(t, err)

	granted, err := env.cust.GrantAccess(ctx, &usecase.GrantAccessInput{
		CustomerID: customer.ID,
		CatalogIDs: []uuid.UUID{wholesale.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{wholesale.ID}, granted.CatalogAccess)

	// Grants are stored as submitted, even outside the eligible pick-list.
	outside, err := env.cust.GrantAccess(ctx, &usecase.GrantAccessInput{
		CustomerID: customer.ID,
		CatalogIDs: []uuid.UUID{retail.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{retail.ID}, outside.CatalogAccess)

	// Granting an empty set revokes everything.
	revoked, err := env.cust.GrantAccess(ctx, &usecase.GrantAccessInput{CustomerID: customer.ID})
	require.NoError(t, err)
	assert.Empty(t, revoked.CatalogAccess)
}

func TestCustomerService_UpdateCustomer_KeepsGrants(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	wholesale, err := env.catalogs.CreateCatalog(ctx, &usecase.CreateCatalogInput{Name: "Wholesale", Category: "Wholesaler"})
	require.NoError(t, err)

	customer, err := env.cust.CreateCustomer(ctx, &usecase.CreateCustomerInput{Name: "Acme", Category: "Wholesaler"})
	require.NoError(t, err)

	_, err = env.cust.GrantAccess(ctx, &usecase.GrantAccessInput{
		CustomerID: customer.ID,
		CatalogIDs: []uuid.UUID{wholesale.ID},
	})
	require.NoError(t, err)

	updated, err := env.cust.UpdateCustomer(ctx, customer.ID, &usecase.UpdateCustomerInput{
		Name:     "Acme Stores Ltd",
		Category: "Retailer",
	})
	require.NoError(t, err)

	assert.Equal(t, "Retailer", updated.Category)
	assert.Equal(t, []uuid.UUID{wholesale.ID}, updated.CatalogAccess)
}

func TestCustomerService_DeleteCustomer(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	customer, err := env.cust.CreateCustomer(ctx, &usecase.CreateCustomerInput{Name: "Acme"})
	require.NoError(t, err)

	require.NoError(t, env.cust.DeleteCustomer(ctx, customer.ID))

	_, err = env.cust.GetCustomer(ctx, customer.ID)
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}
