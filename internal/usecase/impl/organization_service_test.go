package impl

import (
	"context"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrganizationService_Get_BeforeSetup(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.org.Get(context.Background())

	assert.ErrorIs(t, err, domainerrors.ErrOrganizationNotFound)
}

func TestOrganizationService_SetupAndGet(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.org.Setup(ctx, &usecase.SetupOrganizationInput{
		Name:       "My Restaurant",
		OwnerEmail: "owner@example.com",
		Industry:   "Food & Beverage",
	})
	require.NoError(t, err)

	got, err := env.org.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "My Restaurant", got.Name)
}

func TestOrganizationService_Setup_Overwrites(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.org.Setup(ctx, &usecase.SetupOrganizationInput{Name: "First"})
	require.NoError(t, err)
	_, err = env.org.Setup(ctx, &usecase.SetupOrganizationInput{Name: "Second"})
	require.NoError(t, err)

	got, err := env.org.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Second", got.Name)
}
