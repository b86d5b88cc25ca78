package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/localstore"
	"storefront/internal/infra/localstore/model"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareService_RequestOTP_UnknownSlug(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.share.RequestOTP(context.Background(), &usecase.RequestOTPInput{
		Slug:  "no-such-slug",
		Email: "guest@example.com",
	})

	assert.ErrorIs(t, err, domainerrors.ErrShareLinkInvalid)
}

func TestShareService_RequestOTP_IssuesChallenge(t *testing.T) {
	env := newTestEnv(t)
	_, slug := env.mustCreateSharedCatalog(t, "Summer Menu", "Default")

	out, err := env.share.RequestOTP(context.Background(), &usecase.RequestOTPInput{
		Slug:  slug,
		Email: "guest@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "guest@example.com", out.Email)
	assert.Equal(t, "123456", out.Code)
	assert.Equal(t, env.clock.Now().Add(5*time.Minute), out.ExpiresAt)
}

func TestShareService_VerifyOTP_Success(t *testing.T) {
	env := newTestEnv(t)
	catalog, slug := env.mustCreateSharedCatalog(t, "Summer Menu", "Default")
	ctx := context.Background()

	_, err := env.share.RequestOTP(ctx, &usecase.RequestOTPInput{Slug: slug, Email: "guest@example.com"})
	require.NoError(t, err)

	out, err := env.share.VerifyOTP(ctx, &usecase.VerifyOTPInput{
		Slug:  slug,
		Email: "guest@example.com",
		Code:  "123456",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, catalog.ID.String(), out.CatalogID)
	assert.Equal(t, "Summer Menu", out.CatalogName)
	assert.Equal(t, 24*time.Hour, out.ExpiresIn)

	// The verification marker is written as an audit record.
	var marker model.ShareVerificationModel
	require.NoError(t, env.store.Get(ctx, localstore.VerifiedKey(slug, "guest@example.com"), &marker))
	assert.Equal(t, "guest@example.com", marker.Email)
	assert.True(t, marker.VerifiedAt.Equal(env.clock.Now()))
}

func TestShareService_VerifyOTP_NoChallenge(t *testing.T) {
	env := newTestEnv(t)
	_, slug := env.mustCreateSharedCatalog(t, "Summer Menu", "Default")

	_, err := env.share.VerifyOTP(context.Background(), &usecase.VerifyOTPInput{
		Slug:  slug,
		Email: "guest@example.com",
		Code:  "123456",
	})

	assert.ErrorIs(t, err, domainerrors.ErrOTPNotFound)
}

func TestShareService_VerifyOTP_Expired(t *testing.T) {
	env := newTestEnv(t)
	_, slug := env.mustCreateSharedCatalog(t, "Summer Menu", "Default")
	ctx := context.Background()

	_, err := env.share.RequestOTP(ctx, &usecase.RequestOTPInput{Slug: slug, Email: "guest@example.com"})
	require.NoError(t, err)

	env.clock.Advance(5*time.Minute + time.Second)

	_, err = env.share.VerifyOTP(ctx, &usecase.VerifyOTPInput{
		Slug:  slug,
		Email: "guest@example.com",
		Code:  "123456",
	})

	assert.ErrorIs(t, err, domainerrors.ErrOTPExpired)
}

func TestShareService_VerifyOTP_ExpiryWinsOverMismatch(t *testing.T) {
	env := newTestEnv(t)
	_, slug := env.mustCreateSharedCatalog(t, "Summer Menu", "Default")
	ctx := context.Background()

	_, err := env.share.RequestOTP(ctx, &usecase.RequestOTPInput{Slug: slug, Email: "guest@example.com"})
	require.NoError(t, err)

	env.clock.Advance(6 * time.Minute)

	// Wrong code against an expired challenge still reports expiry.
	_, err = env.share.VerifyOTP(ctx, &usecase.VerifyOTPInput{
		Slug:  slug,
		Email: "guest@example.com",
		Code:  "000000",
	})

	assert.ErrorIs(t, err, domainerrors.ErrOTPExpired)
}

func TestShareService_VerifyOTP_Mismatch(t *testing.T) {
	env := newTestEnv(t)
	_, slug := env.mustCreateSharedCatalog(t, "Summer Menu", "Default")
	ctx := context.Background()

	_, err := env.share.RequestOTP(ctx, &usecase.RequestOTPInput{Slug: slug, Email: "guest@example.com"})
	require.NoError(t, err)

	_, err = env.share.VerifyOTP(ctx, &usecase.VerifyOTPInput{
		Slug:  slug,
		Email: "guest@example.com",
		Code:  "999999",
	})

	assert.ErrorIs(t, err, domainerrors.ErrOTPMismatch)
}

func TestShareService_VerifyOTP_TrimsSubmittedCode(t *testing.T) {
	env := newTestEnv(t)
	_, slug := env.mustCreateSharedCatalog(t, "Summer Menu", "Default")
	ctx := context.Background()

	_, err := env.share.RequestOTP(ctx, &usecase.RequestOTPInput{Slug: slug, Email: "guest@example.com"})
	require.NoError(t, err)

	_, err = env.share.VerifyOTP(ctx, &usecase.VerifyOTPInput{
		Slug:  slug,
		Email: "guest@example.com",
		Code:  "  123456  ",
	})

	assert.NoError(t, err)
}

func TestShareService_VerifyOTP_ReusableUntilExpiry(t *testing.T) {
	env := newTestEnv(t)
	_, slug := env.mustCreateSharedCatalog(t, "Summer Menu", "Default")
	ctx := context.Background()

	_, err := env.share.RequestOTP(ctx, &usecase.RequestOTPInput{Slug: slug, Email: "guest@example.com"})
	require.NoError(t, err)

	// A verified code stays valid for its whole lifetime.
	for range 3 {
		_, err = env.share.VerifyOTP(ctx, &usecase.VerifyOTPInput{
			Slug:  slug,
			Email: "guest@example.com",
			Code:  "123456",
		})
		require.NoError(t, err)
	}

	env.clock.Advance(5*time.Minute + time.Second)

	_, err = env.share.VerifyOTP(ctx, &usecase.VerifyOTPInput{
		Slug:  slug,
		Email: "guest@example.com",
		Code:  "123456",
	})
	assert.ErrorIs(t, err, domainerrors.ErrOTPExpired)
}

func TestShareService_RequestOTP_ResendOverwrites(t *testing.T) {
	env := newTestEnv(t)
	_, slug := env.mustCreateSharedCatalog(t, "Summer Menu", "Default")
	ctx := context.Background()

	_, err := env.share.RequestOTP(ctx, &usecase.RequestOTPInput{Slug: slug, Email: "guest@example.com"})
	require.NoError(t, err)

	second, err := env.share.RequestOTP(ctx, &usecase.RequestOTPInput{Slug: slug, Email: "guest@example.com"})
	require.NoError(t, err)
	require.Equal(t, "654321", second.Code)

	// The first code is dead after the resend.
	_, err = env.share.VerifyOTP(ctx, &usecase.VerifyOTPInput{
		Slug:  slug,
		Email: "guest@example.com",
		Code:  "123456",
	})
	assert.ErrorIs(t, err, domainerrors.ErrOTPMismatch)

	_, err = env.share.VerifyOTP(ctx, &usecase.VerifyOTPInput{
		Slug:  slug,
		Email: "guest@example.com",
		Code:  "654321",
	})
	assert.NoError(t, err)
}

func TestShareService_VerifyOTP_NormalizesEmail(t *testing.T) {
	env := newTestEnv(t)
	_, slug := env.mustCreateSharedCatalog(t, "Summer Menu", "Default")
	ctx := context.Background()

	_, err := env.share.RequestOTP(ctx, &usecase.RequestOTPInput{Slug: slug, Email: "  Guest@Example.com "})
	require.NoError(t, err)

	_, err = env.share.VerifyOTP(ctx, &usecase.VerifyOTPInput{
		Slug:  slug,
		Email: "guest@example.com",
		Code:  "123456",
	})
	assert.NoError(t, err)
}

func TestShareService_ChallengesIsolatedPerPair(t *testing.T) {
	env := newTestEnv(t)
	_, slugA := env.mustCreateSharedCatalog(t, "Menu A", "Default")
	_, slugB := env.mustCreateSharedCatalog(t, "Menu B", "Default")
	ctx := context.Background()

	_, err := env.share.RequestOTP(ctx, &usecase.RequestOTPInput{Slug: slugA, Email: "guest@example.com"})
	require.NoError(t, err)

	// Same visitor, other catalog: no challenge exists there.
	_, err = env.share.VerifyOTP(ctx, &usecase.VerifyOTPInput{
		Slug:  slugB,
		Email: "guest@example.com",
		Code:  "123456",
	})
	assert.ErrorIs(t, err, domainerrors.ErrOTPNotFound)
}

func TestShareService_TakeCatalogAccess_OneShot(t *testing.T) {
	env := newTestEnv(t)
	catalog, slug := env.mustCreateSharedCatalog(t, "Summer Menu", "Wholesaler")
	ctx := context.Background()

	_, err := env.share.RequestOTP(ctx, &usecase.RequestOTPInput{Slug: slug, Email: "guest@example.com"})
	require.NoError(t, err)

	_, err = env.share.VerifyOTP(ctx, &usecase.VerifyOTPInput{
		Slug:  slug,
		Email: "guest@example.com",
		Code:  "123456",
	})
	require.NoError(t, err)

	access, err := env.share.TakeCatalogAccess(ctx)
	require.NoError(t, err)
	assert.Equal(t, catalog.ID, access.CatalogID)
	assert.Equal(t, "Summer Menu", access.CatalogName)
	assert.Equal(t, "Wholesaler", access.Category)
	assert.Equal(t, "guest@example.com", access.Email)

	// Consumed on first read.
	_, err = env.share.TakeCatalogAccess(ctx)
	assert.Error(t, err)
}

func TestShareService_ViewSharedCatalog(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p1 := env.mustCreateProduct(t, "Cola", 500, 700)
	env.mustCreateProduct(t, "Water", 300, 300)

	c, err := env.catalogs.CreateCatalog(ctx, &usecase.CreateCatalogInput{
		Name: "Summer Menu",
		Prices: []usecase.PriceOverrideInput{
			{ProductID: p1.ID, PriceMin: 450, PriceMax: 650},
		},
	})
	require.NoError(t, err)

	link, err := env.catalogs.CreateShareLink(ctx, c.ID)
	require.NoError(t, err)

	view, err := env.share.ViewSharedCatalog(ctx, link.Slug, 1, 0)
	require.NoError(t, err)

	require.Len(t, view.Items, 2)
	assert.Equal(t, 2, view.Total)

	byName := map[string][2]int64{}
	for _, item := range view.Items {
		byName[item.Product.Name] = [2]int64{item.PriceMin, item.PriceMax}
	}
	assert.Equal(t, [2]int64{450, 650}, byName["Cola"])
	assert.Equal(t, [2]int64{300, 300}, byName["Water"])
}
