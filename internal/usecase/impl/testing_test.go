package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/infra/localstore"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced Clock for expiry tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// seqCodeGenerator hands out a fixed code sequence.
type seqCodeGenerator struct {
	mu    sync.Mutex
	codes []string
	next  int
}

func (g *seqCodeGenerator) Generate() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.next >= len(g.codes) {
		return "", fmt.Errorf("code sequence exhausted")
	}
	code := g.codes[g.next]
	g.next++

	return code, nil
}

// stubTokenService mints inspectable tokens without real signing.
type stubTokenService struct{}

func (stubTokenService) GenerateShareToken(slug, email string) (string, error) {
	return "token|" + slug + "|" + email, nil
}

func (stubTokenService) ValidateShareToken(tokenString string) (*service.ShareClaims, error) {
	parts := strings.Split(tokenString, "|")
	if len(parts) != 3 || parts[0] != "token" {
		return nil, fmt.Errorf("malformed token")
	}

	return &service.ShareClaims{Slug: parts[1], Email: parts[2]}, nil
}

func (stubTokenService) ShareTokenDuration() time.Duration {
	return 24 * time.Hour
}

// stubQRCodeService returns a fixed payload instead of rendering a PNG.
type stubQRCodeService struct{}

func (stubQRCodeService) GenerateShareQR(link string) ([]byte, error) {
	return []byte("qr:" + link), nil
}

// testEnv wires every service over a shared in-memory store.
type testEnv struct {
	store    localstore.Store
	clock    *fakeClock
	codes    *seqCodeGenerator
	cfg      *config.Config
	org      usecase.OrganizationUsecase
	products usecase.ProductUsecase
	catalogs usecase.CatalogUsecase
	cust     usecase.CustomerUsecase
	cart     usecase.CartUsecase
	checkout usecase.CheckoutUsecase
	share    usecase.ShareUsecase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := localstore.NewMemory()
	clock := newFakeClock()
	codes := &seqCodeGenerator{codes: []string{"123456", "654321", "111111", "222222", "333333"}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.Env.Debug = true
	cfg.OTP = &config.OTPConfig{TTL: 5 * time.Minute}
	cfg.Checkout = &config.CheckoutConfig{}
	cfg.QRCode = &config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M", BaseURL: "http://localhost:8080"}

	orgRepo := localstore.NewOrganizationRepository(store)
	productRepo := localstore.NewProductRepository(store)
	catalogRepo := localstore.NewCatalogRepository(store)
	customerRepo := localstore.NewCustomerRepository(store)
	cartRepo := localstore.NewCartRepository(store)
	orderRepo := localstore.NewOrderRepository(store)
	shareRepo := localstore.NewShareRepository(store)

	env := &testEnv{store: store, clock: clock, codes: codes, cfg: cfg}

	env.org = NewOrganizationService(OrganizationServiceParams{
		OrgRepo: orgRepo, Clock: clock, Logger: logger,
	})
	env.products = NewProductService(ProductServiceParams{
		ProductRepo: productRepo, Clock: clock, Logger: logger,
	})
	env.catalogs = NewCatalogService(CatalogServiceParams{
		CatalogRepo: catalogRepo, ProductRepo: productRepo,
		QRCodeService: stubQRCodeService{}, Clock: clock, Config: cfg, Logger: logger,
	})
	env.cust = NewCustomerService(CustomerServiceParams{
		CustomerRepo: customerRepo, CatalogRepo: catalogRepo, Clock: clock, Logger: logger,
	})
	env.cart = NewCartService(CartServiceParams{
		CartRepo: cartRepo, ProductRepo: productRepo, Clock: clock, Logger: logger,
	})
	env.checkout = NewCheckoutService(CheckoutServiceParams{
		CartRepo: cartRepo, OrderRepo: orderRepo, Clock: clock, Config: cfg, Logger: logger,
	})
	env.share = NewShareService(ShareServiceParams{
		ShareRepo: shareRepo, CatalogRepo: catalogRepo, ProductRepo: productRepo,
		CodeGenerator: codes, TokenService: stubTokenService{}, Clock: clock, Config: cfg, Logger: logger,
	})

	return env
}

// mustCreateProduct seeds a product with sensible defaults.
func (env *testEnv) mustCreateProduct(t *testing.T, name string, priceMin, priceMax int64) *entity.Product {
	t.Helper()

	p, err := env.products.CreateProduct(context.Background(), &usecase.CreateProductInput{
		Name:     name,
		PriceMin: priceMin,
		PriceMax: priceMax,
		Types:    []string{"Bottle", "Can"},
		Category: "Drinks",
	})
	require.NoError(t, err)

	return p
}

// mustCreateSharedCatalog seeds a catalog and assigns it a share slug.
func (env *testEnv) mustCreateSharedCatalog(t *testing.T, name, category string) (*entity.Catalog, string) {
	t.Helper()

	ctx := context.Background()
	c, err := env.catalogs.CreateCatalog(ctx, &usecase.CreateCatalogInput{Name: name, Category: category})
	require.NoError(t, err)

	link, err := env.catalogs.CreateShareLink(ctx, c.ID)
	require.NoError(t, err)

	return c, link.Slug
}
