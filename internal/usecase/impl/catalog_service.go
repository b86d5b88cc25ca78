package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalogRepo   repository.CatalogRepository
	productRepo   repository.ProductRepository
	qrcodeService service.QRCodeService
	clock         service.Clock
	shareBaseURL  string
	logger        *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo   repository.CatalogRepository
	ProductRepo   repository.ProductRepository
	QRCodeService service.QRCodeService
	Clock         service.Clock
	Config        *config.Config
	Logger        *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	shareBaseURL := ""
	if params.Config != nil && params.Config.QRCode != nil {
		shareBaseURL = strings.TrimRight(params.Config.QRCode.BaseURL, "/")
	}

	return &catalogService{
		catalogRepo:   params.CatalogRepo,
		productRepo:   params.ProductRepo,
		qrcodeService: params.QRCodeService,
		clock:         params.Clock,
		shareBaseURL:  shareBaseURL,
		logger:        params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCatalogs returns all catalogs, newest first.
func (srv *catalogService) ListCatalogs(ctx context.Context) ([]*entity.Catalog, error) {
	catalogs, err := srv.catalogRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to list catalogs")
	}

	return catalogs, nil
}

// GetCatalog returns a single catalog by id.
func (srv *catalogService) GetCatalog(ctx context.Context, id uuid.UUID) (*entity.Catalog, error) {
	catalog, err := srv.catalogRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCatalogNotFound) {
			return nil, domainerrors.ErrCatalogNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to load catalog")
	}

	return catalog, nil
}

// CreateCatalog creates a named catalog with optional price overrides.
func (srv *catalogService) CreateCatalog(ctx context.Context, input *usecase.CreateCatalogInput) (*entity.Catalog, error) {
	category := input.Category
	if category == "" {
		category = "Default"
	}

	catalog := &entity.Catalog{
		ID:                uuid.New(),
		Name:              input.Name,
		Category:          category,
		Prices:            buildPriceOverrides(input.Prices),
		AllowedCategories: input.AllowedCategories,
		CreatedAt:         srv.clock.Now(),
	}

	if err := srv.catalogRepo.Create(ctx, catalog); err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to create catalog")
	}

	srv.log(ctx).Info("catalog created",
		slog.String("catalog_id", catalog.ID.String()),
		slog.String("name", catalog.Name),
		slog.String("category", catalog.Category),
	)

	return catalog, nil
}

// UpdateCatalog replaces a catalog's editable fields. The share slug, once
// assigned, is preserved so existing links keep working.
func (srv *catalogService) UpdateCatalog(ctx context.Context, id uuid.UUID, input *usecase.UpdateCatalogInput) (*entity.Catalog, error) {
	catalog, err := srv.GetCatalog(ctx, id)
	if err != nil {
		return nil, err
	}

	catalog.Name = input.Name
	if input.Category != "" {
		catalog.Category = input.Category
	}
	catalog.Prices = buildPriceOverrides(input.Prices)
	catalog.AllowedCategories = input.AllowedCategories

	if err := srv.catalogRepo.Update(ctx, catalog); err != nil {
		if errors.Is(err, repository.ErrCatalogNotFound) {
			return nil, domainerrors.ErrCatalogNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to update catalog")
	}

	return catalog, nil
}

// DeleteCatalog removes a catalog. Customer grants referencing it become
// dangling and resolve to nothing at view time.
func (srv *catalogService) DeleteCatalog(ctx context.Context, id uuid.UUID) error {
	if err := srv.catalogRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCatalogNotFound) {
			return domainerrors.ErrCatalogNotFound
		}

		return domainerrors.NewStoreExecuteError(err, "failed to delete catalog")
	}

	srv.log(ctx).Info("catalog deleted", slog.String("catalog_id", id.String()))

	return nil
}

// ViewCatalog resolves the catalog's product page through its price overrides.
func (srv *catalogService) ViewCatalog(ctx context.Context, id uuid.UUID, page, pageSize int) (*usecase.CatalogViewOutput, error) {
	catalog, err := srv.GetCatalog(ctx, id)
	if err != nil {
		return nil, err
	}

	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to list products")
	}

	items := resolveCatalogItems(catalog, products)
	pageItems, total, currentPage, totalPages := paginate(items, page, pageSize)

	return &usecase.CatalogViewOutput{
		Catalog:    catalog,
		Items:      pageItems,
		Total:      total,
		Page:       currentPage,
		TotalPages: totalPages,
	}, nil
}

// CreateShareLink assigns a share slug on first call and returns the share
// URL with its QR code. Subsequent calls reuse the existing slug.
func (srv *catalogService) CreateShareLink(ctx context.Context, id uuid.UUID) (*usecase.ShareLinkOutput, error) {
	catalog, err := srv.GetCatalog(ctx, id)
	if err != nil {
		return nil, err
	}

	if catalog.Slug == "" {
		catalog.Slug = newShareSlug(catalog.Name)
		if err := srv.catalogRepo.Update(ctx, catalog); err != nil {
			return nil, domainerrors.NewStoreExecuteError(err, "failed to save share slug")
		}

		srv.log(ctx).Info("share link created",
			slog.String("catalog_id", catalog.ID.String()),
			slog.String("slug", catalog.Slug),
		)
	}

	shareURL := fmt.Sprintf("%s/share/%s", srv.shareBaseURL, catalog.Slug)

	qrPNG, err := srv.qrcodeService.GenerateShareQR(shareURL)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage("failed to render share QR code")
	}

	return &usecase.ShareLinkOutput{
		Slug:   catalog.Slug,
		URL:    shareURL,
		QRCode: qrPNG,
	}, nil
}

// buildPriceOverrides converts override inputs into the sparse map form.
func buildPriceOverrides(overrides []usecase.PriceOverrideInput) map[uuid.UUID]entity.PriceOverride {
	prices := make(map[uuid.UUID]entity.PriceOverride, len(overrides))
	for _, o := range overrides {
		prices[o.ProductID] = entity.PriceOverride{PriceMin: o.PriceMin, PriceMax: o.PriceMax}
	}

	return prices
}
