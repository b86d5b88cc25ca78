package impl

import (
	"context"
	"log/slog"

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

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	clock       service.Clock
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Clock       service.Clock
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		clock:       params.Clock,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns one page of the product list, newest first.
func (srv *productService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) (*usecase.ListProductsOutput, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to list products")
	}

	if input.Category != "" {
		filtered := products[:0]
		for _, p := range products {
			if p.Category == input.Category {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	pageItems, total, page, totalPages := paginate(products, input.Page, input.PageSize)

	return &usecase.ListProductsOutput{
		Products:   pageItems,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

// GetProduct returns a single product by id.
func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to load product")
	}

	return product, nil
}

// CreateProduct adds a product to the master list.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	priceMin, priceMax, err := normalizePriceRange(input.PriceMin, input.PriceMax)
	if err != nil {
		return nil, err
	}

	types, err := normalizeTypes(input.Types)
	if err != nil {
		return nil, err
	}

	now := srv.clock.Now()
	product := &entity.Product{
		ID:          uuid.New(),
		Name:        input.Name,
		PriceMin:    priceMin,
		PriceMax:    priceMax,
		Image:       input.Image,
		Types:       types,
		Category:    input.Category,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to create product")
	}

	srv.log(ctx).Info("product created",
		slog.String("product_id", product.ID.String()),
		slog.String("name", product.Name),
	)

	return product, nil
}

// UpdateProduct replaces a product's editable fields.
func (srv *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	priceMin, priceMax, err := normalizePriceRange(input.PriceMin, input.PriceMax)
	if err != nil {
		return nil, err
	}

	types, err := normalizeTypes(input.Types)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.PriceMin = priceMin
	product.PriceMax = priceMax
	product.Image = input.Image
	product.Types = types
	product.Category = input.Category
	product.Description = input.Description
	product.UpdatedAt = srv.clock.Now()

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct removes a product from the master list. Existing cart entries
// and catalog overrides referencing it are left untouched.
func (srv *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return domainerrors.NewStoreExecuteError(err, "failed to delete product")
	}

	srv.log(ctx).Info("product deleted", slog.String("product_id", id.String()))

	return nil
}

// normalizePriceRange validates a price pair, defaulting an absent upper
// bound to the lower one.
func normalizePriceRange(priceMin, priceMax int64) (int64, int64, error) {
	if priceMin <= 0 {
		return 0, 0, domainerrors.ErrValidationFailed.WrapMessage("minimum price must be positive")
	}
	if priceMax <= 0 {
		priceMax = priceMin
	}
	if priceMax < priceMin {
		return 0, 0, domainerrors.ErrValidationFailed.WrapMessage("maximum price must not be below minimum price")
	}

	return priceMin, priceMax, nil
}

// normalizeTypes drops blank variant labels and requires at least one to remain.
func normalizeTypes(types []string) ([]string, error) {
	cleaned := make([]string, 0, len(types))
	for _, t := range types {
		if t != "" {
			cleaned = append(cleaned, t)
		}
	}
	if len(cleaned) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("at least one product type is required")
	}

	return cleaned, nil
}
