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
	"storefront/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	clock       service.Clock
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Clock       service.Clock
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		clock:       params.Clock,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns all cart entries with the running total.
func (srv *cartService) GetCart(ctx context.Context) (*usecase.CartOutput, error) {
	entries, err := srv.cartRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to load cart")
	}

	total := entity.CartTotal(entries)

	return &usecase.CartOutput{
		Entries:      entries,
		Total:        total,
		TotalDisplay: util.FormatCurrency(total),
	}, nil
}

// AddToCart appends a new entry. Each addition is its own entry; adding the
// same product twice yields two entries with distinct ids.
func (srv *cartService) AddToCart(ctx context.Context, input *usecase.AddToCartInput) (*entity.CartEntry, error) {
	product, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to load product")
	}

	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}

	price := input.Price
	if price <= 0 {
		price = product.PriceMin
	}

	variant := input.Type
	if variant == "" && len(product.Types) > 0 {
		variant = product.Types[0]
	}

	entry := &entity.CartEntry{
		ID:        uuid.New(),
		ProductID: product.ID,
		Name:      product.Name,
		Price:     price,
		Image:     product.Image,
		Type:      variant,
		Quantity:  quantity,
		AddedAt:   srv.clock.Now(),
	}

	entries, err := srv.cartRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to load cart")
	}

	entries = append(entries, entry)
	if err := srv.cartRepo.Save(ctx, entries); err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to save cart")
	}

	srv.log(ctx).Info("cart entry added",
		slog.String("entry_id", entry.ID.String()),
		slog.String("product_id", product.ID.String()),
		slog.Int("quantity", entry.Quantity),
	)

	return entry, nil
}

// UpdateQuantity sets an entry's quantity. Quantities below one are rejected;
// use RemoveEntry to take an entry out of the cart.
func (srv *cartService) UpdateQuantity(ctx context.Context, entryID uuid.UUID, quantity int) (*entity.CartEntry, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must be at least 1")
	}

	entries, err := srv.cartRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to load cart")
	}

	for _, e := range entries {
		if e.ID == entryID {
			e.Quantity = quantity
			if err := srv.cartRepo.Save(ctx, entries); err != nil {
				return nil, domainerrors.NewStoreExecuteError(err, "failed to save cart")
			}

			return e, nil
		}
	}

	return nil, domainerrors.ErrCartEntryNotFound
}

// RemoveEntry deletes a single entry from the cart.
func (srv *cartService) RemoveEntry(ctx context.Context, entryID uuid.UUID) error {
	entries, err := srv.cartRepo.List(ctx)
	if err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to load cart")
	}

	kept := entries[:0]
	found := false
	for _, e := range entries {
		if e.ID == entryID {
			found = true

			continue
		}
		kept = append(kept, e)
	}

	if !found {
		return domainerrors.ErrCartEntryNotFound
	}

	if err := srv.cartRepo.Save(ctx, kept); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to save cart")
	}

	return nil
}

// ClearCart empties the cart.
func (srv *cartService) ClearCart(ctx context.Context) error {
	if err := srv.cartRepo.Clear(ctx); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to clear cart")
	}

	srv.log(ctx).Info("cart cleared")

	return nil
}
