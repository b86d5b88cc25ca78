package impl

import (
	"context"
	"log/slog"
	"time"

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

// Settlement delays of the simulated payment processor.
const (
	defaultOrderDelay = 1500 * time.Millisecond
	defaultEntryDelay = 900 * time.Millisecond
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	cartRepo   repository.CartRepository
	orderRepo  repository.OrderRepository
	clock      service.Clock
	orderDelay time.Duration
	entryDelay time.Duration
	logger     *slog.Logger
}

// CheckoutServiceParams holds dependencies for checkoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	CartRepo  repository.CartRepository
	OrderRepo repository.OrderRepository
	Clock     service.Clock
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	orderDelay := defaultOrderDelay
	entryDelay := defaultEntryDelay
	if params.Config != nil && params.Config.Checkout != nil {
		orderDelay = params.Config.Checkout.OrderDelay
		entryDelay = params.Config.Checkout.EntryDelay
	}

	return &checkoutService{
		cartRepo:   params.CartRepo,
		orderRepo:  params.OrderRepo,
		clock:      params.Clock,
		orderDelay: orderDelay,
		entryDelay: entryDelay,
		logger:     params.Logger,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout settles the whole cart: validates the buyer details, waits for the
// simulated processor, appends an order snapshot and clears the cart.
func (srv *checkoutService) Checkout(ctx context.Context, input *usecase.CheckoutInput) (*entity.Order, error) {
	if !validPaymentMethod(input.PaymentMethod) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown payment method")
	}

	entries, err := srv.cartRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to load cart")
	}
	if len(entries) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	if err := srv.settle(ctx, srv.orderDelay); err != nil {
		return nil, err
	}

	items := make([]entity.CartEntry, 0, len(entries))
	for _, e := range entries {
		e.Paid = true
		items = append(items, *e)
	}

	order := &entity.Order{
		ID:            uuid.New(),
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		CustomerEmail: input.CustomerEmail,
		Items:         items,
		TotalAmount:   entity.CartTotal(entries),
		PaymentMethod: input.PaymentMethod,
		Notes:         input.Notes,
		CreatedAt:     srv.clock.Now(),
	}

	if err := srv.orderRepo.Append(ctx, order); err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to save order")
	}

	if err := srv.cartRepo.Clear(ctx); err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to clear cart")
	}

	srv.log(ctx).Info("order placed",
		slog.String("order_id", order.ID.String()),
		slog.Int("item_count", len(order.Items)),
		slog.Int64("total_amount", order.TotalAmount),
		slog.String("payment_method", order.PaymentMethod),
	)

	return order, nil
}

// PayEntry settles a single cart entry in place. Paying an already paid entry
// is a no-op.
func (srv *checkoutService) PayEntry(ctx context.Context, entryID uuid.UUID) (*entity.CartEntry, error) {
	entries, err := srv.cartRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to load cart")
	}

	var target *entity.CartEntry
	for _, e := range entries {
		if e.ID == entryID {
			target = e

			break
		}
	}
	if target == nil {
		return nil, domainerrors.ErrCartEntryNotFound
	}

	if target.Paid {
		return target, nil
	}

	if err := srv.settle(ctx, srv.entryDelay); err != nil {
		return nil, err
	}

	target.Paid = true
	if err := srv.cartRepo.Save(ctx, entries); err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to save cart")
	}

	srv.log(ctx).Info("cart entry paid",
		slog.String("entry_id", target.ID.String()),
		slog.Int64("amount", target.Subtotal()),
	)

	return target, nil
}

// ListOrders returns all placed orders, newest first.
func (srv *checkoutService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to list orders")
	}

	return orders, nil
}

// settle blocks for the simulated processor delay, honoring cancellation.
func (srv *checkoutService) settle(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}

	select {
	case <-time.After(delay):
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

func validPaymentMethod(method string) bool {
	switch method {
	case entity.PaymentMethodCash, entity.PaymentMethodCard, entity.PaymentMethodBankTransfer:
		return true
	default:
		return false
	}
}
