package impl

import (
	"context"
	"log/slog"
	"strings"

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

// customerService implements the CustomerUsecase interface.
type customerService struct {
	customerRepo repository.CustomerRepository
	catalogRepo  repository.CatalogRepository
	clock        service.Clock
	logger       *slog.Logger
}

// CustomerServiceParams holds dependencies for customerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	CustomerRepo repository.CustomerRepository
	CatalogRepo  repository.CatalogRepository
	Clock        service.Clock
	Logger       *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		customerRepo: params.CustomerRepo,
		catalogRepo:  params.CatalogRepo,
		clock:        params.Clock,
		logger:       params.Logger,
	}
}

func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCustomers returns all customers, newest first.
func (srv *customerService) ListCustomers(ctx context.Context) ([]*entity.Customer, error) {
	customers, err := srv.customerRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to list customers")
	}

	return customers, nil
}

// GetCustomer returns a single customer by id.
func (srv *customerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to load customer")
	}

	return customer, nil
}

// CreateCustomer registers a customer.
func (srv *customerService) CreateCustomer(ctx context.Context, input *usecase.CreateCustomerInput) (*entity.Customer, error) {
	customer := &entity.Customer{
		ID:            uuid.New(),
		Name:          input.Name,
		Email:         input.Email,
		Category:      input.Category,
		CatalogAccess: []uuid.UUID{},
		CreatedAt:     srv.clock.Now(),
	}

	if err := srv.customerRepo.Create(ctx, customer); err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to create customer")
	}

	srv.log(ctx).Info("customer created",
		slog.String("customer_id", customer.ID.String()),
		slog.String("name", customer.Name),
	)

	return customer, nil
}

// UpdateCustomer replaces a customer's editable fields. Granted catalogs are
// preserved even when the category changes.
func (srv *customerService) UpdateCustomer(ctx context.Context, id uuid.UUID, input *usecase.UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := srv.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	customer.Name = input.Name
	customer.Email = input.Email
	customer.Category = input.Category

	if err := srv.customerRepo.Update(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to update customer")
	}

	return customer, nil
}

// DeleteCustomer removes a customer and their grants.
func (srv *customerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	if err := srv.customerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return domainerrors.ErrCustomerNotFound
		}

		return domainerrors.NewStoreExecuteError(err, "failed to delete customer")
	}

	srv.log(ctx).Info("customer deleted", slog.String("customer_id", id.String()))

	return nil
}

// ListCategories returns the customer-category list, seeding the defaults the
// first time it is read.
func (srv *customerService) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := srv.customerRepo.ListCategories(ctx)
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to list customer categories")
	}

	if len(categories) == 0 {
		categories = entity.DefaultCustomerCategories()
		if err := srv.customerRepo.SaveCategories(ctx, categories); err != nil {
			return nil, domainerrors.NewStoreExecuteError(err, "failed to seed customer categories")
		}
	}

	return categories, nil
}

// AddCategory appends a customer category unless it already exists.
func (srv *customerService) AddCategory(ctx context.Context, name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("category name must not be empty")
	}

	categories, err := srv.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	for _, c := range categories {
		if strings.EqualFold(c, name) {
			return nil, domainerrors.ErrConflict.WrapMessage("category already exists")
		}
	}

	categories = append(categories, name)
	if err := srv.customerRepo.SaveCategories(ctx, categories); err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to save customer categories")
	}

	return categories, nil
}

// EligibleCatalogs lists the catalogs a customer can be granted: those in the
// customer's own category plus the "Default" ones.
func (srv *customerService) EligibleCatalogs(ctx context.Context, customerID uuid.UUID) ([]*entity.Catalog, error) {
	customer, err := srv.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	catalogs, err := srv.catalogRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to list catalogs")
	}

	eligible := make([]*entity.Catalog, 0, len(catalogs))
	for _, c := range catalogs {
		if c.Category == customer.Category || c.Category == "Default" {
			eligible = append(eligible, c)
		}
	}

	return eligible, nil
}

// GrantAccess replaces the customer's granted catalog set after checking each
// catalog against the customer's eligible set.
func (srv *customerService) GrantAccess(ctx context.Context, input *usecase.GrantAccessInput) (*entity.Customer, error) {
	customer, err := srv.GetCustomer(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}

	// The grant replaces the whole list as submitted. Eligibility shapes the
	// pick-list (EligibleCatalogs); the stored grants themselves are not
	// checked against existing catalogs.
	customer.CatalogAccess = input.CatalogIDs
	if customer.CatalogAccess == nil {
		customer.CatalogAccess = []uuid.UUID{}
	}

	if err := srv.customerRepo.Update(ctx, customer); err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to save catalog grants")
	}

	srv.log(ctx).Info("catalog access granted",
		slog.String("customer_id", customer.ID.String()),
		slog.Int("catalog_count", len(customer.CatalogAccess)),
	)

	return customer, nil
}
