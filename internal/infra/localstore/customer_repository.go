package localstore

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/localstore/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// customerRepository implements repository.CustomerRepository over the store.
type customerRepository struct {
	store Store
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(store Store) repository.CustomerRepository {
	return &customerRepository{store: store}
}

func (repo *customerRepository) List(ctx context.Context) ([]*entity.Customer, error) {
	records, err := repo.load(ctx)
	if err != nil {
		return nil, err
	}

	customers := make([]*entity.Customer, 0, len(records))
	for i := range records {
		customers = append(customers, records[i].ToEntity())
	}

	return customers, nil
}

func (repo *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	records, err := repo.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range records {
		if records[i].ID == id.String() {
			return records[i].ToEntity(), nil
		}
	}

	return nil, repository.ErrCustomerNotFound
}

func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	records, err := repo.load(ctx)
	if err != nil {
		return err
	}

	records = append([]model.CustomerModel{*model.FromCustomerEntity(customer)}, records...)

	return repo.save(ctx, records)
}

func (repo *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	records, err := repo.load(ctx)
	if err != nil {
		return err
	}

	for i := range records {
		if records[i].ID == customer.ID.String() {
			records[i] = *model.FromCustomerEntity(customer)

			return repo.save(ctx, records)
		}
	}

	return repository.ErrCustomerNotFound
}

func (repo *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	records, err := repo.load(ctx)
	if err != nil {
		return err
	}

	kept := records[:0]
	found := false
	for i := range records {
		if records[i].ID == id.String() {
			found = true

			continue
		}
		kept = append(kept, records[i])
	}
	if !found {
		return repository.ErrCustomerNotFound
	}

	return repo.save(ctx, kept)
}

func (repo *customerRepository) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := repo.store.Get(ctx, KeyCustomerCategories, &categories); err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return entity.DefaultCustomerCategories(), nil
		}

		return nil, errors.Wrap(err, "failed to load customer categories")
	}

	return categories, nil
}

func (repo *customerRepository) SaveCategories(ctx context.Context, categories []string) error {
	if categories == nil {
		categories = []string{}
	}
	if err := repo.store.Put(ctx, KeyCustomerCategories, categories); err != nil {
		return errors.Wrap(err, "failed to save customer categories")
	}

	return nil
}

func (repo *customerRepository) load(ctx context.Context) ([]model.CustomerModel, error) {
	var records []model.CustomerModel
	if err := repo.store.Get(ctx, KeyCustomers, &records); err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to load customer list")
	}

	return records, nil
}

func (repo *customerRepository) save(ctx context.Context, records []model.CustomerModel) error {
	if records == nil {
		records = []model.CustomerModel{}
	}
	if err := repo.store.Put(ctx, KeyCustomers, records); err != nil {
		return errors.Wrap(err, "failed to save customer list")
	}

	return nil
}
