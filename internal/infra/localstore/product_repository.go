package localstore

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/localstore/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// productRepository implements repository.ProductRepository over the store.
// The whole product list lives under one key; every mutation is a
// read-modify-write of that list, matching how the store was always used.
type productRepository struct {
	store Store
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(store Store) repository.ProductRepository {
	return &productRepository{store: store}
}

func (repo *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	records, err := repo.load(ctx)
	if err != nil {
		return nil, err
	}

	products := make([]*entity.Product, 0, len(records))
	for i := range records {
		products = append(products, records[i].ToEntity())
	}

	return products, nil
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	records, err := repo.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range records {
		if records[i].ID == id.String() {
			return records[i].ToEntity(), nil
		}
	}

	return nil, repository.ErrProductNotFound
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	records, err := repo.load(ctx)
	if err != nil {
		return err
	}

	// Newest first, as the product screen inserts.
	records = append([]model.ProductModel{*model.FromProductEntity(product)}, records...)

	return repo.save(ctx, records)
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	records, err := repo.load(ctx)
	if err != nil {
		return err
	}

	for i := range records {
		if records[i].ID == product.ID.String() {
			records[i] = *model.FromProductEntity(product)

			return repo.save(ctx, records)
		}
	}

	return repository.ErrProductNotFound
}

func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
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
		return repository.ErrProductNotFound
	}

	return repo.save(ctx, kept)
}

func (repo *productRepository) load(ctx context.Context) ([]model.ProductModel, error) {
	var records []model.ProductModel
	if err := repo.store.Get(ctx, KeyProducts, &records); err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to load product list")
	}

	return records, nil
}

func (repo *productRepository) save(ctx context.Context, records []model.ProductModel) error {
	if records == nil {
		records = []model.ProductModel{}
	}
	if err := repo.store.Put(ctx, KeyProducts, records); err != nil {
		return errors.Wrap(err, "failed to save product list")
	}

	return nil
}
