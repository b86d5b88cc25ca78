package localstore

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/localstore/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// catalogRepository implements repository.CatalogRepository over the store.
type catalogRepository struct {
	store Store
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(store Store) repository.CatalogRepository {
	return &catalogRepository{store: store}
}

func (repo *catalogRepository) List(ctx context.Context) ([]*entity.Catalog, error) {
	records, err := repo.load(ctx)
	if err != nil {
		return nil, err
	}

	catalogs := make([]*entity.Catalog, 0, len(records))
	for i := range records {
		catalogs = append(catalogs, records[i].ToEntity())
	}

	return catalogs, nil
}

func (repo *catalogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Catalog, error) {
	records, err := repo.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range records {
		if records[i].ID == id.String() {
			return records[i].ToEntity(), nil
		}
	}

	return nil, repository.ErrCatalogNotFound
}

func (repo *catalogRepository) FindBySlug(ctx context.Context, slug string) (*entity.Catalog, error) {
	if slug == "" {
		return nil, repository.ErrCatalogNotFound
	}

	records, err := repo.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range records {
		if records[i].Slug == slug {
			return records[i].ToEntity(), nil
		}
	}

	return nil, repository.ErrCatalogNotFound
}

func (repo *catalogRepository) Create(ctx context.Context, catalog *entity.Catalog) error {
	records, err := repo.load(ctx)
	if err != nil {
		return err
	}

	records = append([]model.CatalogModel{*model.FromCatalogEntity(catalog)}, records...)

	return repo.save(ctx, records)
}

func (repo *catalogRepository) Update(ctx context.Context, catalog *entity.Catalog) error {
	records, err := repo.load(ctx)
	if err != nil {
		return err
	}

	for i := range records {
		if records[i].ID == catalog.ID.String() {
			records[i] = *model.FromCatalogEntity(catalog)

			return repo.save(ctx, records)
		}
	}

	return repository.ErrCatalogNotFound
}

func (repo *catalogRepository) Delete(ctx context.Context, id uuid.UUID) error {
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
		return repository.ErrCatalogNotFound
	}

	return repo.save(ctx, kept)
}

func (repo *catalogRepository) load(ctx context.Context) ([]model.CatalogModel, error) {
	var records []model.CatalogModel
	if err := repo.store.Get(ctx, KeyCatalogs, &records); err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to load catalog list")
	}

	return records, nil
}

func (repo *catalogRepository) save(ctx context.Context, records []model.CatalogModel) error {
	if records == nil {
		records = []model.CatalogModel{}
	}
	if err := repo.store.Put(ctx, KeyCatalogs, records); err != nil {
		return errors.Wrap(err, "failed to save catalog list")
	}

	return nil
}
