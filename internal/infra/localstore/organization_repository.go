package localstore

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/localstore/model"

	"github.com/pkg/errors"
)

// organizationRepository implements repository.OrganizationRepository over the store.
type organizationRepository struct {
	store Store
}

// NewOrganizationRepository is the constructor for organizationRepository.
func NewOrganizationRepository(store Store) repository.OrganizationRepository {
	return &organizationRepository{store: store}
}

func (repo *organizationRepository) Get(ctx context.Context) (*entity.Organization, error) {
	var m model.OrganizationModel
	if err := repo.store.Get(ctx, KeyOrganization, &m); err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, repository.ErrOrganizationNotFound
		}

		return nil, errors.Wrap(err, "failed to load organization")
	}

	return m.ToEntity(), nil
}

func (repo *organizationRepository) Save(ctx context.Context, org *entity.Organization) error {
	if err := repo.store.Put(ctx, KeyOrganization, model.FromOrganizationEntity(org)); err != nil {
		return errors.Wrap(err, "failed to save organization")
	}

	return nil
}
