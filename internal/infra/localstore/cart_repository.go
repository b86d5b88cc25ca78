package localstore

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/localstore/model"

	"github.com/pkg/errors"
)

// cartRepository implements repository.CartRepository over the store.
type cartRepository struct {
	store Store
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(store Store) repository.CartRepository {
	return &cartRepository{store: store}
}

func (repo *cartRepository) List(ctx context.Context) ([]*entity.CartEntry, error) {
	var records []model.CartEntryModel
	if err := repo.store.Get(ctx, KeyCartHistory, &records); err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to load cart history")
	}

	entries := make([]*entity.CartEntry, 0, len(records))
	for i := range records {
		entries = append(entries, records[i].ToEntity())
	}

	return entries, nil
}

func (repo *cartRepository) Save(ctx context.Context, entries []*entity.CartEntry) error {
	records := make([]model.CartEntryModel, 0, len(entries))
	for _, e := range entries {
		records = append(records, *model.FromCartEntryEntity(e))
	}

	if err := repo.store.Put(ctx, KeyCartHistory, records); err != nil {
		return errors.Wrap(err, "failed to save cart history")
	}

	return nil
}

func (repo *cartRepository) Clear(ctx context.Context) error {
	// The original flow writes an empty list rather than deleting the key.
	if err := repo.store.Put(ctx, KeyCartHistory, []model.CartEntryModel{}); err != nil {
		return errors.Wrap(err, "failed to clear cart history")
	}

	return nil
}
