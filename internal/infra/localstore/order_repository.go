package localstore

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/localstore/model"

	"github.com/pkg/errors"
)

// orderRepository implements repository.OrderRepository over the store.
type orderRepository struct {
	store Store
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(store Store) repository.OrderRepository {
	return &orderRepository{store: store}
}

func (repo *orderRepository) List(ctx context.Context) ([]*entity.Order, error) {
	var records []model.OrderModel
	if err := repo.store.Get(ctx, KeyOrders, &records); err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to load order list")
	}

	orders := make([]*entity.Order, 0, len(records))
	for i := range records {
		orders = append(orders, records[i].ToEntity())
	}

	return orders, nil
}

func (repo *orderRepository) Append(ctx context.Context, order *entity.Order) error {
	var records []model.OrderModel
	if err := repo.store.Get(ctx, KeyOrders, &records); err != nil && !errors.Is(err, ErrKeyNotFound) {
		return errors.Wrap(err, "failed to load order list")
	}

	records = append(records, *model.FromOrderEntity(order))

	if err := repo.store.Put(ctx, KeyOrders, records); err != nil {
		return errors.Wrap(err, "failed to save order list")
	}

	return nil
}
