package localstore

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/localstore/model"

	"github.com/pkg/errors"
)

// shareRepository implements repository.ShareRepository over the store.
// Challenges and verification markers live under composite per-pair keys;
// the catalog-access handoff is a single one-shot key.
type shareRepository struct {
	store Store
}

// NewShareRepository is the constructor for shareRepository.
func NewShareRepository(store Store) repository.ShareRepository {
	return &shareRepository{store: store}
}

func (repo *shareRepository) SaveChallenge(ctx context.Context, slug, email string, challenge *entity.OTPChallenge) error {
	if err := repo.store.Put(ctx, OTPKey(slug, email), model.FromOTPChallengeEntity(challenge)); err != nil {
		return errors.Wrap(err, "failed to save otp challenge")
	}

	return nil
}

func (repo *shareRepository) FindChallenge(ctx context.Context, slug, email string) (*entity.OTPChallenge, error) {
	var m model.OTPChallengeModel
	if err := repo.store.Get(ctx, OTPKey(slug, email), &m); err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, repository.ErrChallengeNotFound
		}

		return nil, errors.Wrap(err, "failed to load otp challenge")
	}

	return m.ToEntity(), nil
}

func (repo *shareRepository) SaveVerification(ctx context.Context, slug, email string, verification *entity.ShareVerification) error {
	if err := repo.store.Put(ctx, VerifiedKey(slug, email), model.FromShareVerificationEntity(verification)); err != nil {
		return errors.Wrap(err, "failed to save share verification")
	}

	return nil
}

func (repo *shareRepository) SaveAccess(ctx context.Context, access *entity.CatalogAccess) error {
	if err := repo.store.Put(ctx, KeyCatalogAccess, model.FromCatalogAccessEntity(access)); err != nil {
		return errors.Wrap(err, "failed to save catalog access handoff")
	}

	return nil
}

func (repo *shareRepository) TakeAccess(ctx context.Context) (*entity.CatalogAccess, error) {
	var m model.CatalogAccessModel
	if err := repo.store.Get(ctx, KeyCatalogAccess, &m); err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, repository.ErrAccessNotFound
		}

		return nil, errors.Wrap(err, "failed to load catalog access handoff")
	}

	// One-shot: consumed on read.
	if err := repo.store.Delete(ctx, KeyCatalogAccess); err != nil {
		return nil, errors.Wrap(err, "failed to consume catalog access handoff")
	}

	return m.ToEntity(), nil
}
