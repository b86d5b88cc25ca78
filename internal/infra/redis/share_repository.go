// Package redis provides a Redis-backed ShareRepository. Challenges carry a
// native TTL so expired codes vanish on their own instead of lingering in the
// store until the next overwrite.
package redis

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	challengeKeyPrefix = "storefront:otp"
	verifiedKeyPrefix  = "storefront:share_verified"
	accessKey          = "storefront:customer_catalog_access"
)

type shareRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewShareRepository builds a ShareRepository on top of a Redis client.
// ttl is the challenge lifetime; verification markers and the access
// handoff are not expired by Redis.
func NewShareRepository(client *redis.Client, ttl time.Duration) repository.ShareRepository {
	return &shareRepository{client: client, ttl: ttl}
}

type challengeRecord struct {
	Code    string    `json:"code"`
	Expires time.Time `json:"expires"`
}

type verificationRecord struct {
	Email string    `json:"email"`
	When  time.Time `json:"when"`
}

type accessRecord struct {
	CatalogID   string `json:"catalogId"`
	CatalogName string `json:"catalogName"`
	Category    string `json:"category"`
	Email       string `json:"email"`
}

func challengeKey(slug, email string) string {
	return strings.Join([]string{challengeKeyPrefix, slug, email}, ":")
}

func verifiedKey(slug, email string) string {
	return strings.Join([]string{verifiedKeyPrefix, slug, email}, ":")
}

func (repo *shareRepository) SaveChallenge(ctx context.Context, slug, email string, challenge *entity.OTPChallenge) error {
	payload, err := json.Marshal(challengeRecord{Code: challenge.Code, Expires: challenge.ExpiresAt})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := repo.client.Set(ctx, challengeKey(slug, email), payload, repo.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to save otp challenge")
	}

	return nil
}

func (repo *shareRepository) FindChallenge(ctx context.Context, slug, email string) (*entity.OTPChallenge, error) {
	raw, err := repo.client.Get(ctx, challengeKey(slug, email)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrChallengeNotFound
		}

		return nil, errors.Wrap(err, "failed to load otp challenge")
	}

	var rec challengeRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, errors.WithStack(err)
	}

	return &entity.OTPChallenge{Code: rec.Code, ExpiresAt: rec.Expires}, nil
}

func (repo *shareRepository) SaveVerification(ctx context.Context, slug, email string, verification *entity.ShareVerification) error {
	payload, err := json.Marshal(verificationRecord{Email: verification.Email, When: verification.VerifiedAt})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := repo.client.Set(ctx, verifiedKey(slug, email), payload, 0).Err(); err != nil {
		return errors.Wrap(err, "failed to save share verification")
	}

	return nil
}

func (repo *shareRepository) SaveAccess(ctx context.Context, access *entity.CatalogAccess) error {
	payload, err := json.Marshal(accessRecord{
		CatalogID:   access.CatalogID.String(),
		CatalogName: access.CatalogName,
		Category:    access.Category,
		Email:       access.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := repo.client.Set(ctx, accessKey, payload, 0).Err(); err != nil {
		return errors.Wrap(err, "failed to save catalog access handoff")
	}

	return nil
}

func (repo *shareRepository) TakeAccess(ctx context.Context) (*entity.CatalogAccess, error) {
	// GETDEL makes the handoff one-shot without a read-then-delete race.
	raw, err := repo.client.GetDel(ctx, accessKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrAccessNotFound
		}

		return nil, errors.Wrap(err, "failed to consume catalog access handoff")
	}

	var rec accessRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, errors.WithStack(err)
	}

	id, err := uuid.Parse(rec.CatalogID)
	if err != nil {
		id = uuid.Nil
	}

	return &entity.CatalogAccess{
		CatalogID:   id,
		CatalogName: rec.CatalogName,
		Category:    rec.Category,
		Email:       rec.Email,
	}, nil
}
