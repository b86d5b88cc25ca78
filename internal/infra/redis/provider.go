package redis

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/localstore"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ShareRepositoryParams holds dependencies for the share repository provider.
type ShareRepositoryParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	Store  localstore.Store
}

// NewShareRepositoryProvider selects the OTP backing store from configuration.
// The default keeps everything in the local store; the redis provider moves
// the share gate state into Redis so challenge expiry is enforced by the
// server itself.
func NewShareRepositoryProvider(params ShareRepositoryParams) (repository.ShareRepository, error) {
	cfg := params.Config.OTP
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.OTPProviderLocal {
		return localstore.NewShareRepository(params.Store), nil
	}

	if cfg.Provider != constants.OTPProviderRedis {
		return nil, errors.Errorf("unknown otp provider: %s", cfg.Provider)
	}

	if params.Config.Redis == nil || params.Config.Redis.Addr == "" {
		return nil, errors.New("redis address is required for redis otp provider")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	if err := client.Ping(params.Ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to connect to redis")
	}

	logger.Info("Using Redis share repository",
		slog.String("addr", params.Config.Redis.Addr),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing Redis client")

			return client.Close()
		},
	})

	return NewShareRepository(client, cfg.TTL), nil
}
