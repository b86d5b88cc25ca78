package impl

import (
	"context"
	"log/slog"

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

// organizationService implements the OrganizationUsecase interface.
type organizationService struct {
	orgRepo repository.OrganizationRepository
	clock   service.Clock
	logger  *slog.Logger
}

// OrganizationServiceParams holds dependencies for organizationService, injected by Fx.
type OrganizationServiceParams struct {
	fx.In

	OrgRepo repository.OrganizationRepository
	Clock   service.Clock
	Logger  *slog.Logger
}

// NewOrganizationService is the constructor for organizationService.
func NewOrganizationService(params OrganizationServiceParams) usecase.OrganizationUsecase {
	return &organizationService{
		orgRepo: params.OrgRepo,
		clock:   params.Clock,
		logger:  params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *organizationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Setup creates or replaces the organization profile.
func (srv *organizationService) Setup(ctx context.Context, input *usecase.SetupOrganizationInput) (*entity.Organization, error) {
	org := &entity.Organization{
		ID:         uuid.New(),
		Name:       input.Name,
		OwnerEmail: input.OwnerEmail,
		Industry:   input.Industry,
		CreatedAt:  srv.clock.Now(),
	}

	if err := srv.orgRepo.Save(ctx, org); err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to save organization")
	}

	srv.log(ctx).Info("organization profile created",
		slog.String("organization_id", org.ID.String()),
		slog.String("name", org.Name),
	)

	return org, nil
}

// Get returns the organization profile.
func (srv *organizationService) Get(ctx context.Context) (*entity.Organization, error) {
	org, err := srv.orgRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrOrganizationNotFound) {
			return nil, domainerrors.ErrOrganizationNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to load organization")
	}

	return org, nil
}
