package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultOTPTTL is the challenge lifetime when none is configured.
const defaultOTPTTL = 5 * time.Minute

// shareService implements the ShareUsecase interface: the email OTP gate in
// front of shared catalogs.
type shareService struct {
	shareRepo     repository.ShareRepository
	catalogRepo   repository.CatalogRepository
	productRepo   repository.ProductRepository
	codeGenerator service.CodeGenerator
	tokenService  service.TokenService
	clock         service.Clock
	ttl           time.Duration
	debug         bool
	logger        *slog.Logger
}

// ShareServiceParams holds dependencies for shareService, injected by Fx.
type ShareServiceParams struct {
	fx.In

	ShareRepo     repository.ShareRepository
	CatalogRepo   repository.CatalogRepository
	ProductRepo   repository.ProductRepository
	CodeGenerator service.CodeGenerator
	TokenService  service.TokenService
	Clock         service.Clock
	Config        *config.Config
	Logger        *slog.Logger
}

// NewShareService is the constructor for shareService.
func NewShareService(params ShareServiceParams) usecase.ShareUsecase {
	ttl := defaultOTPTTL
	debug := false
	if params.Config != nil {
		if params.Config.OTP != nil && params.Config.OTP.TTL > 0 {
			ttl = params.Config.OTP.TTL
		}
		debug = params.Config.Env.Debug
	}

	return &shareService{
		shareRepo:     params.ShareRepo,
		catalogRepo:   params.CatalogRepo,
		productRepo:   params.ProductRepo,
		codeGenerator: params.CodeGenerator,
		tokenService:  params.TokenService,
		clock:         params.Clock,
		ttl:           ttl,
		debug:         debug,
		logger:        params.Logger,
	}
}

func (srv *shareService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestOTP issues a fresh challenge for the (slug, email) pair. Requesting
// again before expiry overwrites the previous challenge.
func (srv *shareService) RequestOTP(ctx context.Context, input *usecase.RequestOTPInput) (*usecase.RequestOTPOutput, error) {
	if _, err := srv.findCatalog(ctx, input.Slug); err != nil {
		return nil, err
	}

	email := normalizeEmail(input.Email)

	code, err := srv.codeGenerator.Generate()
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage("failed to generate code")
	}

	challenge := &entity.OTPChallenge{
		Code:      code,
		ExpiresAt: srv.clock.Now().Add(srv.ttl),
	}

	if err := srv.shareRepo.SaveChallenge(ctx, input.Slug, email, challenge); err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to save challenge")
	}

	// There is no mail delivery in this demo; the code is surfaced in the
	// server log the way the original surfaced it in the console.
	srv.log(ctx).Info("share verification code issued",
		slog.String("slug", input.Slug),
		slog.String("email", email),
		slog.String("code", code),
		slog.String("valid_for", util.FormatDuration(srv.ttl)),
		slog.Time("expires_at", challenge.ExpiresAt),
	)

	out := &usecase.RequestOTPOutput{
		Email:     email,
		ExpiresAt: challenge.ExpiresAt,
	}
	if srv.debug {
		out.Code = code
	}

	return out, nil
}

// VerifyOTP checks a submitted code. On success it records the verification,
// writes the one-shot catalog-access handoff and mints a share-access token.
// The challenge itself is left in place until it expires, so a verified code
// can be replayed within its lifetime.
func (srv *shareService) VerifyOTP(ctx context.Context, input *usecase.VerifyOTPInput) (*usecase.VerifyOTPOutput, error) {
	catalog, err := srv.findCatalog(ctx, input.Slug)
	if err != nil {
		return nil, err
	}

	email := normalizeEmail(input.Email)

	challenge, err := srv.shareRepo.FindChallenge(ctx, input.Slug, email)
	if err != nil {
		if errors.Is(err, repository.ErrChallengeNotFound) {
			return nil, domainerrors.ErrOTPNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to load challenge")
	}

	now := srv.clock.Now()
	if challenge.Expired(now) {
		return nil, domainerrors.ErrOTPExpired
	}

	if strings.TrimSpace(input.Code) != challenge.Code {
		return nil, domainerrors.ErrOTPMismatch
	}

	verification := &entity.ShareVerification{Email: email, VerifiedAt: now}
	if err := srv.shareRepo.SaveVerification(ctx, input.Slug, email, verification); err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to save verification")
	}

	access := &entity.CatalogAccess{
		CatalogID:   catalog.ID,
		CatalogName: catalog.Name,
		Category:    catalog.Category,
		Email:       email,
	}
	if err := srv.shareRepo.SaveAccess(ctx, access); err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to save access handoff")
	}

	token, err := srv.tokenService.GenerateShareToken(input.Slug, email)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage("failed to mint access token")
	}

	srv.log(ctx).Info("share verification succeeded",
		slog.String("slug", input.Slug),
		slog.String("email", email),
	)

	return &usecase.VerifyOTPOutput{
		Token:       token,
		ExpiresIn:   srv.tokenService.ShareTokenDuration(),
		CatalogID:   catalog.ID.String(),
		CatalogName: catalog.Name,
	}, nil
}

// ViewSharedCatalog resolves a shared catalog's product page for a verified visitor.
func (srv *shareService) ViewSharedCatalog(ctx context.Context, slug string, page, pageSize int) (*usecase.SharedCatalogOutput, error) {
	catalog, err := srv.findCatalog(ctx, slug)
	if err != nil {
		return nil, err
	}

	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to list products")
	}

	items := resolveCatalogItems(catalog, products)
	pageItems, total, currentPage, totalPages := paginate(items, page, pageSize)

	return &usecase.SharedCatalogOutput{
		Catalog:    catalog,
		Items:      pageItems,
		Total:      total,
		Page:       currentPage,
		TotalPages: totalPages,
	}, nil
}

// TakeCatalogAccess consumes the one-shot handoff written at verification.
func (srv *shareService) TakeCatalogAccess(ctx context.Context) (*entity.CatalogAccess, error) {
	access, err := srv.shareRepo.TakeAccess(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrAccessNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("no catalog access pending")
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to consume access handoff")
	}

	return access, nil
}

// findCatalog resolves a share slug, hiding whether the slug ever existed.
func (srv *shareService) findCatalog(ctx context.Context, slug string) (*entity.Catalog, error) {
	catalog, err := srv.catalogRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrCatalogNotFound) {
			return nil, domainerrors.ErrShareLinkInvalid
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to resolve share link")
	}

	return catalog, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
