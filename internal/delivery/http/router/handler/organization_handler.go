package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrganizationHandler holds dependencies for organization profile handlers.
type OrganizationHandler struct {
	uc usecase.OrganizationUsecase
}

// NewOrganizationHandler is the constructor for OrganizationHandler, injected by Fx.
func NewOrganizationHandler(uc usecase.OrganizationUsecase) *OrganizationHandler {
	return &OrganizationHandler{uc: uc}
}

type setupRequest struct {
	Name       string `json:"name" validate:"required"`
	OwnerEmail string `json:"ownerEmail" validate:"omitempty,email"`
	Industry   string `json:"industry"`
}

// Setup handles the first-run organization setup request.
func (h *OrganizationHandler) Setup(c echo.Context) error {
	var req setupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid setup input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	org, err := h.uc.Setup(c.Request().Context(), &usecase.SetupOrganizationInput{
		Name:       req.Name,
		OwnerEmail: req.OwnerEmail,
		Industry:   req.Industry,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, org, "Organization created")
}

// Get returns the organization profile.
func (h *OrganizationHandler) Get(c echo.Context) error {
	org, err := h.uc.Get(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, org, "")
}
