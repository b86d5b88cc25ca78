package handler

import (
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ShareHandler holds dependencies for the shared-catalog gate handlers.
type ShareHandler struct {
	uc usecase.ShareUsecase
}

// NewShareHandler is the constructor for ShareHandler, injected by Fx.
func NewShareHandler(uc usecase.ShareUsecase) *ShareHandler {
	return &ShareHandler{uc: uc}
}

type requestOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type verifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required"`
}

// RequestOTP issues a verification code for the shared catalog.
func (h *ShareHandler) RequestOTP(c echo.Context) error {
	var req requestOTPRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	out, err := h.uc.RequestOTP(c.Request().Context(), &usecase.RequestOTPInput{
		Slug:  c.Param("slug"),
		Email: req.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, out, "Verification code sent")
}

// VerifyOTP checks a submitted code and returns an access token.
func (h *ShareHandler) VerifyOTP(c echo.Context) error {
	var req verifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	out, err := h.uc.VerifyOTP(c.Request().Context(), &usecase.VerifyOTPInput{
		Slug:  c.Param("slug"),
		Email: req.Email,
		Code:  req.Code,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, out, "Email verified")
}

// ViewCatalog returns the shared catalog for a verified visitor.
func (h *ShareHandler) ViewCatalog(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))

	out, err := h.uc.ViewSharedCatalog(c.Request().Context(), c.Param("slug"), page, pageSize)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, out, "")
}

// TakeAccess consumes the one-shot catalog-access handoff.
func (h *ShareHandler) TakeAccess(c echo.Context) error {
	access, err := h.uc.TakeCatalogAccess(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, access, "")
}
