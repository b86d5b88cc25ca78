package handler

import (
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for catalog handlers.
type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

type priceOverrideRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	PriceMin  int64     `json:"priceMin" validate:"gte=0"`
	PriceMax  int64     `json:"priceMax" validate:"gte=0"`
}

type catalogRequest struct {
	Name              string                 `json:"name" validate:"required"`
	Category          string                 `json:"category"`
	Prices            []priceOverrideRequest `json:"prices" validate:"dive"`
	AllowedCategories []string               `json:"allowedCategories"`
}

func (r *catalogRequest) overrides() []usecase.PriceOverrideInput {
	prices := make([]usecase.PriceOverrideInput, 0, len(r.Prices))
	for _, p := range r.Prices {
		prices = append(prices, usecase.PriceOverrideInput{
			ProductID: p.ProductID,
			PriceMin:  p.PriceMin,
			PriceMax:  p.PriceMax,
		})
	}

	return prices
}

// List returns all catalogs.
func (h *CatalogHandler) List(c echo.Context) error {
	catalogs, err := h.uc.ListCatalogs(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, catalogs, "")
}

// Get returns a single catalog.
func (h *CatalogHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid catalog id")
	}

	catalog, err := h.uc.GetCatalog(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, catalog, "")
}

// Create adds a catalog.
func (h *CatalogHandler) Create(c echo.Context) error {
	var req catalogRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid catalog input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	catalog, err := h.uc.CreateCatalog(c.Request().Context(), &usecase.CreateCatalogInput{
		Name:              req.Name,
		Category:          req.Category,
		Prices:            req.overrides(),
		AllowedCategories: req.AllowedCategories,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, catalog, "Catalog created")
}

// Update replaces a catalog's editable fields.
func (h *CatalogHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid catalog id")
	}

	var req catalogRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid catalog input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	catalog, err := h.uc.UpdateCatalog(c.Request().Context(), id, &usecase.UpdateCatalogInput{
		Name:              req.Name,
		Category:          req.Category,
		Prices:            req.overrides(),
		AllowedCategories: req.AllowedCategories,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, catalog, "Catalog updated")
}

// Delete removes a catalog.
func (h *CatalogHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid catalog id")
	}

	if err := h.uc.DeleteCatalog(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Catalog deleted")
}

// View returns one page of the catalog's resolved product list.
func (h *CatalogHandler) View(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid catalog id")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))

	view, err := h.uc.ViewCatalog(c.Request().Context(), id, page, pageSize)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// CreateShareLink assigns the catalog a share slug and returns the link.
func (h *CatalogHandler) CreateShareLink(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid catalog id")
	}

	link, err := h.uc.CreateShareLink(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, link, "Share link ready")
}

// ShareQR streams the share link QR code as a PNG image.
func (h *CatalogHandler) ShareQR(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid catalog id")
	}

	link, err := h.uc.CreateShareLink(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", link.QRCode)
}
