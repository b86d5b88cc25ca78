// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OrganizationHandler *handler.OrganizationHandler
	ProductHandler      *handler.ProductHandler
	CatalogHandler      *handler.CatalogHandler
	CustomerHandler     *handler.CustomerHandler
	CartHandler         *handler.CartHandler
	CheckoutHandler     *handler.CheckoutHandler
	ShareHandler        *handler.ShareHandler
	ShareAuth           *middleware.ShareAuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// First-run setup and organization profile
	e.POST("/setup", r.params.OrganizationHandler.Setup)
	e.GET("/organization", r.params.OrganizationHandler.Get)

	// Product master list
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.params.ProductHandler.List)
		productGroup.POST("", r.params.ProductHandler.Create)
		productGroup.GET("/:id", r.params.ProductHandler.Get)
		productGroup.PUT("/:id", r.params.ProductHandler.Update)
		productGroup.DELETE("/:id", r.params.ProductHandler.Delete)
	}

	// Catalogs and their share links
	catalogGroup := e.Group("/catalogs")
	{
		catalogGroup.GET("", r.params.CatalogHandler.List)
		catalogGroup.POST("", r.params.CatalogHandler.Create)
		catalogGroup.GET("/:id", r.params.CatalogHandler.Get)
		catalogGroup.PUT("/:id", r.params.CatalogHandler.Update)
		catalogGroup.DELETE("/:id", r.params.CatalogHandler.Delete)
		catalogGroup.GET("/:id/view", r.params.CatalogHandler.View)
		catalogGroup.POST("/:id/share", r.params.CatalogHandler.CreateShareLink)
		catalogGroup.GET("/:id/share/qr", r.params.CatalogHandler.ShareQR)
	}

	// Customers, categories and catalog grants
	customerGroup := e.Group("/customers")
	{
		customerGroup.GET("", r.params.CustomerHandler.List)
		customerGroup.POST("", r.params.CustomerHandler.Create)
		customerGroup.GET("/categories", r.params.CustomerHandler.ListCategories)
		customerGroup.POST("/categories", r.params.CustomerHandler.AddCategory)
		customerGroup.GET("/:id", r.params.CustomerHandler.Get)
		customerGroup.PUT("/:id", r.params.CustomerHandler.Update)
		customerGroup.DELETE("/:id", r.params.CustomerHandler.Delete)
		customerGroup.GET("/:id/catalogs", r.params.CustomerHandler.EligibleCatalogs)
		customerGroup.PUT("/:id/catalog-access", r.params.CustomerHandler.GrantAccess)
	}

	// Cart and checkout
	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.params.CartHandler.Get)
		cartGroup.DELETE("", r.params.CartHandler.Clear)
		cartGroup.POST("/items", r.params.CartHandler.AddItem)
		cartGroup.PUT("/items/:id", r.params.CartHandler.UpdateItem)
		cartGroup.DELETE("/items/:id", r.params.CartHandler.RemoveItem)
		cartGroup.POST("/items/:id/pay", r.params.CheckoutHandler.PayItem)
	}
	e.POST("/checkout", r.params.CheckoutHandler.Checkout)
	e.GET("/orders", r.params.CheckoutHandler.ListOrders)

	// Shared catalog gate. OTP endpoints are public, the catalog view
	// requires the token minted at verification.
	shareGroup := e.Group("/share")
	{
		shareGroup.POST("/:slug/otp", r.params.ShareHandler.RequestOTP)
		shareGroup.POST("/:slug/verify", r.params.ShareHandler.VerifyOTP)
		shareGroup.GET("/:slug/catalog", r.params.ShareHandler.ViewCatalog, r.params.ShareAuth.Authenticate)
		shareGroup.GET("/access", r.params.ShareHandler.TakeAccess, r.params.ShareAuth.Authenticate)
	}
}
