package middleware

import (
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ShareAuthMiddleware guards shared-catalog routes with the access token
// minted after OTP verification.
type ShareAuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewShareAuthMiddleware is the constructor for ShareAuthMiddleware.
func NewShareAuthMiddleware(tokenSvc service.TokenService) *ShareAuthMiddleware {
	return &ShareAuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer share token and checks that it is scoped
// to the slug being accessed.
func (m *ShareAuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "SHARE_TOKEN_INVALID", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "SHARE_TOKEN_INVALID", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateShareToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "SHARE_TOKEN_INVALID", "Invalid or expired share token")
		}

		if slug := c.Param("slug"); slug != "" && claims.Slug != slug {
			return response.Forbidden(c, "SHARE_TOKEN_INVALID", "Token is not valid for this catalog")
		}

		deliverycontext.SetShareEmail(c, claims.Email)

		return next(c)
	}
}
