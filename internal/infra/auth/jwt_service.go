// Package auth provides the share-access token implementation backing the OTP gate.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"storefront/config"
	"storefront/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	shareSecret string        // Secret key for signing share-access tokens.
	shareTTL    time.Duration // Time-to-live for share-access tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Share == "" {
		return nil, errors.New("share token secret must be provided")
	}
	return &jwtService{
		shareSecret: cfg.SecretKey.Share,
		shareTTL:    time.Hour * 24, // Long enough to browse and order in one sitting.
	}, nil
}

// GenerateShareToken creates a signed token bound to a share slug and verified email.
func (s *jwtService) GenerateShareToken(slug, email string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   email,                           // Subject (the verified visitor)
		"slug":  slug,                            // Catalog share slug the token is scoped to
		"iat":   time.Now().Unix(),               // Issued At
		"exp":   time.Now().Add(s.shareTTL).Unix(), // Expiration Time
		"scope": "share",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.shareSecret))
}

// ValidateShareToken checks a token string and extracts its share claims.
func (s *jwtService) ValidateShareToken(tokenString string) (*service.ShareClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.shareSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if scope, _ := claims["scope"].(string); scope != "share" {
		return nil, jwt.ErrTokenInvalidClaims
	}

	slug, _ := claims["slug"].(string)
	email, _ := claims["sub"].(string)
	if slug == "" || email == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return &service.ShareClaims{Slug: slug, Email: email}, nil
}

// ShareTokenDuration returns the configured duration for share-access tokens.
func (s *jwtService) ShareTokenDuration() time.Duration {
	return s.shareTTL
}
