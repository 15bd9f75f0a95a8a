package middleware

import (
	"strings"

	"mazao/internal/delivery/api/response"
	"mazao/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID   = "userID"
	contextKeyUsername = "username"
)

// AuthMiddleware provides middleware for session token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the admin identity
// on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(contextKeyUserID, claims.UserID)
		c.Set(contextKeyUsername, claims.Username)

		return next(c)
	}
}

// GetUserID returns the authenticated admin's user ID from the context.
// It must be used after the Authenticate middleware.
func GetUserID(c echo.Context) (string, bool) {
	id, ok := c.Get(contextKeyUserID).(string)

	return id, ok && id != ""
}

// GetUsername returns the authenticated admin's username from the context.
func GetUsername(c echo.Context) (string, bool) {
	name, ok := c.Get(contextKeyUsername).(string)

	return name, ok && name != ""
}
