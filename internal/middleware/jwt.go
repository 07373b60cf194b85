package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	authpkg "github.com/nibashhq/marketplace-api/internal/auth"
)

// unauthorized rejects the request without running downstream handlers.
func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]any{"ok": false, "error": "Unauthorized"})
}

// RequireVendorJWT validates a vendor bearer token and stores the vendor id in
// the request context. Customer tokens are rejected; the two gates are not
// interchangeable.
func RequireVendorJWT(manager *authpkg.JWTManager) echo.MiddlewareFunc {
	return requireRole(manager, authpkg.RoleVendor, ContextKeyVendorID)
}

// RequireCustomerJWT validates a customer bearer token and stores the customer
// id in the request context.
func RequireCustomerJWT(manager *authpkg.JWTManager) echo.MiddlewareFunc {
	return requireRole(manager, authpkg.RoleCustomer, ContextKeyCustomerID)
}

func requireRole(manager *authpkg.JWTManager, role, idKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return unauthorized(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return unauthorized(c)
			}

			claims, err := manager.ParseToken(parts[1])
			if err != nil {
				return unauthorized(c)
			}
			if claims.Role != role {
				return unauthorized(c)
			}

			id, err := claims.ActorID()
			if err != nil {
				return unauthorized(c)
			}

			c.Set(idKey, id)
			c.Set(ContextKeyEmail, claims.Email)

			return next(c)
		}
	}
}
