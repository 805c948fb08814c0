package middleware

import (
	"strings"

	"antlogistics/internal/config"
	"antlogistics/internal/core/domain"
	"antlogistics/internal/pkg/jwt"
	"antlogistics/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// SessionCookieName is the HTTP-only cookie carrying the session token
const SessionCookieName = "als_session"

// AuthMiddleware creates session validation middleware. The token is read
// from the session cookie first, then the Authorization header. Any
// validation failure is reported as unauthenticated, never as a 5xx.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookieName)

		if token == "" {
			authHeader := c.Get("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if token == "" {
			return response.Unauthorized(c, "Not authenticated")
		}

		claims, err := jwt.ValidateSessionToken(token, cfg.JWT.Secret)
		if err != nil {
			return response.Unauthorized(c, "Not authenticated")
		}

		c.Locals("operatorID", claims.OperatorID)
		c.Locals("username", claims.Username)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}

// RoleMiddleware creates role-based authorization middleware. Roles form a
// closed set; the check is a plain membership test.
func RoleMiddleware(allowedRoles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return response.Unauthorized(c, "Not authenticated")
		}

		for _, allowed := range allowedRoles {
			if domain.Role(role) == allowed {
				return c.Next()
			}
		}

		return response.Forbidden(c, "You don't have permission to access this resource")
	}
}

// AdminOnly middleware allows only the admin role
func AdminOnly() fiber.Handler {
	return RoleMiddleware(domain.RoleAdmin)
}
