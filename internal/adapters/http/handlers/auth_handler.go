package handlers

import (
	"time"

	"antlogistics/internal/adapters/http/middleware"
	"antlogistics/internal/config"
	"antlogistics/internal/core/services"
	"antlogistics/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// LoginRequest represents login request body
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates an operator and sets the session cookie. A failed
// attempt returns 200 with success=false; the response shape never reveals
// whether the username existed.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	result, err := h.authService.Authenticate(c.Context(), req.Username, req.Password)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	if !result.Success {
		return c.JSON(fiber.Map{"success": false})
	}

	h.setSessionCookie(c, result.Token, result.ExpiresAt)

	return c.JSON(fiber.Map{
		"success":    true,
		"username":   result.Username,
		"expires_at": result.ExpiresAt,
	})
}

// Logout clears the session cookie
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if username, ok := c.Locals("username").(string); ok {
		h.authService.Logout(username)
	}

	h.clearSessionCookie(c)

	return c.JSON(fiber.Map{"success": true})
}

// Me returns the authenticated operator's session info
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	username, ok := c.Locals("username").(string)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	return c.JSON(fiber.Map{
		"username": username,
		"role":     c.Locals("role"),
	})
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string, expiresAt time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})
}

func (h *AuthHandler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-1 * time.Hour),
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})
}
