package response

import (
	"errors"
	"log"
	"strings"

	"antlogistics/internal/core/domain"

	"github.com/gofiber/fiber/v2"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success sends a success response
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created sends a 201 created response
func Created(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error sends an error response
func Error(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Success: false,
		Error:   message,
	})
}

// BadRequest sends a 400 bad request response
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// Unauthorized sends a 401 unauthorized response
func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, message)
}

// Forbidden sends a 403 forbidden response
func Forbidden(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusForbidden, message)
}

// NotFound sends a 404 not found response
func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

// Conflict sends a 409 conflict response
func Conflict(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusConflict, message)
}

// InternalServerError sends a 500 internal server error response
func InternalServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

// FromDomainError maps a service error to the matching status code.
// Expected kinds keep their message; anything else is logged and surfaced
// as an opaque 500.
func FromDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return BadRequest(c, trimKind(err, domain.ErrValidation))
	case errors.Is(err, domain.ErrConflict):
		return Conflict(c, trimKind(err, domain.ErrConflict))
	case errors.Is(err, domain.ErrNotFound):
		return NotFound(c, trimKind(err, domain.ErrNotFound))
	case errors.Is(err, domain.ErrUnauthenticated):
		return Unauthorized(c, "Not authenticated")
	default:
		log.Printf("❌ Internal error on %s %s: %v", c.Method(), c.Path(), err)
		return InternalServerError(c, "Internal server error")
	}
}

// trimKind strips the "kind: " prefix added by the domain wrappers so
// clients see only the caller-facing message
func trimKind(err error, kind error) string {
	msg := err.Error()
	return strings.TrimPrefix(msg, kind.Error()+": ")
}
