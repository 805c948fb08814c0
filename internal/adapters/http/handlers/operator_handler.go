package handlers

import (
	"antlogistics/internal/core/services"
	"antlogistics/internal/pkg/pagination"
	"antlogistics/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// OperatorHandler handles operator management endpoints (admin)
type OperatorHandler struct {
	operatorService *services.OperatorService
}

// NewOperatorHandler creates a new operator handler
func NewOperatorHandler(operatorService *services.OperatorService) *OperatorHandler {
	return &OperatorHandler{operatorService: operatorService}
}

// Create handles operator creation
func (h *OperatorHandler) Create(c *fiber.Ctx) error {
	var input services.CreateOperatorInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	operator, err := h.operatorService.Create(c.Context(), &input)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Created(c, "Operator created successfully", operator)
}

// List handles paginated operator listing
func (h *OperatorHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	result, err := h.operatorService.List(c.Context(), params.Page, params.Limit)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Operators retrieved successfully", result)
}

// GetByID handles operator retrieval by ID
func (h *OperatorHandler) GetByID(c *fiber.Ctx) error {
	operator, err := h.operatorService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Operator retrieved successfully", operator)
}

// Update handles operator update by an admin
func (h *OperatorHandler) Update(c *fiber.Ctx) error {
	adminID, ok := c.Locals("operatorID").(string)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	var input services.UpdateOperatorInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	operator, err := h.operatorService.Update(c.Context(), c.Params("id"), adminID, &input)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Operator updated successfully", operator)
}

// ChangePassword handles an operator changing their own password
func (h *OperatorHandler) ChangePassword(c *fiber.Ctx) error {
	operatorID, ok := c.Locals("operatorID").(string)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	var input services.ChangePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.operatorService.ChangePassword(c.Context(), operatorID, &input); err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Password changed successfully", nil)
}
