package handlers

import (
	"antlogistics/internal/core/services"
	"antlogistics/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// WarehouseHandler handles warehouse endpoints
type WarehouseHandler struct {
	warehouseService *services.WarehouseService
}

// NewWarehouseHandler creates a new warehouse handler
func NewWarehouseHandler(warehouseService *services.WarehouseService) *WarehouseHandler {
	return &WarehouseHandler{warehouseService: warehouseService}
}

// Create handles warehouse creation
func (h *WarehouseHandler) Create(c *fiber.Ctx) error {
	var input services.CreateWarehouseInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	warehouse, err := h.warehouseService.Create(c.Context(), &input)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Created(c, "Warehouse created successfully", warehouse)
}

// GetByID handles warehouse retrieval by ID
func (h *WarehouseHandler) GetByID(c *fiber.Ctx) error {
	warehouse, err := h.warehouseService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Warehouse retrieved successfully", warehouse)
}

// GetByCode handles warehouse retrieval by code (any casing)
func (h *WarehouseHandler) GetByCode(c *fiber.Ctx) error {
	warehouse, err := h.warehouseService.GetByCode(c.Context(), c.Params("code"))
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Warehouse retrieved successfully", warehouse)
}

// List handles warehouse listing
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	includeInactive := c.QueryBool("include_inactive", false)

	warehouses, err := h.warehouseService.List(c.Context(), includeInactive)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Warehouses retrieved successfully", warehouses)
}

// Deactivate handles warehouse deactivation (soft delete)
func (h *WarehouseHandler) Deactivate(c *fiber.Ctx) error {
	warehouse, err := h.warehouseService.Deactivate(c.Context(), c.Params("id"))
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Warehouse deactivated successfully", warehouse)
}
