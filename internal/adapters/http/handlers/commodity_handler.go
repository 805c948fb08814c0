package handlers

import (
	"antlogistics/internal/core/services"
	"antlogistics/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CommodityHandler handles commodity endpoints
type CommodityHandler struct {
	commodityService *services.CommodityService
}

// NewCommodityHandler creates a new commodity handler
func NewCommodityHandler(commodityService *services.CommodityService) *CommodityHandler {
	return &CommodityHandler{commodityService: commodityService}
}

// Create handles commodity creation
func (h *CommodityHandler) Create(c *fiber.Ctx) error {
	var input services.CreateCommodityInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	commodity, err := h.commodityService.Create(c.Context(), &input)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Created(c, "Commodity created successfully", commodity)
}

// GetByID handles commodity retrieval by ID
func (h *CommodityHandler) GetByID(c *fiber.Ctx) error {
	commodity, err := h.commodityService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Commodity retrieved successfully", commodity)
}

// GetBySku handles commodity retrieval by SKU (any casing)
func (h *CommodityHandler) GetBySku(c *fiber.Ctx) error {
	commodity, err := h.commodityService.GetBySku(c.Context(), c.Params("sku"))
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Commodity retrieved successfully", commodity)
}

// List handles commodity listing
func (h *CommodityHandler) List(c *fiber.Ctx) error {
	includeInactive := c.QueryBool("include_inactive", false)

	commodities, err := h.commodityService.List(c.Context(), includeInactive)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Commodities retrieved successfully", commodities)
}

// Deactivate handles commodity deactivation (soft delete)
func (h *CommodityHandler) Deactivate(c *fiber.Ctx) error {
	commodity, err := h.commodityService.Deactivate(c.Context(), c.Params("id"))
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Commodity deactivated successfully", commodity)
}
