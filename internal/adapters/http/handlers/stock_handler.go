package handlers

import (
	"strconv"
	"time"

	"antlogistics/internal/core/services"
	"antlogistics/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// StockHandler handles stock record endpoints
type StockHandler struct {
	stockService *services.StockService
}

// NewStockHandler creates a new stock handler
func NewStockHandler(stockService *services.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// Create handles stock record creation
func (h *StockHandler) Create(c *fiber.Ctx) error {
	var input services.CreateStockRecordInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	record, err := h.stockService.Create(c.Context(), &input)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Created(c, "Stock record created successfully", record)
}

// GetByID handles stock record retrieval by ID
func (h *StockHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "Invalid stock record id")
	}

	record, err := h.stockService.GetByID(c.Context(), id)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Stock record retrieved successfully", record)
}

// List handles filtered stock record listing. Filters combine with AND;
// from/to are inclusive RFC 3339 timestamps.
func (h *StockHandler) List(c *fiber.Ctx) error {
	input := &services.ListStockRecordsInput{
		WarehouseID: c.Query("warehouse_id"),
		CommodityID: c.Query("commodity_id"),
		Limit:       c.QueryInt("limit", 0),
	}

	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return response.BadRequest(c, "Invalid 'from' timestamp, expected RFC 3339")
		}
		input.From = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return response.BadRequest(c, "Invalid 'to' timestamp, expected RFC 3339")
		}
		input.To = &t
	}

	records, err := h.stockService.List(c.Context(), input)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Stock records retrieved successfully", records)
}
