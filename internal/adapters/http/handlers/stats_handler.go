package handlers

import (
	"antlogistics/internal/core/services"
	"antlogistics/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// StatsHandler handles dashboard stats endpoints
type StatsHandler struct {
	statsService *services.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStats returns system-wide counters for the SPA dashboard
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.statsService.GetStats(c.Context())
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Stats retrieved successfully", stats)
}
