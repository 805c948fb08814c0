package services

import (
	"context"
	"time"

	"antlogistics/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// StatsService aggregates counts for the SPA dashboard/status widgets.
// Works directly on the db handle; these are read-only reporting queries.
type StatsService struct {
	db *gorm.DB
}

// NewStatsService creates a new stats service
func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// Stats represents system-wide counters
type Stats struct {
	Warehouses        int64 `json:"warehouses"`
	ActiveWarehouses  int64 `json:"active_warehouses"`
	Commodities       int64 `json:"commodities"`
	ActiveCommodities int64 `json:"active_commodities"`
	Operators         int64 `json:"operators"`
	StockRecords      int64 `json:"stock_records"`
	IntakeLast24h     int64 `json:"intake_last_24h"`
}

// GetStats returns system-wide counters
func (s *StatsService) GetStats(ctx context.Context) (*Stats, error) {
	db := s.db.WithContext(ctx)
	stats := &Stats{}

	counts := []struct {
		query *gorm.DB
		dest  *int64
	}{
		{db.Model(&models.Warehouse{}), &stats.Warehouses},
		{db.Model(&models.Warehouse{}).Where("is_active = ?", true), &stats.ActiveWarehouses},
		{db.Model(&models.Commodity{}), &stats.Commodities},
		{db.Model(&models.Commodity{}).Where("is_active = ?", true), &stats.ActiveCommodities},
		{db.Model(&models.Operator{}), &stats.Operators},
		{db.Model(&models.StockRecord{}), &stats.StockRecords},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	since := time.Now().UTC().Add(-24 * time.Hour)
	err := db.Model(&models.StockRecord{}).
		Where("created_at >= ?", since).
		Count(&stats.IntakeLast24h).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}
