package services

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// CronService runs the daily intake summary job (08:30)
type CronService struct {
	cron  *cron.Cron
	stats *StatsService
}

// NewCronService creates a new cron service
func NewCronService(db *gorm.DB) *CronService {
	return &CronService{
		cron:  cron.New(),
		stats: NewStatsService(db),
	}
}

// Start schedules and starts the jobs
func (s *CronService) Start() {
	_, err := s.cron.AddFunc("30 8 * * *", s.logDailyIntake)
	if err != nil {
		log.Printf("⚠️ Failed to schedule daily intake summary: %v", err)
		return
	}
	s.cron.Start()
	log.Println("✅ Cron service started (daily intake summary at 08:30)")
}

// Stop stops the cron scheduler
func (s *CronService) Stop() {
	s.cron.Stop()
}

func (s *CronService) logDailyIntake() {
	stats, err := s.stats.GetStats(context.Background())
	if err != nil {
		log.Printf("⚠️ Daily intake summary failed: %v", err)
		return
	}
	log.Printf("📊 Daily summary: %d stock records total, %d in the last 24h, %d active warehouses",
		stats.StockRecords, stats.IntakeLast24h, stats.ActiveWarehouses)
}
