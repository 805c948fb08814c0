package config

import (
	"log"

	"antlogistics/internal/adapters/persistence/models"
	"antlogistics/internal/core/domain"
	"antlogistics/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedAdminOperator(); err != nil {
		log.Printf("⚠️ Admin seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedAdminOperator seeds a default admin operator.
// Development/testing only; in production create admins through a secure
// process and rotate this password immediately.
func (s *Seeder) seedAdminOperator() error {
	var count int64
	s.db.Model(&models.Operator{}).Where("role = ?", string(domain.RoleAdmin)).Count(&count)
	if count > 0 {
		return nil // Admin already exists
	}

	hashed, err := password.Hash("admin123456")
	if err != nil {
		return err
	}

	admin := &models.Operator{
		Username:           "admin",
		PasswordHash:       hashed,
		FullName:           "Default Administrator",
		Role:               string(domain.RoleAdmin),
		IdleTimeoutMinutes: 30,
		IsActive:           true,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Admin operator created: %s", admin.Username)
	return nil
}
