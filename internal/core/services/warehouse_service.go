package services

import (
	"context"
	"errors"
	"log"
	"time"

	"antlogistics/internal/adapters/persistence/models"
	"antlogistics/internal/adapters/persistence/repositories"
	"antlogistics/internal/core/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// WarehouseService handles warehouse business logic
type WarehouseService struct {
	warehouseRepo repositories.WarehouseRepository
}

// NewWarehouseService creates a new warehouse service
func NewWarehouseService(warehouseRepo repositories.WarehouseRepository) *WarehouseService {
	return &WarehouseService{warehouseRepo: warehouseRepo}
}

// CreateWarehouseInput represents warehouse creation input
type CreateWarehouseInput struct {
	Name        string          `json:"name"`
	Code        string          `json:"code"`
	AddressLine string          `json:"address_line"`
	City        string          `json:"city"`
	CountryCode string          `json:"country_code"`
	PostalCode  string          `json:"postal_code"`
	DefaultZone string          `json:"default_zone"`
	Capacity    decimal.Decimal `json:"capacity"`
	IsActive    *bool           `json:"is_active"`
}

// Create creates a new warehouse. The duplicate pre-check is advisory; the
// unique index on code is the authoritative guard (see repository).
func (s *WarehouseService) Create(ctx context.Context, input *CreateWarehouseInput) (*models.Warehouse, error) {
	if domain.Blank(input.Code) {
		return nil, domain.Validationf("code is required")
	}
	if domain.Blank(input.Name) {
		return nil, domain.Validationf("name is required")
	}
	if input.Capacity.Sign() <= 0 {
		return nil, domain.Validationf("capacity must be > 0")
	}

	code := domain.NormalizeCode(input.Code)
	countryCode := domain.NormalizeCountryCode(input.CountryCode)
	if !domain.ValidCountryCode(countryCode) {
		return nil, domain.Validationf("country code must be two letters")
	}

	exists, err := s.warehouseRepo.ExistsByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.Conflictf("warehouse code exists")
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	warehouse := &models.Warehouse{
		Code:        code,
		Name:        input.Name,
		AddressLine: input.AddressLine,
		City:        input.City,
		CountryCode: countryCode,
		PostalCode:  input.PostalCode,
		DefaultZone: input.DefaultZone,
		Capacity:    input.Capacity,
		IsActive:    isActive,
	}

	if err := s.warehouseRepo.Create(ctx, warehouse); err != nil {
		return nil, err
	}

	log.Printf("✅ Warehouse created: %s (%s)", warehouse.Code, warehouse.ID)
	return warehouse, nil
}

// GetByID gets a warehouse by ID
func (s *WarehouseService) GetByID(ctx context.Context, id string) (*models.Warehouse, error) {
	warehouse, err := s.warehouseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundf("warehouse not found")
		}
		return nil, err
	}
	return warehouse, nil
}

// GetByCode gets a warehouse by code, accepting any casing
func (s *WarehouseService) GetByCode(ctx context.Context, code string) (*models.Warehouse, error) {
	warehouse, err := s.warehouseRepo.GetByCode(ctx, domain.NormalizeCode(code))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundf("warehouse not found")
		}
		return nil, err
	}
	return warehouse, nil
}

// List lists warehouses, active only unless includeInactive is set
func (s *WarehouseService) List(ctx context.Context, includeInactive bool) ([]*models.Warehouse, error) {
	warehouses, err := s.warehouseRepo.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	if warehouses == nil {
		warehouses = make([]*models.Warehouse, 0)
	}
	return warehouses, nil
}

// Deactivate soft-deletes a warehouse. The code stays occupied; codes are
// never recycled.
func (s *WarehouseService) Deactivate(ctx context.Context, id string) (*models.Warehouse, error) {
	warehouse, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if warehouse.IsActive {
		now := time.Now().UTC()
		warehouse.IsActive = false
		warehouse.DeactivatedAt = &now
		if err := s.warehouseRepo.Update(ctx, warehouse); err != nil {
			return nil, err
		}
		log.Printf("✅ Warehouse deactivated: %s", warehouse.Code)
	}

	return warehouse, nil
}
