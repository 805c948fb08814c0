package services

import (
	"context"
	"errors"
	"log"
	"time"

	"antlogistics/internal/adapters/persistence/models"
	"antlogistics/internal/adapters/persistence/repositories"
	"antlogistics/internal/core/domain"

	"gorm.io/gorm"
)

// CommodityService handles commodity business logic
type CommodityService struct {
	commodityRepo repositories.CommodityRepository
}

// NewCommodityService creates a new commodity service
func NewCommodityService(commodityRepo repositories.CommodityRepository) *CommodityService {
	return &CommodityService{commodityRepo: commodityRepo}
}

// CreateCommodityInput represents commodity creation input
type CreateCommodityInput struct {
	Sku               string `json:"sku"`
	Name              string `json:"name"`
	UnitOfMeasure     string `json:"unit_of_measure"`
	ControlParameters string `json:"control_parameters"`
	IsActive          *bool  `json:"is_active"`
}

// Create creates a new commodity. The duplicate pre-check is advisory; the
// unique index on sku is the authoritative guard.
func (s *CommodityService) Create(ctx context.Context, input *CreateCommodityInput) (*models.Commodity, error) {
	if domain.Blank(input.Sku) {
		return nil, domain.Validationf("sku is required")
	}
	if domain.Blank(input.Name) {
		return nil, domain.Validationf("name is required")
	}
	if domain.Blank(input.UnitOfMeasure) {
		return nil, domain.Validationf("unit of measure is required")
	}

	sku := domain.NormalizeSKU(input.Sku)

	exists, err := s.commodityRepo.ExistsBySku(ctx, sku)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.Conflictf("sku exists")
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	commodity := &models.Commodity{
		Sku:               sku,
		Name:              input.Name,
		UnitOfMeasure:     input.UnitOfMeasure,
		ControlParameters: input.ControlParameters,
		IsActive:          isActive,
	}

	if err := s.commodityRepo.Create(ctx, commodity); err != nil {
		return nil, err
	}

	log.Printf("✅ Commodity created: %s (%s)", commodity.Sku, commodity.ID)
	return commodity, nil
}

// GetByID gets a commodity by ID
func (s *CommodityService) GetByID(ctx context.Context, id string) (*models.Commodity, error) {
	commodity, err := s.commodityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundf("commodity not found")
		}
		return nil, err
	}
	return commodity, nil
}

// GetBySku gets a commodity by SKU, accepting any casing
func (s *CommodityService) GetBySku(ctx context.Context, sku string) (*models.Commodity, error) {
	commodity, err := s.commodityRepo.GetBySku(ctx, domain.NormalizeSKU(sku))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundf("commodity not found")
		}
		return nil, err
	}
	return commodity, nil
}

// List lists commodities, active only unless includeInactive is set
func (s *CommodityService) List(ctx context.Context, includeInactive bool) ([]*models.Commodity, error) {
	commodities, err := s.commodityRepo.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	if commodities == nil {
		commodities = make([]*models.Commodity, 0)
	}
	return commodities, nil
}

// Deactivate soft-deletes a commodity; the SKU stays occupied
func (s *CommodityService) Deactivate(ctx context.Context, id string) (*models.Commodity, error) {
	commodity, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if commodity.IsActive {
		now := time.Now().UTC()
		commodity.IsActive = false
		commodity.DeactivatedAt = &now
		if err := s.commodityRepo.Update(ctx, commodity); err != nil {
			return nil, err
		}
		log.Printf("✅ Commodity deactivated: %s", commodity.Sku)
	}

	return commodity, nil
}
