package repositories

import (
	"context"
	"errors"

	"antlogistics/internal/adapters/persistence/models"
	"antlogistics/internal/core/domain"

	"gorm.io/gorm"
)

// commodityRepository implements CommodityRepository interface
type commodityRepository struct {
	db *gorm.DB
}

// NewCommodityRepository creates a new commodity repository
func NewCommodityRepository(db *gorm.DB) CommodityRepository {
	return &commodityRepository{db: db}
}

// Create inserts a commodity; the unique index on sku backstops the
// service-level duplicate pre-check
func (r *commodityRepository) Create(ctx context.Context, commodity *models.Commodity) error {
	if err := r.db.WithContext(ctx).Create(commodity).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Conflictf("sku exists")
		}
		return err
	}
	return nil
}

// GetByID gets a commodity by ID
func (r *commodityRepository) GetByID(ctx context.Context, id string) (*models.Commodity, error) {
	var commodity models.Commodity
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&commodity).Error
	if err != nil {
		return nil, err
	}
	return &commodity, nil
}

// GetBySku gets a commodity by its canonical SKU
func (r *commodityRepository) GetBySku(ctx context.Context, sku string) (*models.Commodity, error) {
	var commodity models.Commodity
	err := r.db.WithContext(ctx).Where("sku = ?", sku).First(&commodity).Error
	if err != nil {
		return nil, err
	}
	return &commodity, nil
}

// List lists commodities, active only unless includeInactive is set
func (r *commodityRepository) List(ctx context.Context, includeInactive bool) ([]*models.Commodity, error) {
	var commodities []*models.Commodity
	query := r.db.WithContext(ctx).Order("sku")
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&commodities).Error; err != nil {
		return nil, err
	}
	return commodities, nil
}

// Update updates a commodity
func (r *commodityRepository) Update(ctx context.Context, commodity *models.Commodity) error {
	return r.db.WithContext(ctx).Save(commodity).Error
}

// ExistsBySku checks if a SKU is already taken
func (r *commodityRepository) ExistsBySku(ctx context.Context, sku string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Commodity{}).Where("sku = ?", sku).Count(&count).Error
	return count > 0, err
}
