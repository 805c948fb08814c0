package repositories

import (
	"context"
	"errors"

	"antlogistics/internal/adapters/persistence/models"
	"antlogistics/internal/core/domain"

	"gorm.io/gorm"
)

// warehouseRepository implements WarehouseRepository interface
type warehouseRepository struct {
	db *gorm.DB
}

// NewWarehouseRepository creates a new warehouse repository
func NewWarehouseRepository(db *gorm.DB) WarehouseRepository {
	return &warehouseRepository{db: db}
}

// Create inserts a warehouse. The unique index on code is the authoritative
// guard against duplicates; its violation surfaces as the same ConflictError
// the service pre-check produces.
func (r *warehouseRepository) Create(ctx context.Context, warehouse *models.Warehouse) error {
	if err := r.db.WithContext(ctx).Create(warehouse).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Conflictf("warehouse code exists")
		}
		return err
	}
	return nil
}

// GetByID gets a warehouse by ID
func (r *warehouseRepository) GetByID(ctx context.Context, id string) (*models.Warehouse, error) {
	var warehouse models.Warehouse
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&warehouse).Error
	if err != nil {
		return nil, err
	}
	return &warehouse, nil
}

// GetByCode gets a warehouse by its canonical code
func (r *warehouseRepository) GetByCode(ctx context.Context, code string) (*models.Warehouse, error) {
	var warehouse models.Warehouse
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&warehouse).Error
	if err != nil {
		return nil, err
	}
	return &warehouse, nil
}

// List lists warehouses, active only unless includeInactive is set
func (r *warehouseRepository) List(ctx context.Context, includeInactive bool) ([]*models.Warehouse, error) {
	var warehouses []*models.Warehouse
	query := r.db.WithContext(ctx).Order("code")
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&warehouses).Error; err != nil {
		return nil, err
	}
	return warehouses, nil
}

// Update updates a warehouse
func (r *warehouseRepository) Update(ctx context.Context, warehouse *models.Warehouse) error {
	return r.db.WithContext(ctx).Save(warehouse).Error
}

// ExistsByCode checks if a warehouse code is already taken
func (r *warehouseRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Warehouse{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}
