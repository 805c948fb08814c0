package repositories

import (
	"context"
	"errors"

	"antlogistics/internal/adapters/persistence/models"
	"antlogistics/internal/core/domain"

	"gorm.io/gorm"
)

// operatorRepository implements OperatorRepository interface
type operatorRepository struct {
	db *gorm.DB
}

// NewOperatorRepository creates a new operator repository
func NewOperatorRepository(db *gorm.DB) OperatorRepository {
	return &operatorRepository{db: db}
}

// Create inserts an operator; the unique index on username backstops the
// service-level duplicate pre-check
func (r *operatorRepository) Create(ctx context.Context, operator *models.Operator) error {
	if err := r.db.WithContext(ctx).Create(operator).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Conflictf("username exists")
		}
		return err
	}
	return nil
}

// GetByID gets an operator by ID
func (r *operatorRepository) GetByID(ctx context.Context, id string) (*models.Operator, error) {
	var operator models.Operator
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&operator).Error
	if err != nil {
		return nil, err
	}
	return &operator, nil
}

// GetByUsername gets an operator by canonical username
func (r *operatorRepository) GetByUsername(ctx context.Context, username string) (*models.Operator, error) {
	var operator models.Operator
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&operator).Error
	if err != nil {
		return nil, err
	}
	return &operator, nil
}

// List lists operators with pagination
func (r *operatorRepository) List(ctx context.Context, offset, limit int) ([]*models.Operator, int64, error) {
	var operators []*models.Operator
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Operator{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("username").
		Offset(offset).
		Limit(limit).
		Find(&operators).Error
	if err != nil {
		return nil, 0, err
	}

	return operators, total, nil
}

// Update updates an operator
func (r *operatorRepository) Update(ctx context.Context, operator *models.Operator) error {
	return r.db.WithContext(ctx).Save(operator).Error
}

// ExistsByUsername checks if a username is already taken
func (r *operatorRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Operator{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

// ExistsByID checks if an operator exists, active or not
func (r *operatorRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Operator{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
