package repositories

import (
	"context"

	"antlogistics/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// stockRecordRepository implements StockRecordRepository interface
type stockRecordRepository struct {
	db *gorm.DB
}

// NewStockRecordRepository creates a new stock record repository
func NewStockRecordRepository(db *gorm.DB) StockRecordRepository {
	return &stockRecordRepository{db: db}
}

// Create inserts a stock record. The model's BeforeCreate hook stamps the
// audit timestamps inside the same transaction as the insert.
func (r *stockRecordRepository) Create(ctx context.Context, record *models.StockRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// GetByID gets a stock record by ID
func (r *stockRecordRepository) GetByID(ctx context.Context, id int64) (*models.StockRecord, error) {
	var record models.StockRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// List lists stock records matching the filter, most recent occurrence
// first. Caller is responsible for clamping filter.Limit.
func (r *stockRecordRepository) List(ctx context.Context, filter StockFilter) ([]*models.StockRecord, error) {
	query := r.db.WithContext(ctx).Model(&models.StockRecord{})

	if filter.WarehouseID != "" {
		query = query.Where("warehouse_id = ?", filter.WarehouseID)
	}
	if filter.CommodityID != "" {
		query = query.Where("commodity_id = ?", filter.CommodityID)
	}
	if filter.From != nil {
		query = query.Where("occurred_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("occurred_at <= ?", *filter.To)
	}

	records := make([]*models.StockRecord, 0)
	err := query.
		Order("occurred_at DESC").
		Limit(filter.Limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
