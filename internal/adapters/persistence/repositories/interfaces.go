package repositories

import (
	"context"
	"time"

	"antlogistics/internal/adapters/persistence/models"
)

// WarehouseRepository defines warehouse data access
type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *models.Warehouse) error
	GetByID(ctx context.Context, id string) (*models.Warehouse, error)
	GetByCode(ctx context.Context, code string) (*models.Warehouse, error)
	List(ctx context.Context, includeInactive bool) ([]*models.Warehouse, error)
	Update(ctx context.Context, warehouse *models.Warehouse) error
	ExistsByCode(ctx context.Context, code string) (bool, error)
}

// CommodityRepository defines commodity data access
type CommodityRepository interface {
	Create(ctx context.Context, commodity *models.Commodity) error
	GetByID(ctx context.Context, id string) (*models.Commodity, error)
	GetBySku(ctx context.Context, sku string) (*models.Commodity, error)
	List(ctx context.Context, includeInactive bool) ([]*models.Commodity, error)
	Update(ctx context.Context, commodity *models.Commodity) error
	ExistsBySku(ctx context.Context, sku string) (bool, error)
}

// OperatorRepository defines operator data access
type OperatorRepository interface {
	Create(ctx context.Context, operator *models.Operator) error
	GetByID(ctx context.Context, id string) (*models.Operator, error)
	GetByUsername(ctx context.Context, username string) (*models.Operator, error)
	List(ctx context.Context, offset, limit int) ([]*models.Operator, int64, error)
	Update(ctx context.Context, operator *models.Operator) error
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
}

// StockFilter narrows a stock record listing. All fields are optional and
// combine with AND semantics; time bounds are inclusive.
type StockFilter struct {
	WarehouseID string
	CommodityID string
	From        *time.Time
	To          *time.Time
	Limit       int
}

// StockRecordRepository defines stock record data access (append-only)
type StockRecordRepository interface {
	Create(ctx context.Context, record *models.StockRecord) error
	GetByID(ctx context.Context, id int64) (*models.StockRecord, error)
	List(ctx context.Context, filter StockFilter) ([]*models.StockRecord, error)
}
