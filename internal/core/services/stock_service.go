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

const (
	// DefaultStockLimit is used when the caller does not supply a limit
	DefaultStockLimit = 100
	// MaxStockLimit caps any requested limit
	MaxStockLimit = 1000
)

// StockService handles stock record business logic
type StockService struct {
	stockRepo     repositories.StockRecordRepository
	warehouseRepo repositories.WarehouseRepository
	commodityRepo repositories.CommodityRepository
	operatorRepo  repositories.OperatorRepository
}

// NewStockService creates a new stock service
func NewStockService(
	stockRepo repositories.StockRecordRepository,
	warehouseRepo repositories.WarehouseRepository,
	commodityRepo repositories.CommodityRepository,
	operatorRepo repositories.OperatorRepository,
) *StockService {
	return &StockService{
		stockRepo:     stockRepo,
		warehouseRepo: warehouseRepo,
		commodityRepo: commodityRepo,
		operatorRepo:  operatorRepo,
	}
}

// CreateStockRecordInput represents stock record creation input
type CreateStockRecordInput struct {
	WarehouseID   string          `json:"warehouse_id"`
	CommodityID   string          `json:"commodity_id"`
	Quantity      decimal.Decimal `json:"quantity"`
	WarehouseZone string          `json:"warehouse_zone"`
	OperatorID    *string         `json:"operator_id"`
	CreatedBy     string          `json:"created_by"`
	Source        string          `json:"source"`
	OccurredAt    *time.Time      `json:"occurred_at"`
	Metadata      string          `json:"metadata"`
}

// ListStockRecordsInput represents stock record listing filters
type ListStockRecordsInput struct {
	WarehouseID string
	CommodityID string
	From        *time.Time
	To          *time.Time
	Limit       int
}

// Create creates a stock record. Both references must resolve to active
// rows; sku and unit of measure are copied from the commodity at write time
// so later renames never rewrite history.
func (s *StockService) Create(ctx context.Context, input *CreateStockRecordInput) (*models.StockRecord, error) {
	if input.Quantity.Sign() <= 0 {
		return nil, domain.Validationf("quantity must be > 0")
	}

	warehouse, err := s.warehouseRepo.GetByID(ctx, input.WarehouseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundf("warehouse not found or inactive")
		}
		return nil, err
	}
	if !warehouse.IsActive {
		return nil, domain.NotFoundf("warehouse not found or inactive")
	}

	commodity, err := s.commodityRepo.GetByID(ctx, input.CommodityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundf("commodity not found or inactive")
		}
		return nil, err
	}
	if !commodity.IsActive {
		return nil, domain.NotFoundf("commodity not found or inactive")
	}

	// Operator must exist if supplied; it does not have to be active
	if input.OperatorID != nil && *input.OperatorID != "" {
		exists, err := s.operatorRepo.ExistsByID(ctx, *input.OperatorID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, domain.NotFoundf("operator not found")
		}
	}

	zone := input.WarehouseZone
	if domain.Blank(zone) {
		zone = warehouse.DefaultZone
	}

	record := &models.StockRecord{
		WarehouseID:   warehouse.ID,
		CommodityID:   commodity.ID,
		Sku:           commodity.Sku,
		UnitOfMeasure: commodity.UnitOfMeasure,
		Quantity:      input.Quantity,
		WarehouseZone: zone,
		OperatorID:    input.OperatorID,
		CreatedBy:     input.CreatedBy,
		Source:        input.Source,
		Metadata:      input.Metadata,
	}
	if input.OccurredAt != nil {
		record.OccurredAt = *input.OccurredAt
	}

	if err := s.stockRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	log.Printf("✅ Stock record %d created: %s x %s @ %s",
		record.ID, record.Quantity, record.Sku, warehouse.Code)
	return record, nil
}

// GetByID gets a stock record by ID
func (s *StockService) GetByID(ctx context.Context, id int64) (*models.StockRecord, error) {
	record, err := s.stockRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundf("stock record not found")
		}
		return nil, err
	}
	return record, nil
}

// List lists stock records, most recent occurrence first. The limit
// defaults to DefaultStockLimit and is clamped to MaxStockLimit regardless
// of caller input. Returns an empty slice, never nil, when nothing matches.
func (s *StockService) List(ctx context.Context, input *ListStockRecordsInput) ([]*models.StockRecord, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultStockLimit
	}
	if limit > MaxStockLimit {
		limit = MaxStockLimit
	}

	records, err := s.stockRepo.List(ctx, repositories.StockFilter{
		WarehouseID: input.WarehouseID,
		CommodityID: input.CommodityID,
		From:        input.From,
		To:          input.To,
		Limit:       limit,
	})
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = make([]*models.StockRecord, 0)
	}
	return records, nil
}
