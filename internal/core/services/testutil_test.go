package services_test

import (
	"context"
	"testing"

	"antlogistics/internal/adapters/persistence/models"
	"antlogistics/internal/adapters/persistence/repositories"
	"antlogistics/internal/config"
	"antlogistics/internal/core/services"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory database with the full schema.
// Connection pool is pinned to one connection so every query sees the same
// in-memory database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// setupServices wires the full service stack against a fresh test database
func setupServices(t *testing.T) (*services.WarehouseService, *services.CommodityService, *services.StockService, *services.OperatorService, *services.AuthService, context.Context) {
	t.Helper()

	db := setupTestDB(t)

	warehouseRepo := repositories.NewWarehouseRepository(db)
	commodityRepo := repositories.NewCommodityRepository(db)
	operatorRepo := repositories.NewOperatorRepository(db)
	stockRepo := repositories.NewStockRecordRepository(db)

	cfg := &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:         "test_secret",
			SessionMinutes: 30,
		},
	}

	return services.NewWarehouseService(warehouseRepo),
		services.NewCommodityService(commodityRepo),
		services.NewStockService(stockRepo, warehouseRepo, commodityRepo, operatorRepo),
		services.NewOperatorService(operatorRepo),
		services.NewAuthService(operatorRepo, cfg),
		context.Background()
}

// seedWarehouse creates a warehouse with sensible defaults
func seedWarehouse(t *testing.T, svc *services.WarehouseService, ctx context.Context, code string) *models.Warehouse {
	t.Helper()

	warehouse, err := svc.Create(ctx, &services.CreateWarehouseInput{
		Name:        "Central DC",
		Code:        code,
		AddressLine: "1 Dock Road",
		City:        "Rotterdam",
		CountryCode: "NL",
		Capacity:    decimal.NewFromInt(50000),
	})
	if err != nil {
		t.Fatalf("Failed to seed warehouse %s: %v", code, err)
	}
	return warehouse
}

// seedCommodity creates a commodity with sensible defaults
func seedCommodity(t *testing.T, svc *services.CommodityService, ctx context.Context, sku string) *models.Commodity {
	t.Helper()

	commodity, err := svc.Create(ctx, &services.CreateCommodityInput{
		Sku:           sku,
		Name:          "Widget",
		UnitOfMeasure: "pcs",
	})
	if err != nil {
		t.Fatalf("Failed to seed commodity %s: %v", sku, err)
	}
	return commodity
}

// seedOperator creates an active operator account
func seedOperator(t *testing.T, svc *services.OperatorService, ctx context.Context, username, pass string) *models.OperatorResponse {
	t.Helper()

	operator, err := svc.Create(ctx, &services.CreateOperatorInput{
		Username: username,
		Password: pass,
		FullName: "Test Operator",
	})
	if err != nil {
		t.Fatalf("Failed to seed operator %s: %v", username, err)
	}
	return operator
}
