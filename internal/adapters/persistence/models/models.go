package models

import (
	"time"

	"antlogistics/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ============================================================
// Master entities (soft-deleted via is_active, never removed)
// ============================================================

// Warehouse represents warehouses table
type Warehouse struct {
	ID            string          `gorm:"type:char(36);primaryKey" json:"id"`
	Code          string          `gorm:"uniqueIndex;size:50;not null" json:"code"`
	Name          string          `gorm:"size:200;not null" json:"name"`
	AddressLine   string          `gorm:"size:500;not null" json:"address_line"`
	City          string          `gorm:"size:100;not null" json:"city"`
	CountryCode   string          `gorm:"size:2;not null" json:"country_code"`
	PostalCode    string          `gorm:"size:20" json:"postal_code,omitempty"`
	DefaultZone   string          `gorm:"size:100;not null" json:"default_zone"`
	Capacity      decimal.Decimal `gorm:"type:decimal(15,3);not null" json:"capacity"`
	IsActive      bool            `gorm:"not null" json:"is_active"`
	DeactivatedAt *time.Time      `json:"deactivated_at,omitempty"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Warehouse) TableName() string {
	return "warehouses"
}

// BeforeCreate assigns the surrogate id and the zone default
func (w *Warehouse) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	if domain.Blank(w.DefaultZone) {
		w.DefaultZone = "DEFAULT"
	}
	return nil
}

// BeforeSave keeps identifier fields canonical no matter which code path
// wrote them
func (w *Warehouse) BeforeSave(tx *gorm.DB) error {
	w.Code = domain.NormalizeCode(w.Code)
	w.CountryCode = domain.NormalizeCountryCode(w.CountryCode)
	return nil
}

// Commodity represents commodities table
type Commodity struct {
	ID                string     `gorm:"type:char(36);primaryKey" json:"id"`
	Sku               string     `gorm:"uniqueIndex;size:100;not null" json:"sku"`
	Name              string     `gorm:"size:200;not null" json:"name"`
	UnitOfMeasure     string     `gorm:"size:20;not null" json:"unit_of_measure"`
	ControlParameters string     `gorm:"type:text;not null" json:"control_parameters"`
	IsActive          bool       `gorm:"not null" json:"is_active"`
	DeactivatedAt     *time.Time `json:"deactivated_at,omitempty"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Commodity) TableName() string {
	return "commodities"
}

func (c *Commodity) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if domain.Blank(c.ControlParameters) {
		c.ControlParameters = "{}"
	}
	return nil
}

func (c *Commodity) BeforeSave(tx *gorm.DB) error {
	c.Sku = domain.NormalizeSKU(c.Sku)
	return nil
}

// Operator represents operators table
type Operator struct {
	ID                 string     `gorm:"type:char(36);primaryKey" json:"id"`
	Username           string     `gorm:"uniqueIndex;size:50;not null" json:"username"`
	PasswordHash       string     `gorm:"size:255;not null" json:"-"`
	FullName           string     `gorm:"size:200;not null" json:"full_name"`
	Role               string     `gorm:"size:20;not null" json:"role"`
	IdleTimeoutMinutes int        `gorm:"not null" json:"idle_timeout_minutes"`
	IsActive           bool       `gorm:"not null" json:"is_active"`
	LastLoginAt        *time.Time `json:"last_login_at,omitempty"`
	CreatedAt          time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Operator) TableName() string {
	return "operators"
}

func (o *Operator) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.Role == "" {
		o.Role = string(domain.RoleOperator)
	}
	return nil
}

func (o *Operator) BeforeSave(tx *gorm.DB) error {
	o.Username = domain.NormalizeUsername(o.Username)
	return nil
}

// OperatorResponse DTO (never exposes the password hash)
type OperatorResponse struct {
	ID                 string     `json:"id"`
	Username           string     `json:"username"`
	FullName           string     `json:"full_name"`
	Role               string     `json:"role"`
	IdleTimeoutMinutes int        `json:"idle_timeout_minutes"`
	IsActive           bool       `json:"is_active"`
	LastLoginAt        *time.Time `json:"last_login_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

func (o *Operator) ToResponse() *OperatorResponse {
	return &OperatorResponse{
		ID:                 o.ID,
		Username:           o.Username,
		FullName:           o.FullName,
		Role:               o.Role,
		IdleTimeoutMinutes: o.IdleTimeoutMinutes,
		IsActive:           o.IsActive,
		LastLoginAt:        o.LastLoginAt,
		CreatedAt:          o.CreatedAt,
	}
}

// ============================================================
// Stock records (append-only audit trail)
// ============================================================

// StockRecord represents stock_records table. Rows are created once and
// never mutated or deleted.
type StockRecord struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	WarehouseID   string          `gorm:"type:char(36);not null;index:idx_stock_warehouse_occurred,priority:1" json:"warehouse_id"`
	CommodityID   string          `gorm:"type:char(36);not null;index:idx_stock_commodity_occurred,priority:1" json:"commodity_id"`
	Sku           string          `gorm:"size:100;not null" json:"sku"`
	UnitOfMeasure string          `gorm:"size:20;not null" json:"unit_of_measure"`
	Quantity      decimal.Decimal `gorm:"type:decimal(15,3);not null" json:"quantity"`
	WarehouseZone string          `gorm:"size:100;not null" json:"warehouse_zone"`
	OperatorID    *string         `gorm:"type:char(36)" json:"operator_id,omitempty"`
	CreatedBy     string          `gorm:"size:200;not null" json:"created_by"`
	Source        string          `gorm:"size:100;not null" json:"source"`
	OccurredAt    time.Time       `gorm:"not null;index:idx_stock_warehouse_occurred,priority:2;index:idx_stock_commodity_occurred,priority:2" json:"occurred_at"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	Metadata      string          `gorm:"type:text;not null" json:"metadata"`

	Warehouse *Warehouse `gorm:"foreignKey:WarehouseID" json:"-"`
	Commodity *Commodity `gorm:"foreignKey:CommodityID" json:"-"`
	Operator  *Operator  `gorm:"foreignKey:OperatorID" json:"-"`
}

func (StockRecord) TableName() string {
	return "stock_records"
}

// BeforeCreate stamps the audit timestamps and fills free-text defaults.
// Runs inside the insert transaction, so the stamps and the row succeed or
// fail together. OccurredAt falls back to CreatedAt so "occurred" never
// precedes "recorded" unless the caller backdated it.
func (r *StockRecord) BeforeCreate(tx *gorm.DB) error {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	if r.OccurredAt.IsZero() {
		r.OccurredAt = r.CreatedAt
	}
	if domain.Blank(r.CreatedBy) {
		r.CreatedBy = "system"
	}
	if domain.Blank(r.Source) {
		r.Source = "manual"
	}
	if domain.Blank(r.Metadata) {
		r.Metadata = "{}"
	}
	r.Sku = domain.NormalizeSKU(r.Sku)
	return nil
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate creates/updates all tables. The unique indexes declared on
// code, sku and username are the authoritative uniqueness guard; service
// pre-checks only exist to produce friendly errors first.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Warehouse{},
		&Commodity{},
		&Operator{},
		&StockRecord{},
	)
}
