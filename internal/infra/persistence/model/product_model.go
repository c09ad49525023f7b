package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table. Categories are stored as JSONB
// via the GORM JSON serializer.
type ProductModel struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name           string           `gorm:"type:varchar(255);not null"`
	Description    string           `gorm:"type:text"`
	Price          decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	DiscountPrice  *decimal.Decimal `gorm:"type:decimal(10,2)"`
	Categories     []string         `gorm:"type:jsonb;serializer:json"`
	ImageURL       string           `gorm:"type:varchar(512)"`
	InventoryCount int              `gorm:"not null;default:0;check:inventory_count >= 0"`
	Active         bool             `gorm:"not null;default:true;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
