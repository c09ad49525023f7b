package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. The shipping and billing addresses
// are flattened into prefixed column groups via GORM's embedded struct
// support; the item snapshots live in 'order_items'.
type OrderModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderNumber   string    `gorm:"type:varchar(30);unique;not null"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Status        string    `gorm:"type:varchar(20);not null;index"`
	PaymentStatus string    `gorm:"type:varchar(20);not null"`
	PaymentMethod string    `gorm:"type:varchar(20);not null"`

	Subtotal       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TaxAmount      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ShippingAmount decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	ShippingAddress AddressColumns `gorm:"embedded;embeddedPrefix:shipping_"`
	BillingAddress  AddressColumns `gorm:"embedded;embeddedPrefix:billing_"`

	CustomerNotes         string `gorm:"type:text"`
	TrackingNumber        string `gorm:"type:varchar(100)"`
	EstimatedDeliveryDate *time.Time
	ShippedAt             *time.Time
	DeliveredAt           *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	Items []*OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// AddressColumns is the structured postal address embedded into the orders
// table under a shipping_ or billing_ prefix.
type AddressColumns struct {
	Line1      string `gorm:"type:varchar(255)"`
	Line2      string `gorm:"type:varchar(255)"`
	City       string `gorm:"type:varchar(100)"`
	State      string `gorm:"type:varchar(100)"`
	PostalCode string `gorm:"type:varchar(20)"`
	Country    string `gorm:"type:varchar(2)"`
}

// OrderItemModel mirrors the 'order_items' table: an immutable point-in-time
// snapshot of the product at checkout.
type OrderItemModel struct {
	ID                 uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID            uuid.UUID        `gorm:"type:uuid;not null;index"`
	ProductID          uuid.UUID        `gorm:"type:uuid;not null"`
	ProductName        string           `gorm:"type:varchar(255);not null"`
	ProductDescription string           `gorm:"type:text"`
	ProductCategory    string           `gorm:"type:varchar(100)"`
	ProductImageURL    string           `gorm:"type:varchar(512)"`
	Quantity           int              `gorm:"not null"`
	Price              decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	DiscountPrice      *decimal.Decimal `gorm:"type:decimal(10,2)"`
	UnitPrice          decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	TotalPrice         decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
