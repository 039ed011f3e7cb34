package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order holds the lines a buyer purchased from exactly one seller. A cart
// spanning several sellers becomes several orders, one PlaceOrder call each.
type Order struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SellerID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"seller_id"`
	BuyerID       *uuid.UUID      `gorm:"type:uuid;index" json:"buyer_id,omitempty"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_amount"`
	Status        OrderStatus     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	PaymentMethod string          `gorm:"type:varchar(20);not null" json:"payment_method"`
	CompletedAt   *time.Time      `json:"completed_at,omitempty"`
	CanceledAt    *time.Time      `json:"canceled_at,omitempty"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	OrderItems    []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_items"`
}

// OrderItem snapshots the unit price at purchase time; it is never updated
// after creation, even if the product price changes later.
type OrderItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null" json:"product_id"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
}
