package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a physical listing owned by a single seller. Stock is mutated
// only through the order path; everything else is plain catalog data.
type Product struct {
	ID             uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OwnerID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name           string          `gorm:"not null" json:"name"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	StockQuantity  int             `gorm:"not null;default:0" json:"stock_quantity"`
	DeliveryFee    decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"delivery_fee"`
	IsReturnable   bool            `gorm:"not null;default:false" json:"is_returnable"`
	Variants       []byte          `gorm:"type:jsonb" json:"variants,omitempty"`
	WholesaleTiers []byte          `gorm:"type:jsonb" json:"wholesale_tiers,omitempty"`
	ImageURL       string          `json:"image_url"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// Service is a bookable offering owned by a single provider. AutoApprove
// decides whether bookings start confirmed or pending.
type Service struct {
	ID                 uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OwnerID            uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name               string          `gorm:"not null" json:"name"`
	Price              decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	DurationMins       int             `gorm:"not null" json:"duration_mins"`
	ServiceType        string          `json:"service_type"`
	ServiceLocation    string          `json:"service_location"`
	AutoApprove        bool            `gorm:"not null;default:false" json:"auto_approve"`
	CancellationPolicy string          `json:"cancellation_policy"`
	CreatedAt          time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}
