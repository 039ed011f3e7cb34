package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProcurementRow answers "how much of this product do pending orders need".
type ProcurementRow struct {
	ProductID   uuid.UUID `json:"product_id"`
	Name        string    `json:"name"`
	TotalNeeded int       `json:"total_needed"`
}

type SalesReport struct {
	SellerID        uuid.UUID       `json:"seller_id"`
	CompletedOrders int64           `json:"completed_orders"`
	Revenue         decimal.Decimal `json:"revenue"`
}
