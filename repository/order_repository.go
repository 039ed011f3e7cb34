package repository

import (
	"context"
	"errors"

	"marketplace-service/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
	FindBySellerID(ctx context.Context, sellerID uuid.UUID, page, limit int) ([]models.Order, int64, error)
	FindByBuyerID(ctx context.Context, buyerID uuid.UUID, page, limit int) ([]models.Order, int64, error)
	Update(ctx context.Context, order *models.Order) error
	ProcurementSummary(ctx context.Context, sellerID uuid.UUID) ([]models.ProcurementRow, error)
	SalesTotals(ctx context.Context, sellerID uuid.UUID) (*models.SalesReport, error)
}

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) OrderRepository {
	return &GormOrderRepository{db: db}
}

// Create persists the order header and its items in one transaction; GORM
// wraps the association insert so a failed item insert rolls back the header.
func (r *GormOrderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *GormOrderRepository) FindByID(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).
		Preload("OrderItems").
		First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *GormOrderRepository) FindBySellerID(ctx context.Context, sellerID uuid.UUID, page, limit int) ([]models.Order, int64, error) {
	return r.findPaginated(ctx, "seller_id = ?", sellerID, page, limit)
}

func (r *GormOrderRepository) FindByBuyerID(ctx context.Context, buyerID uuid.UUID, page, limit int) ([]models.Order, int64, error) {
	return r.findPaginated(ctx, "buyer_id = ?", buyerID, page, limit)
}

func (r *GormOrderRepository) findPaginated(ctx context.Context, cond string, id uuid.UUID, page, limit int) ([]models.Order, int64, error) {
	var orders []models.Order
	var total int64

	query := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where(cond, id)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.
		Preload("OrderItems").
		Offset(offset).
		Limit(limit).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *GormOrderRepository) Update(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

// ProcurementSummary sums outstanding item quantities across the seller's
// pending orders, grouped by product.
func (r *GormOrderRepository) ProcurementSummary(ctx context.Context, sellerID uuid.UUID) ([]models.ProcurementRow, error) {
	var rows []models.ProcurementRow
	err := r.db.WithContext(ctx).
		Table("order_items").
		Select("order_items.product_id, products.name, SUM(order_items.quantity) AS total_needed").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("orders.seller_id = ? AND orders.status = ?", sellerID, models.OrderStatusPending).
		Group("order_items.product_id, products.name").
		Order("total_needed DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormOrderRepository) SalesTotals(ctx context.Context, sellerID uuid.UUID) (*models.SalesReport, error) {
	report := models.SalesReport{SellerID: sellerID}
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Select("COUNT(*) AS completed_orders, COALESCE(SUM(total_amount), 0) AS revenue").
		Where("seller_id = ? AND status = ?", sellerID, models.OrderStatusCompleted).
		Scan(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}
