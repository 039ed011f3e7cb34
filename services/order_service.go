package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"marketplace-service/models"
	"marketplace-service/repository"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Pricing source for order items. "request" snapshots the unit price sent by
// the client (cart-time price lock); "catalog" re-reads the current product
// price inside PlaceOrder. Either way the chosen price is frozen on the item.
const (
	PriceSourceRequest = "request"
	PriceSourceCatalog = "catalog"
)

type PlaceOrderItem struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	Price     decimal.Decimal `json:"price"`
}

type PlaceOrderRequest struct {
	SellerID      uuid.UUID        `json:"seller_id" binding:"required"`
	BuyerID       *uuid.UUID       `json:"buyer_id"`
	PaymentMethod string           `json:"payment_method"`
	Items         []PlaceOrderItem `json:"items" binding:"required,dive"`
}

type PlaceOrderResult struct {
	OrderID uuid.UUID          `json:"order_id"`
	Total   decimal.Decimal    `json:"total"`
	Status  models.OrderStatus `json:"status"`
	// SkippedStock lists products whose stock decrement was skipped because
	// the remaining stock was too low or the product row was missing. The
	// order itself still succeeded.
	SkippedStock []uuid.UUID `json:"skipped_stock,omitempty"`
}

type OrderListResponse struct {
	Orders []models.Order `json:"orders"`
	Meta   MetaData       `json:"meta"`
}

type OrderService interface {
	PlaceOrder(ctx context.Context, req *PlaceOrderRequest) (*PlaceOrderResult, *ServiceError)
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, newStatus string) *ServiceError
	GetSellerOrders(ctx context.Context, sellerID uuid.UUID, page, limit int) (*OrderListResponse, *ServiceError)
	GetBuyerOrders(ctx context.Context, buyerID uuid.UUID, page, limit int) (*OrderListResponse, *ServiceError)
	GetOrderByID(ctx context.Context, orderID uuid.UUID) (*models.Order, *ServiceError)
}

type orderService struct {
	orders      repository.OrderRepository
	products    repository.ProductRepository
	notifier    NotificationEmitter
	priceSource string
	logger      *zap.Logger
}

func NewOrderService(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	notifier NotificationEmitter,
	priceSource string,
	logger *zap.Logger,
) OrderService {
	if priceSource != PriceSourceCatalog {
		priceSource = PriceSourceRequest
	}
	return &orderService{
		orders:      orders,
		products:    products,
		notifier:    notifier,
		priceSource: priceSource,
		logger:      logger,
	}
}

// PlaceOrder creates one order for one seller. The header and its items are
// written atomically; stock decrements and the seller notification run after
// the commit and never fail the call.
func (s *orderService) PlaceOrder(ctx context.Context, req *PlaceOrderRequest) (*PlaceOrderResult, *ServiceError) {
	if len(req.Items) == 0 {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "At least one item is required"}
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, &ServiceError{
				StatusCode: http.StatusBadRequest,
				Message:    fmt.Sprintf("Invalid quantity for product %s", item.ProductID),
			}
		}
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "cod"
	}

	unitPrices, serviceErr := s.resolveUnitPrices(ctx, req.Items)
	if serviceErr != nil {
		return nil, serviceErr
	}

	total := decimal.Zero
	orderItems := lo.Map(req.Items, func(item PlaceOrderItem, i int) models.OrderItem {
		return models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     unitPrices[i],
		}
	})
	for i, item := range req.Items {
		total = total.Add(unitPrices[i].Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	order := &models.Order{
		SellerID:      req.SellerID,
		BuyerID:       req.BuyerID,
		TotalAmount:   total,
		Status:        models.OrderStatusPending,
		PaymentMethod: paymentMethod,
		OrderItems:    orderItems,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		s.logger.Error("order create failed",
			zap.String("seller_id", req.SellerID.String()),
			zap.Error(err),
		)
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to create order"}
	}

	// Best-effort stock decrements; the conditional update keeps stock from
	// going negative, and a miss is reported but does not undo the order.
	var skipped []uuid.UUID
	for _, item := range req.Items {
		if err := s.products.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			s.logger.Warn("stock decrement skipped",
				zap.String("order_id", order.ID.String()),
				zap.String("product_id", item.ProductID.String()),
				zap.Int("quantity", item.Quantity),
				zap.Error(err),
			)
			skipped = append(skipped, item.ProductID)
		}
	}

	s.notifier.Emit(ctx, req.SellerID,
		"New order received",
		fmt.Sprintf("You received a new order worth %s.", total.StringFixed(2)),
		models.TypeOrderCreated,
		&order.ID,
	)

	s.logger.Info("order created",
		zap.String("order_id", order.ID.String()),
		zap.String("seller_id", req.SellerID.String()),
		zap.Int("items", len(orderItems)),
		zap.String("total", total.StringFixed(2)),
	)

	return &PlaceOrderResult{
		OrderID:      order.ID,
		Total:        total,
		Status:       order.Status,
		SkippedStock: skipped,
	}, nil
}

func (s *orderService) resolveUnitPrices(ctx context.Context, items []PlaceOrderItem) ([]decimal.Decimal, *ServiceError) {
	prices := make([]decimal.Decimal, len(items))

	for i, item := range items {
		if s.priceSource == PriceSourceCatalog {
			product, err := s.products.FindByID(ctx, item.ProductID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return nil, &ServiceError{
						StatusCode: http.StatusNotFound,
						Message:    fmt.Sprintf("Product %s not found", item.ProductID),
					}
				}
				s.logger.Error("product lookup failed", zap.String("product_id", item.ProductID.String()), zap.Error(err))
				return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to look up product"}
			}
			prices[i] = product.Price
			continue
		}

		if item.Price.IsNegative() {
			return nil, &ServiceError{
				StatusCode: http.StatusBadRequest,
				Message:    fmt.Sprintf("Invalid price for product %s", item.ProductID),
			}
		}
		prices[i] = item.Price
	}

	return prices, nil
}

// UpdateOrderStatus moves an order through the transition gate. Updating to
// the current status is a silent no-op, so a repeated "completed" call does
// not re-emit the buyer notification.
func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, newStatus string) *ServiceError {
	status, err := models.ToOrderStatus(newStatus)
	if err != nil {
		return &ServiceError{StatusCode: http.StatusBadRequest, Message: "Invalid order status"}
	}

	order, findErr := s.orders.FindByID(ctx, orderID)
	if findErr != nil {
		if errors.Is(findErr, repository.ErrNotFound) {
			return &ServiceError{StatusCode: http.StatusNotFound, Message: "Order not found"}
		}
		s.logger.Error("order lookup failed", zap.String("order_id", orderID.String()), zap.Error(findErr))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch order"}
	}

	if order.Status == status {
		return nil
	}
	if !models.CanTransitionOrder(order.Status, status) {
		return &ServiceError{
			StatusCode: http.StatusConflict,
			Message:    fmt.Sprintf("Cannot change order status from %s to %s", order.Status, status),
		}
	}

	now := time.Now().UTC()
	order.Status = status
	switch status {
	case models.OrderStatusCompleted:
		order.CompletedAt = &now
	case models.OrderStatusCancelled:
		order.CanceledAt = &now
	}

	if err := s.orders.Update(ctx, order); err != nil {
		s.logger.Error("order status update failed", zap.String("order_id", orderID.String()), zap.Error(err))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to update order"}
	}

	if status == models.OrderStatusCompleted && order.BuyerID != nil {
		s.notifier.Emit(ctx, *order.BuyerID,
			"Order completed",
			"Your order has been completed.",
			models.TypeOrderCompleted,
			&order.ID,
		)
	}

	s.logger.Info("order status changed",
		zap.String("order_id", orderID.String()),
		zap.String("status", string(status)),
	)
	return nil
}

func (s *orderService) GetSellerOrders(ctx context.Context, sellerID uuid.UUID, page, limit int) (*OrderListResponse, *ServiceError) {
	orders, total, err := s.orders.FindBySellerID(ctx, sellerID, page, limit)
	if err != nil {
		s.logger.Error("failed to fetch seller orders", zap.String("seller_id", sellerID.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch orders"}
	}
	return &OrderListResponse{Orders: orders, Meta: buildMeta(page, limit, total)}, nil
}

func (s *orderService) GetBuyerOrders(ctx context.Context, buyerID uuid.UUID, page, limit int) (*OrderListResponse, *ServiceError) {
	orders, total, err := s.orders.FindByBuyerID(ctx, buyerID, page, limit)
	if err != nil {
		s.logger.Error("failed to fetch buyer orders", zap.String("buyer_id", buyerID.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch orders"}
	}
	return &OrderListResponse{Orders: orders, Meta: buildMeta(page, limit, total)}, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID uuid.UUID) (*models.Order, *ServiceError) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Order not found"}
		}
		s.logger.Error("order lookup failed", zap.String("order_id", orderID.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch order"}
	}
	return order, nil
}
