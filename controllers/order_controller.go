package controllers

import (
	"net/http"

	"marketplace-service/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orderService services.OrderService
}

func NewOrderController(orderService services.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// CreateOrder handles a single-seller order. Splitting a multi-seller cart
// into one request per seller is the client's job.
func (oc *OrderController) CreateOrder(ctx *gin.Context) {
	var req services.PlaceOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	result, serviceErr := oc.orderService.PlaceOrder(ctx.Request.Context(), &req)
	if serviceErr != nil {
		ctx.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, result)
}

func (oc *OrderController) UpdateOrderStatus(ctx *gin.Context) {
	orderID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID format"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if serviceErr := oc.orderService.UpdateOrderStatus(ctx.Request.Context(), orderID, req.Status); serviceErr != nil {
		ctx.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
}

// GetSellerOrders returns paginated orders received by a seller
func (oc *OrderController) GetSellerOrders(ctx *gin.Context) {
	sellerID, ok := parseUUIDParam(ctx, "userId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	page, limit := parsePaginationParams(ctx)
	result, serviceErr := oc.orderService.GetSellerOrders(ctx.Request.Context(), sellerID, page, limit)
	if serviceErr != nil {
		ctx.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// GetBuyerOrders returns paginated orders placed by a buyer
func (oc *OrderController) GetBuyerOrders(ctx *gin.Context) {
	buyerID, ok := parseUUIDParam(ctx, "userId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	page, limit := parsePaginationParams(ctx)
	result, serviceErr := oc.orderService.GetBuyerOrders(ctx.Request.Context(), buyerID, page, limit)
	if serviceErr != nil {
		ctx.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func (oc *OrderController) GetOrderByID(ctx *gin.Context) {
	orderID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID format"})
		return
	}

	order, serviceErr := oc.orderService.GetOrderByID(ctx.Request.Context(), orderID)
	if serviceErr != nil {
		ctx.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"order": order})
}
