package routes

import (
	"marketplace-service/controllers"
	"marketplace-service/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.Engine,
	orders *controllers.OrderController,
	appointments *controllers.AppointmentController,
	notifications *controllers.NotificationController,
	reports *controllers.ReportController,
	catalog *controllers.CatalogController,
) {
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())

	api.POST("/orders", orders.CreateOrder)
	api.GET("/orders/business/:userId", orders.GetSellerOrders)
	api.GET("/orders/customer/:userId", orders.GetBuyerOrders)
	api.GET("/orders/:id", orders.GetOrderByID)
	api.PUT("/orders/:id/status", orders.UpdateOrderStatus)

	api.POST("/appointments", appointments.BookAppointment)
	api.GET("/appointments/slots/:providerId", appointments.GetBusySlots)
	api.GET("/appointments/user/:userId", appointments.GetUserAppointments)
	api.PUT("/appointments/:id/status", appointments.UpdateAppointmentStatus)

	api.POST("/availability", appointments.SetAvailability)
	api.GET("/availability/:userId", appointments.GetAvailability)

	api.GET("/notifications", notifications.GetNotifications)
	api.PUT("/notifications/:id/read", notifications.MarkRead)

	api.GET("/business/procurement/:userId", reports.GetProcurementSummary)
	api.GET("/reports/sales/:userId", reports.GetSalesReport)

	api.POST("/products", catalog.CreateProduct)
	api.GET("/products/:userId", catalog.GetOwnerProducts)
	api.POST("/services", catalog.CreateService)
	api.GET("/services/:userId", catalog.GetOwnerServices)
}
