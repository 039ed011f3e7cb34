package controllers

import (
	"net/http"
	"time"

	"marketplace-service/services"

	"github.com/gin-gonic/gin"
)

type AppointmentController struct {
	appointmentService services.AppointmentService
}

func NewAppointmentController(appointmentService services.AppointmentService) *AppointmentController {
	return &AppointmentController{appointmentService: appointmentService}
}

func (ac *AppointmentController) BookAppointment(ctx *gin.Context) {
	var req services.RequestAppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	result, serviceErr := ac.appointmentService.RequestAppointment(ctx.Request.Context(), &req)
	if serviceErr != nil {
		ctx.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, result)
}

func (ac *AppointmentController) UpdateAppointmentStatus(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID format"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if serviceErr := ac.appointmentService.UpdateAppointmentStatus(ctx.Request.Context(), id, req.Status); serviceErr != nil {
		ctx.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Appointment status updated"})
}

func (ac *AppointmentController) GetUserAppointments(ctx *gin.Context) {
	userID, ok := parseUUIDParam(ctx, "userId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	appointments, serviceErr := ac.appointmentService.GetUserAppointments(ctx.Request.Context(), userID)
	if serviceErr != nil {
		ctx.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

// GetBusySlots returns the day's non-cancelled appointments; the client
// derives free intervals from them.
func (ac *AppointmentController) GetBusySlots(ctx *gin.Context) {
	providerID, ok := parseUUIDParam(ctx, "providerId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid provider ID format"})
		return
	}

	date, err := time.Parse("2006-01-02", ctx.Query("date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing date, expected YYYY-MM-DD"})
		return
	}

	slots, serviceErr := ac.appointmentService.GetBusySlots(ctx.Request.Context(), providerID, date)
	if serviceErr != nil {
		ctx.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"slots": slots})
}

func (ac *AppointmentController) SetAvailability(ctx *gin.Context) {
	var req struct {
		UserID string `json:"user_id" binding:"required"`
		Date   string `json:"date" binding:"required"`
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	userID, err := parseUUIDString(req.UserID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	if serviceErr := ac.appointmentService.SetAvailability(ctx.Request.Context(), userID, date, req.Status); serviceErr != nil {
		ctx.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Availability updated"})
}

func (ac *AppointmentController) GetAvailability(ctx *gin.Context) {
	userID, ok := parseUUIDParam(ctx, "userId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	entries, serviceErr := ac.appointmentService.GetAvailability(ctx.Request.Context(), userID)
	if serviceErr != nil {
		ctx.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"availability": entries})
}
