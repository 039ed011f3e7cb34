package controllers

import (
	"net/http"

	"marketplace-service/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	reportService services.ReportService
}

func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// GetProcurementSummary answers "what do I need to restock" for a seller.
func (rc *ReportController) GetProcurementSummary(ctx *gin.Context) {
	sellerID, ok := parseUUIDParam(ctx, "userId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	rows, serviceErr := rc.reportService.AggregateProcurement(ctx.Request.Context(), sellerID)
	if serviceErr != nil {
		ctx.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"procurement": rows})
}

func (rc *ReportController) GetSalesReport(ctx *gin.Context) {
	sellerID, ok := parseUUIDParam(ctx, "userId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	report, serviceErr := rc.reportService.SalesReport(ctx.Request.Context(), sellerID)
	if serviceErr != nil {
		ctx.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"report": report})
}
