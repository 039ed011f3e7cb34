package services

import (
	"context"
	"net/http"

	"marketplace-service/models"
	"marketplace-service/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReportService exposes the read-only seller projections: what to restock
// and what was sold. Neither path mutates anything.
type ReportService interface {
	AggregateProcurement(ctx context.Context, sellerID uuid.UUID) ([]models.ProcurementRow, *ServiceError)
	SalesReport(ctx context.Context, sellerID uuid.UUID) (*models.SalesReport, *ServiceError)
}

type reportService struct {
	orders repository.OrderRepository
	logger *zap.Logger
}

func NewReportService(orders repository.OrderRepository, logger *zap.Logger) ReportService {
	return &reportService{orders: orders, logger: logger}
}

func (s *reportService) AggregateProcurement(ctx context.Context, sellerID uuid.UUID) ([]models.ProcurementRow, *ServiceError) {
	rows, err := s.orders.ProcurementSummary(ctx, sellerID)
	if err != nil {
		s.logger.Error("procurement summary failed", zap.String("seller_id", sellerID.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to aggregate procurement"}
	}
	return rows, nil
}

func (s *reportService) SalesReport(ctx context.Context, sellerID uuid.UUID) (*models.SalesReport, *ServiceError) {
	report, err := s.orders.SalesTotals(ctx, sellerID)
	if err != nil {
		s.logger.Error("sales report failed", zap.String("seller_id", sellerID.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to build sales report"}
	}
	return report, nil
}
