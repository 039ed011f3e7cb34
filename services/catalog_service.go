package services

import (
	"context"
	"net/http"

	"marketplace-service/models"
	"marketplace-service/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CreateProductRequest struct {
	OwnerID       uuid.UUID       `json:"owner_id" binding:"required"`
	Name          string          `json:"name" binding:"required"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price" binding:"required"`
	StockQuantity int             `json:"stock_quantity"`
	DeliveryFee   decimal.Decimal `json:"delivery_fee"`
	IsReturnable  bool            `json:"is_returnable"`
	ImageURL      string          `json:"image_url"`
}

type CreateServiceRequest struct {
	OwnerID            uuid.UUID       `json:"owner_id" binding:"required"`
	Name               string          `json:"name" binding:"required"`
	Price              decimal.Decimal `json:"price" binding:"required"`
	DurationMins       int             `json:"duration_mins" binding:"required,min=1"`
	ServiceType        string          `json:"service_type"`
	ServiceLocation    string          `json:"service_location"`
	AutoApprove        bool            `json:"auto_approve"`
	CancellationPolicy string          `json:"cancellation_policy"`
}

type CatalogService interface {
	CreateProduct(ctx context.Context, req *CreateProductRequest) (*models.Product, *ServiceError)
	GetOwnerProducts(ctx context.Context, ownerID uuid.UUID) ([]models.Product, *ServiceError)
	CreateService(ctx context.Context, req *CreateServiceRequest) (*models.Service, *ServiceError)
	GetOwnerServices(ctx context.Context, ownerID uuid.UUID) ([]models.Service, *ServiceError)
}

type catalogService struct {
	products repository.ProductRepository
	services repository.ServiceRepository
	logger   *zap.Logger
}

func NewCatalogService(products repository.ProductRepository, services repository.ServiceRepository, logger *zap.Logger) CatalogService {
	return &catalogService{products: products, services: services, logger: logger}
}

func (s *catalogService) CreateProduct(ctx context.Context, req *CreateProductRequest) (*models.Product, *ServiceError) {
	if req.Price.IsNegative() || req.StockQuantity < 0 {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Price and stock must not be negative"}
	}

	product := &models.Product{
		OwnerID:       req.OwnerID,
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		DeliveryFee:   req.DeliveryFee,
		IsReturnable:  req.IsReturnable,
		ImageURL:      req.ImageURL,
	}
	if err := s.products.Create(ctx, product); err != nil {
		s.logger.Error("product create failed", zap.String("owner_id", req.OwnerID.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to create product"}
	}
	return product, nil
}

func (s *catalogService) GetOwnerProducts(ctx context.Context, ownerID uuid.UUID) ([]models.Product, *ServiceError) {
	products, err := s.products.FindByOwnerID(ctx, ownerID)
	if err != nil {
		s.logger.Error("product list failed", zap.String("owner_id", ownerID.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch products"}
	}
	return products, nil
}

func (s *catalogService) CreateService(ctx context.Context, req *CreateServiceRequest) (*models.Service, *ServiceError) {
	if req.Price.IsNegative() {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Price must not be negative"}
	}

	service := &models.Service{
		OwnerID:            req.OwnerID,
		Name:               req.Name,
		Price:              req.Price,
		DurationMins:       req.DurationMins,
		ServiceType:        req.ServiceType,
		ServiceLocation:    req.ServiceLocation,
		AutoApprove:        req.AutoApprove,
		CancellationPolicy: req.CancellationPolicy,
	}
	if err := s.services.Create(ctx, service); err != nil {
		s.logger.Error("service create failed", zap.String("owner_id", req.OwnerID.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to create service"}
	}
	return service, nil
}

func (s *catalogService) GetOwnerServices(ctx context.Context, ownerID uuid.UUID) ([]models.Service, *ServiceError) {
	services, err := s.services.FindByOwnerID(ctx, ownerID)
	if err != nil {
		s.logger.Error("service list failed", zap.String("owner_id", ownerID.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch services"}
	}
	return services, nil
}
