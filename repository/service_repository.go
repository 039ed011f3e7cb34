package repository

import (
	"context"
	"errors"

	"marketplace-service/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceRepository interface {
	Create(ctx context.Context, service *models.Service) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Service, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]models.Service, error)
}

type GormServiceRepository struct {
	db *gorm.DB
}

func NewGormServiceRepository(db *gorm.DB) ServiceRepository {
	return &GormServiceRepository{db: db}
}

func (r *GormServiceRepository) Create(ctx context.Context, service *models.Service) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *GormServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &service, nil
}

func (r *GormServiceRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]models.Service, error) {
	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}
