package repository

import (
	"context"
	"errors"
	"time"

	"marketplace-service/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AvailabilityRepository interface {
	Upsert(ctx context.Context, entry *models.Availability) error
	FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*models.Availability, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.Availability, error)
}

type GormAvailabilityRepository struct {
	db *gorm.DB
}

func NewGormAvailabilityRepository(db *gorm.DB) AvailabilityRepository {
	return &GormAvailabilityRepository{db: db}
}

// Upsert writes the (user_id, date) flag, last write wins.
func (r *GormAvailabilityRepository) Upsert(ctx context.Context, entry *models.Availability) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
		}).
		Create(entry).Error
}

func (r *GormAvailabilityRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*models.Availability, error) {
	var entry models.Availability
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *GormAvailabilityRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.Availability, error) {
	var entries []models.Availability
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
