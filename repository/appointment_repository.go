package repository

import (
	"context"
	"errors"
	"time"

	"marketplace-service/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.Appointment, error)
	FindBusySlots(ctx context.Context, providerID uuid.UUID, dayStart, dayEnd time.Time) ([]models.BusySlot, error)
	Update(ctx context.Context, appointment *models.Appointment) error
}

type GormAppointmentRepository struct {
	db *gorm.DB
}

func NewGormAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &GormAppointmentRepository{db: db}
}

func (r *GormAppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *GormAppointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := r.db.WithContext(ctx).First(&appointment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &appointment, nil
}

// FindByUserID returns appointments where the user is either side of the
// booking, newest first.
func (r *GormAppointmentRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("provider_id = ? OR customer_id = ?", userID, userID).
		Order("appointment_date DESC").
		Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

// FindBusySlots returns the day's non-cancelled appointments for a provider.
func (r *GormAppointmentRepository) FindBusySlots(ctx context.Context, providerID uuid.UUID, dayStart, dayEnd time.Time) ([]models.BusySlot, error) {
	var slots []models.BusySlot
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("appointment_date, duration_mins").
		Where("provider_id = ? AND appointment_date >= ? AND appointment_date < ? AND status <> ?",
			providerID, dayStart, dayEnd, models.AppointmentStatusCancelled).
		Order("appointment_date ASC").
		Scan(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *GormAppointmentRepository) Update(ctx context.Context, appointment *models.Appointment) error {
	return r.db.WithContext(ctx).Save(appointment).Error
}
