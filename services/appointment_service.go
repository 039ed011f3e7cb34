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
	"go.uber.org/zap"
)

type RequestAppointmentRequest struct {
	ProviderID      uuid.UUID  `json:"provider_id" binding:"required"`
	CustomerID      uuid.UUID  `json:"customer_id" binding:"required"`
	ServiceID       *uuid.UUID `json:"service_id"`
	StaffID         *uuid.UUID `json:"staff_id"`
	AppointmentDate time.Time  `json:"appointment_date" binding:"required"`
	DurationMins    int        `json:"duration_mins"`
}

type RequestAppointmentResult struct {
	AppointmentID uuid.UUID                `json:"appointment_id"`
	Status        models.AppointmentStatus `json:"status"`
}

type AppointmentService interface {
	RequestAppointment(ctx context.Context, req *RequestAppointmentRequest) (*RequestAppointmentResult, *ServiceError)
	UpdateAppointmentStatus(ctx context.Context, id uuid.UUID, newStatus string) *ServiceError
	SetAvailability(ctx context.Context, userID uuid.UUID, date time.Time, status string) *ServiceError
	GetAvailability(ctx context.Context, userID uuid.UUID) ([]models.Availability, *ServiceError)
	GetBusySlots(ctx context.Context, providerID uuid.UUID, date time.Time) ([]models.BusySlot, *ServiceError)
	GetUserAppointments(ctx context.Context, userID uuid.UUID) ([]models.Appointment, *ServiceError)
}

type appointmentService struct {
	appointments repository.AppointmentRepository
	availability repository.AvailabilityRepository
	services     repository.ServiceRepository
	notifier     NotificationEmitter
	logger       *zap.Logger
}

func NewAppointmentService(
	appointments repository.AppointmentRepository,
	availability repository.AvailabilityRepository,
	services repository.ServiceRepository,
	notifier NotificationEmitter,
	logger *zap.Logger,
) AppointmentService {
	return &appointmentService{
		appointments: appointments,
		availability: availability,
		services:     services,
		notifier:     notifier,
		logger:       logger,
	}
}

// dayOf truncates a timestamp to its UTC calendar day, matching the date
// granularity of the availability ledger.
func dayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// RequestAppointment checks the provider's day flag before writing anything:
// a busy day rejects the booking with no appointment row and no notification.
// The initial status is confirmed only when the referenced service has
// auto-approval enabled.
func (s *appointmentService) RequestAppointment(ctx context.Context, req *RequestAppointmentRequest) (*RequestAppointmentResult, *ServiceError) {
	if req.DurationMins < 0 {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Invalid duration"}
	}

	day := dayOf(req.AppointmentDate)
	entry, err := s.availability.FindByUserAndDate(ctx, req.ProviderID, day)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		s.logger.Error("availability lookup failed", zap.String("provider_id", req.ProviderID.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to check availability"}
	}
	if entry != nil && entry.Status == models.AvailabilityBusy {
		return nil, &ServiceError{
			StatusCode: http.StatusConflict,
			Message:    "Provider is not available on the requested date",
		}
	}

	status := models.AppointmentStatusPending
	durationMins := req.DurationMins
	if req.ServiceID != nil {
		service, err := s.services.FindByID(ctx, *req.ServiceID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Service not found"}
			}
			s.logger.Error("service lookup failed", zap.String("service_id", req.ServiceID.String()), zap.Error(err))
			return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to look up service"}
		}
		if service.AutoApprove {
			status = models.AppointmentStatusConfirmed
		}
		if durationMins == 0 {
			durationMins = service.DurationMins
		}
	}

	appointment := &models.Appointment{
		ProviderID:      req.ProviderID,
		CustomerID:      req.CustomerID,
		ServiceID:       req.ServiceID,
		StaffID:         req.StaffID,
		AppointmentDate: req.AppointmentDate,
		DurationMins:    durationMins,
		Status:          status,
	}

	if err := s.appointments.Create(ctx, appointment); err != nil {
		s.logger.Error("appointment create failed",
			zap.String("provider_id", req.ProviderID.String()),
			zap.Error(err),
		)
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to create appointment"}
	}

	s.notifier.Emit(ctx, req.ProviderID,
		"New appointment request",
		fmt.Sprintf("You have a new appointment request for %s.", req.AppointmentDate.Format("2006-01-02 15:04")),
		models.TypeAppointmentRequested,
		&appointment.ID,
	)

	s.logger.Info("appointment requested",
		zap.String("appointment_id", appointment.ID.String()),
		zap.String("provider_id", req.ProviderID.String()),
		zap.String("status", string(status)),
	)

	return &RequestAppointmentResult{AppointmentID: appointment.ID, Status: status}, nil
}

// UpdateAppointmentStatus runs the same transition-gate policy as orders:
// same-status updates are no-ops, terminal states reject further moves.
func (s *appointmentService) UpdateAppointmentStatus(ctx context.Context, id uuid.UUID, newStatus string) *ServiceError {
	status, err := models.ToAppointmentStatus(newStatus)
	if err != nil {
		return &ServiceError{StatusCode: http.StatusBadRequest, Message: "Invalid appointment status"}
	}

	appointment, findErr := s.appointments.FindByID(ctx, id)
	if findErr != nil {
		if errors.Is(findErr, repository.ErrNotFound) {
			return &ServiceError{StatusCode: http.StatusNotFound, Message: "Appointment not found"}
		}
		s.logger.Error("appointment lookup failed", zap.String("appointment_id", id.String()), zap.Error(findErr))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch appointment"}
	}

	if appointment.Status == status {
		return nil
	}
	if !models.CanTransitionAppointment(appointment.Status, status) {
		return &ServiceError{
			StatusCode: http.StatusConflict,
			Message:    fmt.Sprintf("Cannot change appointment status from %s to %s", appointment.Status, status),
		}
	}

	appointment.Status = status
	if err := s.appointments.Update(ctx, appointment); err != nil {
		s.logger.Error("appointment status update failed", zap.String("appointment_id", id.String()), zap.Error(err))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to update appointment"}
	}

	switch status {
	case models.AppointmentStatusConfirmed:
		s.notifier.Emit(ctx, appointment.CustomerID,
			"Appointment confirmed",
			"Your appointment has been confirmed.",
			models.TypeAppointmentConfirmed,
			&appointment.ID,
		)
	case models.AppointmentStatusCancelled:
		s.notifier.Emit(ctx, appointment.CustomerID,
			"Appointment cancelled",
			"Your appointment has been cancelled.",
			models.TypeAppointmentCancelled,
			&appointment.ID,
		)
	}

	s.logger.Info("appointment status changed",
		zap.String("appointment_id", id.String()),
		zap.String("status", string(status)),
	)
	return nil
}

// SetAvailability upserts the (user, day) flag; last write wins. Appointments
// already booked on a day later marked busy are left untouched.
func (s *appointmentService) SetAvailability(ctx context.Context, userID uuid.UUID, date time.Time, status string) *ServiceError {
	if status != models.AvailabilityFree && status != models.AvailabilityBusy {
		return &ServiceError{StatusCode: http.StatusBadRequest, Message: "Status must be 'free' or 'busy'"}
	}

	entry := &models.Availability{
		UserID: userID,
		Date:   dayOf(date),
		Status: status,
	}
	if err := s.availability.Upsert(ctx, entry); err != nil {
		s.logger.Error("availability upsert failed", zap.String("user_id", userID.String()), zap.Error(err))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to update availability"}
	}
	return nil
}

func (s *appointmentService) GetAvailability(ctx context.Context, userID uuid.UUID) ([]models.Availability, *ServiceError) {
	entries, err := s.availability.FindByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("availability fetch failed", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch availability"}
	}
	return entries, nil
}

func (s *appointmentService) GetBusySlots(ctx context.Context, providerID uuid.UUID, date time.Time) ([]models.BusySlot, *ServiceError) {
	dayStart := dayOf(date)
	dayEnd := dayStart.Add(24 * time.Hour)

	slots, err := s.appointments.FindBusySlots(ctx, providerID, dayStart, dayEnd)
	if err != nil {
		s.logger.Error("busy slots fetch failed", zap.String("provider_id", providerID.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch slots"}
	}
	return slots, nil
}

func (s *appointmentService) GetUserAppointments(ctx context.Context, userID uuid.UUID) ([]models.Appointment, *ServiceError) {
	appointments, err := s.appointments.FindByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("appointments fetch failed", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch appointments"}
	}
	return appointments, nil
}
