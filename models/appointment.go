package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	AvailabilityFree = "free"
	AvailabilityBusy = "busy"
)

// Appointment links one provider and one customer. ServiceID is optional;
// a nil service means a generic consultation and always starts pending.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProviderID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"provider_id"`
	CustomerID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"customer_id"`
	ServiceID       *uuid.UUID        `gorm:"type:uuid" json:"service_id,omitempty"`
	StaffID         *uuid.UUID        `gorm:"type:uuid" json:"staff_id,omitempty"`
	AppointmentDate time.Time         `gorm:"not null;index" json:"appointment_date"`
	DurationMins    int               `gorm:"not null" json:"duration_mins"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

// Availability is a per-provider per-day free/busy marker, unique per
// (user_id, date). A missing row for a date means the day is free.
type Availability struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_availability_user_date" json:"user_id"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_availability_user_date" json:"date"`
	Status    string    `gorm:"type:varchar(10);not null;default:'free'" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// BusySlot is the projection returned for a provider's day view; the client
// derives free intervals from these.
type BusySlot struct {
	AppointmentDate time.Time `json:"appointment_date"`
	DurationMins    int       `json:"duration_mins"`
}
