package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeOrderCreated         = "order_created"
	TypeOrderCompleted       = "order_completed"
	TypeAppointmentRequested = "appointment_requested"
	TypeAppointmentConfirmed = "appointment_confirmed"
	TypeAppointmentCancelled = "appointment_cancelled"
)

// Notification is a user-facing record created by the engines on lifecycle
// events. Creation is best-effort; only the recipient may mark it read.
type Notification struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Title      string     `gorm:"not null" json:"title"`
	Message    string     `gorm:"not null" json:"message"`
	Type       string     `gorm:"type:varchar(40);not null" json:"type"`
	RelatedID  *uuid.UUID `gorm:"type:uuid" json:"related_id,omitempty"`
	ReadStatus bool       `gorm:"not null;default:false" json:"read_status"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
}
