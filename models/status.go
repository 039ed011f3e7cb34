package models

import "errors"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusAccepted  OrderStatus = "accepted"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// remember to add new statuses to the transition map below
var orderTransitions = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusPending:   {OrderStatusAccepted: true, OrderStatusCancelled: true},
	OrderStatusAccepted:  {OrderStatusCompleted: true, OrderStatusCancelled: true},
	OrderStatusCompleted: {},
	OrderStatusCancelled: {},
}

func ToOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if _, ok := orderTransitions[status]; ok {
		return status, nil
	}
	return "", errors.New("invalid order status")
}

// CanTransitionOrder reports whether from -> to is a legal move. Updating to
// the same status is treated as a no-op by the caller, not a transition.
func CanTransitionOrder(from, to OrderStatus) bool {
	return orderTransitions[from][to]
}

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

var appointmentTransitions = map[AppointmentStatus]map[AppointmentStatus]bool{
	AppointmentStatusPending:   {AppointmentStatusConfirmed: true, AppointmentStatusCancelled: true},
	AppointmentStatusConfirmed: {AppointmentStatusCancelled: true},
	AppointmentStatusCancelled: {},
}

func ToAppointmentStatus(s string) (AppointmentStatus, error) {
	status := AppointmentStatus(s)
	if _, ok := appointmentTransitions[status]; ok {
		return status, nil
	}
	return "", errors.New("invalid appointment status")
}

func CanTransitionAppointment(from, to AppointmentStatus) bool {
	return appointmentTransitions[from][to]
}
