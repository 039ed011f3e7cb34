package repository

import "errors"

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrInsufficientStock is returned when a conditional stock decrement
	// matches no row, i.e. the decrement would drive stock negative.
	ErrInsufficientStock = errors.New("insufficient stock")
)
