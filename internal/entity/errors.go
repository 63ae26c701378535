package entity

import "errors"

var (
	// Flight errors
	ErrFlightNotFound  = errors.New("flight not found")
	ErrSeatNotFound    = errors.New("seat not found")
	ErrSeatUnavailable = errors.New("seat is not available")

	// Ticket errors
	ErrTicketNotFound = errors.New("ticket not found")

	// Passenger errors
	ErrPassengerNotFound = errors.New("passenger not found")

	// General errors
	ErrInvalidInput      = errors.New("invalid input")
	ErrInconsistentState = errors.New("inconsistent booking state")
)
