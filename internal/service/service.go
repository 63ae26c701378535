package service

import (
	"context"
	"time"

	"github.com/YelyzavetaZahorulko/oop-airfligth/internal/entity"
)

// BookingService is the registry for cross-entity booking operations. It
// keeps seat availability, passenger ticket lists and the global ticket
// index consistent with each other.
type BookingService interface {
	// Core operations
	BookTicket(ctx context.Context, req *BookTicketRequest) (*entity.Ticket, error)
	ReturnTicket(ctx context.Context, ticketID int64) (*ReturnTicketResult, error)

	// Read operations
	GetTicket(ctx context.Context, ticketID int64) (entity.Ticket, error)
	GetPassenger(ctx context.Context, name string) (*PassengerInfo, error)
	GetPassengerTickets(ctx context.Context, name string) ([]entity.Ticket, error)
	GetFlightTickets(ctx context.Context, number, date string) ([]entity.Ticket, error)
}

// FlightService answers availability queries against the flight catalog.
type FlightService interface {
	GetFlight(ctx context.Context, number, date string) (*FlightInfo, error)
	GetAllFlights(ctx context.Context) ([]*FlightInfo, error)
	CheckAvailability(ctx context.Context, number, date string) ([]entity.Seat, error)
	CheckSeat(ctx context.Context, number, date string, row int, letter string) (*SeatStatus, error)
	AddSeat(ctx context.Context, req *AddSeatRequest) error
}

// BookTicketRequest carries the data needed to book one seat.
type BookTicketRequest struct {
	FlightNumber  string `json:"flight_number" binding:"required"`
	FlightDate    string `json:"flight_date" binding:"required"`
	SeatRow       int    `json:"seat_row" binding:"required,min=1"`
	SeatLetter    string `json:"seat_letter" binding:"required,len=1"`
	PassengerName string `json:"passenger_name" binding:"required,min=1,max=255"`
}

// AddSeatRequest registers an extra seat on an existing flight. Flight
// number and date come from the route, not the body.
type AddSeatRequest struct {
	FlightNumber string  `json:"flight_number"`
	FlightDate   string  `json:"flight_date"`
	SeatNumber   int     `json:"seat_number" binding:"required,min=1"`
	SeatRow      int     `json:"seat_row" binding:"required,min=1"`
	SeatLetter   string  `json:"seat_letter" binding:"required,len=1"`
	Price        float64 `json:"price" binding:"min=0"`
}

// ReturnTicketResult reports the outcome of a completed return.
type ReturnTicketResult struct {
	Ticket  entity.Ticket `json:"ticket"`
	Refund  float64       `json:"refund"`
	Balance float64       `json:"balance"`
}

// PassengerInfo is the read-only passenger view.
type PassengerInfo struct {
	Name    string          `json:"name"`
	Balance float64         `json:"balance"`
	Tickets []entity.Ticket `json:"tickets"`
}

// FlightInfo is the read-only flight summary.
type FlightInfo struct {
	FlightNumber   string `json:"flight_number"`
	Date           string `json:"date"`
	SeatsPerRow    int    `json:"seats_per_row"`
	TotalSeats     int    `json:"total_seats"`
	AvailableSeats int    `json:"available_seats"`
}

// SeatStatus keeps "seat does not exist" and "seat is booked" distinct.
type SeatStatus struct {
	Exists    bool `json:"exists"`
	Available bool `json:"available"`
}

// EventPublisher pushes booking events to an external stream. A nil
// publisher disables event publication.
type EventPublisher interface {
	Publish(ctx context.Context, event *BookingEvent) error
}

// BookingEvent describes one committed booking state transition.
type BookingEvent struct {
	Type          string    `json:"type"`
	TicketID      int64     `json:"ticket_id"`
	FlightNumber  string    `json:"flight_number"`
	FlightDate    string    `json:"flight_date"`
	Seat          string    `json:"seat"`
	PassengerName string    `json:"passenger_name"`
	Price         float64   `json:"price"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// Event types
const (
	EventTicketBooked   = "ticket_booked"
	EventTicketReturned = "ticket_returned"
)
