package repository

import (
	"context"

	"github.com/YelyzavetaZahorulko/oop-airfligth/internal/entity"
)

type FlightRepository interface {
	// Basic operations
	Save(ctx context.Context, flight *entity.Flight) error
	GetByNumberAndDate(ctx context.Context, number, date string) (*entity.Flight, error)
	GetAll(ctx context.Context) ([]*entity.Flight, error)
	Count(ctx context.Context) int
}

type PassengerRepository interface {
	GetByName(ctx context.Context, name string) (*entity.Passenger, error)

	// GetOrCreate registers a passenger with zero balance on first use.
	GetOrCreate(ctx context.Context, name string) (*entity.Passenger, error)
	GetAll(ctx context.Context) ([]*entity.Passenger, error)
}

type TicketRepository interface {
	// NextID allocates a unique, monotonically increasing ticket ID.
	NextID(ctx context.Context) int64

	Add(ctx context.Context, ticket entity.Ticket) error
	GetByID(ctx context.Context, id int64) (entity.Ticket, error)
	Remove(ctx context.Context, id int64) error

	// Query operations
	GetByFlight(ctx context.Context, number, date string) ([]entity.Ticket, error)
	GetAll(ctx context.Context) ([]entity.Ticket, error)
}
