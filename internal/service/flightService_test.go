package service

import (
	"context"
	"testing"

	"github.com/YelyzavetaZahorulko/oop-airfligth/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlightServiceGetFlight(t *testing.T) {
	env := newTestEnv(t, "2024-05-01 AB123 6 1 10 $150.00 11 20 $250.00")
	ctx := context.Background()

	info, err := env.flights.GetFlight(ctx, "AB123", "2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, "AB123", info.FlightNumber)
	assert.Equal(t, "2024-05-01", info.Date)
	assert.Equal(t, 6, info.SeatsPerRow)
	assert.Equal(t, 120, info.TotalSeats)
	assert.Equal(t, 120, info.AvailableSeats)

	_, err = env.flights.GetFlight(ctx, "AB123", "2030-01-01")
	assert.ErrorIs(t, err, entity.ErrFlightNotFound)
}

func TestFlightServiceGetAllFlights(t *testing.T) {
	env := newTestEnv(t, "2024-05-01 CD456 4 1 15 $99.90\n2024-05-01 AB123 6 1 10 $150.00")

	infos, err := env.flights.GetAllFlights(context.Background())
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "AB123", infos[0].FlightNumber)
	assert.Equal(t, "CD456", infos[1].FlightNumber)
}

func TestFlightServiceCheckSeat(t *testing.T) {
	env := newTestEnv(t, "2024-01-01 XY1 2 5 5 $50")
	ctx := context.Background()

	_, err := env.booking.BookTicket(ctx, bookRequest(5, "A", "Alice"))
	require.NoError(t, err)

	tests := []struct {
		name          string
		row           int
		letter        string
		wantExists    bool
		wantAvailable bool
	}{
		{name: "booked seat", row: 5, letter: "A", wantExists: true, wantAvailable: false},
		{name: "free seat", row: 5, letter: "B", wantExists: true, wantAvailable: true},
		{name: "lowercase letter", row: 5, letter: "b", wantExists: true, wantAvailable: true},
		{name: "padded letter", row: 5, letter: " b ", wantExists: true, wantAvailable: true},
		{name: "missing seat", row: 9, letter: "Z", wantExists: false, wantAvailable: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := env.flights.CheckSeat(ctx, "XY1", "2024-01-01", tt.row, tt.letter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantExists, status.Exists)
			assert.Equal(t, tt.wantAvailable, status.Available)
		})
	}
}

func TestFlightServiceAddSeat(t *testing.T) {
	env := newTestEnv(t, "2024-01-01 XY1 2 5 5 $50")
	ctx := context.Background()

	err := env.flights.AddSeat(ctx, &AddSeatRequest{
		FlightNumber: "XY1",
		FlightDate:   "2024-01-01",
		SeatNumber:   3,
		SeatRow:      6,
		SeatLetter:   "a",
		Price:        80,
	})
	require.NoError(t, err)

	status, err := env.flights.CheckSeat(ctx, "XY1", "2024-01-01", 6, "A")
	require.NoError(t, err)
	assert.True(t, status.Exists)
	assert.True(t, status.Available)

	// The added seat is bookable like any other.
	ticket, err := env.booking.BookTicket(ctx, bookRequest(6, "A", "Bob"))
	require.NoError(t, err)
	assert.Equal(t, 80.0, ticket.Seat.Price)

	err = env.flights.AddSeat(ctx, &AddSeatRequest{
		FlightNumber: "ZZ9",
		FlightDate:   "2024-01-01",
		SeatNumber:   1,
		SeatRow:      1,
		SeatLetter:   "A",
	})
	assert.ErrorIs(t, err, entity.ErrFlightNotFound)
}
