package service

import (
	"context"
	"fmt"
	"strings"

	repository "github.com/YelyzavetaZahorulko/oop-airfligth/internal/database/memory"
	"github.com/YelyzavetaZahorulko/oop-airfligth/internal/entity"
)

type flightService struct {
	flightRepo repository.FlightRepository
}

func NewFlightService(flightRepo repository.FlightRepository) FlightService {
	return &flightService{flightRepo: flightRepo}
}

func (s *flightService) GetFlight(ctx context.Context, number, date string) (*FlightInfo, error) {
	flight, err := s.flightRepo.GetByNumberAndDate(ctx, number, date)
	if err != nil {
		return nil, fmt.Errorf("flight %s on %s: %w", number, date, err)
	}
	return flightInfo(flight), nil
}

func (s *flightService) GetAllFlights(ctx context.Context) ([]*FlightInfo, error) {
	flights, err := s.flightRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]*FlightInfo, 0, len(flights))
	for _, flight := range flights {
		infos = append(infos, flightInfo(flight))
	}
	return infos, nil
}

// CheckAvailability lists the currently free seats with their prices.
func (s *flightService) CheckAvailability(ctx context.Context, number, date string) ([]entity.Seat, error) {
	flight, err := s.flightRepo.GetByNumberAndDate(ctx, number, date)
	if err != nil {
		return nil, fmt.Errorf("flight %s on %s: %w", number, date, err)
	}
	return flight.AvailableSeats(), nil
}

func (s *flightService) CheckSeat(ctx context.Context, number, date string, row int, letter string) (*SeatStatus, error) {
	flight, err := s.flightRepo.GetByNumberAndDate(ctx, number, date)
	if err != nil {
		return nil, fmt.Errorf("flight %s on %s: %w", number, date, err)
	}

	exists, available := flight.SeatAvailability(row, strings.ToUpper(strings.TrimSpace(letter)))
	return &SeatStatus{Exists: exists, Available: available}, nil
}

func (s *flightService) AddSeat(ctx context.Context, req *AddSeatRequest) error {
	letter := strings.ToUpper(strings.TrimSpace(req.SeatLetter))
	if letter == "" || req.SeatRow < 1 || req.SeatNumber < 1 {
		return fmt.Errorf("add seat request needs a number, row and letter: %w", entity.ErrInvalidInput)
	}

	flight, err := s.flightRepo.GetByNumberAndDate(ctx, req.FlightNumber, req.FlightDate)
	if err != nil {
		return fmt.Errorf("flight %s on %s: %w", req.FlightNumber, req.FlightDate, err)
	}

	flight.AddSeat(req.SeatNumber, req.SeatRow, letter, req.Price)
	return nil
}

func flightInfo(flight *entity.Flight) *FlightInfo {
	return &FlightInfo{
		FlightNumber:   flight.Number,
		Date:           flight.Date,
		SeatsPerRow:    flight.SeatsPerRow,
		TotalSeats:     flight.SeatCount(),
		AvailableSeats: flight.AvailableCount(),
	}
}
