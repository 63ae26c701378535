package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	repository "github.com/YelyzavetaZahorulko/oop-airfligth/internal/database/memory"
	"github.com/YelyzavetaZahorulko/oop-airfligth/internal/entity"
	"github.com/sirupsen/logrus"
)

type bookingService struct {
	// mu serializes cross-entity transactions so that seat state, the
	// passenger's ticket list and the global index move in lock-step.
	// Readers of passenger state take the read lock.
	mu sync.RWMutex

	flightRepo    repository.FlightRepository
	passengerRepo repository.PassengerRepository
	ticketRepo    repository.TicketRepository
	publisher     EventPublisher
}

// NewBookingService creates the registry over the given repositories.
// publisher may be nil, which disables event publication.
func NewBookingService(
	flightRepo repository.FlightRepository,
	passengerRepo repository.PassengerRepository,
	ticketRepo repository.TicketRepository,
	publisher EventPublisher,
) BookingService {
	return &bookingService{
		flightRepo:    flightRepo,
		passengerRepo: passengerRepo,
		ticketRepo:    ticketRepo,
		publisher:     publisher,
	}
}

// BookTicket runs the booking protocol: resolve the flight, atomically
// book the seat, then register the ticket. If the seat cannot be booked
// no passenger or ticket state is touched; once the seat is booked the
// remaining steps are in-memory appends that cannot fail.
func (s *bookingService) BookTicket(ctx context.Context, req *BookTicketRequest) (*entity.Ticket, error) {
	name := strings.TrimSpace(req.PassengerName)
	letter := strings.ToUpper(strings.TrimSpace(req.SeatLetter))
	if name == "" || letter == "" || req.SeatRow < 1 {
		return nil, fmt.Errorf("booking request needs a passenger name and a valid seat: %w", entity.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	flight, err := s.flightRepo.GetByNumberAndDate(ctx, req.FlightNumber, req.FlightDate)
	if err != nil {
		return nil, fmt.Errorf("flight %s on %s: %w", req.FlightNumber, req.FlightDate, err)
	}

	seat, err := flight.BookSeat(req.SeatRow, letter)
	if err != nil {
		return nil, fmt.Errorf("seat %s on flight %s (%s): %w",
			entity.SeatKey(req.SeatRow, letter), req.FlightNumber, req.FlightDate, err)
	}

	passenger, err := s.passengerRepo.GetOrCreate(ctx, name)
	if err != nil {
		// Unreachable for the in-memory store; the seat must not leak.
		flight.ReturnSeat(req.SeatRow, letter)
		return nil, fmt.Errorf("failed to resolve passenger %q: %w", name, err)
	}

	ticket := entity.Ticket{
		ID:            s.ticketRepo.NextID(ctx),
		PassengerName: passenger.Name,
		FlightNumber:  flight.Number,
		FlightDate:    flight.Date,
		Seat:          seat,
		IssuedAt:      time.Now(),
	}
	passenger.AddTicket(ticket)
	if err := s.ticketRepo.Add(ctx, ticket); err != nil {
		return nil, fmt.Errorf("failed to index ticket %d: %w", ticket.ID, err)
	}

	logrus.WithFields(logrus.Fields{
		"ticket_id": ticket.ID,
		"flight":    flight.Number,
		"date":      flight.Date,
		"seat":      seat.Key(),
		"passenger": passenger.Name,
		"price":     seat.Price,
	}).Info("ticket booked")

	s.publish(ctx, EventTicketBooked, ticket)
	return &ticket, nil
}

// ReturnTicket frees the booked seat, removes the ticket from both the
// passenger's list and the global index, and refunds the snapshotted
// price. All checks run before the first mutation, so a ticket whose
// flight or passenger no longer resolves fails with ErrInconsistentState
// and changes nothing.
func (s *bookingService) ReturnTicket(ctx context.Context, ticketID int64) (*ReturnTicketResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", ticketID, err)
	}

	passenger, err := s.passengerRepo.GetByName(ctx, ticket.PassengerName)
	if err != nil {
		return nil, fmt.Errorf("ticket %d names unknown passenger %q: %w",
			ticketID, ticket.PassengerName, entity.ErrInconsistentState)
	}
	if _, ok := passenger.FindTicket(ticketID); !ok {
		return nil, fmt.Errorf("ticket %d missing from passenger %q: %w",
			ticketID, passenger.Name, entity.ErrInconsistentState)
	}

	flight, err := s.flightRepo.GetByNumberAndDate(ctx, ticket.FlightNumber, ticket.FlightDate)
	if err != nil {
		return nil, fmt.Errorf("ticket %d references missing flight %s on %s: %w",
			ticketID, ticket.FlightNumber, ticket.FlightDate, entity.ErrInconsistentState)
	}

	// Commit: seat release, both removals and the refund happen together.
	flight.ReturnSeat(ticket.Seat.Row, ticket.Seat.Letter)
	passenger.RemoveTicket(ticketID)
	if err := s.ticketRepo.Remove(ctx, ticketID); err != nil {
		return nil, fmt.Errorf("failed to drop ticket %d from the index: %w", ticketID, err)
	}
	passenger.Refund(ticket.Seat.Price)

	logrus.WithFields(logrus.Fields{
		"ticket_id": ticketID,
		"flight":    ticket.FlightNumber,
		"date":      ticket.FlightDate,
		"seat":      ticket.Seat.Key(),
		"passenger": passenger.Name,
		"refund":    ticket.Seat.Price,
		"balance":   passenger.Balance,
	}).Info("ticket returned")

	s.publish(ctx, EventTicketReturned, ticket)
	return &ReturnTicketResult{
		Ticket:  ticket,
		Refund:  ticket.Seat.Price,
		Balance: passenger.Balance,
	}, nil
}

func (s *bookingService) GetTicket(ctx context.Context, ticketID int64) (entity.Ticket, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return entity.Ticket{}, fmt.Errorf("ticket %d: %w", ticketID, err)
	}
	return ticket, nil
}

func (s *bookingService) GetPassenger(ctx context.Context, name string) (*PassengerInfo, error) {
	// The passenger's ticket list and balance mutate under mu in
	// BookTicket and ReturnTicket; the snapshot here needs the same lock.
	s.mu.RLock()
	defer s.mu.RUnlock()

	passenger, err := s.passengerRepo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("passenger %q: %w", name, err)
	}

	tickets := make([]entity.Ticket, len(passenger.Tickets))
	copy(tickets, passenger.Tickets)
	return &PassengerInfo{
		Name:    passenger.Name,
		Balance: passenger.Balance,
		Tickets: tickets,
	}, nil
}

func (s *bookingService) GetPassengerTickets(ctx context.Context, name string) ([]entity.Ticket, error) {
	info, err := s.GetPassenger(ctx, name)
	if err != nil {
		return nil, err
	}
	return info.Tickets, nil
}

func (s *bookingService) GetFlightTickets(ctx context.Context, number, date string) ([]entity.Ticket, error) {
	if _, err := s.flightRepo.GetByNumberAndDate(ctx, number, date); err != nil {
		return nil, fmt.Errorf("flight %s on %s: %w", number, date, err)
	}
	return s.ticketRepo.GetByFlight(ctx, number, date)
}

func (s *bookingService) publish(ctx context.Context, eventType string, ticket entity.Ticket) {
	if s.publisher == nil {
		return
	}

	event := &BookingEvent{
		Type:          eventType,
		TicketID:      ticket.ID,
		FlightNumber:  ticket.FlightNumber,
		FlightDate:    ticket.FlightDate,
		Seat:          ticket.Seat.Key(),
		PassengerName: ticket.PassengerName,
		Price:         ticket.Seat.Price,
		OccurredAt:    time.Now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		logrus.WithError(err).Warnf("failed to publish %s event for ticket %d", eventType, ticket.ID)
	}
}
