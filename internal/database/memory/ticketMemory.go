package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/YelyzavetaZahorulko/oop-airfligth/internal/entity"
)

// ticketRepository is the global ticket index. IDs come from a monotonic
// counter guarded by the same mutex, so they can never collide.
type ticketRepository struct {
	mu      sync.RWMutex
	tickets map[int64]entity.Ticket
	nextID  int64
}

func NewTicketRepository() TicketRepository {
	return &ticketRepository{
		tickets: make(map[int64]entity.Ticket),
	}
}

func (r *ticketRepository) NextID(ctx context.Context) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	return r.nextID
}

func (r *ticketRepository) Add(ctx context.Context, ticket entity.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tickets[ticket.ID] = ticket
	return nil
}

func (r *ticketRepository) GetByID(ctx context.Context, id int64) (entity.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ticket, ok := r.tickets[id]
	if !ok {
		return entity.Ticket{}, entity.ErrTicketNotFound
	}
	return ticket, nil
}

func (r *ticketRepository) Remove(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tickets[id]; !ok {
		return entity.ErrTicketNotFound
	}
	delete(r.tickets, id)
	return nil
}

func (r *ticketRepository) GetByFlight(ctx context.Context, number, date string) ([]entity.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var tickets []entity.Ticket
	for _, ticket := range r.tickets {
		if ticket.FlightNumber == number && ticket.FlightDate == date {
			tickets = append(tickets, ticket)
		}
	}
	sortTickets(tickets)
	return tickets, nil
}

func (r *ticketRepository) GetAll(ctx context.Context) ([]entity.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tickets := make([]entity.Ticket, 0, len(r.tickets))
	for _, ticket := range r.tickets {
		tickets = append(tickets, ticket)
	}
	sortTickets(tickets)
	return tickets, nil
}

func sortTickets(tickets []entity.Ticket) {
	sort.Slice(tickets, func(i, j int) bool {
		return tickets[i].ID < tickets[j].ID
	})
}
