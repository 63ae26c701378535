package entity

// Passenger is created implicitly on the first booking under a new name
// and never deleted. Tickets keep booking order.
type Passenger struct {
	Name    string   `json:"name"`
	Balance float64  `json:"balance"`
	Tickets []Ticket `json:"tickets"`
}

func NewPassenger(name string) *Passenger {
	return &Passenger{
		Name:    name,
		Tickets: make([]Ticket, 0),
	}
}

func (p *Passenger) AddTicket(ticket Ticket) {
	p.Tickets = append(p.Tickets, ticket)
}

func (p *Passenger) FindTicket(ticketID int64) (Ticket, bool) {
	for _, ticket := range p.Tickets {
		if ticket.ID == ticketID {
			return ticket, true
		}
	}
	return Ticket{}, false
}

// RemoveTicket drops the ticket from the ordered list. Returns false if
// the passenger does not hold it.
func (p *Passenger) RemoveTicket(ticketID int64) bool {
	for i, ticket := range p.Tickets {
		if ticket.ID == ticketID {
			p.Tickets = append(p.Tickets[:i], p.Tickets[i+1:]...)
			return true
		}
	}
	return false
}

// Refund credits the amount to the running balance.
func (p *Passenger) Refund(amount float64) {
	p.Balance += amount
}
