package entity

import (
	"sort"
	"sync"
)

// Flight is one scheduled operation of a flight number on a specific date.
// Two flights with the same number but different dates are distinct.
// The seat map is guarded by its own mutex so that BookSeat stays an
// atomic check-and-set under concurrent callers.
type Flight struct {
	Number      string `json:"flight_number"`
	Date        string `json:"date"`
	SeatsPerRow int    `json:"seats_per_row"`

	mu    sync.RWMutex
	seats map[string]*Seat
}

func NewFlight(number, date string, seatsPerRow int, seats []Seat) *Flight {
	f := &Flight{
		Number:      number,
		Date:        date,
		SeatsPerRow: seatsPerRow,
		seats:       make(map[string]*Seat, len(seats)),
	}
	for i := range seats {
		s := seats[i]
		f.seats[s.Key()] = &s
	}
	return f
}

// FlightKey builds the registry key for a (flight number, date) pair.
func FlightKey(number, date string) string {
	return number + "@" + date
}

func (f *Flight) Key() string {
	return FlightKey(f.Number, f.Date)
}

// AddSeat registers an extra seat on an already built flight.
func (f *Flight) AddSeat(number, row int, letter string, price float64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s := NewSeat(number, row, letter, price)
	f.seats[s.Key()] = &s
}

// SeatAvailability reports whether the seat exists and, if so, whether it
// is currently free. The two outcomes are kept distinct.
func (f *Flight) SeatAvailability(row int, letter string) (exists, available bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	seat, ok := f.seats[SeatKey(row, letter)]
	if !ok {
		return false, false
	}
	return true, seat.IsAvailable()
}

// IsSeatAvailable is false both for booked seats and for seats that do not
// exist; callers that need to tell those apart use SeatAvailability.
func (f *Flight) IsSeatAvailable(row int, letter string) bool {
	_, available := f.SeatAvailability(row, letter)
	return available
}

// BookSeat atomically checks availability, flips the seat to booked and
// returns a snapshot of the booked seat. Returns ErrSeatNotFound or
// ErrSeatUnavailable with no side effect when the seat cannot be booked.
func (f *Flight) BookSeat(row int, letter string) (Seat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	seat, ok := f.seats[SeatKey(row, letter)]
	if !ok {
		return Seat{}, ErrSeatNotFound
	}
	if !seat.IsAvailable() {
		return Seat{}, ErrSeatUnavailable
	}
	seat.Book()
	return *seat, nil
}

// ReturnSeat frees the seat. Freeing a missing or already free seat is a
// no-op, so the operation is idempotent.
func (f *Flight) ReturnSeat(row int, letter string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if seat, ok := f.seats[SeatKey(row, letter)]; ok {
		seat.Free()
	}
}

// AvailableSeats returns snapshots of the currently free seats ordered by
// row and letter.
func (f *Flight) AvailableSeats() []Seat {
	f.mu.RLock()
	defer f.mu.RUnlock()

	seats := make([]Seat, 0, len(f.seats))
	for _, seat := range f.seats {
		if seat.IsAvailable() {
			seats = append(seats, *seat)
		}
	}
	sortSeats(seats)
	return seats
}

// Seats returns snapshots of every seat ordered by row and letter.
func (f *Flight) Seats() []Seat {
	f.mu.RLock()
	defer f.mu.RUnlock()

	seats := make([]Seat, 0, len(f.seats))
	for _, seat := range f.seats {
		seats = append(seats, *seat)
	}
	sortSeats(seats)
	return seats
}

// SeatCount returns the total number of seats on the flight.
func (f *Flight) SeatCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.seats)
}

// AvailableCount returns the number of currently free seats.
func (f *Flight) AvailableCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	count := 0
	for _, seat := range f.seats {
		if seat.IsAvailable() {
			count++
		}
	}
	return count
}

func sortSeats(seats []Seat) {
	sort.Slice(seats, func(i, j int) bool {
		if seats[i].Row != seats[j].Row {
			return seats[i].Row < seats[j].Row
		}
		return seats[i].Letter < seats[j].Letter
	})
}
