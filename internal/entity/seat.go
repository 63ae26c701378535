package entity

import (
	"strconv"
	"strings"
	"unicode"
)

// Seat is the atomic bookable unit on a flight. The identity (row, letter)
// and the sequential number are fixed at creation; only Available changes.
type Seat struct {
	Number    int     `json:"number"`
	Row       int     `json:"row"`
	Letter    string  `json:"letter"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
}

func NewSeat(number, row int, letter string, price float64) Seat {
	return Seat{
		Number:    number,
		Row:       row,
		Letter:    letter,
		Price:     price,
		Available: true,
	}
}

// SeatKey builds the key identifying one seat within a flight, e.g. "12B".
func SeatKey(row int, letter string) string {
	return strconv.Itoa(row) + letter
}

// Key returns the seat's key within its flight.
func (s Seat) Key() string {
	return SeatKey(s.Row, s.Letter)
}

// Book marks the seat as taken. Availability checking is the caller's job.
func (s *Seat) Book() {
	s.Available = false
}

// Free marks the seat as available again.
func (s *Seat) Free() {
	s.Available = true
}

func (s Seat) IsAvailable() bool {
	return s.Available
}

// ParseSeatKey splits a seat token like "12B" into its row and letter.
func ParseSeatKey(token string) (row int, letter string, err error) {
	token = strings.ToUpper(strings.TrimSpace(token))

	split := len(token)
	for i, r := range token {
		if !unicode.IsDigit(r) {
			split = i
			break
		}
	}
	if split == 0 || split != len(token)-1 {
		return 0, "", ErrInvalidInput
	}

	row, err = strconv.Atoi(token[:split])
	if err != nil || row < 1 {
		return 0, "", ErrInvalidInput
	}
	return row, token[split:], nil
}
