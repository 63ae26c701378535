package entity

import "time"

// Ticket binds a passenger name to the seat snapshot taken at booking
// time. The snapshot keeps the price and identity fixed even if the live
// seat on the flight is later repriced or reused.
type Ticket struct {
	ID            int64     `json:"id"`
	PassengerName string    `json:"passenger_name"`
	FlightNumber  string    `json:"flight_number"`
	FlightDate    string    `json:"flight_date"`
	Seat          Seat      `json:"seat"`
	IssuedAt      time.Time `json:"issued_at"`
}
