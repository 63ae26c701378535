package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/YelyzavetaZahorulko/oop-airfligth/internal/entity"
	"github.com/YelyzavetaZahorulko/oop-airfligth/internal/service"
)

const usage = `Commands:
  book <date> <flightNumber> <seat> <passengerName...>
  check <date> <flightNumber>
  return <ticketID>
  view ID <ticketID> | view username <name> | view flight <date> <flightNumber>
  exit`

// Reader drives the interactive command loop against the booking
// registry. Every command either completes or prints an error before the
// next line is read; nothing here is fatal.
type Reader struct {
	booking service.BookingService
	flights service.FlightService
	out     io.Writer
}

func NewReader(booking service.BookingService, flights service.FlightService, out io.Writer) *Reader {
	return &Reader{
		booking: booking,
		flights: flights,
		out:     out,
	}
}

// Run reads commands until "exit" or end of input.
func (r *Reader) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(r.out, "Enter a command (check, book, return, view, exit): ")
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" {
			return nil
		}

		r.Process(ctx, line)
	}
}

// Process executes one command line.
func (r *Reader) Process(ctx context.Context, line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case "book":
		r.book(ctx, fields[1:])
	case "check":
		r.check(ctx, fields[1:])
	case "return":
		r.returnTicket(ctx, fields[1:])
	case "view":
		r.view(ctx, fields[1:])
	default:
		fmt.Fprintf(r.out, "Unknown command %q.\n%s\n", fields[0], usage)
	}
}

func (r *Reader) book(ctx context.Context, args []string) {
	if len(args) < 4 {
		fmt.Fprintln(r.out, "Usage: book <date> <flightNumber> <seat> <passengerName...>")
		return
	}

	row, letter, err := entity.ParseSeatKey(args[2])
	if err != nil {
		fmt.Fprintf(r.out, "Invalid seat %q, expected something like 12B.\n", args[2])
		return
	}

	ticket, err := r.booking.BookTicket(ctx, &service.BookTicketRequest{
		FlightDate:    args[0],
		FlightNumber:  args[1],
		SeatRow:       row,
		SeatLetter:    letter,
		PassengerName: strings.Join(args[3:], " "),
	})
	if err != nil {
		fmt.Fprintf(r.out, "Booking failed: %v\n", err)
		return
	}

	fmt.Fprintf(r.out, "Ticket booked: ID %d, Passenger: %s, Flight %s on %s, Seat %s, Price: $%.2f\n",
		ticket.ID, ticket.PassengerName, ticket.FlightNumber, ticket.FlightDate,
		ticket.Seat.Key(), ticket.Seat.Price)
}

func (r *Reader) check(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(r.out, "Usage: check <date> <flightNumber>")
		return
	}

	seats, err := r.flights.CheckAvailability(ctx, args[1], args[0])
	if err != nil {
		fmt.Fprintf(r.out, "Check failed: %v\n", err)
		return
	}

	if len(seats) == 0 {
		fmt.Fprintf(r.out, "No seats available on flight %s (%s).\n", args[1], args[0])
		return
	}
	for _, seat := range seats {
		fmt.Fprintf(r.out, "Seat %s is available at price $%.2f\n", seat.Key(), seat.Price)
	}
}

func (r *Reader) returnTicket(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(r.out, "Usage: return <ticketID>")
		return
	}

	ticketID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(r.out, "Invalid ticket ID %q.\n", args[0])
		return
	}

	result, err := r.booking.ReturnTicket(ctx, ticketID)
	if err != nil {
		fmt.Fprintf(r.out, "Return failed: %v\n", err)
		return
	}

	fmt.Fprintf(r.out, "Refunded $%.2f to %s. New balance: $%.2f\n",
		result.Refund, result.Ticket.PassengerName, result.Balance)
}

func (r *Reader) view(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(r.out, "Usage: view ID <ticketID> | view username <name> | view flight <date> <flightNumber>")
		return
	}

	switch args[0] {
	case "ID":
		ticketID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			fmt.Fprintf(r.out, "Invalid ticket ID %q.\n", args[1])
			return
		}
		ticket, err := r.booking.GetTicket(ctx, ticketID)
		if err != nil {
			fmt.Fprintf(r.out, "View failed: %v\n", err)
			return
		}
		r.printTicket(ticket)

	case "username":
		name := strings.Join(args[1:], " ")
		passenger, err := r.booking.GetPassenger(ctx, name)
		if err != nil {
			fmt.Fprintf(r.out, "View failed: %v\n", err)
			return
		}
		fmt.Fprintf(r.out, "Tickets for %s (balance $%.2f):\n", passenger.Name, passenger.Balance)
		for _, ticket := range passenger.Tickets {
			r.printTicket(ticket)
		}

	case "flight":
		if len(args) != 3 {
			fmt.Fprintln(r.out, "Usage: view flight <date> <flightNumber>")
			return
		}
		tickets, err := r.booking.GetFlightTickets(ctx, args[2], args[1])
		if err != nil {
			fmt.Fprintf(r.out, "View failed: %v\n", err)
			return
		}
		fmt.Fprintf(r.out, "Tickets for flight %s on %s:\n", args[2], args[1])
		for _, ticket := range tickets {
			r.printTicket(ticket)
		}

	default:
		fmt.Fprintf(r.out, "Unknown view type %q.\n", args[0])
	}
}

func (r *Reader) printTicket(ticket entity.Ticket) {
	fmt.Fprintf(r.out, "Ticket ID: %d, Passenger: %s, Flight: %s, Date: %s, Seat: %s, Price: $%.2f\n",
		ticket.ID, ticket.PassengerName, ticket.FlightNumber, ticket.FlightDate,
		ticket.Seat.Key(), ticket.Seat.Price)
}
