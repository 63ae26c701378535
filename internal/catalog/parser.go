package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/YelyzavetaZahorulko/oop-airfligth/internal/entity"
)

// ParseError reports a malformed token in a flight definition line. The
// whole line is rejected, never partially applied.
type ParseError struct {
	Line  int
	Token string
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("flight catalog line %d: %s: %q", e.Line, e.Msg, e.Token)
}

// Parse reads flight definitions, one per line:
//
//	date flightNumber seatsPerRow (rowStart rowEnd price)+
//
// seatsPerRow is a letter count (6 means letters A-F). Each row range is
// expanded into one seat per (row, letter) pair at the range's price, with
// seat numbers assigned by a single increasing counter across the whole
// line. Prices may carry a leading currency symbol. Blank lines are
// skipped.
func Parse(r io.Reader) ([]*entity.Flight, error) {
	var flights []*entity.Flight

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		flight, err := parseLine(line, lineNo)
		if err != nil {
			return nil, err
		}
		flights = append(flights, flight)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read flight catalog: %w", err)
	}

	return flights, nil
}

// LoadFile parses the flight catalog at the given path.
func LoadFile(path string) ([]*entity.Flight, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open flight catalog: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

func parseLine(line string, lineNo int) (*entity.Flight, error) {
	fields := strings.Fields(line)
	if len(fields) < 6 || (len(fields)-3)%3 != 0 {
		return nil, &ParseError{
			Line:  lineNo,
			Token: line,
			Msg:   "expected date, flight number, seats per row and at least one (rowStart rowEnd price) triple",
		}
	}

	date := fields[0]
	number := fields[1]

	seatsPerRow, err := strconv.Atoi(fields[2])
	if err != nil || seatsPerRow < 1 || seatsPerRow > 26 {
		return nil, &ParseError{Line: lineNo, Token: fields[2], Msg: "seats per row must be a number between 1 and 26"}
	}

	var seats []entity.Seat
	seatNumber := 1
	for i := 3; i < len(fields); i += 3 {
		rowStart, err := strconv.Atoi(fields[i])
		if err != nil {
			return nil, &ParseError{Line: lineNo, Token: fields[i], Msg: "malformed row start"}
		}
		rowEnd, err := strconv.Atoi(fields[i+1])
		if err != nil {
			return nil, &ParseError{Line: lineNo, Token: fields[i+1], Msg: "malformed row end"}
		}
		price, perr := parsePrice(fields[i+2], lineNo)
		if perr != nil {
			return nil, perr
		}

		// An inverted range expands to zero seats, not an error.
		for row := rowStart; row <= rowEnd; row++ {
			for l := 0; l < seatsPerRow; l++ {
				letter := string(rune('A' + l))
				seats = append(seats, entity.NewSeat(seatNumber, row, letter, price))
				seatNumber++
			}
		}
	}

	return entity.NewFlight(number, date, seatsPerRow, seats), nil
}

func parsePrice(token string, lineNo int) (float64, error) {
	trimmed := strings.TrimPrefix(token, "$")
	price, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, &ParseError{Line: lineNo, Token: token, Msg: "malformed price"}
	}
	return price, nil
}
