package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpandsRowRanges(t *testing.T) {
	flights, err := Parse(strings.NewReader("2024-01-01 XY1 3 1 2 100"))
	require.NoError(t, err)
	require.Len(t, flights, 1)

	flight := flights[0]
	assert.Equal(t, "XY1", flight.Number)
	assert.Equal(t, "2024-01-01", flight.Date)
	assert.Equal(t, 3, flight.SeatsPerRow)

	seats := flight.Seats()
	require.Len(t, seats, 6)

	wantKeys := []string{"1A", "1B", "1C", "2A", "2B", "2C"}
	for i, seat := range seats {
		assert.Equal(t, wantKeys[i], seat.Key())
		assert.Equal(t, i+1, seat.Number, "seat numbers run row-major across the record")
		assert.Equal(t, 100.0, seat.Price)
		assert.True(t, seat.Available)
	}
}

func TestParseSeatCounterSpansRanges(t *testing.T) {
	flights, err := Parse(strings.NewReader("2024-05-01 AB123 6 1 10 $150.00 11 20 $250.00"))
	require.NoError(t, err)
	require.Len(t, flights, 1)

	seats := flights[0].Seats()
	require.Len(t, seats, 120)

	// The counter is not reset between ranges.
	byKey := make(map[string]int)
	prices := make(map[string]float64)
	for _, seat := range seats {
		byKey[seat.Key()] = seat.Number
		prices[seat.Key()] = seat.Price
	}
	assert.Equal(t, 1, byKey["1A"])
	assert.Equal(t, 60, byKey["10F"])
	assert.Equal(t, 61, byKey["11A"])
	assert.Equal(t, 120, byKey["20F"])

	assert.Equal(t, 150.0, prices["10F"])
	assert.Equal(t, 250.0, prices["11A"])
}

func TestParseEdgeCases(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		flights   int
		seats     int
		wantErr   bool
		wantToken string
	}{
		{
			name:    "blank lines produce no flight",
			input:   "\n\n2024-01-01 XY1 2 1 1 50\n\n",
			flights: 1,
			seats:   2,
		},
		{
			name:    "inverted range yields zero seats",
			input:   "2024-01-01 XY1 2 5 3 50",
			flights: 1,
			seats:   0,
		},
		{
			name:    "currency symbol is stripped",
			input:   "2024-01-01 XY1 1 1 1 $99.90",
			flights: 1,
			seats:   1,
		},
		{
			name:      "malformed price rejects the record",
			input:     "2024-01-01 XY1 2 1 5 $abc",
			wantErr:   true,
			wantToken: "$abc",
		},
		{
			name:      "malformed seats per row",
			input:     "2024-01-01 XY1 x 1 5 50",
			wantErr:   true,
			wantToken: "x",
		},
		{
			name:      "seats per row above the alphabet",
			input:     "2024-01-01 XY1 27 1 5 50",
			wantErr:   true,
			wantToken: "27",
		},
		{
			name:    "incomplete range triple",
			input:   "2024-01-01 XY1 2 1 5",
			wantErr: true,
		},
		{
			name:      "malformed row start",
			input:     "2024-01-01 XY1 2 one 5 50",
			wantErr:   true,
			wantToken: "one",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flights, err := Parse(strings.NewReader(tt.input))

			if tt.wantErr {
				require.Error(t, err)
				var parseErr *ParseError
				require.ErrorAs(t, err, &parseErr)
				if tt.wantToken != "" {
					assert.Equal(t, tt.wantToken, parseErr.Token)
				}
				assert.Nil(t, flights, "a rejected record must not be partially applied")
				return
			}

			require.NoError(t, err)
			require.Len(t, flights, tt.flights)
			assert.Equal(t, tt.seats, flights[0].SeatCount())
		})
	}
}

func TestParseMultipleLines(t *testing.T) {
	input := "2024-05-01 AB123 6 1 10 $150.00\n" +
		"2024-05-01 CD456 4 1 15 $99.90\n" +
		"2024-05-02 AB123 6 1 10 $150.00\n"

	flights, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, flights, 3)

	// Same number on different dates stays distinct.
	assert.NotEqual(t, flights[0].Key(), flights[2].Key())
	assert.Equal(t, 60, flights[0].SeatCount())
	assert.Equal(t, 60, flights[1].SeatCount())
}
