package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/YelyzavetaZahorulko/oop-airfligth/internal/catalog"
	repository "github.com/YelyzavetaZahorulko/oop-airfligth/internal/database/memory"
	"github.com/YelyzavetaZahorulko/oop-airfligth/internal/entity"
	"github.com/YelyzavetaZahorulko/oop-airfligth/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	flights, err := catalog.Parse(strings.NewReader("2024-01-01 XY1 2 5 5 $50"))
	require.NoError(t, err)

	flightRepo := repository.NewFlightRepository()
	for _, flight := range flights {
		require.NoError(t, flightRepo.Save(context.Background(), flight))
	}

	booking := service.NewBookingService(
		flightRepo,
		repository.NewPassengerRepository(),
		repository.NewTicketRepository(),
		nil,
	)
	return InitRoutes(NewFlightHandler(service.NewFlightService(flightRepo)), NewBookingHandler(booking))
}

func doRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func bookBody(row int, letter, name string) map[string]interface{} {
	return map[string]interface{}{
		"flight_number":  "XY1",
		"flight_date":    "2024-01-01",
		"seat_row":       row,
		"seat_letter":    letter,
		"passenger_name": name,
	}
}

func TestBookTicketEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/tickets", bookBody(5, "A", "John Smith"))
	require.Equal(t, http.StatusCreated, w.Code)

	var resp SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, "John Smith", data["passenger_name"])
}

func TestBookTicketEndpointConflicts(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/tickets", bookBody(5, "A", "Alice"))
	require.Equal(t, http.StatusCreated, w.Code)

	// Same seat twice: conflict, nothing booked.
	w = doRequest(router, http.MethodPost, "/api/v1/tickets", bookBody(5, "A", "Bob"))
	assert.Equal(t, http.StatusConflict, w.Code)

	// Missing seat and missing flight map to 404.
	w = doRequest(router, http.MethodPost, "/api/v1/tickets", bookBody(9, "Z", "Bob"))
	assert.Equal(t, http.StatusNotFound, w.Code)

	body := bookBody(5, "B", "Bob")
	body["flight_date"] = "2030-01-01"
	w = doRequest(router, http.MethodPost, "/api/v1/tickets", body)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Binding failure.
	w = doRequest(router, http.MethodPost, "/api/v1/tickets", map[string]interface{}{"seat_row": 5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReturnTicketEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/tickets", bookBody(5, "A", "Alice"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(router, http.MethodDelete, "/api/v1/tickets/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 50.0, data["refund"])
	assert.Equal(t, 50.0, data["balance"])

	// The ticket is gone afterwards.
	w = doRequest(router, http.MethodGet, "/api/v1/tickets/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, http.MethodDelete, "/api/v1/tickets/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, http.MethodDelete, "/api/v1/tickets/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFlightEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/flights", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var infos []service.FlightInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &infos))
	require.Len(t, infos, 1)
	assert.Equal(t, 2, infos[0].TotalSeats)

	w = doRequest(router, http.MethodPost, "/api/v1/tickets", bookBody(5, "A", "Alice"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/flights/2024-01-01/XY1/seats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var seats []entity.Seat
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &seats))
	require.Len(t, seats, 1)
	assert.Equal(t, "5B", seats[0].Key())

	w = doRequest(router, http.MethodGet, "/api/v1/flights/2024-01-01/XY1/seats/5A", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var status service.SeatStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.True(t, status.Exists)
	assert.False(t, status.Available)

	w = doRequest(router, http.MethodGet, "/api/v1/flights/2024-01-01/XY1/seats/9Z", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.False(t, status.Exists)

	w = doRequest(router, http.MethodGet, "/api/v1/flights/2030-01-01/XY1/seats", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPassengerAndFlightTicketEndpoints(t *testing.T) {
	router := newTestRouter(t)

	for i, letter := range []string{"A", "B"} {
		w := doRequest(router, http.MethodPost, "/api/v1/tickets", bookBody(5, letter, "Alice"))
		require.Equal(t, http.StatusCreated, w.Code, "booking %d", i)
	}

	w := doRequest(router, http.MethodGet, "/api/v1/passengers/Alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var passenger service.PassengerInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &passenger))
	assert.Len(t, passenger.Tickets, 2)

	w = doRequest(router, http.MethodGet, "/api/v1/passengers/Nobody", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/flights/2024-01-01/XY1/tickets", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var tickets []entity.Ticket
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tickets))
	assert.Len(t, tickets, 2)
}

func TestAddSeatEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/flights/2024-01-01/XY1/seats", map[string]interface{}{
		"seat_number": 3,
		"seat_row":    6,
		"seat_letter": "A",
		"price":       80,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/flights/2024-01-01/XY1/seats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var seats []entity.Seat
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &seats))
	assert.Len(t, seats, 3)
}

func TestRequestIDHeader(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "fixed-id", rec.Header().Get("X-Request-ID"))
}
