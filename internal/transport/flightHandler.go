package transport

import (
	"net/http"

	"github.com/YelyzavetaZahorulko/oop-airfligth/internal/entity"
	"github.com/YelyzavetaZahorulko/oop-airfligth/internal/service"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	flightService service.FlightService
}

func NewFlightHandler(flightService service.FlightService) *FlightHandler {
	return &FlightHandler{flightService: flightService}
}

func (h *FlightHandler) GetAllFlights(c *gin.Context) {
	flights, err := h.flightService.GetAllFlights(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, flights)
}

func (h *FlightHandler) GetFlight(c *gin.Context) {
	number := c.Param("number")
	date := c.Param("date")

	flight, err := h.flightService.GetFlight(c.Request.Context(), number, date)
	if err != nil {
		c.JSON(statusFromError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, flight)
}

// GetAvailableSeats lists the free seats of one flight with their prices.
func (h *FlightHandler) GetAvailableSeats(c *gin.Context) {
	number := c.Param("number")
	date := c.Param("date")

	seats, err := h.flightService.CheckAvailability(c.Request.Context(), number, date)
	if err != nil {
		c.JSON(statusFromError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, seats)
}

// CheckSeat reports the status of a single seat, e.g. "12B".
func (h *FlightHandler) CheckSeat(c *gin.Context) {
	number := c.Param("number")
	date := c.Param("date")

	row, letter, err := entity.ParseSeatKey(c.Param("seat"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid seat, expected something like 12B"})
		return
	}

	status, err := h.flightService.CheckSeat(c.Request.Context(), number, date, row, letter)
	if err != nil {
		c.JSON(statusFromError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, status)
}

func (h *FlightHandler) AddSeat(c *gin.Context) {
	var req service.AddSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	req.FlightNumber = c.Param("number")
	req.FlightDate = c.Param("date")

	if err := h.flightService.AddSeat(c.Request.Context(), &req); err != nil {
		c.JSON(statusFromError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{Success: true, Message: "seat added"})
}
