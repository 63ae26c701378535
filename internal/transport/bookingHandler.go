package transport

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/YelyzavetaZahorulko/oop-airfligth/internal/entity"
	"github.com/YelyzavetaZahorulko/oop-airfligth/internal/service"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingService service.BookingService
}

func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// ErrorResponse wraps a failed operation.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// SuccessResponse wraps a completed operation.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func (h *BookingHandler) BookTicket(c *gin.Context) {
	var req service.BookTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	ticket, err := h.bookingService.BookTicket(c.Request.Context(), &req)
	if err != nil {
		c.JSON(statusFromError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{
		Success: true,
		Message: "ticket booked",
		Data:    ticket,
	})
}

func (h *BookingHandler) ReturnTicket(c *gin.Context) {
	ticketID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid ticket id"})
		return
	}

	result, err := h.bookingService.ReturnTicket(c.Request.Context(), ticketID)
	if err != nil {
		c.JSON(statusFromError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "ticket returned",
		Data:    result,
	})
}

func (h *BookingHandler) GetTicket(c *gin.Context) {
	ticketID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid ticket id"})
		return
	}

	ticket, err := h.bookingService.GetTicket(c.Request.Context(), ticketID)
	if err != nil {
		c.JSON(statusFromError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ticket)
}

func (h *BookingHandler) GetPassenger(c *gin.Context) {
	name := c.Param("name")

	passenger, err := h.bookingService.GetPassenger(c.Request.Context(), name)
	if err != nil {
		c.JSON(statusFromError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, passenger)
}

func (h *BookingHandler) GetFlightTickets(c *gin.Context) {
	number := c.Param("number")
	date := c.Param("date")

	tickets, err := h.bookingService.GetFlightTickets(c.Request.Context(), number, date)
	if err != nil {
		c.JSON(statusFromError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, tickets)
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, entity.ErrFlightNotFound),
		errors.Is(err, entity.ErrSeatNotFound),
		errors.Is(err, entity.ErrTicketNotFound),
		errors.Is(err, entity.ErrPassengerNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrSeatUnavailable):
		return http.StatusConflict
	case errors.Is(err, entity.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
