package transport

import (
	"time"

	"github.com/YelyzavetaZahorulko/oop-airfligth/internal/transport/middleware"
	"github.com/gin-gonic/gin"
)

func InitRoutes(flightHandler *FlightHandler, bookingHandler *BookingHandler) *gin.Engine {

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Timeout(30 * time.Second))

	// API routes
	api := router.Group("/api/v1")
	{
		// Flight routes
		flights := api.Group("/flights")
		{
			flights.GET("", flightHandler.GetAllFlights)
			flights.GET("/:date/:number", flightHandler.GetFlight)
			flights.GET("/:date/:number/seats", flightHandler.GetAvailableSeats)
			flights.GET("/:date/:number/seats/:seat", flightHandler.CheckSeat)
			flights.POST("/:date/:number/seats", flightHandler.AddSeat)
			flights.GET("/:date/:number/tickets", bookingHandler.GetFlightTickets)
		}

		// Ticket routes
		tickets := api.Group("/tickets")
		{
			tickets.POST("", bookingHandler.BookTicket)
			tickets.GET("/:id", bookingHandler.GetTicket)
			tickets.DELETE("/:id", bookingHandler.ReturnTicket)
		}

		// Passenger routes
		passengers := api.Group("/passengers")
		{
			passengers.GET("/:name", bookingHandler.GetPassenger)
		}
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return router
}
