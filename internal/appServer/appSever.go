package appServer

import (
	"context"
	"crypto/tls"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/YelyzavetaZahorulko/oop-airfligth/config"
	"github.com/YelyzavetaZahorulko/oop-airfligth/internal/catalog"
	repository "github.com/YelyzavetaZahorulko/oop-airfligth/internal/database/memory"
	"github.com/YelyzavetaZahorulko/oop-airfligth/internal/pkg/kafka"
	"github.com/YelyzavetaZahorulko/oop-airfligth/internal/service"
	"github.com/YelyzavetaZahorulko/oop-airfligth/internal/transport"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},           // ban on outdate TLS certificate
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags), // os.Stderr can be replaced with ElsasticSearch in the feature
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// App bundles the wired booking registry and its collaborators.
type App struct {
	Booking service.BookingService
	Flights service.FlightService

	producer kafka.Producer
}

// Build loads the flight catalog, fills the in-memory repositories and
// wires the services. Kafka is optional; when disabled the registry
// simply skips event publication.
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	flights, err := catalog.LoadFile(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}

	flightRepo := repository.NewFlightRepository()
	for _, flight := range flights {
		if err := flightRepo.Save(ctx, flight); err != nil {
			return nil, err
		}
	}
	passengerRepo := repository.NewPassengerRepository()
	ticketRepo := repository.NewTicketRepository()

	app := &App{}

	var publisher service.EventPublisher
	if cfg.Kafka.Enabled && cfg.Kafka.Brokers != "" {
		app.producer = kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		publisher = service.NewProducerAdapter(app.producer, cfg.Kafka.Topic)
		logrus.Info("Booking events producer initialized")
	} else {
		logrus.Info("Kafka disabled, booking events are not published")
	}

	app.Booking = service.NewBookingService(flightRepo, passengerRepo, ticketRepo, publisher)
	app.Flights = service.NewFlightService(flightRepo)

	logrus.Infof("Flight catalog loaded: %d flights from %s", flightRepo.Count(ctx), cfg.Catalog.Path)
	return app, nil
}

// Close releases the optional infrastructure.
func (a *App) Close() error {
	if a.producer != nil {
		return a.producer.Close()
	}
	return nil
}

func NewServer(cfg *config.Config) {

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := Build(ctx, cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.Close()

	// Initialize handlers
	flightHandler := transport.NewFlightHandler(app.Flights)
	bookingHandler := transport.NewBookingHandler(app.Booking)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := new(Server)
	go func() {
		if err := srv.Run(cfg, transport.InitRoutes(flightHandler, bookingHandler)); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}
}
