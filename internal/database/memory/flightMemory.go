package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/YelyzavetaZahorulko/oop-airfligth/internal/entity"
)

type flightRepository struct {
	mu      sync.RWMutex
	flights map[string]*entity.Flight
}

func NewFlightRepository() FlightRepository {
	return &flightRepository{
		flights: make(map[string]*entity.Flight),
	}
}

func (r *flightRepository) Save(ctx context.Context, flight *entity.Flight) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.flights[flight.Key()] = flight
	return nil
}

func (r *flightRepository) GetByNumberAndDate(ctx context.Context, number, date string) (*entity.Flight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	flight, ok := r.flights[entity.FlightKey(number, date)]
	if !ok {
		return nil, entity.ErrFlightNotFound
	}
	return flight, nil
}

func (r *flightRepository) GetAll(ctx context.Context) ([]*entity.Flight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	flights := make([]*entity.Flight, 0, len(r.flights))
	for _, flight := range r.flights {
		flights = append(flights, flight)
	}
	sort.Slice(flights, func(i, j int) bool {
		if flights[i].Date != flights[j].Date {
			return flights[i].Date < flights[j].Date
		}
		return flights[i].Number < flights[j].Number
	})
	return flights, nil
}

func (r *flightRepository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.flights)
}
