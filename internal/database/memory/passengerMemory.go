package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/YelyzavetaZahorulko/oop-airfligth/internal/entity"
)

type passengerRepository struct {
	mu         sync.RWMutex
	passengers map[string]*entity.Passenger
}

func NewPassengerRepository() PassengerRepository {
	return &passengerRepository{
		passengers: make(map[string]*entity.Passenger),
	}
}

func (r *passengerRepository) GetByName(ctx context.Context, name string) (*entity.Passenger, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	passenger, ok := r.passengers[name]
	if !ok {
		return nil, entity.ErrPassengerNotFound
	}
	return passenger, nil
}

func (r *passengerRepository) GetOrCreate(ctx context.Context, name string) (*entity.Passenger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if passenger, ok := r.passengers[name]; ok {
		return passenger, nil
	}
	passenger := entity.NewPassenger(name)
	r.passengers[name] = passenger
	return passenger, nil
}

func (r *passengerRepository) GetAll(ctx context.Context) ([]*entity.Passenger, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	passengers := make([]*entity.Passenger, 0, len(r.passengers))
	for _, passenger := range r.passengers {
		passengers = append(passengers, passenger)
	}
	sort.Slice(passengers, func(i, j int) bool {
		return passengers[i].Name < passengers[j].Name
	})
	return passengers, nil
}
