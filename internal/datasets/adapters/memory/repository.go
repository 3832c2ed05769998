package memory

import (
	"context"
	"sync"

	"social-insights-service/internal/datasets/core/domain"
	"social-insights-service/internal/datasets/core/ports"
)

// DatasetRepository keeps uploaded datasets in process memory for the
// lifetime of a session. Stored datasets are never mutated.
type DatasetRepository struct {
	mu       sync.RWMutex
	capacity int
	items    map[string]*domain.Dataset
}

func NewDatasetRepository(capacity int) *DatasetRepository {
	return &DatasetRepository{
		capacity: capacity,
		items:    make(map[string]*domain.Dataset),
	}
}

var _ ports.DatasetRepositoryPort = (*DatasetRepository)(nil)

func (r *DatasetRepository) Save(_ context.Context, d *domain.Dataset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[d.ID]; !exists && len(r.items) >= r.capacity {
		return ports.ErrStoreFull
	}
	r.items[d.ID] = d
	return nil
}

func (r *DatasetRepository) Get(_ context.Context, id string) (*domain.Dataset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.items[id]
	if !ok {
		return nil, ports.ErrDatasetNotFound
	}
	return d, nil
}

func (r *DatasetRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return ports.ErrDatasetNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *DatasetRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
