package ports

import (
	"context"
	"errors"

	"social-insights-service/internal/datasets/core/domain"
)

var (
	ErrDatasetNotFound = errors.New("dataset not found")
	ErrStoreFull       = errors.New("dataset store is full")
)

type DatasetRepositoryPort interface {
	// Save stores d under d.ID. Returns ErrStoreFull when no capacity is left.
	Save(ctx context.Context, d *domain.Dataset) error
	// Get returns ErrDatasetNotFound for unknown ids.
	Get(ctx context.Context, id string) (*domain.Dataset, error)
	Delete(ctx context.Context, id string) error
}

// TableDecoderPort turns raw file content into a Table.
type TableDecoderPort interface {
	Decode(format string, content []byte) (domain.Table, error)
}

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrMalformedTable    = errors.New("malformed table")
)
