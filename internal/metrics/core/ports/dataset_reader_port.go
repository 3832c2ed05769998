package ports

import (
	"context"

	datasetdomain "social-insights-service/internal/datasets/core/domain"
)

// DatasetReaderPort gives read access to uploaded datasets.
// Unknown ids return the datasets context's ErrDatasetNotFound.
type DatasetReaderPort interface {
	Get(ctx context.Context, id string) (*datasetdomain.Dataset, error)
}
