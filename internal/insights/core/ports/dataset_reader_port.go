package ports

import (
	"context"

	datasetdomain "social-insights-service/internal/datasets/core/domain"
)

type DatasetReaderPort interface {
	Get(ctx context.Context, id string) (*datasetdomain.Dataset, error)
}
