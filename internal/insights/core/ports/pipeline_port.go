package ports

import (
	"context"
	"errors"

	"social-insights-service/internal/insights/core/domain"
)

// ErrUnexpectedShape is returned when a pipeline answers with a payload the
// adapter cannot read.
var ErrUnexpectedShape = errors.New("unexpected pipeline response")

type PipelinePort interface {
	Run(ctx context.Context, req domain.PipelineRequest) (domain.PipelineResult, error)
	Name() string
}

// DatasetConsumer is implemented by pipelines that read an attached dataset
// only in some modes. Pipelines without it always receive the dataset.
type DatasetConsumer interface {
	UsesDataset(mode domain.Mode) bool
}
