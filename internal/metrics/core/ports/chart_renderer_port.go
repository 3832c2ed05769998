package ports

import (
	"errors"

	"social-insights-service/internal/metrics/core/domain"
)

var (
	ErrUnknownChart    = errors.New("unknown chart")
	ErrNothingToRender = errors.New("nothing to render")
)

// ChartRendererPort draws one named dashboard chart as a PNG.
type ChartRendererPort interface {
	Render(name string, dash *domain.Dashboard) ([]byte, error)
	Charts() []string
}
