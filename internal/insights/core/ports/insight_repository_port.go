package ports

import (
	"context"

	"social-insights-service/internal/insights/core/domain"
)

type InsightRepositoryPort interface {
	Save(ctx context.Context, in *domain.Insight) error
	// ListBySession returns the newest limit insights of a session, oldest first.
	ListBySession(ctx context.Context, sessionID string, limit int) ([]domain.Insight, error)
}
