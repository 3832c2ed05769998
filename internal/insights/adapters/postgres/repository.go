package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"social-insights-service/internal/insights/core/domain"
	"social-insights-service/internal/insights/core/ports"

	"github.com/lib/pq"
)

type InsightRepository struct {
	db DB
}

func NewInsightRepository(db DB) *InsightRepository {
	return &InsightRepository{db: db}
}

var _ ports.InsightRepositoryPort = (*InsightRepository)(nil)

const createInsightsSQL = `
CREATE TABLE IF NOT EXISTS insights (
    id          UUID PRIMARY KEY,
    session_id  TEXT        NOT NULL,
    dataset_id  TEXT,
    mode        TEXT        NOT NULL,
    question    TEXT        NOT NULL,
    answer      TEXT        NOT NULL,
    provider    TEXT        NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS insights_session_created_idx ON insights (session_id, created_at);
`

const insertInsightSQL = `
INSERT INTO insights (
    id,
    session_id,
    dataset_id,
    mode,
    question,
    answer,
    provider,
    created_at
) VALUES (
    $1, $2, $3, $4,
    $5, $6, $7, $8
);
`

// newest rows first, reversed in Go
const listBySessionSQL = `
SELECT id, session_id, dataset_id, mode, question, answer, provider, created_at
FROM insights
WHERE session_id = $1
ORDER BY created_at DESC
LIMIT $2;
`

// EnsureSchema creates the insights table when it does not exist.
func (r *InsightRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createInsightsSQL); err != nil {
		return fmt.Errorf("create insights table: %w", err)
	}
	return nil
}

func (r *InsightRepository) Save(ctx context.Context, in *domain.Insight) error {
	var datasetID any
	if in.DatasetID != "" {
		datasetID = in.DatasetID
	}

	_, err := r.db.ExecContext(ctx, insertInsightSQL,
		in.ID,
		in.SessionID,
		datasetID,
		string(in.Mode),
		in.Question,
		in.Answer,
		in.Provider,
		in.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("insert insight (%s): %w", pqErr.Code.Name(), err)
		}
		return fmt.Errorf("insert insight: %w", err)
	}
	return nil
}

func (r *InsightRepository) ListBySession(ctx context.Context, sessionID string, limit int) ([]domain.Insight, error) {
	rows, err := r.db.QueryContext(ctx, listBySessionSQL, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("list insights: %w", err)
	}
	defer rows.Close()

	out := []domain.Insight{}
	for rows.Next() {
		var (
			in        domain.Insight
			datasetID sql.NullString
			mode      string
			createdAt time.Time
		)
		if err := rows.Scan(&in.ID, &in.SessionID, &datasetID, &mode, &in.Question, &in.Answer, &in.Provider, &createdAt); err != nil {
			return nil, fmt.Errorf("scan insight: %w", err)
		}
		in.DatasetID = datasetID.String
		in.Mode = domain.Mode(mode)
		in.CreatedAt = createdAt.UTC()
		out = append(out, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate insights: %w", err)
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}
