package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"social-insights-service/internal/insights/core/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLDB_EnsureSchemaAndRoundTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewInsightRepository(NewSQLDB(db))
	created := time.Date(2024, 2, 1, 8, 30, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS insights")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO insights")).
		WithArgs("id-1", "s-1", "ds-1", "insights", "instruction", "- bullet", "openai", created).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("FROM insights")).
		WithArgs("s-1", 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "session_id", "dataset_id", "mode", "question", "answer", "provider", "created_at"}).
			AddRow("id-1", "s-1", "ds-1", "insights", "instruction", "- bullet", "openai", created))

	ctx := context.Background()
	require.NoError(t, repo.EnsureSchema(ctx))
	require.NoError(t, repo.Save(ctx, &domain.Insight{
		ID:        "id-1",
		SessionID: "s-1",
		DatasetID: "ds-1",
		Mode:      domain.ModeInsights,
		Question:  "instruction",
		Answer:    "- bullet",
		Provider:  "openai",
		CreatedAt: created,
	}))

	got, err := repo.ListBySession(ctx, "s-1", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "- bullet", got[0].Answer)
	assert.Equal(t, created, got[0].CreatedAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}
