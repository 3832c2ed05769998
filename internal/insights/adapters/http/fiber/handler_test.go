package fiber_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	datasetports "social-insights-service/internal/datasets/core/ports"
	httpadapter "social-insights-service/internal/insights/adapters/http/fiber"
	"social-insights-service/internal/insights/core/domain"
	"social-insights-service/internal/insights/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Fake usecase implementing the interface that handler depends on.
type fakeInsightUseCase struct {
	GenerateFn func(ctx context.Context, in usecase.GenerateInsightsInput) (*domain.Insight, error)
	ChatFn     func(ctx context.Context, in usecase.ChatInput) (*domain.Insight, error)
	HistoryFn  func(ctx context.Context, sessionID string, limit int) ([]domain.Insight, error)

	lastGenerate usecase.GenerateInsightsInput
	lastChat     usecase.ChatInput
	called       bool
}

func (f *fakeInsightUseCase) GenerateInsights(ctx context.Context, in usecase.GenerateInsightsInput) (*domain.Insight, error) {
	f.called = true
	f.lastGenerate = in
	if f.GenerateFn != nil {
		return f.GenerateFn(ctx, in)
	}
	return &domain.Insight{ID: "i-1", DatasetID: in.DatasetID, Mode: domain.ModeInsights, Answer: "ok"}, nil
}

func (f *fakeInsightUseCase) Chat(ctx context.Context, in usecase.ChatInput) (*domain.Insight, error) {
	f.called = true
	f.lastChat = in
	if f.ChatFn != nil {
		return f.ChatFn(ctx, in)
	}
	return &domain.Insight{ID: "i-2", Mode: domain.ModeChat, Question: in.Query, Answer: "ok"}, nil
}

func (f *fakeInsightUseCase) History(ctx context.Context, sessionID string, limit int) ([]domain.Insight, error) {
	f.called = true
	if f.HistoryFn != nil {
		return f.HistoryFn(ctx, sessionID, limit)
	}
	return nil, nil
}

func setupApp(t *testing.T, uc httpadapter.InsightUseCase) *fiber.App {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := fiber.New()
	h := httpadapter.NewInsightHandler(uc, logger)
	app.Post("/datasets/:id/insights", h.GenerateInsights)
	app.Post("/chat", h.Chat)
	app.Get("/insights", h.ListInsights)
	return app
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// ------------------------------------------------------------
// GENERATE INSIGHTS
// ------------------------------------------------------------

func TestGenerateInsights_Success(t *testing.T) {
	uc := &fakeInsightUseCase{}
	app := setupApp(t, uc)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/datasets/ds-1/insights", `{"session_id":"s-1"}`))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if uc.lastGenerate.DatasetID != "ds-1" || uc.lastGenerate.SessionID != "s-1" {
		t.Fatalf("unexpected input: %+v", uc.lastGenerate)
	}

	var body httpadapter.InsightResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Mode != "insights" || body.Answer != "ok" {
		t.Fatalf("unexpected response: %+v", body)
	}
}

func TestGenerateInsights_EmptyBody(t *testing.T) {
	uc := &fakeInsightUseCase{}
	app := setupApp(t, uc)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/datasets/ds-1/insights", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if uc.lastGenerate.SessionID != "" {
		t.Fatalf("expected no session, got %s", uc.lastGenerate.SessionID)
	}
}

func TestGenerateInsights_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid", err: usecase.ErrInvalidInsightRequest, want: http.StatusBadRequest},
		{name: "not found", err: datasetports.ErrDatasetNotFound, want: http.StatusNotFound},
		{name: "retrieval", err: fmt.Errorf("%w: no message returned", usecase.ErrRetrieval), want: http.StatusBadGateway},
		{name: "unexpected", err: io.ErrUnexpectedEOF, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeInsightUseCase{
				GenerateFn: func(ctx context.Context, in usecase.GenerateInsightsInput) (*domain.Insight, error) {
					return nil, tt.err
				},
			}
			app := setupApp(t, uc)

			resp, err := app.Test(jsonRequest(http.MethodPost, "/datasets/ds-1/insights", `{}`))
			if err != nil {
				t.Fatalf("app.Test error: %v", err)
			}
			if resp.StatusCode != tt.want {
				t.Fatalf("expected status %d, got %d", tt.want, resp.StatusCode)
			}
		})
	}
}

// ------------------------------------------------------------
// CHAT
// ------------------------------------------------------------

func TestChat_Success(t *testing.T) {
	uc := &fakeInsightUseCase{}
	app := setupApp(t, uc)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/chat",
		`{"query":"What is the average likes in the LinkedIn?","dataset_id":"ds-1","session_id":"s-1"}`))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if uc.lastChat.Query != "What is the average likes in the LinkedIn?" || uc.lastChat.DatasetID != "ds-1" {
		t.Fatalf("unexpected input: %+v", uc.lastChat)
	}
}

func TestChat_InvalidJSON(t *testing.T) {
	uc := &fakeInsightUseCase{}
	app := setupApp(t, uc)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/chat", `{"query":`))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
	if uc.called {
		t.Fatalf("usecase must not be called for invalid JSON")
	}
}

func TestChat_RetrievalError(t *testing.T) {
	uc := &fakeInsightUseCase{
		ChatFn: func(ctx context.Context, in usecase.ChatInput) (*domain.Insight, error) {
			return nil, usecase.ErrRetrieval
		},
	}
	app := setupApp(t, uc)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/chat", `{"query":"hi"}`))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", resp.StatusCode)
	}

	var body httpadapter.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Error != "retrieval_error" {
		t.Fatalf("unexpected error code: %s", body.Error)
	}
}

// ------------------------------------------------------------
// HISTORY
// ------------------------------------------------------------

func TestListInsights_Success(t *testing.T) {
	created := time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)
	uc := &fakeInsightUseCase{
		HistoryFn: func(ctx context.Context, sessionID string, limit int) ([]domain.Insight, error) {
			if sessionID != "s-1" || limit != 5 {
				t.Fatalf("expected s-1/5, got %s/%d", sessionID, limit)
			}
			return []domain.Insight{
				{ID: "i-1", SessionID: sessionID, Mode: domain.ModeChat, Answer: "a1", CreatedAt: created},
				{ID: "i-2", SessionID: sessionID, Mode: domain.ModeChat, Answer: "a2", CreatedAt: created.Add(time.Minute)},
			}, nil
		},
	}
	app := setupApp(t, uc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/insights?session_id=s-1&limit=5", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var body httpadapter.InsightListResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Items) != 2 || body.Items[0].ID != "i-1" {
		t.Fatalf("unexpected items: %+v", body.Items)
	}
}

func TestListInsights_MissingSession(t *testing.T) {
	uc := &fakeInsightUseCase{
		HistoryFn: func(ctx context.Context, sessionID string, limit int) ([]domain.Insight, error) {
			return nil, usecase.ErrInvalidInsightRequest
		},
	}
	app := setupApp(t, uc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/insights", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
}

func TestListInsights_NegativeLimit(t *testing.T) {
	uc := &fakeInsightUseCase{}
	app := setupApp(t, uc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/insights?session_id=s-1&limit=-1", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
	if uc.called {
		t.Fatalf("usecase must not be called for a negative limit")
	}
}
