package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"social-insights-service/internal/insights/core/domain"
	"social-insights-service/internal/insights/core/ports"

	"github.com/google/uuid"
)

var (
	ErrInvalidInsightRequest = errors.New("invalid insight request")
	// ErrRetrieval means the pipeline failed or answered without a message.
	ErrRetrieval = errors.New("retrieval error")
)

const defaultHistoryLimit = 20

// Settings are the pipeline parameters that do not change between requests.
type Settings struct {
	InsightsFlowID string
	ChatFlowID     string
	Model          string
	ModelURL       string
	Temperature    float64
	Retrieval      domain.Retrieval
	Timeout        time.Duration
	// Number of earlier turns rendered into {History} for chat.
	HistoryLimit int
}

type InsightUseCase struct {
	pipeline ports.PipelinePort
	datasets ports.DatasetReaderPort
	// nil disables history.
	history  ports.InsightRepositoryPort
	settings Settings
	now      func() time.Time
}

func NewInsightUseCase(pipeline ports.PipelinePort, datasets ports.DatasetReaderPort, history ports.InsightRepositoryPort, settings Settings) *InsightUseCase {
	return &InsightUseCase{
		pipeline: pipeline,
		datasets: datasets,
		history:  history,
		settings: settings,
		now:      time.Now,
	}
}

type GenerateInsightsInput struct {
	DatasetID string
	SessionID string
}

type ChatInput struct {
	Query string
	// Optional. The dataset is handed to the pipeline as context unless the
	// pipeline does not read datasets in chat mode; it always tags history.
	DatasetID string
	SessionID string
}

// GenerateInsights runs the fixed insights instruction over a dataset.
func (uc *InsightUseCase) GenerateInsights(ctx context.Context, in GenerateInsightsInput) (*domain.Insight, error) {
	if strings.TrimSpace(in.DatasetID) == "" {
		return nil, fmt.Errorf("%w: dataset_id is required", ErrInvalidInsightRequest)
	}

	attachment, err := uc.attachment(ctx, in.DatasetID)
	if err != nil {
		return nil, err
	}

	req := domain.PipelineRequest{
		Mode:      domain.ModeInsights,
		SessionID: sessionOrNew(in.SessionID),
		Params: domain.PipelineParams{
			FlowID:        uc.settings.InsightsFlowID,
			InputValue:    domain.InsightsInstruction,
			Template:      domain.InsightsTemplate,
			SystemMessage: domain.InsightsSystemMessage,
			FilePath:      attachment.FileName,
			Model:         uc.settings.Model,
			ModelURL:      uc.settings.ModelURL,
			Temperature:   uc.settings.Temperature,
		},
		Dataset: attachment,
	}

	return uc.run(ctx, req, in.DatasetID)
}

// Chat forwards a free-text question, with recent session turns as history.
func (uc *InsightUseCase) Chat(ctx context.Context, in ChatInput) (*domain.Insight, error) {
	query := strings.TrimSpace(in.Query)
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", ErrInvalidInsightRequest)
	}

	retrieval := uc.settings.Retrieval
	req := domain.PipelineRequest{
		Mode:      domain.ModeChat,
		SessionID: sessionOrNew(in.SessionID),
		Params: domain.PipelineParams{
			FlowID:      uc.settings.ChatFlowID,
			InputValue:  query,
			Template:    domain.ChatTemplate,
			Model:       uc.settings.Model,
			ModelURL:    uc.settings.ModelURL,
			Temperature: uc.settings.Temperature,
			Retrieval:   &retrieval,
		},
	}

	if strings.TrimSpace(in.DatasetID) != "" {
		if uc.usesDataset(domain.ModeChat) {
			attachment, err := uc.attachment(ctx, in.DatasetID)
			if err != nil {
				return nil, err
			}
			req.Dataset = attachment
			req.Params.FilePath = attachment.FileName
		} else if _, err := uc.datasets.Get(ctx, in.DatasetID); err != nil {
			// the id still tags the stored turn, so it must exist
			return nil, err
		}
	}

	if in.SessionID != "" && uc.history != nil && uc.settings.HistoryLimit > 0 {
		past, err := uc.history.ListBySession(ctx, in.SessionID, uc.settings.HistoryLimit)
		if err != nil {
			return nil, fmt.Errorf("load history: %w", err)
		}
		for _, p := range past {
			req.History = append(req.History, p.Turn())
		}
	}

	return uc.run(ctx, req, in.DatasetID)
}

// History lists the stored insights of a session, oldest first.
func (uc *InsightUseCase) History(ctx context.Context, sessionID string, limit int) ([]domain.Insight, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, fmt.Errorf("%w: session_id is required", ErrInvalidInsightRequest)
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if uc.history == nil {
		return []domain.Insight{}, nil
	}
	return uc.history.ListBySession(ctx, sessionID, limit)
}

func (uc *InsightUseCase) run(ctx context.Context, req domain.PipelineRequest, datasetID string) (*domain.Insight, error) {
	if err := req.Params.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInsightRequest, err)
	}

	if uc.settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.settings.Timeout)
		defer cancel()
	}

	mode, provider := string(req.Mode), uc.pipeline.Name()
	start := uc.now()
	res, err := uc.pipeline.Run(ctx, req)
	pipelineDuration.WithLabelValues(mode, provider).Observe(uc.now().Sub(start).Seconds())
	if err != nil {
		pipelineRunsTotal.WithLabelValues(mode, provider, "error").Inc()
		return nil, fmt.Errorf("%w: %v", ErrRetrieval, err)
	}

	answer, ok := res.Message()
	if !ok {
		pipelineRunsTotal.WithLabelValues(mode, provider, "no_message").Inc()
		return nil, fmt.Errorf("%w: no message returned: %s", ErrRetrieval, res.Reason)
	}
	pipelineRunsTotal.WithLabelValues(mode, provider, "answered").Inc()

	insight := &domain.Insight{
		ID:        uuid.NewString(),
		SessionID: req.SessionID,
		DatasetID: datasetID,
		Mode:      req.Mode,
		Question:  req.Params.InputValue,
		Answer:    answer,
		Provider:  provider,
		CreatedAt: uc.now().UTC(),
	}

	if uc.history != nil {
		if err := uc.history.Save(ctx, insight); err != nil {
			return nil, fmt.Errorf("store insight: %w", err)
		}
	}
	return insight, nil
}

func (uc *InsightUseCase) usesDataset(mode domain.Mode) bool {
	if c, ok := uc.pipeline.(ports.DatasetConsumer); ok {
		return c.UsesDataset(mode)
	}
	return true
}

func (uc *InsightUseCase) attachment(ctx context.Context, datasetID string) (*domain.Attachment, error) {
	ds, err := uc.datasets.Get(ctx, datasetID)
	if err != nil {
		return nil, err
	}
	content, err := ds.Table.CSV()
	if err != nil {
		return nil, fmt.Errorf("encode dataset: %w", err)
	}
	return &domain.Attachment{FileName: domain.DatasetFileName, Content: content}, nil
}

func sessionOrNew(id string) string {
	if id = strings.TrimSpace(id); id != "" {
		return id
	}
	return uuid.NewString()
}
