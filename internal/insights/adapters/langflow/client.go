package langflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"social-insights-service/internal/insights/core/domain"
	"social-insights-service/internal/insights/core/ports"
)

// Components are the flow node IDs that receive tweaks.
type Components struct {
	InsightsChatInput string
	InsightsPrompt    string
	InsightsFile      string
	InsightsModel     string

	ChatInput  string
	ChatPrompt string
	ChatModel  string
	ChatStore  string
}

type Config struct {
	BaseURL    string
	APIKey     string
	Components Components
	// Optional; a client without timeout is used when nil.
	HTTPClient *http.Client
}

// Pipeline runs flows on a Langflow server over its REST API.
type Pipeline struct {
	client     *http.Client
	baseURL    string
	apiKey     string
	components Components
}

var _ ports.PipelinePort = (*Pipeline)(nil)

func NewPipeline(cfg Config) *Pipeline {
	client := cfg.HTTPClient
	if client == nil {
		// deadlines come from the request context
		client = &http.Client{Timeout: 0}
	}
	return &Pipeline{
		client:     client,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		components: cfg.Components,
	}
}

func (p *Pipeline) Name() string { return "langflow" }

var _ ports.DatasetConsumer = (*Pipeline)(nil)

// UsesDataset reports whether Run uploads the attachment. Chat flows read
// their context from the vector store instead.
func (p *Pipeline) UsesDataset(mode domain.Mode) bool {
	return mode == domain.ModeInsights
}

func (p *Pipeline) Run(ctx context.Context, req domain.PipelineRequest) (domain.PipelineResult, error) {
	params := req.Params

	if req.Mode == domain.ModeInsights && req.Dataset != nil {
		path, err := p.uploadFile(ctx, params.FlowID, req.Dataset)
		if err != nil {
			return domain.PipelineResult{}, err
		}
		params.FilePath = path
	}

	body := runRequest{
		InputValue: params.InputValue,
		InputType:  "chat",
		OutputType: "chat",
		SessionID:  req.SessionID,
		Tweaks:     p.tweaks(req.Mode, params),
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return domain.PipelineResult{}, fmt.Errorf("langflow: marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/api/v1/run/%s?stream=false", p.baseURL, url.PathEscape(params.FlowID))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return domain.PipelineResult{}, fmt.Errorf("langflow: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	p.authorize(httpReq)

	var out runResponse
	if err := p.do(httpReq, &out); err != nil {
		return domain.PipelineResult{}, err
	}
	return out.result(), nil
}

// uploadFile stores the dataset on the server and returns the path the File
// component reads from.
func (p *Pipeline) uploadFile(ctx context.Context, flowID string, file *domain.Attachment) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", file.FileName)
	if err != nil {
		return "", fmt.Errorf("langflow: build upload: %w", err)
	}
	if _, err := part.Write(file.Content); err != nil {
		return "", fmt.Errorf("langflow: build upload: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("langflow: build upload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/api/v1/files/upload/%s", p.baseURL, url.PathEscape(flowID))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return "", fmt.Errorf("langflow: create upload request: %w", err)
	}
	httpReq.Header.Set("Content-Type", w.FormDataContentType())
	p.authorize(httpReq)

	var out uploadResponse
	if err := p.do(httpReq, &out); err != nil {
		return "", err
	}
	if out.FilePath == "" {
		return "", fmt.Errorf("%w: upload returned no file_path", ports.ErrUnexpectedShape)
	}
	return out.FilePath, nil
}

func (p *Pipeline) authorize(req *http.Request) {
	if p.apiKey != "" {
		req.Header.Set("x-api-key", p.apiKey)
	}
}

func (p *Pipeline) do(req *http.Request, out any) error {
	start := time.Now()
	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("langflow: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("langflow: unexpected status %s after %s: %s",
			resp.Status, time.Since(start).Round(time.Millisecond), strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ports.ErrUnexpectedShape, err)
	}
	return nil
}
