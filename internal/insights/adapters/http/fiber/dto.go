package fiber

import (
	"time"

	"social-insights-service/internal/insights/core/domain"
)

type GenerateInsightsRequest struct {
	SessionID string `json:"session_id" example:"5f0c3c1e-2b7a-4f2e-9d0b-8f0f6f3f8a11"`
}

type ChatRequest struct {
	Query     string `json:"query" example:"What is the average likes in the LinkedIn?"`
	DatasetID string `json:"dataset_id,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

type InsightResponse struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	DatasetID string    `json:"dataset_id,omitempty"`
	Mode      string    `json:"mode" example:"chat"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Provider  string    `json:"provider" example:"langflow"`
	CreatedAt time.Time `json:"created_at"`
}

type InsightListResponse struct {
	SessionID string            `json:"session_id"`
	Items     []InsightResponse `json:"items"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"retrieval_error"`
	Message string `json:"message" example:"No results returned from the pipeline or unexpected format."`
}

func toInsightResponse(in *domain.Insight) InsightResponse {
	return InsightResponse{
		ID:        in.ID,
		SessionID: in.SessionID,
		DatasetID: in.DatasetID,
		Mode:      string(in.Mode),
		Question:  in.Question,
		Answer:    in.Answer,
		Provider:  in.Provider,
		CreatedAt: in.CreatedAt,
	}
}
