package fiber

import (
	"context"
	"errors"
	"net/http"

	datasetports "social-insights-service/internal/datasets/core/ports"
	"social-insights-service/internal/insights/core/domain"
	"social-insights-service/internal/insights/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type InsightUseCase interface {
	GenerateInsights(ctx context.Context, in usecase.GenerateInsightsInput) (*domain.Insight, error)
	Chat(ctx context.Context, in usecase.ChatInput) (*domain.Insight, error)
	History(ctx context.Context, sessionID string, limit int) ([]domain.Insight, error)
}

type InsightHandler struct {
	uc     InsightUseCase
	logger *logrus.Logger
}

func NewInsightHandler(uc InsightUseCase, logger *logrus.Logger) *InsightHandler {
	return &InsightHandler{uc: uc, logger: logger}
}

// GenerateInsights godoc
// @Summary Generate insights for a dataset
// @Description Runs the fixed insights instruction and template over the dataset and returns the model's bullet points
// @Tags Insights
// @Accept json
// @Produce json
// @Param id path string true "Dataset ID"
// @Param request body GenerateInsightsRequest false "Session to attach the answer to"
// @Success 200 {object} InsightResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /datasets/{id}/insights [post]
func (h *InsightHandler) GenerateInsights(c *fiber.Ctx) error {
	var req GenerateInsightsRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_json",
				Message: "Request body must be valid JSON",
			})
		}
	}

	out, err := h.uc.GenerateInsights(c.Context(), usecase.GenerateInsightsInput{
		DatasetID: c.Params("id"),
		SessionID: req.SessionID,
	})
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(toInsightResponse(out))
}

// Chat godoc
// @Summary Ask a free-text question
// @Description Forwards the query to the chat pipeline, optionally with a dataset as context and the session's recent turns as history
// @Tags Insights
// @Accept json
// @Produce json
// @Param request body ChatRequest true "Question"
// @Success 200 {object} InsightResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /chat [post]
func (h *InsightHandler) Chat(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_json",
			Message: "Request body must be valid JSON",
		})
	}

	out, err := h.uc.Chat(c.Context(), usecase.ChatInput{
		Query:     req.Query,
		DatasetID: req.DatasetID,
		SessionID: req.SessionID,
	})
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(toInsightResponse(out))
}

// ListInsights godoc
// @Summary List stored answers of a session
// @Tags Insights
// @Produce json
// @Param session_id query string true "Session ID"
// @Param limit query int false "Maximum number of items" default(20)
// @Success 200 {object} InsightListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /insights [get]
func (h *InsightHandler) ListInsights(c *fiber.Ctx) error {
	sessionID := c.Query("session_id", "")
	limit := c.QueryInt("limit", 0)
	if limit < 0 {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_limit",
			Message: "limit must not be negative",
		})
	}

	items, err := h.uc.History(c.Context(), sessionID, limit)
	if err != nil {
		return h.writeError(c, err)
	}

	resp := InsightListResponse{
		SessionID: sessionID,
		Items:     make([]InsightResponse, 0, len(items)),
	}
	for i := range items {
		resp.Items = append(resp.Items, toInsightResponse(&items[i]))
	}
	return c.Status(http.StatusOK).JSON(resp)
}

func (h *InsightHandler) writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInsightRequest):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
	case errors.Is(err, datasetports.ErrDatasetNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "dataset_not_found",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrRetrieval):
		h.logger.WithError(err).Warn("pipeline returned no usable answer")
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
			Error:   "retrieval_error",
			Message: "No results returned from the pipeline or unexpected format.",
		})
	default:
		h.logger.WithError(err).Error("insight request failed")
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
