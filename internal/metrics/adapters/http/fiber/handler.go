package fiber

import (
	"context"
	"errors"
	"net/http"
	"strings"

	datasetports "social-insights-service/internal/datasets/core/ports"
	"social-insights-service/internal/metrics/core/domain"
	"social-insights-service/internal/metrics/core/ports"
	"social-insights-service/internal/metrics/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type GetDashboardUseCase interface {
	Execute(ctx context.Context, in usecase.GetDashboardInput) (*domain.Dashboard, error)
}

type MetricsHandler struct {
	uc       GetDashboardUseCase
	renderer ports.ChartRendererPort
	logger   *logrus.Logger
}

func NewMetricsHandler(uc GetDashboardUseCase, renderer ports.ChartRendererPort, logger *logrus.Logger) *MetricsHandler {
	return &MetricsHandler{uc: uc, renderer: renderer, logger: logger}
}

// GetDashboard godoc
// @Summary Compute the dashboard of a dataset
// @Description Returns KPIs and every aggregate table for the selected platforms and post types. Omitting a filter selects every value; passing it empty selects nothing.
// @Tags Metrics
// @Produce json
// @Param id path string true "Dataset ID"
// @Param platforms query string false "Comma separated platforms"
// @Param post_types query string false "Comma separated post types"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /datasets/{id}/dashboard [get]
func (h *MetricsHandler) GetDashboard(c *fiber.Ctx) error {
	dash, err := h.uc.Execute(c.Context(), dashboardInput(c))
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(NewDashboardResponse(dash, h.renderer.Charts()))
}

// GetChart godoc
// @Summary Render a dashboard chart
// @Description Renders one chart of the dashboard as PNG. Charts: platform-share, monthly-trend, platform-performance, post-type-performance, frequency-engagement.
// @Tags Metrics
// @Produce png
// @Param id path string true "Dataset ID"
// @Param chart path string true "Chart name"
// @Param platforms query string false "Comma separated platforms"
// @Param post_types query string false "Comma separated post types"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /datasets/{id}/charts/{chart} [get]
func (h *MetricsHandler) GetChart(c *fiber.Ctx) error {
	name := c.Params("chart")
	if !h.knownChart(name) {
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "unknown_chart",
			Message: "chart " + name + " does not exist",
		})
	}

	dash, err := h.uc.Execute(c.Context(), dashboardInput(c))
	if err != nil {
		return h.writeError(c, err)
	}

	png, err := h.renderer.Render(name, dash)
	if err != nil {
		return h.writeError(c, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Status(http.StatusOK).Send(png)
}

func (h *MetricsHandler) knownChart(name string) bool {
	for _, n := range h.renderer.Charts() {
		if n == name {
			return true
		}
	}
	return false
}

func dashboardInput(c *fiber.Ctx) usecase.GetDashboardInput {
	return usecase.GetDashboardInput{
		DatasetID: c.Params("id"),
		Platforms: selection(c, "platforms"),
		PostTypes: selection(c, "post_types"),
	}
}

// selection returns nil when the parameter is absent and a non-nil, possibly
// empty slice when it is present. Repeated and comma separated values mix.
func selection(c *fiber.Ctx, key string) []string {
	args := c.Context().QueryArgs()
	if !args.Has(key) {
		return nil
	}

	out := []string{}
	for _, raw := range args.PeekMulti(key) {
		for _, v := range strings.Split(string(raw), ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func (h *MetricsHandler) writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidDashboardQuery):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrSchema),
		errors.Is(err, usecase.ErrParse),
		errors.Is(err, usecase.ErrType):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_table",
			Message: err.Error(),
		})
	case errors.Is(err, datasetports.ErrDatasetNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "dataset_not_found",
			Message: err.Error(),
		})
	case errors.Is(err, ports.ErrUnknownChart):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "unknown_chart",
			Message: err.Error(),
		})
	case errors.Is(err, ports.ErrNothingToRender):
		return c.Status(http.StatusUnprocessableEntity).JSON(ErrorResponse{
			Error:   "nothing_to_render",
			Message: "the current selection has no data for this chart",
		})
	default:
		h.logger.WithError(err).Error("dashboard request failed")
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
