package fiber

import (
	"context"
	"errors"
	"io"
	"net/http"

	"social-insights-service/internal/datasets/core/domain"
	"social-insights-service/internal/datasets/core/ports"
	"social-insights-service/internal/datasets/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type DatasetUseCase interface {
	Upload(ctx context.Context, in usecase.UploadDatasetInput) (*domain.Dataset, error)
	Get(ctx context.Context, id string) (*usecase.DatasetView, error)
	Delete(ctx context.Context, id string) error
}

type DatasetHandler struct {
	uc     DatasetUseCase
	logger *logrus.Logger
}

func NewDatasetHandler(uc DatasetUseCase, logger *logrus.Logger) *DatasetHandler {
	return &DatasetHandler{uc: uc, logger: logger}
}

// UploadDataset godoc
// @Summary Upload a dataset
// @Description Uploads a CSV (.csv/.txt) or JSON file of post metrics and keeps it in memory for the session
// @Tags Datasets
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Post metrics file"
// @Success 201 {object} DatasetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /datasets [post]
func (h *DatasetHandler) UploadDataset(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "file_required",
			Message: "multipart field 'file' is required",
		})
	}

	f, err := fh.Open()
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_upload",
		})
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_upload",
		})
	}

	d, err := h.uc.Upload(c.UserContext(), usecase.UploadDatasetInput{
		FileName: fh.Filename,
		Content:  content,
	})
	if err != nil {
		return h.writeError(c, err)
	}

	h.logger.WithFields(logrus.Fields{
		"dataset_id": d.ID,
		"file_name":  d.FileName,
		"rows":       d.Table.RowCount(),
	}).Info("dataset uploaded")

	return c.Status(http.StatusCreated).JSON(toResponse(d, nil))
}

// GetDataset godoc
// @Summary Get a dataset
// @Description Returns dataset metadata and a preview of the first rows
// @Tags Datasets
// @Produce json
// @Param id path string true "Dataset ID"
// @Success 200 {object} DatasetResponse
// @Failure 404 {object} ErrorResponse
// @Router /datasets/{id} [get]
func (h *DatasetHandler) GetDataset(c *fiber.Ctx) error {
	view, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toResponse(view.Dataset, view.Preview))
}

// DeleteDataset godoc
// @Summary Delete a dataset
// @Description Ends the session for a dataset and drops it from memory
// @Tags Datasets
// @Param id path string true "Dataset ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /datasets/{id} [delete]
func (h *DatasetHandler) DeleteDataset(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *DatasetHandler) writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidDataset):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_dataset",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrDatasetTooLarge):
		return c.Status(http.StatusRequestEntityTooLarge).JSON(ErrorResponse{
			Error:   "dataset_too_large",
			Message: err.Error(),
		})
	case errors.Is(err, ports.ErrDatasetNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error: "dataset_not_found",
		})
	case errors.Is(err, ports.ErrStoreFull):
		return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
			Error:   "store_full",
			Message: err.Error(),
		})
	default:
		h.logger.WithError(err).Error("dataset request failed")
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

func toResponse(d *domain.Dataset, preview [][]string) DatasetResponse {
	return DatasetResponse{
		ID:         d.ID,
		FileName:   d.FileName,
		Format:     d.Format,
		Columns:    d.Table.Header,
		RowCount:   d.Table.RowCount(),
		SizeBytes:  d.SizeBytes,
		UploadedAt: d.UploadedAt,
		Preview:    preview,
	}
}
