package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"social-insights-service/internal/datasets/core/domain"
	"social-insights-service/internal/datasets/core/ports"

	"github.com/google/uuid"
)

var (
	ErrInvalidDataset  = errors.New("invalid dataset")
	ErrDatasetTooLarge = errors.New("dataset exceeds upload limit")
)

type DatasetUseCase struct {
	repo        ports.DatasetRepositoryPort
	decoder     ports.TableDecoderPort
	maxBytes    int64
	previewRows int
}

func NewDatasetUseCase(repo ports.DatasetRepositoryPort, decoder ports.TableDecoderPort, maxBytes int64, previewRows int) *DatasetUseCase {
	return &DatasetUseCase{
		repo:        repo,
		decoder:     decoder,
		maxBytes:    maxBytes,
		previewRows: previewRows,
	}
}

type UploadDatasetInput struct {
	FileName string
	Content  []byte
}

type DatasetView struct {
	Dataset *domain.Dataset
	Preview [][]string
}

// Upload decodes the file, assigns it an id and keeps it for the session.
func (uc *DatasetUseCase) Upload(ctx context.Context, in UploadDatasetInput) (*domain.Dataset, error) {
	format, err := uc.validateInput(in)
	if err != nil {
		uploadsTotal.WithLabelValues(format, "rejected").Inc()
		return nil, err
	}

	table, err := uc.decoder.Decode(format, in.Content)
	if err != nil {
		uploadsTotal.WithLabelValues(format, "rejected").Inc()
		if errors.Is(err, ports.ErrMalformedTable) || errors.Is(err, ports.ErrUnsupportedFormat) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDataset, err)
		}
		return nil, err
	}

	d := &domain.Dataset{
		ID:         uuid.NewString(),
		FileName:   filepath.Base(in.FileName),
		Format:     format,
		Table:      table,
		SizeBytes:  int64(len(in.Content)),
		UploadedAt: time.Now().UTC(),
	}

	if err := uc.repo.Save(ctx, d); err != nil {
		uploadsTotal.WithLabelValues(format, "failed").Inc()
		return nil, err
	}

	uploadsTotal.WithLabelValues(format, "stored").Inc()
	uploadRows.Observe(float64(table.RowCount()))

	return d, nil
}

func (uc *DatasetUseCase) Get(ctx context.Context, id string) (*DatasetView, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidDataset
	}

	d, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return &DatasetView{
		Dataset: d,
		Preview: d.Table.Head(uc.previewRows),
	}, nil
}

func (uc *DatasetUseCase) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidDataset
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *DatasetUseCase) validateInput(in UploadDatasetInput) (string, error) {
	format := formatFromName(in.FileName)
	if format == "" {
		return "unknown", fmt.Errorf("%w: unsupported file type %q (want .csv, .txt or .json)", ErrInvalidDataset, filepath.Ext(in.FileName))
	}

	if len(in.Content) == 0 {
		return format, fmt.Errorf("%w: file is empty", ErrInvalidDataset)
	}

	if uc.maxBytes > 0 && int64(len(in.Content)) > uc.maxBytes {
		return format, ErrDatasetTooLarge
	}

	return format, nil
}

func formatFromName(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".txt":
		return "csv"
	case ".json":
		return "json"
	default:
		return ""
	}
}
