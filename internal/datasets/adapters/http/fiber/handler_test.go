package fiber_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	httpadapter "social-insights-service/internal/datasets/adapters/http/fiber"
	"social-insights-service/internal/datasets/core/domain"
	"social-insights-service/internal/datasets/core/ports"
	"social-insights-service/internal/datasets/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Fake usecase implementing the interface that handler depends on.
type fakeDatasetUseCase struct {
	UploadFn func(ctx context.Context, in usecase.UploadDatasetInput) (*domain.Dataset, error)
	GetFn    func(ctx context.Context, id string) (*usecase.DatasetView, error)
	DeleteFn func(ctx context.Context, id string) error

	lastUpload usecase.UploadDatasetInput
	called     bool
}

func (f *fakeDatasetUseCase) Upload(ctx context.Context, in usecase.UploadDatasetInput) (*domain.Dataset, error) {
	f.called = true
	f.lastUpload = in
	if f.UploadFn != nil {
		return f.UploadFn(ctx, in)
	}
	return nil, nil
}

func (f *fakeDatasetUseCase) Get(ctx context.Context, id string) (*usecase.DatasetView, error) {
	f.called = true
	if f.GetFn != nil {
		return f.GetFn(ctx, id)
	}
	return nil, ports.ErrDatasetNotFound
}

func (f *fakeDatasetUseCase) Delete(ctx context.Context, id string) error {
	f.called = true
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

func setupApp(t *testing.T, uc httpadapter.DatasetUseCase) *fiber.App {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := fiber.New()
	h := httpadapter.NewDatasetHandler(uc, logger)
	app.Post("/datasets", h.UploadDataset)
	app.Get("/datasets/:id", h.GetDataset)
	app.Delete("/datasets/:id", h.DeleteDataset)
	return app
}

func multipartRequest(t *testing.T, field, fileName string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(field, fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/datasets", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

// ------------------------------------------------------------
// UPLOAD
// ------------------------------------------------------------

func TestUploadDataset_Success(t *testing.T) {
	uc := &fakeDatasetUseCase{
		UploadFn: func(ctx context.Context, in usecase.UploadDatasetInput) (*domain.Dataset, error) {
			return &domain.Dataset{
				ID:       "ds-1",
				FileName: in.FileName,
				Format:   "csv",
				Table: domain.Table{
					Header: []string{"Platform", "Likes"},
					Rows:   [][]string{{"LinkedIn", "10"}},
				},
			}, nil
		},
	}
	app := setupApp(t, uc)

	resp, err := app.Test(multipartRequest(t, "file", "social.csv", []byte("Platform,Likes\nLinkedIn,10\n")))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.StatusCode)
	}

	var body httpadapter.DatasetResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.ID != "ds-1" || body.RowCount != 1 || len(body.Columns) != 2 {
		t.Fatalf("unexpected response: %+v", body)
	}
	if uc.lastUpload.FileName != "social.csv" {
		t.Fatalf("expected file name social.csv, got %s", uc.lastUpload.FileName)
	}
	if string(uc.lastUpload.Content) != "Platform,Likes\nLinkedIn,10\n" {
		t.Fatalf("unexpected content forwarded: %q", uc.lastUpload.Content)
	}
}

func TestUploadDataset_MissingFile(t *testing.T) {
	uc := &fakeDatasetUseCase{}
	app := setupApp(t, uc)

	resp, err := app.Test(multipartRequest(t, "other", "social.csv", []byte("x")))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
	if uc.called {
		t.Fatalf("usecase must not be called without a file")
	}
}

func TestUploadDataset_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid", err: usecase.ErrInvalidDataset, want: http.StatusBadRequest},
		{name: "too large", err: usecase.ErrDatasetTooLarge, want: http.StatusRequestEntityTooLarge},
		{name: "store full", err: ports.ErrStoreFull, want: http.StatusServiceUnavailable},
		{name: "unexpected", err: io.ErrUnexpectedEOF, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeDatasetUseCase{
				UploadFn: func(ctx context.Context, in usecase.UploadDatasetInput) (*domain.Dataset, error) {
					return nil, tt.err
				},
			}
			app := setupApp(t, uc)

			resp, err := app.Test(multipartRequest(t, "file", "social.csv", []byte("x")))
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
// GET / DELETE
// ------------------------------------------------------------

func TestGetDataset_Preview(t *testing.T) {
	uc := &fakeDatasetUseCase{
		GetFn: func(ctx context.Context, id string) (*usecase.DatasetView, error) {
			if id != "ds-1" {
				t.Fatalf("expected id=ds-1, got %s", id)
			}
			return &usecase.DatasetView{
				Dataset: &domain.Dataset{ID: id, Table: domain.Table{Header: []string{"Platform"}, Rows: [][]string{{"a"}, {"b"}}}},
				Preview: [][]string{{"a"}},
			}, nil
		},
	}
	app := setupApp(t, uc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/datasets/ds-1", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var body httpadapter.DatasetResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.RowCount != 2 || len(body.Preview) != 1 {
		t.Fatalf("unexpected response: %+v", body)
	}
}

func TestGetDataset_NotFound(t *testing.T) {
	app := setupApp(t, &fakeDatasetUseCase{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/datasets/missing", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.StatusCode)
	}
}

func TestDeleteDataset(t *testing.T) {
	var deleted string
	uc := &fakeDatasetUseCase{
		DeleteFn: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	app := setupApp(t, uc)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/datasets/ds-9", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.StatusCode)
	}
	if deleted != "ds-9" {
		t.Fatalf("expected ds-9 to be deleted, got %q", deleted)
	}
}
