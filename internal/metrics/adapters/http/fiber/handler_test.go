package fiber_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	datasetports "social-insights-service/internal/datasets/core/ports"
	httpadapter "social-insights-service/internal/metrics/adapters/http/fiber"
	"social-insights-service/internal/metrics/core/domain"
	"social-insights-service/internal/metrics/core/ports"
	"social-insights-service/internal/metrics/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Fake usecase implementing the interface that handler depends on.
type fakeGetDashboardUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.GetDashboardInput) (*domain.Dashboard, error)
	lastInput usecase.GetDashboardInput
	called    bool
}

func (f *fakeGetDashboardUseCase) Execute(ctx context.Context, in usecase.GetDashboardInput) (*domain.Dashboard, error) {
	f.called = true
	f.lastInput = in
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return &domain.Dashboard{DatasetID: in.DatasetID}, nil
}

type fakeRenderer struct {
	RenderFn func(name string, dash *domain.Dashboard) ([]byte, error)
	lastName string
}

func (f *fakeRenderer) Render(name string, dash *domain.Dashboard) ([]byte, error) {
	f.lastName = name
	if f.RenderFn != nil {
		return f.RenderFn(name, dash)
	}
	return []byte("\x89PNG fake"), nil
}

func (f *fakeRenderer) Charts() []string {
	return []string{"platform-share", "monthly-trend"}
}

func setupApp(t *testing.T, uc httpadapter.GetDashboardUseCase, r ports.ChartRendererPort) *fiber.App {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := fiber.New()
	h := httpadapter.NewMetricsHandler(uc, r, logger)
	app.Get("/datasets/:id/dashboard", h.GetDashboard)
	app.Get("/datasets/:id/charts/:chart", h.GetChart)
	return app
}

// ------------------------------------------------------------
// DASHBOARD
// ------------------------------------------------------------

func TestGetDashboard_Success(t *testing.T) {
	uc := &fakeGetDashboardUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.GetDashboardInput) (*domain.Dashboard, error) {
			return &domain.Dashboard{
				DatasetID:    in.DatasetID,
				Options:      domain.Selection{Platforms: []string{"LinkedIn"}, PostTypes: []string{"video"}},
				Selection:    domain.Selection{Platforms: []string{"LinkedIn"}, PostTypes: []string{"video"}},
				TotalRows:    1,
				FilteredRows: 1,
				KPIs:         domain.KPITotals{Likes: 10, Comments: 2, Shares: 1},
				PlatformEngagement: []domain.PlatformEngagement{
					{Platform: "LinkedIn", TotalEngagement: 13},
				},
				PlatformPerformance: []domain.PlatformPerformance{
					{Platform: "LinkedIn", Likes: 10, Comments: 2, Shares: 1},
				},
			}, nil
		},
	}
	app := setupApp(t, uc, &fakeRenderer{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/datasets/ds-1/dashboard", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var body httpadapter.DashboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.DatasetID != "ds-1" || body.KPIs.Likes != 10 {
		t.Fatalf("unexpected response: %+v", body)
	}
	if body.PlatformEngagement.Len() != 1 {
		t.Fatalf("expected one platform engagement row, got %d", body.PlatformEngagement.Len())
	}
	if body.PlatformPerformanceLong.Len() != 3 {
		t.Fatalf("expected 3 melted rows, got %d", body.PlatformPerformanceLong.Len())
	}
	if len(body.Charts) != 2 {
		t.Fatalf("expected chart names, got %v", body.Charts)
	}
}

func TestGetDashboard_SelectionParsing(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		wantPlatforms []string
		wantPostTypes []string
	}{
		{name: "absent selects everything", query: "", wantPlatforms: nil, wantPostTypes: nil},
		{name: "comma separated", query: "?platforms=LinkedIn,TikTok", wantPlatforms: []string{"LinkedIn", "TikTok"}},
		{name: "repeated", query: "?post_types=video&post_types=photo", wantPostTypes: []string{"video", "photo"}},
		{name: "present but empty", query: "?platforms=", wantPlatforms: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeGetDashboardUseCase{}
			app := setupApp(t, uc, &fakeRenderer{})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/datasets/ds-1/dashboard"+tt.query, nil))
			if err != nil {
				t.Fatalf("app.Test error: %v", err)
			}
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("expected status 200, got %d", resp.StatusCode)
			}

			assertSelection(t, "platforms", uc.lastInput.Platforms, tt.wantPlatforms)
			assertSelection(t, "post_types", uc.lastInput.PostTypes, tt.wantPostTypes)
		})
	}
}

func assertSelection(t *testing.T, name string, got, want []string) {
	t.Helper()
	if (got == nil) != (want == nil) {
		t.Fatalf("%s: expected nil=%v, got %v", name, want == nil, got)
	}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Fatalf("%s: expected %v, got %v", name, want, got)
	}
}

func TestGetDashboard_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid query", err: usecase.ErrInvalidDashboardQuery, want: http.StatusBadRequest},
		{name: "schema", err: fmt.Errorf("%w: missing required columns: Likes", usecase.ErrSchema), want: http.StatusBadRequest},
		{name: "parse", err: &usecase.RowError{Row: 2, Column: "PostTimestamp", Kind: usecase.ErrParse}, want: http.StatusBadRequest},
		{name: "type", err: &usecase.RowError{Row: 1, Column: "Likes", Kind: usecase.ErrType}, want: http.StatusBadRequest},
		{name: "not found", err: datasetports.ErrDatasetNotFound, want: http.StatusNotFound},
		{name: "unexpected", err: io.ErrUnexpectedEOF, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeGetDashboardUseCase{
				ExecuteFn: func(ctx context.Context, in usecase.GetDashboardInput) (*domain.Dashboard, error) {
					return nil, tt.err
				},
			}
			app := setupApp(t, uc, &fakeRenderer{})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/datasets/ds-1/dashboard", nil))
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
// CHARTS
// ------------------------------------------------------------

func TestGetChart_Success(t *testing.T) {
	renderer := &fakeRenderer{}
	app := setupApp(t, &fakeGetDashboardUseCase{}, renderer)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/datasets/ds-1/charts/platform-share", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Fatalf("expected image/png, got %s", ct)
	}
	if renderer.lastName != "platform-share" {
		t.Fatalf("expected platform-share to be rendered, got %s", renderer.lastName)
	}
}

func TestGetChart_UnknownChart(t *testing.T) {
	uc := &fakeGetDashboardUseCase{}
	app := setupApp(t, uc, &fakeRenderer{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/datasets/ds-1/charts/histogram", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.StatusCode)
	}
	if uc.called {
		t.Fatalf("usecase must not be called for an unknown chart")
	}
}

func TestGetChart_NothingToRender(t *testing.T) {
	renderer := &fakeRenderer{
		RenderFn: func(name string, dash *domain.Dashboard) ([]byte, error) {
			return nil, ports.ErrNothingToRender
		},
	}
	app := setupApp(t, &fakeGetDashboardUseCase{}, renderer)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/datasets/ds-1/charts/monthly-trend?platforms=", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", resp.StatusCode)
	}
}
