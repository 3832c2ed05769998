package usecase

import (
	"context"
	"errors"
	"strings"

	"social-insights-service/internal/metrics/core/domain"
	"social-insights-service/internal/metrics/core/ports"
)

var ErrInvalidDashboardQuery = errors.New("invalid dashboard query")

type GetDashboardInput struct {
	DatasetID string

	// nil selects every value present in the table; a non-nil empty slice
	// selects nothing.
	Platforms []string
	PostTypes []string
}

type GetDashboardUseCase struct {
	reader ports.DatasetReaderPort
}

func NewGetDashboardUseCase(reader ports.DatasetReaderPort) *GetDashboardUseCase {
	return &GetDashboardUseCase{reader: reader}
}

// Execute loads the dataset, parses its posts, applies the selection and
// computes every dashboard table.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, in GetDashboardInput) (*domain.Dashboard, error) {
	if strings.TrimSpace(in.DatasetID) == "" {
		return nil, ErrInvalidDashboardQuery
	}

	ds, err := uc.reader.Get(ctx, in.DatasetID)
	if err != nil {
		return nil, err
	}

	posts, err := ParsePosts(ds.Table.Header, ds.Table.Rows)
	if err != nil {
		dashboardsTotal.WithLabelValues("invalid_table").Inc()
		return nil, err
	}

	dash := BuildDashboard(posts, in.Platforms, in.PostTypes)
	dash.DatasetID = ds.ID

	dashboardsTotal.WithLabelValues("ok").Inc()
	return dash, nil
}

// BuildDashboard runs the aggregator over already parsed posts.
func BuildDashboard(posts []domain.Post, platforms, postTypes []string) *domain.Dashboard {
	dash := &domain.Dashboard{
		Options: domain.Selection{
			Platforms: DistinctPlatforms(posts),
			PostTypes: DistinctPostTypes(posts),
		},
		TotalRows: len(posts),
	}

	if platforms == nil {
		platforms = dash.Options.Platforms
	} else if len(platforms) == 0 {
		dash.Warnings = append(dash.Warnings, ErrFilter.Error()+": no platform selected")
	}
	if postTypes == nil {
		postTypes = dash.Options.PostTypes
	} else if len(postTypes) == 0 {
		dash.Warnings = append(dash.Warnings, ErrFilter.Error()+": no post type selected")
	}
	if dups := DuplicatePostIDs(posts); len(dups) > 0 {
		dash.Warnings = append(dash.Warnings, "duplicate PostID values: "+strings.Join(dups, ", "))
	}
	dash.Selection = domain.Selection{
		Platforms: append([]string{}, platforms...),
		PostTypes: append([]string{}, postTypes...),
	}

	filtered := Filter(posts, platforms, postTypes)
	dash.FilteredRows = len(filtered)

	dash.KPIs = KPIs(filtered)
	dash.PlatformEngagement = PlatformEngagementShare(filtered)
	dash.MonthlyTrends = MonthlyEngagementTrend(filtered)
	dash.PlatformPerformance = PlatformPerformanceBreakdown(filtered)
	dash.PostTypePerformance = PostTypePerformanceBreakdown(filtered)
	dash.FrequencyEngagement = FrequencyVsEngagement(filtered)

	return dash
}
