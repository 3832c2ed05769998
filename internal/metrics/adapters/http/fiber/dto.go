package fiber

import "social-insights-service/internal/metrics/core/domain"

type SelectionResponse struct {
	Platforms []string `json:"platforms"`
	PostTypes []string `json:"post_types"`
}

type KPIResponse struct {
	Likes    int64 `json:"likes" example:"1520"`
	Comments int64 `json:"comments" example:"310"`
	Shares   int64 `json:"shares" example:"95"`
}

// DashboardResponse carries every aggregate as a column-oriented frame. The
// *_long frames are the melted (id, Metric, Value) rows behind the grouped
// bar charts.
type DashboardResponse struct {
	DatasetID    string            `json:"dataset_id"`
	Options      SelectionResponse `json:"options"`
	Selection    SelectionResponse `json:"selection"`
	TotalRows    int               `json:"total_rows"`
	FilteredRows int               `json:"filtered_rows"`
	KPIs         KPIResponse       `json:"kpis"`

	KPIFrame                domain.Frame `json:"kpi_frame"`
	PlatformEngagement      domain.Frame `json:"platform_engagement"`
	MonthlyTrends           domain.Frame `json:"monthly_trends"`
	PlatformPerformance     domain.Frame `json:"platform_performance"`
	PlatformPerformanceLong domain.Frame `json:"platform_performance_long"`
	PostTypePerformance     domain.Frame `json:"post_type_performance"`
	PostTypePerformanceLong domain.Frame `json:"post_type_performance_long"`
	FrequencyEngagement     domain.Frame `json:"frequency_engagement"`

	Charts   []string `json:"charts"`
	Warnings []string `json:"warnings,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_table"`
	Message string `json:"message" example:"schema error: missing required columns: Likes"`
}

// NewDashboardResponse maps a dashboard to its wire form.
func NewDashboardResponse(d *domain.Dashboard, charts []string) DashboardResponse {
	platformPerf := domain.PlatformPerformanceFrame(d.PlatformPerformance)
	postTypePerf := domain.PostTypePerformanceFrame(d.PostTypePerformance)

	return DashboardResponse{
		DatasetID:    d.DatasetID,
		Options:      SelectionResponse{Platforms: nonNil(d.Options.Platforms), PostTypes: nonNil(d.Options.PostTypes)},
		Selection:    SelectionResponse{Platforms: nonNil(d.Selection.Platforms), PostTypes: nonNil(d.Selection.PostTypes)},
		TotalRows:    d.TotalRows,
		FilteredRows: d.FilteredRows,
		KPIs:         KPIResponse{Likes: d.KPIs.Likes, Comments: d.KPIs.Comments, Shares: d.KPIs.Shares},

		KPIFrame:                domain.KPIFrame(d.KPIs),
		PlatformEngagement:      domain.PlatformEngagementFrame(d.PlatformEngagement),
		MonthlyTrends:           domain.MonthlyTrendFrame(d.MonthlyTrends),
		PlatformPerformance:     platformPerf,
		PlatformPerformanceLong: domain.Melt(platformPerf, []string{"Platform"}, domain.EngagementMetrics, "Metric", "Value"),
		PostTypePerformance:     postTypePerf,
		PostTypePerformanceLong: domain.Melt(postTypePerf, []string{"PostType"}, domain.EngagementMetrics, "Metric", "Value"),
		FrequencyEngagement:     domain.FrequencyEngagementFrame(d.FrequencyEngagement),

		Charts:   charts,
		Warnings: d.Warnings,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
