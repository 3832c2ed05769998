package chart

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sort"
	"time"

	"social-insights-service/internal/metrics/core/domain"
	"social-insights-service/internal/metrics/core/ports"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	PlatformShare       = "platform-share"
	MonthlyTrend        = "monthly-trend"
	PlatformPerformance = "platform-performance"
	PostTypePerformance = "post-type-performance"
	FrequencyEngagement = "frequency-engagement"
)

type Renderer struct {
	width  int
	height int
}

func NewRenderer(width, height int) *Renderer {
	if width <= 0 {
		width = 1024
	}
	if height <= 0 {
		height = 512
	}
	return &Renderer{width: width, height: height}
}

var _ ports.ChartRendererPort = (*Renderer)(nil)

func (r *Renderer) Charts() []string {
	return []string{PlatformShare, MonthlyTrend, PlatformPerformance, PostTypePerformance, FrequencyEngagement}
}

func (r *Renderer) Render(name string, dash *domain.Dashboard) ([]byte, error) {
	switch name {
	case PlatformShare:
		return r.platformShare(dash.PlatformEngagement)
	case MonthlyTrend:
		return r.monthlyTrend(dash.MonthlyTrends)
	case PlatformPerformance:
		return r.platformPerformance(dash.PlatformPerformance)
	case PostTypePerformance:
		return r.postTypePerformance(dash.PostTypePerformance)
	case FrequencyEngagement:
		return r.frequencyEngagement(dash.FrequencyEngagement)
	default:
		return nil, fmt.Errorf("%w: %q", ports.ErrUnknownChart, name)
	}
}

func (r *Renderer) platformShare(rows []domain.PlatformEngagement) ([]byte, error) {
	values := make([]gochart.Value, 0, len(rows))
	for _, row := range rows {
		// zero slices make the pie renderer fail
		if row.TotalEngagement <= 0 {
			continue
		}
		values = append(values, gochart.Value{Label: row.Platform, Value: float64(row.TotalEngagement)})
	}
	if len(values) == 0 {
		return nil, ports.ErrNothingToRender
	}

	pie := gochart.PieChart{
		Title:  "Engagement Share by Platform",
		Width:  r.height,
		Height: r.height,
		Values: values,
	}
	return render(pie.Render)
}

func (r *Renderer) monthlyTrend(rows []domain.MonthlyTrend) ([]byte, error) {
	if len(rows) == 0 {
		return nil, ports.ErrNothingToRender
	}

	type bucket struct {
		year  int
		month time.Month
	}
	index := map[bucket]int{}
	var buckets []bucket
	for _, row := range rows {
		b := bucket{year: row.Year, month: row.MonthNumber}
		if _, ok := index[b]; !ok {
			index[b] = len(buckets)
			buckets = append(buckets, b)
		}
	}

	ticks := make([]gochart.Tick, 0, len(buckets))
	for i, b := range buckets {
		ticks = append(ticks, gochart.Tick{Value: float64(i), Label: fmt.Sprintf("%s %d", b.month.String()[:3], b.year)})
	}

	byPlatform := map[string]*gochart.ContinuousSeries{}
	var maxY float64
	for _, row := range rows {
		s, ok := byPlatform[row.Platform]
		if !ok {
			s = &gochart.ContinuousSeries{Name: row.Platform}
			byPlatform[row.Platform] = s
		}
		y := float64(row.TotalEngagement)
		s.XValues = append(s.XValues, float64(index[bucket{year: row.Year, month: row.MonthNumber}]))
		s.YValues = append(s.YValues, y)
		maxY = math.Max(maxY, y)
	}

	series := make([]gochart.Series, 0, len(byPlatform))
	for i, platform := range sortedNames(byPlatform) {
		s := byPlatform[platform]
		color := gochart.GetDefaultColor(i)
		s.Style = gochart.Style{StrokeColor: color, StrokeWidth: 2, DotColor: color, DotWidth: 4}
		series = append(series, *s)
	}

	graph := gochart.Chart{
		Title:  "Monthly Engagement Trends by Platform",
		Width:  r.width,
		Height: r.height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: gochart.XAxis{
			Name:  "Month",
			Ticks: ticks,
			// explicit ranges avoid a zero delta with a single month or value
			Range: &gochart.ContinuousRange{Min: -0.5, Max: float64(len(buckets)) - 0.5},
		},
		YAxis: gochart.YAxis{
			Name:  "Total engagement",
			Range: &gochart.ContinuousRange{Min: 0, Max: upper(maxY)},
		},
		Series: series,
	}
	graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}

	return render(graph.Render)
}

func (r *Renderer) platformPerformance(rows []domain.PlatformPerformance) ([]byte, error) {
	bars := make([]gochart.StackedBar, 0, len(rows))
	var total int64
	for _, row := range rows {
		sum := row.Likes + row.Comments + row.Shares
		if sum == 0 {
			continue
		}
		total += sum
		bars = append(bars, gochart.StackedBar{
			Name:   row.Platform,
			Values: metricValues(float64(row.Likes), float64(row.Comments), float64(row.Shares)),
		})
	}
	if total == 0 {
		return nil, ports.ErrNothingToRender
	}
	return r.stacked("Platform Performance by Engagement Metrics", bars)
}

func (r *Renderer) postTypePerformance(rows []domain.PostTypePerformance) ([]byte, error) {
	bars := make([]gochart.StackedBar, 0, len(rows))
	var total float64
	for _, row := range rows {
		sum := row.Likes + row.Comments + row.Shares
		if sum == 0 {
			continue
		}
		total += sum
		bars = append(bars, gochart.StackedBar{
			Name:   row.PostType,
			Values: metricValues(row.Likes, row.Comments, row.Shares),
		})
	}
	if total == 0 {
		return nil, ports.ErrNothingToRender
	}
	return r.stacked("Average Engagement by Post Type", bars)
}

func (r *Renderer) stacked(title string, bars []gochart.StackedBar) ([]byte, error) {
	sbc := gochart.StackedBarChart{
		Title:  title,
		Width:  r.width,
		Height: r.height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40},
		},
		Bars: bars,
	}
	return render(sbc.Render)
}

func (r *Renderer) frequencyEngagement(rows []domain.FrequencyEngagement) ([]byte, error) {
	if len(rows) == 0 {
		return nil, ports.ErrNothingToRender
	}

	byPlatform := map[string]*gochart.ContinuousSeries{}
	var maxX, maxY float64
	for _, row := range rows {
		s, ok := byPlatform[row.Platform]
		if !ok {
			s = &gochart.ContinuousSeries{Name: row.Platform}
			byPlatform[row.Platform] = s
		}
		x := float64(row.PostCount)
		s.XValues = append(s.XValues, x)
		s.YValues = append(s.YValues, row.TotalEngagement)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, row.TotalEngagement)
	}

	series := make([]gochart.Series, 0, len(byPlatform))
	for i, platform := range sortedNames(byPlatform) {
		s := byPlatform[platform]
		s.Style = pointStyle(gochart.GetDefaultColor(i))
		series = append(series, *s)
	}

	graph := gochart.Chart{
		Title:  "Post Frequency vs Total Engagement",
		Width:  r.width,
		Height: r.height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: gochart.XAxis{
			Name:  "Post count",
			Range: &gochart.ContinuousRange{Min: 0, Max: maxX + 1},
		},
		YAxis: gochart.YAxis{
			Name:  "Mean total engagement",
			Range: &gochart.ContinuousRange{Min: 0, Max: upper(maxY)},
		},
		Series: series,
	}
	graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}

	return render(graph.Render)
}

// pointStyle renders points only, with no connecting line.
func pointStyle(col drawing.Color) gochart.Style {
	return gochart.Style{
		StrokeColor: drawing.ColorTransparent,
		DotWidth:    6,
		DotColor:    col,
	}
}

var metricColors = []drawing.Color{
	drawing.ColorFromHex("1f77b4"),
	drawing.ColorFromHex("ff7f0e"),
	drawing.ColorFromHex("2ca02c"),
}

func metricValues(likes, comments, shares float64) []gochart.Value {
	values := []float64{likes, comments, shares}
	out := make([]gochart.Value, 0, len(values))
	for i, v := range values {
		out = append(out, gochart.Value{
			Label: domain.EngagementMetrics[i],
			Value: v,
			Style: gochart.Style{FillColor: metricColors[i], StrokeColor: metricColors[i]},
		})
	}
	return out
}

func upper(maxY float64) float64 {
	if maxY <= 0 {
		return 1
	}
	return maxY * 1.1
}

func sortedNames(m map[string]*gochart.ContinuousSeries) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func render(fn func(gochart.RendererProvider, io.Writer) error) ([]byte, error) {
	var buf bytes.Buffer
	if err := fn(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}
