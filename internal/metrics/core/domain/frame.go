package domain

import "fmt"

// Frame is the column-oriented table handed to renderers: column names in
// display order plus, per column, the ordered values.
type Frame struct {
	Columns []string         `json:"columns"`
	Data    map[string][]any `json:"data"`
}

func NewFrame(columns ...string) Frame {
	f := Frame{
		Columns: columns,
		Data:    make(map[string][]any, len(columns)),
	}
	for _, c := range columns {
		f.Data[c] = []any{}
	}
	return f
}

// Append adds one row; values must follow Columns order.
func (f *Frame) Append(values ...any) {
	if len(values) != len(f.Columns) {
		panic(fmt.Sprintf("frame: got %d values for %d columns", len(values), len(f.Columns)))
	}
	for i, c := range f.Columns {
		f.Data[c] = append(f.Data[c], values[i])
	}
}

func (f Frame) Len() int {
	if len(f.Columns) == 0 {
		return 0
	}
	return len(f.Data[f.Columns[0]])
}

// Melt unpivots valueCols into (idCols..., varName, valueName) rows, one per
// input row and value column, in input order.
func Melt(f Frame, idCols, valueCols []string, varName, valueName string) Frame {
	cols := append(append([]string{}, idCols...), varName, valueName)
	out := NewFrame(cols...)

	for _, vc := range valueCols {
		for row := 0; row < f.Len(); row++ {
			values := make([]any, 0, len(cols))
			for _, id := range idCols {
				values = append(values, f.Data[id][row])
			}
			values = append(values, vc, f.Data[vc][row])
			out.Append(values...)
		}
	}
	return out
}

func KPIFrame(k KPITotals) Frame {
	f := NewFrame("Metric", "Total")
	f.Append("Likes", k.Likes)
	f.Append("Comments", k.Comments)
	f.Append("Shares", k.Shares)
	return f
}

func PlatformEngagementFrame(rows []PlatformEngagement) Frame {
	f := NewFrame("Platform", "TotalEngagement")
	for _, r := range rows {
		f.Append(r.Platform, r.TotalEngagement)
	}
	return f
}

func MonthlyTrendFrame(rows []MonthlyTrend) Frame {
	f := NewFrame("Year", "Month", "Platform", "Likes", "Comments", "Shares", "TotalEngagement")
	for _, r := range rows {
		f.Append(r.Year, r.Month, r.Platform, r.Likes, r.Comments, r.Shares, r.TotalEngagement)
	}
	return f
}

func PlatformPerformanceFrame(rows []PlatformPerformance) Frame {
	f := NewFrame("Platform", "Likes", "Comments", "Shares")
	for _, r := range rows {
		f.Append(r.Platform, r.Likes, r.Comments, r.Shares)
	}
	return f
}

func PostTypePerformanceFrame(rows []PostTypePerformance) Frame {
	f := NewFrame("PostType", "PostCount", "Likes", "Comments", "Shares")
	for _, r := range rows {
		f.Append(r.PostType, r.PostCount, r.Likes, r.Comments, r.Shares)
	}
	return f
}

func FrequencyEngagementFrame(rows []FrequencyEngagement) Frame {
	f := NewFrame("Platform", "PostType", "PostCount", "Likes", "Comments", "Shares", "TotalEngagement")
	for _, r := range rows {
		f.Append(r.Platform, r.PostType, r.PostCount, r.Likes, r.Comments, r.Shares, r.TotalEngagement)
	}
	return f
}

// EngagementMetrics are the value columns melted for the grouped bar charts.
var EngagementMetrics = []string{"Likes", "Comments", "Shares"}
