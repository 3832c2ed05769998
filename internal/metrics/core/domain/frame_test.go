package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrame_AppendAndLen(t *testing.T) {
	f := NewFrame("a", "b")
	assert.Equal(t, 0, f.Len())
	assert.NotNil(t, f.Data["a"])

	f.Append("x", 1)
	f.Append("y", 2)

	assert.Equal(t, 2, f.Len())
	assert.Equal(t, []any{"x", "y"}, f.Data["a"])
	assert.Equal(t, []any{1, 2}, f.Data["b"])
}

func TestFrame_AppendWrongArity(t *testing.T) {
	f := NewFrame("a", "b")
	assert.Panics(t, func() { f.Append("only-one") })
}

func TestMelt(t *testing.T) {
	perf := PlatformPerformanceFrame([]PlatformPerformance{
		{Platform: "LinkedIn", Likes: 15, Comments: 3, Shares: 1},
		{Platform: "TikTok", Likes: 7, Comments: 0, Shares: 2},
	})

	long := Melt(perf, []string{"Platform"}, EngagementMetrics, "Metric", "Count")

	assert.Equal(t, []string{"Platform", "Metric", "Count"}, long.Columns)
	assert.Equal(t, 6, long.Len())
	assert.Equal(t, []any{"LinkedIn", "TikTok", "LinkedIn", "TikTok", "LinkedIn", "TikTok"}, long.Data["Platform"])
	assert.Equal(t, []any{"Likes", "Likes", "Comments", "Comments", "Shares", "Shares"}, long.Data["Metric"])
	assert.Equal(t, []any{int64(15), int64(7), int64(3), int64(0), int64(1), int64(2)}, long.Data["Count"])
}

func TestMelt_Empty(t *testing.T) {
	long := Melt(PostTypePerformanceFrame(nil), []string{"PostType"}, EngagementMetrics, "Metric", "Average")
	assert.Equal(t, 0, long.Len())
	assert.Equal(t, []any{}, long.Data["Average"])
}

func TestKPIFrame(t *testing.T) {
	f := KPIFrame(KPITotals{Likes: 15, Comments: 3, Shares: 1})
	assert.Equal(t, []any{"Likes", "Comments", "Shares"}, f.Data["Metric"])
	assert.Equal(t, []any{int64(15), int64(3), int64(1)}, f.Data["Total"])
}
