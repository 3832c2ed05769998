package usecase

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"social-insights-service/internal/metrics/core/domain"

	"github.com/araddon/dateparse"
)

var (
	ErrSchema = errors.New("schema error")
	ErrParse  = errors.New("parse error")
	ErrType   = errors.New("type error")
	// ErrFilter is never returned; it marks dashboard warnings.
	ErrFilter = errors.New("filter error")
)

// RowError locates a bad cell. It unwraps to ErrSchema, ErrParse or ErrType.
type RowError struct {
	Row    int // 1-based data row, header excluded
	Column string
	Value  string
	Kind   error
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%v: row %d, column %s: %s (value %q)", e.Kind, e.Row, e.Column, e.Reason, e.Value)
}

func (e *RowError) Unwrap() error {
	return e.Kind
}

// ParseTimestamp accepts the usual date and date-time layouts and reads
// zone-less values as UTC.
func ParseTimestamp(value string) (time.Time, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Time{}, fmt.Errorf("%w: empty timestamp", ErrParse)
	}
	t, err := dateparse.ParseIn(v, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return t.UTC(), nil
}

func MonthOf(t time.Time) string {
	return t.Month().String()
}

func WeekOf(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

// ParsePosts converts a raw table into posts. It is all or nothing: the first
// bad cell aborts with a *RowError and no posts are returned.
func ParsePosts(header []string, rows [][]string) ([]domain.Post, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}

	var missing []string
	for _, col := range domain.RequiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required columns: %s", ErrSchema, strings.Join(missing, ", "))
	}

	posts := make([]domain.Post, 0, len(rows))

	for n, row := range rows {
		line := n + 1
		cell := func(col string) string {
			i := idx[col]
			if i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		p := domain.Post{
			Platform: cell(domain.ColPlatform),
			PostID:   cell(domain.ColPostID),
			PostType: cell(domain.ColPostType),
		}

		for _, c := range []struct {
			col string
			val string
		}{
			{domain.ColPlatform, p.Platform},
			{domain.ColPostType, p.PostType},
			{domain.ColPostID, p.PostID},
		} {
			if c.val == "" {
				return nil, &RowError{Row: line, Column: c.col, Kind: ErrSchema, Reason: "value is required"}
			}
		}

		for _, m := range []struct {
			col string
			dst *int64
		}{
			{domain.ColLikes, &p.Likes},
			{domain.ColComments, &p.Comments},
			{domain.ColShares, &p.Shares},
			{domain.ColImpressions, &p.Impressions},
			{domain.ColReach, &p.Reach},
		} {
			v, err := parseCount(cell(m.col))
			if err != nil {
				return nil, &RowError{Row: line, Column: m.col, Value: cell(m.col), Kind: ErrType, Reason: err.Error()}
			}
			*m.dst = v
		}

		ts, err := ParseTimestamp(cell(domain.ColPostTimestamp))
		if err != nil {
			return nil, &RowError{Row: line, Column: domain.ColPostTimestamp, Value: cell(domain.ColPostTimestamp),
				Kind: ErrParse, Reason: "not a valid date"}
		}
		p.PostTimestamp = ts
		p.Year = ts.Year()
		p.Month = MonthOf(ts)
		p.Week = WeekOf(ts)

		posts = append(posts, p)
	}

	return posts, nil
}

// parseCount accepts non-negative integers, also when written as "12.0".
func parseCount(s string) (int64, error) {
	if s == "" {
		return 0, errors.New("value is required")
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		if v < 0 {
			return 0, errors.New("must not be negative")
		}
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int64(f)) {
		return 0, errors.New("not an integer")
	}
	if f < 0 {
		return 0, errors.New("must not be negative")
	}
	return int64(f), nil
}

// Filter keeps, in order, the posts whose Platform is in platforms and whose
// PostType is in postTypes. An empty set on either side selects nothing.
func Filter(posts []domain.Post, platforms, postTypes []string) []domain.Post {
	out := make([]domain.Post, 0, len(posts))
	if len(platforms) == 0 || len(postTypes) == 0 {
		return out
	}

	pset := toSet(platforms)
	tset := toSet(postTypes)
	for _, p := range posts {
		if _, ok := pset[p.Platform]; !ok {
			continue
		}
		if _, ok := tset[p.PostType]; !ok {
			continue
		}
		out = append(out, p)
	}
	return out
}

func KPIs(posts []domain.Post) domain.KPITotals {
	var k domain.KPITotals
	for _, p := range posts {
		k.Likes += p.Likes
		k.Comments += p.Comments
		k.Shares += p.Shares
	}
	return k
}

// PlatformEngagementShare sums engagement per platform, sorted by platform.
func PlatformEngagementShare(posts []domain.Post) []domain.PlatformEngagement {
	totals := map[string]int64{}
	for _, p := range posts {
		totals[p.Platform] += p.Engagement()
	}

	out := make([]domain.PlatformEngagement, 0, len(totals))
	for _, platform := range sortedKeys(totals) {
		out = append(out, domain.PlatformEngagement{Platform: platform, TotalEngagement: totals[platform]})
	}
	return out
}

// MonthlyEngagementTrend groups by (Year, Month, Platform) in calendar order.
func MonthlyEngagementTrend(posts []domain.Post) []domain.MonthlyTrend {
	type key struct {
		year     int
		month    time.Month
		platform string
	}
	groups := map[key]*domain.MonthlyTrend{}
	keys := []key{}

	for _, p := range posts {
		k := key{year: p.Year, month: p.PostTimestamp.Month(), platform: p.Platform}
		g, ok := groups[k]
		if !ok {
			g = &domain.MonthlyTrend{Year: k.year, Month: p.Month, MonthNumber: k.month, Platform: k.platform}
			groups[k] = g
			keys = append(keys, k)
		}
		g.Likes += p.Likes
		g.Comments += p.Comments
		g.Shares += p.Shares
	}

	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.year != b.year {
			return a.year < b.year
		}
		if a.month != b.month {
			return a.month < b.month
		}
		return a.platform < b.platform
	})

	out := make([]domain.MonthlyTrend, 0, len(keys))
	for _, k := range keys {
		g := groups[k]
		g.TotalEngagement = g.Likes + g.Comments + g.Shares
		out = append(out, *g)
	}
	return out
}

// PlatformPerformanceBreakdown sums each metric separately per platform.
func PlatformPerformanceBreakdown(posts []domain.Post) []domain.PlatformPerformance {
	groups := map[string]*domain.PlatformPerformance{}
	for _, p := range posts {
		g, ok := groups[p.Platform]
		if !ok {
			g = &domain.PlatformPerformance{Platform: p.Platform}
			groups[p.Platform] = g
		}
		g.Likes += p.Likes
		g.Comments += p.Comments
		g.Shares += p.Shares
	}

	out := make([]domain.PlatformPerformance, 0, len(groups))
	for _, platform := range sortedKeys(groups) {
		out = append(out, *groups[platform])
	}
	return out
}

// PostTypePerformanceBreakdown averages each metric per post type.
func PostTypePerformanceBreakdown(posts []domain.Post) []domain.PostTypePerformance {
	groups := map[string]*sums{}
	for _, p := range posts {
		g, ok := groups[p.PostType]
		if !ok {
			g = &sums{}
			groups[p.PostType] = g
		}
		g.add(p)
	}

	out := make([]domain.PostTypePerformance, 0, len(groups))
	for _, postType := range sortedKeys(groups) {
		g := groups[postType]
		likes, comments, shares := g.means()
		out = append(out, domain.PostTypePerformance{
			PostType:  postType,
			PostCount: g.count,
			Likes:     likes,
			Comments:  comments,
			Shares:    shares,
		})
	}
	return out
}

// FrequencyVsEngagement counts posts and averages metrics per
// (Platform, PostType); TotalEngagement is the sum of the three means.
func FrequencyVsEngagement(posts []domain.Post) []domain.FrequencyEngagement {
	type key struct {
		platform string
		postType string
	}
	groups := map[key]*sums{}
	keys := []key{}

	for _, p := range posts {
		k := key{platform: p.Platform, postType: p.PostType}
		g, ok := groups[k]
		if !ok {
			g = &sums{}
			groups[k] = g
			keys = append(keys, k)
		}
		g.add(p)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].platform != keys[j].platform {
			return keys[i].platform < keys[j].platform
		}
		return keys[i].postType < keys[j].postType
	})

	out := make([]domain.FrequencyEngagement, 0, len(keys))
	for _, k := range keys {
		g := groups[k]
		likes, comments, shares := g.means()
		out = append(out, domain.FrequencyEngagement{
			Platform:        k.platform,
			PostType:        k.postType,
			PostCount:       g.count,
			Likes:           likes,
			Comments:        comments,
			Shares:          shares,
			TotalEngagement: likes + comments + shares,
		})
	}
	return out
}

// DuplicatePostIDs returns, sorted, the PostIDs that appear on more than one
// post. Repeated ids are kept and aggregated like any other row.
func DuplicatePostIDs(posts []domain.Post) []string {
	counts := map[string]int{}
	for _, p := range posts {
		counts[p.PostID]++
	}
	dups := map[string]int{}
	for id, n := range counts {
		if n > 1 {
			dups[id] = n
		}
	}
	return sortedKeys(dups)
}

// DistinctPlatforms returns the sorted distinct Platform values.
func DistinctPlatforms(posts []domain.Post) []string {
	set := map[string]struct{}{}
	for _, p := range posts {
		set[p.Platform] = struct{}{}
	}
	return sortedKeys(set)
}

// DistinctPostTypes returns the sorted distinct PostType values.
func DistinctPostTypes(posts []domain.Post) []string {
	set := map[string]struct{}{}
	for _, p := range posts {
		set[p.PostType] = struct{}{}
	}
	return sortedKeys(set)
}

type sums struct {
	count                   int
	likes, comments, shares int64
}

func (s *sums) add(p domain.Post) {
	s.count++
	s.likes += p.Likes
	s.comments += p.Comments
	s.shares += p.Shares
}

// groups are built from present rows, so count is never zero
func (s *sums) means() (float64, float64, float64) {
	n := float64(s.count)
	return float64(s.likes) / n, float64(s.comments) / n, float64(s.shares) / n
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
