package domain

import "time"

type KPITotals struct {
	Likes    int64
	Comments int64
	Shares   int64
}

type PlatformEngagement struct {
	Platform        string
	TotalEngagement int64
}

// MonthlyTrend is one (Year, Month, Platform) bucket.
type MonthlyTrend struct {
	Year            int
	Month           string
	MonthNumber     time.Month
	Platform        string
	Likes           int64
	Comments        int64
	Shares          int64
	TotalEngagement int64
}

type PlatformPerformance struct {
	Platform string
	Likes    int64
	Comments int64
	Shares   int64
}

// PostTypePerformance holds per-post-type means.
type PostTypePerformance struct {
	PostType  string
	PostCount int
	Likes     float64
	Comments  float64
	Shares    float64
}

// FrequencyEngagement joins post counts with mean metrics per (Platform, PostType).
type FrequencyEngagement struct {
	Platform        string
	PostType        string
	PostCount       int
	Likes           float64
	Comments        float64
	Shares          float64
	TotalEngagement float64
}

// Selection is the resolved filter applied to a dashboard.
type Selection struct {
	Platforms []string
	PostTypes []string
}

type Dashboard struct {
	DatasetID string

	// Distinct values present in the unfiltered table, sorted.
	Options Selection
	// Values actually used for filtering.
	Selection Selection

	TotalRows    int
	FilteredRows int

	KPIs                KPITotals
	PlatformEngagement  []PlatformEngagement
	MonthlyTrends       []MonthlyTrend
	PlatformPerformance []PlatformPerformance
	PostTypePerformance []PostTypePerformance
	FrequencyEngagement []FrequencyEngagement

	// Non-fatal filter problems, e.g. an empty selection.
	Warnings []string
}
