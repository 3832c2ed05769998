package domain

import "time"

// Required columns of an uploaded post table.
const (
	ColPlatform      = "Platform"
	ColPostID        = "PostID"
	ColPostType      = "PostType"
	ColPostTimestamp = "PostTimestamp"
	ColLikes         = "Likes"
	ColComments      = "Comments"
	ColShares        = "Shares"
	ColImpressions   = "Impressions"
	ColReach         = "Reach"
)

var RequiredColumns = []string{
	ColPlatform,
	ColPostID,
	ColPostType,
	ColPostTimestamp,
	ColLikes,
	ColComments,
	ColShares,
	ColImpressions,
	ColReach,
}

// Post is one row of the post table with its derived calendar fields.
type Post struct {
	Platform      string
	PostID        string
	PostType      string
	PostTimestamp time.Time

	Likes       int64
	Comments    int64
	Shares      int64
	Impressions int64
	Reach       int64

	Year  int
	Month string // full month name, e.g. "January"
	Week  int    // ISO-8601 week of year
}

// Engagement is Likes + Comments + Shares.
func (p Post) Engagement() int64 {
	return p.Likes + p.Comments + p.Shares
}
