package fiber

import "time"

// DatasetResponse describes a stored dataset
// @Description Uploaded dataset metadata with a preview of the first rows
type DatasetResponse struct {
	ID         string     `json:"id" example:"0b6f6f7e-5d0c-4f43-9a53-4c1f2b9a0c11"`
	FileName   string     `json:"file_name" example:"social.csv"`
	Format     string     `json:"format" example:"csv"`
	Columns    []string   `json:"columns"`
	RowCount   int        `json:"row_count" example:"120"`
	SizeBytes  int64      `json:"size_bytes" example:"8192"`
	UploadedAt time.Time  `json:"uploaded_at"`
	Preview    [][]string `json:"preview,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_dataset"`
	Message string `json:"message,omitempty" example:"file is empty"`
}
