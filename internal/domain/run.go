package domain

import "time"

// CFDRun records one completed generation run and where its CSV landed.
type CFDRun struct {
	ID          int
	ProjectSlug string
	Granularity string
	WindowStart time.Time
	WindowEnd   time.Time
	CSVPath     string
	Buckets     int
	TotalStart  int
	TotalEnd    int
	CreatedAt   time.Time
}
