package domain

import (
	"errors"
	"time"
)

var ErrInvalidWindow = errors.New("window start is after window end")

// DateWindow is the half-inclusive analysis range [Start, End]. Start == End
// is a valid single-bucket window.
type DateWindow struct {
	Start time.Time
	End   time.Time
}

func (w DateWindow) Validate() error {
	if w.Start.After(w.End) {
		return ErrInvalidWindow
	}
	return nil
}

// BucketSnapshot is one CFD data point: story counts per status name for
// every story that existed at Date. Counts holds only statuses with a
// positive count; Total counts all stories that existed at Date.
type BucketSnapshot struct {
	Date   time.Time
	Counts map[string]int
	Total  int
}

// Series is an ordered sequence of snapshots, ascending by date with a fixed
// stride between consecutive entries. Both the CSV writer and the summary
// depend on this ordering.
type Series []BucketSnapshot
