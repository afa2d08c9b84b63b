package cfd

import (
	"github.com/ydrgzm/taiga-cfd-bot/internal/domain"
	"github.com/ydrgzm/taiga-cfd-bot/pkg/logger"
)

// Builder turns a flat story list plus a status catalog into an ordered
// series of per-bucket status-count snapshots.
type Builder struct {
	Logger logger.Logger
}

func NewBuilder(log logger.Logger) *Builder {
	return &Builder{Logger: log}
}

// Build emits one snapshot per bucket date from window.Start to window.End
// inclusive, stepping by the granularity stride.
//
// This is an approximate historical reconstruction, not a point-in-time
// replay: each story is counted under its current status for every bucket
// after its creation date, because the engine has no per-day status history.
// Earlier buckets therefore understate in-progress stages and overstate
// terminal ones. Callers relying on true historical flow need an audit-log
// replay, which this engine intentionally does not attempt.
func (b *Builder) Build(
	stories []domain.StoryRecord,
	catalog domain.StatusCatalog,
	window domain.DateWindow,
	granularity Granularity,
) domain.Series {
	stride := granularity.Stride()

	// Window validation is the caller's job; an inverted window still must
	// not loop, so it degrades to an empty series.
	if window.Start.After(window.End) {
		b.Logger.Warn("Inverted date window, emitting empty series",
			"start", window.Start, "end", window.End)
		return domain.Series{}
	}

	type counted struct {
		createdAt  int64
		statusName string
	}

	existing := make([]counted, 0, len(stories))
	for _, s := range stories {
		createdAt, err := ParseInstant(s.CreatedDate)
		if err != nil {
			b.Logger.Warn("Skipping story with bad creation date",
				"story_ref", s.Ref, "created_date", s.CreatedDate, "error", err)
			continue
		}
		existing = append(existing, counted{
			createdAt:  createdAt.Unix(),
			statusName: catalog.NameFor(s.StatusID),
		})
	}

	var series domain.Series
	for d := window.Start; !d.After(window.End); d = d.Add(stride) {
		counts := make(map[string]int)
		total := 0
		bucket := d.Unix()

		for _, s := range existing {
			if s.createdAt <= bucket {
				counts[s.statusName]++
				total++
			}
		}

		series = append(series, domain.BucketSnapshot{
			Date:   d,
			Counts: counts,
			Total:  total,
		})
	}

	return series
}
