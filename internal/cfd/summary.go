package cfd

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ydrgzm/taiga-cfd-bot/internal/domain"
	"github.com/ydrgzm/taiga-cfd-bot/pkg/formatter"
)

// StatusShare is one status slice of the latest snapshot's distribution.
type StatusShare struct {
	Name    string
	Count   int
	Percent string
}

// Summary holds the human-readable aggregates derived from a series.
type Summary struct {
	StartDate    time.Time
	EndDate      time.Time
	Points       int
	TotalStart   int
	TotalEnd     int
	Growth       int
	Distribution []StatusShare
}

// Summarize derives aggregate statistics from a series. An empty series
// yields the zero Summary.
func Summarize(series domain.Series) Summary {
	if len(series) == 0 {
		return Summary{}
	}

	first := series[0]
	last := series[len(series)-1]

	names := make([]string, 0, len(last.Counts))
	for name := range last.Counts {
		names = append(names, name)
	}
	sort.Strings(names)

	distribution := make([]StatusShare, 0, len(names))
	for _, name := range names {
		distribution = append(distribution, StatusShare{
			Name:    name,
			Count:   last.Counts[name],
			Percent: formatter.FormatPercent(last.Counts[name], last.Total),
		})
	}

	return Summary{
		StartDate:    first.Date,
		EndDate:      last.Date,
		Points:       len(series),
		TotalStart:   first.Total,
		TotalEnd:     last.Total,
		Growth:       last.Total - first.Total,
		Distribution: distribution,
	}
}

// Text renders the summary as plain text for logs and terminal output.
func (s Summary) Text() string {
	if s.Points == 0 {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "CFD Summary\n")
	fmt.Fprintf(&sb, "Date range: %s to %s\n", s.StartDate.UTC().Format(dateLayout), s.EndDate.UTC().Format(dateLayout))
	fmt.Fprintf(&sb, "Data points: %d\n", s.Points)
	fmt.Fprintf(&sb, "Stories: %s -> %s (growth %+d)\n",
		formatter.FormatNumber(s.TotalStart), formatter.FormatNumber(s.TotalEnd), s.Growth)
	if len(s.Distribution) > 0 {
		sb.WriteString("Current status distribution:\n")
		for _, share := range s.Distribution {
			fmt.Fprintf(&sb, "  %s: %d (%s)\n", share.Name, share.Count, share.Percent)
		}
	}
	return sb.String()
}

// MarkdownV2 renders the summary for Telegram delivery.
func (s Summary) MarkdownV2() string {
	if s.Points == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("*CFD Summary*\n")
	fmt.Fprintf(&sb, "Range: %s \\- %s\n",
		formatter.EscapeMarkdownV2(s.StartDate.UTC().Format(dateLayout)),
		formatter.EscapeMarkdownV2(s.EndDate.UTC().Format(dateLayout)))
	fmt.Fprintf(&sb, "Stories: %s → %s \\(growth %s\\)\n",
		formatter.EscapeMarkdownV2(formatter.FormatNumber(s.TotalStart)),
		formatter.EscapeMarkdownV2(formatter.FormatNumber(s.TotalEnd)),
		formatter.EscapeMarkdownV2(fmt.Sprintf("%+d", s.Growth)))
	for _, share := range s.Distribution {
		fmt.Fprintf(&sb, "• %s: %d \\(%s\\)\n",
			formatter.EscapeMarkdownV2(share.Name),
			share.Count,
			formatter.EscapeMarkdownV2(share.Percent))
	}
	return sb.String()
}
