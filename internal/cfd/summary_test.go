package cfd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ydrgzm/taiga-cfd-bot/internal/domain"
)

func TestSummarize(t *testing.T) {
	series := domain.Series{
		{Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Counts: map[string]int{"New": 1}, Total: 1},
		{Date: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), Counts: map[string]int{"New": 1}, Total: 1},
		{Date: time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC), Counts: map[string]int{"New": 3, "Done": 1}, Total: 4},
	}

	s := Summarize(series)

	assert.Equal(t, 3, s.Points)
	assert.Equal(t, 1, s.TotalStart)
	assert.Equal(t, 4, s.TotalEnd)
	assert.Equal(t, 3, s.Growth)
	assert.Equal(t, series[0].Date, s.StartDate)
	assert.Equal(t, series[2].Date, s.EndDate)

	require.Len(t, s.Distribution, 2)
	assert.Equal(t, StatusShare{Name: "Done", Count: 1, Percent: "25.0%"}, s.Distribution[0])
	assert.Equal(t, StatusShare{Name: "New", Count: 3, Percent: "75.0%"}, s.Distribution[1])

	text := s.Text()
	assert.Contains(t, text, "2025-01-01 to 2025-01-03")
	assert.Contains(t, text, "growth +3")
	assert.Contains(t, text, "New: 3 (75.0%)")
}

func TestSummarizeEmptySeries(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, Summary{}, s)
	assert.Empty(t, s.Text())
	assert.Empty(t, s.MarkdownV2())
}

func TestSummarizeZeroTotals(t *testing.T) {
	series := domain.Series{
		{Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Counts: map[string]int{}, Total: 0},
		{Date: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), Counts: map[string]int{}, Total: 0},
	}

	s := Summarize(series)

	assert.Equal(t, 2, s.Points)
	assert.Equal(t, 0, s.Growth)
	assert.Empty(t, s.Distribution)
	assert.NotEmpty(t, s.Text())
}

func TestSummarizeZeroTotalPercent(t *testing.T) {
	// A snapshot can carry counts while total is zero only through corrupt
	// input; the percentage must still not fault.
	series := domain.Series{
		{Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Counts: map[string]int{"New": 1}, Total: 0},
	}

	s := Summarize(series)
	require.Len(t, s.Distribution, 1)
	assert.Equal(t, "0.0%", s.Distribution[0].Percent)
}
