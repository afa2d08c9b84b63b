package cfd

import (
	"bytes"
	"encoding/csv"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ydrgzm/taiga-cfd-bot/internal/domain"
)

func sampleSeries() domain.Series {
	return domain.Series{
		{
			Date:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			Counts: map[string]int{"New": 2},
			Total:  2,
		},
		{
			Date:   time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
			Counts: map[string]int{"New": 1, "Done": 2},
			Total:  3,
		},
	}
}

func TestWriteSeries(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSeries(&buf, sampleSeries()))

	got := buf.String()
	want := "date,total,Done,New\n" +
		"2025-01-01,2,0,2\n" +
		"2025-01-02,3,2,1\n"
	assert.Equal(t, want, got)
}

func TestWriteSeriesEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSeries(&buf, nil))
	assert.Equal(t, "date,total\n", buf.String())
}

func TestWriteSeriesDeterministic(t *testing.T) {
	series := sampleSeries()

	var first, second bytes.Buffer
	require.NoError(t, WriteSeries(&first, series))
	require.NoError(t, WriteSeries(&second, series))

	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestWriteSeriesRoundTrip(t *testing.T) {
	series := sampleSeries()

	var buf bytes.Buffer
	require.NoError(t, WriteSeries(&buf, series))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(series)+1)

	header := records[0]
	for i, snapshot := range series {
		row := records[i+1]
		assert.Equal(t, snapshot.Date.Format("2006-01-02"), row[0])

		total, err := strconv.Atoi(row[1])
		require.NoError(t, err)
		assert.Equal(t, snapshot.Total, total)

		counts := make(map[string]int)
		for col := 2; col < len(header); col++ {
			n, err := strconv.Atoi(row[col])
			require.NoError(t, err)
			if n > 0 {
				counts[header[col]] = n
			}
		}
		assert.Equal(t, snapshot.Counts, counts)
	}
}

func TestSaveSeriesFailurePropagates(t *testing.T) {
	err := SaveSeries("/nonexistent-dir/cfd.csv", sampleSeries())
	assert.Error(t, err)
}

func TestSaveSeries(t *testing.T) {
	path := t.TempDir() + "/cfd.csv"
	require.NoError(t, SaveSeries(path, sampleSeries()))

	var buf bytes.Buffer
	require.NoError(t, WriteSeries(&buf, sampleSeries()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, buf.String(), string(data))
}
