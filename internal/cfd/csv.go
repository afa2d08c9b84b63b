package cfd

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/ydrgzm/taiga-cfd-bot/internal/domain"
)

const dateLayout = "2006-01-02"

// WriteSeries serializes a series as CSV with header
// date,total,<status names sorted lexicographically>. The column set is the
// union of statuses over the whole series, so every row is structurally
// uniform; missing statuses are written as 0. Output is deterministic for
// identical input.
func WriteSeries(w io.Writer, series domain.Series) error {
	statusSet := make(map[string]struct{})
	for _, snapshot := range series {
		for name := range snapshot.Counts {
			statusSet[name] = struct{}{}
		}
	}

	statuses := make([]string, 0, len(statusSet))
	for name := range statusSet {
		statuses = append(statuses, name)
	}
	sort.Strings(statuses)

	cw := csv.NewWriter(w)

	header := append([]string{"date", "total"}, statuses...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	row := make([]string, len(header))
	for _, snapshot := range series {
		row[0] = snapshot.Date.UTC().Format(dateLayout)
		row[1] = strconv.Itoa(snapshot.Total)
		for i, name := range statuses {
			row[i+2] = strconv.Itoa(snapshot.Counts[name])
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

// SaveSeries writes the series to path, propagating any I/O failure.
func SaveSeries(path string, series domain.Series) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := WriteSeries(f, series); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
