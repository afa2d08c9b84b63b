package snapshot

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ydrgzm/taiga-cfd-bot/internal/domain"
	"github.com/ydrgzm/taiga-cfd-bot/pkg/logger"
)

type PgxRepository struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

func NewPgxRepository(pool *pgxpool.Pool, logger logger.Logger) *PgxRepository {
	return &PgxRepository{
		pool:   pool,
		logger: logger,
	}
}

var _ Repository = (*PgxRepository)(nil)

// CreateBatch stores every bucket of a series in one round trip. Counts are
// persisted as jsonb keyed by status name.
func (r *PgxRepository) CreateBatch(ctx context.Context, runID int, series domain.Series) error {
	if len(series) == 0 {
		return nil
	}

	query := `
		INSERT INTO cfd_snapshots (run_id, bucket_date, total, counts)
		VALUES ($1, $2, $3, $4)
	`

	batch := &pgx.Batch{}
	for _, snapshot := range series {
		batch.Queue(query, runID, snapshot.Date, snapshot.Total, snapshot.Counts)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range series {
		if _, err := results.Exec(); err != nil {
			return errors.Join(fmt.Errorf("failed to insert snapshot batch for run %d: %w", runID, err), ErrCannotCreate)
		}
	}

	r.logger.Info("Persisted snapshot series", "run_id", runID, "buckets", len(series))
	return nil
}

// GetByRunID reconstructs the ordered series of one run.
func (r *PgxRepository) GetByRunID(ctx context.Context, runID int) (domain.Series, error) {
	query := `
		SELECT bucket_date, total, counts
		FROM cfd_snapshots
		WHERE run_id = $1
		ORDER BY bucket_date ASC
	`

	rows, err := r.pool.Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots for run %d: %w", runID, err)
	}
	defer rows.Close()

	var series domain.Series
	for rows.Next() {
		var snapshot domain.BucketSnapshot
		if err := rows.Scan(&snapshot.Date, &snapshot.Total, &snapshot.Counts); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		series = append(series, snapshot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating snapshot rows: %w", err)
	}

	if len(series) == 0 {
		return nil, ErrNotFound
	}

	return series, nil
}
