package run

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ydrgzm/taiga-cfd-bot/internal/domain"
	"github.com/ydrgzm/taiga-cfd-bot/internal/repositories"
)

// DB is the subset of pgxpool.Pool the repository uses; pgxmock satisfies it
// in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Pgx struct {
	pg DB
}

func NewPgx(pg *pgxpool.Pool) *Pgx {
	return &Pgx{
		pg: pg,
	}
}

var _ Repository = (*Pgx)(nil)

var runColumns = []string{
	"id", "project_slug", "granularity", "window_start", "window_end",
	"csv_path", "buckets", "total_start", "total_end", "created_at",
}

func (p *Pgx) Create(ctx context.Context, run domain.CFDRun) (int, error) {
	query, args, err := repositories.SqBuilder.
		Insert("cfd_runs").
		Columns(
			"project_slug",
			"granularity",
			"window_start",
			"window_end",
			"csv_path",
			"buckets",
			"total_start",
			"total_end",
		).Values(
		run.ProjectSlug,
		run.Granularity,
		run.WindowStart,
		run.WindowEnd,
		run.CSVPath,
		run.Buckets,
		run.TotalStart,
		run.TotalEnd,
	).Suffix("RETURNING id").ToSql()
	if err != nil {
		return 0, repositories.ErrBadQuery
	}

	var id int
	if err := p.pg.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, errors.Join(err, ErrCannotCreate)
	}

	return id, nil
}

func (p *Pgx) GetLatestBySlug(ctx context.Context, slug string) (*domain.CFDRun, error) {
	query, args, err := repositories.SqBuilder.
		Select(runColumns...).
		From("cfd_runs").
		Where(
			sq.Eq{"project_slug": slug},
		).
		OrderBy("created_at DESC").
		Limit(1).ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	run := domain.CFDRun{}
	err = p.pg.QueryRow(ctx, query, args...).Scan(
		&run.ID,
		&run.ProjectSlug,
		&run.Granularity,
		&run.WindowStart,
		&run.WindowEnd,
		&run.CSVPath,
		&run.Buckets,
		&run.TotalStart,
		&run.TotalEnd,
		&run.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &run, nil
}

func (p *Pgx) ListRecent(ctx context.Context, limit int) ([]*domain.CFDRun, error) {
	query, args, err := repositories.SqBuilder.
		Select(runColumns...).
		From("cfd_runs").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := p.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent runs: %w", err)
	}
	defer rows.Close()

	var runs []*domain.CFDRun
	for rows.Next() {
		run := domain.CFDRun{}
		err := rows.Scan(
			&run.ID,
			&run.ProjectSlug,
			&run.Granularity,
			&run.WindowStart,
			&run.WindowEnd,
			&run.CSVPath,
			&run.Buckets,
			&run.TotalStart,
			&run.TotalEnd,
			&run.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}
		runs = append(runs, &run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating run rows: %w", err)
	}

	return runs, nil
}

func (p *Pgx) CleanupOldRuns(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)

	query, args, err := repositories.SqBuilder.
		Delete("cfd_runs").
		Where(
			sq.Lt{"created_at": cutoff},
		).ToSql()
	if err != nil {
		return 0, repositories.ErrBadQuery
	}

	tag, err := p.pg.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old runs: %w", err)
	}

	return tag.RowsAffected(), nil
}
