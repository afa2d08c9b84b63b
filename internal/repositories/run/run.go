package run

import (
	"context"
	"errors"
	"time"

	"github.com/ydrgzm/taiga-cfd-bot/internal/domain"
)

var ErrNotFound = errors.New("run not found")
var ErrCannotCreate = errors.New("error create run")

//go:generate go run go.uber.org/mock/mockgen -source=run.go -destination=mocks/mock.go

type Repository interface {
	Create(ctx context.Context, run domain.CFDRun) (int, error)
	GetLatestBySlug(ctx context.Context, slug string) (*domain.CFDRun, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.CFDRun, error)
	CleanupOldRuns(ctx context.Context, olderThan time.Duration) (int64, error)
}
