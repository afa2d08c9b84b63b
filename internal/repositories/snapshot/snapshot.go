package snapshot

import (
	"context"
	"errors"

	"github.com/ydrgzm/taiga-cfd-bot/internal/domain"
)

var ErrNotFound = errors.New("snapshots not found")
var ErrCannotCreate = errors.New("error create snapshots")

//go:generate go run go.uber.org/mock/mockgen -source=snapshot.go -destination=mocks/mock.go

type Repository interface {
	CreateBatch(ctx context.Context, runID int, series domain.Series) error
	GetByRunID(ctx context.Context, runID int) (domain.Series, error)
}
