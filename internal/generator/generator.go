package generator

import (
	"context"

	"github.com/ydrgzm/taiga-cfd-bot/internal/cfd"
	"github.com/ydrgzm/taiga-cfd-bot/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=generator.go -destination=mocks/mock.go

// GenerateOptions carries everything one run needs. The project slug travels
// with the request rather than living in process-wide state, so concurrent
// runs against different projects cannot interfere.
type GenerateOptions struct {
	ProjectSlug string
	Window      domain.DateWindow
	Granularity cfd.Granularity
}

type Client interface {
	Generate(ctx context.Context, opts GenerateOptions) (*domain.CFDRun, error)
	ScheduleGeneration(ctx context.Context) error
	ScheduleCleanup(ctx context.Context) error
}
