package taiga

import (
	"context"
	"time"

	"github.com/ydrgzm/taiga-cfd-bot/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=taiga.go -destination=mocks/mock.go

type Client interface {
	Login(ctx context.Context) error
	GetProjectBySlug(ctx context.Context, slug string) (*domain.Project, error)
	GetStatuses(ctx context.Context, projectID int) ([]domain.Status, error)
	GetUserStories(ctx context.Context, projectID int, since time.Time) ([]domain.StoryRecord, error)
}
