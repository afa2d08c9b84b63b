package taigaimpl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ydrgzm/taiga-cfd-bot/internal/domain"
	"github.com/ydrgzm/taiga-cfd-bot/internal/taiga"
	"github.com/ydrgzm/taiga-cfd-bot/pkg/config"
	apperrors "github.com/ydrgzm/taiga-cfd-bot/pkg/errors"
	"github.com/ydrgzm/taiga-cfd-bot/pkg/logger"
	"github.com/ydrgzm/taiga-cfd-bot/pkg/retry"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type TaigaImpl struct {
	HTTPClient *http.Client
	Config     *config.Config
	Logger     logger.Logger

	token string
}

func New(opts Opts) *TaigaImpl {
	return &TaigaImpl{
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		Config:     opts.Config,
		Logger:     opts.Logger,
	}
}

var _ taiga.Client = (*TaigaImpl)(nil)

// GetProjectBySlug resolves a project slug to its id and metadata.
func (t *TaigaImpl) GetProjectBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	var dto struct {
		ID              int    `json:"id"`
		Slug            string `json:"slug"`
		Name            string `json:"name"`
		IsPrivate       bool   `json:"is_private"`
		KanbanActivated bool   `json:"is_kanban_activated"`
	}

	params := url.Values{"slug": {slug}}
	if err := t.get(ctx, "/api/v1/projects/by_slug", params, &dto); err != nil {
		return nil, fmt.Errorf("failed to resolve project %q: %w", slug, err)
	}

	t.Logger.Info("Project access verified",
		"slug", dto.Slug, "id", dto.ID, "kanban", dto.KanbanActivated)

	return &domain.Project{
		ID:              dto.ID,
		Slug:            dto.Slug,
		Name:            dto.Name,
		IsPrivate:       dto.IsPrivate,
		KanbanActivated: dto.KanbanActivated,
	}, nil
}

// get performs an authenticated GET with retry. Client errors are permanent;
// server and transport errors are retried with backoff.
func (t *TaigaImpl) get(ctx context.Context, path string, params url.Values, out any) error {
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.Config.Taiga.BaseURL+path, nil)
		if err != nil {
			return retry.Permanent(err)
		}
		req.URL.RawQuery = params.Encode()
		req.Header.Set("Content-Type", "application/json")
		if t.token != "" {
			req.Header.Set("Authorization", "Bearer "+t.token)
		}

		resp, err := t.HTTPClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			return json.NewDecoder(resp.Body).Decode(out)
		case resp.StatusCode == http.StatusUnauthorized:
			return retry.Permanent(fmt.Errorf("%s: %w", path, apperrors.ErrUnauthorized))
		case resp.StatusCode == http.StatusNotFound:
			return retry.Permanent(fmt.Errorf("%s: %w", path, apperrors.ErrNotFound))
		case resp.StatusCode >= 400 && resp.StatusCode < 500:
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
			return retry.Permanent(fmt.Errorf("%s: status %d: %s: %w", path, resp.StatusCode, body, apperrors.ErrBadRequest))
		default:
			return fmt.Errorf("%s: status %d: %w", path, resp.StatusCode, apperrors.ErrServiceUnavailable)
		}
	}

	return retry.Do(ctx, t.Logger, "taiga GET "+path, operation, retry.DefaultConfig())
}
