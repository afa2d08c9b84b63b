package taigaimpl

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/ydrgzm/taiga-cfd-bot/internal/cfd"
	"github.com/ydrgzm/taiga-cfd-bot/internal/domain"
)

type userStoryDTO struct {
	ID          int    `json:"id"`
	Ref         int    `json:"ref"`
	Subject     string `json:"subject"`
	Status      int    `json:"status"`
	CreatedDate string `json:"created_date"`
}

// GetUserStories fetches all user stories for a project page by page. Stories
// created before since are dropped at the edge; stories with an unparseable
// creation date are skipped with a warning. The page loop is bounded by the
// configured TAIGA_MAX_PAGES limit.
func (t *TaigaImpl) GetUserStories(ctx context.Context, projectID int, since time.Time) ([]domain.StoryRecord, error) {
	pageSize := t.Config.Taiga.PageSize
	maxPages := t.Config.Taiga.MaxPages

	var all []domain.StoryRecord
	for page := 1; ; page++ {
		if page > maxPages {
			t.Logger.Warn("Reached configured page limit, stopping story fetch",
				"max_pages", maxPages, "fetched", len(all))
			break
		}

		params := url.Values{
			"project":   {strconv.Itoa(projectID)},
			"page":      {strconv.Itoa(page)},
			"page_size": {strconv.Itoa(pageSize)},
		}

		var stories []userStoryDTO
		if err := t.get(ctx, "/api/v1/userstories", params, &stories); err != nil {
			return nil, fmt.Errorf("failed to fetch user stories page %d: %w", page, err)
		}

		if len(stories) == 0 {
			break
		}

		kept := 0
		for _, dto := range stories {
			createdAt, err := cfd.ParseInstant(dto.CreatedDate)
			if err != nil {
				t.Logger.Warn("Skipping story with unparseable creation date",
					"ref", dto.Ref, "created_date", dto.CreatedDate, "error", err)
				continue
			}
			if !since.IsZero() && createdAt.Before(since) {
				continue
			}
			all = append(all, domain.StoryRecord{
				ID:          dto.ID,
				Ref:         dto.Ref,
				Subject:     dto.Subject,
				CreatedDate: dto.CreatedDate,
				StatusID:    dto.Status,
			})
			kept++
		}

		t.Logger.Info("Fetched user stories page",
			"page", page, "page_total", len(stories), "in_range", kept)

		if len(stories) < pageSize {
			break
		}
	}

	t.Logger.Info("Fetched user stories", "project_id", projectID, "count", len(all))
	return all, nil
}
