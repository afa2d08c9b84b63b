package taigaimpl

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/ydrgzm/taiga-cfd-bot/internal/domain"
)

type statusDTO struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	IsClosed bool   `json:"is_closed"`
	Order    int    `json:"order"`
}

// GetStatuses fetches the user-story status catalog for a project.
func (t *TaigaImpl) GetStatuses(ctx context.Context, projectID int) ([]domain.Status, error) {
	params := url.Values{"project": {strconv.Itoa(projectID)}}

	var dtos []statusDTO
	if err := t.get(ctx, "/api/v1/userstory-statuses", params, &dtos); err != nil {
		return nil, fmt.Errorf("failed to fetch statuses for project %d: %w", projectID, err)
	}

	statuses := make([]domain.Status, 0, len(dtos))
	for _, dto := range dtos {
		statuses = append(statuses, domain.Status{
			ID:       dto.ID,
			Name:     dto.Name,
			IsClosed: dto.IsClosed,
			Order:    dto.Order,
		})
	}

	t.Logger.Info("Fetched status catalog", "project_id", projectID, "count", len(statuses))
	return statuses, nil
}
