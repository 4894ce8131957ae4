package audit

import (
	"strconv"

	"secura-backend/internal/models"
	"secura-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type ActivityLogResponse struct {
	ID          string              `json:"id"`
	Type        models.ActivityType `json:"type"`
	Description string              `json:"description"`
	UserID      string              `json:"userId"`
	UserName    string              `json:"userName"`
	CreatedAt   string              `json:"createdAt"`
}

// GET /api/activity-logs?type=sale&limit=50
// Newest entries first.
func ListActivityLogsHandler(repo *repository.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		typeFilter := c.Query("type")

		limit := 0
		if limitStr := c.Query("limit"); limitStr != "" {
			n, err := strconv.Atoi(limitStr)
			if err != nil || n < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "limit must be a non-negative number")
			}
			limit = n
		}

		// User names are denormalized into the response so the activity
		// page does not need a second lookup.
		names := make(map[string]string)
		for _, u := range repo.Users() {
			names[u.ID] = u.Name
		}

		logs := repo.ActivityLogs()
		out := make([]ActivityLogResponse, 0, len(logs))
		for i := len(logs) - 1; i >= 0; i-- {
			entry := logs[i]
			if typeFilter != "" && string(entry.Type) != typeFilter {
				continue
			}
			out = append(out, ActivityLogResponse{
				ID:          entry.ID,
				Type:        entry.Type,
				Description: entry.Description,
				UserID:      entry.UserID,
				UserName:    names[entry.UserID],
				CreatedAt:   entry.CreatedAt.Format("2006-01-02 15:04:05"),
			})
			if limit > 0 && len(out) == limit {
				break
			}
		}

		return c.JSON(out)
	}
}
