package audit

import (
	"fmt"

	"secura-backend/internal/models"
	"secura-backend/internal/repository"
)

// Record appends one activity entry for a completed action. Entries are
// append-only; nothing in the API updates or deletes them. Batched bulk
// actions record one summarizing entry, not one per item.
func Record(repo *repository.Repository, t models.ActivityType, description, userID string) error {
	if _, err := repo.AppendActivityLog(t, description, userID); err != nil {
		return fmt.Errorf("activity log not recorded: %w", err)
	}
	return nil
}
