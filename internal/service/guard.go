package service

import (
	"fmt"

	"taskboard/internal/domain"
)

// Authorize decides whether userID may act on task. A nil task means no
// task with the requested id exists. Missing and foreign tasks are reported
// differently (ErrNotFound vs ErrForbidden).
func Authorize(userID string, task *domain.Task) error {
	if task == nil {
		return fmt.Errorf("task not found: %w", domain.ErrNotFound)
	}
	if !task.OwnedBy(userID) {
		return fmt.Errorf("task belongs to another user: %w", domain.ErrForbidden)
	}
	return nil
}
