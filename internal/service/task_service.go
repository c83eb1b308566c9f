package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taskboard/internal/domain"
	"taskboard/internal/logger"
	"taskboard/internal/repository"
)

type TaskStore interface {
	Create(ctx context.Context, ownerID string, in domain.NewTask) (*domain.Task, error)
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Task, error)
	Update(ctx context.Context, id, ownerID string, p domain.TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, id, ownerID string) error
}

// TaskService applies task transitions for an authenticated user. Every
// task-specific operation runs the ownership guard before touching the
// store, and each transition is a single store write.
type TaskService struct {
	tasks TaskStore
}

func NewTaskService(tasks TaskStore) *TaskService {
	return &TaskService{tasks: tasks}
}

// List returns the user's tasks projected into Today and Backlog.
func (s *TaskService) List(ctx context.Context, userID string) (domain.TaskLists, error) {
	tasks, err := s.tasks.ListByOwner(ctx, userID)
	if err != nil {
		return domain.TaskLists{}, fmt.Errorf("list tasks: %w", err)
	}
	return Project(tasks), nil
}

// Create adds a task owned by userID. isToday defaults to true when nil.
// Not idempotent: every call creates a new task.
func (s *TaskService) Create(ctx context.Context, userID, title string, category domain.Category, isToday *bool) (*domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" || category == "" {
		TaskRejections.WithLabelValues("invalid_input").Inc()
		return nil, fmt.Errorf("title and category are required: %w", domain.ErrInvalidInput)
	}
	if !category.Valid() {
		TaskRejections.WithLabelValues("invalid_input").Inc()
		return nil, fmt.Errorf("unknown category %q: %w", category, domain.ErrInvalidInput)
	}

	in := domain.NewTask{Title: title, Category: category, IsToday: true}
	if isToday != nil {
		in.IsToday = *isToday
	}

	t, err := s.tasks.Create(ctx, userID, in)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	TaskTransitions.WithLabelValues("create").Inc()
	logger.FromContext(ctx).Debug("task created", "task_id", t.ID, "today", t.IsToday)
	return t, nil
}

// Get returns one task after the ownership check.
func (s *TaskService) Get(ctx context.Context, userID, id string) (*domain.Task, error) {
	return s.authorize(ctx, userID, id)
}

// Update applies a partial change. Title and category are validated only
// when present. Membership and completion are set to the supplied values;
// setting a value the task already has is accepted and rewritten.
func (s *TaskService) Update(ctx context.Context, userID, id string, p domain.TaskPatch) (*domain.Task, error) {
	current, err := s.authorize(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if p.Title != nil {
		trimmed := strings.TrimSpace(*p.Title)
		if trimmed == "" {
			TaskRejections.WithLabelValues("invalid_input").Inc()
			return nil, fmt.Errorf("title must not be empty: %w", domain.ErrInvalidInput)
		}
		p.Title = &trimmed
	}
	if p.Category != nil && !p.Category.Valid() {
		TaskRejections.WithLabelValues("invalid_input").Inc()
		return nil, fmt.Errorf("unknown category %q: %w", *p.Category, domain.ErrInvalidInput)
	}

	updated, err := s.tasks.Update(ctx, id, userID, p)
	if err != nil {
		// the task vanished after the check; reported as an internal failure
		return nil, fmt.Errorf("update task %s: %w", id, err)
	}

	for _, tr := range transitions(current, p) {
		TaskTransitions.WithLabelValues(tr).Inc()
	}
	return updated, nil
}

// Edit changes title and/or category only.
func (s *TaskService) Edit(ctx context.Context, userID, id string, title *string, category *domain.Category) (*domain.Task, error) {
	return s.Update(ctx, userID, id, domain.TaskPatch{Title: title, Category: category})
}

// SetCompleted sets the completion flag to done.
func (s *TaskService) SetCompleted(ctx context.Context, userID, id string, done bool) (*domain.Task, error) {
	return s.Update(ctx, userID, id, domain.TaskPatch{IsCompleted: &done})
}

// Move puts the task in Today (today=true) or the Backlog.
func (s *TaskService) Move(ctx context.Context, userID, id string, today bool) (*domain.Task, error) {
	return s.Update(ctx, userID, id, domain.TaskPatch{IsToday: &today})
}

func (s *TaskService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.authorize(ctx, userID, id); err != nil {
		return err
	}
	if err := s.tasks.Delete(ctx, id, userID); err != nil {
		return fmt.Errorf("delete task %s: %w", id, err)
	}
	TaskTransitions.WithLabelValues("delete").Inc()
	return nil
}

func (s *TaskService) authorize(ctx context.Context, userID, id string) (*domain.Task, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("load task %s: %w", id, err)
		}
		t = nil
	}
	if err := Authorize(userID, t); err != nil {
		reason := "not_found"
		if errors.Is(err, domain.ErrForbidden) {
			reason = "forbidden"
			logger.FromContext(ctx).Warn("foreign task access refused", "task_id", id)
		}
		TaskRejections.WithLabelValues(reason).Inc()
		return nil, err
	}
	return t, nil
}

// transitions names the state changes p makes to t, for metrics.
func transitions(t *domain.Task, p domain.TaskPatch) []string {
	var out []string
	if p.Title != nil || p.Category != nil {
		out = append(out, "edit")
	}
	if p.IsCompleted != nil && *p.IsCompleted != t.IsCompleted {
		if *p.IsCompleted {
			out = append(out, "complete")
		} else {
			out = append(out, "reopen")
		}
	}
	if p.IsToday != nil && *p.IsToday != t.IsToday {
		if *p.IsToday {
			out = append(out, "move_today")
		} else {
			out = append(out, "move_backlog")
		}
	}
	return out
}
