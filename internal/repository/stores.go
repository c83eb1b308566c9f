package repository

import (
	"context"

	"taskboard/internal/db"
	"taskboard/internal/domain"
)

// TaskStore is task storage scoped by owner on writes.
type TaskStore interface {
	Create(ctx context.Context, ownerID string, in domain.NewTask) (*domain.Task, error)
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Task, error)
	Update(ctx context.Context, id, ownerID string, p domain.TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, id, ownerID string) error
}

type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type Stores struct {
	Tasks TaskStore
	Users UserStore
}

// NewStores returns the repositories matching the handle's driver.
func NewStores(h *db.Handle) Stores {
	if h.Pool != nil {
		return Stores{
			Tasks: NewTaskRepository(h.Pool),
			Users: NewUserRepository(h.Pool),
		}
	}
	return Stores{
		Tasks: NewSQLiteTaskRepository(h.SQL),
		Users: NewSQLiteUserRepository(h.SQL),
	}
}
