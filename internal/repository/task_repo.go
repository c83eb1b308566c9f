package repository

import (
	"context"
	"errors"

	"taskboard/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const taskColumns = `id, user_id, title, category, is_today, is_completed, created_at, updated_at`

// TaskRepository stores tasks in PostgreSQL. It performs no authorization.
type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var t domain.Task
	var category string
	if err := row.Scan(&t.ID, &t.UserID, &t.Title, &category, &t.IsToday, &t.IsCompleted, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	t.Category = domain.Category(category)
	return &t, nil
}

func (r *TaskRepository) Create(ctx context.Context, ownerID string, in domain.NewTask) (*domain.Task, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO tasks (id, user_id, title, category, is_today, is_completed)
		 VALUES ($1, $2, $3, $4, $5, false)
		 RETURNING `+taskColumns,
		uuid.NewString(), ownerID, in.Title, string(in.Category), in.IsToday,
	)
	return scanTask(row)
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return scanTask(r.db.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id))
}

// ListByOwner returns the owner's tasks, newest first. Callers must not rely
// on the order; the projection re-derives it.
func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Task, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE user_id = $1 ORDER BY created_at DESC, id`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, rows.Err()
}

// Update applies the non-nil fields of p to the task with the given id and
// owner, refreshing updated_at. ErrNotFound means no row matched both.
func (r *TaskRepository) Update(ctx context.Context, id, ownerID string, p domain.TaskPatch) (*domain.Task, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE tasks
		 SET title = COALESCE($3, title),
		     category = COALESCE($4, category),
		     is_today = COALESCE($5, is_today),
		     is_completed = COALESCE($6, is_completed),
		     updated_at = now()
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+taskColumns,
		id, ownerID, p.Title, categoryArg(p.Category), p.IsToday, p.IsCompleted,
	)
	return scanTask(row)
}

func (r *TaskRepository) Delete(ctx context.Context, id, ownerID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func categoryArg(c *domain.Category) *string {
	if c == nil {
		return nil
	}
	s := string(*c)
	return &s
}
