package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"taskboard/internal/domain"

	"github.com/google/uuid"
)

// Fixed-width so that text ordering matches time ordering.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteTaskRepository stores tasks in SQLite. Same contract as TaskRepository.
type SQLiteTaskRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteTaskRepository(db *sql.DB) *SQLiteTaskRepository {
	return &SQLiteTaskRepository{db: db, now: time.Now}
}

type sqlScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteTask(row sqlScanner) (*domain.Task, error) {
	var (
		t                domain.Task
		owner            sql.NullString
		category         string
		created, updated string
	)
	if err := row.Scan(&t.ID, &owner, &t.Title, &category, &t.IsToday, &t.IsCompleted, &created, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if owner.Valid {
		t.UserID = &owner.String
	}
	t.Category = domain.Category(category)

	var err error
	if t.CreatedAt, err = parseSQLiteTime(created); err != nil {
		return nil, err
	}
	if t.UpdatedAt, err = parseSQLiteTime(updated); err != nil {
		return nil, err
	}
	return &t, nil
}

func formatSQLiteTime(t time.Time) string {
	return t.UTC().Format(sqliteTimeLayout)
}

func parseSQLiteTime(s string) (time.Time, error) {
	t, err := time.Parse(sqliteTimeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time %q: %w", s, err)
	}
	return t, nil
}

func (r *SQLiteTaskRepository) Create(ctx context.Context, ownerID string, in domain.NewTask) (*domain.Task, error) {
	ts := formatSQLiteTime(r.now())
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO tasks (id, user_id, title, category, is_today, is_completed, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, 0, ?, ?)
		 RETURNING `+taskColumns,
		uuid.NewString(), ownerID, in.Title, string(in.Category), in.IsToday, ts, ts,
	)
	return scanSQLiteTask(row)
}

func (r *SQLiteTaskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return scanSQLiteTask(r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id))
}

func (r *SQLiteTaskRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE user_id = ? ORDER BY created_at DESC, id`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.Task
	for rows.Next() {
		t, err := scanSQLiteTask(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, rows.Err()
}

func (r *SQLiteTaskRepository) Update(ctx context.Context, id, ownerID string, p domain.TaskPatch) (*domain.Task, error) {
	row := r.db.QueryRowContext(ctx,
		`UPDATE tasks
		 SET title = COALESCE(?, title),
		     category = COALESCE(?, category),
		     is_today = COALESCE(?, is_today),
		     is_completed = COALESCE(?, is_completed),
		     updated_at = ?
		 WHERE id = ? AND user_id = ?
		 RETURNING `+taskColumns,
		p.Title, categoryArg(p.Category), p.IsToday, p.IsCompleted, formatSQLiteTime(r.now()), id, ownerID,
	)
	return scanSQLiteTask(row)
}

func (r *SQLiteTaskRepository) Delete(ctx context.Context, id, ownerID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ? AND user_id = ?`, id, ownerID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
