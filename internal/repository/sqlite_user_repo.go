package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"taskboard/internal/domain"

	"github.com/google/uuid"
)

type SQLiteUserRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteUserRepository(db *sql.DB) *SQLiteUserRepository {
	return &SQLiteUserRepository{db: db, now: time.Now}
}

func scanSQLiteUser(row sqlScanner) (*domain.User, error) {
	var u domain.User
	var created string
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var err error
	if u.CreatedAt, err = parseSQLiteTime(created); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *SQLiteUserRepository) Create(ctx context.Context, u *domain.User) error {
	id := uuid.NewString()
	created := r.now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, email, password_hash, created_at) VALUES (?, ?, ?, ?)`,
		id, u.Email, u.PasswordHash, formatSQLiteTime(created),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	u.ID = id
	u.CreatedAt = created
	return nil
}

func (r *SQLiteUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return scanSQLiteUser(r.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, created_at FROM users WHERE email = ?`, email))
}

func (r *SQLiteUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return scanSQLiteUser(r.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, created_at FROM users WHERE id = ?`, id))
}
