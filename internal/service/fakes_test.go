package service

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

// memTaskStore is an in-memory TaskStore with the repository contract.
type memTaskStore struct {
	mu    sync.Mutex
	seq   int
	clock time.Time
	tasks map[string]*domain.Task

	writes int
	// beforeUpdate runs inside Update before the row is matched.
	beforeUpdate func()
}

func newMemTaskStore() *memTaskStore {
	return &memTaskStore{
		clock: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		tasks: make(map[string]*domain.Task),
	}
}

func (m *memTaskStore) tick() time.Time {
	m.clock = m.clock.Add(time.Minute)
	return m.clock
}

func (m *memTaskStore) Create(_ context.Context, ownerID string, in domain.NewTask) (*domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	m.writes++
	owner := ownerID
	now := m.tick()
	t := &domain.Task{
		ID:        "task-" + strconv.Itoa(m.seq),
		UserID:    &owner,
		Title:     in.Title,
		Category:  in.Category,
		IsToday:   in.IsToday,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.tasks[t.ID] = t
	cp := *t
	return &cp, nil
}

func (m *memTaskStore) GetByID(_ context.Context, id string) (*domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tasks[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (m *memTaskStore) ListByOwner(_ context.Context, ownerID string) ([]*domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Task
	for _, t := range m.tasks {
		if t.OwnedBy(ownerID) {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memTaskStore) Update(_ context.Context, id, ownerID string, p domain.TaskPatch) (*domain.Task, error) {
	if m.beforeUpdate != nil {
		m.beforeUpdate()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tasks[id]
	if !ok || !t.OwnedBy(ownerID) {
		return nil, repository.ErrNotFound
	}
	m.writes++
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.IsToday != nil {
		t.IsToday = *p.IsToday
	}
	if p.IsCompleted != nil {
		t.IsCompleted = *p.IsCompleted
	}
	t.UpdatedAt = m.tick()
	cp := *t
	return &cp, nil
}

func (m *memTaskStore) Delete(_ context.Context, id, ownerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tasks[id]
	if !ok || !t.OwnedBy(ownerID) {
		return repository.ErrNotFound
	}
	m.writes++
	delete(m.tasks, id)
	return nil
}

func (m *memTaskStore) remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tasks, id)
}

// memUserStore is an in-memory UserStore.
type memUserStore struct {
	mu      sync.Mutex
	byEmail map[string]*domain.User
	seq     int
	failGet error
}

func newMemUserStore() *memUserStore {
	return &memUserStore{byEmail: make(map[string]*domain.User)}
}

func (m *memUserStore) Create(_ context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byEmail[u.Email]; ok {
		return repository.ErrDuplicate
	}
	m.seq++
	u.ID = "user-" + strconv.Itoa(m.seq)
	u.CreatedAt = time.Now()
	cp := *u
	m.byEmail[u.Email] = &cp
	return nil
}

func (m *memUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet != nil {
		return nil, m.failGet
	}
	u, ok := m.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUserStore) GetByID(_ context.Context, id string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

var errStoreDown = errors.New("store unavailable")
