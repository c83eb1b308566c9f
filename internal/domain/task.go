package domain

import "time"

type Category string

const (
	CategoryFamily     Category = "FAMILY"
	CategoryHealth     Category = "HEALTH"
	CategoryCareer     Category = "CAREER"
	CategoryEssentials Category = "ESSENTIALS"
)

// CategoryInfo pairs a category with its display label.
type CategoryInfo struct {
	Value Category `json:"value"`
	Label string   `json:"label"`
}

// Categories is the closed set of task categories, in display order.
var Categories = []CategoryInfo{
	{Value: CategoryFamily, Label: "Family"},
	{Value: CategoryHealth, Label: "Health"},
	{Value: CategoryCareer, Label: "Career"},
	{Value: CategoryEssentials, Label: "Essentials"},
}

// Valid reports whether c is one of the known categories. Matching is exact.
func (c Category) Valid() bool {
	switch c {
	case CategoryFamily, CategoryHealth, CategoryCareer, CategoryEssentials:
		return true
	}
	return false
}

// Task is a single to-do item. UserID is nil only for legacy rows created
// before tasks were owner-scoped.
type Task struct {
	ID          string    `db:"id" json:"id"`
	UserID      *string   `db:"user_id" json:"userId"`
	Title       string    `db:"title" json:"title"`
	Category    Category  `db:"category" json:"category"`
	IsToday     bool      `db:"is_today" json:"isToday"`
	IsCompleted bool      `db:"is_completed" json:"isCompleted"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// OwnedBy reports whether userID owns the task.
func (t *Task) OwnedBy(userID string) bool {
	return t.UserID != nil && *t.UserID == userID
}

// NewTask holds the caller-supplied fields of a task being created.
type NewTask struct {
	Title    string
	Category Category
	IsToday  bool
}

// TaskPatch is a partial update. Nil fields are left untouched.
type TaskPatch struct {
	Title       *string
	Category    *Category
	IsToday     *bool
	IsCompleted *bool
}

// Empty reports whether the patch changes no field.
func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Category == nil && p.IsToday == nil && p.IsCompleted == nil
}

// TaskLists is the Today/Backlog projection of a user's tasks.
type TaskLists struct {
	Today   []*Task `json:"today"`
	Backlog []*Task `json:"backlog"`
	Total   int     `json:"total"`
}
