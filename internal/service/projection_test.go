package service

import (
	"math/rand"
	"testing"
	"time"

	"taskboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkTask(id string, minute int, today, done bool) *domain.Task {
	return &domain.Task{
		ID:          id,
		Title:       id,
		Category:    domain.CategoryFamily,
		IsToday:     today,
		IsCompleted: done,
		CreatedAt:   time.Date(2026, 1, 1, 10, minute, 0, 0, time.UTC),
	}
}

func ids(tasks []*domain.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestProject_PartitionAndOrder(t *testing.T) {
	in := []*domain.Task{
		mkTask("a", 1, true, false),
		mkTask("b", 2, true, true),
		mkTask("c", 3, true, false),
		mkTask("d", 4, true, true),
		mkTask("e", 5, false, false),
		mkTask("f", 6, false, true),
		mkTask("g", 7, false, false),
	}

	lists := Project(in)
	assert.Equal(t, 7, lists.Total)
	assert.Equal(t, []string{"c", "a", "d", "b"}, ids(lists.Today))
	assert.Equal(t, []string{"g", "e", "f"}, ids(lists.Backlog))

	// input slice untouched
	assert.Equal(t, "a", in[0].ID)
}

func TestProject_Empty(t *testing.T) {
	lists := Project(nil)
	assert.Zero(t, lists.Total)
	assert.NotNil(t, lists.Today)
	assert.NotNil(t, lists.Backlog)
	assert.Empty(t, lists.Today)
}

func TestProject_TiesKeepInputOrder(t *testing.T) {
	in := []*domain.Task{
		mkTask("x", 1, true, false),
		mkTask("y", 1, true, false),
	}
	assert.Equal(t, []string{"x", "y"}, ids(Project(in).Today))
}

func TestProject_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		var in []*domain.Task
		n := rng.Intn(30)
		for i := 0; i < n; i++ {
			in = append(in, mkTask(string(rune('A'+i)), rng.Intn(60), rng.Intn(2) == 0, rng.Intn(2) == 0))
		}

		lists := Project(in)
		require.Equal(t, n, lists.Total)
		require.Equal(t, n, len(lists.Today)+len(lists.Backlog))

		seen := make(map[string]int)
		for _, part := range [][]*domain.Task{lists.Today, lists.Backlog} {
			sawDone := false
			for i, task := range part {
				seen[task.ID]++
				if task.IsCompleted {
					sawDone = true
				} else {
					assert.False(t, sawDone, "open task after a completed one")
				}
				if i > 0 && part[i-1].IsCompleted == task.IsCompleted {
					assert.False(t, task.CreatedAt.After(part[i-1].CreatedAt), "newer task after older one")
				}
			}
		}
		for _, task := range in {
			assert.Equal(t, 1, seen[task.ID], "task %s must appear exactly once", task.ID)
		}
		for _, task := range lists.Today {
			assert.True(t, task.IsToday)
		}
		for _, task := range lists.Backlog {
			assert.False(t, task.IsToday)
		}
	}
}
