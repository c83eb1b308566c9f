package service

import (
	"sort"

	"taskboard/internal/domain"
)

// Project partitions tasks into Today and Backlog by the IsToday flag.
// Within each list open tasks come first, then completed ones; each group is
// ordered newest first. Ties keep input order. The input is not modified.
func Project(tasks []*domain.Task) domain.TaskLists {
	lists := domain.TaskLists{
		Today:   make([]*domain.Task, 0),
		Backlog: make([]*domain.Task, 0),
		Total:   len(tasks),
	}
	for _, t := range tasks {
		if t.IsToday {
			lists.Today = append(lists.Today, t)
		} else {
			lists.Backlog = append(lists.Backlog, t)
		}
	}
	sortForDisplay(lists.Today)
	sortForDisplay(lists.Backlog)
	return lists
}

func sortForDisplay(tasks []*domain.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.IsCompleted != b.IsCompleted {
			return !a.IsCompleted
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}
