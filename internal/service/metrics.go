package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	TaskTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taskboard_task_transitions_total",
			Help: "Applied task mutations by kind (create, edit, complete, reopen, move_today, move_backlog, delete)",
		},
		[]string{"transition"},
	)
	TaskRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taskboard_task_rejections_total",
			Help: "Task operations refused before any write, by reason",
		},
		[]string{"reason"},
	)
)

func init() {
	prometheus.MustRegister(TaskTransitions)
	prometheus.MustRegister(TaskRejections)
}
