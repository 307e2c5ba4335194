// Package metrics exposes Prometheus counters for the assignment engine and
// the appointment lifecycle.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the application's prometheus registry, served on /metrics.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

// AssignmentRunsTotal counts auto-assignment runs, split by dry-run/commit.
var AssignmentRunsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "workeronline",
	Name:      "assignment_runs_total",
	Help:      "Number of auto-assignment planning runs",
}, []string{"mode"})

// TasksAssignedTotal counts tasks paired with a worker during planning runs.
var TasksAssignedTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "workeronline",
	Name:      "tasks_assigned_total",
	Help:      "Number of tasks paired with a worker by the assignment engine",
})

// TasksUnassignedTotal counts tasks left without an eligible candidate.
// A high value indicates the workforce is saturated or under-qualified.
var TasksUnassignedTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "workeronline",
	Name:      "tasks_unassigned_total",
	Help:      "Number of tasks left unassigned after a planning run",
})

// AppointmentsCreatedTotal counts committed appointments (manual and auto).
var AppointmentsCreatedTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "workeronline",
	Name:      "appointments_created_total",
	Help:      "Number of task appointments created",
})

// AppointmentsCompletedTotal counts appointments marked done.
var AppointmentsCompletedTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "workeronline",
	Name:      "appointments_completed_total",
	Help:      "Number of task appointments marked done",
})

// TaskPerformance observes the computed performance ratio of completed
// appointments, the feedback signal of the productivity loop.
var TaskPerformance = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "workeronline",
	Name:      "task_performance_ratio",
	Help:      "Performance ratio of completed appointments (estimate hours per adjusted worked hour)",
	Buckets:   prometheus.ExponentialBuckets(0.125, 2, 8),
})
