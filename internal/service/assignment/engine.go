package assignment

import (
	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/assignment"
	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/company"
	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/worker"
	svcappointment "github.com/HuginnARaven/WorkerOnline-server/internal/service/appointment"
)

// PlanGreedy pairs unassigned tasks with idle workers. Tasks are visited in
// creation order, workers in ranking order; each task takes the first
// eligible worker not yet claimed this run. Inputs already carry their
// orders, so the outcome is fully determined by them. Pure.
func PlanGreedy(tasks []company.Task, ranked []worker.Worker, busy map[string]bool) assignment.Plan {
	plan := assignment.Plan{Assigned: []assignment.Pair{}, Steps: []assignment.Step{}}

	claimed := make(map[string]bool, len(ranked))

	for _, task := range tasks {
		for _, w := range ranked {
			if busy[w.ID] || claimed[w.ID] {
				continue
			}
			if !svcappointment.QualifiedFor(task, w) || !svcappointment.FitsWeeklyHours(task, w) {
				continue
			}

			claimed[w.ID] = true
			plan.Assigned = append(plan.Assigned, assignment.Pair{
				TaskID:   task.ID,
				Title:    task.Title,
				WorkerID: w.ID,
				Username: w.Username,
			})

			// Snapshot the cumulative list after this decision.
			snapshot := make([]assignment.Pair, len(plan.Assigned))
			copy(snapshot, plan.Assigned)
			plan.Steps = append(plan.Steps, assignment.Step{Assigned: snapshot})
			break
		}
	}

	return plan
}
