package assignment

import (
	"testing"
	"time"

	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/company"
	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planTask(id, title string, estimate, difficulty int) company.Task {
	return company.Task{
		ID:            id,
		CompanyID:     "c-1",
		Title:         title,
		EstimateHours: estimate,
		Difficulty:    &company.Qualification{ID: "q-" + id, CompanyID: "c-1", Modifier: difficulty},
	}
}

func planWorker(id, username string, weeklyHours, qualification int) worker.Worker {
	return worker.Worker{
		ID:           id,
		EmployerID:   "c-1",
		Username:     username,
		WorkingHours: weeklyHours,
		Productivity: 1.0,
		DayStart:     9 * time.Hour,
		DayEnd:       17 * time.Hour,
		Qualification: &company.Qualification{
			ID: "wq-" + id, CompanyID: "c-1", Modifier: qualification,
		},
	}
}

func TestPlanGreedy_PairsInOrder(t *testing.T) {
	t.Parallel()

	tasks := []company.Task{
		planTask("t-1", "first", 8, 2),
		planTask("t-2", "second", 8, 2),
	}
	ranked := []worker.Worker{
		planWorker("w-1", "alpha", 40, 3),
		planWorker("w-2", "beta", 40, 3),
	}

	plan := PlanGreedy(tasks, ranked, nil)

	require.Len(t, plan.Assigned, 2)
	// Each task takes the best remaining worker.
	assert.Equal(t, "w-1", plan.Assigned[0].WorkerID)
	assert.Equal(t, "t-1", plan.Assigned[0].TaskID)
	assert.Equal(t, "w-2", plan.Assigned[1].WorkerID)
	assert.Equal(t, "t-2", plan.Assigned[1].TaskID)
	assert.False(t, plan.Committed)
}

func TestPlanGreedy_WorkerClaimedOncePerRun(t *testing.T) {
	t.Parallel()

	tasks := []company.Task{
		planTask("t-1", "first", 8, 2),
		planTask("t-2", "second", 8, 2),
	}
	ranked := []worker.Worker{planWorker("w-1", "alpha", 40, 3)}

	plan := PlanGreedy(tasks, ranked, nil)

	require.Len(t, plan.Assigned, 1)
	assert.Equal(t, "t-1", plan.Assigned[0].TaskID)
}

func TestPlanGreedy_BusyWorkersSkipped(t *testing.T) {
	t.Parallel()

	tasks := []company.Task{planTask("t-1", "first", 8, 2)}
	ranked := []worker.Worker{
		planWorker("w-1", "alpha", 40, 3),
		planWorker("w-2", "beta", 40, 3),
	}
	busy := map[string]bool{"w-1": true}

	plan := PlanGreedy(tasks, ranked, busy)

	require.Len(t, plan.Assigned, 1)
	assert.Equal(t, "w-2", plan.Assigned[0].WorkerID)
}

func TestPlanGreedy_IneligibleWorkersSkipped(t *testing.T) {
	t.Parallel()

	tasks := []company.Task{
		planTask("t-1", "hard", 8, 5),
		planTask("t-2", "long", 60, 1),
	}
	ranked := []worker.Worker{
		planWorker("w-1", "alpha", 40, 2), // underqualified for t-1, too few hours for t-2
		planWorker("w-2", "beta", 80, 5),
	}

	plan := PlanGreedy(tasks, ranked, nil)

	// w-2 covers t-1; nobody is left for t-2.
	require.Len(t, plan.Assigned, 1)
	assert.Equal(t, "t-1", plan.Assigned[0].TaskID)
	assert.Equal(t, "w-2", plan.Assigned[0].WorkerID)
}

func TestPlanGreedy_StepsAreCumulative(t *testing.T) {
	t.Parallel()

	tasks := []company.Task{
		planTask("t-1", "first", 8, 2),
		planTask("t-2", "second", 8, 2),
		planTask("t-3", "third", 8, 2),
	}
	ranked := []worker.Worker{
		planWorker("w-1", "alpha", 40, 3),
		planWorker("w-2", "beta", 40, 3),
		planWorker("w-3", "gamma", 40, 3),
	}

	plan := PlanGreedy(tasks, ranked, nil)

	require.Len(t, plan.Steps, 3)
	for i, step := range plan.Steps {
		assert.Len(t, step.Assigned, i+1)
		// Every step extends the previous one.
		if i > 0 {
			assert.Equal(t, plan.Steps[i-1].Assigned, step.Assigned[:i])
		}
	}
	assert.Equal(t, plan.Assigned, plan.Steps[2].Assigned)
}

func TestPlanGreedy_Deterministic(t *testing.T) {
	t.Parallel()

	tasks := []company.Task{
		planTask("t-1", "first", 8, 1),
		planTask("t-2", "second", 16, 2),
		planTask("t-3", "third", 24, 3),
	}
	ranked := []worker.Worker{
		planWorker("w-1", "alpha", 40, 3),
		planWorker("w-2", "beta", 30, 2),
		planWorker("w-3", "gamma", 20, 1),
	}
	busy := map[string]bool{"w-2": true}

	first := PlanGreedy(tasks, ranked, busy)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, PlanGreedy(tasks, ranked, busy))
	}
}

func TestPlanGreedy_NoInputs(t *testing.T) {
	t.Parallel()

	plan := PlanGreedy(nil, nil, nil)

	assert.Empty(t, plan.Assigned)
	assert.Empty(t, plan.Steps)
}