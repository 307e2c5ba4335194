package appointment

import (
	"testing"
	"time"

	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/company"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qualification(id string, modifier int) *company.Qualification {
	return &company.Qualification{ID: id, CompanyID: "c-1", Name: "tier", Modifier: modifier}
}

func TestValidateAppointment_AllClear(t *testing.T) {
	t.Parallel()

	task := testTask(8)
	task.Difficulty = qualification("q-1", 2)
	w := testWorker(1.0, 9*time.Hour, 17*time.Hour)
	w.Qualification = qualification("q-2", 3)

	errs := ValidateAppointment(task, w, "c-1", false, false)

	assert.Empty(t, errs)
}

func TestValidateAppointment_ReportsEveryViolation(t *testing.T) {
	t.Parallel()

	// Foreign worker and task, underqualified, oversized estimate, both
	// busy flags set: all six rules fail in one pass.
	task := testTask(100)
	task.CompanyID = "c-other"
	task.Difficulty = qualification("q-1", 5)
	w := testWorker(1.0, 9*time.Hour, 17*time.Hour)
	w.EmployerID = "c-another"
	w.Qualification = qualification("q-2", 2)

	errs := ValidateAppointment(task, w, "c-1", true, true)

	require.Len(t, errs, 6)
	fields := errs.ToMap()
	assert.Contains(t, fields, "worker_id")
	assert.Contains(t, fields, "task_id")
	assert.Contains(t, fields, "qualification")
	assert.Contains(t, fields, "estimate_hours")
	assert.Contains(t, fields, "worker_appointed")
	assert.Contains(t, fields, "task_appointed")
}

func TestQualifiedFor(t *testing.T) {
	t.Parallel()

	task := testTask(8)
	w := testWorker(1.0, 9*time.Hour, 17*time.Hour)

	// Missing joins never qualify.
	assert.False(t, QualifiedFor(task, w))

	task.Difficulty = qualification("q-1", 3)
	w.Qualification = qualification("q-2", 3)
	assert.True(t, QualifiedFor(task, w))

	task.Difficulty = qualification("q-1", 4)
	assert.False(t, QualifiedFor(task, w))
}

func TestFitsWeeklyHours(t *testing.T) {
	t.Parallel()

	w := testWorker(1.0, 9*time.Hour, 17*time.Hour) // 40 weekly hours

	assert.True(t, FitsWeeklyHours(testTask(40), w))
	assert.False(t, FitsWeeklyHours(testTask(41), w))
}

func TestDifficultyForWorker(t *testing.T) {
	t.Parallel()

	task := testTask(8)
	w := testWorker(1.0, 9*time.Hour, 17*time.Hour)

	// Missing joins fall back to neutral.
	assert.Equal(t, 1.0, DifficultyForWorker(task, w))

	task.Difficulty = qualification("q-1", 2)
	w.Qualification = qualification("q-2", 4)
	assert.Equal(t, 0.5, DifficultyForWorker(task, w))

	task.Difficulty = qualification("q-1", 4)
	w.Qualification = qualification("q-2", 4)
	assert.Equal(t, 1.0, DifficultyForWorker(task, w))
}