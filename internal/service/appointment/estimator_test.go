package appointment

import (
	"testing"
	"time"

	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/company"
	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/worker"
	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/workcal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWorker(productivity float64, dayStart, dayEnd time.Duration) worker.Worker {
	return worker.Worker{
		ID:           "w-1",
		EmployerID:   "c-1",
		Username:     "worker-one",
		WorkingHours: 40,
		Productivity: productivity,
		DayStart:     dayStart,
		DayEnd:       dayEnd,
	}
}

func testTask(estimateHours int) company.Task {
	return company.Task{
		ID:            "t-1",
		CompanyID:     "c-1",
		Title:         "Assemble unit",
		EstimateHours: estimateHours,
	}
}

func TestDeadlineEstimator_SingleDay(t *testing.T) {
	t.Parallel()
	e := NewDeadlineEstimator()

	// Tuesday, 4h of work inside an 8h daily window.
	start := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	w := testWorker(1.0, 9*time.Hour, 17*time.Hour)

	deadline, err := e.RecommendDeadline(testTask(4), w, workcal.AllWorking, time.UTC, start)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC), deadline)
}

func TestDeadlineEstimator_MultiDay(t *testing.T) {
	t.Parallel()
	e := NewDeadlineEstimator()

	// 20h of work over an 8h window needs 3 working days.
	start := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	w := testWorker(1.0, 9*time.Hour, 17*time.Hour)

	deadline, err := e.RecommendDeadline(testTask(20), w, workcal.AllWorking, time.UTC, start)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC), deadline)
}

func TestDeadlineEstimator_ProductivityScalesEffort(t *testing.T) {
	t.Parallel()
	e := NewDeadlineEstimator()

	start := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)

	// A slower worker (productivity 2.0) doubles the nominal effort:
	// 8h * 2.0 over an 8h window is two working days.
	slow := testWorker(2.0, 9*time.Hour, 17*time.Hour)
	deadline, err := e.RecommendDeadline(testTask(8), slow, workcal.AllWorking, time.UTC, start)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 4, 9, 0, 0, 0, time.UTC), deadline)

	fast := testWorker(0.5, 9*time.Hour, 17*time.Hour)
	deadline, err = e.RecommendDeadline(testTask(8), fast, workcal.AllWorking, time.UTC, start)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC), deadline)
}

func TestDeadlineEstimator_DayOffPushesDeadline(t *testing.T) {
	t.Parallel()
	e := NewDeadlineEstimator()

	// Tuesday start, Wednesday off. A one-day task uses Tuesday only, so
	// the Wednesday off does not move it; a two-day task works through
	// Wednesday and gets pushed one day out.
	start := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	w := testWorker(1.0, 9*time.Hour, 17*time.Hour)
	week := workcal.AllWorking
	week[2] = false // Wednesday

	deadline, err := e.RecommendDeadline(testTask(4), w, week, time.UTC, start)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC), deadline)

	deadline, err = e.RecommendDeadline(testTask(12), w, week, time.UTC, start)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC), deadline)
}

func TestDeadlineEstimator_PushedDaysNotReexamined(t *testing.T) {
	t.Parallel()
	e := NewDeadlineEstimator()

	// Friday start with weekends off. The one-day task uses Friday only,
	// so the finish lands on Saturday even though Saturday is off; days
	// the finish is pushed onto are never walked.
	start := time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)
	w := testWorker(1.0, 9*time.Hour, 17*time.Hour)
	week := workcal.Week{true, true, true, true, true, false, false}

	deadline, err := e.RecommendDeadline(testTask(4), w, week, time.UTC, start)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 6, 9, 0, 0, 0, time.UTC), deadline)
}

func TestDeadlineEstimator_Deterministic(t *testing.T) {
	t.Parallel()
	e := NewDeadlineEstimator()

	start := time.Date(2024, 3, 11, 8, 30, 0, 0, time.UTC)
	w := testWorker(1.2, 8*time.Hour, 16*time.Hour)
	week := workcal.Week{true, true, true, true, true, false, false}

	first, err := e.RecommendDeadline(testTask(30), w, week, time.UTC, start)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := e.RecommendDeadline(testTask(30), w, week, time.UTC, start)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestDeadlineEstimator_TimezoneShiftsWeekday(t *testing.T) {
	t.Parallel()
	e := NewDeadlineEstimator()

	kyiv, err := time.LoadLocation("Europe/Kyiv")
	require.NoError(t, err)

	// 23:00 UTC on Tuesday is already Wednesday in Kyiv; with Wednesday
	// off the walk counts it and pushes the finish a day out.
	start := time.Date(2024, 1, 2, 23, 0, 0, 0, time.UTC)
	w := testWorker(1.0, 9*time.Hour, 17*time.Hour)
	week := workcal.AllWorking
	week[2] = false // Wednesday

	deadline, err := e.RecommendDeadline(testTask(4), w, week, kyiv, start)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 4, 23, 0, 0, 0, time.UTC), deadline)
}

func TestDeadlineEstimator_NoWorkingDays(t *testing.T) {
	t.Parallel()
	e := NewDeadlineEstimator()

	start := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	w := testWorker(1.0, 9*time.Hour, 17*time.Hour)

	_, err := e.RecommendDeadline(testTask(4), w, workcal.Week{}, time.UTC, start)

	assert.ErrorIs(t, err, worker.ErrNoWorkingDays)
}

func TestDeadlineEstimator_InvalidDaySpan(t *testing.T) {
	t.Parallel()
	e := NewDeadlineEstimator()

	start := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	w := testWorker(1.0, 17*time.Hour, 9*time.Hour)

	_, err := e.RecommendDeadline(testTask(4), w, workcal.AllWorking, time.UTC, start)

	assert.ErrorIs(t, err, worker.ErrInvalidDaySpan)
}
