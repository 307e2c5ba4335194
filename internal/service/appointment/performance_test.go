package appointment

import (
	"testing"
	"time"

	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/appointment"
	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/worker"
	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/workcal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doneAppointment(start, end time.Time) appointment.Appointment {
	return appointment.Appointment{
		ID:        "a-1",
		TaskID:    "t-1",
		WorkerID:  "w-1",
		IsDone:    true,
		TimeStart: start,
		TimeEnd:   &end,
	}
}

func TestPerformanceEvaluator_SameDayOnTarget(t *testing.T) {
	t.Parallel()
	e := NewPerformanceEvaluator()

	// 4h task finished in exactly 4h inside the daily window.
	app := doneAppointment(
		time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 2, 13, 0, 0, 0, time.UTC),
	)
	w := testWorker(1.0, 9*time.Hour, 17*time.Hour)

	perf, err := e.TaskPerformance(app, testTask(4), w, workcal.AllWorking, time.UTC)

	require.NoError(t, err)
	assert.Equal(t, 1.0, perf)
}

func TestPerformanceEvaluator_SameDayFasterThanEstimate(t *testing.T) {
	t.Parallel()
	e := NewPerformanceEvaluator()

	// 8h task finished in 4h reads as 2.0.
	app := doneAppointment(
		time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 2, 13, 0, 0, 0, time.UTC),
	)
	w := testWorker(1.0, 9*time.Hour, 17*time.Hour)

	perf, err := e.TaskPerformance(app, testTask(8), w, workcal.AllWorking, time.UTC)

	require.NoError(t, err)
	assert.Equal(t, 2.0, perf)
}

func TestPerformanceEvaluator_MultiDayRemovesNonWorkingHours(t *testing.T) {
	t.Parallel()
	e := NewPerformanceEvaluator()

	// Tuesday 09:00 to Wednesday 17:00 is 32 wall hours; removing the 16
	// non-working hours of the crossed day leaves two full 8h windows.
	app := doneAppointment(
		time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 3, 17, 0, 0, 0, time.UTC),
	)
	w := testWorker(1.0, 9*time.Hour, 17*time.Hour)

	perf, err := e.TaskPerformance(app, testTask(16), w, workcal.AllWorking, time.UTC)

	require.NoError(t, err)
	assert.Equal(t, 1.0, perf)
}

func TestPerformanceEvaluator_FullDayOffDiscounted(t *testing.T) {
	t.Parallel()
	e := NewPerformanceEvaluator()

	// Tuesday 09:00 to Thursday 17:00 with Wednesday off: the day off
	// contributes nothing, leaving the same two 8h windows.
	app := doneAppointment(
		time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 4, 17, 0, 0, 0, time.UTC),
	)
	w := testWorker(1.0, 9*time.Hour, 17*time.Hour)
	week := workcal.AllWorking
	week[2] = false // Wednesday

	perf, err := e.TaskPerformance(app, testTask(16), w, week, time.UTC)

	require.NoError(t, err)
	assert.Equal(t, 1.0, perf)
}

func TestPerformanceEvaluator_FinalDayOffPartialDiscount(t *testing.T) {
	t.Parallel()
	e := NewPerformanceEvaluator()

	// Friday 09:00 to Saturday 13:00 with Saturday off: the 4h worked on
	// the off day are discounted, leaving one 8h Friday window.
	app := doneAppointment(
		time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 6, 13, 0, 0, 0, time.UTC),
	)
	w := testWorker(1.0, 9*time.Hour, 17*time.Hour)
	week := workcal.Week{true, true, true, true, true, false, true}

	perf, err := e.TaskPerformance(app, testTask(8), w, week, time.UTC)

	require.NoError(t, err)
	assert.Equal(t, 1.0, perf)
}

func TestPerformanceEvaluator_OvertimeRemoved(t *testing.T) {
	t.Parallel()
	e := NewPerformanceEvaluator()

	// Finishing two hours past the window end does not count as extra
	// effort: 09:00 to 19:00 reads as one 8h window.
	app := doneAppointment(
		time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 2, 19, 0, 0, 0, time.UTC),
	)
	w := testWorker(1.0, 9*time.Hour, 17*time.Hour)

	perf, err := e.TaskPerformance(app, testTask(8), w, workcal.AllWorking, time.UTC)

	require.NoError(t, err)
	assert.Equal(t, 1.0, perf)
}

func TestPerformanceEvaluator_NotDoneReturnsProductivity(t *testing.T) {
	t.Parallel()
	e := NewPerformanceEvaluator()

	app := appointment.Appointment{
		ID:        "a-1",
		TaskID:    "t-1",
		WorkerID:  "w-1",
		TimeStart: time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC),
	}
	w := testWorker(1.25, 9*time.Hour, 17*time.Hour)

	perf, err := e.TaskPerformance(app, testTask(8), w, workcal.AllWorking, time.UTC)

	require.NoError(t, err)
	assert.Equal(t, 1.25, perf)
}

func TestPerformanceEvaluator_NonPositiveAdjustedFallsBack(t *testing.T) {
	t.Parallel()
	e := NewPerformanceEvaluator()

	// Instant completion leaves no measurable effort.
	instant := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	app := doneAppointment(instant, instant)
	w := testWorker(0.8, 9*time.Hour, 17*time.Hour)

	perf, err := e.TaskPerformance(app, testTask(8), w, workcal.AllWorking, time.UTC)

	require.NoError(t, err)
	assert.Equal(t, 0.8, perf)
}

func TestPerformanceEvaluator_NoWorkingDays(t *testing.T) {
	t.Parallel()
	e := NewPerformanceEvaluator()

	app := doneAppointment(
		time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 2, 13, 0, 0, 0, time.UTC),
	)
	w := testWorker(1.0, 9*time.Hour, 17*time.Hour)

	_, err := e.TaskPerformance(app, testTask(4), w, workcal.Week{}, time.UTC)

	assert.ErrorIs(t, err, worker.ErrNoWorkingDays)
}

func TestPerformanceEvaluator_InvalidDaySpan(t *testing.T) {
	t.Parallel()
	e := NewPerformanceEvaluator()

	app := doneAppointment(
		time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 2, 13, 0, 0, 0, time.UTC),
	)
	w := testWorker(1.0, 9*time.Hour, 9*time.Hour)

	_, err := e.TaskPerformance(app, testTask(4), w, workcal.AllWorking, time.UTC)

	assert.ErrorIs(t, err, worker.ErrInvalidDaySpan)
}

func TestBlendProductivity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.75, BlendProductivity(1.0, 0.5))
	assert.Equal(t, 1.0, BlendProductivity(1.0, 1.0))
	assert.Equal(t, 1.25, BlendProductivity(1.0, 1.5))
}

func TestBlendProductivity_RoundsHalfUpToFourPlaces(t *testing.T) {
	t.Parallel()

	// (0.3333 + 0.3334) / 2 = 0.33335 rounds up at the fourth place.
	assert.Equal(t, 0.3334, BlendProductivity(0.3333, 0.3334))
	assert.Equal(t, 0.6667, BlendProductivity(1.0, 0.3333))
}