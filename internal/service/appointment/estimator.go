package appointment

import (
	"math"
	"time"

	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/company"
	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/worker"
	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/workcal"
)

// DeadlineEstimator turns a task's nominal estimate into a calendar deadline
// for one worker, honoring the worker's productivity, daily window and
// weekly schedule. Pure; all instants are handled in the employer timezone
// and returned in UTC.
type DeadlineEstimator struct{}

func NewDeadlineEstimator() *DeadlineEstimator {
	return &DeadlineEstimator{}
}

// RecommendDeadline computes the recommended completion instant for the task
// when started by the worker at start.
//
// The nominal effort is estimate_hours scaled by the worker's productivity,
// spread over the worker's daily window to get a working-day count. Each day
// off among the working days pushes the finish one calendar day later. The
// walk covers the original working days only; pushed-out days are not
// re-examined.
func (e *DeadlineEstimator) RecommendDeadline(task company.Task, w worker.Worker, week workcal.Week, loc *time.Location, start time.Time) (time.Time, error) {
	if !week.HasWorkingDay() {
		return time.Time{}, worker.ErrNoWorkingDays
	}

	span := w.DailySpan()
	if span <= 0 {
		return time.Time{}, worker.ErrInvalidDaySpan
	}

	nominalHours := float64(task.EstimateHours) * w.Productivity
	daysNeeded := int(math.Ceil(nominalHours / span.Hours()))
	if daysNeeded < 1 {
		daysNeeded = 1
	}

	daysOff := 0
	for i := 0; i < daysNeeded; i++ {
		if workcal.IsDayOff(start.AddDate(0, 0, i), week, loc) {
			daysOff++
		}
	}

	return start.AddDate(0, 0, daysNeeded+daysOff).UTC(), nil
}
