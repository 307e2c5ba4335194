package appointment

import (
	"time"

	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/appointment"
	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/company"
	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/worker"
	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/workcal"
	"github.com/shopspring/decimal"
)

// PerformanceEvaluator measures how many nominal estimate hours a completed
// appointment produced per actual hour worked, after removing time outside
// the worker's daily window, full days off and overtime. Pure.
type PerformanceEvaluator struct{}

func NewPerformanceEvaluator() *PerformanceEvaluator {
	return &PerformanceEvaluator{}
}

// TaskPerformance computes the performance ratio of the appointment. For an
// appointment that is not done yet it returns the worker's current
// productivity unchanged, a neutral value rather than a measurement.
//
// Day-off handling: every full day off in [start date, end date) removes 24h
// from the span and reduces the day count used for the per-day non-working
// correction. The final calendar day, when itself a day off, is instead
// discounted by the start-to-end time-of-day portion worked on it.
func (e *PerformanceEvaluator) TaskPerformance(app appointment.Appointment, task company.Task, w worker.Worker, week workcal.Week, loc *time.Location) (float64, error) {
	if !app.IsDone || app.TimeEnd == nil {
		return w.Productivity, nil
	}

	if !week.HasWorkingDay() {
		return 0, worker.ErrNoWorkingDays
	}

	span := w.DailySpan()
	if span <= 0 {
		return 0, worker.ErrInvalidDaySpan
	}

	start := app.TimeStart.In(loc)
	end := app.TimeEnd.In(loc)

	total := end.Sub(start)

	startDay := midnight(start)
	endDay := midnight(end)
	startTOD := start.Sub(startDay)
	endTOD := end.Sub(endDay)

	transitions := 0
	daysOff := 0
	for d := startDay; d.Before(endDay); d = d.AddDate(0, 0, 1) {
		transitions++
		if workcal.IsDayOff(d, week, loc) {
			total -= 24 * time.Hour
			daysOff++
		}
	}

	// Partial final day worked on a day nominally off.
	if workcal.IsDayOff(endDay, week, loc) {
		total -= endTOD - startTOD
	}

	if transitions > 0 {
		// Remove the non-working portion of every normal day crossed.
		workerTimediff := 24*time.Hour - span
		daysOnTask := transitions - daysOff
		total -= workerTimediff * time.Duration(daysOnTask)
		if endTOD > w.DayEnd {
			total -= endTOD - w.DayEnd
		}
	} else if endTOD > w.DayEnd {
		total -= endTOD - w.DayEnd
	}

	adjustedHours := total.Hours()
	if adjustedHours <= 0 {
		return w.Productivity, nil
	}

	return float64(task.EstimateHours) / adjustedHours, nil
}

// BlendProductivity folds a freshly measured performance into the worker's
// rolling productivity: round((old + performance) / 2, 4), half up.
func BlendProductivity(old, performance float64) float64 {
	blended := decimal.NewFromFloat(old).
		Add(decimal.NewFromFloat(performance)).
		Div(decimal.NewFromInt(2)).
		Round(4)
	f, _ := blended.Float64()
	return f
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
