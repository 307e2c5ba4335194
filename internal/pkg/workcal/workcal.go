// Package workcal evaluates worker weekly schedules against calendar instants.
// All decisions are made on the wall clock of the employer's timezone.
package workcal

import "time"

// Week holds the seven working-day flags of a worker schedule,
// Monday first. A false flag marks the weekday as a day off.
type Week [7]bool

// AllWorking is the default schedule a worker is created with.
var AllWorking = Week{true, true, true, true, true, true, true}

// WeekdayIndex maps time.Weekday to the Monday=0..Sunday=6 convention
// used by worker schedules.
func WeekdayIndex(d time.Weekday) int {
	if d == time.Sunday {
		return 6
	}
	return int(d) - 1
}

// IsDayOff reports whether the instant falls on a non-working day of the
// schedule, evaluated in loc. Pure function of its inputs.
func IsDayOff(t time.Time, week Week, loc *time.Location) bool {
	local := t.In(loc)
	return !week[WeekdayIndex(local.Weekday())]
}

// HasWorkingDay reports whether at least one weekday is flagged as working.
// A schedule without any working day cannot be used for deadline or
// performance evaluation.
func (w Week) HasWorkingDay() bool {
	for _, ok := range w {
		if ok {
			return true
		}
	}
	return false
}
