package worker

import "errors"

var (
	ErrWorkerNotFound   = errors.New("worker not found")
	ErrScheduleNotFound = errors.New("worker schedule not found")

	// Domain configuration errors. Both are recoverable per-request outcomes
	// surfaced to the caller attempting an estimate, never silently looped
	// over or divided by.
	ErrNoWorkingDays   = errors.New("worker schedule has no working days")
	ErrInvalidDaySpan  = errors.New("daily working window must be strictly positive")
)
