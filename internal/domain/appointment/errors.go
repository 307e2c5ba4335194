package appointment

import "errors"

var (
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrAlreadyDone          = errors.New("task already was done")
	ErrTaskAlreadyAppointed = errors.New("task already has an appointment")
	ErrWorkerBusy           = errors.New("worker already has an active appointment")
)
