package appointment

import "context"

type AppointmentRepository interface {
	// Create inserts the appointment. The task uniqueness and the
	// one-active-per-worker invariants are enforced by database constraints;
	// constraint violations surface as ErrTaskAlreadyAppointed and
	// ErrWorkerBusy so a lost race reads like a failed validation.
	Create(ctx context.Context, a Appointment) (Appointment, error)
	GetByID(ctx context.Context, id string) (Appointment, error)
	GetByTaskID(ctx context.Context, taskID string) (Appointment, error)
	ListByCompany(ctx context.Context, companyID string, isDone *bool) ([]Appointment, error)
	ListByWorker(ctx context.Context, workerID string, isDone *bool) ([]Appointment, error)
	// GetActiveByWorker returns the worker's single not-done appointment.
	GetActiveByWorker(ctx context.Context, workerID string) (Appointment, error)
	// ActiveWorkerIDs returns the set of workers with a not-done appointment
	// for the company, used by the assignment engine's busy check.
	ActiveWorkerIDs(ctx context.Context, companyID string) (map[string]bool, error)
	// MarkDone performs the conditional is_done false->true transition and
	// stamps time_end. It affects no row when the appointment is already
	// done, which gates the productivity update against double-processing.
	MarkDone(ctx context.Context, id, workerID string) (Appointment, error)
	UpdateStatus(ctx context.Context, id, workerID, status string) (Appointment, error)
}
