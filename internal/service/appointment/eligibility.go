package appointment

import (
	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/company"
	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/worker"
	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/validator"
)

// ValidateAppointment runs every rule gating appointment creation and
// returns all violations together, so a client can correct every issue in
// one round trip. Read-only; the same-worker/same-task uniqueness is
// additionally enforced by database constraints at commit time.
func ValidateAppointment(task company.Task, w worker.Worker, companyID string, workerBusy, taskTaken bool) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if w.EmployerID != companyID {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker belongs to another company",
		})
	}

	if task.CompanyID != companyID {
		errs = append(errs, validator.ValidationError{
			Field:   "task_id",
			Message: "task belongs to another company",
		})
	}

	if !QualifiedFor(task, w) {
		errs = append(errs, validator.ValidationError{
			Field:   "qualification",
			Message: "worker qualification is below the task difficulty",
		})
	}

	if !FitsWeeklyHours(task, w) {
		errs = append(errs, validator.ValidationError{
			Field:   "estimate_hours",
			Message: "task estimate exceeds the worker's weekly hours",
		})
	}

	if workerBusy {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_appointed",
			Message: "worker already has an active appointment",
		})
	}

	if taskTaken {
		errs = append(errs, validator.ValidationError{
			Field:   "task_appointed",
			Message: "task already has an appointment",
		})
	}

	return errs
}

// QualifiedFor reports whether the worker's qualification tier covers the
// task difficulty.
func QualifiedFor(task company.Task, w worker.Worker) bool {
	if task.Difficulty == nil || w.Qualification == nil {
		return false
	}
	return task.Difficulty.Modifier <= w.Qualification.Modifier
}

// FitsWeeklyHours reports whether the task's nominal estimate fits the
// worker's weekly hour budget.
func FitsWeeklyHours(task company.Task, w worker.Worker) bool {
	return task.EstimateHours <= w.WorkingHours
}

// DifficultyForWorker is the ratio stored on the appointment at creation:
// task difficulty over worker qualification. Lower is easier.
func DifficultyForWorker(task company.Task, w worker.Worker) float64 {
	if task.Difficulty == nil || w.Qualification == nil || w.Qualification.Modifier == 0 {
		return 1
	}
	return float64(task.Difficulty.Modifier) / float64(w.Qualification.Modifier)
}
