package response

import (
	"errors"
	"net/http"

	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/appointment"
	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/auth"
	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/company"
	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/iot"
	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/user"
	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/voting"
	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/worker"
	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrQualificationNotFound):
		NotFound(w, "Qualification not found")
	case errors.Is(err, company.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, company.ErrTaskLocked):
		Conflict(w, "Task has an active appointment and cannot be changed")
	case errors.Is(err, company.ErrForeignQualification):
		BadRequest(w, "Qualification belongs to another company", nil)
	case errors.Is(err, company.ErrInvalidTimezone):
		BadRequest(w, "Unknown timezone identifier", nil)

	// Worker domain errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrScheduleNotFound):
		NotFound(w, "Worker schedule not found")
	case errors.Is(err, worker.ErrNoWorkingDays):
		BadRequest(w, "Worker schedule has no working days", nil)
	case errors.Is(err, worker.ErrInvalidDaySpan):
		BadRequest(w, "Daily working window must be strictly positive", nil)

	// Appointment domain errors
	case errors.Is(err, appointment.ErrAppointmentNotFound):
		NotFound(w, "Appointment not found")
	case errors.Is(err, appointment.ErrAlreadyDone):
		Conflict(w, "Task already was done")
	case errors.Is(err, appointment.ErrTaskAlreadyAppointed):
		Conflict(w, "Task already has an appointment")
	case errors.Is(err, appointment.ErrWorkerBusy):
		Conflict(w, "Worker already has an active appointment")

	// Supervisor domain errors
	case errors.Is(err, iot.ErrSupervisorNotFound):
		NotFound(w, "Supervisor not found")
	case errors.Is(err, iot.ErrSerialNumberExists):
		Conflict(w, "Serial number already registered")

	// Voting domain errors
	case errors.Is(err, voting.ErrVotingNotFound):
		NotFound(w, "Voting not found")
	case errors.Is(err, voting.ErrVotingClosed):
		Conflict(w, "Voting is closed")
	case errors.Is(err, voting.ErrAlreadyVoted):
		Conflict(w, "Worker already voted for this task")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
