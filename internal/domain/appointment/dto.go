package appointment

import (
	"time"

	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/validator"
)

type CreateAppointmentRequest struct {
	TaskID   string `json:"task_id"`
	WorkerID string `json:"worker_id"`
	// Deadline is optional; when absent the deadline estimator supplies it
	// from the current instant.
	Deadline *time.Time `json:"deadline,omitempty"`
}

func (r *CreateAppointmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TaskID) {
		errs = append(errs, validator.ValidationError{
			Field:   "task_id",
			Message: "task_id is required",
		})
	}

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Status) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AppointmentResponse struct {
	ID                  string     `json:"id"`
	TaskID              string     `json:"task_id"`
	TaskTitle           string     `json:"task_title,omitempty"`
	WorkerID            string     `json:"worker_id"`
	IsDone              bool       `json:"is_done"`
	DifficultyForWorker float64    `json:"difficulty_for_worker"`
	TimeStart           time.Time  `json:"time_start"`
	TimeEnd             *time.Time `json:"time_end,omitempty"`
	Deadline            time.Time  `json:"deadline"`
	Status              string     `json:"status"`
}

// RecommendedWorker is one eligible candidate for an unassigned task,
// reported in ranking order.
type RecommendedWorker struct {
	WorkerID     string  `json:"worker_id"`
	Username     string  `json:"username"`
	Productivity float64 `json:"productivity"`
	Modifier     int     `json:"qualification_modifier"`
	WorkingHours int     `json:"working_hours"`
}

// TaskRecommendation pairs an unassigned task with its eligible workers.
// An empty candidate list is a normal outcome, not an error.
type TaskRecommendation struct {
	TaskID  string              `json:"task_id"`
	Title   string              `json:"title"`
	Workers []RecommendedWorker `json:"recommended_workers"`
}
