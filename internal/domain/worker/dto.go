package worker

import (
	"time"

	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/validator"
)

// ========================================
// WORKER DTOs
// ========================================

type CreateWorkerRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	Password2       string `json:"password2"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	QualificationID string `json:"qualification_id"`
	WorkingHours    int    `json:"working_hours"`
	Salary          int    `json:"salary"`
	DayStart        string `json:"day_start"` // "HH:MM"
	DayEnd          string `json:"day_end"`
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid address",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if r.Password != r.Password2 {
		errs = append(errs, validator.ValidationError{
			Field:   "password2",
			Message: "passwords do not match",
		})
	}

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}

	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}

	if validator.IsEmpty(r.QualificationID) {
		errs = append(errs, validator.ValidationError{
			Field:   "qualification_id",
			Message: "qualification_id is required",
		})
	}

	if r.WorkingHours < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "working_hours",
			Message: "working_hours must be at least 1",
		})
	}

	dayStart, okStart := validator.IsValidClock(r.DayStart)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "day_start",
			Message: "day_start must be in HH:MM format",
		})
	}
	dayEnd, okEnd := validator.IsValidClock(r.DayEnd)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "day_end",
			Message: "day_end must be in HH:MM format",
		})
	}
	if okStart && okEnd && dayEnd <= dayStart {
		errs = append(errs, validator.ValidationError{
			Field:   "day_end",
			Message: "day_end must be after day_start",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateWorkerRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	QualificationID string `json:"qualification_id"`
	WorkingHours    int    `json:"working_hours"`
	Salary          int    `json:"salary"`
	DayStart        string `json:"day_start"`
	DayEnd          string `json:"day_end"`
}

func (r *UpdateWorkerRequest) Validate() error {
	full := CreateWorkerRequest{
		Username:        "-",
		Email:           "ignored@placeholder.local",
		Password:        "placeholder",
		Password2:       "placeholder",
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		QualificationID: r.QualificationID,
		WorkingHours:    r.WorkingHours,
		Salary:          r.Salary,
		DayStart:        r.DayStart,
		DayEnd:          r.DayEnd,
	}
	return full.Validate()
}

type WorkerResponse struct {
	ID                string  `json:"id"`
	Username          string  `json:"username"`
	Email             string  `json:"email"`
	FirstName         string  `json:"first_name"`
	LastName          string  `json:"last_name"`
	QualificationID   string  `json:"qualification_id"`
	QualificationName string  `json:"qualification_name,omitempty"`
	WorkingHours      int     `json:"working_hours"`
	Productivity      float64 `json:"productivity"`
	Salary            int     `json:"salary"`
	DayStart          string  `json:"day_start"`
	DayEnd            string  `json:"day_end"`
}

// ========================================
// SCHEDULE DTOs
// ========================================

type ScheduleRequest struct {
	Monday    bool `json:"monday"`
	Tuesday   bool `json:"tuesday"`
	Wednesday bool `json:"wednesday"`
	Thursday  bool `json:"thursday"`
	Friday    bool `json:"friday"`
	Saturday  bool `json:"saturday"`
	Sunday    bool `json:"sunday"`
}

type ScheduleResponse struct {
	WorkerID  string `json:"worker_id"`
	Monday    bool   `json:"monday"`
	Tuesday   bool   `json:"tuesday"`
	Wednesday bool   `json:"wednesday"`
	Thursday  bool   `json:"thursday"`
	Friday    bool   `json:"friday"`
	Saturday  bool   `json:"saturday"`
	Sunday    bool   `json:"sunday"`
}

// ========================================
// LOG DTOs
// ========================================

type LogFilter struct {
	WorkerID string
	Type     string
	From     *time.Time
	To       *time.Time
	Page     int
	Limit    int
}

func (f *LogFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Type != "" && !validator.IsInSlice(f.Type, LogTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "unknown log type",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LogResponse struct {
	ID          string    `json:"id"`
	WorkerID    string    `json:"worker_id"`
	TaskID      string    `json:"task_id,omitempty"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// ========================================
// REPORT DTOs
// ========================================

// Report aggregates a worker's historical outcomes for the employer.
type Report struct {
	WorkerID          string  `json:"worker_id"`
	Username          string  `json:"username"`
	Productivity      float64 `json:"productivity"`
	TasksDone         int     `json:"tasks_done"`
	TasksActive       int     `json:"tasks_active"`
	AvgDifficulty     float64 `json:"avg_difficulty_for_worker"`
	HoursEstimateDone int     `json:"hours_estimate_done"`
}
