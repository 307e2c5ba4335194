package company

import (
	"time"

	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/validator"
)

// ========================================
// QUALIFICATION DTOs
// ========================================

type QualificationRequest struct {
	Name     string `json:"name"`
	Modifier int    `json:"modifier"`
}

func (r *QualificationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.Modifier < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "modifier",
			Message: "modifier must be at least 1",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type QualificationResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Modifier int    `json:"modifier"`
}

// ========================================
// TASK DTOs
// ========================================

type TaskRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	EstimateHours int    `json:"estimate_hours"`
	DifficultyID  string `json:"difficulty_id"`
}

func (r *TaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if r.EstimateHours < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "estimate_hours",
			Message: "estimate_hours must be at least 1",
		})
	}

	if validator.IsEmpty(r.DifficultyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "difficulty_id",
			Message: "difficulty_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TaskResponse struct {
	ID             string                 `json:"id"`
	Title          string                 `json:"title"`
	Description    string                 `json:"description"`
	EstimateHours  int                    `json:"estimate_hours"`
	DifficultyInfo *QualificationResponse `json:"difficulty_info,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
}

// ========================================
// COMPANY DTOs
// ========================================

type UpdateCompanyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Timezone    string `json:"timezone"`
}

func (r *UpdateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsEmpty(r.Timezone) {
		if _, err := time.LoadLocation(r.Timezone); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "timezone",
				Message: "timezone must be a valid IANA zone identifier",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CompanyResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Timezone    string `json:"timezone"`
}
