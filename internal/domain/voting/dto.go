package voting

import "github.com/HuginnARaven/WorkerOnline-server/internal/pkg/validator"

type CreateVotingRequest struct {
	Title string `json:"title"`
}

func (r *CreateVotingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type VoteRequest struct {
	VotingID string `json:"voting_id"`
	TaskID   string `json:"task_id"`
	Score    int    `json:"score"`
}

func (r *VoteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.VotingID) {
		errs = append(errs, validator.ValidationError{
			Field:   "voting_id",
			Message: "voting_id is required",
		})
	}

	if validator.IsEmpty(r.TaskID) {
		errs = append(errs, validator.ValidationError{
			Field:   "task_id",
			Message: "task_id is required",
		})
	}

	if r.Score < 1 || r.Score > 10 {
		errs = append(errs, validator.ValidationError{
			Field:   "score",
			Message: "score must be between 1 and 10",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type VotingResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	IsActive bool   `json:"is_active"`
}

type VoteResponse struct {
	ID       string `json:"id"`
	VotingID string `json:"voting_id"`
	TaskID   string `json:"task_id"`
	Score    int    `json:"score"`
}
