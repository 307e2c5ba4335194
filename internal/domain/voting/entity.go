package voting

import "time"

// Voting is a company-opened poll over its unappointed tasks. Workers score
// tasks; the company reads the aggregated result.
type Voting struct {
	ID        string
	CompanyID string
	Title     string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Vote is one worker's score for one task within one voting. A worker votes
// at most once per task per voting.
type Vote struct {
	ID        string
	VotingID  string
	TaskID    string
	WorkerID  string
	Score     int
	CreatedAt time.Time
}

// TaskResult is the aggregation of all votes for a task within a voting.
type TaskResult struct {
	TaskID     string  `json:"task_id"`
	Title      string  `json:"title"`
	VoteCount  int     `json:"vote_count"`
	TotalScore int     `json:"total_score"`
	AvgScore   float64 `json:"avg_score"`
}
