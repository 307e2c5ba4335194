package company

import "time"

// Company is the root aggregate for qualifications and tasks. Timezone is an
// IANA zone name; every stored UTC instant belonging to the company is
// localized through it for weekday and working-hours computation.
type Company struct {
	ID          string
	Username    string
	Email       string
	Name        string
	Description string
	Timezone    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Qualification is a company-scoped difficulty tier. A worker's qualification
// modifier must be at least a task's difficulty modifier for the worker to be
// eligible for the task.
type Qualification struct {
	ID        string
	CompanyID string
	Name      string
	Modifier  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Task is a unit of work with a nominal effort estimate at productivity 1.
// It becomes immutable once a non-terminal appointment references it.
type Task struct {
	ID            string
	CompanyID     string
	DifficultyID  string
	Title         string
	Description   string
	EstimateHours int
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined
	Difficulty *Qualification
}
