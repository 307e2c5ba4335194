package appointment

import "time"

// Appointment binds one task to one worker. A task can have at most one
// appointment ever; a worker can have at most one active (not done)
// appointment at a time. Both invariants are also enforced at the storage
// layer because the validation pass and the create are not atomic with
// respect to concurrent requests.
type Appointment struct {
	ID       string
	TaskID   string
	WorkerID string

	// IsDone transitions exactly once from false to true. TimeEnd is nil
	// until that transition.
	IsDone bool

	// DifficultyForWorker is task.difficulty.modifier over
	// worker.qualification.modifier, computed at creation. Lower is easier.
	DifficultyForWorker float64

	TimeStart time.Time
	TimeEnd   *time.Time
	Deadline  time.Time

	// Status is a free-form worker-settable label.
	Status string

	CreatedAt time.Time
	UpdatedAt time.Time
}
