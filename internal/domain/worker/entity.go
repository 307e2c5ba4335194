package worker

import (
	"time"

	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/company"
	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/workcal"
)

// Worker is a hired account scoped to one employer. DayStart and DayEnd are
// wall-clock times interpreted in the employer's timezone; Productivity is a
// rolling multiplier updated after each completed task.
type Worker struct {
	ID              string
	EmployerID      string
	QualificationID string
	Username        string
	Email           string
	FirstName       string
	LastName        string
	WorkingHours    int
	Productivity    float64
	Salary          int
	DayStart        time.Duration // offset from local midnight
	DayEnd          time.Duration
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined
	Qualification *company.Qualification
}

// DailySpan is the length of the worker's declared daily working window.
// Must be strictly positive for deadline and performance evaluation.
func (w *Worker) DailySpan() time.Duration {
	return w.DayEnd - w.DayStart
}

// Schedule carries the seven working-day flags of one worker, created with
// the worker and removed with it. All days default to working.
type Schedule struct {
	ID        string
	WorkerID  string
	Monday    bool
	Tuesday   bool
	Wednesday bool
	Thursday  bool
	Friday    bool
	Saturday  bool
	Sunday    bool
}

// Week flattens the flags into the Monday-first form the calendar
// evaluator consumes.
func (s Schedule) Week() workcal.Week {
	return workcal.Week{s.Monday, s.Tuesday, s.Wednesday, s.Thursday, s.Friday, s.Saturday, s.Sunday}
}

// DefaultSchedule is the schedule a worker is created with.
func DefaultSchedule(workerID string) Schedule {
	return Schedule{
		WorkerID:  workerID,
		Monday:    true,
		Tuesday:   true,
		Wednesday: true,
		Thursday:  true,
		Friday:    true,
		Saturday:  true,
		Sunday:    true,
	}
}

// LogType enumerates the append-only audit trail event kinds.
type LogType string

const (
	LogTaskAppointed  LogType = "TA"
	LogTaskDone       LogType = "TD"
	LogStatusChanged  LogType = "TC"
	LogOutOfPlace     LogType = "OP"
	LogSupervisorLost LogType = "SL"
	LogCustom         LogType = "CU"
)

var LogTypeValues = []string{
	string(LogTaskAppointed),
	string(LogTaskDone),
	string(LogStatusChanged),
	string(LogOutOfPlace),
	string(LogSupervisorLost),
	string(LogCustom),
}

// Log is one immutable audit entry. Entries are only ever created as side
// effects of appointment and supervisor lifecycle events.
type Log struct {
	ID          string
	WorkerID    string
	TaskID      string
	Type        LogType
	Description string
	CreatedAt   time.Time
}
