package assignment

// Pair is one task-to-worker decision of a planning run.
type Pair struct {
	TaskID   string `json:"task_id"`
	Title    string `json:"title"`
	WorkerID string `json:"worker_id"`
	Username string `json:"username"`
}

// Step snapshots the cumulative assignment list after one decision. Each
// step's list is a superset of the prior step's.
type Step struct {
	Assigned []Pair `json:"appointed_tasks"`
}

// Plan is the outcome of one greedy planning run. Committed reports whether
// the appointments were actually created or the run was a dry run.
type Plan struct {
	Assigned  []Pair `json:"assigned"`
	Steps     []Step `json:"steps"`
	Committed bool   `json:"committed"`
}
