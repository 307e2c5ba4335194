package postgresql

import (
	"context"
	"fmt"

	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/worker"
	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) *reportRepositoryImpl {
	return &reportRepositoryImpl{db: db}
}

// WorkerReports aggregates appointment outcomes per worker of one employer.
func (r *reportRepositoryImpl) WorkerReports(ctx context.Context, employerID string) ([]worker.Report, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT w.id, u.username, w.productivity,
		       COUNT(a.id) FILTER (WHERE a.is_done),
		       COUNT(a.id) FILTER (WHERE NOT a.is_done),
		       COALESCE(AVG(a.difficulty_for_worker), 0),
		       COALESCE(SUM(t.estimate_hours) FILTER (WHERE a.is_done), 0)
		FROM workers w
		JOIN users u ON u.id = w.id
		LEFT JOIN task_appointments a ON a.worker_id = w.id
		LEFT JOIN tasks t ON t.id = a.task_id
		WHERE w.employer_id = $1
		GROUP BY w.id, u.username, w.productivity
		ORDER BY u.username, w.id
	`

	rows, err := q.Query(ctx, query, employerID)
	if err != nil {
		return nil, fmt.Errorf("failed to build worker reports: %w", err)
	}
	defer rows.Close()

	var result []worker.Report
	for rows.Next() {
		var rep worker.Report
		err := rows.Scan(
			&rep.WorkerID, &rep.Username, &rep.Productivity,
			&rep.TasksDone, &rep.TasksActive, &rep.AvgDifficulty, &rep.HoursEstimateDone,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan worker report: %w", err)
		}
		result = append(result, rep)
	}
	return result, rows.Err()
}
