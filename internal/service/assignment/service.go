package assignment

import (
	"context"
	"log/slog"

	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/appointment"
	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/assignment"
	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/company"
	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/worker"
	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/metrics"
)

type AssignmentServiceImpl struct {
	company.TaskRepository
	worker.WorkerRepository
	appointment.AppointmentRepository
	appointments appointment.AppointmentService
	logger       *slog.Logger
}

func NewAssignmentService(
	taskRepository company.TaskRepository,
	workerRepository worker.WorkerRepository,
	appointmentRepository appointment.AppointmentRepository,
	appointmentService appointment.AppointmentService,
	logger *slog.Logger,
) assignment.AssignmentService {
	return &AssignmentServiceImpl{
		TaskRepository:        taskRepository,
		WorkerRepository:      workerRepository,
		AppointmentRepository: appointmentRepository,
		appointments:          appointmentService,
		logger:                logger,
	}
}

// Plan implements assignment.AssignmentService. With commit true every
// pairing is created through the appointment service, so each one gets its
// estimated deadline, audit entry and race protection; a pairing lost to a
// concurrent manual appointment is dropped from the reported plan rather
// than failing the whole run.
func (s *AssignmentServiceImpl) Plan(ctx context.Context, companyID string, commit bool) (assignment.Plan, error) {
	tasks, err := s.TaskRepository.ListUnassigned(ctx, companyID)
	if err != nil {
		return assignment.Plan{}, err
	}
	ranked, err := s.WorkerRepository.ListRanked(ctx, companyID)
	if err != nil {
		return assignment.Plan{}, err
	}
	busy, err := s.AppointmentRepository.ActiveWorkerIDs(ctx, companyID)
	if err != nil {
		return assignment.Plan{}, err
	}

	plan := PlanGreedy(tasks, ranked, busy)

	mode := "dry_run"
	if commit {
		mode = "commit"
	}
	metrics.AssignmentRunsTotal.WithLabelValues(mode).Inc()
	metrics.TasksAssignedTotal.Add(float64(len(plan.Assigned)))
	metrics.TasksUnassignedTotal.Add(float64(len(tasks) - len(plan.Assigned)))

	if !commit {
		return plan, nil
	}

	committed := plan.Assigned[:0:0]
	for _, pair := range plan.Assigned {
		_, err := s.appointments.Create(ctx, companyID, appointment.CreateAppointmentRequest{
			TaskID:   pair.TaskID,
			WorkerID: pair.WorkerID,
		})
		if err != nil {
			s.logger.WarnContext(ctx, "planned pairing not committed",
				"task_id", pair.TaskID, "worker_id", pair.WorkerID, "error", err)
			continue
		}
		committed = append(committed, pair)
	}
	plan.Assigned = committed
	plan.Committed = true

	s.logger.InfoContext(ctx, "assignment run committed",
		"company_id", companyID, "assigned", len(plan.Assigned), "tasks", len(tasks))

	return plan, nil
}
