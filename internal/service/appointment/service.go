package appointment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/appointment"
	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/company"
	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/worker"
	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/database"
	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/metrics"
	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/sse"
	"github.com/HuginnARaven/WorkerOnline-server/internal/repository/postgresql"
)

type AppointmentServiceImpl struct {
	db *database.DB
	appointment.AppointmentRepository
	company.TaskRepository
	company.CompanyRepository
	worker.WorkerRepository
	worker.ScheduleRepository
	worker.LogRepository
	estimator *DeadlineEstimator
	evaluator *PerformanceEvaluator
	hub       *sse.Hub
	logger    *slog.Logger
	now       func() time.Time
}

func NewAppointmentService(
	db *database.DB,
	appointmentRepository appointment.AppointmentRepository,
	taskRepository company.TaskRepository,
	companyRepository company.CompanyRepository,
	workerRepository worker.WorkerRepository,
	scheduleRepository worker.ScheduleRepository,
	logRepository worker.LogRepository,
	hub *sse.Hub,
	logger *slog.Logger,
) appointment.AppointmentService {
	return &AppointmentServiceImpl{
		db:                    db,
		AppointmentRepository: appointmentRepository,
		TaskRepository:        taskRepository,
		CompanyRepository:     companyRepository,
		WorkerRepository:      workerRepository,
		ScheduleRepository:    scheduleRepository,
		LogRepository:         logRepository,
		estimator:             NewDeadlineEstimator(),
		evaluator:             NewPerformanceEvaluator(),
		hub:                   hub,
		logger:                logger,
		now:                   time.Now,
	}
}

func toAppointmentResponse(a appointment.Appointment, taskTitle string) appointment.AppointmentResponse {
	return appointment.AppointmentResponse{
		ID:                  a.ID,
		TaskID:              a.TaskID,
		TaskTitle:           taskTitle,
		WorkerID:            a.WorkerID,
		IsDone:              a.IsDone,
		DifficultyForWorker: a.DifficultyForWorker,
		TimeStart:           a.TimeStart,
		TimeEnd:             a.TimeEnd,
		Deadline:            a.Deadline,
		Status:              a.Status,
	}
}

// location resolves the company timezone, falling back to UTC when the
// stored identifier cannot be loaded.
func (s *AppointmentServiceImpl) location(ctx context.Context, companyID string) *time.Location {
	tz, err := s.CompanyRepository.GetTimezone(ctx, companyID)
	if err != nil {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (s *AppointmentServiceImpl) week(ctx context.Context, workerID string) (worker.Schedule, error) {
	sched, err := s.ScheduleRepository.GetByWorkerID(ctx, workerID)
	if err != nil {
		if errors.Is(err, worker.ErrScheduleNotFound) {
			return worker.DefaultSchedule(workerID), nil
		}
		return worker.Schedule{}, err
	}
	return sched, nil
}

func (s *AppointmentServiceImpl) publishLog(companyID string, l worker.Log) {
	s.hub.Publish(companyID, sse.Event{
		CompanyID: companyID,
		Event:     "worker-log",
		Data: worker.LogResponse{
			ID:          l.ID,
			WorkerID:    l.WorkerID,
			TaskID:      l.TaskID,
			Type:        string(l.Type),
			Description: l.Description,
			CreatedAt:   l.CreatedAt,
		},
	})
}

// Create implements appointment.AppointmentService.
func (s *AppointmentServiceImpl) Create(ctx context.Context, companyID string, req appointment.CreateAppointmentRequest) (appointment.AppointmentResponse, error) {
	if err := req.Validate(); err != nil {
		return appointment.AppointmentResponse{}, err
	}

	task, err := s.TaskRepository.GetByID(ctx, req.TaskID, companyID)
	if err != nil {
		return appointment.AppointmentResponse{}, err
	}
	w, err := s.WorkerRepository.GetByID(ctx, req.WorkerID, companyID)
	if err != nil {
		return appointment.AppointmentResponse{}, err
	}

	workerBusy := true
	if _, err := s.AppointmentRepository.GetActiveByWorker(ctx, req.WorkerID); err != nil {
		if !errors.Is(err, appointment.ErrAppointmentNotFound) {
			return appointment.AppointmentResponse{}, err
		}
		workerBusy = false
	}

	taskTaken := true
	if _, err := s.AppointmentRepository.GetByTaskID(ctx, req.TaskID); err != nil {
		if !errors.Is(err, appointment.ErrAppointmentNotFound) {
			return appointment.AppointmentResponse{}, err
		}
		taskTaken = false
	}

	if errs := ValidateAppointment(task, w, companyID, workerBusy, taskTaken); len(errs) > 0 {
		return appointment.AppointmentResponse{}, errs
	}

	sched, err := s.week(ctx, w.ID)
	if err != nil {
		return appointment.AppointmentResponse{}, err
	}
	loc := s.location(ctx, companyID)

	start := s.now().UTC()
	deadline := start
	if req.Deadline != nil {
		deadline = req.Deadline.UTC()
	} else {
		deadline, err = s.estimator.RecommendDeadline(task, w, sched.Week(), loc, start)
		if err != nil {
			return appointment.AppointmentResponse{}, err
		}
	}

	var created appointment.Appointment
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		created, err = s.AppointmentRepository.Create(txCtx, appointment.Appointment{
			TaskID:              req.TaskID,
			WorkerID:            req.WorkerID,
			DifficultyForWorker: DifficultyForWorker(task, w),
			TimeStart:           start,
			Deadline:            deadline,
		})
		if err != nil {
			return err
		}

		l, err := s.LogRepository.Create(txCtx, worker.Log{
			WorkerID:    req.WorkerID,
			TaskID:      req.TaskID,
			Type:        worker.LogTaskAppointed,
			Description: fmt.Sprintf("task %q appointed", task.Title),
		})
		if err != nil {
			return err
		}
		s.publishLog(companyID, l)
		return nil
	})
	if err != nil {
		return appointment.AppointmentResponse{}, err
	}

	metrics.AppointmentsCreatedTotal.Inc()
	s.logger.InfoContext(ctx, "appointment created",
		"appointment_id", created.ID, "task_id", created.TaskID, "worker_id", created.WorkerID)

	return toAppointmentResponse(created, task.Title), nil
}

// Get implements appointment.AppointmentService.
func (s *AppointmentServiceImpl) Get(ctx context.Context, companyID, id string) (appointment.AppointmentResponse, error) {
	a, err := s.AppointmentRepository.GetByID(ctx, id)
	if err != nil {
		return appointment.AppointmentResponse{}, err
	}

	task, err := s.TaskRepository.GetByID(ctx, a.TaskID, companyID)
	if err != nil {
		// Tenant mismatch reads as absence.
		return appointment.AppointmentResponse{}, appointment.ErrAppointmentNotFound
	}

	return toAppointmentResponse(a, task.Title), nil
}

// List implements appointment.AppointmentService.
func (s *AppointmentServiceImpl) List(ctx context.Context, companyID string, isDone *bool) ([]appointment.AppointmentResponse, error) {
	as, err := s.AppointmentRepository.ListByCompany(ctx, companyID, isDone)
	if err != nil {
		return nil, err
	}
	result := make([]appointment.AppointmentResponse, 0, len(as))
	for _, a := range as {
		result = append(result, toAppointmentResponse(a, ""))
	}
	return result, nil
}

// ListMine implements appointment.AppointmentService.
func (s *AppointmentServiceImpl) ListMine(ctx context.Context, workerID string, isDone *bool) ([]appointment.AppointmentResponse, error) {
	as, err := s.AppointmentRepository.ListByWorker(ctx, workerID, isDone)
	if err != nil {
		return nil, err
	}
	result := make([]appointment.AppointmentResponse, 0, len(as))
	for _, a := range as {
		result = append(result, toAppointmentResponse(a, ""))
	}
	return result, nil
}

// MarkDone implements appointment.AppointmentService. The done transition,
// the performance measurement and the productivity update commit together;
// the conditional update in the repository guarantees the worker's
// productivity is blended at most once per appointment.
func (s *AppointmentServiceImpl) MarkDone(ctx context.Context, workerID, id string) (appointment.AppointmentResponse, error) {
	w, err := s.WorkerRepository.GetByUserID(ctx, workerID)
	if err != nil {
		return appointment.AppointmentResponse{}, err
	}

	sched, err := s.week(ctx, workerID)
	if err != nil {
		return appointment.AppointmentResponse{}, err
	}
	loc := s.location(ctx, w.EmployerID)

	var done appointment.Appointment
	var task company.Task
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		done, err = s.AppointmentRepository.MarkDone(txCtx, id, workerID)
		if err != nil {
			return err
		}

		task, err = s.TaskRepository.GetByID(txCtx, done.TaskID, w.EmployerID)
		if err != nil {
			return err
		}

		performance, err := s.evaluator.TaskPerformance(done, task, w, sched.Week(), loc)
		if err != nil {
			return err
		}
		metrics.TaskPerformance.Observe(performance)

		newProductivity := BlendProductivity(w.Productivity, performance)
		if err := s.WorkerRepository.UpdateProductivity(txCtx, workerID, newProductivity); err != nil {
			return err
		}

		l, err := s.LogRepository.Create(txCtx, worker.Log{
			WorkerID:    workerID,
			TaskID:      done.TaskID,
			Type:        worker.LogTaskDone,
			Description: fmt.Sprintf("task %q done, performance %.4f", task.Title, performance),
		})
		if err != nil {
			return err
		}
		s.publishLog(w.EmployerID, l)
		return nil
	})
	if err != nil {
		return appointment.AppointmentResponse{}, err
	}

	metrics.AppointmentsCompletedTotal.Inc()
	s.logger.InfoContext(ctx, "appointment done",
		"appointment_id", done.ID, "worker_id", workerID, "task_id", done.TaskID)

	return toAppointmentResponse(done, task.Title), nil
}

// UpdateStatus implements appointment.AppointmentService.
func (s *AppointmentServiceImpl) UpdateStatus(ctx context.Context, workerID, id string, req appointment.UpdateStatusRequest) (appointment.AppointmentResponse, error) {
	if err := req.Validate(); err != nil {
		return appointment.AppointmentResponse{}, err
	}

	w, err := s.WorkerRepository.GetByUserID(ctx, workerID)
	if err != nil {
		return appointment.AppointmentResponse{}, err
	}

	var updated appointment.Appointment
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		updated, err = s.AppointmentRepository.UpdateStatus(txCtx, id, workerID, req.Status)
		if err != nil {
			return err
		}

		l, err := s.LogRepository.Create(txCtx, worker.Log{
			WorkerID:    workerID,
			TaskID:      updated.TaskID,
			Type:        worker.LogStatusChanged,
			Description: fmt.Sprintf("task status changed to %q", req.Status),
		})
		if err != nil {
			return err
		}
		s.publishLog(w.EmployerID, l)
		return nil
	})
	if err != nil {
		return appointment.AppointmentResponse{}, err
	}

	return toAppointmentResponse(updated, ""), nil
}

// Recommendations implements appointment.AppointmentService. For every
// unassigned task of the company it reports the eligible idle workers in
// ranking order. Workers are not claimed across tasks here; the same idle
// worker may top several lists.
func (s *AppointmentServiceImpl) Recommendations(ctx context.Context, companyID string) ([]appointment.TaskRecommendation, error) {
	tasks, err := s.TaskRepository.ListUnassigned(ctx, companyID)
	if err != nil {
		return nil, err
	}
	ranked, err := s.WorkerRepository.ListRanked(ctx, companyID)
	if err != nil {
		return nil, err
	}
	busy, err := s.AppointmentRepository.ActiveWorkerIDs(ctx, companyID)
	if err != nil {
		return nil, err
	}

	result := make([]appointment.TaskRecommendation, 0, len(tasks))
	for _, task := range tasks {
		rec := appointment.TaskRecommendation{
			TaskID:  task.ID,
			Title:   task.Title,
			Workers: []appointment.RecommendedWorker{},
		}
		for _, w := range ranked {
			if busy[w.ID] || !QualifiedFor(task, w) || !FitsWeeklyHours(task, w) {
				continue
			}
			candidate := appointment.RecommendedWorker{
				WorkerID:     w.ID,
				Username:     w.Username,
				Productivity: w.Productivity,
				WorkingHours: w.WorkingHours,
			}
			if w.Qualification != nil {
				candidate.Modifier = w.Qualification.Modifier
			}
			rec.Workers = append(rec.Workers, candidate)
		}
		result = append(result, rec)
	}
	return result, nil
}
