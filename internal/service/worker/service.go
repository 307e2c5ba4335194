package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/company"
	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/user"
	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/worker"
	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/database"
	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/validator"
	"github.com/HuginnARaven/WorkerOnline-server/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type WorkerServiceImpl struct {
	db *database.DB
	user.UserRepository
	worker.WorkerRepository
	worker.ScheduleRepository
	worker.LogRepository
	company.QualificationRepository
	reports ReportRepository
	logger  *slog.Logger
}

// ReportRepository aggregates historical appointment outcomes per worker.
type ReportRepository interface {
	WorkerReports(ctx context.Context, employerID string) ([]worker.Report, error)
}

func NewWorkerService(
	db *database.DB,
	userRepository user.UserRepository,
	workerRepository worker.WorkerRepository,
	scheduleRepository worker.ScheduleRepository,
	logRepository worker.LogRepository,
	qualificationRepository company.QualificationRepository,
	reportRepository ReportRepository,
	logger *slog.Logger,
) worker.WorkerService {
	return &WorkerServiceImpl{
		db:                      db,
		UserRepository:          userRepository,
		WorkerRepository:        workerRepository,
		ScheduleRepository:      scheduleRepository,
		LogRepository:           logRepository,
		QualificationRepository: qualificationRepository,
		reports:                 reportRepository,
		logger:                  logger,
	}
}

func toWorkerResponse(w worker.Worker) worker.WorkerResponse {
	resp := worker.WorkerResponse{
		ID:              w.ID,
		Username:        w.Username,
		Email:           w.Email,
		FirstName:       w.FirstName,
		LastName:        w.LastName,
		QualificationID: w.QualificationID,
		WorkingHours:    w.WorkingHours,
		Productivity:    w.Productivity,
		Salary:          w.Salary,
		DayStart:        validator.FormatClock(w.DayStart),
		DayEnd:          validator.FormatClock(w.DayEnd),
	}
	if w.Qualification != nil {
		resp.QualificationName = w.Qualification.Name
	}
	return resp
}

func toScheduleResponse(s worker.Schedule) worker.ScheduleResponse {
	return worker.ScheduleResponse{
		WorkerID:  s.WorkerID,
		Monday:    s.Monday,
		Tuesday:   s.Tuesday,
		Wednesday: s.Wednesday,
		Thursday:  s.Thursday,
		Friday:    s.Friday,
		Saturday:  s.Saturday,
		Sunday:    s.Sunday,
	}
}

func toLogResponse(l worker.Log) worker.LogResponse {
	return worker.LogResponse{
		ID:          l.ID,
		WorkerID:    l.WorkerID,
		TaskID:      l.TaskID,
		Type:        string(l.Type),
		Description: l.Description,
		CreatedAt:   l.CreatedAt,
	}
}

// Create implements worker.WorkerService. The account row, the worker row
// and the default all-working schedule are created atomically.
func (s *WorkerServiceImpl) Create(ctx context.Context, employerID string, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	if _, err := s.QualificationRepository.GetByID(ctx, req.QualificationID, employerID); err != nil {
		if err == company.ErrQualificationNotFound {
			return worker.WorkerResponse{}, company.ErrForeignQualification
		}
		return worker.WorkerResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return worker.WorkerResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	dayStart, _ := validator.IsValidClock(req.DayStart)
	dayEnd, _ := validator.IsValidClock(req.DayEnd)

	var created worker.Worker
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		u, err := s.UserRepository.Create(txCtx, user.User{
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: string(hash),
			Role:         user.RoleWorker,
		})
		if err != nil {
			return err
		}

		created, err = s.WorkerRepository.Create(txCtx, worker.Worker{
			ID:              u.ID,
			EmployerID:      employerID,
			QualificationID: req.QualificationID,
			FirstName:       req.FirstName,
			LastName:        req.LastName,
			WorkingHours:    req.WorkingHours,
			Productivity:    1,
			Salary:          req.Salary,
			DayStart:        dayStart,
			DayEnd:          dayEnd,
		})
		if err != nil {
			return err
		}

		_, err = s.ScheduleRepository.Create(txCtx, worker.DefaultSchedule(u.ID))
		return err
	})
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	s.logger.InfoContext(ctx, "worker created", "worker_id", created.ID, "employer_id", employerID)

	return toWorkerResponse(created), nil
}

// Get implements worker.WorkerService.
func (s *WorkerServiceImpl) Get(ctx context.Context, employerID, id string) (worker.WorkerResponse, error) {
	w, err := s.WorkerRepository.GetByID(ctx, id, employerID)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	return toWorkerResponse(w), nil
}

// List implements worker.WorkerService.
func (s *WorkerServiceImpl) List(ctx context.Context, employerID, search string) ([]worker.WorkerResponse, error) {
	ws, err := s.WorkerRepository.ListByCompany(ctx, employerID, search)
	if err != nil {
		return nil, err
	}
	result := make([]worker.WorkerResponse, 0, len(ws))
	for _, w := range ws {
		result = append(result, toWorkerResponse(w))
	}
	return result, nil
}

// Update implements worker.WorkerService.
func (s *WorkerServiceImpl) Update(ctx context.Context, employerID, id string, req worker.UpdateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	w, err := s.WorkerRepository.GetByID(ctx, id, employerID)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	if _, err := s.QualificationRepository.GetByID(ctx, req.QualificationID, employerID); err != nil {
		if err == company.ErrQualificationNotFound {
			return worker.WorkerResponse{}, company.ErrForeignQualification
		}
		return worker.WorkerResponse{}, err
	}

	dayStart, _ := validator.IsValidClock(req.DayStart)
	dayEnd, _ := validator.IsValidClock(req.DayEnd)

	w.FirstName = req.FirstName
	w.LastName = req.LastName
	w.QualificationID = req.QualificationID
	w.WorkingHours = req.WorkingHours
	w.Salary = req.Salary
	w.DayStart = dayStart
	w.DayEnd = dayEnd

	updated, err := s.WorkerRepository.Update(ctx, w)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	return toWorkerResponse(updated), nil
}

// Delete implements worker.WorkerService.
func (s *WorkerServiceImpl) Delete(ctx context.Context, employerID, id string) error {
	return s.WorkerRepository.Delete(ctx, id, employerID)
}

// GetSchedule implements worker.WorkerService.
func (s *WorkerServiceImpl) GetSchedule(ctx context.Context, employerID, workerID string) (worker.ScheduleResponse, error) {
	if _, err := s.WorkerRepository.GetByID(ctx, workerID, employerID); err != nil {
		return worker.ScheduleResponse{}, err
	}

	sched, err := s.ScheduleRepository.GetByWorkerID(ctx, workerID)
	if err != nil {
		return worker.ScheduleResponse{}, err
	}
	return toScheduleResponse(sched), nil
}

// UpdateSchedule implements worker.WorkerService.
func (s *WorkerServiceImpl) UpdateSchedule(ctx context.Context, employerID, workerID string, req worker.ScheduleRequest) (worker.ScheduleResponse, error) {
	if _, err := s.WorkerRepository.GetByID(ctx, workerID, employerID); err != nil {
		return worker.ScheduleResponse{}, err
	}

	updated, err := s.ScheduleRepository.Update(ctx, worker.Schedule{
		WorkerID:  workerID,
		Monday:    req.Monday,
		Tuesday:   req.Tuesday,
		Wednesday: req.Wednesday,
		Thursday:  req.Thursday,
		Friday:    req.Friday,
		Saturday:  req.Saturday,
		Sunday:    req.Sunday,
	})
	if err != nil {
		return worker.ScheduleResponse{}, err
	}
	return toScheduleResponse(updated), nil
}

// CompanyLogs implements worker.WorkerService.
func (s *WorkerServiceImpl) CompanyLogs(ctx context.Context, companyID string, f worker.LogFilter) ([]worker.LogResponse, int64, error) {
	if err := f.Validate(); err != nil {
		return nil, 0, err
	}

	logs, total, err := s.LogRepository.ListByCompany(ctx, companyID, f)
	if err != nil {
		return nil, 0, err
	}
	result := make([]worker.LogResponse, 0, len(logs))
	for _, l := range logs {
		result = append(result, toLogResponse(l))
	}
	return result, total, nil
}

// WorkerLogs implements worker.WorkerService.
func (s *WorkerServiceImpl) WorkerLogs(ctx context.Context, workerID string, f worker.LogFilter) ([]worker.LogResponse, int64, error) {
	if err := f.Validate(); err != nil {
		return nil, 0, err
	}

	logs, total, err := s.LogRepository.ListByWorker(ctx, workerID, f)
	if err != nil {
		return nil, 0, err
	}
	result := make([]worker.LogResponse, 0, len(logs))
	for _, l := range logs {
		result = append(result, toLogResponse(l))
	}
	return result, total, nil
}

// Report implements worker.WorkerService.
func (s *WorkerServiceImpl) Report(ctx context.Context, employerID string) ([]worker.Report, error) {
	return s.reports.WorkerReports(ctx, employerID)
}
