package iot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/appointment"
	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/iot"
	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/worker"
	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/database"
	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/sse"
	"github.com/HuginnARaven/WorkerOnline-server/internal/repository/postgresql"
)

type SupervisorServiceImpl struct {
	db *database.DB
	iot.SupervisorRepository
	worker.LogRepository
	appointment.AppointmentRepository
	hub     *sse.Hub
	timeout time.Duration
	logger  *slog.Logger
	now     func() time.Time
}

func NewSupervisorService(
	db *database.DB,
	supervisorRepository iot.SupervisorRepository,
	logRepository worker.LogRepository,
	appointmentRepository appointment.AppointmentRepository,
	hub *sse.Hub,
	timeout time.Duration,
	logger *slog.Logger,
) iot.SupervisorService {
	return &SupervisorServiceImpl{
		db:                    db,
		SupervisorRepository:  supervisorRepository,
		LogRepository:         logRepository,
		AppointmentRepository: appointmentRepository,
		hub:                   hub,
		timeout:               timeout,
		logger:                logger,
		now:                   time.Now,
	}
}

func toSupervisorResponse(s iot.Supervisor) iot.SupervisorResponse {
	return iot.SupervisorResponse{
		ID:           s.ID,
		SerialNumber: s.SerialNumber,
		WorkerID:     s.WorkerID,
		IsActive:     s.IsActive,
		InAdminMode:  s.InAdminMode,
		LastActive:   s.LastActive,
	}
}

func (s *SupervisorServiceImpl) publishLog(companyID string, l worker.Log) {
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

// Register implements iot.SupervisorService.
func (s *SupervisorServiceImpl) Register(ctx context.Context, companyID string, req iot.RegisterSupervisorRequest) (iot.SupervisorResponse, error) {
	if err := req.Validate(); err != nil {
		return iot.SupervisorResponse{}, err
	}

	created, err := s.SupervisorRepository.Create(ctx, iot.Supervisor{
		CompanyID:    companyID,
		WorkerID:     req.WorkerID,
		SerialNumber: req.SerialNumber,
	})
	if err != nil {
		return iot.SupervisorResponse{}, err
	}

	s.logger.InfoContext(ctx, "supervisor registered",
		"supervisor_id", created.ID, "serial_number", created.SerialNumber)

	return toSupervisorResponse(created), nil
}

// Get implements iot.SupervisorService.
func (s *SupervisorServiceImpl) Get(ctx context.Context, companyID, id string) (iot.SupervisorResponse, error) {
	sup, err := s.SupervisorRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return iot.SupervisorResponse{}, err
	}
	return toSupervisorResponse(sup), nil
}

// List implements iot.SupervisorService.
func (s *SupervisorServiceImpl) List(ctx context.Context, companyID string) ([]iot.SupervisorResponse, error) {
	sups, err := s.SupervisorRepository.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	result := make([]iot.SupervisorResponse, 0, len(sups))
	for _, sup := range sups {
		result = append(result, toSupervisorResponse(sup))
	}
	return result, nil
}

// Delete implements iot.SupervisorService.
func (s *SupervisorServiceImpl) Delete(ctx context.Context, companyID, id string) error {
	return s.SupervisorRepository.Delete(ctx, id, companyID)
}

// Heartbeat implements iot.SupervisorService.
func (s *SupervisorServiceImpl) Heartbeat(ctx context.Context, req iot.HeartbeatRequest) (iot.SupervisorResponse, error) {
	if err := req.Validate(); err != nil {
		return iot.SupervisorResponse{}, err
	}

	sup, err := s.SupervisorRepository.Heartbeat(ctx, req.SerialNumber, s.now().UTC())
	if err != nil {
		return iot.SupervisorResponse{}, err
	}
	return toSupervisorResponse(sup), nil
}

// ReportOutOfPlace implements iot.SupervisorService. The beacon noticed its
// bound worker left the workplace; the event lands in the audit trail.
func (s *SupervisorServiceImpl) ReportOutOfPlace(ctx context.Context, req iot.OutOfPlaceRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	sup, err := s.SupervisorRepository.GetBySerialNumber(ctx, req.SerialNumber)
	if err != nil {
		return err
	}
	if sup.WorkerID == nil {
		return iot.ErrSupervisorNotFound
	}

	description := req.Description
	if description == "" {
		description = "worker out of place"
	}

	l, err := s.LogRepository.Create(ctx, worker.Log{
		WorkerID:    *sup.WorkerID,
		Type:        worker.LogOutOfPlace,
		Description: description,
	})
	if err != nil {
		return err
	}
	s.publishLog(sup.CompanyID, l)
	return nil
}

// SweepInactive implements iot.SupervisorService. Beacons silent past the
// timeout are deactivated; for each swept beacon bound to a worker with an
// active appointment an SL entry lands in the trail so the company sees the
// supervision gap.
func (s *SupervisorServiceImpl) SweepInactive(ctx context.Context) error {
	cutoff := s.now().UTC().Add(-s.timeout)

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		swept, err := s.SupervisorRepository.SweepInactive(txCtx, cutoff)
		if err != nil {
			return err
		}

		for _, sup := range swept {
			if sup.WorkerID == nil {
				continue
			}

			taskID := ""
			if active, err := s.AppointmentRepository.GetActiveByWorker(txCtx, *sup.WorkerID); err == nil {
				taskID = active.TaskID
			} else if !errors.Is(err, appointment.ErrAppointmentNotFound) {
				return err
			}

			l, err := s.LogRepository.Create(txCtx, worker.Log{
				WorkerID:    *sup.WorkerID,
				TaskID:      taskID,
				Type:        worker.LogSupervisorLost,
				Description: fmt.Sprintf("supervisor %s inactive since %s", sup.SerialNumber, sup.LastActive.UTC().Format(time.RFC3339)),
			})
			if err != nil {
				return err
			}
			s.publishLog(sup.CompanyID, l)
		}

		if len(swept) > 0 {
			s.logger.InfoContext(ctx, "supervisors swept inactive", "count", len(swept))
		}
		return nil
	})
}
