package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/HuginnARaven/WorkerOnline-server/internal/config"
	appHTTP "github.com/HuginnARaven/WorkerOnline-server/internal/handler/http"
	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/cron"
	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/database"
	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/jwt"
	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/oauth"
	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/sse"
	"github.com/HuginnARaven/WorkerOnline-server/internal/repository/postgresql"
	appointmentService "github.com/HuginnARaven/WorkerOnline-server/internal/service/appointment"
	assignmentService "github.com/HuginnARaven/WorkerOnline-server/internal/service/assignment"
	serviceAuth "github.com/HuginnARaven/WorkerOnline-server/internal/service/auth"
	serviceCompany "github.com/HuginnARaven/WorkerOnline-server/internal/service/company"
	iotService "github.com/HuginnARaven/WorkerOnline-server/internal/service/iot"
	votingService "github.com/HuginnARaven/WorkerOnline-server/internal/service/voting"
	workerService "github.com/HuginnARaven/WorkerOnline-server/internal/service/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "workeronline"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	if err := database.Migrate(cfg.MigrateURL()); err != nil {
		logger.Error("Failed to migrate database", "error", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	qualificationRepo := postgresql.NewQualificationRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	workerRepo := postgresql.NewWorkerRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	logRepo := postgresql.NewLogRepository(db)
	appointmentRepo := postgresql.NewAppointmentRepository(db)
	supervisorRepo := postgresql.NewSupervisorRepository(db)
	votingRepo := postgresql.NewVotingRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	hub := sse.NewHub()

	authSvc := serviceAuth.NewAuthService(db, userRepo, companyRepo, workerRepo, refreshTokenRepo, jwtService, googleService, logger)
	companySvc := serviceCompany.NewCompanyService(db, companyRepo, qualificationRepo, taskRepo)
	workerSvc := workerService.NewWorkerService(db, userRepo, workerRepo, scheduleRepo, logRepo, qualificationRepo, reportRepo, logger)
	appointmentSvc := appointmentService.NewAppointmentService(db, appointmentRepo, taskRepo, companyRepo, workerRepo, scheduleRepo, logRepo, hub, logger)
	assignmentSvc := assignmentService.NewAssignmentService(taskRepo, workerRepo, appointmentRepo, appointmentSvc, logger)
	supervisorSvc := iotService.NewSupervisorService(db, supervisorRepo, logRepo, appointmentRepo, hub,
		time.Duration(cfg.App.SupervisorTimeoutMinutes)*time.Minute, logger)
	votingSvc := votingService.NewVotingService(votingRepo, workerRepo)

	scheduler := cron.NewScheduler()
	cron.RegisterSupervisorSweep(scheduler, supervisorSvc)
	cron.RegisterRefreshTokenPrune(scheduler, refreshTokenRepo)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{Env: cfg.App.Env},
		jwtService,
		appHTTP.NewAuthHandler(jwtService, authSvc, googleService),
		appHTTP.NewCompanyHandler(companySvc),
		appHTTP.NewWorkerHandler(workerSvc),
		appHTTP.NewAppointmentHandler(appointmentSvc),
		appHTTP.NewAssignmentHandler(assignmentSvc),
		appHTTP.NewIoTHandler(supervisorSvc),
		appHTTP.NewVotingHandler(votingSvc),
		appHTTP.NewEventsHandler(hub),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	if err := server.Close(); err != nil {
		logger.Error("Server close error", "error", err)
	}
}
