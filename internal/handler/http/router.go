package http

import (
	"log/slog"
	"os"

	"github.com/HuginnARaven/WorkerOnline-server/internal/handler/http/middleware"
	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/jwt"
	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/metrics"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterConfig struct {
	Env string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	companyHandler CompanyHandler,
	workerHandler WorkerHandler,
	appointmentHandler AppointmentHandler,
	assignmentHandler AssignmentHandler,
	iotHandler IoTHandler,
	votingHandler VotingHandler,
	eventsHandler EventsHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workeronline"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Method("GET", "/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", authHandler.LoginWithGoogle)
				r.Get("/callback/google", authHandler.OAuthCallbackGoogle)
			})
		})

		// Device endpoints are authenticated by serial number, not a session.
		r.Route("/iot", func(r chi.Router) {
			r.Post("/heartbeat", iotHandler.Heartbeat)
			r.Post("/out-of-place", iotHandler.OutOfPlace)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/company", func(r chi.Router) {
				r.Use(middleware.CompanyOnly)

				r.Get("/", companyHandler.GetMy)
				r.Put("/", companyHandler.UpdateMy)

				r.Route("/qualifications", func(r chi.Router) {
					r.Post("/", companyHandler.CreateQualification)
					r.Get("/", companyHandler.ListQualifications)
					r.Put("/{id}", companyHandler.UpdateQualification)
					r.Delete("/{id}", companyHandler.DeleteQualification)
				})

				r.Route("/tasks", func(r chi.Router) {
					r.Post("/", companyHandler.CreateTask)
					r.Get("/", companyHandler.ListTasks)
					r.Get("/{id}", companyHandler.GetTask)
					r.Put("/{id}", companyHandler.UpdateTask)
					r.Delete("/{id}", companyHandler.DeleteTask)
				})

				r.Route("/workers", func(r chi.Router) {
					r.Post("/", workerHandler.Create)
					r.Get("/", workerHandler.List)
					r.Get("/{id}", workerHandler.Get)
					r.Put("/{id}", workerHandler.Update)
					r.Delete("/{id}", workerHandler.Delete)
					r.Get("/{id}/schedule", workerHandler.GetSchedule)
					r.Put("/{id}/schedule", workerHandler.UpdateSchedule)
				})

				r.Route("/appointments", func(r chi.Router) {
					r.Post("/", appointmentHandler.Create)
					r.Get("/", appointmentHandler.List)
					r.Get("/{id}", appointmentHandler.Get)
					r.Get("/recommendations", appointmentHandler.Recommendations)
				})

				r.Route("/assignment", func(r chi.Router) {
					r.Get("/plan", assignmentHandler.Plan)
					r.Post("/commit", assignmentHandler.Commit)
				})

				r.Route("/supervisors", func(r chi.Router) {
					r.Post("/", iotHandler.Register)
					r.Get("/", iotHandler.List)
					r.Get("/{id}", iotHandler.Get)
					r.Delete("/{id}", iotHandler.Delete)
				})

				r.Route("/votings", func(r chi.Router) {
					r.Post("/", votingHandler.Create)
					r.Get("/", votingHandler.List)
					r.Get("/{id}/results", votingHandler.Results)
					r.Post("/{id}/close", votingHandler.Close)
					r.Delete("/{id}", votingHandler.Delete)
				})

				r.Get("/logs", workerHandler.CompanyLogs)
				r.Get("/report", workerHandler.Report)
				r.Get("/events", eventsHandler.Stream)
			})

			r.Route("/worker", func(r chi.Router) {
				r.Use(middleware.WorkerOnly)

				r.Route("/appointments", func(r chi.Router) {
					r.Get("/", appointmentHandler.ListMine)
					r.Post("/{id}/done", appointmentHandler.MarkDone)
					r.Put("/{id}/status", appointmentHandler.UpdateStatus)
				})

				r.Route("/votings", func(r chi.Router) {
					r.Get("/", votingHandler.ListOpen)
					r.Post("/vote", votingHandler.Vote)
					r.Get("/votes", votingHandler.MyVotes)
				})

				r.Get("/logs", workerHandler.MyLogs)
			})
		})
	})

	return r
}
