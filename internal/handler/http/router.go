package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/timecardhq/timecard-backend-go/internal/config"
	"github.com/timecardhq/timecard-backend-go/internal/handler/http/middleware"
	"github.com/timecardhq/timecard-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	userHandler UserHandler,
	timeEntryHandler TimeEntryHandler,
	scheduleHandler ScheduleHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timecard-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Post("/change-password", authHandler.ChangePassword)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Administrator only
			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequireAdministrator)
				r.Get("/", userHandler.List)
				r.Post("/", userHandler.Create)
				r.Post("/bulk-action", userHandler.BulkAction)
				r.Get("/{id}", userHandler.Get)
				r.Put("/{id}", userHandler.Update)
				r.Delete("/{id}", userHandler.Delete)
				r.Post("/{id}/toggle-status", userHandler.ToggleStatus)
			})

			r.Route("/time-entries", func(r chi.Router) {
				r.Post("/clock-in", timeEntryHandler.ClockIn)
				r.Post("/clock-out", timeEntryHandler.ClockOut)
				r.Post("/lunch-start", timeEntryHandler.LunchStart)
				r.Post("/lunch-end", timeEntryHandler.LunchEnd)
				r.Get("/", timeEntryHandler.List)
				r.Get("/weekly", timeEntryHandler.Weekly)
				r.Get("/{id}", timeEntryHandler.Get)

				// Manager or administrator
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", timeEntryHandler.Create)
					r.Put("/{id}", timeEntryHandler.Update)
					r.Post("/{id}/approve", timeEntryHandler.Approve)
					r.Post("/{id}/reject", timeEntryHandler.Reject)
					r.Delete("/{id}", timeEntryHandler.Delete)
				})
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/check-conflicts", scheduleHandler.CheckConflicts)
				r.Get("/weekly", scheduleHandler.Weekly)
				r.Get("/user/{id}", scheduleHandler.ListForUser)
				r.Get("/{id}", scheduleHandler.Get)

				// Manager or administrator
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", scheduleHandler.Create)
					r.Post("/bulk", scheduleHandler.BulkCreate)
					r.Get("/search", scheduleHandler.Search)
					r.Get("/team", scheduleHandler.TeamWeekly)
					r.Put("/{id}", scheduleHandler.Update)
					r.Post("/{id}/publish", scheduleHandler.Publish)
					r.Delete("/{id}", scheduleHandler.Delete)
				})
			})

			// Manager or administrator
			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Get("/individual", reportHandler.Individual)
				r.Get("/overtime", reportHandler.Overtime)
				r.Get("/export", reportHandler.Export)
			})
		})
	})
	return r
}
