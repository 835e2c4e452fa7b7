package http

import (
	"log/slog"
	"os"

	"github.com/clockwork-hr/timeclock-backend-go/internal/config"
	"github.com/clockwork-hr/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	appCfg config.AppConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	userHandler UserHandler,
	clockHandler ClockHandler,
	dashboardHandler DashboardHandler,
	requestHandler CorrectionRequestHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timeclock-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", appCfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   appCfg.AllowedOrigins,
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

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)

			r.Route("/login", func(r chi.Router) {
				r.Post("/", authHandler.Login)
				r.Post("/pin", authHandler.LoginWithPIN)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/users/me", func(r chi.Router) {
				r.Get("/", userHandler.GetProfile)
				r.Patch("/", userHandler.UpdateProfile)
			})

			r.Route("/clock", func(r chi.Router) {
				r.Get("/status", clockHandler.Status)
				r.Get("/events", clockHandler.ListEvents)
				r.Post("/events", clockHandler.RecordEvent)
				r.Post("/out", clockHandler.ClockOut)
				r.Post("/break/start", clockHandler.StartBreak)
				r.Post("/break/finish", clockHandler.FinishBreak)
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/", dashboardHandler.GetDashboard)
				r.Get("/metrics", dashboardHandler.GetMetrics)
				r.Get("/daily", dashboardHandler.GetDailyBreakdown)
				r.Get("/weekly", dashboardHandler.GetWeeklyBreakdown)
			})

			r.Route("/requests", func(r chi.Router) {
				r.Post("/", requestHandler.Create)
				r.Delete("/", requestHandler.BulkDelete)
				r.Get("/my", requestHandler.ListMy)
				r.Put("/{id}", requestHandler.Update)
				r.Delete("/{id}", requestHandler.Delete)

				// Reviewer only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireReviewer)
					r.Get("/", requestHandler.List)
					r.Post("/{id}/approve", requestHandler.Approve)
					r.Post("/{id}/reject", requestHandler.Reject)
					r.Post("/{id}/materialize", requestHandler.Materialize)
				})
			})
		})
	})
	return r
}
