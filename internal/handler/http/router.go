package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kennarhq/attendance-backend-go/internal/handler/http/middleware"
	"github.com/kennarhq/attendance-backend-go/internal/pkg/jwt"
	"github.com/kennarhq/attendance-backend-go/internal/pkg/metrics"
)

func NewRouter(
	env string,
	jwtService jwt.Service,
	m *metrics.Metrics,
	attendanceHandler AttendanceHandler,
	dashboardHandler DashboardHandler,
	summaryHandler SummaryHandler,
	employeeHandler EmployeeHandler,
	authHandler AuthHandler,
	kioskHandler KioskHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))
	r.Use(middleware.Metrics(m))

	r.Handle("/metrics", promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", authHandler.Login)
		r.Post("/admins", authHandler.CreateAdmin)

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", attendanceHandler.List)
			r.Get("/summary", summaryHandler.GetMonthlySummary)

			// Corrective time edits need an admin token
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Put("/{id}/time-in", attendanceHandler.CheckIn)
				r.Put("/{id}", attendanceHandler.CheckOut)
			})
		})
		r.Get("/kiosk/events", kioskHandler.Events)

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Get("/{employee_id}", employeeHandler.Get)
			r.Get("/{employee_id}/image", employeeHandler.GetImage)

			// Roster changes need an admin token
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Post("/", employeeHandler.Create)
				r.Put("/{employee_id}", employeeHandler.Update)
				r.Delete("/{employee_id}", employeeHandler.Delete)
			})
		})

		r.Get("/dashboard-stats", dashboardHandler.GetDailyStats)
	})

	return r
}
