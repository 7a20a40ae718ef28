package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/talentflow/hr-backend-go/internal/config"
)

func NewRouter(
	cfg config.AppConfig,
	employeeHandler EmployeeHandler,
	payrollHandler PayrollHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Post("/", employeeHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", employeeHandler.Get)
				r.Put("/", employeeHandler.Update)
				r.Delete("/", employeeHandler.Deactivate)
			})
		})

		r.Route("/payroll", func(r chi.Router) {
			r.Route("/configuration", func(r chi.Router) {
				r.Get("/", payrollHandler.GetConfiguration)
				r.Put("/", payrollHandler.UpdateConfiguration)
			})
			r.Post("/process", payrollHandler.ProcessPeriod)
			r.Post("/process-one", payrollHandler.ProcessOne)
			r.Post("/reprocess", payrollHandler.Reprocess)
			r.Get("/summary", payrollHandler.Summary)
			r.Route("/records", func(r chi.Router) {
				r.Get("/", payrollHandler.List)
				r.Get("/{id}", payrollHandler.Get)
			})
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/clock-in", attendanceHandler.ClockIn)
			r.Post("/clock-out", attendanceHandler.ClockOut)
			r.Get("/", attendanceHandler.ListByDate)
			r.Route("/employees/{employeeID}", func(r chi.Router) {
				r.Get("/", attendanceHandler.ListByEmployee)
				r.Get("/day", attendanceHandler.DailyStatus)
			})
		})

		r.Route("/leave", func(r chi.Router) {
			r.Route("/requests", func(r chi.Router) {
				r.Get("/", leaveHandler.List)
				r.Post("/", leaveHandler.Submit)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", leaveHandler.Get)
					r.Post("/decision", leaveHandler.Decide)
				})
			})
			r.Route("/balances", func(r chi.Router) {
				r.Post("/", leaveHandler.AllocateBalance)
				r.Get("/{employeeID}", leaveHandler.Balances)
			})
		})
	})

	return r
}
