package http

import (
	"log/slog"
	"os"

	"github.com/cloudhrms/hrms-backend-go/internal/config"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	cfg *config.Config,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/employees", func(r chi.Router) {
			r.Post("/", employeeHandler.CreateEmployee)
			r.Get("/", employeeHandler.ListEmployees)
			r.Get("/{id}", employeeHandler.GetEmployee)
			r.Patch("/{id}", employeeHandler.UpdateEmployee)
			r.Delete("/{id}", employeeHandler.DeleteEmployee)
		})

		r.Route("/attendances", func(r chi.Router) {
			r.Post("/check-in", attendanceHandler.CheckIn)
			r.Post("/check-out", attendanceHandler.CheckOut)
			r.Get("/summary/daily", attendanceHandler.GetDailySummary)
			r.Get("/summary/monthly", attendanceHandler.GetMonthlySummary)
			r.Get("/heatmap/{employeeID}/{year}/{month}", attendanceHandler.GetHeatmap)
			r.Get("/recent", attendanceHandler.GetRecentFeed)
		})

		r.Route("/leaves", func(r chi.Router) {
			r.Post("/apply", leaveHandler.ApplyLeave)
			r.Get("/", leaveHandler.ListLeaves)
			r.Post("/{id}/approve", leaveHandler.ApproveLeave)
			r.Post("/{id}/reject", leaveHandler.RejectLeave)
			r.Get("/analytics/type", leaveHandler.GetTypeDistribution)
			r.Get("/analytics/monthly", leaveHandler.GetMonthlyTrend)
		})

		r.Route("/payrolls", func(r chi.Router) {
			r.Post("/generate", payrollHandler.Generate)
			r.Post("/generate-all", payrollHandler.GenerateAll)
			r.Get("/", payrollHandler.ListByPeriod)
			r.Get("/summary", payrollHandler.GetSummary)
			r.Get("/chart", payrollHandler.GetChart)
			r.Get("/employee/{employeeID}", payrollHandler.GetEmployeeHistory)
			r.Get("/download-bulk", payrollHandler.DownloadPeriod)
			r.Get("/{id}/download", payrollHandler.DownloadPayslip)
			r.Post("/{id}/email", payrollHandler.EmailPayslip)
		})
	})

	return r
}
