package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/hr-admin-go/internal/config"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/user"
	"github.com/cmlabs-hris/hr-admin-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	appConfig config.AppConfig,
	JWTService jwt.Service,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	employeeHandler EmployeeHandler,
	masterHandler MasterHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(!appConfig.IsProduction())
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-admin"),
		slog.String("version", "v1.0.0"),
		slog.String("env", appConfig.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{appConfig.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  appConfig.SlogLevel(),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireEmployee)
					r.Post("/clock-in", attendanceHandler.ClockIn)
					r.Post("/clock-out", attendanceHandler.ClockOut)
					r.Get("/today", attendanceHandler.Today)
					r.Get("/my", attendanceHandler.GetMyAttendance)
				})

				// Own stats, or anyone's with attendance.view_team
				r.Get("/stats", attendanceHandler.Stats)

				r.With(middleware.RequirePermission(user.PermissionAttendanceViewTeam)).
					Get("/team", attendanceHandler.Team)
			})

			r.Route("/leave", func(r chi.Router) {
				r.Get("/types", leaveHandler.ListTypes)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireEmployee)
					r.Get("/balances", leaveHandler.MyBalances)
					r.Post("/requests", leaveHandler.CreateRequest)
					r.Get("/requests/my", leaveHandler.ListMyRequests)
				})

				r.With(middleware.RequirePermission(user.PermissionLeaveViewAll)).
					Get("/requests", leaveHandler.ListRequests)
				r.Get("/requests/{id}", leaveHandler.GetRequest)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionLeaveApprove))
					r.Post("/requests/{id}/approve", leaveHandler.ApproveRequest)
					r.Post("/requests/{id}/reject", leaveHandler.RejectRequest)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionEmployeeViewAll)).
					Get("/", employeeHandler.ListEmployees)
				r.With(middleware.RequirePermission(user.PermissionEmployeeViewAll)).
					Get("/{id}", employeeHandler.GetEmployee)
				r.With(middleware.RequirePermission(user.PermissionEmployeeManage)).
					Post("/", employeeHandler.CreateEmployee)
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", masterHandler.ListDepartments)
				r.Get("/{id}", masterHandler.GetDepartment)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionMasterManage))
					r.Post("/", masterHandler.CreateDepartment)
					r.Put("/{id}", masterHandler.UpdateDepartment)
					r.Delete("/{id}", masterHandler.DeleteDepartment)
				})
			})

			r.Route("/designations", func(r chi.Router) {
				r.Get("/", masterHandler.ListDesignations)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionMasterManage))
					r.Post("/", masterHandler.CreateDesignation)
					r.Delete("/{id}", masterHandler.DeleteDesignation)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionReportsView))
				r.Get("/summary", reportHandler.GetSummary)
				r.Get("/attendance", reportHandler.GetMonthlyAttendanceReport)
				r.Get("/attendance/export", reportHandler.ExportMonthlyAttendanceReport)
			})
		})
	})
	return r
}
