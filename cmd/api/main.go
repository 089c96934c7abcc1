package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/config"
	appHTTP "github.com/cmlabs-hris/hr-admin-go/internal/handler/http"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/database"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hr-admin-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/hr-admin-go/internal/service/attendance"
	employeeService "github.com/cmlabs-hris/hr-admin-go/internal/service/employee"
	leaveService "github.com/cmlabs-hris/hr-admin-go/internal/service/leave"
	masterService "github.com/cmlabs-hris/hr-admin-go/internal/service/master"
	reportService "github.com/cmlabs-hris/hr-admin-go/internal/service/report"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	designationRepo := postgresql.NewDesignationRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)

	settings, err := attendanceService.NewSettings(cfg.Attendance)
	if err != nil {
		return fmt.Errorf("invalid attendance settings: %w", err)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, settings)
	leaveSvc := leaveService.NewLeaveService(leaveTypeRepo, leaveRequestRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, departmentRepo)
	masterSvc := masterService.NewMasterService(departmentRepo, designationRepo)
	reportSvc := reportService.NewReportService(employeeRepo, leaveRequestRepo, attendanceRepo, departmentRepo, settings.Location)

	if cfg.Seed.LeaveTypes {
		if _, err := leaveSvc.SeedDefaultLeaveTypes(ctx); err != nil {
			return fmt.Errorf("failed to seed leave types: %w", err)
		}
	}

	router := appHTTP.NewRouter(
		cfg.App,
		JWTService,
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewLeaveHandler(leaveSvc),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewMasterHandler(masterSvc),
		appHTTP.NewReportHandler(reportSvc),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
