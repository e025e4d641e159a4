package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/cloudhrms/hrms-backend-go/internal/config"
	appHTTP "github.com/cloudhrms/hrms-backend-go/internal/handler/http"
	"github.com/cloudhrms/hrms-backend-go/internal/pkg/cron"
	"github.com/cloudhrms/hrms-backend-go/internal/pkg/database"
	"github.com/cloudhrms/hrms-backend-go/internal/pkg/email"
	"github.com/cloudhrms/hrms-backend-go/internal/pkg/payslip"
	"github.com/cloudhrms/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/cloudhrms/hrms-backend-go/internal/service/attendance"
	employeeService "github.com/cloudhrms/hrms-backend-go/internal/service/employee"
	leaveService "github.com/cloudhrms/hrms-backend-go/internal/service/leave"
	payrollService "github.com/cloudhrms/hrms-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	lateCutoff, err := config.ParseClock(cfg.Payroll.LateCutoff)
	if err != nil {
		log.Fatal("Invalid late cutoff: ", err)
	}

	emailSvc := email.NewEmailService(cfg.SMTP)
	payslipGen := payslip.NewGenerator(cfg.Company, cfg.Payroll)
	calculator := payrollService.NewCalculator(cfg.Payroll)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		employeeRepo,
		lateCutoff,
		cfg.Payroll.HeatmapLateHour,
	)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(
		payrollRepo,
		employeeRepo,
		attendanceRepo,
		calculator,
		payslipGen,
		emailSvc,
	)

	scheduler := cron.NewScheduler()
	cron.NewPayrollJobs(payrollSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		cfg,
		employeeHandler,
		attendanceHandler,
		leaveHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
